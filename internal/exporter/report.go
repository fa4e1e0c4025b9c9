package exporter

import (
	"fmt"

	"pushpulse/internal/grid"
	"pushpulse/internal/series"
)

// Report file names, relative to the reports directory.
const (
	TimeSeriesFile = "time_series.csv"
	MonthlyFile    = "monthly_summary.csv"
	CumulativeFile = "cumulative_progress.csv"
)

// ReportExporter writes the derived dashboard tables as CSV reports.
type ReportExporter struct {
	csvWriter *CSVWriter
}

// NewReportExporter creates an exporter writing under dir.
func NewReportExporter(dir string) *ReportExporter {
	return &ReportExporter{
		csvWriter: NewCSVWriter(dir),
	}
}

// ExportTimeSeries writes the date-ordered series as date,count rows.
func (e *ReportExporter) ExportTimeSeries(ts series.TimeSeries) error {
	records := make([][]string, 0, len(ts))
	for _, p := range ts {
		records = append(records, []string{
			p.Date.Format("2006-01-02"),
			formatCount(p.Count),
		})
	}

	if err := e.csvWriter.WriteSimpleCSV(TimeSeriesFile, []string{"Date", "Count"}, records); err != nil {
		return fmt.Errorf("failed to write time series report: %w", err)
	}
	return nil
}

// ExportMonthly writes per-month totals in calendar order.
func (e *ReportExporter) ExportMonthly(g *grid.Grid) error {
	totals := g.MonthTotals()
	records := make([][]string, 0, len(totals))
	for _, mt := range totals {
		records = append(records, []string{
			mt.Month.String(),
			formatCount(mt.Total),
		})
	}

	if err := e.csvWriter.WriteSimpleCSV(MonthlyFile, []string{"Month", "Total"}, records); err != nil {
		return fmt.Errorf("failed to write monthly report: %w", err)
	}
	return nil
}

// ExportCumulative writes the running actual total next to the expected pace.
func (e *ReportExporter) ExportCumulative(ts series.TimeSeries, expectedPerEntry float64) error {
	points := series.Cumulative(ts, expectedPerEntry)
	records := make([][]string, 0, len(points))
	for _, p := range points {
		records = append(records, []string{
			p.Date.Format("2006-01-02"),
			formatCount(p.Actual),
			formatCount(p.Expected),
		})
	}

	if err := e.csvWriter.WriteSimpleCSV(CumulativeFile, []string{"Date", "Actual", "Expected"}, records); err != nil {
		return fmt.Errorf("failed to write cumulative report: %w", err)
	}
	return nil
}

// ExportAll writes every report.
func (e *ReportExporter) ExportAll(g *grid.Grid, ts series.TimeSeries, expectedPerEntry float64) error {
	if err := e.ExportTimeSeries(ts); err != nil {
		return err
	}
	if err := e.ExportMonthly(g); err != nil {
		return err
	}
	return e.ExportCumulative(ts, expectedPerEntry)
}
