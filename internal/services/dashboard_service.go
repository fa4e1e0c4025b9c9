package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pushpulse/internal/config"
	"pushpulse/internal/grid"
	"pushpulse/internal/series"
)

// DashboardService computes and serves the dashboard views. The grid is
// loaded once at construction; every view is derived from that immutable
// snapshot.
type DashboardService struct {
	cfg    config.DashboardConfig
	cutoff time.Time
	grid   *grid.Grid
	ts     series.TimeSeries
	logger *slog.Logger
}

// NewDashboardService loads the grid from the source, reshapes it for the
// configured target year and prepares the service.
func NewDashboardService(ctx context.Context, src grid.Source, cfg config.DashboardConfig, logger *slog.Logger) (*DashboardService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cutoff, err := cfg.GoalCutoffDate()
	if err != nil {
		return nil, err
	}

	g, err := grid.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load grid: %w", err)
	}

	ts := series.Reshape(g, cfg.TargetYear)

	logger.InfoContext(ctx, "dashboard data loaded",
		slog.Int("target_year", cfg.TargetYear),
		slog.Int("grid_cells", g.CellCount()),
		slog.Int("series_entries", len(ts)),
		slog.Float64("grand_total", series.Total(ts)))

	return &DashboardService{
		cfg:    cfg,
		cutoff: cutoff,
		grid:   g,
		ts:     ts,
		logger: logger.With(slog.String("component", "dashboard_service")),
	}, nil
}

// Summary is the headline view of the year
type Summary struct {
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	TargetYear   int      `json:"target_year"`
	Total        float64  `json:"total"`
	Entries      int      `json:"entries"`
	DailyMean    float64  `json:"daily_mean"`
	RequiredMean float64  `json:"required_mean"`
	AnnualGoal   float64  `json:"annual_goal"`
	GoalReached  bool     `json:"goal_reached"`
	GoalDate     *string  `json:"goal_date,omitempty"`
	BestDay      *DayStat `json:"best_day,omitempty"`
}

// DayStat names a single dated extreme
type DayStat struct {
	Date  string  `json:"date"`
	Count float64 `json:"count"`
}

// Summary returns the headline numbers for the year.
func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}

	daysInYear := 365.0
	if isLeapYear(s.cfg.TargetYear) {
		daysInYear = 366.0
	}

	out := &Summary{
		Title:        s.cfg.Title,
		Author:       s.cfg.Author,
		TargetYear:   s.cfg.TargetYear,
		Total:        series.Total(s.ts),
		Entries:      len(s.ts),
		DailyMean:    series.Mean(s.ts),
		RequiredMean: s.cfg.AnnualGoal / daysInYear,
		AnnualGoal:   s.cfg.AnnualGoal,
	}

	if date, ok := series.GoalCrossing(s.ts, s.cfg.AnnualGoal); ok {
		out.GoalReached = true
		d := date.Format("2006-01-02")
		out.GoalDate = &d
	}

	if best, ok := series.Max(s.ts); ok {
		out.BestDay = &DayStat{Date: best.Date.Format("2006-01-02"), Count: best.Count}
	}

	return out, nil
}

// MonthlyView feeds the per-month bar chart
type MonthlyView struct {
	Labels []string  `json:"labels"`
	Totals []float64 `json:"totals"`
	Mean   float64   `json:"mean"`
	Best   MonthStat `json:"best"`
	Worst  MonthStat `json:"worst"`
}

// MonthStat names a single month extreme
type MonthStat struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// Monthly returns per-month totals in calendar order with the mean line and
// the argmax/argmin months.
func (s *DashboardService) Monthly(ctx context.Context) (*MonthlyView, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}

	totals := s.grid.MonthTotals()
	view := &MonthlyView{
		Labels: make([]string, len(totals)),
		Totals: make([]float64, len(totals)),
	}

	var sum float64
	best, worst := totals[0], totals[0]
	for i, mt := range totals {
		view.Labels[i] = mt.Month.String()
		view.Totals[i] = mt.Total
		sum += mt.Total
		if mt.Total > best.Total {
			best = mt
		}
		if mt.Total < worst.Total {
			worst = mt
		}
	}

	view.Mean = sum / float64(len(totals))
	view.Best = MonthStat{Month: best.Month.String(), Total: best.Total}
	view.Worst = MonthStat{Month: worst.Month.String(), Total: worst.Total}
	return view, nil
}

// DailyView feeds the per-day-of-month bar chart
type DailyView struct {
	Labels []int     `json:"labels"`
	Totals []float64 `json:"totals"`
	Mean   float64   `json:"mean"`
}

// Daily returns per-day-of-month totals across all months.
func (s *DashboardService) Daily(ctx context.Context) (*DailyView, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}

	totals := s.grid.DayTotals()
	view := &DailyView{
		Labels: make([]int, len(totals)),
		Totals: make([]float64, len(totals)),
	}

	var sum float64
	for i, dt := range totals {
		view.Labels[i] = dt.Day
		view.Totals[i] = dt.Total
		sum += dt.Total
	}
	view.Mean = sum / float64(len(totals))
	return view, nil
}

// CumulativeView feeds the progress line chart
type CumulativeView struct {
	Points      []series.CumulativePoint `json:"points"`
	AnnualGoal  float64                  `json:"annual_goal"`
	DailyGoal   float64                  `json:"daily_goal"`
	GoalReached bool                     `json:"goal_reached"`
	GoalDate    *string                  `json:"goal_date,omitempty"`
}

// Cumulative returns the running actual total next to the expected pace.
func (s *DashboardService) Cumulative(ctx context.Context) (*CumulativeView, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}

	view := &CumulativeView{
		Points:     series.Cumulative(s.ts, s.cfg.DailyGoal),
		AnnualGoal: s.cfg.AnnualGoal,
		DailyGoal:  s.cfg.DailyGoal,
	}
	if date, ok := series.GoalCrossing(s.ts, s.cfg.AnnualGoal); ok {
		view.GoalReached = true
		d := date.Format("2006-01-02")
		view.GoalDate = &d
	}
	return view, nil
}

// DistributionView feeds the before/after-goal violin comparison
type DistributionView struct {
	Cutoff string              `json:"cutoff"`
	Before series.Distribution `json:"before"`
	After  series.Distribution `json:"after"`
}

// Distribution splits the series at the goal cutoff date and summarizes the
// two groups.
func (s *DashboardService) Distribution(ctx context.Context) (*DistributionView, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}

	before, after := series.Partition(s.ts, s.cutoff)
	return &DistributionView{
		Cutoff: s.cutoff.Format("2006-01-02"),
		Before: series.Summarize(before),
		After:  series.Summarize(after),
	}, nil
}

// HeatmapView feeds the raw-data heatmap: the full 31x12 matrix with nulls
// for missing cells
type HeatmapView struct {
	Months []string     `json:"months"`
	Days   []int        `json:"days"`
	Values [][]*float64 `json:"values"`
}

// Heatmap returns the raw grid matrix.
func (s *DashboardService) Heatmap(ctx context.Context) (*HeatmapView, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}

	days := make([]int, grid.MaxDay)
	for i := range days {
		days[i] = i + 1
	}

	return &HeatmapView{
		Months: grid.MonthNames(),
		Days:   days,
		Values: s.grid.Rows(),
	}, nil
}

// TimeSeries returns the reshaped date-ordered series.
func (s *DashboardService) TimeSeries(ctx context.Context) (series.TimeSeries, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}
	return s.ts, nil
}

// isLeapYear reports whether year is a leap year
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
