package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pushpulse/internal/config"
	"pushpulse/internal/grid"
	"pushpulse/internal/shared/testutil"
)

// stubSource serves an in-memory table.
type stubSource struct {
	rows [][]string
	err  error
}

func (s stubSource) Rows(ctx context.Context) ([][]string, error) {
	return s.rows, s.err
}

// fixtureRows builds a table with entries in January days 1-4 and July day 1.
func fixtureRows() [][]string {
	header := []string{"Unnamed: 0"}
	for m := 1; m <= 12; m++ {
		header = append(header, fmt.Sprintf("M%d", m))
	}

	blank := func(day int) []string {
		row := make([]string, 13)
		row[0] = fmt.Sprintf("%d", day)
		return row
	}

	day1 := blank(1)
	day1[1] = "60" // January
	day1[7] = "20" // July
	day2 := blank(2)
	day2[1] = "40"
	day3 := blank(3)
	day3[1] = "0"
	day4 := blank(4)
	day4[1] = "5"

	return [][]string{header, day1, day2, day3, day4}
}

func fixtureConfig() config.DashboardConfig {
	return config.DashboardConfig{
		Title:      "New Year's Resolution 2021",
		Author:     "Micah Paul",
		TargetYear: 2021,
		DailyGoal:  30,
		AnnualGoal: 100,
		GoalCutoff: "2021-02-01",
	}
}

func fixtureService(t *testing.T) *DashboardService {
	t.Helper()
	svc, err := NewDashboardService(context.Background(), stubSource{rows: fixtureRows()}, fixtureConfig(), testutil.DiscardLogger())
	require.NoError(t, err)
	return svc
}

func TestNewDashboardService(t *testing.T) {
	t.Run("loads source and reshapes series", func(t *testing.T) {
		svc := fixtureService(t)
		assert.Equal(t, 5, len(svc.ts))
		assert.Equal(t, 5, svc.grid.CellCount())
	})

	t.Run("source failure propagates", func(t *testing.T) {
		src := stubSource{err: fmt.Errorf("boom")}
		_, err := NewDashboardService(context.Background(), src, fixtureConfig(), testutil.DiscardLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("column count mismatch propagates", func(t *testing.T) {
		rows := [][]string{{"January", "February"}}
		_, err := NewDashboardService(context.Background(), stubSource{rows: rows}, fixtureConfig(), testutil.DiscardLogger())
		require.ErrorIs(t, err, grid.ErrColumnCount)
	})

	t.Run("invalid cutoff rejected", func(t *testing.T) {
		cfg := fixtureConfig()
		cfg.GoalCutoff = "not-a-date"
		_, err := NewDashboardService(context.Background(), stubSource{rows: fixtureRows()}, cfg, testutil.DiscardLogger())
		require.Error(t, err)
	})
}

func TestDashboardServiceSummary(t *testing.T) {
	svc := fixtureService(t)
	ctx := context.Background()

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, "New Year's Resolution 2021", summary.Title)
	assert.Equal(t, "Micah Paul", summary.Author)
	assert.Equal(t, 2021, summary.TargetYear)
	assert.InDelta(t, 125.0, summary.Total, 1e-9)
	assert.Equal(t, 5, summary.Entries)
	assert.InDelta(t, 25.0, summary.DailyMean, 1e-9)
	assert.InDelta(t, 100.0/365.0, summary.RequiredMean, 1e-9)

	// cumulative: 60, 100, 100, 105 -> first strictly above 100 is Jan 4
	assert.True(t, summary.GoalReached)
	require.NotNil(t, summary.GoalDate)
	assert.Equal(t, "2021-01-04", *summary.GoalDate)

	require.NotNil(t, summary.BestDay)
	assert.Equal(t, "2021-01-01", summary.BestDay.Date)
	assert.InDelta(t, 60.0, summary.BestDay.Count, 1e-9)
}

func TestDashboardServiceMonthly(t *testing.T) {
	svc := fixtureService(t)

	view, err := svc.Monthly(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Labels, 12)
	require.Len(t, view.Totals, 12)
	assert.Equal(t, "January", view.Labels[0])
	assert.InDelta(t, 105.0, view.Totals[0], 1e-9)
	assert.InDelta(t, 20.0, view.Totals[6], 1e-9)
	assert.InDelta(t, 125.0/12.0, view.Mean, 1e-9)
	assert.Equal(t, MonthStat{Month: "January", Total: 105}, view.Best)
	assert.Equal(t, MonthStat{Month: "February", Total: 0}, view.Worst)
}

func TestDashboardServiceDaily(t *testing.T) {
	svc := fixtureService(t)

	view, err := svc.Daily(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Labels, 31)
	require.Len(t, view.Totals, 31)
	assert.Equal(t, 1, view.Labels[0])
	assert.InDelta(t, 80.0, view.Totals[0], 1e-9) // Jan 1 + Jul 1
	assert.InDelta(t, 40.0, view.Totals[1], 1e-9)
	assert.InDelta(t, 125.0/31.0, view.Mean, 1e-9)
}

func TestDashboardServiceCumulative(t *testing.T) {
	svc := fixtureService(t)

	view, err := svc.Cumulative(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Points, 5)
	assert.InDelta(t, 60.0, view.Points[0].Actual, 1e-9)
	assert.InDelta(t, 30.0, view.Points[0].Expected, 1e-9)
	assert.InDelta(t, 125.0, view.Points[4].Actual, 1e-9)
	assert.InDelta(t, 150.0, view.Points[4].Expected, 1e-9)
	assert.InDelta(t, 100.0, view.AnnualGoal, 1e-9)
	assert.True(t, view.GoalReached)
	require.NotNil(t, view.GoalDate)
	assert.Equal(t, "2021-01-04", *view.GoalDate)
}

func TestDashboardServiceDistribution(t *testing.T) {
	svc := fixtureService(t)

	view, err := svc.Distribution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2021-02-01", view.Cutoff)
	assert.Equal(t, 4, view.Before.Count)
	assert.Equal(t, 1, view.After.Count)
	assert.InDelta(t, 20.0, view.After.Mean, 1e-9)
}

func TestDashboardServiceHeatmap(t *testing.T) {
	svc := fixtureService(t)

	view, err := svc.Heatmap(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Months, 12)
	require.Len(t, view.Days, 31)
	require.Len(t, view.Values, 31)
	assert.Equal(t, 1, view.Days[0])

	require.NotNil(t, view.Values[0][0])
	assert.InDelta(t, 60.0, *view.Values[0][0], 1e-9)
	assert.Nil(t, view.Values[0][1]) // February 1st has no entry
	require.NotNil(t, view.Values[2][0])
	assert.InDelta(t, 0.0, *view.Values[2][0], 1e-9) // explicit zero survives
}

func TestDashboardServiceTimeSeries(t *testing.T) {
	svc := fixtureService(t)

	ts, err := svc.TimeSeries(context.Background())
	require.NoError(t, err)
	require.Len(t, ts, 5)
	assert.Equal(t, "2021-01-01", ts[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2021-07-01", ts[4].Date.Format("2006-01-02"))
}

func TestDashboardServiceNoData(t *testing.T) {
	// A valid header with no data rows yields an empty series.
	header := fixtureRows()[0]
	svc, err := NewDashboardService(context.Background(), stubSource{rows: [][]string{header}}, fixtureConfig(), testutil.DiscardLogger())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.Summary(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.Monthly(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.Daily(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.Cumulative(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.Distribution(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.Heatmap(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.TimeSeries(ctx)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.Narrative(ctx)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDashboardServiceNarrative(t *testing.T) {
	svc := fixtureService(t)

	n, err := svc.Narrative(context.Background())
	require.NoError(t, err)

	assert.Contains(t, n.Intro, "new year's resolution for 2021")
	assert.Contains(t, n.Monthly, "best month was January with 105 total push-ups")
	assert.Contains(t, n.Monthly, "in February I did just 0 push-ups")
	assert.Contains(t, n.Daily, "the most push-ups in a single day, 60")
	assert.Contains(t, n.Daily, "Friday") // Jan 1 2021 was a Friday
	assert.Contains(t, n.Progress, "I reached my goal")
	assert.Contains(t, n.Progress, "January 4th")
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		22: "22nd",
		23: "23rd",
		31: "31st",
	}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n), "ordinal(%d)", n)
	}
}
