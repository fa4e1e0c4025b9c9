package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// daily builds a series of consecutive days starting Jan 1, 2021
func daily(counts ...float64) TimeSeries {
	start := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	ts := make(TimeSeries, len(counts))
	for i, c := range counts {
		ts[i] = Point{Date: start.AddDate(0, 0, i), Count: c}
	}
	return ts
}

func TestTotalAndMean(t *testing.T) {
	ts := daily(10, 20, 30)
	assert.Equal(t, float64(60), Total(ts))
	assert.Equal(t, float64(20), Mean(ts))

	assert.Equal(t, float64(0), Total(nil))
	assert.Equal(t, float64(0), Mean(nil))
}

func TestMaxMin(t *testing.T) {
	ts := daily(10, 90, 30, 90)

	max, ok := Max(ts)
	require.True(t, ok)
	assert.Equal(t, float64(90), max.Count)
	// ties resolve to the earliest date
	assert.Equal(t, ts[1].Date, max.Date)

	min, ok := Min(ts)
	require.True(t, ok)
	assert.Equal(t, float64(10), min.Count)
	assert.Equal(t, ts[0].Date, min.Date)

	_, ok = Max(nil)
	assert.False(t, ok)
	_, ok = Min(nil)
	assert.False(t, ok)
}

func TestCumulative(t *testing.T) {
	ts := daily(10, 0, 30)

	cum := Cumulative(ts, 30)
	require.Len(t, cum, 3)

	assert.Equal(t, float64(10), cum[0].Actual)
	assert.Equal(t, float64(10), cum[1].Actual)
	assert.Equal(t, float64(40), cum[2].Actual)

	assert.Equal(t, float64(30), cum[0].Expected)
	assert.Equal(t, float64(90), cum[2].Expected)

	// monotonic non-decreasing, final value equals the grand total
	for i := 1; i < len(cum); i++ {
		assert.GreaterOrEqual(t, cum[i].Actual, cum[i-1].Actual)
	}
	assert.Equal(t, Total(ts), cum[len(cum)-1].Actual)
}

func TestGoalCrossing(t *testing.T) {
	t.Run("crossing exists", func(t *testing.T) {
		ts := daily(40, 40, 40)
		date, ok := GoalCrossing(ts, 100)
		require.True(t, ok)
		assert.Equal(t, ts[2].Date, date)
	})

	t.Run("exact total never exceeds", func(t *testing.T) {
		ts := daily(50, 50)
		_, ok := GoalCrossing(ts, 100)
		assert.False(t, ok, "sum equal to the goal does not cross it")
	})

	t.Run("equality at an entry defers to the next positive entry", func(t *testing.T) {
		// cumulative hits exactly 100 at index 1; index 2 adds nothing,
		// index 3 crosses
		ts := daily(60, 40, 0, 5)
		date, ok := GoalCrossing(ts, 100)
		require.True(t, ok)
		assert.Equal(t, ts[3].Date, date)
	})

	t.Run("empty series", func(t *testing.T) {
		_, ok := GoalCrossing(nil, 10)
		assert.False(t, ok)
	})
}

func TestWeekdayTotals(t *testing.T) {
	// Jan 1, 2021 was a Friday
	ts := daily(1, 2, 3) // Fri, Sat, Sun

	totals := WeekdayTotals(ts)
	require.Len(t, totals, 7)
	assert.Equal(t, float64(1), totals[time.Friday].Total)
	assert.Equal(t, float64(2), totals[time.Saturday].Total)
	assert.Equal(t, float64(3), totals[time.Sunday].Total)
	assert.Equal(t, float64(0), totals[time.Monday].Total)
}

func TestSummarize(t *testing.T) {
	d := Summarize([]float64{30, 60, 30, 90, 30})

	assert.Equal(t, 5, d.Count)
	assert.Equal(t, float64(48), d.Mean)
	assert.Equal(t, float64(30), d.Median)
	assert.Equal(t, float64(30), d.Min)
	assert.Equal(t, float64(90), d.Max)
	assert.Len(t, d.Samples, 5)
}

func TestSummarize_Empty(t *testing.T) {
	d := Summarize(nil)
	assert.Equal(t, 0, d.Count)
	assert.NotNil(t, d.Samples)
}

func TestSummarize_SingleSample(t *testing.T) {
	d := Summarize([]float64{42})
	assert.Equal(t, float64(42), d.Median)
	assert.Equal(t, float64(42), d.Q1)
	assert.Equal(t, float64(42), d.Q3)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	assert.Equal(t, float64(25), quantile(sorted, 0.5))
	assert.Equal(t, float64(10), quantile(sorted, 0))
	assert.Equal(t, float64(40), quantile(sorted, 1))
}

func TestPartition(t *testing.T) {
	ts := daily(1, 2, 3, 4)
	cutoff := ts[1].Date // Jan 2

	before, after := Partition(ts, cutoff)

	// the cutoff day itself belongs to the first group
	assert.Equal(t, []float64{1, 2}, before)
	assert.Equal(t, []float64{3, 4}, after)
}

func TestPartition_AllBefore(t *testing.T) {
	ts := daily(1, 2)
	before, after := Partition(ts, ts[1].Date.AddDate(0, 1, 0))

	assert.Len(t, before, 2)
	assert.Empty(t, after)
}
