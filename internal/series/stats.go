package series

import (
	"sort"
	"time"
)

// Total sums all observations.
func Total(ts TimeSeries) float64 {
	var total float64
	for _, p := range ts {
		total += p.Count
	}
	return total
}

// Mean averages the observations. Missing dates carry no entry and so are
// excluded from the denominator. Returns 0 for an empty series.
func Mean(ts TimeSeries) float64 {
	if len(ts) == 0 {
		return 0
	}
	return Total(ts) / float64(len(ts))
}

// Max returns the observation with the highest count and whether one
// exists. Ties resolve to the earliest date.
func Max(ts TimeSeries) (Point, bool) {
	if len(ts) == 0 {
		return Point{}, false
	}
	best := ts[0]
	for _, p := range ts[1:] {
		if p.Count > best.Count {
			best = p
		}
	}
	return best, true
}

// Min returns the observation with the lowest count and whether one exists.
// Ties resolve to the earliest date.
func Min(ts TimeSeries) (Point, bool) {
	if len(ts) == 0 {
		return Point{}, false
	}
	best := ts[0]
	for _, p := range ts[1:] {
		if p.Count < best.Count {
			best = p
		}
	}
	return best, true
}

// CumulativePoint pairs the running actual total with the expected pace
// total at one date.
type CumulativePoint struct {
	Date     time.Time `json:"date"`
	Actual   float64   `json:"actual"`
	Expected float64   `json:"expected"`
}

// Cumulative computes the running sum of the series in date order, plus a
// synthetic expected series advancing by expectedPerEntry per observation.
// The actual curve is monotonic non-decreasing and ends at the grand total.
func Cumulative(ts TimeSeries, expectedPerEntry float64) []CumulativePoint {
	out := make([]CumulativePoint, len(ts))
	var actual, expected float64
	for i, p := range ts {
		actual += p.Count
		expected += expectedPerEntry
		out[i] = CumulativePoint{Date: p.Date, Actual: actual, Expected: expected}
	}
	return out
}

// GoalCrossing returns the first date whose cumulative sum strictly exceeds
// goal. Reaching the goal exactly does not cross it. The second return is
// false when the grand total never exceeds the goal.
func GoalCrossing(ts TimeSeries, goal float64) (time.Time, bool) {
	var running float64
	for _, p := range ts {
		running += p.Count
		if running > goal {
			return p.Date, true
		}
	}
	return time.Time{}, false
}

// WeekdayTotal is the summed count per day of the week
type WeekdayTotal struct {
	Weekday time.Weekday `json:"weekday"`
	Total   float64      `json:"total"`
}

// WeekdayTotals sums the series per weekday, Sunday..Saturday.
func WeekdayTotals(ts TimeSeries) []WeekdayTotal {
	totals := make([]WeekdayTotal, 7)
	for i := range totals {
		totals[i].Weekday = time.Weekday(i)
	}
	for _, p := range ts {
		totals[p.Date.Weekday()].Total += p.Count
	}
	return totals
}

// Distribution summarizes one sample group for the violin comparison
type Distribution struct {
	Count   int       `json:"count"`
	Mean    float64   `json:"mean"`
	Median  float64   `json:"median"`
	Q1      float64   `json:"q1"`
	Q3      float64   `json:"q3"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Samples []float64 `json:"samples"`
}

// Summarize computes the distribution summary of a sample group. The zero
// Distribution is returned for an empty group.
func Summarize(samples []float64) Distribution {
	if len(samples) == 0 {
		return Distribution{Samples: []float64{}}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Count:   len(sorted),
		Mean:    sum / float64(len(sorted)),
		Median:  quantile(sorted, 0.5),
		Q1:      quantile(sorted, 0.25),
		Q3:      quantile(sorted, 0.75),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Samples: samples,
	}
}

// quantile interpolates linearly between the closest ranks of a sorted
// sample
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Partition splits the series at the cutoff date: observations on or before
// the cutoff form the first group, observations after it the second.
func Partition(ts TimeSeries, cutoff time.Time) (before, after []float64) {
	before = make([]float64, 0, len(ts))
	after = make([]float64, 0)
	for _, p := range ts {
		if p.Date.After(cutoff) {
			after = append(after, p.Count)
		} else {
			before = append(before, p.Count)
		}
	}
	return before, after
}
