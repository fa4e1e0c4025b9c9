// Package series reshapes the day x month grid into a calendar time series
// for a fixed target year and computes the descriptive statistics the
// dashboard presents.
package series

import (
	"sort"
	"time"

	"pushpulse/internal/grid"
)

// Point is a single dated observation
type Point struct {
	Date  time.Time `json:"date"`
	Count float64   `json:"count"`
}

// TimeSeries is a sequence of observations sorted strictly ascending by
// date, at most one per calendar date.
type TimeSeries []Point

// validDate reports whether (year, month, day) names a real calendar date.
// time.Date normalizes out-of-range components (April 31 becomes May 1), so
// a round-trip comparison detects the invalid combinations.
func validDate(year int, month time.Month, day int) bool {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}

// Reshape converts the grid into a time series for the target year.
//
// Every (day, month) cell holding a value is mapped onto the corresponding
// calendar date. Combinations that are not valid dates in the target year
// (day 31 of a 30-day month, February 29 outside leap years) are dropped
// silently: the grid is a fixed 31x12 rectangle, the calendar is not.
// Missing cells produce no entry. The result is sorted ascending by date.
func Reshape(g *grid.Grid, year int) TimeSeries {
	ts := make(TimeSeries, 0, grid.MaxDay*grid.NumMonths)

	for m := time.January; m <= time.December; m++ {
		for day := 1; day <= grid.MaxDay; day++ {
			count, ok := g.Cell(day, m)
			if !ok {
				continue
			}
			if !validDate(year, m, day) {
				continue
			}
			ts = append(ts, Point{
				Date:  time.Date(year, m, day, 0, 0, 0, 0, time.UTC),
				Count: count,
			})
		}
	}

	sort.Slice(ts, func(i, j int) bool { return ts[i].Date.Before(ts[j].Date) })
	return ts
}
