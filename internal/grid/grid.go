// Package grid loads the day-of-month x calendar-month count table from a
// tabular source and exposes aggregate views over it.
package grid

import (
	"time"
)

const (
	// MaxDay is the number of day-of-month rows in a grid
	MaxDay = 31
	// NumMonths is the number of month columns in a grid
	NumMonths = 12
)

// MonthNames returns the canonical column labels, January..December.
func MonthNames() []string {
	names := make([]string, NumMonths)
	for i := 0; i < NumMonths; i++ {
		names[i] = time.Month(i + 1).String()
	}
	return names
}

// Grid is the day x month count table. Rows are days of the month 1..31,
// columns the twelve calendar months. Cells may be missing. A Grid is
// immutable after construction.
type Grid struct {
	counts  [MaxDay][NumMonths]float64
	present [MaxDay][NumMonths]bool
}

// Cell returns the count at (day, month) and whether a value is present.
// Day is 1-based; out-of-range coordinates report absent.
func (g *Grid) Cell(day int, month time.Month) (float64, bool) {
	if day < 1 || day > MaxDay || month < time.January || month > time.December {
		return 0, false
	}
	return g.counts[day-1][month-1], g.present[day-1][month-1]
}

// set records a cell value. Only the parser writes cells.
func (g *Grid) set(day int, month time.Month, count float64) {
	g.counts[day-1][month-1] = count
	g.present[day-1][month-1] = true
}

// Total sums all present cells.
func (g *Grid) Total() float64 {
	var total float64
	for d := 0; d < MaxDay; d++ {
		for m := 0; m < NumMonths; m++ {
			if g.present[d][m] {
				total += g.counts[d][m]
			}
		}
	}
	return total
}

// CellCount reports how many cells hold a value.
func (g *Grid) CellCount() int {
	var n int
	for d := 0; d < MaxDay; d++ {
		for m := 0; m < NumMonths; m++ {
			if g.present[d][m] {
				n++
			}
		}
	}
	return n
}

// MonthTotal is a per-month aggregate
type MonthTotal struct {
	Month time.Month `json:"month"`
	Total float64    `json:"total"`
}

// MonthTotals sums each month column, in calendar order. Missing cells
// contribute zero.
func (g *Grid) MonthTotals() []MonthTotal {
	totals := make([]MonthTotal, NumMonths)
	for m := 0; m < NumMonths; m++ {
		totals[m].Month = time.Month(m + 1)
		for d := 0; d < MaxDay; d++ {
			if g.present[d][m] {
				totals[m].Total += g.counts[d][m]
			}
		}
	}
	return totals
}

// DayTotal is a per-day-of-month aggregate across all months
type DayTotal struct {
	Day   int     `json:"day"`
	Total float64 `json:"total"`
}

// DayTotals sums each day-of-month row across the twelve months.
func (g *Grid) DayTotals() []DayTotal {
	totals := make([]DayTotal, MaxDay)
	for d := 0; d < MaxDay; d++ {
		totals[d].Day = d + 1
		for m := 0; m < NumMonths; m++ {
			if g.present[d][m] {
				totals[d].Total += g.counts[d][m]
			}
		}
	}
	return totals
}

// Rows returns the raw 31x12 matrix for heatmap rendering. Missing cells
// are nil.
func (g *Grid) Rows() [][]*float64 {
	rows := make([][]*float64, MaxDay)
	for d := 0; d < MaxDay; d++ {
		row := make([]*float64, NumMonths)
		for m := 0; m < NumMonths; m++ {
			if g.present[d][m] {
				v := g.counts[d][m]
				row[m] = &v
			}
		}
		rows[d] = row
	}
	return rows
}
