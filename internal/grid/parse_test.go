package grid

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullHeader builds a 12-column header in calendar order
func fullHeader() []string {
	return MonthNames()
}

// uniformRows builds a header plus days rows where every cell holds value
func uniformRows(days int, value float64) [][]string {
	rows := [][]string{fullHeader()}
	for d := 0; d < days; d++ {
		row := make([]string, NumMonths)
		for m := range row {
			row[m] = strconv.FormatFloat(value, 'f', -1, 64)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestParse_FullGrid(t *testing.T) {
	g, err := Parse(uniformRows(31, 30))
	require.NoError(t, err)

	assert.Equal(t, 31*12, g.CellCount())
	assert.Equal(t, float64(31*12*30), g.Total())

	v, ok := g.Cell(31, time.February)
	assert.True(t, ok, "the grid itself holds day 31 for every month")
	assert.Equal(t, float64(30), v)
}

func TestParse_DropsPlaceholderColumns(t *testing.T) {
	header := append([]string{"Unnamed: 0"}, fullHeader()...)
	header = append(header, "Unnamed: 13", "  ")

	row := make([]string, len(header))
	row[0] = "1" // placeholder column content is discarded
	for i := 1; i <= NumMonths; i++ {
		row[i] = "10"
	}

	g, err := Parse([][]string{header, row})
	require.NoError(t, err)

	assert.Equal(t, NumMonths, g.CellCount())

	v, ok := g.Cell(1, time.January)
	assert.True(t, ok)
	assert.Equal(t, float64(10), v)
}

func TestParse_ColumnCountMismatchFailsLoudly(t *testing.T) {
	tests := []struct {
		name    string
		columns int
	}{
		{"eleven columns", 11},
		{"thirteen columns", 13},
		{"one column", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := make([]string, tt.columns)
			for i := range header {
				header[i] = fmt.Sprintf("col%d", i)
			}

			_, err := Parse([][]string{header})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrColumnCount)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestParse_KeepsOnlyFirst31Rows(t *testing.T) {
	rows := uniformRows(40, 5)

	g, err := Parse(rows)
	require.NoError(t, err)
	assert.Equal(t, 31*12, g.CellCount())
	assert.Equal(t, float64(31*12*5), g.Total())
}

func TestParse_FewerThan31Rows(t *testing.T) {
	g, err := Parse(uniformRows(10, 1))
	require.NoError(t, err)

	assert.Equal(t, 10*12, g.CellCount())
	_, ok := g.Cell(11, time.January)
	assert.False(t, ok)
}

func TestParse_BlankCellsAreMissing(t *testing.T) {
	rows := [][]string{fullHeader()}
	row := make([]string, NumMonths)
	row[0] = "42" // January only; the rest blank
	rows = append(rows, row)

	g, err := Parse(rows)
	require.NoError(t, err)

	assert.Equal(t, 1, g.CellCount())
	_, ok := g.Cell(1, time.February)
	assert.False(t, ok)
}

func TestParse_RaggedRows(t *testing.T) {
	rows := [][]string{fullHeader()}
	// row shorter than the header: trailing cells are missing
	rows = append(rows, []string{"7", "8"})

	g, err := Parse(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, g.CellCount())
}

func TestParse_InvalidCells(t *testing.T) {
	tests := []struct {
		name string
		cell string
	}{
		{"non-numeric", "thirty"},
		{"negative count", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := [][]string{fullHeader()}
			row := make([]string, NumMonths)
			row[3] = tt.cell
			rows = append(rows, row)

			_, err := Parse(rows)
			assert.Error(t, err)
		})
	}
}

func TestGrid_MonthTotals(t *testing.T) {
	// all cells 30 except one cell 90: that month is higher by 60
	rows := uniformRows(31, 30)
	rows[15][int(time.June)-1] = "90"

	g, err := Parse(rows)
	require.NoError(t, err)

	totals := g.MonthTotals()
	require.Len(t, totals, 12)

	for _, mt := range totals {
		if mt.Month == time.June {
			assert.Equal(t, float64(31*30+60), mt.Total)
		} else {
			assert.Equal(t, float64(31*30), mt.Total, "month %s", mt.Month)
		}
	}
}

func TestGrid_DayTotals(t *testing.T) {
	g, err := Parse(uniformRows(31, 2))
	require.NoError(t, err)

	totals := g.DayTotals()
	require.Len(t, totals, 31)
	assert.Equal(t, 1, totals[0].Day)
	assert.Equal(t, float64(24), totals[0].Total)
	assert.Equal(t, 31, totals[30].Day)
}

func TestGrid_Rows(t *testing.T) {
	rows := [][]string{fullHeader()}
	row := make([]string, NumMonths)
	row[0] = "3"
	rows = append(rows, row)

	g, err := Parse(rows)
	require.NoError(t, err)

	matrix := g.Rows()
	require.Len(t, matrix, MaxDay)
	require.Len(t, matrix[0], NumMonths)

	require.NotNil(t, matrix[0][0])
	assert.Equal(t, float64(3), *matrix[0][0])
	assert.Nil(t, matrix[0][1])
	assert.Nil(t, matrix[1][0])
}

func TestMonthNames(t *testing.T) {
	names := MonthNames()
	require.Len(t, names, 12)
	assert.Equal(t, "January", names[0])
	assert.Equal(t, "December", names[11])
}
