package grid

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Parse errors. ErrColumnCount in particular is a loud failure: a source
// whose meaningful column count is not exactly twelve would otherwise be
// silently mislabeled by the positional month binding.
var (
	ErrNoHeader    = fmt.Errorf("source table has no header row")
	ErrColumnCount = fmt.Errorf("source table must have exactly %d meaningful columns", NumMonths)
)

// placeholderColumn reports whether a header names a column to discard:
// blank headers and the spreadsheet-export "Unnamed: N" placeholders.
func placeholderColumn(header string) bool {
	h := strings.TrimSpace(header)
	return h == "" || strings.HasPrefix(h, "Unnamed:")
}

// Parse converts a raw table into a Grid.
//
// The first row is the header; columns with placeholder headers are
// discarded and the remaining columns are bound positionally to
// January..December. The binding is positional by contract: the source is
// expected to present the months in calendar order, whatever its own labels
// say. Exactly twelve meaningful columns are required. Only the first 31
// data rows are read, labeled day 1..31; fewer rows simply leave the tail
// days missing. Blank cells are missing values, not zeros.
func Parse(rows [][]string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	header := rows[0]
	var keep []int
	for i, name := range header {
		if !placeholderColumn(name) {
			keep = append(keep, i)
		}
	}

	if len(keep) != NumMonths {
		return nil, fmt.Errorf("%w: found %d (header %v)", ErrColumnCount, len(keep), header)
	}

	slog.Debug("parsed grid header",
		slog.Int("total_columns", len(header)),
		slog.Int("dropped_columns", len(header)-len(keep)))

	g := &Grid{}
	dataRows := rows[1:]
	if len(dataRows) > MaxDay {
		dataRows = dataRows[:MaxDay]
	}

	for rowIdx, row := range dataRows {
		day := rowIdx + 1
		for monthIdx, colIdx := range keep {
			if colIdx >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[colIdx])
			if cell == "" {
				continue
			}

			count, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid count %q at day %d, %s: %w",
					cell, day, time.Month(monthIdx+1), err)
			}
			if count < 0 {
				return nil, fmt.Errorf("negative count %v at day %d, %s",
					count, day, time.Month(monthIdx+1))
			}

			g.set(day, time.Month(monthIdx+1), count)
		}
	}

	return g, nil
}
