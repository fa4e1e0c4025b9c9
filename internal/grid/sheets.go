package grid

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads the grid from a Google Sheets range. Authentication
// uses Application Default Credentials; a read-only scope is sufficient.
type SheetsSource struct {
	SpreadsheetID string
	ReadRange     string

	// service is injected in tests; built lazily otherwise
	service *sheets.Service
}

// Rows implements Source.
func (s *SheetsSource) Rows(ctx context.Context) ([][]string, error) {
	svc := s.service
	if svc == nil {
		var err error
		svc, err = sheets.NewService(ctx, option.WithScopes(sheets.SpreadsheetsReadonlyScope))
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", err)
		}
	}

	readRange := s.ReadRange
	if readRange == "" {
		readRange = "A1:N32"
	}

	resp, err := svc.Spreadsheets.Values.Get(s.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %q: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
