package grid

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"pushpulse/internal/config"
)

// Source is a tabular backend the grid can be loaded from. Implementations
// return the raw table including the header row; Parse applies the grid
// layout rules.
type Source interface {
	// Rows reads the full raw table.
	Rows(ctx context.Context) ([][]string, error)
}

// ForConfig selects the Source matching the data configuration.
func ForConfig(cfg config.DataConfig) (Source, error) {
	switch cfg.Source {
	case "csv":
		return &CSVSource{Path: cfg.Path}, nil
	case "xlsx":
		return &XLSXSource{Path: cfg.Path, Sheet: cfg.SheetName}, nil
	case "sheets":
		return &SheetsSource{SpreadsheetID: cfg.SpreadsheetID, ReadRange: cfg.ReadRange}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Source)
	}
}

// Load reads the configured source and parses it into a Grid.
func Load(ctx context.Context, src Source) (*Grid, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read source table: %w", err)
	}
	g, err := Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid: %w", err)
	}
	return g, nil
}

// CSVSource reads the grid from a local CSV file.
type CSVSource struct {
	Path string
}

// Rows implements Source.
func (s *CSVSource) Rows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Rows may be ragged when trailing cells are blank
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}
