package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pushpulse/internal/config"
	"pushpulse/internal/exporter"
	"pushpulse/internal/grid"
	"pushpulse/internal/infrastructure"
	"pushpulse/internal/series"
)

func main() {
	_ = godotenv.Load()

	out := flag.String("out", "", "output directory for CSV reports (defaults to the configured reports dir)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", slog.String("error", err.Error()))
		logger = slog.Default()
	}

	dir := cfg.Data.ReportsDir
	if *out != "" {
		dir = *out
	}

	logger.Info("Generating reports",
		slog.String("data_source", cfg.Data.Source),
		slog.String("output_dir", dir))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	source, err := grid.ForConfig(cfg.Data)
	if err != nil {
		logger.Error("Failed to build data source", slog.String("error", err.Error()))
		os.Exit(1)
	}

	g, err := grid.Load(ctx, source)
	if err != nil {
		logger.Error("Failed to load data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ts := series.Reshape(g, cfg.Dashboard.TargetYear)

	if err := exporter.NewReportExporter(dir).ExportAll(g, ts, cfg.Dashboard.DailyGoal); err != nil {
		logger.Error("Failed to export reports", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Year %d: %d entries, %.0f push-ups total\n",
		cfg.Dashboard.TargetYear, len(ts), series.Total(ts))
	if date, ok := series.GoalCrossing(ts, cfg.Dashboard.AnnualGoal); ok {
		fmt.Printf("Goal of %.0f reached on %s\n", cfg.Dashboard.AnnualGoal, date.Format("January 2"))
	} else {
		fmt.Printf("Goal of %.0f not reached; %.0f to go\n",
			cfg.Dashboard.AnnualGoal, cfg.Dashboard.AnnualGoal-series.Total(ts))
	}
	fmt.Printf("Reports written to %s\n", dir)
}
