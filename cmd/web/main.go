package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"pushpulse/internal/app"
)

// Embedded dashboard page and assets
//go:embed all:webui/*
var webuiFiles embed.FS

func main() {
	// .env for local development, absent in production
	_ = godotenv.Load()

	var staticFS fs.FS
	if sub, err := fs.Sub(webuiFiles, "webui"); err == nil {
		staticFS = sub
	} else {
		slog.Warn("embedded dashboard page unavailable", slog.String("error", err.Error()))
	}

	application, err := app.NewApplication(staticFS)
	if err != nil {
		slog.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
