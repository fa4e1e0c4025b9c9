package http

import (
	"context"
	"encoding/json"

	"pushpulse/internal/series"
	"pushpulse/internal/services"
)

// DashboardReader is the view surface the dashboard handler depends on.
type DashboardReader interface {
	Summary(ctx context.Context) (*services.Summary, error)
	Monthly(ctx context.Context) (*services.MonthlyView, error)
	Daily(ctx context.Context) (*services.DailyView, error)
	Cumulative(ctx context.Context) (*services.CumulativeView, error)
	Distribution(ctx context.Context) (*services.DistributionView, error)
	Heatmap(ctx context.Context) (*services.HeatmapView, error)
	TimeSeries(ctx context.Context) (series.TimeSeries, error)
	Narrative(ctx context.Context) (*services.Narrative, error)
}

// AnimationProvider serves the header animation JSON.
type AnimationProvider interface {
	Animation(ctx context.Context) (json.RawMessage, error)
}

// HealthChecker reports service health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) services.HealthStatus
	LivenessCheck(ctx context.Context) services.HealthStatus
}
