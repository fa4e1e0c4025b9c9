package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// HealthService reports service health and runtime details.
type HealthService struct {
	version   string
	dashboard *DashboardService
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus is the health check response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// ServiceHealth is the per-component health entry
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates the health service. The dashboard service may be
// nil when data loading failed at startup.
func NewHealthService(version string, dashboard *DashboardService, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", version))

	return &HealthService{
		version:   version,
		dashboard: dashboard,
		startTime: time.Now(),
		logger:    logger,
	}
}

// HealthCheck returns the overall health status with runtime details and
// the state of the data store.
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "performing health check",
		slog.String("uptime", time.Since(hs.startTime).String()))

	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime_seconds": time.Since(hs.startTime).Seconds(),
			"go_version":     runtime.Version(),
			"goroutines":     runtime.NumGoroutine(),
			"os":             runtime.GOOS,
			"arch":           runtime.GOARCH,
		},
		Services: map[string]interface{}{
			"data": hs.checkDataHealth(),
		},
	}

	if data, ok := status.Services["data"].(ServiceHealth); ok && data.Status != "ok" {
		status.Status = "degraded"
	}

	return status
}

// LivenessCheck reports that the process is alive.
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
	}
}

func (hs *HealthService) checkDataHealth() ServiceHealth {
	if hs.dashboard == nil || len(hs.dashboard.ts) == 0 {
		return ServiceHealth{
			Status:  "unavailable",
			Message: "no data loaded",
		}
	}
	return ServiceHealth{Status: "ok"}
}
