package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// ServiceName identifies this service in exported metrics
	ServiceName = "pushpulse"
	// MeterName is the instrumentation scope for application metrics
	MeterName = "pushpulse"
)

// Metrics holds the OpenTelemetry meter provider and the HTTP instruments
// exposed on /metrics via the Prometheus exporter.
type Metrics struct {
	MeterProvider   *sdkmetric.MeterProvider
	Meter           metric.Meter
	PrometheusHTTP  http.Handler
	requestCounter  metric.Int64Counter
	requestDuration metric.Float64Histogram
	logger          *slog.Logger
}

// InitializeMetrics sets up OpenTelemetry metrics with a Prometheus exporter.
func InitializeMetrics(version string, logger *slog.Logger) (*Metrics, error) {
	if logger == nil {
		logger = slog.Default()
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(version),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	// Dedicated registry so repeated initialization cannot collide on the
	// default registerer.
	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(MeterName)

	requestCounter, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Total HTTP requests processed"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	logger.Info("metrics initialized",
		slog.String("service", ServiceName),
		slog.String("version", version))

	return &Metrics{
		MeterProvider:   provider,
		Meter:           meter,
		PrometheusHTTP:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestCounter:  requestCounter,
		requestDuration: requestDuration,
		logger:          logger,
	}, nil
}

// Middleware records request count and duration per route and status.
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", r.URL.Path),
				attribute.Int("http.status_code", ww.Status()),
			)
			m.requestCounter.Add(r.Context(), 1, attrs)
			m.requestDuration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m.MeterProvider == nil {
		return nil
	}
	return m.MeterProvider.Shutdown(ctx)
}
