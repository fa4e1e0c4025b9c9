package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"pushpulse/internal/config"
	"pushpulse/internal/errors"
	"pushpulse/internal/grid"
	"pushpulse/internal/infrastructure"
	customMiddleware "pushpulse/internal/middleware"
	"pushpulse/internal/services"
	transport "pushpulse/internal/transport/http"
)

// Version is the application version, overridable at build time.
var Version = "1.0.0"

// AppName shows up in startup logs.
const AppName = "pushpulse"

// Application is the main application container.
type Application struct {
	Config    *config.Config
	Router    *chi.Mux
	Server    *http.Server
	Logger    *slog.Logger
	Metrics   *infrastructure.Metrics
	Dashboard *services.DashboardService
	Animation *services.AnimationService
	Health    *services.HealthService
	StaticFS  fs.FS
}

// NewApplication builds the application: configuration, logger, metrics,
// data load and router. The staticFS holds the embedded dashboard page and
// may be nil.
func NewApplication(staticFS fs.FS) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.String("data_source", cfg.Data.Source))

	metrics, err := infrastructure.InitializeMetrics(Version, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	app := &Application{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		StaticFS: staticFS,
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices loads the data and builds the service layer.
func (a *Application) initializeServices() error {
	source, err := grid.ForConfig(a.Config.Data)
	if err != nil {
		return fmt.Errorf("failed to build data source: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ReadTimeout)
	defer cancel()

	dashboard, err := services.NewDashboardService(ctx, source, a.Config.Dashboard, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dashboard service: %w", err)
	}
	a.Dashboard = dashboard

	a.Animation = services.NewAnimationService(a.Config.Dashboard.AnimationURL, a.Logger)
	a.Health = services.NewHealthService(Version, dashboard, a.Logger)

	return nil
}

// setupRouter configures the HTTP router with all routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	r.Group(func(r chi.Router) {
		r.Use(a.Metrics.Middleware())
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.Logger))
		r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger))
		r.Use(customMiddleware.SecurityHeaders)
		r.Use(customMiddleware.Compress(5))

		if a.Config.Security.EnableCORS {
			r.Use(customMiddleware.CORS(a.corsConfig()))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
			).Handler)
		}

		a.setupAPIRoutes(r)

		r.Handle("/*", transport.NewStaticHandler(a.StaticFS))
	})

	if a.Metrics.PrometheusHTTP != nil {
		r.Handle("/metrics", a.Metrics.PrometheusHTTP)
	}

	a.Router = r
}

// setupAPIRoutes mounts the API handlers.
func (a *Application) setupAPIRoutes(r chi.Router) {
	errorHandler := errors.NewErrorHandler(a.Logger, a.Config.Logging.Development)

	r.Route("/api", func(r chi.Router) {
		dashboardHandler := transport.NewDashboardHandler(a.Dashboard, a.Logger, errorHandler)
		r.Mount("/dashboard", dashboardHandler.Routes())

		animationHandler := transport.NewAnimationHandler(a.Animation, a.Logger, errorHandler)
		r.Mount("/animation", animationHandler.Routes())

		healthHandler := transport.NewHealthHandler(a.Health, a.Logger)
		r.Mount("/health", healthHandler.Routes())
	})
}

// corsConfig derives the CORS settings from the security configuration.
func (a *Application) corsConfig() customMiddleware.CORSConfig {
	return customMiddleware.CORSConfig{
		AllowedOrigins: a.Config.Security.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}
}

// createServer creates the HTTP server.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the server and blocks until an interrupt or a server error,
// then shuts down gracefully.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.Stop(context.Background())
	})

	return g.Wait()
}

// Stop gracefully stops the application.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.Metrics != nil {
		if err := a.Metrics.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down metrics", slog.String("error", err.Error()))
		}
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		a.Logger.ErrorContext(ctx, "Error closing log file", slog.String("error", err.Error()))
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}
