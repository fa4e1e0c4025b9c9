package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "pushpulse/internal/errors"
	custommw "pushpulse/internal/middleware"
	"pushpulse/internal/services"
)

// DashboardHandler serves the dashboard view endpoints.
type DashboardHandler struct {
	service      DashboardReader
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(service DashboardReader, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/summary", h.GetSummary)
	r.Get("/monthly", h.GetMonthly)
	r.Get("/daily", h.GetDaily)
	r.Get("/cumulative", h.GetCumulative)
	r.Get("/distribution", h.GetDistribution)
	r.Get("/heatmap", h.GetHeatmap)
	r.Get("/timeseries", h.GetTimeSeries)
	r.Get("/narrative", h.GetNarrative)

	return r
}

// GetSummary handles GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.handleViewError(w, r, "summary", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

// GetMonthly handles GET /api/dashboard/monthly
func (h *DashboardHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Monthly(r.Context())
	if err != nil {
		h.handleViewError(w, r, "monthly", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
	})
}

// GetDaily handles GET /api/dashboard/daily
func (h *DashboardHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Daily(r.Context())
	if err != nil {
		h.handleViewError(w, r, "daily", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
	})
}

// GetCumulative handles GET /api/dashboard/cumulative
func (h *DashboardHandler) GetCumulative(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Cumulative(r.Context())
	if err != nil {
		h.handleViewError(w, r, "cumulative", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
	})
}

// GetDistribution handles GET /api/dashboard/distribution
func (h *DashboardHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Distribution(r.Context())
	if err != nil {
		h.handleViewError(w, r, "distribution", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
	})
}

// GetHeatmap handles GET /api/dashboard/heatmap
func (h *DashboardHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Heatmap(r.Context())
	if err != nil {
		h.handleViewError(w, r, "heatmap", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
	})
}

// GetTimeSeries handles GET /api/dashboard/timeseries
func (h *DashboardHandler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	ts, err := h.service.TimeSeries(r.Context())
	if err != nil {
		h.handleViewError(w, r, "timeseries", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   ts,
		"count":  len(ts),
	})
}

// GetNarrative handles GET /api/dashboard/narrative
func (h *DashboardHandler) GetNarrative(w http.ResponseWriter, r *http.Request) {
	narrative, err := h.service.Narrative(r.Context())
	if err != nil {
		h.handleViewError(w, r, "narrative", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   narrative,
	})
}

// handleViewError maps service errors to API errors and writes the response.
func (h *DashboardHandler) handleViewError(w http.ResponseWriter, r *http.Request, view string, err error) {
	h.logger.ErrorContext(r.Context(), "failed to build dashboard view",
		slog.String("view", view),
		slog.String("error", err.Error()),
		slog.String("request_id", custommw.GetReqID(r.Context())),
	)

	if errors.Is(err, services.ErrNoData) {
		h.errorHandler.HandleError(w, r, apierrors.New(
			http.StatusNotFound,
			"DATA_NOT_FOUND",
			"No push-up data available",
		))
		return
	}

	h.errorHandler.HandleError(w, r, err)
}
