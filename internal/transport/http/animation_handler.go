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

// AnimationHandler serves the header animation JSON.
type AnimationHandler struct {
	service      AnimationProvider
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewAnimationHandler creates an animation handler.
func NewAnimationHandler(service AnimationProvider, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnimationHandler {
	return &AnimationHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "animation_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the animation routes.
func (h *AnimationHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetAnimation)
	return r
}

// GetAnimation handles GET /api/animation. The animation is decorative:
// when the upstream is unavailable the client gets a typed 404 and renders
// without it.
func (h *AnimationHandler) GetAnimation(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Animation(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrAnimationUnavailable) {
			h.logger.InfoContext(r.Context(), "animation unavailable",
				slog.String("request_id", custommw.GetReqID(r.Context())),
			)
			h.errorHandler.HandleError(w, r, apierrors.New(
				http.StatusNotFound,
				"ANIMATION_UNAVAILABLE",
				"Header animation is not available",
			))
			return
		}

		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
