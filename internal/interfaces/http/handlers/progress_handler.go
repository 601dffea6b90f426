package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindwell-backend/internal/infrastructure/observability"
	"mindwell-backend/internal/middleware"
	"mindwell-backend/internal/service/progress"
	"mindwell-backend/pkg/api"
)

// ProgressHandler serves the progress summary and exercise statistics.
type ProgressHandler struct {
	service   progress.Service
	collector *observability.Collector
	logger    *zap.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(service progress.Service, collector *observability.Collector, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{service: service, collector: collector, logger: logger}
}

// GetSummary handles GET /api/v1/progress/summary.
func (h *ProgressHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.collector.SummariesComputed.Inc()
	api.WriteSuccess(w, http.StatusOK, summary)
}

// GetStats handles GET /api/v1/progress/stats.
func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	api.WriteSuccess(w, http.StatusOK, stats)
}
