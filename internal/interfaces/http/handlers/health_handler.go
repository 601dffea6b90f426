package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindwell-backend/internal/repository"
	"mindwell-backend/pkg/api"
)

type healthStatus struct {
	Status string `json:"status"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	pinger repository.Pinger
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pinger repository.Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{pinger: pinger, logger: logger}
}

// Live handles GET /health. It reports that the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	api.WriteSuccess(w, http.StatusOK, healthStatus{Status: "ok"})
}

// Ready handles GET /ready. It verifies the backing store answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		api.WriteError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	api.WriteSuccess(w, http.StatusOK, healthStatus{Status: "ready"})
}
