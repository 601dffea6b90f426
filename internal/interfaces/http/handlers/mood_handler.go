package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/infrastructure/observability"
	"mindwell-backend/internal/middleware"
	"mindwell-backend/internal/service/mood"
	"mindwell-backend/pkg/api"
)

// MoodHandler serves mood check-ins and the week history/grid views.
type MoodHandler struct {
	service   mood.Service
	collector *observability.Collector
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(service mood.Service, collector *observability.Collector, logger *zap.Logger) *MoodHandler {
	return &MoodHandler{
		service:   service,
		collector: collector,
		validate:  validator.New(),
		logger:    logger,
	}
}

// SaveMood handles POST /api/v1/moods.
func (h *MoodHandler) SaveMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req api.SaveMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "mood id is required")
		return
	}

	saved, err := h.service.SaveMood(r.Context(), userID, domain.Mood{ID: req.ID, Icon: req.Icon, Label: req.Label})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.collector.MoodsSaved.Inc()
	api.WriteSuccess(w, http.StatusCreated, moodEntryResponse(*saved))
}

// GetWeekHistory handles GET /api/v1/moods/week.
func (h *MoodHandler) GetWeekHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	history, err := h.service.WeekHistory(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	out := make([]api.MoodEntryResponse, 0, len(history))
	for _, e := range history {
		out = append(out, moodEntryResponse(e))
	}
	api.WriteSuccess(w, http.StatusOK, out)
}

// GetWeekGrid handles GET /api/v1/moods/grid.
func (h *MoodHandler) GetWeekGrid(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	grid, err := h.service.WeekGrid(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	api.WriteSuccess(w, http.StatusOK, grid)
}

func moodEntryResponse(e domain.MoodEntry) api.MoodEntryResponse {
	return api.MoodEntryResponse{
		ID:        e.ID,
		MoodType:  e.MoodType,
		Icon:      e.Icon,
		Label:     e.Label,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
