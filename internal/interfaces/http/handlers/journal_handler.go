package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/middleware"
	"mindwell-backend/internal/service/journal"
	"mindwell-backend/pkg/api"
)

// JournalHandler serves journal entry saves and listing.
type JournalHandler struct {
	service  journal.Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(service journal.Service, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{service: service, validate: validator.New(), logger: logger}
}

// Save handles POST /api/v1/journal.
func (h *JournalHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req api.SaveJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "journal body is required")
		return
	}

	saved, err := h.service.Save(r.Context(), userID, req.Title, req.Body, req.Mood)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	api.WriteSuccess(w, http.StatusCreated, journalEntryResponse(*saved))
}

// List handles GET /api/v1/journal.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			api.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.service.List(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	out := make([]api.JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, journalEntryResponse(e))
	}
	api.WriteSuccess(w, http.StatusOK, out)
}

func journalEntryResponse(e domain.JournalEntry) api.JournalEntryResponse {
	return api.JournalEntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Body:      e.Body,
		MoodType:  e.MoodType,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
