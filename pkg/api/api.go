// Package api defines the contracts for API requests and responses.
// It decouples the API structure from the internal domain models.
package api

import (
	"encoding/json"
	"net/http"
)

// SaveMoodRequest is the expected body for a POST /moods request.
type SaveMoodRequest struct {
	ID    string `json:"id" validate:"required"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// SaveJournalRequest is the expected body for a POST /journal request.
type SaveJournalRequest struct {
	Title string `json:"title"`
	Body  string `json:"body" validate:"required"`
	Mood  string `json:"mood"`
}

// MoodEntryResponse is the API representation of one mood check-in.
type MoodEntryResponse struct {
	ID        string `json:"id"`
	MoodType  string `json:"moodType"`
	Icon      string `json:"icon"`
	Label     string `json:"label"`
	CreatedAt string `json:"createdAt"`
}

// JournalEntryResponse is the API representation of one journal entry.
type JournalEntryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	MoodType  string `json:"moodType,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// UserResponse is the API representation of the authenticated user.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrorResponse is a standardized error message for API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteSuccess formats a successful JSON response.
func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already written; nothing left to do.
		return
	}
}

// WriteError formats a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
