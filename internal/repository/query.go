package repository

import (
	"fmt"
	"time"
)

// MoodQuery represents query parameters for reading mood entries.
type MoodQuery struct {
	UserID string     // Required: the user to read moods for
	Since  *time.Time // Optional: only entries created at or after this instant
	Limit  int        // Optional: maximum number of results (0 = no limit)
}

// Validate checks if the MoodQuery has valid parameters.
func (q MoodQuery) Validate() error {
	if q.UserID == "" {
		return fmt.Errorf("invalid query: UserID cannot be empty")
	}
	if q.Limit < 0 {
		return fmt.Errorf("invalid query: Limit cannot be negative")
	}
	return nil
}

// HasWindow returns true if the query bounds entries by time.
func (q MoodQuery) HasWindow() bool {
	return q.Since != nil
}

// HasLimit returns true if the query caps the result size.
func (q MoodQuery) HasLimit() bool {
	return q.Limit > 0
}

// ExerciseQuery represents query parameters for reading exercise logs.
type ExerciseQuery struct {
	UserID string     // Required: the user to read logs for
	Type   string     // Optional: restrict to one type tag
	Since  *time.Time // Optional: only logs created at or after this instant
	Limit  int        // Optional: maximum number of results (0 = no limit)
}

// Validate checks if the ExerciseQuery has valid parameters.
func (q ExerciseQuery) Validate() error {
	if q.UserID == "" {
		return fmt.Errorf("invalid query: UserID cannot be empty")
	}
	if q.Limit < 0 {
		return fmt.Errorf("invalid query: Limit cannot be negative")
	}
	return nil
}

// HasType returns true if the query restricts to one type tag.
func (q ExerciseQuery) HasType() bool {
	return q.Type != ""
}

// HasWindow returns true if the query bounds logs by time.
func (q ExerciseQuery) HasWindow() bool {
	return q.Since != nil
}

// HasLimit returns true if the query caps the result size.
func (q ExerciseQuery) HasLimit() bool {
	return q.Limit > 0
}
