package domain

import "time"

// Exercise type tags used by the generic exercise_logs collection.
const (
	ExerciseTypeBinaural      = "binaural"
	ExerciseTypeDeepWork      = "deep_work"
	ExerciseTypeVisualization = "visualization"
	ExerciseTypeMindfulness   = "mindfulness"
)

// ExerciseLog is one row of the flat, type-tagged exercise log used by the
// streak and breakdown statistics.
type ExerciseLog struct {
	ID              string
	UserID          string
	Type            string
	DurationSeconds *int64
	CreatedAt       time.Time
}

// Goal is a user-defined wellness goal surfaced alongside exercise stats.
type Goal struct {
	ID            string
	UserID        string
	Title         string
	TargetMinutes int64
	Active        bool
	CreatedAt     time.Time
}

// JournalEntry is one immutable journal row.
type JournalEntry struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	MoodType  string
	CreatedAt time.Time
}
