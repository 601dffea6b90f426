// Package repository defines the read/write contracts the services depend
// on. Implementations live under internal/infrastructure/persistence.
package repository

import (
	"context"

	"mindwell-backend/internal/domain"
)

// SessionReader reads the per-kind session collections used by the summary
// aggregator. Each method returns only rows that qualify for aggregation:
// completed sessions, or deep-work sessions with a non-null end time.
type SessionReader interface {
	// CompletedBinauralSessions returns the user's binaural sessions with
	// the completion flag set.
	CompletedBinauralSessions(ctx context.Context, userID string) ([]domain.BinauralSession, error)

	// FinishedDeepWorkSessions returns the user's deep-work sessions whose
	// end time is non-null.
	FinishedDeepWorkSessions(ctx context.Context, userID string) ([]domain.DeepWorkSession, error)

	// CompletedVisualizations returns the user's completed visualization
	// sessions.
	CompletedVisualizations(ctx context.Context, userID string) ([]domain.VisualizationSession, error)

	// CompletedMindfulnessLogs returns the user's completed mindfulness logs.
	CompletedMindfulnessLogs(ctx context.Context, userID string) ([]domain.MindfulnessLog, error)
}

// MoodRepository reads and appends mood check-in rows. Rows are immutable
// after insert.
type MoodRepository interface {
	// InsertMood appends one mood entry and returns the stored row with its
	// server-assigned id and timestamp.
	InsertMood(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error)

	// Moods returns the user's mood entries matching the query, newest first.
	Moods(ctx context.Context, query MoodQuery) ([]domain.MoodEntry, error)
}

// ExerciseLogReader reads the flat type-tagged exercise log.
type ExerciseLogReader interface {
	ExerciseLogs(ctx context.Context, query ExerciseQuery) ([]domain.ExerciseLog, error)
}

// GoalReader reads the user's goals.
type GoalReader interface {
	ActiveGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// JournalRepository reads and appends journal entries.
type JournalRepository interface {
	InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error)
	JournalEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error)
}

// Pinger reports whether the underlying store is reachable. Used by the
// readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store bundles every contract a fully wired application needs.
type Store interface {
	SessionReader
	MoodRepository
	ExerciseLogReader
	GoalReader
	JournalRepository
	Pinger
}
