// Package memory provides an in-memory implementation of the repository
// contracts for tests and local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/repository"
)

// Store holds call-scoped copies of every record collection behind one
// RWMutex. Reads return copies so callers can never alias internal state.
type Store struct {
	mu sync.RWMutex

	binaural       []domain.BinauralSession
	deepWork       []domain.DeepWorkSession
	visualizations []domain.VisualizationSession
	mindfulness    []domain.MindfulnessLog
	moods          []domain.MoodEntry
	exercises      []domain.ExerciseLog
	goals          []domain.Goal
	journal        []domain.JournalEntry

	now func() time.Time
}

var _ repository.Store = (*Store)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Seed helpers for tests and local runs.

func (s *Store) SeedBinaural(rows ...domain.BinauralSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.binaural = append(s.binaural, rows...)
}

func (s *Store) SeedDeepWork(rows ...domain.DeepWorkSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deepWork = append(s.deepWork, rows...)
}

func (s *Store) SeedVisualizations(rows ...domain.VisualizationSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visualizations = append(s.visualizations, rows...)
}

func (s *Store) SeedMindfulness(rows ...domain.MindfulnessLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mindfulness = append(s.mindfulness, rows...)
}

func (s *Store) SeedMoods(rows ...domain.MoodEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moods = append(s.moods, rows...)
}

func (s *Store) SeedExercises(rows ...domain.ExerciseLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exercises = append(s.exercises, rows...)
}

func (s *Store) SeedGoals(rows ...domain.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, rows...)
}

func (s *Store) CompletedBinauralSessions(ctx context.Context, userID string) ([]domain.BinauralSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BinauralSession, 0)
	for _, r := range s.binaural {
		if r.UserID == userID && r.Completed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) FinishedDeepWorkSessions(ctx context.Context, userID string) ([]domain.DeepWorkSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DeepWorkSession, 0)
	for _, r := range s.deepWork {
		if r.UserID == userID && r.EndTime != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) CompletedVisualizations(ctx context.Context, userID string) ([]domain.VisualizationSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.VisualizationSession, 0)
	for _, r := range s.visualizations {
		if r.UserID == userID && r.Completed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) CompletedMindfulnessLogs(ctx context.Context, userID string) ([]domain.MindfulnessLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MindfulnessLog, 0)
	for _, r := range s.mindfulness {
		if r.UserID == userID && r.Completed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) InsertMood(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.New().String()
	entry.CreatedAt = s.now()
	s.moods = append(s.moods, entry)
	return entry, nil
}

func (s *Store) Moods(ctx context.Context, query repository.MoodQuery) ([]domain.MoodEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MoodEntry, 0)
	for _, r := range s.moods {
		if r.UserID != query.UserID {
			continue
		}
		if query.HasWindow() && r.CreatedAt.Before(*query.Since) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if query.HasLimit() && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (s *Store) ExerciseLogs(ctx context.Context, query repository.ExerciseQuery) ([]domain.ExerciseLog, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ExerciseLog, 0)
	for _, r := range s.exercises {
		if r.UserID != query.UserID {
			continue
		}
		if query.HasType() && r.Type != query.Type {
			continue
		}
		if query.HasWindow() && r.CreatedAt.Before(*query.Since) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if query.HasLimit() && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (s *Store) ActiveGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Goal, 0)
	for _, r := range s.goals {
		if r.UserID == userID && r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.New().String()
	entry.CreatedAt = s.now()
	s.journal = append(s.journal, entry)
	return entry, nil
}

func (s *Store) JournalEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.JournalEntry, 0)
	for _, r := range s.journal {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
