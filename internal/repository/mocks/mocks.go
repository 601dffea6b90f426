// Package mocks provides testify mocks for the repository contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/repository"
)

// MockSessionReader mocks repository.SessionReader.
type MockSessionReader struct {
	mock.Mock
}

func (m *MockSessionReader) CompletedBinauralSessions(ctx context.Context, userID string) ([]domain.BinauralSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BinauralSession), args.Error(1)
}

func (m *MockSessionReader) FinishedDeepWorkSessions(ctx context.Context, userID string) ([]domain.DeepWorkSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeepWorkSession), args.Error(1)
}

func (m *MockSessionReader) CompletedVisualizations(ctx context.Context, userID string) ([]domain.VisualizationSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisualizationSession), args.Error(1)
}

func (m *MockSessionReader) CompletedMindfulnessLogs(ctx context.Context, userID string) ([]domain.MindfulnessLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MindfulnessLog), args.Error(1)
}

// MockMoodRepository mocks repository.MoodRepository.
type MockMoodRepository struct {
	mock.Mock
}

func (m *MockMoodRepository) InsertMood(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(domain.MoodEntry), args.Error(1)
}

func (m *MockMoodRepository) Moods(ctx context.Context, query repository.MoodQuery) ([]domain.MoodEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoodEntry), args.Error(1)
}

// MockExerciseLogReader mocks repository.ExerciseLogReader.
type MockExerciseLogReader struct {
	mock.Mock
}

func (m *MockExerciseLogReader) ExerciseLogs(ctx context.Context, query repository.ExerciseQuery) ([]domain.ExerciseLog, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExerciseLog), args.Error(1)
}

// MockGoalReader mocks repository.GoalReader.
type MockGoalReader struct {
	mock.Mock
}

func (m *MockGoalReader) ActiveGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

// MockJournalRepository mocks repository.JournalRepository.
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) JournalEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
