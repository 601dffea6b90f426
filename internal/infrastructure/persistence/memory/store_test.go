package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/repository"
)

func i64(v int64) *int64 { return &v }

func TestCompletedFiltersExcludeUnfinishedRows(t *testing.T) {
	// Arrange
	store := NewStore()
	end := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	start := end.Add(-time.Hour)
	store.SeedBinaural(
		domain.BinauralSession{ID: "b1", UserID: "u", Completed: true, ActualDurationSeconds: i64(60)},
		domain.BinauralSession{ID: "b2", UserID: "u", Completed: false},
		domain.BinauralSession{ID: "b3", UserID: "other", Completed: true},
	)
	store.SeedDeepWork(
		domain.DeepWorkSession{ID: "d1", UserID: "u", StartTime: &start, EndTime: &end},
		domain.DeepWorkSession{ID: "d2", UserID: "u", StartTime: &start}, // still running
	)

	// Act
	binaural, err := store.CompletedBinauralSessions(context.Background(), "u")
	require.NoError(t, err)
	deepWork, err := store.FinishedDeepWorkSessions(context.Background(), "u")
	require.NoError(t, err)

	// Assert
	require.Len(t, binaural, 1)
	assert.Equal(t, "b1", binaural[0].ID)
	require.Len(t, deepWork, 1)
	assert.Equal(t, "d1", deepWork[0].ID)
}

func TestMoods_WindowOrderingAndLimit(t *testing.T) {
	// Arrange
	store := NewStore()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	store.SeedMoods(
		domain.MoodEntry{ID: "m1", UserID: "u", MoodType: "sad", CreatedAt: now.AddDate(0, 0, -9)},
		domain.MoodEntry{ID: "m2", UserID: "u", MoodType: "calm", CreatedAt: now.AddDate(0, 0, -3)},
		domain.MoodEntry{ID: "m3", UserID: "u", MoodType: "happy", CreatedAt: now.Add(-time.Hour)},
	)
	since := now.AddDate(0, 0, -7)

	// Act
	entries, err := store.Moods(context.Background(), repository.MoodQuery{UserID: "u", Since: &since})

	// Assert: windowed to 7 days, newest first.
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "m3", entries[0].ID)
	assert.Equal(t, "m2", entries[1].ID)

	limited, err := store.Moods(context.Background(), repository.MoodQuery{UserID: "u", Since: &since, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "m3", limited[0].ID)
}

func TestMoods_InvalidQueryRejected(t *testing.T) {
	store := NewStore()

	_, err := store.Moods(context.Background(), repository.MoodQuery{})

	assert.Error(t, err)
}

func TestInsertMood_AssignsIDAndTimestamp(t *testing.T) {
	store := NewStore()

	saved, err := store.InsertMood(context.Background(), domain.MoodEntry{UserID: "u", MoodType: "calm"})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	entries, err := store.Moods(context.Background(), repository.MoodQuery{UserID: "u"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestExerciseLogs_TypeFilter(t *testing.T) {
	store := NewStore()
	now := time.Now()
	store.SeedExercises(
		domain.ExerciseLog{ID: "e1", UserID: "u", Type: "deep_work", CreatedAt: now},
		domain.ExerciseLog{ID: "e2", UserID: "u", Type: "mindfulness", CreatedAt: now},
	)

	logs, err := store.ExerciseLogs(context.Background(), repository.ExerciseQuery{UserID: "u", Type: "deep_work"})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "e1", logs[0].ID)
}

func TestJournalEntries_NewestFirstWithLimit(t *testing.T) {
	store := NewStore()
	_, err := store.InsertJournalEntry(context.Background(), domain.JournalEntry{UserID: "u", Body: "one"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := store.InsertJournalEntry(context.Background(), domain.JournalEntry{UserID: "u", Body: "two"})
	require.NoError(t, err)

	entries, err := store.JournalEntries(context.Background(), "u", 1)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)
}
