package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	supabaseclient "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/infrastructure/observability"
	"mindwell-backend/internal/repository"
)

func storeAgainst(t *testing.T, handler http.HandlerFunc) (*Store, *observability.Collector) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := supabaseclient.NewClient(srv.URL, "service-role-key", nil)
	require.NoError(t, err)

	collector := observability.NewCollector("test")
	return NewWithClient(client, collector, zap.NewNop()), collector
}

func TestStore_CountsSuccessfulSelects(t *testing.T) {
	// Arrange
	store, collector := storeAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	})

	// Act
	sessions, err := store.CompletedBinauralSessions(context.Background(), "user-1")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, sessions)
	got := testutil.ToFloat64(collector.StoreOperations.WithLabelValues(
		"select", repository.CollectionBinauralSessions, "success"))
	assert.Equal(t, 1.0, got)
}

func TestStore_CountsFailedSelects(t *testing.T) {
	// Arrange
	store, collector := storeAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	// Act
	_, err := store.FinishedDeepWorkSessions(context.Background(), "user-1")

	// Assert
	require.Error(t, err)
	got := testutil.ToFloat64(collector.StoreOperations.WithLabelValues(
		"select", repository.CollectionDeepWorkSessions, "error"))
	assert.Equal(t, 1.0, got)
	success := testutil.ToFloat64(collector.StoreOperations.WithLabelValues(
		"select", repository.CollectionDeepWorkSessions, "success"))
	assert.Zero(t, success)
}

func TestStore_CountsInserts(t *testing.T) {
	// Arrange
	store, collector := storeAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"m-1","user_id":"user-1","mood_type":"happy","icon":"","label":"","created_at":"2024-06-10T12:00:00Z"}]`))
	})

	// Act
	entry, err := store.InsertMood(context.Background(), domain.MoodEntry{UserID: "user-1", MoodType: "happy"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "m-1", entry.ID)
	got := testutil.ToFloat64(collector.StoreOperations.WithLabelValues(
		"insert", repository.CollectionMoods, "success"))
	assert.Equal(t, 1.0, got)
}

func TestStore_NilCollectorIsAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	client, err := supabaseclient.NewClient(srv.URL, "service-role-key", nil)
	require.NoError(t, err)
	store := NewWithClient(client, nil, zap.NewNop())

	goals, err := store.ActiveGoals(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, goals)
}
