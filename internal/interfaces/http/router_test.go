package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindwell-backend/internal/config"
	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/infrastructure/observability"
	"mindwell-backend/internal/infrastructure/persistence/memory"
	"mindwell-backend/internal/service/journal"
	"mindwell-backend/internal/service/mood"
	"mindwell-backend/internal/service/progress"
	"mindwell-backend/pkg/api"
)

const testJWTSecret = "router-test-secret-with-at-least-32-characters"

func testServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	cfg := &config.Config{
		Environment: "test",
		Port:        0,
		Supabase:    config.Supabase{JWTSecret: testJWTSecret},
		CORS:        config.CORS{AllowedOrigins: []string{"*"}},
		Features:    config.Features{EnableMetrics: true},
	}
	store := memory.NewStore()
	logger := zap.NewNop()

	router := NewRouter(
		cfg,
		store,
		progress.NewService(store, store, store, store, logger),
		mood.NewService(store, logger),
		journal.NewService(store, logger),
		nil,
		observability.NewCollector("test"),
		logger,
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv, store
}

func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_HealthAndReadiness(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := nethttp.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	ready, err := nethttp.Get(srv.URL + "/ready")
	require.NoError(t, err)
	defer ready.Body.Close()
	assert.Equal(t, nethttp.StatusOK, ready.StatusCode)
}

func TestRouter_MetricsExposed(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := nethttp.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestRouter_APIRequiresAuth(t *testing.T) {
	srv, _ := testServer(t)

	for _, path := range []string{
		"/api/v1/me",
		"/api/v1/progress/summary",
		"/api/v1/progress/stats",
		"/api/v1/moods/week",
		"/api/v1/moods/grid",
		"/api/v1/journal/",
	} {
		resp, err := nethttp.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRouter_SaveMoodThenGrid(t *testing.T) {
	srv, _ := testServer(t)
	auth := bearerFor(t, "user-1")

	body, err := json.Marshal(api.SaveMoodRequest{ID: "happy", Icon: "sentiment_very_satisfied", Label: "Happy"})
	require.NoError(t, err)
	req, err := nethttp.NewRequest(nethttp.MethodPost, srv.URL+"/api/v1/moods/", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	var saved api.MoodEntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "happy", saved.MoodType)

	gridReq, err := nethttp.NewRequest(nethttp.MethodGet, srv.URL+"/api/v1/moods/grid", nil)
	require.NoError(t, err)
	gridReq.Header.Set("Authorization", auth)

	gridResp, err := nethttp.DefaultClient.Do(gridReq)
	require.NoError(t, err)
	defer gridResp.Body.Close()
	require.Equal(t, nethttp.StatusOK, gridResp.StatusCode)

	var grid []domain.WeekDaySlot
	require.NoError(t, json.NewDecoder(gridResp.Body).Decode(&grid))
	require.Len(t, grid, 7)
	today := grid[6]
	assert.True(t, today.HasEntry)
	assert.Equal(t, "happy", today.MoodType)
}

func TestRouter_SaveMoodRejectsMissingID(t *testing.T) {
	srv, _ := testServer(t)

	req, err := nethttp.NewRequest(nethttp.MethodPost, srv.URL+"/api/v1/moods/", bytes.NewReader([]byte(`{"icon":"x"}`)))
	require.NoError(t, err)
	req.Header.Set("Authorization", bearerFor(t, "user-1"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestRouter_ProgressSummaryEmptyStore(t *testing.T) {
	srv, _ := testServer(t)

	req, err := nethttp.NewRequest(nethttp.MethodGet, srv.URL+"/api/v1/progress/summary", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", bearerFor(t, "user-1"))

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var summary domain.ProgressSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Zero(t, summary.FocusTimeMinutes)
	assert.Zero(t, summary.MindfulMinutes)
	assert.Zero(t, summary.TotalExercisesCompleted)
	assert.Zero(t, summary.ActiveDays)
}

func TestRouter_MeFallsBackToTokenSubject(t *testing.T) {
	srv, _ := testServer(t)

	req, err := nethttp.NewRequest(nethttp.MethodGet, srv.URL+"/api/v1/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", bearerFor(t, "user-77"))

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var user api.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "user-77", user.ID)
	assert.Empty(t, user.Email)
}
