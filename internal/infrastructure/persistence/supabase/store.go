// Package supabase implements the repository contracts on top of the hosted
// Postgres service, reached through the supabase-go/postgrest client.
package supabase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/infrastructure/observability"
	"mindwell-backend/internal/repository"
	appErrors "mindwell-backend/pkg/errors"
)

// Operation labels for the store metrics.
const (
	opSelect = "select"
	opInsert = "insert"
)

// Store implements repository.Store against a Supabase project. All reads
// are filtered server-side; the store never mutates session rows.
type Store struct {
	client    *supabase.Client
	collector *observability.Collector
	logger    *zap.Logger
}

var _ repository.Store = (*Store)(nil)

// New creates a store from a project URL and service-role key. The service
// role key is required so reads bypass row-level security on behalf of the
// authenticated backend.
func New(projectURL, serviceRoleKey string, collector *observability.Collector, logger *zap.Logger) (*Store, error) {
	client, err := supabase.NewClient(projectURL, serviceRoleKey, nil)
	if err != nil {
		return nil, appErrors.NewInternal("failed to create supabase client", err)
	}
	return &Store{client: client, collector: collector, logger: logger}, nil
}

// NewWithClient wraps an existing supabase client, used when the auth
// surface shares the client with the store.
func NewWithClient(client *supabase.Client, collector *observability.Collector, logger *zap.Logger) *Store {
	return &Store{client: client, collector: collector, logger: logger}
}

// Client exposes the underlying supabase client for the auth collaborator.
func (s *Store) Client() *supabase.Client {
	return s.client
}

// Row shapes. Timestamp columns are timestamptz, which the client returns
// as RFC 3339 strings.

type binauralRow struct {
	ID                    string     `json:"id"`
	UserID                string     `json:"user_id"`
	ActualDurationSeconds *int64     `json:"actual_duration_seconds"`
	Completed             bool       `json:"completed"`
	CompletedAt           *time.Time `json:"completed_at"`
}

type deepWorkRow struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type visualizationRow struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	DurationSeconds *int64     `json:"duration_seconds"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at"`
}

type mindfulnessRow struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	DurationSeconds *int64     `json:"duration_seconds"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at"`
}

type moodRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MoodType  string    `json:"mood_type"`
	Icon      string    `json:"icon"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// newMoodRow omits id and created_at so the store assigns them.
type newMoodRow struct {
	UserID   string `json:"user_id"`
	MoodType string `json:"mood_type"`
	Icon     string `json:"icon"`
	Label    string `json:"label"`
}

type exerciseRow struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Type            string    `json:"type"`
	DurationSeconds *int64    `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

type goalRow struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	TargetMinutes int64     `json:"target_minutes"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

type journalRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	MoodType  string    `json:"mood_type"`
	CreatedAt time.Time `json:"created_at"`
}

// newJournalRow omits id and created_at so the store assigns them.
type newJournalRow struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	MoodType string `json:"mood_type"`
}

func (s *Store) CompletedBinauralSessions(ctx context.Context, userID string) ([]domain.BinauralSession, error) {
	data, _, err := s.client.From(repository.CollectionBinauralSessions).
		Select("id,user_id,actual_duration_seconds,completed,completed_at", "", false).
		Eq("user_id", userID).
		Eq("completed", "true").
		Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionBinauralSessions, err)
	}

	var rows []binauralRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionBinauralSessions, err)
	}

	sessions := make([]domain.BinauralSession, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, domain.BinauralSession{
			ID:                    r.ID,
			UserID:                r.UserID,
			ActualDurationSeconds: r.ActualDurationSeconds,
			Completed:             r.Completed,
			CompletedAt:           r.CompletedAt,
		})
	}
	s.observe(opSelect, repository.CollectionBinauralSessions, "success")
	return sessions, nil
}

func (s *Store) FinishedDeepWorkSessions(ctx context.Context, userID string) ([]domain.DeepWorkSession, error) {
	data, _, err := s.client.From(repository.CollectionDeepWorkSessions).
		Select("id,user_id,start_time,end_time", "", false).
		Eq("user_id", userID).
		Not("end_time", "is", "null").
		Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionDeepWorkSessions, err)
	}

	var rows []deepWorkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionDeepWorkSessions, err)
	}

	sessions := make([]domain.DeepWorkSession, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, domain.DeepWorkSession{
			ID:        r.ID,
			UserID:    r.UserID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	s.observe(opSelect, repository.CollectionDeepWorkSessions, "success")
	return sessions, nil
}

func (s *Store) CompletedVisualizations(ctx context.Context, userID string) ([]domain.VisualizationSession, error) {
	data, _, err := s.client.From(repository.CollectionVisualizations).
		Select("id,user_id,duration_seconds,completed,completed_at", "", false).
		Eq("user_id", userID).
		Eq("completed", "true").
		Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionVisualizations, err)
	}

	var rows []visualizationRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionVisualizations, err)
	}

	sessions := make([]domain.VisualizationSession, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, domain.VisualizationSession{
			ID:              r.ID,
			UserID:          r.UserID,
			DurationSeconds: r.DurationSeconds,
			Completed:       r.Completed,
			CompletedAt:     r.CompletedAt,
		})
	}
	s.observe(opSelect, repository.CollectionVisualizations, "success")
	return sessions, nil
}

func (s *Store) CompletedMindfulnessLogs(ctx context.Context, userID string) ([]domain.MindfulnessLog, error) {
	data, _, err := s.client.From(repository.CollectionMindfulnessLogs).
		Select("id,user_id,duration_seconds,completed,completed_at", "", false).
		Eq("user_id", userID).
		Eq("completed", "true").
		Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionMindfulnessLogs, err)
	}

	var rows []mindfulnessRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionMindfulnessLogs, err)
	}

	logs := make([]domain.MindfulnessLog, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, domain.MindfulnessLog{
			ID:              r.ID,
			UserID:          r.UserID,
			DurationSeconds: r.DurationSeconds,
			Completed:       r.Completed,
			CompletedAt:     r.CompletedAt,
		})
	}
	s.observe(opSelect, repository.CollectionMindfulnessLogs, "success")
	return logs, nil
}

func (s *Store) InsertMood(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	payload := newMoodRow{
		UserID:   entry.UserID,
		MoodType: entry.MoodType,
		Icon:     entry.Icon,
		Label:    entry.Label,
	}
	data, _, err := s.client.From(repository.CollectionMoods).
		Insert(payload, false, "", "representation", "").
		Execute()
	if err != nil {
		return domain.MoodEntry{}, s.storeError(opInsert, repository.CollectionMoods, err)
	}

	var rows []moodRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return domain.MoodEntry{}, s.storeError(opInsert, repository.CollectionMoods, err)
	}
	if len(rows) == 0 {
		s.observe(opInsert, repository.CollectionMoods, "error")
		return domain.MoodEntry{}, appErrors.NewStore(repository.CollectionMoods, "insert returned no representation", nil)
	}
	s.observe(opInsert, repository.CollectionMoods, "success")
	return moodFromRow(rows[0]), nil
}

func (s *Store) Moods(ctx context.Context, query repository.MoodQuery) ([]domain.MoodEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, appErrors.NewValidation(err.Error())
	}

	builder := s.client.From(repository.CollectionMoods).
		Select("id,user_id,mood_type,icon,label,created_at", "", false).
		Eq("user_id", query.UserID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if query.HasWindow() {
		builder = builder.Gte("created_at", query.Since.UTC().Format(time.RFC3339))
	}
	if query.HasLimit() {
		builder = builder.Limit(query.Limit, "")
	}

	data, _, err := builder.Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionMoods, err)
	}

	var rows []moodRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionMoods, err)
	}

	entries := make([]domain.MoodEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, moodFromRow(r))
	}
	s.observe(opSelect, repository.CollectionMoods, "success")
	return entries, nil
}

func (s *Store) ExerciseLogs(ctx context.Context, query repository.ExerciseQuery) ([]domain.ExerciseLog, error) {
	if err := query.Validate(); err != nil {
		return nil, appErrors.NewValidation(err.Error())
	}

	builder := s.client.From(repository.CollectionExerciseLogs).
		Select("id,user_id,type,duration_seconds,created_at", "", false).
		Eq("user_id", query.UserID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if query.HasType() {
		builder = builder.Eq("type", query.Type)
	}
	if query.HasWindow() {
		builder = builder.Gte("created_at", query.Since.UTC().Format(time.RFC3339))
	}
	if query.HasLimit() {
		builder = builder.Limit(query.Limit, "")
	}

	data, _, err := builder.Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionExerciseLogs, err)
	}

	var rows []exerciseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionExerciseLogs, err)
	}

	logs := make([]domain.ExerciseLog, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, domain.ExerciseLog{
			ID:              r.ID,
			UserID:          r.UserID,
			Type:            r.Type,
			DurationSeconds: r.DurationSeconds,
			CreatedAt:       r.CreatedAt,
		})
	}
	s.observe(opSelect, repository.CollectionExerciseLogs, "success")
	return logs, nil
}

func (s *Store) ActiveGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	data, _, err := s.client.From(repository.CollectionGoals).
		Select("id,user_id,title,target_minutes,active,created_at", "", false).
		Eq("user_id", userID).
		Eq("active", "true").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionGoals, err)
	}

	var rows []goalRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionGoals, err)
	}

	goals := make([]domain.Goal, 0, len(rows))
	for _, r := range rows {
		goals = append(goals, domain.Goal{
			ID:            r.ID,
			UserID:        r.UserID,
			Title:         r.Title,
			TargetMinutes: r.TargetMinutes,
			Active:        r.Active,
			CreatedAt:     r.CreatedAt,
		})
	}
	s.observe(opSelect, repository.CollectionGoals, "success")
	return goals, nil
}

func (s *Store) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	payload := newJournalRow{
		UserID:   entry.UserID,
		Title:    entry.Title,
		Body:     entry.Body,
		MoodType: entry.MoodType,
	}
	data, _, err := s.client.From(repository.CollectionJournalEntries).
		Insert(payload, false, "", "representation", "").
		Execute()
	if err != nil {
		return domain.JournalEntry{}, s.storeError(opInsert, repository.CollectionJournalEntries, err)
	}

	var rows []journalRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return domain.JournalEntry{}, s.storeError(opInsert, repository.CollectionJournalEntries, err)
	}
	if len(rows) == 0 {
		s.observe(opInsert, repository.CollectionJournalEntries, "error")
		return domain.JournalEntry{}, appErrors.NewStore(repository.CollectionJournalEntries, "insert returned no representation", nil)
	}
	s.observe(opInsert, repository.CollectionJournalEntries, "success")
	return journalFromRow(rows[0]), nil
}

func (s *Store) JournalEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	data, _, err := s.client.From(repository.CollectionJournalEntries).
		Select("id,user_id,title,body,mood_type,created_at", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, s.storeError(opSelect, repository.CollectionJournalEntries, err)
	}

	var rows []journalRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, s.storeError(opSelect, repository.CollectionJournalEntries, err)
	}

	entries := make([]domain.JournalEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, journalFromRow(r))
	}
	s.observe(opSelect, repository.CollectionJournalEntries, "success")
	return entries, nil
}

// Ping issues a minimal read to verify the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	_, _, err := s.client.From(repository.CollectionGoals).
		Select("id", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return s.storeError(opSelect, repository.CollectionGoals, err)
	}
	s.observe(opSelect, repository.CollectionGoals, "success")
	return nil
}

// observe counts one store operation. The collector is optional so tests can
// construct a store without metrics.
func (s *Store) observe(operation, collection, status string) {
	if s.collector == nil {
		return
	}
	s.collector.StoreOperations.WithLabelValues(operation, collection, status).Inc()
}

func (s *Store) storeError(operation, collection string, err error) error {
	s.observe(operation, collection, "error")
	s.logger.Error("store operation failed",
		zap.String("collection", collection),
		zap.Error(err))
	return appErrors.NewStore(collection, "operation failed", err)
}

func moodFromRow(r moodRow) domain.MoodEntry {
	return domain.MoodEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		MoodType:  r.MoodType,
		Icon:      r.Icon,
		Label:     r.Label,
		CreatedAt: r.CreatedAt,
	}
}

func journalFromRow(r journalRow) domain.JournalEntry {
	return domain.JournalEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Body:      r.Body,
		MoodType:  r.MoodType,
		CreatedAt: r.CreatedAt,
	}
}
