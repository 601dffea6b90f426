// Package progress implements the progress/statistics aggregation engine:
// it folds raw activity records into the derived summary and stats values.
package progress

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/repository"
	appErrors "mindwell-backend/pkg/errors"
)

const tracerName = "mindwell-backend/internal/service/progress"

// Service defines the progress aggregation operations.
type Service interface {
	// Summary computes the user's progress summary from the four session
	// collections. It either returns a complete summary or an error; a
	// failed read never degrades to zeroes here.
	Summary(ctx context.Context, userID string) (*domain.ProgressSummary, error)

	// Stats derives streak, weekly buckets, per-type breakdown, log-based
	// minute totals, mood trend and active goals from the flat exercise log.
	Stats(ctx context.Context, userID string) (*domain.ExerciseStats, error)
}

// service implements the Service interface.
type service struct {
	sessions  repository.SessionReader
	exercises repository.ExerciseLogReader
	moods     repository.MoodRepository
	goals     repository.GoalReader
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new progress service with the provided readers.
func NewService(
	sessions repository.SessionReader,
	exercises repository.ExerciseLogReader,
	moods repository.MoodRepository,
	goals repository.GoalReader,
	logger *zap.Logger,
) Service {
	return &service{
		sessions:  sessions,
		exercises: exercises,
		moods:     moods,
		goals:     goals,
		logger:    logger,
		now:       time.Now,
	}
}

// Summary computes {focusTimeMinutes, mindfulMinutes, totalExercisesCompleted,
// activeDays} for one user.
//
// The four reads run in parallel and the computation waits for all of them;
// the first failure cancels the rest and aborts the whole summary with an
// aggregation error naming the failed record group. Minute totals use floor
// division; FocusTimeFromLogs and MindfulMinutesFromLogs round instead.
func (s *service) Summary(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, appErrors.NewValidation("user id is required")
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "progress.Summary")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	var (
		binaural []domain.BinauralSession
		deepWork []domain.DeepWorkSession
		viz      []domain.VisualizationSession
		mindful  []domain.MindfulnessLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.sessions.CompletedBinauralSessions(gctx, userID)
		if err != nil {
			return appErrors.NewAggregation(repository.CollectionBinauralSessions, err)
		}
		binaural = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.sessions.FinishedDeepWorkSessions(gctx, userID)
		if err != nil {
			return appErrors.NewAggregation(repository.CollectionDeepWorkSessions, err)
		}
		deepWork = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.sessions.CompletedVisualizations(gctx, userID)
		if err != nil {
			return appErrors.NewAggregation(repository.CollectionVisualizations, err)
		}
		viz = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.sessions.CompletedMindfulnessLogs(gctx, userID)
		if err != nil {
			return appErrors.NewAggregation(repository.CollectionMindfulnessLogs, err)
		}
		mindful = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("progress summary aborted",
			zap.String("userId", userID),
			zap.String("group", appErrors.GroupOf(err)),
			zap.Error(err))
		return nil, err
	}

	summary := reduceSummary(binaural, deepWork, viz, mindful)
	s.logger.Debug("progress summary computed",
		zap.String("userId", userID),
		zap.Int64("focusTimeMinutes", summary.FocusTimeMinutes),
		zap.Int64("mindfulMinutes", summary.MindfulMinutes),
		zap.Int("totalExercisesCompleted", summary.TotalExercisesCompleted),
		zap.Int("activeDays", summary.ActiveDays))
	return summary, nil
}

// reduceSummary is the pure reduction behind Summary. Deterministic for
// fixed inputs: no clock reads, no randomness.
func reduceSummary(
	binaural []domain.BinauralSession,
	deepWork []domain.DeepWorkSession,
	viz []domain.VisualizationSession,
	mindful []domain.MindfulnessLog,
) *domain.ProgressSummary {
	var focusSeconds, mindfulSeconds int64
	completed := 0
	activeDays := make(map[string]struct{})

	for _, b := range binaural {
		if b.ActualDurationSeconds != nil {
			focusSeconds += *b.ActualDurationSeconds
			if *b.ActualDurationSeconds >= 0 {
				completed++
			}
		}
		if b.CompletedAt != nil {
			activeDays[domain.DayKeyUTC(*b.CompletedAt)] = struct{}{}
		}
	}

	for _, d := range deepWork {
		// Rows are pre-filtered to non-null end times, so every one counts
		// as completed; only positive derived durations add focus time.
		if sec := d.DurationSeconds(); sec > 0 {
			focusSeconds += sec
		}
		completed++
		if d.EndTime != nil {
			activeDays[domain.DayKeyUTC(*d.EndTime)] = struct{}{}
		}
	}

	for _, v := range viz {
		if v.DurationSeconds != nil {
			mindfulSeconds += *v.DurationSeconds
			if *v.DurationSeconds >= 0 {
				completed++
			}
		}
		if v.CompletedAt != nil {
			activeDays[domain.DayKeyUTC(*v.CompletedAt)] = struct{}{}
		}
	}

	for _, m := range mindful {
		if m.DurationSeconds != nil {
			mindfulSeconds += *m.DurationSeconds
			if *m.DurationSeconds >= 0 {
				completed++
			}
		}
		if m.CompletedAt != nil {
			activeDays[domain.DayKeyUTC(*m.CompletedAt)] = struct{}{}
		}
	}

	return &domain.ProgressSummary{
		FocusTimeMinutes:        focusSeconds / 60,
		MindfulMinutes:          mindfulSeconds / 60,
		TotalExercisesCompleted: completed,
		ActiveDays:              len(activeDays),
	}
}

// Stats fetches the user's exercise logs, trailing-week moods and active
// goals in parallel, then reduces them with the log-based helpers.
func (s *service) Stats(ctx context.Context, userID string) (*domain.ExerciseStats, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, appErrors.NewValidation("user id is required")
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "progress.Stats")
	defer span.End()

	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)

	var (
		logs  []domain.ExerciseLog
		moods []domain.MoodEntry
		goals []domain.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.exercises.ExerciseLogs(gctx, repository.ExerciseQuery{UserID: userID})
		if err != nil {
			return appErrors.NewAggregation(repository.CollectionExerciseLogs, err)
		}
		logs = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.moods.Moods(gctx, repository.MoodQuery{UserID: userID, Since: &weekAgo})
		if err != nil {
			return appErrors.NewAggregation(repository.CollectionMoods, err)
		}
		moods = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.goals.ActiveGoals(gctx, userID)
		if err != nil {
			return appErrors.NewAggregation(repository.CollectionGoals, err)
		}
		goals = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("exercise stats aborted",
			zap.String("userId", userID),
			zap.String("group", appErrors.GroupOf(err)),
			zap.Error(err))
		return nil, err
	}

	stats := &domain.ExerciseStats{
		WeeklyStreak:      WeeklyStreak(now, logs),
		WeeklyProgress:    WeeklyProgress(logs),
		ExerciseBreakdown: ExerciseBreakdown(logs),
		FocusTimeMinutes:  FocusTimeFromLogs(logs),
		MindfulMinutes:    MindfulMinutesFromLogs(logs),
		MoodTrend:         domain.MoodTrend(moods),
		ActiveGoals:       goals,
	}
	return stats, nil
}
