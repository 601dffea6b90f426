// Package mood implements mood check-ins and the 7-day mood history views.
package mood

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/repository"
	appErrors "mindwell-backend/pkg/errors"
)

// historyWindowDays bounds the week history query.
const historyWindowDays = 7

// Service defines the mood check-in and history operations.
type Service interface {
	// SaveMood appends one immutable mood entry for the user. The stored row
	// (with server-assigned id and timestamp) is returned.
	SaveMood(ctx context.Context, userID string, mood domain.Mood) (*domain.MoodEntry, error)

	// WeekHistory returns the user's mood entries from the trailing 7 days,
	// newest first.
	WeekHistory(ctx context.Context, userID string) ([]domain.MoodEntry, error)

	// WeekGrid returns the 7-slot day grid derived from WeekHistory.
	WeekGrid(ctx context.Context, userID string) ([]domain.WeekDaySlot, error)
}

// service implements the Service interface.
type service struct {
	moods  repository.MoodRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new mood service with the provided repository.
func NewService(moods repository.MoodRepository, logger *zap.Logger) Service {
	return &service{moods: moods, logger: logger, now: time.Now}
}

func (s *service) SaveMood(ctx context.Context, userID string, mood domain.Mood) (*domain.MoodEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, appErrors.NewValidation("user id is required")
	}
	if strings.TrimSpace(mood.ID) == "" {
		return nil, appErrors.NewValidation("mood id is required")
	}

	entry := domain.MoodEntry{
		UserID:   userID,
		MoodType: mood.ID,
		Icon:     mood.Icon,
		Label:    mood.Label,
	}
	saved, err := s.moods.InsertMood(ctx, entry)
	if err != nil {
		s.logger.Error("mood save failed", zap.String("userId", userID), zap.Error(err))
		return nil, appErrors.NewPersistence("insert "+repository.CollectionMoods, err)
	}

	s.logger.Debug("mood saved", zap.String("userId", userID), zap.String("moodType", saved.MoodType))
	return &saved, nil
}

func (s *service) WeekHistory(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, appErrors.NewValidation("user id is required")
	}

	since := s.now().AddDate(0, 0, -historyWindowDays)
	entries, err := s.moods.Moods(ctx, repository.MoodQuery{UserID: userID, Since: &since})
	if err != nil {
		s.logger.Error("mood history read failed", zap.String("userId", userID), zap.Error(err))
		return nil, appErrors.NewPersistence("query "+repository.CollectionMoods, err)
	}
	return entries, nil
}

func (s *service) WeekGrid(ctx context.Context, userID string) ([]domain.WeekDaySlot, error) {
	history, err := s.WeekHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildWeekGrid(s.now(), history), nil
}

// BuildWeekGrid folds a mood history into exactly 7 day slots, oldest day
// first and today last. For each day the first matching entry wins; since
// history arrives newest-first, that is the most recent check-in of the
// day. Days without an entry, and entries with unrecognized mood types,
// resolve to the neutral catalog fallback. Pure and deterministic for
// fixed inputs.
func BuildWeekGrid(now time.Time, history []domain.MoodEntry) []domain.WeekDaySlot {
	grid := make([]domain.WeekDaySlot, 0, historyWindowDays)

	for offset := historyWindowDays - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		dayKey := day.Format(domain.DayLayout)

		slot := domain.WeekDaySlot{
			Date:    dayKey,
			Weekday: day.Weekday().String(),
		}
		for i := range history {
			if history[i].CreatedAt.In(now.Location()).Format(domain.DayLayout) == dayKey {
				slot.MoodType = history[i].MoodType
				slot.Label = history[i].Label
				slot.HasEntry = true
				break
			}
		}

		descriptor := domain.ResolveMood(slot.MoodType)
		slot.Icon = descriptor.Icon
		slot.Color = descriptor.Color
		grid = append(grid, slot)
	}
	return grid
}
