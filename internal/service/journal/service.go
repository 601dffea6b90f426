// Package journal implements journal entry check-ins and listing.
package journal

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/repository"
	appErrors "mindwell-backend/pkg/errors"
)

// defaultListLimit caps listing when the caller does not specify one.
const defaultListLimit = 20

// Service defines the journal operations.
type Service interface {
	Save(ctx context.Context, userID, title, body, moodType string) (*domain.JournalEntry, error)
	List(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error)
}

type service struct {
	entries repository.JournalRepository
	logger  *zap.Logger
}

// NewService creates a new journal service with the provided repository.
func NewService(entries repository.JournalRepository, logger *zap.Logger) Service {
	return &service{entries: entries, logger: logger}
}

func (s *service) Save(ctx context.Context, userID, title, body, moodType string) (*domain.JournalEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, appErrors.NewValidation("user id is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, appErrors.NewValidation("journal body is required")
	}

	entry := domain.JournalEntry{
		UserID:   userID,
		Title:    title,
		Body:     body,
		MoodType: moodType,
	}
	saved, err := s.entries.InsertJournalEntry(ctx, entry)
	if err != nil {
		s.logger.Error("journal save failed", zap.String("userId", userID), zap.Error(err))
		return nil, appErrors.NewPersistence("insert "+repository.CollectionJournalEntries, err)
	}
	return &saved, nil
}

func (s *service) List(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, appErrors.NewValidation("user id is required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries, err := s.entries.JournalEntries(ctx, userID, limit)
	if err != nil {
		s.logger.Error("journal list failed", zap.String("userId", userID), zap.Error(err))
		return nil, appErrors.NewPersistence("query "+repository.CollectionJournalEntries, err)
	}
	return entries, nil
}
