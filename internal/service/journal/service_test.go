package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindwell-backend/internal/domain"
	"mindwell-backend/internal/repository/mocks"
	appErrors "mindwell-backend/pkg/errors"
)

func TestSave_RequiresUserAndBody(t *testing.T) {
	repo := new(mocks.MockJournalRepository)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Save(context.Background(), "", "t", "body", "")
	assert.True(t, appErrors.IsValidation(err))

	_, err = svc.Save(context.Background(), "u", "t", "   ", "")
	assert.True(t, appErrors.IsValidation(err))

	repo.AssertExpectations(t)
}

func TestSave_ReturnsStoredEntry(t *testing.T) {
	repo := new(mocks.MockJournalRepository)
	stored := domain.JournalEntry{ID: "j1", UserID: "u", Title: "Morning", Body: "slept well"}
	repo.On("InsertJournalEntry", mock.Anything, mock.Anything).Return(stored, nil)
	svc := NewService(repo, zap.NewNop())

	saved, err := svc.Save(context.Background(), "u", "Morning", "slept well", "calm")

	require.NoError(t, err)
	assert.Equal(t, "j1", saved.ID)
}

func TestSave_WrapsPersistenceFailure(t *testing.T) {
	cause := errors.New("insert failed")
	repo := new(mocks.MockJournalRepository)
	repo.On("InsertJournalEntry", mock.Anything, mock.Anything).Return(domain.JournalEntry{}, cause)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Save(context.Background(), "u", "t", "body", "")

	assert.True(t, appErrors.IsPersistence(err))
	assert.ErrorIs(t, err, cause)
}

func TestList_DefaultsLimit(t *testing.T) {
	repo := new(mocks.MockJournalRepository)
	repo.On("JournalEntries", mock.Anything, "u", 20).Return([]domain.JournalEntry{}, nil)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.List(context.Background(), "u", 0)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
