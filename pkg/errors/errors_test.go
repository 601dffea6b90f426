package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAggregation_CarriesGroupAndCause(t *testing.T) {
	cause := errors.New("connection refused")

	err := NewAggregation("binaural_sessions", cause)

	require.Error(t, err)
	assert.True(t, IsAggregation(err))
	assert.Equal(t, "binaural_sessions", GroupOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "binaural_sessions")
}

func TestWrap_PreservesTypeAndGroup(t *testing.T) {
	inner := NewPersistence("insert moods", errors.New("timeout"))

	wrapped := Wrap(inner, "save mood")

	assert.True(t, IsPersistence(wrapped))
	assert.Equal(t, "insert moods", GroupOf(wrapped))
	assert.Contains(t, wrapped.Error(), "save mood")
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "anything"))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), "context")

	assert.True(t, IsInternal(wrapped))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("user id is required")))
	assert.True(t, IsStore(NewStore("moods", "query failed", errors.New("x"))))
	assert.True(t, IsNotFound(NewNotFound("missing")))
	assert.True(t, IsUnauthorized(NewUnauthorized("no token")))
	assert.False(t, IsValidation(errors.New("plain")))
}
