package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "build"}
		assert.Equal(t, "build not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "build"}
		err2 := &NotFoundError{Entity: "build"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "build"}
		err2 := &NotFoundError{Entity: "part"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrBuildNotFound, ErrBuildNotFound))
		assert.False(t, errors.Is(ErrBuildNotFound, ErrPartNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrPartNotFound)
		assert.True(t, errors.Is(wrapped, ErrPartNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrBuildNotFound))
		assert.True(t, IsNotFound(ErrSharedViewNotFound))
		assert.False(t, IsNotFound(ErrInvalidPartKind))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message joins all messages", func(t *testing.T) {
		err := &ValidationError{Messages: []string{"name is required", "price must be positive"}}
		assert.Equal(t, "validation failed: name is required, price must be positive", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name is required")))
		assert.True(t, IsValidation(ErrEmailTaken))
		assert.False(t, IsValidation(ErrBuildNotFound))
	})

	t.Run("IsValidation through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create failed: %w", NewValidationError("name is required"))
		assert.True(t, IsValidation(wrapped))
	})
}

func TestMalformedInputError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewMalformedInputError("invalid specs document")
		assert.Equal(t, "invalid specs document", err.Error())
	})

	t.Run("IsMalformedInput helper", func(t *testing.T) {
		assert.True(t, IsMalformedInput(ErrInvalidComponentData))
		assert.False(t, IsMalformedInput(ErrInvalidPartKind))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrLoginRequired))
		assert.False(t, IsAuthentication(ErrNotBuildOwner))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotBuildOwner))
		assert.False(t, IsAuthorization(ErrLoginRequired))
	})

	t.Run("messages", func(t *testing.T) {
		assert.Equal(t, "authentication required", ErrLoginRequired.Error())
		assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
	})
}

func TestBusinessErrors(t *testing.T) {
	assert.Equal(t, "invalid part kind", ErrInvalidPartKind.Error())
	assert.Equal(t, "invalid sort key", ErrInvalidSortKey.Error())
	assert.Equal(t, "invalid price range", ErrInvalidPriceRange.Error())
}
