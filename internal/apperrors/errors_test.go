package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{Validation("VALIDATION_ERROR", "bad input"), http.StatusBadRequest},
		{Conflict("EMAIL_ALREADY_EXISTS", "taken"), http.StatusConflict},
		{Unauthorized("INVALID_CREDENTIALS", "nope"), http.StatusUnauthorized},
		{Forbidden("INSUFFICIENT_PERMISSIONS", "denied"), http.StatusForbidden},
		{NotFound("NOT_FOUND", "missing"), http.StatusNotFound},
		{Internal("boom", errors.New("cause")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.Status(), tt.err.Code)
	}
}

func TestAs(t *testing.T) {
	t.Run("unwraps through fmt.Errorf", func(t *testing.T) {
		base := NotFound("NOT_FOUND", "missing")
		wrapped := fmt.Errorf("loading gallery: %w", base)

		appErr, ok := As(wrapped)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("plain errors do not match", func(t *testing.T) {
		_, ok := As(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: missing", NotFound("NOT_FOUND", "missing").Error())

	withCause := Internal("boom", errors.New("cause"))
	assert.Contains(t, withCause.Error(), "cause")
	assert.ErrorIs(t, withCause, withCause.Err)
}
