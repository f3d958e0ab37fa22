// Copyright (c) 2026 Staffdeck. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
)

/*
TestConstructors verifies the code/status pairing of every taxonomy entry.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantCode   string
		wantStatus int
	}{
		{"not_found", apperr.NotFound("Admin"), "NOT_FOUND", http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("Invalid credentials"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"conflict", apperr.Conflict("Username is already taken"), "CONFLICT", http.StatusConflict},
		{"validation", apperr.ValidationError("Validation failed"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

/*
TestUnwrap verifies that the cause chain stays traversable for errors.Is.
*/
func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal(cause)

	assert.True(t, errors.Is(err, cause))
	// The cause never appears in the client-facing message.
	assert.NotContains(t, err.Error(), "connection refused")
}

/*
TestAs extracts an AppError through fmt.Errorf wrapping.
*/
func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("while registering: %w", apperr.Conflict("Username is already taken"))

	require.True(t, apperr.IsAppError(wrapped))
	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.IsAppError(nil))
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Employee not found", apperr.NotFound("Employee").Error())
}
