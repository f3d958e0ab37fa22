// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package dberr tests: verify the classification of pgx errors into the
application error taxonomy.
*/
package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "no rows maps to not found",
			err:        pgx.ErrNoRows,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped no rows maps to not found",
			err:        fmt.Errorf("query admin: %w", pgx.ErrNoRows),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unique violation maps to conflict with caller message",
			err:        &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_username_key"},
			wantStatus: http.StatusConflict,
			wantMsg:    "Username is already taken",
		},
		{
			name:       "other pg errors map to internal",
			err:        &pgconn.PgError{Code: pgerrcode.SerializationFailure},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "plain errors map to internal",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "Username is already taken")
			appErr := apperr.As(wrapped)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, appErr.Message)
			}
		})
	}
}

func TestWrap_NilPassesThrough(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "unused"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("not a pg error")))
}
