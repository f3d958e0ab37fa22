// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package validate tests: exercises the chainable validator rules against
valid and invalid inputs, and checks that Err aggregates every failed
rule into a single VALIDATION_ERROR with per-field details.
*/
package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "non-empty value passes", value: "alice", wantErr: false},
		{name: "empty string fails", value: "", wantErr: true},
		{name: "whitespace only fails", value: "   \t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Required("username", tt.value).Err()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Lengths(t *testing.T) {
	tests := []struct {
		name    string
		build   func(v *validate.Validator) *validate.Validator
		wantErr bool
	}{
		{
			name:    "within bounds",
			build:   func(v *validate.Validator) *validate.Validator { return v.MinLen("password", "secret12", 8).MaxLen("password", "secret12", 72) },
			wantErr: false,
		},
		{
			name:    "below minimum",
			build:   func(v *validate.Validator) *validate.Validator { return v.MinLen("password", "short", 8) },
			wantErr: true,
		},
		{
			name:    "above maximum",
			build:   func(v *validate.Validator) *validate.Validator { return v.MaxLen("name", "abcdef", 5) },
			wantErr: true,
		},
		{
			name:    "multibyte runes counted as characters",
			build:   func(v *validate.Validator) *validate.Validator { return v.MaxLen("name", "héllo", 5) },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(&validate.Validator{}).Err()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain address", value: "a@b.co", wantErr: false},
		{name: "missing at sign", value: "nope.example.com", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).Email("email", tt.value).Err()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Digits(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "digits only", value: "0123456789", wantErr: false},
		{name: "contains letters", value: "12a45", wantErr: true},
		{name: "contains plus prefix", value: "+84123", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).Digits("mobile", tt.value).Err()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "lowercase uuid", value: "0190e3f2-27d8-7cc0-8f2e-9a1b2c3d4e5f", wantErr: false},
		{name: "uppercase uuid accepted", value: "0190E3F2-27D8-7CC0-8F2E-9A1B2C3D4E5F", wantErr: false},
		{name: "not a uuid", value: "not-a-uuid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).UUID("id", tt.value).Err()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.OneOf("gender", "F", "M", "F").Err())

	v = &validate.Validator{}
	assert.Error(t, v.OneOf("gender", "X", "M", "F").Err())
}

func TestValidator_AggregatesDetails(t *testing.T) {
	err := (&validate.Validator{}).
		Required("name", "").
		Email("email", "bad").
		Digits("mobile", "12x").
		Err()
	require.Error(t, err)

	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Details, 3)
	assert.Equal(t, "name", appErr.Details[0].Field)
}

func TestValidator_HasErrors(t *testing.T) {
	v := &validate.Validator{}
	assert.False(t, v.HasErrors())
	v.Required("name", "")
	assert.True(t, v.HasErrors())
}
