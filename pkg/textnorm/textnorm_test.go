// Copyright (c) 2026 Staffdeck. All rights reserved.

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffdeck/staffdeck/pkg/textnorm"
)

/*
TestLower verifies trimming, case folding, and round-trip stability.
*/
func TestLower(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already_lower", "ann1", "ann1"},
		{"mixed_case", "AnN1", "ann1"},
		{"surrounding_space", "  Ann1  ", "ann1"},
		{"email", "Ann.Smith@Example.COM", "ann.smith@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textnorm.Lower(tt.input)
			assert.Equal(t, tt.want, got)

			// Round trip: normalizing a normalized value is a no-op.
			assert.Equal(t, got, textnorm.Lower(got))
		})
	}
}

/*
TestUpper verifies display-name folding, including non-ASCII letters.
*/
func TestUpper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Ann", "ANN"},
		{"surrounding_space", " Ann Smith ", "ANN SMITH"},
		{"accented", "rené", "RENÉ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textnorm.Upper(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, textnorm.Upper(got))
		})
	}
}

/*
TestNFCEquivalence verifies that decomposed and precomposed encodings of
the same text fold to the same stored value.
*/
func TestNFCEquivalence(t *testing.T) {
	precomposed := "rené"          // U+00E9
	decomposed := "rené"     // e + combining acute
	assert.Equal(t, textnorm.Upper(precomposed), textnorm.Upper(decomposed))
	assert.Equal(t, textnorm.Lower(precomposed), textnorm.Lower(decomposed))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "0123456789", textnorm.Clean(" 0123456789 "))
}
