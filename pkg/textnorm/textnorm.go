// Copyright (c) 2026 Staffdeck. All rights reserved.

// Package textnorm provides the canonical text normalization applied to
// stored fields at the handler/service boundary.
//
// # Why explicit normalization?
//
// Case folding is part of the data contract (usernames are stored
// lowercase, display names uppercase), not a storage-layer side effect.
// Doing it through one package makes the round-trip behavior reproducible:
// what a client reads back is exactly what these functions produce.
//
// Input is NFC-normalized before folding so that visually identical
// strings with different combining-character encodings fold to the same
// stored value.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Lower trims surrounding whitespace, NFC-normalizes, and lowercases.
//
// Applied to: admin usernames, employee emails, designations, genders,
// and courses.
func Lower(value string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(value)))
}

// Upper trims surrounding whitespace, NFC-normalizes, and uppercases.
//
// Applied to: admin and employee display names.
func Upper(value string) string {
	return strings.ToUpper(norm.NFC.String(strings.TrimSpace(value)))
}

// Clean trims surrounding whitespace and NFC-normalizes without folding
// case. Applied to fields stored verbatim, such as mobile numbers.
func Clean(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
