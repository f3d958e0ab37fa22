// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package admins implements the administrator identity and session layer.

It defines the core domain entity (Administrator) and the logic for
registration, credential verification, and the cookie-based token session
lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no
external dependencies and encapsulate all business rules related to
administrator identity.
*/
package admins

import (
	"time"

	"github.com/staffdeck/staffdeck/pkg/textnorm"
)

// # Domain Entities

// Administrator represents an account that can manage the employee registry.
type Administrator struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Normalize applies the canonical capitalization rules for stored identity
// fields: display names are uppercased, usernames are lowercased. Lookups
// must normalize the same way so logins are case-insensitive.
func (a *Administrator) Normalize() {
	a.Name = textnorm.Upper(a.Name)
	a.Username = textnorm.Lower(a.Username)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the admins domain.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldAdmin    = "admin"

	// Token keys match the cookie names so API clients see one spelling.
	FieldAccessToken  = "accessToken"
	FieldRefreshToken = "refreshToken"
)
