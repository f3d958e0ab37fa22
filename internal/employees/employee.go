// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package employees implements the employee registry, the core domain of the
Staffdeck dashboard.

It covers the full record lifecycle (create with avatar upload, list, get,
update, delete) plus a read-through cache for the listing endpoint.

# Architecture

  - Service: Orchestrates validation, the avatar upload pipeline, and storage.
  - Repository: Abstracted interface over PostgreSQL.
  - ListCache: Volatile Redis-backed cache for the hot listing path.
*/
package employees

import (
	"time"

	"github.com/staffdeck/staffdeck/pkg/textnorm"
)

// # Domain Entities

// Employee represents a single staff record managed by administrators.
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	Designation string    `json:"designation"`
	Gender      string    `json:"gender"`
	Course      string    `json:"course"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize applies the canonical form for stored fields: the display
// name is uppercased, every other text field is lowercased. Lowercasing
// the email makes uniqueness case-insensitive; mobile numbers are stored
// verbatim apart from trimming.
func (e *Employee) Normalize() {
	e.Name = textnorm.Upper(e.Name)
	e.Email = textnorm.Lower(e.Email)
	e.Mobile = textnorm.Clean(e.Mobile)
	e.Designation = textnorm.Lower(e.Designation)
	e.Gender = textnorm.Lower(e.Gender)
	e.Course = textnorm.Lower(e.Course)
}

// # Enumerations

// Genders is the closed set for the gender field, compared after
// lowercasing. Designation and course are free text, lowercased on write.
var Genders = []string{"male", "female", "other"}

// # Field Identifiers

// Global field names for validation and identity mapping in the employees domain.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldMobile      = "mobile"
	FieldDesignation = "designation"
	FieldGender      = "gender"
	FieldCourse      = "course"
	FieldAvatar      = "avatar"
)
