// Copyright (c) 2026 Staffdeck. All rights reserved.

package admins

import (
	"context"
	"fmt"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/sec"
	"github.com/staffdeck/staffdeck/pkg/textnorm"
	"github.com/staffdeck/staffdeck/pkg/uuidv7"
)

// # Contracts & Types

// TokenIssuer defines the contract for generating and verifying session tokens.
type TokenIssuer interface {
	// IssueAccessToken creates a signed short-lived JWT for the given admin.
	IssueAccessToken(adminID, username string) (string, error)

	// IssueRefreshToken creates a signed long-lived JWT carrying only the admin ID.
	IssueRefreshToken(adminID string) (string, error)

	// VerifyRefreshToken checks signature and expiry of a refresh token.
	VerifyRefreshToken(tokenString string) (*sec.Claims, error)
}

// Service implements administrator authentication and account use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or login logic must be reviewed carefully.
type Service struct {
	repository Repository
	tokens     TokenIssuer
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, tokens TokenIssuer) *Service {
	return &Service{
		repository: repository,
		tokens:     tokens,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new administrator.
type RegisterInput struct {
	Name     string
	Username string
	Password string
}

/*
Register validates, hashes, and persists a brand new administrator account.

Description: Normalizes identity fields (name uppercased, username
lowercased), hashes the password, and persists the account. Username
uniqueness is enforced by the database unique index rather than a racy
pre-check; a duplicate surfaces as a Conflict from the repository.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Administrator: Created entity
  - error: Conflict (if username exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Administrator, error) {

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("admins_service_hash_failed: %w", err)
	}

	// Construct the new entity. Time-sortable ID to prevent PG index fragmentation.
	admin := &Administrator{
		ID:           uuidv7.New(),
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}
	admin.Normalize()

	// Persist the account. The unique index is the authoritative duplicate check.
	if err := service.repository.Create(context, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// Session represents a successfully established administrator session.
type Session struct {
	AccessToken  string
	RefreshToken string
	Admin        *Administrator
}

/*
Login validates administrator credentials and issues the session token pair.

Description: Verifies identity, performs constant-time password comparison,
and issues a fresh access/refresh token pair. Unknown usernames and wrong
passwords produce the exact same error so attackers cannot enumerate
accounts.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Transport-ready session identifiers
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {

	// Lookup is case-insensitive because stored usernames are lowercased.
	admin, err := service.repository.FindByUsername(context, textnorm.Lower(input.Username))

	// If (err != nil) the account does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Verify the password hash using bcrypt's constant-time comparison.
	if !sec.CheckPasswordHash(input.Password, admin.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	return service.issueSession(admin)
}

/*
Refresh exchanges a valid refresh token for a brand new token pair.

Description: Verifies the refresh token signature and expiry, re-resolves
the account (so a deleted admin cannot refresh), and issues fresh tokens.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *Session: New session credentials
  - error: Unauthorized or internal failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*Session, error) {
	claims, err := service.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Re-resolve the account so deleted admins cannot mint new sessions.
	admin, err := service.repository.FindByID(context, claims.AdminID())
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	return service.issueSession(admin)
}

// issueSession mints the access/refresh pair for an authenticated admin.
func (service *Service) issueSession(admin *Administrator) (*Session, error) {
	accessToken, err := service.tokens.IssueAccessToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("admins_service_access_token_failed: %w", err)
	}

	refreshToken, err := service.tokens.IssueRefreshToken(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("admins_service_refresh_token_failed: %w", err)
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}

// # Account Management

// UpdateInput holds the optional fields of a profile update. Empty strings
// mean "leave unchanged"; at least one field must be provided.
type UpdateInput struct {
	Name     string
	Username string
	Password string
}

// IsEmpty reports whether the update carries no changes at all.
func (input UpdateInput) IsEmpty() bool {
	return input.Name == "" && input.Username == "" && input.Password == ""
}

/*
Update applies a partial profile update to an administrator account.

Description: Loads the current account state, overlays the provided fields
(re-normalizing identity fields and re-hashing a new password), and
persists the result. A username change can collide with another account
and surfaces as a Conflict.

Parameters:
  - context: context.Context
  - id: string (target account)
  - input: UpdateInput

Returns:
  - *Administrator: Updated entity
  - error: NotFound, Conflict, or storage errors
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Administrator, error) {
	admin, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Username != "" {
		admin.Username = input.Username
	}
	if input.Password != "" {
		hashedPassword, err := sec.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("admins_service_update_hash_failed: %w", err)
		}
		admin.PasswordHash = hashedPassword
	}
	admin.Normalize()

	if err := service.repository.Update(context, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

/*
Delete permanently removes an administrator account.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound if the account does not exist, or storage errors
*/
func (service *Service) Delete(context context.Context, id string) error {
	return service.repository.Delete(context, id)
}
