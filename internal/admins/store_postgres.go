// Copyright (c) 2026 Staffdeck. All rights reserved.

// PostgreSQL implementation of the administrator repository.
//
// # Architecture
//
// Repositories here are strictly separated from domain logic. They implement
// the domain-defined [Repository] interface using the [pgxpool.Pool]
// connection manager.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types via dberr to avoid leaking storage
// implementation details.
package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/dberr"
)

// usernameTakenMsg is the client-safe message for the unique username constraint.
const usernameTakenMsg = "Username is already taken"

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of [Repository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new administrator record into the admins.account table.

Description: Deep-persists account metadata, ensuring timestamps are
initialized if not provided. Duplicate usernames are detected by the unique
index and surfaced as a Conflict.

Parameters:
  - context: context.Context
  - admin: *Administrator (Entity to persist)

Returns:
  - error: Conflict, or database connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, admin *Administrator) error {
	const query = `
		INSERT INTO admins.account (
			id, username, name, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		admin.ID,
		admin.Username,
		admin.Name,
		admin.PasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict(usernameTakenMsg)
		}
		return fmt.Errorf("postgres_admin_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves an administrator record by their unique ID.

Description: Primary key resolution for administrator accounts.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Administrator: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Administrator, error) {
	const query = `
		SELECT id, username, name, passwordhash, createdat, updatedat
		FROM admins.account
		WHERE id = $1`

	admin := &Administrator{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Name,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Admin")
		}
		return nil, fmt.Errorf("postgres_admin_repo_find_by_id_failed: %w", err)
	}

	return admin, nil
}

/*
FindByUsername retrieves an administrator record by their unique username.

Description: Standard lookup by username for authentication. Callers must
lowercase the username first so the lookup matches the stored form.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Administrator: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*Administrator, error) {
	const query = `
		SELECT id, username, name, passwordhash, createdat, updatedat
		FROM admins.account
		WHERE username = $1`

	admin := &Administrator{}
	err := repository.pool.QueryRow(context, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Name,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Admin")
		}
		return nil, fmt.Errorf("postgres_admin_repo_find_by_username_failed: %w", err)
	}

	return admin, nil
}

/*
Update persists changes to an administrator's mutable fields.

Description: Synchronizes the in-memory account state with the database,
refreshing the updatedat timestamp. A username change can collide with the
unique index and surfaces as a Conflict.

Parameters:
  - context: context.Context
  - admin: *Administrator

Returns:
  - error: Conflict, apperr.NotFound, or update failures
*/
func (repository *PostgresRepository) Update(context context.Context, admin *Administrator) error {
	const query = `
		UPDATE admins.account
		SET username = $2, name = $3, passwordhash = $4, updatedat = $5
		WHERE id = $1`

	admin.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		admin.ID,
		admin.Username,
		admin.Name,
		admin.PasswordHash,
		admin.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict(usernameTakenMsg)
		}
		return fmt.Errorf("postgres_admin_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Admin")
	}

	return nil
}

/*
Delete permanently removes an administrator account by ID.

Description: Hard delete; the admins domain has no retention requirement.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound if no row matched, or execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = "DELETE FROM admins.account WHERE id = $1"

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_admin_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Admin")
	}

	return nil
}
