// Copyright (c) 2026 Staffdeck. All rights reserved.

package employees

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/database/schema"
	"github.com/staffdeck/staffdeck/internal/platform/dberr"
)

// emailTakenMsg is the client-safe message for the unique email constraint.
const emailTakenMsg = "Email is already registered"

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of [Repository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, employee *Employee) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		schema.StaffEmployee.Table,
		schema.StaffEmployee.ID, schema.StaffEmployee.Name, schema.StaffEmployee.Email,
		schema.StaffEmployee.Mobile, schema.StaffEmployee.Designation, schema.StaffEmployee.Gender,
		schema.StaffEmployee.Course, schema.StaffEmployee.AvatarURL,
		schema.StaffEmployee.CreatedAt, schema.StaffEmployee.UpdatedAt,
	)

	now := time.Now()
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = now
	}
	employee.UpdatedAt = now

	_, err := repository.db.Exec(context, query,
		employee.ID, employee.Name, employee.Email,
		employee.Mobile, employee.Designation, employee.Gender,
		employee.Course, employee.AvatarURL,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, emailTakenMsg)
	}

	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Employee, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.StaffEmployee.ID, schema.StaffEmployee.Name, schema.StaffEmployee.Email,
		schema.StaffEmployee.Mobile, schema.StaffEmployee.Designation, schema.StaffEmployee.Gender,
		schema.StaffEmployee.Course, schema.StaffEmployee.AvatarURL,
		schema.StaffEmployee.CreatedAt, schema.StaffEmployee.UpdatedAt,
		schema.StaffEmployee.Table, schema.StaffEmployee.ID,
	)

	employee := &Employee{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&employee.ID, &employee.Name, &employee.Email,
		&employee.Mobile, &employee.Designation, &employee.Gender,
		&employee.Course, &employee.AvatarURL,
		&employee.CreatedAt, &employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Employee")
		}
		return nil, dberr.Wrap(err, emailTakenMsg)
	}

	return employee, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Employee, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.StaffEmployee.ID, schema.StaffEmployee.Name, schema.StaffEmployee.Email,
		schema.StaffEmployee.Mobile, schema.StaffEmployee.Designation, schema.StaffEmployee.Gender,
		schema.StaffEmployee.Course, schema.StaffEmployee.AvatarURL,
		schema.StaffEmployee.CreatedAt, schema.StaffEmployee.UpdatedAt,
		schema.StaffEmployee.Table, schema.StaffEmployee.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, emailTakenMsg)
	}
	defer rows.Close()

	employees := []*Employee{}
	for rows.Next() {
		employee := &Employee{}
		if err := rows.Scan(
			&employee.ID, &employee.Name, &employee.Email,
			&employee.Mobile, &employee.Designation, &employee.Gender,
			&employee.Course, &employee.AvatarURL,
			&employee.CreatedAt, &employee.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, emailTakenMsg)
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

func (repository *PostgresRepository) Update(context context.Context, employee *Employee) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9
		WHERE %s = $1
	`,
		schema.StaffEmployee.Table,
		schema.StaffEmployee.Name, schema.StaffEmployee.Email, schema.StaffEmployee.Mobile,
		schema.StaffEmployee.Designation, schema.StaffEmployee.Gender, schema.StaffEmployee.Course,
		schema.StaffEmployee.AvatarURL, schema.StaffEmployee.UpdatedAt,
		schema.StaffEmployee.ID,
	)

	employee.UpdatedAt = time.Now()
	tag, err := repository.db.Exec(context, query,
		employee.ID,
		employee.Name, employee.Email, employee.Mobile,
		employee.Designation, employee.Gender, employee.Course,
		employee.AvatarURL, employee.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, emailTakenMsg)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Employee")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.StaffEmployee.Table, schema.StaffEmployee.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, emailTakenMsg)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Employee")
	}

	return nil
}
