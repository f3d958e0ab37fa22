// Copyright (c) 2026 Staffdeck. All rights reserved.

package employees

import (
	"context"
)

// # Employee Data Access

// Repository defines the data access contract for employee records.
type Repository interface {

	/*
		Create persists a brand-new employee record.

		The storage layer is the authoritative uniqueness check for the
		email; a duplicate surfaces as a Conflict error.

		Parameters:
		  - context: context.Context
		  - employee: *Employee

		Returns:
		  - error: Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, employee *Employee) error

	/*
		FindByID returns the record with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Employee: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Employee, error)

	/*
		List returns all employee records ordered by creation time.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Employee: All records (possibly empty)
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Employee, error)

	/*
		Update persists changes to a record's mutable fields.

		Parameters:
		  - context: context.Context
		  - employee: *Employee

		Returns:
		  - error: Conflict on duplicate email, NotFound, or persistence failures
	*/
	Update(context context.Context, employee *Employee) error

	/*
		Delete permanently removes the record with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound if no row was removed, or persistence failures
	*/
	Delete(context context.Context, id string) error
}
