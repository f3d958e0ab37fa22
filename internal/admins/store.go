// Copyright (c) 2026 Staffdeck. All rights reserved.

package admins

import (
	"context"
)

// # Administrator Data Access

// Repository defines the data access contract for administrator accounts.
type Repository interface {

	/*
		Create persists a brand-new administrator account to the storage.

		The storage layer is the authoritative uniqueness check for the
		username; a duplicate surfaces as a Conflict error.

		Parameters:
		  - context: context.Context
		  - admin: *Administrator

		Returns:
		  - error: Conflict on duplicate username, or persistence failures
	*/
	Create(context context.Context, admin *Administrator) error

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Administrator: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Administrator, error)

	/*
		FindByUsername returns the account with the given (lowercased) username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Administrator: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*Administrator, error)

	/*
		Update persists changes to the account's mutable fields.

		Parameters:
		  - context: context.Context
		  - admin: *Administrator

		Returns:
		  - error: Conflict on duplicate username, NotFound, or persistence failures
	*/
	Update(context context.Context, admin *Administrator) error

	/*
		Delete permanently removes the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound if no row was removed, or persistence failures
	*/
	Delete(context context.Context, id string) error
}
