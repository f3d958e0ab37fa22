// Copyright (c) 2026 Staffdeck. All rights reserved.

package employees

import (
	"context"
	"io"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/constants"
	"github.com/staffdeck/staffdeck/internal/platform/storage"
	"github.com/staffdeck/staffdeck/pkg/uuidv7"
)

// # Contracts & Types

// AvatarUpload carries an incoming avatar file through the upload pipeline.
type AvatarUpload struct {
	ContentType string
	Body        io.Reader
}

// Service implements the employee registry use cases.
type Service struct {
	repository Repository
	cache      ListCache
	objects    storage.ObjectStore
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, cache ListCache, objects storage.ObjectStore) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		objects:    objects,
	}
}

// # Record Creation

// CreateInput holds the data required to enroll a new employee.
type CreateInput struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      string
	Avatar      *AvatarUpload
}

/*
Create validates and persists a brand new employee record.

Description: Uploads the avatar to object storage FIRST, then persists the
record. If the upload fails nothing is persisted, so a record can never
reference a missing avatar. The reverse (an orphaned object after a failed
insert) is tolerated and cheap.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Employee: Created entity
  - error: ValidationError (bad avatar), Conflict (duplicate email), or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Employee, error) {
	if input.Avatar == nil {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldAvatar,
			Message: "An avatar file is required",
		})
	}

	employee := &Employee{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Email:       input.Email,
		Mobile:      input.Mobile,
		Designation: input.Designation,
		Gender:      input.Gender,
		Course:      input.Course,
	}
	employee.Normalize()

	avatarURL, err := service.uploadAvatar(context, employee.ID, input.Avatar)
	if err != nil {
		return nil, err
	}
	employee.AvatarURL = avatarURL

	// The unique index on email is the authoritative duplicate check.
	if err := service.repository.Create(context, employee); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context)
	return employee, nil
}

// # Record Retrieval

/*
List returns every employee record, serving from the cache when possible.

Description: Read-through caching. A cache hit skips the database; a miss
reads the database and repopulates the cache. Cache failures degrade to a
plain database read.

Parameters:
  - context: context.Context

Returns:
  - []*Employee: All records (possibly empty)
  - error: Database retrieval failures
*/
func (service *Service) List(context context.Context) ([]*Employee, error) {
	if cached, ok := service.cache.Get(context); ok {
		return cached, nil
	}

	employees, err := service.repository.List(context)
	if err != nil {
		return nil, err
	}

	service.cache.Set(context, employees)
	return employees, nil
}

/*
Get returns a single employee record by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Employee: Hydrated entity
  - error: NotFound or database retrieval failures
*/
func (service *Service) Get(context context.Context, id string) (*Employee, error) {
	return service.repository.FindByID(context, id)
}

// # Record Maintenance

// UpdateInput holds the optional fields of a record update. Empty strings
// mean "leave unchanged"; at least one field or a new avatar must be provided.
type UpdateInput struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      string
	Avatar      *AvatarUpload
}

// IsEmpty reports whether the update carries no changes at all.
func (input UpdateInput) IsEmpty() bool {
	return input.Name == "" && input.Email == "" && input.Mobile == "" &&
		input.Designation == "" && input.Gender == "" && input.Course == "" &&
		input.Avatar == nil
}

/*
Update applies a partial update to an employee record.

Description: Loads the current state, overlays the provided fields, uploads
a replacement avatar when one was sent, and persists the result.

Parameters:
  - context: context.Context
  - id: string (target record)
  - input: UpdateInput

Returns:
  - *Employee: Updated entity
  - error: NotFound, Conflict (duplicate email), or storage errors
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Employee, error) {
	employee, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		employee.Name = input.Name
	}
	if input.Email != "" {
		employee.Email = input.Email
	}
	if input.Mobile != "" {
		employee.Mobile = input.Mobile
	}
	if input.Designation != "" {
		employee.Designation = input.Designation
	}
	if input.Gender != "" {
		employee.Gender = input.Gender
	}
	if input.Course != "" {
		employee.Course = input.Course
	}
	employee.Normalize()

	if input.Avatar != nil {
		avatarURL, err := service.uploadAvatar(context, employee.ID, input.Avatar)
		if err != nil {
			return nil, err
		}
		employee.AvatarURL = avatarURL
	}

	if err := service.repository.Update(context, employee); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context)
	return employee, nil
}

/*
Delete permanently removes an employee record.

Description: The avatar object is left in the bucket; object cleanup is a
storage lifecycle concern, not a request-path one.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound if the record does not exist, or storage errors
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context)
	return nil
}

// uploadAvatar validates the file type and pushes it to object storage.
//
// Keys embed a fresh UUID per upload so a replaced avatar never serves
// stale CDN-cached bytes under the old URL.
func (service *Service) uploadAvatar(context context.Context, employeeID string, avatar *AvatarUpload) (string, error) {
	extension, ok := avatarExtension(avatar.ContentType)
	if !ok {
		return "", apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldAvatar,
			Message: "Avatar must be a JPG or PNG image",
		})
	}

	key := constants.AvatarKeyPrefix + employeeID + "-" + uuidv7.New() + extension
	url, err := service.objects.Upload(context, key, avatar.ContentType, avatar.Body)
	if err != nil {
		return "", apperr.Internal(err)
	}

	return url, nil
}

// avatarExtension maps an accepted MIME type to the stored file extension.
func avatarExtension(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	default:
		return "", false
	}
}
