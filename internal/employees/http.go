// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
HTTP delivery layer for the employee registry.

All routes require an authenticated administrator; the router group is
mounted behind the auth middleware. Create and update accept
multipart/form-data because records travel together with their avatar
file.
*/
package employees

import (
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdeck/staffdeck/internal/platform/constants"
	"github.com/staffdeck/staffdeck/internal/platform/middleware"
	"github.com/staffdeck/staffdeck/internal/platform/request"
	"github.com/staffdeck/staffdeck/internal/platform/respond"
	"github.com/staffdeck/staffdeck/internal/platform/validate"
	"github.com/staffdeck/staffdeck/pkg/textnorm"
)

// # Definitions & Constructors

// Handler implements employee-related HTTP endpoints.
type Handler struct {
	employeeService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{employeeService: service}
}

// Routes returns a [chi.Router] configured with employee routes.
//
// # Endpoints
//   - POST   /create      : Creates a record (multipart, avatar required).
//   - GET    /all         : Lists all records (cached).
//   - GET    /{id}        : Fetches a single record.
//   - PUT    /update/{id} : Updates a record (multipart, avatar optional).
//   - DELETE /delete/{id} : Deletes a record.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// The whole registry is admin-only.
	router.Use(middleware.RequireAuth)

	router.Post("/create", handler.create)
	router.Get("/all", handler.list)
	router.Get("/{id}", handler.get)
	router.Put("/update/{id}", handler.update)
	router.Delete("/delete/{id}", handler.delete)

	return router
}

/*
Create enrolls a new employee record.

POST /employee/create

Description: Parses the multipart form, validates every field plus the
avatar file, and hands the upload-then-persist pipeline to the service.

Request:
  - Multipart form: name, email, mobile, designation, gender, course, avatar (file)

Response:
  - 201: Employee: Created record with its avatar URL
  - 400: ErrInvalidJSON: Missing fields, bad enum values, or bad avatar type
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) create(writer http.ResponseWriter, httpRequest *http.Request) {
	if err := httpRequest.ParseMultipartForm(constants.MaxAvatarSize); err != nil {
		respond.Error(writer, httpRequest, validate.RequiredError(FieldAvatar, "Request must be multipart/form-data"))
		return
	}

	form := httpRequest.FormValue
	avatar, avatarErr := formAvatar(httpRequest)
	if avatarErr == nil {
		defer avatar.file.Close()
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, form(FieldName)).
		Required(FieldEmail, form(FieldEmail)).
		Email(FieldEmail, form(FieldEmail)).
		Required(FieldMobile, form(FieldMobile)).
		Digits(FieldMobile, form(FieldMobile)).
		MinLen(FieldMobile, form(FieldMobile), 10).
		MaxLen(FieldMobile, form(FieldMobile), 15).
		Required(FieldDesignation, form(FieldDesignation)).
		Required(FieldGender, form(FieldGender)).
		OneOf(FieldGender, textnorm.Lower(form(FieldGender)), Genders...).
		Required(FieldCourse, form(FieldCourse)).
		Custom(FieldAvatar, avatarErr != nil, "An avatar file is required")

	if err := validator.Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	employee, err := handler.employeeService.Create(httpRequest.Context(), CreateInput{
		Name:        form(FieldName),
		Email:       form(FieldEmail),
		Mobile:      form(FieldMobile),
		Designation: form(FieldDesignation),
		Gender:      form(FieldGender),
		Course:      form(FieldCourse),
		Avatar:      avatar.upload(),
	})

	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.Created(writer, "Employee created successfully", employee)
}

/*
List returns every employee record.

GET /employee/all

Response:
  - 200: []Employee: All records (empty array when none exist)
*/
func (handler *Handler) list(writer http.ResponseWriter, httpRequest *http.Request) {
	employees, err := handler.employeeService.List(httpRequest.Context())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, "Employees fetched successfully", employees)
}

/*
Get returns a single employee record.

GET /employee/{id}

Response:
  - 200: Employee: The record
  - 400: ErrInvalidJSON: Malformed ID
  - 404: ErrNotFound: No such record
*/
func (handler *Handler) get(writer http.ResponseWriter, httpRequest *http.Request) {
	id := request.ID(httpRequest)

	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	employee, err := handler.employeeService.Get(httpRequest.Context(), id)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, "Employee fetched successfully", employee)
}

/*
Update modifies an employee record.

PUT /employee/update/{id}

Description: Accepts the same multipart form as create, with every field
optional. At least one field or a replacement avatar must be present.

Request:
  - Multipart form: name?, email?, mobile?, designation?, gender?, course?, avatar? (file)

Response:
  - 200: Employee: Updated record
  - 400: ErrInvalidJSON: No fields provided or validation failure
  - 404: ErrNotFound: No such record
  - 409: ErrConflict: New email already registered
*/
func (handler *Handler) update(writer http.ResponseWriter, httpRequest *http.Request) {
	id := request.ID(httpRequest)

	idValidator := &validate.Validator{}
	if err := idValidator.UUID(FieldID, id).Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := httpRequest.ParseMultipartForm(constants.MaxAvatarSize); err != nil {
		respond.Error(writer, httpRequest, validate.RequiredError(FieldAvatar, "Request must be multipart/form-data"))
		return
	}

	form := httpRequest.FormValue
	avatar, avatarErr := formAvatar(httpRequest)
	if avatarErr == nil {
		defer avatar.file.Close()
	}

	input := UpdateInput{
		Name:        form(FieldName),
		Email:       form(FieldEmail),
		Mobile:      form(FieldMobile),
		Designation: form(FieldDesignation),
		Gender:      form(FieldGender),
		Course:      form(FieldCourse),
	}
	if avatarErr == nil {
		input.Avatar = avatar.upload()
	}

	if input.IsEmpty() {
		respond.Error(writer, httpRequest, validate.RequiredError(FieldID, "At least one field must be provided"))
		return
	}

	// Only validate the fields that were actually sent.
	validator := &validate.Validator{}
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if input.Mobile != "" {
		validator.Digits(FieldMobile, input.Mobile).
			MinLen(FieldMobile, input.Mobile, 10).
			MaxLen(FieldMobile, input.Mobile, 15)
	}
	if input.Gender != "" {
		validator.OneOf(FieldGender, textnorm.Lower(input.Gender), Genders...)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	employee, err := handler.employeeService.Update(httpRequest.Context(), id, input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, "Employee updated successfully", employee)
}

/*
Delete removes an employee record.

DELETE /employee/delete/{id}

Response:
  - 200: Success: Record deleted
  - 400: ErrInvalidJSON: Malformed ID
  - 404: ErrNotFound: No such record
*/
func (handler *Handler) delete(writer http.ResponseWriter, httpRequest *http.Request) {
	id := request.ID(httpRequest)

	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.employeeService.Delete(httpRequest.Context(), id); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, "Employee deleted successfully", nil)
}

// # Multipart Helpers

// formFile bundles the open multipart file with its header metadata.
type formFile struct {
	file   multipart.File
	header *multipart.FileHeader
}

// upload adapts the multipart file to the service's [AvatarUpload].
func (f *formFile) upload() *AvatarUpload {
	return &AvatarUpload{
		ContentType: f.header.Header.Get("Content-Type"),
		Body:        f.file,
	}
}

// formAvatar extracts the avatar file from the parsed multipart form.
func formAvatar(httpRequest *http.Request) (*formFile, error) {
	file, header, err := httpRequest.FormFile(FieldAvatar)
	if err != nil {
		return nil, err
	}
	return &formFile{file: file, header: header}, nil
}
