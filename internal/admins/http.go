// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
HTTP delivery layer for administrator identity management.

It implements the gateway for the authentication lifecycle, from account
creation to session management.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Handles JWT orchestration and session cookie injection.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes,
headers, cookies, JSON).
*/
package admins

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/constants"
	"github.com/staffdeck/staffdeck/internal/platform/middleware"
	"github.com/staffdeck/staffdeck/internal/platform/request"
	"github.com/staffdeck/staffdeck/internal/platform/respond"
	"github.com/staffdeck/staffdeck/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements administrator-related HTTP endpoints.
//
// # Scope
//
// This handler manages the administrator lifecycle entry points
// (Registration, Login, Session refresh, Profile updates).
type Handler struct {
	adminService *Service
	cookies      *CookieManager
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, cookies *CookieManager) *Handler {
	return &Handler{adminService: service, cookies: cookies}
}

// Routes returns a [chi.Router] configured with administrator routes.
//
// # Endpoints
//   - POST   /register      : Creates a new account (public).
//   - POST   /login         : Authenticates and sets session cookies (public).
//   - POST   /refresh       : Rotates the token pair from the refresh cookie (public).
//   - POST   /logout        : Clears the session cookies.
//   - PUT    /update        : Updates the caller's own account.
//   - PUT    /update/{id}   : Updates a specific account.
//   - DELETE /delete        : Deletes the caller's own account.
//   - DELETE /delete/{id}   : Deletes a specific account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
		r.Put("/update", handler.update)
		r.Put("/update/{id}", handler.update)
		r.Delete("/delete", handler.delete)
		r.Delete("/delete/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new administrator account.

POST /admin/register

Description: Validates input, normalizes identity fields, and persists a
new administrator profile to the database.

Request:
  - Body: registerRequest (Name, Username, Password)

Response:
  - 201: Administrator: Created profile (password hash omitted)
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Username already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, httpRequest *http.Request) {
	var input registerRequest

	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8)

	if err := validator.Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	admin, err := handler.adminService.Register(httpRequest.Context(), RegisterInput{
		Name:     input.Name,
		Username: input.Username,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.Created(writer, "Admin registered successfully", admin)
}

/*
Login authenticates an administrator and establishes a cookie session.

POST /admin/login

Description: Verifies credentials, generates the token pair, and injects
both HttpOnly session cookies into the response.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: Session: Admin profile and token pair
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, httpRequest *http.Request) {
	var input loginRequest

	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	session, err := handler.adminService.Login(httpRequest.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	handler.cookies.Attach(writer, session.AccessToken, session.RefreshToken)

	respond.OK(writer, "Login successful", map[string]any{
		FieldAdmin:        session.Admin,
		FieldAccessToken:  session.AccessToken,
		FieldRefreshToken: session.RefreshToken,
	})
}

/*
Refresh issues a new token pair using the refresh token cookie.

POST /admin/refresh

Description: Validates the refresh token cookie and re-issues both session
cookies with a fresh token pair.

Response:
  - 200: Session: Admin profile and fresh token pair
  - 401: ErrUnauthorized: Missing or invalid refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, httpRequest *http.Request) {
	cookie, err := httpRequest.Cookie(constants.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		respond.Error(writer, httpRequest, apperr.Unauthorized("Missing refresh token in cookies"))
		return
	}

	session, err := handler.adminService.Refresh(httpRequest.Context(), cookie.Value)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	handler.cookies.Attach(writer, session.AccessToken, session.RefreshToken)

	respond.OK(writer, "Session refreshed", map[string]any{
		FieldAdmin:        session.Admin,
		FieldAccessToken:  session.AccessToken,
		FieldRefreshToken: session.RefreshToken,
	})
}

/*
Logout terminates the current administrator session.

POST /admin/logout

Description: Clears both session cookies from the client. Tokens are
stateless, so clearing the cookies is the whole operation; already-issued
tokens simply age out at their expiry.

Response:
  - 200: Success: Session terminated
*/
func (handler *Handler) logout(writer http.ResponseWriter, httpRequest *http.Request) {
	handler.cookies.Clear(writer)
	respond.OK(writer, "Logged out successfully", nil)
}

/*
Update modifies an administrator account.

PUT /admin/update
PUT /admin/update/{id}

Description: Applies a partial update (name, username, password). Without
a path ID the caller's own account (from the access token) is targeted.

Request:
  - Body: updateRequest (Name?, Username?, Password?)

Response:
  - 200: Administrator: Updated profile
  - 400: ErrInvalidJSON: No fields provided or validation failure
  - 404: ErrNotFound: Target account does not exist
  - 409: ErrConflict: New username already taken
*/
func (handler *Handler) update(writer http.ResponseWriter, httpRequest *http.Request) {
	targetID, err := handler.targetID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	var input updateRequest
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, validate.ErrInvalidJSON)
		return
	}

	updates := UpdateInput{
		Name:     input.Name,
		Username: input.Username,
		Password: input.Password,
	}
	if updates.IsEmpty() {
		respond.Error(writer, httpRequest, apperr.ValidationError("At least one field must be provided"))
		return
	}

	validator := &validate.Validator{}
	if input.Username != "" {
		validator.MinLen(FieldUsername, input.Username, 3)
	}
	if input.Password != "" {
		validator.MinLen(FieldPassword, input.Password, 8)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	admin, err := handler.adminService.Update(httpRequest.Context(), targetID, updates)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, "Admin updated successfully", admin)
}

/*
Delete removes an administrator account.

DELETE /admin/delete
DELETE /admin/delete/{id}

Description: Permanently deletes the target account. Without a path ID the
caller's own account is targeted; in that case the session cookies are
cleared as well.

Response:
  - 200: Success: Account deleted
  - 404: ErrNotFound: Target account does not exist
*/
func (handler *Handler) delete(writer http.ResponseWriter, httpRequest *http.Request) {
	targetID, err := handler.targetID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.adminService.Delete(httpRequest.Context(), targetID); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	// Self-deletion ends the session immediately.
	if request.ID(httpRequest) == "" {
		handler.cookies.Clear(writer)
	}

	respond.OK(writer, "Admin deleted successfully", nil)
}

// targetID resolves the account an update/delete applies to: the path ID
// when present, otherwise the authenticated caller's own ID.
func (handler *Handler) targetID(httpRequest *http.Request) (string, error) {
	if id := request.ID(httpRequest); id != "" {
		validator := &validate.Validator{}
		if err := validator.UUID(FieldID, id).Err(); err != nil {
			return "", err
		}
		return id, nil
	}
	return request.RequiredAdminID(httpRequest)
}
