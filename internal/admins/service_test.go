// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package admins tests: exercise the registration, login, refresh, update,
and delete flows against an in-memory repository and a deterministic token
issuer.
*/
package admins_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck/internal/admins"
	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/sec"
)

// fakeRepository is an in-memory Repository keyed by ID with a unique
// username index, mirroring the database constraints.
type fakeRepository struct {
	byID        map[string]*admins.Administrator
	updateCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*admins.Administrator{}}
}

func (f *fakeRepository) Create(_ context.Context, admin *admins.Administrator) error {
	for _, existing := range f.byID {
		if existing.Username == admin.Username {
			return apperr.Conflict("Username is already taken")
		}
	}
	clone := *admin
	f.byID[admin.ID] = &clone
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*admins.Administrator, error) {
	admin, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	clone := *admin
	return &clone, nil
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*admins.Administrator, error) {
	for _, admin := range f.byID {
		if admin.Username == username {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Admin")
}

func (f *fakeRepository) Update(_ context.Context, admin *admins.Administrator) error {
	f.updateCalls++
	if _, ok := f.byID[admin.ID]; !ok {
		return apperr.NotFound("Admin")
	}
	for id, existing := range f.byID {
		if id != admin.ID && existing.Username == admin.Username {
			return apperr.Conflict("Username is already taken")
		}
	}
	clone := *admin
	f.byID[admin.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.NotFound("Admin")
	}
	delete(f.byID, id)
	return nil
}

// fakeTokens issues predictable token strings and verifies only those it issued.
type fakeTokens struct{}

func (fakeTokens) IssueAccessToken(adminID, username string) (string, error) {
	return "access:" + adminID + ":" + username, nil
}

func (fakeTokens) IssueRefreshToken(adminID string) (string, error) {
	return "refresh:" + adminID, nil
}

func (fakeTokens) VerifyRefreshToken(tokenString string) (*sec.Claims, error) {
	adminID, ok := strings.CutPrefix(tokenString, "refresh:")
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &sec.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: adminID}}, nil
}

func newTestService(t *testing.T) (*admins.Service, *fakeRepository) {
	t.Helper()
	repository := newFakeRepository()
	return admins.NewService(repository, fakeTokens{}), repository
}

func register(t *testing.T, service *admins.Service) *admins.Administrator {
	t.Helper()
	admin, err := service.Register(context.Background(), admins.RegisterInput{
		Name:     "Avery Quinn",
		Username: "Avery.Quinn",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return admin
}

func TestService_Register_NormalizesIdentityFields(t *testing.T) {
	service, _ := newTestService(t)

	admin := register(t, service)

	assert.Equal(t, "AVERY QUINN", admin.Name)
	assert.Equal(t, "avery.quinn", admin.Username)
	assert.NotEmpty(t, admin.ID)
	assert.NotEqual(t, "correct-horse", admin.PasswordHash)
}

func TestService_Register_DuplicateUsernameConflicts(t *testing.T) {
	service, _ := newTestService(t)
	register(t, service)

	// Same username in different capitalization collides after normalization.
	_, err := service.Register(context.Background(), admins.RegisterInput{
		Name:     "Other",
		Username: "AVERY.QUINN",
		Password: "another-pass",
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
}

func TestService_Login(t *testing.T) {
	service, _ := newTestService(t)
	admin := register(t, service)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "correct credentials", username: "avery.quinn", password: "correct-horse", wantErr: false},
		{name: "mixed-case username accepted", username: "Avery.QUINN", password: "correct-horse", wantErr: false},
		{name: "wrong password rejected", username: "avery.quinn", password: "wrong", wantErr: true},
		{name: "unknown username rejected", username: "nobody", password: "correct-horse", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Login(context.Background(), admins.LoginInput{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.wantErr {
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
				// Identical message for both failure modes prevents enumeration.
				assert.Equal(t, "Invalid credentials", appErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, admin.ID, session.Admin.ID)
			assert.NotEmpty(t, session.AccessToken)
			assert.NotEmpty(t, session.RefreshToken)
		})
	}
}

func TestService_Refresh(t *testing.T) {
	service, repository := newTestService(t)
	admin := register(t, service)

	t.Run("valid refresh token issues new session", func(t *testing.T) {
		session, err := service.Refresh(context.Background(), "refresh:"+admin.ID)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, session.Admin.ID)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := service.Refresh(context.Background(), "not-a-token")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	})

	t.Run("deleted admin cannot refresh", func(t *testing.T) {
		require.NoError(t, repository.Delete(context.Background(), admin.ID))
		_, err := service.Refresh(context.Background(), "refresh:"+admin.ID)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	})
}

func TestService_Update(t *testing.T) {
	service, _ := newTestService(t)
	admin := register(t, service)
	oldHash := admin.PasswordHash

	updated, err := service.Update(context.Background(), admin.ID, admins.UpdateInput{
		Name:     "renamed person",
		Password: "brand-new-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "RENAMED PERSON", updated.Name)
	assert.Equal(t, "avery.quinn", updated.Username)
	assert.NotEqual(t, oldHash, updated.PasswordHash)

	// New password works, old one does not.
	_, err = service.Login(context.Background(), admins.LoginInput{Username: "avery.quinn", Password: "brand-new-pass"})
	assert.NoError(t, err)
	_, err = service.Login(context.Background(), admins.LoginInput{Username: "avery.quinn", Password: "correct-horse"})
	assert.Error(t, err)
}

func TestService_Update_UsernameCollision(t *testing.T) {
	service, _ := newTestService(t)
	first := register(t, service)

	second, err := service.Register(context.Background(), admins.RegisterInput{
		Name:     "Second",
		Username: "second",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), second.ID, admins.UpdateInput{Username: first.Username})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
}

func TestService_Update_MissingAccount(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Update(context.Background(), "0190e3f2-27d8-7cc0-8f2e-9a1b2c3d4e5f", admins.UpdateInput{Name: "x"})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestService_Delete_IsNotIdempotent(t *testing.T) {
	service, _ := newTestService(t)
	admin := register(t, service)

	require.NoError(t, service.Delete(context.Background(), admin.ID))

	err := service.Delete(context.Background(), admin.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}
