// Copyright (c) 2026 Staffdeck. All rights reserved.

package employees_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck/internal/employees"
	"github.com/staffdeck/staffdeck/internal/platform/ctxutil"
	"github.com/staffdeck/staffdeck/internal/platform/respond"
	"github.com/staffdeck/staffdeck/internal/platform/sec"
)

func newTestHandler(t *testing.T) (*employees.Handler, *fakeRepository) {
	t.Helper()
	service, repository, _ := newTestService(t)
	return employees.NewHandler(service), repository
}

// createForm builds a multipart body with the given fields and, when
// requested, a small PNG avatar part.
func createForm(t *testing.T, fields map[string]string, withAvatar bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	for field, value := range fields {
		require.NoError(t, form.WriteField(field, value))
	}

	if withAvatar {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="avatar"; filename="avatar.png"`)
		header.Set("Content-Type", "image/png")
		part, err := form.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, form.Close())
	return body, form.FormDataContentType()
}

// asAdmin attaches authenticated admin claims so RequireAuth passes.
func asAdmin(request *http.Request) *http.Request {
	claims := &sec.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "0190e3f2-27d8-7cc0-8f2e-9a1b2c3d4e5f"},
		Username:         "avery.quinn",
	}
	return request.WithContext(ctxutil.WithAdmin(request.Context(), claims))
}

func validForm() map[string]string {
	return map[string]string{
		"name":        "ann lee",
		"email":       "Ann.Lee@Example.com",
		"mobile":      "5551234567",
		"designation": "Manager",
		"gender":      "male",
		"course":      "MCA",
	}
}

func TestHandler_Create(t *testing.T) {
	handler, repository := newTestHandler(t)

	body, contentType := createForm(t, validForm(), true)
	request := asAdmin(httptest.NewRequest(http.MethodPost, "/create", body))
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Status string             `json:"status"`
		Data   employees.Employee `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, respond.StatusSuccess, envelope.Status)

	// The stored record carries the canonical field forms.
	assert.Equal(t, "ANN LEE", envelope.Data.Name)
	assert.Equal(t, "ann.lee@example.com", envelope.Data.Email)
	assert.Equal(t, "manager", envelope.Data.Designation)
	assert.Equal(t, "male", envelope.Data.Gender)
	assert.Equal(t, "mca", envelope.Data.Course)
	assert.Len(t, repository.byID, 1)
}

func TestHandler_Create_RejectsShortMobile(t *testing.T) {
	handler, repository := newTestHandler(t)

	fields := validForm()
	fields["mobile"] = "123"

	body, contentType := createForm(t, fields, true)
	request := asAdmin(httptest.NewRequest(http.MethodPost, "/create", body))
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "mobile")
	assert.Empty(t, repository.byID)
}

func TestHandler_Create_RejectsUnknownGender(t *testing.T) {
	handler, repository := newTestHandler(t)

	fields := validForm()
	fields["gender"] = "unspecified"

	body, contentType := createForm(t, fields, true)
	request := asAdmin(httptest.NewRequest(http.MethodPost, "/create", body))
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, repository.byID)
}
