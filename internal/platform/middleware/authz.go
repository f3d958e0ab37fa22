// Copyright (c) 2026 Staffdeck. All rights reserved.

// Authentication middleware for the Staffdeck API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. Authentication here is cookie-first:
// browser clients carry the access token in an HttpOnly cookie, while API
// clients may use a Bearer header instead.
package middleware

import (
	"net/http"
	"strings"

	"github.com/staffdeck/staffdeck/internal/platform/apperr"
	"github.com/staffdeck/staffdeck/internal/platform/constants"
	"github.com/staffdeck/staffdeck/internal/platform/ctxutil"
	"github.com/staffdeck/staffdeck/internal/platform/respond"
	"github.com/staffdeck/staffdeck/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify access tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the token service
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyAccessToken(tokenStr string) (*sec.Claims, error)
}

// Authenticate extracts and verifies the access token for the request.
//
// # Flow
//  1. Look for the 'accessToken' HttpOnly cookie.
//  2. If absent, fall back to the 'Authorization: Bearer <token>' header.
//  3. If neither is present, the request proceeds as anonymous.
//  4. On successful verification, inject [*sec.Claims] into the context.
//
// A token that is present but invalid or expired aborts with 401 rather
// than downgrading to anonymous, so handlers never see half-authenticated
// requests.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Cookie Extraction ──────────────────────────────────────────
			tokenStr := ""
			if cookie, err := request.Cookie(constants.AccessTokenCookieName); err == nil {
				tokenStr = cookie.Value
			}

			// ── 2. Bearer Fallback ────────────────────────────────────────────
			if tokenStr == "" {
				authHeader := request.Header.Get("Authorization")
				if authHeader == "" {
					next.ServeHTTP(writer, request)
					return
				}
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
					return
				}
				tokenStr = parts[1]
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyAccessToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Claims] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAdmin(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
