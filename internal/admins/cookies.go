// Copyright (c) 2026 Staffdeck. All rights reserved.

package admins

import (
	"net/http"
	"time"

	"github.com/staffdeck/staffdeck/internal/platform/constants"
)

// CookieManager writes and clears the HttpOnly session cookie pair.
//
// # Security
//
// Both cookies are HttpOnly and SameSite=Strict so browser scripts can
// never read them and cross-site requests never send them. The Secure
// attribute is enabled only in production so local HTTP development keeps
// working.
type CookieManager struct {
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCookieManager constructs a [CookieManager].
//
// # Parameters
//   - secure: Set the Secure attribute (true in production).
//   - accessTTL: Lifetime of the access token cookie.
//   - refreshTTL: Lifetime of the refresh token cookie.
func NewCookieManager(secure bool, accessTTL, refreshTTL time.Duration) *CookieManager {
	return &CookieManager{
		secure:     secure,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Attach sets both session cookies on the response.
func (manager *CookieManager) Attach(writer http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    accessToken,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(manager.accessTTL.Seconds()),
		Secure:   manager.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    refreshToken,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(manager.refreshTTL.Seconds()),
		Secure:   manager.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires both session cookies on the client.
//
// Clearing must mirror the attributes used by [CookieManager.Attach],
// otherwise browsers treat the expired cookie as a different one and keep
// the original.
func (manager *CookieManager) Clear(writer http.ResponseWriter) {
	for _, name := range []string{constants.AccessTokenCookieName, constants.RefreshTokenCookieName} {
		http.SetCookie(writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     constants.SessionCookiePath,
			MaxAge:   -1,
			Secure:   manager.secure,
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
