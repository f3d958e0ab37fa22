// Copyright (c) 2026 Staffdeck. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing)
// from the domain logic. It is injected into the application layer behind
// small interfaces (see the admins service and the auth middleware).
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the payload embedded inside a Staffdeck JWT.
//
// # Why custom claims?
//
// Embedding the admin ID (Subject) and username directly in the access
// token lets the auth middleware resolve the principal WITHOUT a database
// lookup on every request. Refresh tokens carry only the admin ID, so
// their Username field stays empty.
type Claims struct {
	jwt.RegisteredClaims

	// Username is abbreviated to keep the JWT payload small.
	Username string `json:"unm,omitempty"`
}

// AdminID returns the principal identity the token was issued for.
func (c *Claims) AdminID() string { return c.Subject }

// TokenService issues and verifies HS256 JWTs for the two token classes.
//
// # Two secrets
//
// Access and refresh tokens are signed with independent secrets so that
// compromise of one class cannot forge the other. Tokens are pure
// functions of (payload, secret, TTL, clock); nothing is persisted.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewTokenService creates a TokenService from the two signing secrets and
// their per-class lifetimes.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, issuer string) (*TokenService, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("sec: both token secrets must be provided")
	}
	if accessSecret == refreshSecret {
		return nil, errors.New("sec: access and refresh secrets must differ")
	}

	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        issuer,
		now:           time.Now,
	}, nil
}

// IssueAccessToken creates a short-lived token carrying the admin ID and username.
func (service *TokenService) IssueAccessToken(adminID, username string) (string, error) {
	return service.sign(adminID, username, service.accessTTL, service.accessSecret)
}

// IssueRefreshToken creates a long-lived token carrying only the admin ID.
func (service *TokenService) IssueRefreshToken(adminID string) (string, error) {
	return service.sign(adminID, "", service.refreshTTL, service.refreshSecret)
}

// VerifyAccessToken checks signature and expiry against the access secret.
func (service *TokenService) VerifyAccessToken(tokenString string) (*Claims, error) {
	return service.verify(tokenString, service.accessSecret)
}

// VerifyRefreshToken checks signature and expiry against the refresh secret.
func (service *TokenService) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return service.verify(tokenString, service.refreshSecret)
}

// AccessTTL returns the configured access-token lifetime.
func (service *TokenService) AccessTTL() time.Duration { return service.accessTTL }

// RefreshTTL returns the configured refresh-token lifetime.
func (service *TokenService) RefreshTTL() time.Duration { return service.refreshTTL }

// sign builds and signs a token for one class.
func (service *TokenService) sign(adminID, username string, timeToLive time.Duration, secret []byte) (string, error) {
	currentTime := service.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// verify parses a token and validates it against one class's secret.
func (service *TokenService) verify(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}
