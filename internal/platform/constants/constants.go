// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package constants provides centralized, immutable values shared across
layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Authentication: cookie names and attributes for the token pair.
  - Uploads: limits for the avatar pipeline.

Keeping these here eliminates magic strings and numbers from the
business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "staffdeck-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AccessTokenCookieName is the cookie carrying the short-lived access token.
	AccessTokenCookieName = "accessToken"

	// RefreshTokenCookieName is the cookie carrying the long-lived refresh token.
	RefreshTokenCookieName = "refreshToken"

	// SessionCookiePath scopes both session cookies to the whole API.
	SessionCookiePath = "/"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Uploads

const (
	// MaxAvatarSize bounds the in-memory multipart parse for avatar uploads.
	MaxAvatarSize = 8 << 20 // 8 MiB

	// AvatarKeyPrefix is the object-storage key prefix for employee avatars.
	AvatarKeyPrefix = "avatars/"
)

// # Database Schemas

const (
	SchemaAdmins = "admins"
	SchemaStaff  = "staff"
)

// # Redis Keys (Cache Taxonomy)

const (
	// RedisKeyEmployeeList caches the full employee listing.
	RedisKeyEmployeeList = "staff:employees:all"

	// EmployeeListCacheTTL bounds staleness of the cached listing.
	EmployeeListCacheTTL = 60 * time.Second
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldMessage = "message"
	FieldData    = "data"
	FieldDetails = "details"
)
