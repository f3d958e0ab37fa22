// Copyright (c) 2026 Staffdeck. All rights reserved.

package sec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *TokenService {
	t.Helper()
	service, err := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour, "staffdeck.test")
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_RejectsBadSecrets verifies constructor guards.
*/
func TestNewTokenService_RejectsBadSecrets(t *testing.T) {
	_, err := NewTokenService("", "refresh", time.Minute, time.Hour, "iss")
	assert.Error(t, err)

	_, err = NewTokenService("access", "", time.Minute, time.Hour, "iss")
	assert.Error(t, err)

	_, err = NewTokenService("same", "same", time.Minute, time.Hour, "iss")
	assert.Error(t, err)
}

/*
TestAccessToken_RoundTrip verifies that an issued access token resolves
back to the same principal.
*/
func TestAccessToken_RoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.IssueAccessToken("admin-123", "ann1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", claims.AdminID())
	assert.Equal(t, "ann1", claims.Username)
}

/*
TestRefreshToken_CarriesOnlyID verifies the refresh payload omits the username.
*/
func TestRefreshToken_CarriesOnlyID(t *testing.T) {
	service := newTestService(t)

	token, err := service.IssueRefreshToken("admin-123")
	require.NoError(t, err)

	claims, err := service.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", claims.AdminID())
	assert.Empty(t, claims.Username)
}

/*
TestTokenClasses_DoNotCrossVerify verifies the two secrets are independent:
an access token must never pass refresh verification, and vice versa.
*/
func TestTokenClasses_DoNotCrossVerify(t *testing.T) {
	service := newTestService(t)

	accessToken, err := service.IssueAccessToken("admin-123", "ann1")
	require.NoError(t, err)
	refreshToken, err := service.IssueRefreshToken("admin-123")
	require.NoError(t, err)

	_, err = service.VerifyRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = service.VerifyAccessToken(refreshToken)
	assert.Error(t, err)
}

/*
TestExpiredToken_FailsVerification verifies that a correctly signed token
with a past expiry claim is rejected.
*/
func TestExpiredToken_FailsVerification(t *testing.T) {
	service := newTestService(t)

	// Issue with a clock 30 minutes in the past so the 15m access TTL
	// has already elapsed. The signature itself remains valid.
	service.now = func() time.Time { return time.Now().Add(-30 * time.Minute) }
	token, err := service.IssueAccessToken("admin-123", "ann1")
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.VerifyAccessToken(token)
	assert.Error(t, err)
}

/*
TestTamperedToken_FailsVerification verifies signature enforcement.
*/
func TestTamperedToken_FailsVerification(t *testing.T) {
	service := newTestService(t)

	token, err := service.IssueAccessToken("admin-123", "ann1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = service.VerifyAccessToken(tampered)
	assert.Error(t, err)

	_, err = service.VerifyAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestTTLAccessors(t *testing.T) {
	service := newTestService(t)
	assert.Equal(t, 15*time.Minute, service.AccessTTL())
	assert.Equal(t, 168*time.Hour, service.RefreshTTL())
}
