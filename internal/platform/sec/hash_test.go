// Copyright (c) 2026 Staffdeck. All rights reserved.

package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "Secr3t!"

	hash, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// The digest is never the plaintext.
	assert.NotEqual(t, password, hash)

	// Fixed cost factor of 10 rounds.
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	// Salting: two hashes of the same input differ.
	secondHash, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, secondHash)
}

func TestCheckPasswordHash(t *testing.T) {
	password := "Secr3t!"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash(password, hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("", hash))
	assert.False(t, CheckPasswordHash(password, "invalid-hash"))
}
