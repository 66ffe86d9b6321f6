package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_VerifyRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	hash1, err := HashPassword("secret123")
	assert.NoError(t, err)
	hash2, err := HashPassword("secret123")
	assert.NoError(t, err)

	// bcrypt salts each hash, so two hashes of the same input differ
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, VerifyPassword("secret123", hash1))
	assert.True(t, VerifyPassword("secret123", hash2))
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("anything", ""))
}
