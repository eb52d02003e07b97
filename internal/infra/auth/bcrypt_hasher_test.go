package auth

import (
	"testing"

	"vitrina/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	password := "my_secure_password_123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong_password", hash))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_DistinctHashesForSamePassword(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("repeated")
	assert.NoError(t, err)
	second, err := hasher.Hash("repeated")
	assert.NoError(t, err)

	// Salts differ, so hashes differ while both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("repeated", first))
	assert.True(t, hasher.Check("repeated", second))
}
