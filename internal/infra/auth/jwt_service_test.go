package auth

import (
	"testing"
	"time"

	"vitrina/config"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testConfig("test_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	account := &entity.Account{
		ID:    uuid.New(),
		Email: "merchant@example.com",
		Role:  entity.RoleMerchant,
	}

	token, err := jwtService.GenerateToken(account)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, account.ID, claims.UserID)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, entity.RoleMerchant, claims.Role)
	assert.True(t, claims.IsMerchant)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig("test_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig("test_secret_key_very_long_for_testing", -time.Minute)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	account := &entity.Account{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  entity.RoleUser,
	}

	token, err := jwtService.GenerateToken(account)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	assert.NoError(t, err)

	verifier, err := NewJWTService(testConfig("another_secret_key_very_long_for_testing", time.Hour))
	assert.NoError(t, err)

	account := &entity.Account{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  entity.RoleUser,
	}

	token, err := issuer.GenerateToken(account)
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
