// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vitrina/config"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/service"
	"vitrina/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a signed token carrying the account's identity and role.
func (s *jwtService) GenerateToken(account *entity.Account) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:     account.ID,
		Email:      account.Email,
		Role:       account.Role,
		IsMerchant: account.IsMerchant(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrSignatureInvalid),
			errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domainerrors.ErrInvalidToken
		default:
			return nil, domainerrors.ErrAuthentication
		}
	}

	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrAuthentication
	}

	return claims, nil
}
