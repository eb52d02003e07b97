package service

import (
	"vitrina/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload carried by every issued token. Role travels as a
// single closed value; IsMerchant is kept for dashboard compatibility.
type Claims struct {
	UserID     uuid.UUID   `json:"userId"`
	Email      string      `json:"email"`
	Role       entity.Role `json:"role"`
	IsMerchant bool        `json:"isMerchant"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues a signed token for the given account.
	GenerateToken(account *entity.Account) (string, error)

	// ValidateToken verifies a token string and returns its claims. On
	// failure it returns one of the gate's domain errors: ErrTokenExpired
	// when the validity window elapsed, ErrInvalidToken when the signature
	// or structure does not verify, ErrAuthentication otherwise.
	ValidateToken(tokenString string) (*Claims, error)
}
