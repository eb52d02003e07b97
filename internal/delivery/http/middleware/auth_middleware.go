package middleware

import (
	"slices"
	"strings"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	keyActor  = "actor"
	keyClaims = "claims"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity on
// the request context. The failure mode travels in the business error code:
// TOKEN_NOT_PROVIDED, TOKEN_EXPIRED or INVALID_TOKEN.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenNotProvided
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return err
		}

		c.Set(keyActor, usecase.Actor{ID: claims.UserID, Role: claims.Role})
		c.Set(keyClaims, claims)

		return next(c)
	}
}

// RequireRole only lets callers holding one of the given roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return domainerrors.ErrAuthentication
			}

			if !slices.Contains(roles, actor.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated caller set by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(keyActor).(usecase.Actor)

	return actor, ok
}

// GetClaims returns the full token claims set by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok
}
