// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of an operation, as established
// by the authentication gate.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// --- Input DTOs ---

// RegisterAccountInput defines the data required to register a new account.
// Role may be user or merchant; the admin role is never self-assignable.
type RegisterAccountInput struct {
	Name         string
	Email        string
	Password     string
	Age          int
	City         string
	Interests    []string
	AllowsOffers bool
	Role         entity.Role
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateAccountInput carries a partial account update. Nil fields are left
// untouched. The role is fixed at registration and cannot be patched.
type UpdateAccountInput struct {
	Name         *string
	Email        *string
	Password     *string
	Age          *int
	City         *string
	Interests    *[]string
	AllowsOffers *bool
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterAccountInput) (*entity.Account, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ListOffersAudience returns accounts in the given city that opted in
	// to receiving local offers.
	ListOffersAudience(ctx context.Context, city string) ([]*entity.Account, error)

	// UpdateAccount applies a partial update. Non-admin actors may only
	// update their own account.
	UpdateAccount(ctx context.Context, actor Actor, id uuid.UUID, input UpdateAccountInput) (*entity.Account, error)

	// DeleteAccount removes an account. Non-admin actors may only delete
	// their own account.
	DeleteAccount(ctx context.Context, actor Actor, id uuid.UUID) error
}
