// Package repository defines the persistence interfaces of the domain layer.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repositories. Use cases translate these into
// domain errors with the proper HTTP semantics.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrListingNotFound  = errors.New("listing not found")
)

// AccountRepository defines persistence operations for Account entities.
type AccountRepository interface {
	// Create persists a new account. The generated ID and timestamps are
	// written back onto the entity.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (lowercased) email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List retrieves every account.
	List(ctx context.Context) ([]*entity.Account, error)

	// ListByCityWithOffers retrieves accounts in the given city (matched
	// case-insensitively) that opted in to receiving offers.
	ListByCityWithOffers(ctx context.Context, city string) ([]*entity.Account, error)

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
