package repository

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingRepository defines persistence operations for Listing entities.
//
// Every default read path excludes archived listings; this is an invariant of
// the data model, not an opt-in filter. The *Any variants bypass the filter
// and exist only for the archive and hard-delete transitions.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a single active listing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindByIDAny retrieves a listing regardless of its archive state.
	FindByIDAny(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// ListActive retrieves all active listings.
	ListActive(ctx context.Context) ([]*entity.Listing, error)

	// ListActiveByOwner retrieves active listings owned by the given merchant.
	ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)

	// ListActiveByActivity retrieves active listings whose activity type
	// contains the given substring, matched case-insensitively.
	ListActiveByActivity(ctx context.Context, activity string) ([]*entity.Listing, error)

	// ListActiveOrderedByScore retrieves all active listings sorted by
	// average score, ascending or descending.
	ListActiveOrderedByScore(ctx context.Context, descending bool) ([]*entity.Listing, error)

	Update(ctx context.Context, listing *entity.Listing) error

	// Delete removes a listing permanently, regardless of archive state.
	Delete(ctx context.Context, id uuid.UUID) error
}
