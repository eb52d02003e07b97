package usecase

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateListingInput defines the data required to publish a new listing.
// OwnerID must reference a merchant account; BusinessID must reference an
// existing business not yet claimed by another listing.
type CreateListingInput struct {
	City         string
	ActivityType string
	Title        string
	Summary      string
	BodyTexts    []string
	Images       []string
	BusinessID   uuid.UUID
	OwnerID      uuid.UUID
}

// RatingPatch is the admin-only direct patch of the rating aggregate.
type RatingPatch struct {
	AverageScore     *float64
	TotalRatingCount *int
	ReviewTexts      *[]string
}

// ReviewInput is one review submission to be folded into the aggregate.
type ReviewInput struct {
	Score float64
	Text  string
}

// UpdateListingInput carries a partial listing update. Nil fields are left
// untouched. Which fields the caller's role may modify is decided by the
// field guard; one forbidden field rejects the whole patch.
type UpdateListingInput struct {
	City         *string
	ActivityType *string
	Title        *string
	Summary      *string
	BodyTexts    *[]string
	Images       *[]string
	BusinessID   *uuid.UUID
	Rating       *RatingPatch
	Review       *ReviewInput
}

// PresentFields lists the guarded fields carried by the patch, in a stable
// order, for the field guard to inspect. A Review submission is not a field
// write and is never guarded here.
func (in UpdateListingInput) PresentFields() []service.ListingField {
	var present []service.ListingField

	if in.City != nil {
		present = append(present, service.FieldCity)
	}
	if in.ActivityType != nil {
		present = append(present, service.FieldActivityType)
	}
	if in.Title != nil {
		present = append(present, service.FieldTitle)
	}
	if in.Summary != nil {
		present = append(present, service.FieldSummary)
	}
	if in.BodyTexts != nil {
		present = append(present, service.FieldBodyTexts)
	}
	if in.Images != nil {
		present = append(present, service.FieldImages)
	}
	if in.BusinessID != nil {
		present = append(present, service.FieldBusinessRef)
	}
	if in.Rating != nil {
		if in.Rating.AverageScore != nil {
			present = append(present, service.FieldRatingAverage)
		}
		if in.Rating.TotalRatingCount != nil {
			present = append(present, service.FieldRatingCount)
		}
		if in.Rating.ReviewTexts != nil {
			present = append(present, service.FieldRatingReviews)
		}
	}

	return present
}

// ListingUsecase defines the interface for listing-related business operations.
type ListingUsecase interface {
	// CreateListing publishes a new listing after validating both the
	// business and owner references.
	CreateListing(ctx context.Context, input CreateListingInput) (*entity.Listing, error)

	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	ListListings(ctx context.Context) ([]*entity.Listing, error)

	ListListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)

	// ListListingsByActivity filters active listings by a case-insensitive
	// activity-type substring.
	ListListingsByActivity(ctx context.Context, activity string) ([]*entity.Listing, error)

	// ListListingsByScore returns active listings ordered by average score.
	ListListingsByScore(ctx context.Context, descending bool) ([]*entity.Listing, error)

	// UpdateListing applies a role-guarded partial update. A Review carried
	// by the patch is folded into the rating aggregate server-side.
	UpdateListing(ctx context.Context, actor Actor, id uuid.UUID, input UpdateListingInput) (*entity.Listing, error)

	// SubmitReview folds one review submission into the listing's rating
	// aggregate and returns the updated listing.
	SubmitReview(ctx context.Context, id uuid.UUID, review ReviewInput) (*entity.Listing, error)

	// ArchiveListing retires a listing from all default read paths. The
	// record is kept; archiving an already archived listing fails.
	ArchiveListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// DeleteListing removes the record entirely, archived or not.
	DeleteListing(ctx context.Context, id uuid.UUID) error

	// GenerateListingQR renders a PNG QR code for an active listing's page.
	GenerateListingQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
