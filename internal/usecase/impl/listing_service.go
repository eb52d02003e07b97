package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	fieldGuard  service.ListingFieldGuard
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	FieldGuard  service.ListingFieldGuard
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		fieldGuard:  params.FieldGuard,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing publishes a new listing. Both the business reference and the
// owner reference are validated inside the transaction, before anything is
// persisted; a dangling reference fails the whole request.
func (srv *listingService) CreateListing(ctx context.Context, input usecase.CreateListingInput) (*entity.Listing, error) {
	listing := &entity.Listing{
		City:         input.City,
		ActivityType: input.ActivityType,
		Title:        input.Title,
		Summary:      input.Summary,
		BodyTexts:    input.BodyTexts,
		Images:       input.Images,
		BusinessID:   input.BusinessID,
		OwnerID:      input.OwnerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.BusinessRepo().FindByID(ctx, input.BusinessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessRefNotFound
			}

			return errors.Wrap(err, "failed to resolve business reference")
		}

		owner, err := repoFactory.AccountRepo().FindByID(ctx, input.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrOwnerRefNotFound
			}

			return errors.Wrap(err, "failed to resolve owner reference")
		}
		if !owner.IsMerchant() {
			return domainerrors.ErrOwnerRefNotFound
		}

		return repoFactory.ListingRepo().Create(ctx, listing)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing created",
		slog.Any("listingID", listing.ID), slog.Any("businessID", listing.BusinessID))

	return listing, nil
}

// GetListing retrieves a single active listing. Archived listings read as not found.
func (srv *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// ListListings returns every active listing. An empty result reads as not found.
func (srv *listingService) ListListings(ctx context.Context) ([]*entity.Listing, error) {
	return srv.listOrNotFound(srv.listingRepo.ListActive(ctx))
}

// ListListingsByOwner returns the active listings of one merchant.
func (srv *listingService) ListListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	return srv.listOrNotFound(srv.listingRepo.ListActiveByOwner(ctx, ownerID))
}

// ListListingsByActivity filters active listings by activity-type substring.
func (srv *listingService) ListListingsByActivity(ctx context.Context, activity string) ([]*entity.Listing, error) {
	return srv.listOrNotFound(srv.listingRepo.ListActiveByActivity(ctx, activity))
}

// ListListingsByScore returns active listings ordered by average score.
func (srv *listingService) ListListingsByScore(ctx context.Context, descending bool) ([]*entity.Listing, error) {
	return srv.listOrNotFound(srv.listingRepo.ListActiveOrderedByScore(ctx, descending))
}

func (srv *listingService) listOrNotFound(listings []*entity.Listing, err error) ([]*entity.Listing, error) {
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}
	if len(listings) == 0 {
		return nil, domainerrors.ErrListingNotFound
	}

	return listings, nil
}

// UpdateListing applies a role-guarded partial update. The guard runs before
// any persistence work: one forbidden field rejects the whole patch and
// nothing is applied. A review carried by the patch is folded into the
// aggregate server-side, in the same transaction as the field writes.
func (srv *listingService) UpdateListing(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateListingInput) (*entity.Listing, error) {
	if field, hit := srv.fieldGuard.FirstViolation(actor.Role, input.PresentFields()); hit {
		srv.log(ctx).Warn("Listing patch rejected by field guard",
			slog.Any("listingID", id), slog.Any("role", actor.Role), slog.String("field", string(field)))

		return nil, domainerrors.NewForbiddenFieldError(string(field))
	}

	if input.Review != nil && !entity.ValidScore(input.Review.Score) {
		return nil, domainerrors.ErrInvalidScore
	}

	var updated *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		// Active-only lookup: an archived listing cannot be patched.
		listing, err := listingRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		if input.BusinessID != nil && *input.BusinessID != listing.BusinessID {
			if _, err := repoFactory.BusinessRepo().FindByID(ctx, *input.BusinessID); err != nil {
				if errors.Is(err, repository.ErrBusinessNotFound) {
					return domainerrors.ErrBusinessRefNotFound
				}

				return errors.Wrap(err, "failed to resolve business reference")
			}
			listing.BusinessID = *input.BusinessID
		}

		applyListingPatch(listing, input)

		if input.Review != nil {
			listing.Rating = listing.Rating.Fold(input.Review.Score, input.Review.Text)
		}

		if err := listingRepo.Update(ctx, listing); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return err
		}

		updated = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing updated", slog.Any("listingID", id))

	return updated, nil
}

func applyListingPatch(listing *entity.Listing, input usecase.UpdateListingInput) {
	if input.City != nil {
		listing.City = *input.City
	}
	if input.ActivityType != nil {
		listing.ActivityType = *input.ActivityType
	}
	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Summary != nil {
		listing.Summary = *input.Summary
	}
	if input.BodyTexts != nil {
		listing.BodyTexts = *input.BodyTexts
	}
	if input.Images != nil {
		listing.Images = *input.Images
	}
	if input.Rating != nil {
		if input.Rating.AverageScore != nil {
			listing.Rating.AverageScore = *input.Rating.AverageScore
		}
		if input.Rating.TotalRatingCount != nil {
			listing.Rating.TotalRatingCount = *input.Rating.TotalRatingCount
		}
		if input.Rating.ReviewTexts != nil {
			listing.Rating.ReviewTexts = *input.Rating.ReviewTexts
		}
	}
}

// SubmitReview folds one review submission into the rating aggregate. The
// read-fold-write runs inside a single transaction; folding is not
// idempotent, so callers must not blindly retry.
func (srv *listingService) SubmitReview(ctx context.Context, id uuid.UUID, review usecase.ReviewInput) (*entity.Listing, error) {
	if !entity.ValidScore(review.Score) {
		return nil, domainerrors.ErrInvalidScore
	}

	var updated *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		listing, err := listingRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		listing.Rating = listing.Rating.Fold(review.Score, review.Text)

		if err := listingRepo.Update(ctx, listing); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return err
		}

		updated = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review folded into listing",
		slog.Any("listingID", id), slog.Float64("score", review.Score),
		slog.Int("totalRatingCount", updated.Rating.TotalRatingCount))

	return updated, nil
}

// ArchiveListing retires a listing from all default read paths. The record is
// kept for audit; archiving twice fails.
func (srv *listingService) ArchiveListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var archived *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		listing, err := listingRepo.FindByIDAny(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}
		if listing.IsArchived {
			return domainerrors.ErrAlreadyArchived
		}

		listing.IsArchived = true

		if err := listingRepo.Update(ctx, listing); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return err
		}

		archived = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing archived", slog.Any("listingID", id))

	return archived, nil
}

// DeleteListing removes the record entirely, archived or not.
func (srv *listingService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := srv.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return err
	}

	srv.log(ctx).Info("Listing deleted", slog.Any("listingID", id))

	return nil
}

// GenerateListingQR renders a PNG QR code for an active listing's public page.
func (srv *listingService) GenerateListingQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetListing(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateListingQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}
