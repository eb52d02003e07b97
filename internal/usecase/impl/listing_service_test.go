package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/mocks"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingFixture struct {
	listingRepo  *mocks.ListingRepository
	businessRepo *mocks.BusinessRepository
	accountRepo  *mocks.AccountRepository
	qr           *mocks.QRCodeService
	service      usecase.ListingUsecase
}

func newListingFixture(t *testing.T) *listingFixture {
	t.Helper()

	listingRepo := &mocks.ListingRepository{}
	businessRepo := &mocks.BusinessRepository{}
	accountRepo := &mocks.AccountRepository{}
	qr := &mocks.QRCodeService{}
	factory := &mocks.RepositoryFactory{
		Accounts:   accountRepo,
		Businesses: businessRepo,
		Listings:   listingRepo,
	}

	svc := NewListingService(ListingServiceParams{
		TxManager:   &mocks.TransactionManager{Factory: factory},
		ListingRepo: listingRepo,
		FieldGuard:  service.NewListingFieldGuard(),
		QRService:   qr,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &listingFixture{
		listingRepo:  listingRepo,
		businessRepo: businessRepo,
		accountRepo:  accountRepo,
		qr:           qr,
		service:      svc,
	}
}

func TestListingService_CreateListing(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	businessID := uuid.New()
	ownerID := uuid.New()

	f.businessRepo.On("FindByID", ctx, businessID).
		Return(&entity.Business{ID: businessID}, nil)
	f.accountRepo.On("FindByID", ctx, ownerID).
		Return(&entity.Account{ID: ownerID, Role: entity.RoleMerchant}, nil)
	f.listingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(args mock.Arguments) {
			listing := args.Get(1).(*entity.Listing)
			listing.ID = uuid.New()
		}).
		Return(nil)

	listing, err := f.service.CreateListing(ctx, usecase.CreateListingInput{
		City:         "Valencia",
		ActivityType: "restaurante",
		Title:        "Casa Pepe",
		BusinessID:   businessID,
		OwnerID:      ownerID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, listing.ID)
	assert.False(t, listing.IsArchived)
	assert.Zero(t, listing.Rating.TotalRatingCount)
}

func TestListingService_CreateListing_DanglingBusinessRef(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	businessID := uuid.New()

	f.businessRepo.On("FindByID", ctx, businessID).
		Return(nil, repository.ErrBusinessNotFound)

	listing, err := f.service.CreateListing(ctx, usecase.CreateListingInput{
		Title:      "Casa Pepe",
		BusinessID: businessID,
		OwnerID:    uuid.New(),
	})
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessRefNotFound)
	// Nothing may be persisted when a reference dangles.
	f.listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListingService_CreateListing_OwnerNotMerchant(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	businessID := uuid.New()
	ownerID := uuid.New()

	f.businessRepo.On("FindByID", ctx, businessID).
		Return(&entity.Business{ID: businessID}, nil)
	f.accountRepo.On("FindByID", ctx, ownerID).
		Return(&entity.Account{ID: ownerID, Role: entity.RoleUser}, nil)

	listing, err := f.service.CreateListing(ctx, usecase.CreateListingInput{
		Title:      "Casa Pepe",
		BusinessID: businessID,
		OwnerID:    ownerID,
	})
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerRefNotFound)
	f.listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListingService_UpdateListing_GuardRejectsWholePatch(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()
	title := "New title"
	avg := 5.0

	// A user sneaking an editorial field in with review data is rejected
	// before any lookup happens.
	listing, err := f.service.UpdateListing(ctx,
		usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}, listingID,
		usecase.UpdateListingInput{Title: &title})
	assert.Nil(t, listing)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN_FIELD", appErr.ErrorCode())
	assert.Equal(t, "title", appErr.Details())
	f.listingRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)

	// A merchant touching the aggregate bookkeeping fails the same way.
	listing, err = f.service.UpdateListing(ctx,
		usecase.Actor{ID: uuid.New(), Role: entity.RoleMerchant}, listingID,
		usecase.UpdateListingInput{
			Title:  &title,
			Rating: &usecase.RatingPatch{AverageScore: &avg},
		})
	assert.Nil(t, listing)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN_FIELD", appErr.ErrorCode())
	assert.Equal(t, "rating.averageScore", appErr.Details())
	f.listingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListingService_UpdateListing_MerchantEditorialPatch(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()
	title := "Renamed"
	summary := "Fresh summary"

	f.listingRepo.On("FindByID", ctx, listingID).
		Return(&entity.Listing{ID: listingID, Title: "Old", BusinessID: uuid.New()}, nil)
	f.listingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := f.service.UpdateListing(ctx,
		usecase.Actor{ID: uuid.New(), Role: entity.RoleMerchant}, listingID,
		usecase.UpdateListingInput{Title: &title, Summary: &summary})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", listing.Title)
	assert.Equal(t, "Fresh summary", listing.Summary)
}

func TestListingService_UpdateListing_UserReviewIsFolded(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()

	f.listingRepo.On("FindByID", ctx, listingID).
		Return(&entity.Listing{
			ID: listingID,
			Rating: entity.Rating{
				AverageScore:     4.0,
				TotalRatingCount: 1,
				ReviewTexts:      []string{"great"},
			},
		}, nil)
	f.listingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := f.service.UpdateListing(ctx,
		usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}, listingID,
		usecase.UpdateListingInput{Review: &usecase.ReviewInput{Score: 2.0, Text: "meh"}})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, listing.Rating.AverageScore, 1e-9)
	assert.Equal(t, 2, listing.Rating.TotalRatingCount)
	assert.Equal(t, []string{"great", "meh"}, listing.Rating.ReviewTexts)
}

func TestListingService_UpdateListing_ArchivedReadsAsNotFound(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()
	title := "Renamed"

	// The active-only lookup hides archived rows from the update path.
	f.listingRepo.On("FindByID", ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	listing, err := f.service.UpdateListing(ctx,
		usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, listingID,
		usecase.UpdateListingInput{Title: &title})
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_UpdateListing_DanglingBusinessRef(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()
	newBusinessID := uuid.New()

	f.listingRepo.On("FindByID", ctx, listingID).
		Return(&entity.Listing{ID: listingID, BusinessID: uuid.New()}, nil)
	f.businessRepo.On("FindByID", ctx, newBusinessID).
		Return(nil, repository.ErrBusinessNotFound)

	listing, err := f.service.UpdateListing(ctx,
		usecase.Actor{ID: uuid.New(), Role: entity.RoleMerchant}, listingID,
		usecase.UpdateListingInput{BusinessID: &newBusinessID})
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessRefNotFound)
	f.listingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListingService_UpdateListing_AdminRatingPatch(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()
	avg := 4.5
	count := 10

	f.listingRepo.On("FindByID", ctx, listingID).
		Return(&entity.Listing{ID: listingID}, nil)
	f.listingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := f.service.UpdateListing(ctx,
		usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, listingID,
		usecase.UpdateListingInput{
			Rating: &usecase.RatingPatch{AverageScore: &avg, TotalRatingCount: &count},
		})
	require.NoError(t, err)
	assert.Equal(t, 4.5, listing.Rating.AverageScore)
	assert.Equal(t, 10, listing.Rating.TotalRatingCount)
}

func TestListingService_SubmitReview(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()

	f.listingRepo.On("FindByID", ctx, listingID).
		Return(&entity.Listing{
			ID:     listingID,
			Rating: entity.Rating{AverageScore: 4.0, TotalRatingCount: 1},
		}, nil)
	f.listingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := f.service.SubmitReview(ctx, listingID, usecase.ReviewInput{Score: 2.0})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, listing.Rating.AverageScore, 1e-9)
	assert.Equal(t, 2, listing.Rating.TotalRatingCount)
	// Scoreless text is allowed to be empty; the count still advances.
	assert.Empty(t, listing.Rating.ReviewTexts)
}

func TestListingService_SubmitReview_ScoreOutOfRange(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	for _, score := range []float64{-0.1, 5.1} {
		listing, err := f.service.SubmitReview(ctx, uuid.New(), usecase.ReviewInput{Score: score})
		assert.Nil(t, listing)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidScore)
	}
	f.listingRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestListingService_ArchiveListing(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()

	f.listingRepo.On("FindByIDAny", ctx, listingID).
		Return(&entity.Listing{ID: listingID}, nil)
	f.listingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := f.service.ArchiveListing(ctx, listingID)
	require.NoError(t, err)
	assert.True(t, listing.IsArchived)
}

func TestListingService_ArchiveListing_AlreadyArchived(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()

	f.listingRepo.On("FindByIDAny", ctx, listingID).
		Return(&entity.Listing{ID: listingID, IsArchived: true}, nil)

	listing, err := f.service.ArchiveListing(ctx, listingID)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyArchived)
	f.listingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListingService_DeleteListing_WorksOnArchived(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()

	// Delete goes straight at the row, archive state never matters.
	f.listingRepo.On("Delete", ctx, listingID).Return(nil)

	assert.NoError(t, f.service.DeleteListing(ctx, listingID))
}

func TestListingService_ListListings_EmptyIsNotFound(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	f.listingRepo.On("ListActive", ctx).Return([]*entity.Listing{}, nil)

	listings, err := f.service.ListListings(ctx)
	assert.Nil(t, listings)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_ListListingsByScore(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	ordered := []*entity.Listing{
		{ID: uuid.New(), Rating: entity.Rating{AverageScore: 4.8}},
		{ID: uuid.New(), Rating: entity.Rating{AverageScore: 3.1}},
	}
	f.listingRepo.On("ListActiveOrderedByScore", ctx, true).Return(ordered, nil)

	listings, err := f.service.ListListingsByScore(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, ordered, listings)
}

func TestListingService_GenerateListingQR(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()

	f.listingRepo.On("FindByID", ctx, listingID).
		Return(&entity.Listing{ID: listingID}, nil)
	f.qr.On("GenerateListingQR", listingID).Return([]byte{0x89, 0x50}, nil)

	png, err := f.service.GenerateListingQR(ctx, listingID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}

func TestListingService_GenerateListingQR_ArchivedIsNotFound(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	listingID := uuid.New()

	f.listingRepo.On("FindByID", ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	png, err := f.service.GenerateListingQR(ctx, listingID)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
	f.qr.AssertNotCalled(t, "GenerateListingQR", mock.Anything)
}
