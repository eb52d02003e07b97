package mocks

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ListingUsecase is a mock implementation of usecase.ListingUsecase.
type ListingUsecase struct {
	mock.Mock
}

func (m *ListingUsecase) CreateListing(ctx context.Context, input usecase.CreateListingInput) (*entity.Listing, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) ListListings(ctx context.Context) ([]*entity.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) ListListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) ListListingsByActivity(ctx context.Context, activity string) ([]*entity.Listing, error) {
	args := m.Called(ctx, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) ListListingsByScore(ctx context.Context, descending bool) ([]*entity.Listing, error) {
	args := m.Called(ctx, descending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) UpdateListing(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateListingInput) (*entity.Listing, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) SubmitReview(ctx context.Context, id uuid.UUID, review usecase.ReviewInput) (*entity.Listing, error) {
	args := m.Called(ctx, id, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) ArchiveListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *ListingUsecase) DeleteListing(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ListingUsecase) GenerateListingQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// BusinessUsecase is a mock implementation of usecase.BusinessUsecase.
type BusinessUsecase struct {
	mock.Mock
}

func (m *BusinessUsecase) CreateBusiness(ctx context.Context, input usecase.CreateBusinessInput) (*entity.Business, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *BusinessUsecase) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *BusinessUsecase) GetBusinessByTaxID(ctx context.Context, taxID int64) (*entity.Business, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *BusinessUsecase) ListBusinesses(ctx context.Context) ([]*entity.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *BusinessUsecase) ListBusinessesByTaxID(ctx context.Context) ([]*entity.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *BusinessUsecase) UpdateBusiness(ctx context.Context, id uuid.UUID, input usecase.UpdateBusinessInput) (*entity.Business, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *BusinessUsecase) UpdateBusinessByTaxID(ctx context.Context, taxID int64, input usecase.UpdateBusinessInput) (*entity.Business, error) {
	args := m.Called(ctx, taxID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *BusinessUsecase) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *BusinessUsecase) DeleteBusinessByTaxID(ctx context.Context, taxID int64) error {
	args := m.Called(ctx, taxID)

	return args.Error(0)
}
