// Package mocks provides hand-written testify mocks for the domain
// interfaces, shared by the use case and delivery tests.
package mocks

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a mock implementation of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}

func (m *AccountRepository) ListByCityWithOffers(ctx context.Context, city string) ([]*entity.Account, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}

func (m *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// BusinessRepository is a mock implementation of repository.BusinessRepository.
type BusinessRepository struct {
	mock.Mock
}

func (m *BusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	args := m.Called(ctx, business)

	return args.Error(0)
}

func (m *BusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *BusinessRepository) FindByTaxID(ctx context.Context, taxID int64) (*entity.Business, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *BusinessRepository) List(ctx context.Context) ([]*entity.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *BusinessRepository) ListOrderedByTaxID(ctx context.Context) ([]*entity.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *BusinessRepository) Update(ctx context.Context, business *entity.Business) error {
	args := m.Called(ctx, business)

	return args.Error(0)
}

func (m *BusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// ListingRepository is a mock implementation of repository.ListingRepository.
type ListingRepository struct {
	mock.Mock
}

func (m *ListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	args := m.Called(ctx, listing)

	return args.Error(0)
}

func (m *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *ListingRepository) FindByIDAny(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *ListingRepository) ListActive(ctx context.Context) ([]*entity.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingRepository) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingRepository) ListActiveByActivity(ctx context.Context, activity string) ([]*entity.Listing, error) {
	args := m.Called(ctx, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingRepository) ListActiveOrderedByScore(ctx context.Context, descending bool) ([]*entity.Listing, error) {
	args := m.Called(ctx, descending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *ListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	args := m.Called(ctx, listing)

	return args.Error(0)
}

func (m *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// RepositoryFactory is a stub factory handing out the mocks above.
type RepositoryFactory struct {
	Accounts   *AccountRepository
	Businesses *BusinessRepository
	Listings   *ListingRepository
}

func (f *RepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.Accounts
}

func (f *RepositoryFactory) BusinessRepo() repository.BusinessRepository {
	return f.Businesses
}

func (f *RepositoryFactory) ListingRepo() repository.ListingRepository {
	return f.Listings
}

// TransactionManager is a pass-through stub: it runs the unit of work
// immediately against the configured factory, with no real transaction.
type TransactionManager struct {
	Factory *RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
