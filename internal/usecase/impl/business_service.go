package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness registers a new business record.
func (srv *businessService) CreateBusiness(ctx context.Context, input usecase.CreateBusinessInput) (*entity.Business, error) {
	business := &entity.Business{
		Name:    input.Name,
		TaxID:   input.TaxID,
		Address: input.Address,
		Email:   input.Email,
		Phone:   input.Phone,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Business created",
		slog.Any("businessID", business.ID), slog.Int64("taxID", business.TaxID))

	return business, nil
}

// GetBusiness retrieves a single business by ID.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// GetBusinessByTaxID looks a business up by its numeric fiscal identifier.
func (srv *businessService) GetBusinessByTaxID(ctx context.Context, taxID int64) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by tax id")
	}

	return business, nil
}

// ListBusinesses returns every business. An empty directory reads as not found.
func (srv *businessService) ListBusinesses(ctx context.Context) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}
	if len(businesses) == 0 {
		return nil, domainerrors.ErrBusinessNotFound
	}

	return businesses, nil
}

// ListBusinessesByTaxID returns every business ordered by taxId ascending.
func (srv *businessService) ListBusinessesByTaxID(ctx context.Context) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.ListOrderedByTaxID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by tax id")
	}
	if len(businesses) == 0 {
		return nil, domainerrors.ErrBusinessNotFound
	}

	return businesses, nil
}

// UpdateBusiness applies a partial update to a business record.
func (srv *businessService) UpdateBusiness(ctx context.Context, id uuid.UUID, input usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return srv.applyBusinessPatch(ctx, business, input)
}

// UpdateBusinessByTaxID applies a partial update to the business holding the
// given fiscal identifier.
func (srv *businessService) UpdateBusinessByTaxID(ctx context.Context, taxID int64, input usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by tax id")
	}

	return srv.applyBusinessPatch(ctx, business, input)
}

func (srv *businessService) applyBusinessPatch(ctx context.Context, business *entity.Business, input usecase.UpdateBusinessInput) (*entity.Business, error) {
	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.TaxID != nil {
		business.TaxID = *input.TaxID
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.Email != nil {
		business.Email = *input.Email
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("Business updated", slog.Any("businessID", business.ID))

	return business, nil
}

// DeleteBusinessByTaxID removes the business holding the given fiscal identifier.
func (srv *businessService) DeleteBusinessByTaxID(ctx context.Context, taxID int64) error {
	business, err := srv.businessRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to find business by tax id")
	}

	return srv.DeleteBusiness(ctx, business.ID)
}

// DeleteBusiness removes a business record permanently.
func (srv *businessService) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	if err := srv.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return err
	}

	srv.log(ctx).Info("Business deleted", slog.Any("businessID", id))

	return nil
}
