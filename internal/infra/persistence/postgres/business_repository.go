package postgres

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the domain's BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyInUse.WithDetails("email or taxId already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a single business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).First(&businessM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByTaxID retrieves a business by its numeric fiscal identifier.
func (repo *businessRepository) FindByTaxID(ctx context.Context, taxID int64) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).First(&businessM, "tax_id = ?", taxID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by tax id")
	}

	return toBusinessDomain(&businessM), nil
}

// List retrieves every business.
func (repo *businessRepository) List(ctx context.Context) ([]*entity.Business, error) {
	var businessMs []model.BusinessModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&businessMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return toBusinessDomainSlice(businessMs), nil
}

// ListOrderedByTaxID retrieves every business sorted by tax id ascending.
func (repo *businessRepository) ListOrderedByTaxID(ctx context.Context) ([]*entity.Business, error) {
	var businessMs []model.BusinessModel
	if err := repo.db.WithContext(ctx).Order("tax_id ASC").Find(&businessMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by tax id")
	}

	return toBusinessDomainSlice(businessMs), nil
}

// Update modifies an existing business.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	result := repo.db.WithContext(ctx).Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Select("Name", "TaxID", "Address", "Email", "Phone").
		Updates(businessM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyInUse.WithDetails("email or taxId already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// Delete removes a business permanently.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BusinessModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:        data.ID,
		Name:      data.Name,
		TaxID:     data.TaxID,
		Address:   data.Address,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toBusinessDomainSlice(data []model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(data))
	for i := range data {
		businesses = append(businesses, toBusinessDomain(&data[i]))
	}

	return businesses
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel for persistence.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:      data.ID,
		Name:    data.Name,
		TaxID:   data.TaxID,
		Address: data.Address,
		Email:   data.Email,
		Phone:   data.Phone,
	}
}
