package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBusinessInput defines the data required to register a business record.
type CreateBusinessInput struct {
	Name    string
	TaxID   int64
	Address string
	Email   string
	Phone   string
}

// UpdateBusinessInput carries a partial business update. Nil fields are left untouched.
type UpdateBusinessInput struct {
	Name    *string
	TaxID   *int64
	Address *string
	Email   *string
	Phone   *string
}

// BusinessUsecase defines the interface for business-record operations.
// Write operations are admin-only; the delivery layer enforces the role gate.
type BusinessUsecase interface {
	CreateBusiness(ctx context.Context, input CreateBusinessInput) (*entity.Business, error)

	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// GetBusinessByTaxID looks a business up by its numeric fiscal identifier.
	GetBusinessByTaxID(ctx context.Context, taxID int64) (*entity.Business, error)

	ListBusinesses(ctx context.Context) ([]*entity.Business, error)

	// ListBusinessesByTaxID returns every business ordered by taxId ascending.
	ListBusinessesByTaxID(ctx context.Context) ([]*entity.Business, error)

	UpdateBusiness(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (*entity.Business, error)

	// UpdateBusinessByTaxID applies a partial update to the business holding
	// the given fiscal identifier.
	UpdateBusinessByTaxID(ctx context.Context, taxID int64, input UpdateBusinessInput) (*entity.Business, error)

	DeleteBusiness(ctx context.Context, id uuid.UUID) error

	// DeleteBusinessByTaxID removes the business holding the given fiscal identifier.
	DeleteBusinessByTaxID(ctx context.Context, taxID int64) error
}
