package repository

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessRepository defines persistence operations for Business entities.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByTaxID retrieves a business by its numeric fiscal identifier.
	FindByTaxID(ctx context.Context, taxID int64) (*entity.Business, error)

	List(ctx context.Context) ([]*entity.Business, error)

	// ListOrderedByTaxID retrieves every business sorted by taxId ascending.
	ListOrderedByTaxID(ctx context.Context) ([]*entity.Business, error)

	Update(ctx context.Context, business *entity.Business) error

	Delete(ctx context.Context, id uuid.UUID) error
}
