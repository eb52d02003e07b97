package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is the legal/commercial entity record, distinct from its web
// Listing. Businesses are created by administrators and referenced by at most
// one Listing.
type Business struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     int64     `json:"taxId"` // Numeric fiscal identifier (CIF); unique by convention.
	Address   string    `json:"address"`
	Email     string    `json:"email"` // Unique contact address.
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
