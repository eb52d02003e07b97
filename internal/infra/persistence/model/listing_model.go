package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table. The rating aggregate is stored
// denormalized on the row; review texts and page content are JSONB arrays.
// The unique constraint on business_id enforces the one-listing-per-business
// rule at the storage layer.
type ListingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	City             string    `gorm:"type:varchar(100);index"`
	ActivityType     string    `gorm:"type:varchar(100);index"`
	Title            string    `gorm:"type:varchar(200);not null"`
	Summary          string    `gorm:"type:text"`
	BodyTexts        []string  `gorm:"type:jsonb;serializer:json"`
	Images           []string  `gorm:"type:jsonb;serializer:json"`
	AverageScore     float64   `gorm:"not null;default:0"`
	TotalRatingCount int       `gorm:"not null;default:0"`
	ReviewTexts      []string  `gorm:"type:jsonb;serializer:json"`
	BusinessID       uuid.UUID `gorm:"type:uuid;unique;not null"`
	OwnerID          uuid.UUID `gorm:"type:uuid;index;not null"`
	IsArchived       bool      `gorm:"not null;default:false;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
