package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	TaxID     int64     `gorm:"column:tax_id;unique;not null"`
	Address   string    `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Phone     string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
