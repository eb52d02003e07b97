package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record for anyone interacting with the platform:
// end users, merchants, and administrators. The password is stored only as a
// one-way hash; it is never serialized into API responses.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Display name.
	Email        string    // Login identifier; unique, stored lowercased.
	PasswordHash string    // bcrypt hash, produced at the registration boundary.
	Age          int       // Must be >= 0.
	City         string
	Interests    []string // Free-form interest tags.
	AllowsOffers bool     // Whether the account opted in to local offers.
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsMerchant reports whether the account holds the merchant role.
func (a *Account) IsMerchant() bool {
	return a.Role == RoleMerchant
}
