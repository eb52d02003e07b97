// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleUser indicates a regular end user who browses and reviews listings.
	RoleUser Role = "user"
	// RoleMerchant indicates a merchant who owns and edits listings.
	RoleMerchant Role = "merchant"
	// RoleAdmin indicates an administrator with unrestricted access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMerchant, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsRegisterable reports whether the role may be chosen at self-registration.
// Admin accounts are provisioned out of band, never through the public API.
func (r Role) IsRegisterable() bool {
	return r == RoleUser || r == RoleMerchant
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
