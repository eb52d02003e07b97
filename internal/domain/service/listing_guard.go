package service

import "vitrina/internal/domain/entity"

// ListingField identifies a top-level field of a listing update patch, using
// the wire names callers see in FORBIDDEN_FIELD rejections.
type ListingField string

const (
	FieldCity          ListingField = "city"
	FieldActivityType  ListingField = "activityType"
	FieldTitle         ListingField = "title"
	FieldSummary       ListingField = "summary"
	FieldBodyTexts     ListingField = "bodyTexts"
	FieldImages        ListingField = "images"
	FieldBusinessRef   ListingField = "businessRef"
	FieldRatingAverage ListingField = "rating.averageScore"
	FieldRatingCount   ListingField = "rating.totalRatingCount"
	FieldRatingReviews ListingField = "rating.reviewTexts"
)

// ListingFieldGuard is the explicit permission table for listing updates:
// each guarded field maps to the roles forbidden to modify it. Admins are
// unrestricted. An update patch containing any forbidden field is rejected
// as a whole; no field in the patch is applied.
type ListingFieldGuard map[ListingField]entity.Roles

// NewListingFieldGuard returns the platform's permission table.
//
// A plain user may only submit review content, never editorial fields; a
// merchant owns editorial content but must not tamper with the aggregate
// rating bookkeeping.
func NewListingFieldGuard() ListingFieldGuard {
	editorial := entity.Roles{entity.RoleUser}
	bookkeeping := entity.Roles{entity.RoleMerchant}

	return ListingFieldGuard{
		FieldCity:          editorial,
		FieldActivityType:  editorial,
		FieldTitle:         editorial,
		FieldSummary:       editorial,
		FieldBodyTexts:     editorial,
		FieldImages:        editorial,
		FieldBusinessRef:   editorial,
		FieldRatingAverage: bookkeeping,
		FieldRatingCount:   bookkeeping,
		FieldRatingReviews: bookkeeping,
	}
}

// Forbidden reports whether the given role may not modify the given field.
func (g ListingFieldGuard) Forbidden(role entity.Role, field ListingField) bool {
	if role == entity.RoleAdmin {
		return false
	}

	return g[field].Contains(role)
}

// FirstViolation scans the fields present in a patch, in a stable order, and
// returns the first one the role may not touch.
func (g ListingFieldGuard) FirstViolation(role entity.Role, present []ListingField) (ListingField, bool) {
	for _, field := range present {
		if g.Forbidden(role, field) {
			return field, true
		}
	}

	return "", false
}
