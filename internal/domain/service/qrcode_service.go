package service

import "github.com/google/uuid"

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code pointing at the public page
	// of the given listing.
	GenerateListingQR(listingID uuid.UUID) ([]byte, error)
}
