package qrcode

import (
	"strings"

	"vitrina/config"
	"vitrina/internal/domain/service"
	"vitrina/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	levelName := ""
	baseURL := defaultBaseURL
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
		if cfg.QRCode.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(levelName),
		baseURL:              baseURL,
	}
}

// GenerateListingQR generates a PNG QR code pointing at a listing's public page.
func (s *qrcodeService) GenerateListingQR(listingID uuid.UUID) ([]byte, error) {
	content := s.baseURL + "/listings/" + listingID.String()

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "generate PNG")
	}

	return pngBytes, nil
}

func parseRecoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L", "LOW":
		return qrcode.Low
	case "M", "MEDIUM":
		return qrcode.Medium
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
