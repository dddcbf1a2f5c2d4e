package qrcode

import (
	"fmt"
	"strings"

	"elyukal/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateStoreQR generates a PNG QR code encoding the storefront URL of a store
func (s *qrcodeService) GenerateStoreQR(storeID string) ([]byte, error) {
	storeURL := fmt.Sprintf("%s/stores/%s", s.baseURL, storeID)

	qrCode, err := qrcode.New(storeURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
