package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code encoding the storefront URL of a store.
	GenerateStoreQR(storeID string) ([]byte, error)
}
