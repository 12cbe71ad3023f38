package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateStoreShareQR renders a PNG pointing at the store's web map location
	GenerateStoreShareQR(webURL string) ([]byte, error)
}
