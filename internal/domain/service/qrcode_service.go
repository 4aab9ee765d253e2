package service

// QRCodeService defines the interface for QR code generation.
// Used to hand a freshly minted device key to an e-reader app by scanning.
type QRCodeService interface {
	// GenerateEnrollmentQR encodes a raw device key as a PNG QR code.
	GenerateEnrollmentQR(rawKey string) ([]byte, error)
}
