package service

import "github.com/google/uuid"

// QRCodeService generates share codes for marketplace resources.
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code pointing at the public
	// product page.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
