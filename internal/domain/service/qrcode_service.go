package service

import "github.com/google/uuid"

// QRCodeService generates QR code images.
type QRCodeService interface {
	// GenerateOrderQR generates the pickup QR code for a committed order.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
