// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// DeviceKeyOutput returns a device together with its freshly minted raw key.
// The raw key exists only in this response; only a hash of it is persisted.
type DeviceKeyOutput struct {
	Device *entity.Device
	RawKey string
}

// DeviceUsecase defines the interface for device and API-key operations.
type DeviceUsecase interface {
	// ListDevices returns every device of the user, including revoked ones.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// CreateDevice registers a named device and mints its key.
	CreateDevice(ctx context.Context, userID uuid.UUID, name string) (*DeviceKeyOutput, error)

	// RollDeviceKey replaces a device's key with a fresh one, invalidating the old key.
	// The reserved Web device cannot be rolled.
	RollDeviceKey(ctx context.Context, userID, deviceID uuid.UUID) (*DeviceKeyOutput, error)

	// RevokeDevice tombstones a device so its key stops authenticating.
	// The reserved Web device cannot be revoked.
	RevokeDevice(ctx context.Context, userID, deviceID uuid.UUID) error

	// EnrollmentQR renders a raw device key as a PNG QR code for e-reader pairing.
	EnrollmentQR(ctx context.Context, rawKey string) ([]byte, error)

	// ResolveByKey authenticates a raw device key against all active devices
	// and stamps the matching device's last_used_at.
	ResolveByKey(ctx context.Context, rawKey string) (*entity.Device, error)
}
