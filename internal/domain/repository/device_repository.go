// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDeviceKey is returned when a key hash collides with an existing device.
	ErrDuplicateDeviceKey = errors.New("device key already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDevicesByUser retrieves all devices for a specific user, including revoked ones.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// FindActiveDevices retrieves all non-revoked devices across every user.
	// Key-based authentication scans these and verifies the presented key against each hash,
	// because only a salted hash is stored and no reverse lookup from raw key exists.
	FindActiveDevices(ctx context.Context) ([]*entity.Device, error)

	// FindWebDeviceByUser retrieves the user's reserved "Web" device, if it exists.
	FindWebDeviceByUser(ctx context.Context, userID uuid.UUID) (*entity.Device, error)

	// UpdateKeyHash replaces the stored key hash, invalidating the previous key.
	UpdateKeyHash(ctx context.Context, id uuid.UUID, keyHash string) error

	// StampLastUsed records a successful key authentication.
	StampLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// RevokeDevice marks a device as revoked. The row is kept so attribution survives.
	RevokeDevice(ctx context.Context, id uuid.UUID, revokedAt time.Time) error
}
