// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebDeviceName is the reserved name of the browser client device that is
// auto-provisioned for every user. The Web device can never be rolled or revoked.
const WebDeviceName = "Web"

// Device is an authenticated client identity distinct from the human user,
// such as an e-reader app or a CLI importer. The raw API key is shown to the
// user exactly once; only its salted hash is stored. Revocation is a tombstone:
// the row survives so historical highlight attribution does.
type Device struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the device.
	UserID     uuid.UUID  // The ID of the user who owns this device.
	Name       string     // Human-readable device name, e.g. "Kindle" or "Web".
	KeyPrefix  string     // Non-secret key family marker ("web" or "live"), displayed in listings.
	KeyHash    string     // Salted PBKDF2 hash of the API key, unique across all devices system-wide.
	CreatedAt  time.Time  // Timestamp of when this device was registered.
	LastUsedAt *time.Time // Timestamp of the most recent successful key authentication. Nil if never used.
	RevokedAt  *time.Time // Timestamp of revocation. Nil while the device is active.
}

// IsRevoked reports whether the device key has been revoked.
func (d *Device) IsRevoked() bool {
	return d.RevokedAt != nil
}

// IsWeb reports whether this is the user's reserved browser client device.
func (d *Device) IsWeb() bool {
	return d.Name == WebDeviceName
}
