package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel mirrors the 'devices' table. The key hash is unique system-wide:
// key authentication resolves a device by verifying the presented key against
// stored hashes, never by owner. Revocation is a timestamp so the row survives
// for highlight attribution.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	KeyPrefix  string    `gorm:"type:varchar(10);not null"`
	KeyHash    string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt  time.Time
	LastUsedAt *time.Time
	RevokedAt  *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
