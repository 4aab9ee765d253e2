package model

import (
	"time"

	"github.com/google/uuid"
)

// SourceModel mirrors the 'sources' table. The row is flat with nullable
// shape-specific columns; the domain entity exposes it as a tagged variant
// keyed on Type. Domain is set only for web sources, Title/Author only for books.
type SourceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;index:idx_sources_user_domain,priority:1"`
	Type         string    `gorm:"type:varchar(10);not null"`
	OriginalName string    `gorm:"type:varchar(500);not null"`
	DisplayName  string    `gorm:"type:varchar(500);not null"`
	Domain       *string   `gorm:"type:varchar(255);index:idx_sources_user_domain,priority:2"`
	Title        *string   `gorm:"type:varchar(500)"`
	Author       *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SourceModel) TableName() string {
	return "sources"
}
