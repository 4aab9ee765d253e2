package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionModel mirrors the 'collections' table.
type CollectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}

// CollectionItemModel mirrors the 'collection_items' join table.
// AddedAt orders a collection's member listing.
type CollectionItemModel struct {
	CollectionID uuid.UUID `gorm:"type:uuid;primary_key"`
	HighlightID  uuid.UUID `gorm:"type:uuid;primary_key"`
	AddedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionItemModel) TableName() string {
	return "collection_items"
}
