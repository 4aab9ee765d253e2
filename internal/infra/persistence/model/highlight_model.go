package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HighlightModel mirrors the 'highlights' table. OriginalText/OriginalNote are
// creation-time snapshots that edits never touch; ImportFingerprint is the dedup
// key. The partial unique index on (user_id, source_id, import_fingerprint)
// turns a racing duplicate import into a constraint violation instead of a
// second row.
type HighlightModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_highlights_user_status,priority:1;uniqueIndex:uniq_highlights_import,priority:1"`
	SourceID          *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uniq_highlights_import,priority:2"`
	DeviceID          *uuid.UUID `gorm:"type:uuid;index"`
	URL               string     `gorm:"type:text"`
	PageTitle         string     `gorm:"type:text"`
	PageAuthor        string     `gorm:"type:text"`
	Text              string     `gorm:"type:text;not null"`
	Note              string     `gorm:"type:text"`
	Location          datatypes.JSON
	Status            string `gorm:"type:varchar(10);not null;default:'active';index:idx_highlights_user_status,priority:2"`
	IsFavorite        bool   `gorm:"not null;default:false"`
	OriginalText      string `gorm:"type:text;not null"`
	OriginalNote      string `gorm:"type:text"`
	ImportFingerprint string `gorm:"type:text;not null;default:'';uniqueIndex:uniq_highlights_import,priority:3,where:import_fingerprint <> ''"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Tags []TagModel `gorm:"many2many:highlight_tags;joinForeignKey:HighlightID;joinReferences:TagID"`
}

// TableName explicitly sets the table name for GORM.
func (HighlightModel) TableName() string {
	return "highlights"
}
