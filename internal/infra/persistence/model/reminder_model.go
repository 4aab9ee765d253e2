package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderModel mirrors the 'reminders' table.
type ReminderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_reminders_user_remind_at,priority:1"`
	HighlightID uuid.UUID `gorm:"type:uuid;not null;index"`
	RemindAt    time.Time `gorm:"not null;index:idx_reminders_user_remind_at,priority:2"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminders"
}
