// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderPreset names a relative schedule for a new reminder.
type ReminderPreset string

const (
	// ReminderPresetTomorrow schedules one day ahead.
	ReminderPresetTomorrow ReminderPreset = "tomorrow"
	// ReminderPresetNextWeek schedules seven days ahead.
	ReminderPresetNextWeek ReminderPreset = "next_week"
	// ReminderPresetNextMonth schedules one calendar month ahead, clamping the day.
	ReminderPresetNextMonth ReminderPreset = "next_month"
	// ReminderPresetNextYear schedules one calendar year ahead, clamping the day.
	ReminderPresetNextYear ReminderPreset = "next_year"
)

// String returns the string representation of the ReminderPreset.
func (p ReminderPreset) String() string {
	return string(p)
}

// IsValid checks if the ReminderPreset is a valid value.
func (p ReminderPreset) IsValid() bool {
	switch p {
	case ReminderPresetTomorrow, ReminderPresetNextWeek, ReminderPresetNextMonth, ReminderPresetNextYear:
		return true
	default:
		return false
	}
}

// Reminder is a scheduled nudge to revisit a highlight.
// It is deleted when dismissed or when its highlight is archived.
type Reminder struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the reminder.
	UserID      uuid.UUID // The ID of the user who owns this reminder.
	HighlightID uuid.UUID // The highlight this reminder points back to.
	RemindAt    time.Time // The moment the reminder becomes due.
	CreatedAt   time.Time // Timestamp of when this reminder was created.
}

// IsDue reports whether the reminder is due at the given moment.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.RemindAt.After(now)
}
