// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReminderInput schedules a reminder for a highlight. Exactly one of
// Preset or RemindAt must be set; presets are resolved against the injected
// clock with month and year arithmetic clamping the day.
type CreateReminderInput struct {
	HighlightID uuid.UUID
	Preset      entity.ReminderPreset
	RemindAt    *time.Time
}

// ReminderUsecase defines the interface for revisit scheduling.
type ReminderUsecase interface {
	// CreateReminder schedules a reminder from a preset or an explicit time.
	CreateReminder(ctx context.Context, userID uuid.UUID, input CreateReminderInput) (*entity.Reminder, error)

	// ListDueReminders returns reminders that have come due, oldest first.
	ListDueReminders(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error)

	// ListUpcomingReminders returns reminders still in the future, soonest first.
	ListUpcomingReminders(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error)

	// DismissReminder deletes a reminder. Dismissing one that is already gone
	// is a no-op.
	DismissReminder(ctx context.Context, userID, id uuid.UUID) error
}
