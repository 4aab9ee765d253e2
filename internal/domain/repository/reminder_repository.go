// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReminderNotFound is returned when a reminder is not found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository defines the interface for reminder-related database operations.
type ReminderRepository interface {
	// CreateReminder persists a new reminder.
	CreateReminder(ctx context.Context, reminder *entity.Reminder) error

	// FindReminderByID retrieves a reminder by its unique ID, scoped to the owning user.
	FindReminderByID(ctx context.Context, userID, id uuid.UUID) (*entity.Reminder, error)

	// ListDueReminders retrieves the user's reminders with remind_at at or before now.
	ListDueReminders(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Reminder, error)

	// ListUpcomingReminders retrieves the user's reminders with remind_at after now, soonest first.
	ListUpcomingReminders(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Reminder, error)

	// DeleteReminder removes a reminder by its ID.
	DeleteReminder(ctx context.Context, userID, id uuid.UUID) error

	// DeleteRemindersByHighlight removes every reminder attached to a highlight.
	// Deleting when none exist is a no-op.
	DeleteRemindersByHighlight(ctx context.Context, userID, highlightID uuid.UUID) error
}
