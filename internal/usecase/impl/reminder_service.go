package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "excerpta/internal/delivery/context"
	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	"excerpta/internal/domain/service"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	reminderRepo  repository.ReminderRepository
	highlightRepo repository.HighlightRepository
	clock         service.Clock
	logger        *slog.Logger
}

// ReminderServiceParams holds dependencies for reminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo  repository.ReminderRepository
	HighlightRepo repository.HighlightRepository
	Clock         service.Clock
	Logger        *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo:  params.ReminderRepo,
		highlightRepo: params.HighlightRepo,
		clock:         params.Clock,
		logger:        params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReminder schedules a reminder from a preset or an explicit time.
// Reminders only attach to active highlights the caller owns.
func (srv *reminderService) CreateReminder(ctx context.Context, userID uuid.UUID, input usecase.CreateReminderInput) (*entity.Reminder, error) {
	highlight, err := srv.highlightRepo.FindHighlightByID(ctx, userID, input.HighlightID)
	if err != nil {
		if errors.Is(err, repository.ErrHighlightNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHighlightNotFound, "highlight not found")
		}

		return nil, errors.Wrap(err, "failed to find highlight by id")
	}
	if !highlight.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot schedule a reminder on an archived highlight")
	}

	remindAt, err := srv.resolveRemindAt(input)
	if err != nil {
		return nil, err
	}

	reminder := &entity.Reminder{
		UserID:      userID,
		HighlightID: highlight.ID,
		RemindAt:    remindAt,
	}
	if err := srv.reminderRepo.CreateReminder(ctx, reminder); err != nil {
		return nil, errors.Wrap(err, "failed to create reminder")
	}

	srv.log(ctx).Debug("Reminder created", slog.Any("reminderID", reminder.ID), slog.Time("remindAt", remindAt))

	return reminder, nil
}

// ListDueReminders returns reminders whose time has come, oldest first.
func (srv *reminderService) ListDueReminders(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := srv.reminderRepo.ListDueReminders(ctx, userID, srv.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list due reminders")
	}

	return reminders, nil
}

// ListUpcomingReminders returns reminders still in the future, soonest first.
func (srv *reminderService) ListUpcomingReminders(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := srv.reminderRepo.ListUpcomingReminders(ctx, userID, srv.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming reminders")
	}

	return reminders, nil
}

// DismissReminder deletes a reminder. Dismissing one that is already gone is a no-op.
func (srv *reminderService) DismissReminder(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.reminderRepo.DeleteReminder(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete reminder")
	}

	return nil
}

func (srv *reminderService) resolveRemindAt(input usecase.CreateReminderInput) (time.Time, error) {
	if input.RemindAt != nil {
		if input.Preset != "" {
			return time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed, "give either a preset or an explicit time, not both")
		}

		return *input.RemindAt, nil
	}

	now := srv.clock.Now()

	switch input.Preset {
	case entity.ReminderPresetTomorrow:
		return now.AddDate(0, 0, 1), nil
	case entity.ReminderPresetNextWeek:
		return now.AddDate(0, 0, 7), nil
	case entity.ReminderPresetNextMonth:
		return addMonthsClamped(now, 1), nil
	case entity.ReminderPresetNextYear:
		return addMonthsClamped(now, 12), nil
	default:
		return time.Time{}, errors.Wrapf(domainerrors.ErrInvalidReminderPreset, "unknown preset %q", input.Preset)
	}
}

// addMonthsClamped steps forward whole months, clamping the day of month to the
// target month's length. Jan 31 + 1 month lands on Feb 28 (or 29), not Mar 3.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	target := time.Date(year, month+time.Month(months), 1, hour, minute, sec, t.Nanosecond(), t.Location())
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
