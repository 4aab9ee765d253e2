package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	mockRepo "excerpta/internal/mocks/repository"
	mockService "excerpta/internal/mocks/service"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reminderServiceFixtures holds all test dependencies for reminder service tests.
type reminderServiceFixtures struct {
	service       usecase.ReminderUsecase
	reminderRepo  *mockRepo.MockReminderRepository
	highlightRepo *mockRepo.MockHighlightRepository
	clock         *mockService.MockClock
}

func createTestReminderService(t *testing.T) reminderServiceFixtures {
	reminderRepo := mockRepo.NewMockReminderRepository(t)
	highlightRepo := mockRepo.NewMockHighlightRepository(t)
	clock := mockService.NewMockClock(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewReminderService(ReminderServiceParams{
		ReminderRepo:  reminderRepo,
		HighlightRepo: highlightRepo,
		Clock:         clock,
		Logger:        logger,
	})

	return reminderServiceFixtures{
		service:       svc,
		reminderRepo:  reminderRepo,
		highlightRepo: highlightRepo,
		clock:         clock,
	}
}

func activeHighlightFor(userID uuid.UUID) *entity.Highlight {
	return &entity.Highlight{
		ID:     uuid.New(),
		UserID: userID,
		Text:   "remember this",
		Status: entity.HighlightStatusActive,
	}
}

func TestReminderService_CreateReminder_Presets(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		preset entity.ReminderPreset
		want   time.Time
	}{
		{name: "tomorrow", preset: entity.ReminderPresetTomorrow, want: now.AddDate(0, 0, 1)},
		{name: "next week", preset: entity.ReminderPresetNextWeek, want: now.AddDate(0, 0, 7)},
		{name: "next month", preset: entity.ReminderPresetNextMonth, want: time.Date(2025, time.April, 10, 9, 30, 0, 0, time.UTC)},
		{name: "next year", preset: entity.ReminderPresetNextYear, want: time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReminderService(t)

			ctx := context.Background()
			userID := uuid.New()
			highlight := activeHighlightFor(userID)

			fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)
			fx.clock.EXPECT().Now().Return(now)
			fx.reminderRepo.EXPECT().
				CreateReminder(ctx, mock.AnythingOfType("*entity.Reminder")).
				Run(func(ctx context.Context, reminder *entity.Reminder) {
					reminder.ID = uuid.New()
				}).
				Return(nil)

			reminder, err := fx.service.CreateReminder(ctx, userID, usecase.CreateReminderInput{
				HighlightID: highlight.ID,
				Preset:      tt.preset,
			})

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(reminder.RemindAt), "want %s, got %s", tt.want, reminder.RemindAt)
		})
	}
}

func TestReminderService_CreateReminder_NextMonthClampsDayOfMonth(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlight := activeHighlightFor(userID)
	now := time.Date(2025, time.January, 31, 8, 0, 0, 0, time.UTC)

	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.reminderRepo.EXPECT().
		CreateReminder(ctx, mock.AnythingOfType("*entity.Reminder")).
		Return(nil)

	reminder, err := fx.service.CreateReminder(ctx, userID, usecase.CreateReminderInput{
		HighlightID: highlight.ID,
		Preset:      entity.ReminderPresetNextMonth,
	})

	require.NoError(t, err)
	want := time.Date(2025, time.February, 28, 8, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(reminder.RemindAt), "want %s, got %s", want, reminder.RemindAt)
}

func TestReminderService_CreateReminder_ExplicitTime(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlight := activeHighlightFor(userID)
	remindAt := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)
	fx.reminderRepo.EXPECT().
		CreateReminder(ctx, mock.AnythingOfType("*entity.Reminder")).
		Return(nil)

	reminder, err := fx.service.CreateReminder(ctx, userID, usecase.CreateReminderInput{
		HighlightID: highlight.ID,
		RemindAt:    &remindAt,
	})

	require.NoError(t, err)
	assert.True(t, remindAt.Equal(reminder.RemindAt))
}

func TestReminderService_CreateReminder_PresetAndTimeRejected(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlight := activeHighlightFor(userID)
	remindAt := time.Now().Add(time.Hour)

	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)

	_, err := fx.service.CreateReminder(ctx, userID, usecase.CreateReminderInput{
		HighlightID: highlight.ID,
		Preset:      entity.ReminderPresetTomorrow,
		RemindAt:    &remindAt,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReminderService_CreateReminder_UnknownPreset(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlight := activeHighlightFor(userID)

	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)
	fx.clock.EXPECT().Now().Return(time.Now())

	_, err := fx.service.CreateReminder(ctx, userID, usecase.CreateReminderInput{
		HighlightID: highlight.ID,
		Preset:      entity.ReminderPreset("eventually"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReminderPreset))
}

func TestReminderService_CreateReminder_ArchivedHighlightRejected(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlight := activeHighlightFor(userID)
	highlight.Status = entity.HighlightStatusArchived

	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)

	_, err := fx.service.CreateReminder(ctx, userID, usecase.CreateReminderInput{
		HighlightID: highlight.ID,
		Preset:      entity.ReminderPresetTomorrow,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReminderService_CreateReminder_UnknownHighlight(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()

	fx.highlightRepo.EXPECT().
		FindHighlightByID(ctx, userID, highlightID).
		Return(nil, repository.ErrHighlightNotFound)

	_, err := fx.service.CreateReminder(ctx, userID, usecase.CreateReminderInput{
		HighlightID: highlightID,
		Preset:      entity.ReminderPresetTomorrow,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHighlightNotFound))
}

func TestReminderService_ListDueReminders(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	due := []*entity.Reminder{{ID: uuid.New(), UserID: userID}}

	fx.clock.EXPECT().Now().Return(now)
	fx.reminderRepo.EXPECT().ListDueReminders(ctx, userID, now).Return(due, nil)

	reminders, err := fx.service.ListDueReminders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, due, reminders)
}

func TestReminderService_DismissReminder_Success(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	reminderID := uuid.New()

	fx.reminderRepo.EXPECT().DeleteReminder(ctx, userID, reminderID).Return(nil)

	require.NoError(t, fx.service.DismissReminder(ctx, userID, reminderID))
}

func TestReminderService_DismissReminder_AlreadyGoneIsNoOp(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	userID := uuid.New()
	reminderID := uuid.New()

	fx.reminderRepo.EXPECT().
		DeleteReminder(ctx, userID, reminderID).
		Return(repository.ErrReminderNotFound)

	require.NoError(t, fx.service.DismissReminder(ctx, userID, reminderID))
}

func TestAddMonthsClamped_LeapYear(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)

	got := addMonthsClamped(jan31, 1)

	assert.Equal(t, time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC), got)
}
