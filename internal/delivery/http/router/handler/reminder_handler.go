package handler

import (
	"log/slog"
	"net/http"
	"time"

	"excerpta/internal/delivery/http/middleware"
	"excerpta/internal/delivery/http/response"
	"excerpta/internal/domain/entity"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler holds dependencies for reminder-related handlers.
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler.
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// CreateReminderRequest schedules a reminder. Give either a preset
// (tomorrow, next_week, next_month, next_year) or an RFC3339 remind_at.
type CreateReminderRequest struct {
	HighlightID uuid.UUID `json:"highlight_id" validate:"required"`
	Preset      string    `json:"preset"`
	RemindAt    string    `json:"remind_at"`
}

// Create schedules a reminder for a highlight.
func (h *ReminderHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.CreateReminderInput{
		HighlightID: req.HighlightID,
		Preset:      entity.ReminderPreset(req.Preset),
	}
	if req.RemindAt != "" {
		remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "remind_at must be RFC3339")
		}
		input.RemindAt = &remindAt
	}

	reminder, err := h.reminderUC.CreateReminder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReminderDTO(reminder))
}

// ListDue returns reminders whose time has come.
func (h *ReminderHandler) ListDue(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	reminders, err := h.reminderUC.ListDueReminders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReminderDTOs(reminders))
}

// ListUpcoming returns reminders still in the future.
func (h *ReminderHandler) ListUpcoming(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	reminders, err := h.reminderUC.ListUpcomingReminders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReminderDTOs(reminders))
}

// Dismiss deletes a reminder. Dismissing one that is already gone succeeds.
func (h *ReminderHandler) Dismiss(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reminder ID")
	}

	if err := h.reminderUC.DismissReminder(c.Request().Context(), userID, reminderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Reminder dismissed"})
}
