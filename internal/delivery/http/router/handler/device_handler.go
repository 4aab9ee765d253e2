package handler

import (
	"log/slog"
	"net/http"

	"excerpta/internal/delivery/http/middleware"
	"excerpta/internal/delivery/http/response"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// CreateDeviceRequest is the request body for registering a device.
type CreateDeviceRequest struct {
	Name string `json:"name" validate:"required"`
}

// EnrollmentQRRequest is the request body for rendering an enrollment QR code.
// The raw key comes from the creation or roll response it followed.
type EnrollmentQRRequest struct {
	RawKey string `json:"raw_key" validate:"required"`
}

// ListDevices returns every device of the caller, revoked ones included.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDeviceDTOs(devices))
}

// CreateDevice registers a named device. The response carries the raw key once.
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req CreateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.deviceUC.CreateDevice(c.Request().Context(), userID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDeviceKeyDTO(output))
}

// RollKey replaces a device's key. The response carries the new raw key once.
func (h *DeviceHandler) RollKey(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	output, err := h.deviceUC.RollDeviceKey(c.Request().Context(), userID, deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDeviceKeyDTO(output))
}

// Revoke tombstones a device so its key stops authenticating.
func (h *DeviceHandler) Revoke(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.deviceUC.RevokeDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device revoked"})
}

// EnrollmentQR renders a freshly minted raw key as a PNG QR code, so an
// e-reader app can be paired by scanning right after creation or roll.
func (h *DeviceHandler) EnrollmentQR(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req EnrollmentQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.deviceUC.EnrollmentQR(c.Request().Context(), req.RawKey)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
