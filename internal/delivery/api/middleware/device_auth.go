package middleware

import (
	"strings"

	"excerpta/internal/delivery/api/response"
	"excerpta/internal/domain/entity"
	"excerpta/internal/domain/service"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	userIDKey = "userID"
	deviceKey = "device"
)

// DeviceAuthMiddleware authenticates requests with a raw device key.
// Keys are accepted under both "Bearer" and "Token" schemes because
// e-reader integrations differ on which one they send.
type DeviceAuthMiddleware struct {
	deviceUC usecase.DeviceUsecase
	tokenSvc service.TokenService
}

// NewDeviceAuthMiddleware is the constructor for DeviceAuthMiddleware.
func NewDeviceAuthMiddleware(deviceUC usecase.DeviceUsecase, tokenSvc service.TokenService) *DeviceAuthMiddleware {
	return &DeviceAuthMiddleware{
		deviceUC: deviceUC,
		tokenSvc: tokenSvc,
	}
}

// Authenticate resolves the device key from the Authorization header and
// stores the device and its owner on the request context.
func (m *DeviceAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawKey, ok := credentialFromHeader(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing or malformed Authorization header")
		}

		device, err := m.deviceUC.ResolveByKey(c.Request().Context(), rawKey)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid device key")
		}

		c.Set(userIDKey, device.UserID)
		c.Set(deviceKey, device)

		return next(c)
	}
}

// AuthenticateTokenOrKey accepts either a JWT access token or a raw device
// key. The token is tried first; a device key match acts as the device's
// owner with the device attributed to the request.
func (m *DeviceAuthMiddleware) AuthenticateTokenOrKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential, ok := credentialFromHeader(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing or malformed Authorization header")
		}

		if claims, err := m.tokenSvc.ValidateToken(credential); err == nil {
			c.Set(userIDKey, claims.UserID)
			return next(c)
		}

		device, err := m.deviceUC.ResolveByKey(c.Request().Context(), credential)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid access token or device key")
		}

		c.Set(userIDKey, device.UserID)
		c.Set(deviceKey, device)

		return next(c)
	}
}

func credentialFromHeader(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}

	scheme := strings.ToLower(parts[0])
	if scheme != "bearer" && scheme != "token" {
		return "", false
	}

	credential := strings.TrimSpace(parts[1])
	if credential == "" {
		return "", false
	}

	return credential, true
}

// GetUserID retrieves the authenticated user's ID from the context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)
	return userID, ok
}

// GetDevice retrieves the authenticated device from the context.
// Absent when the request authenticated with an access token instead.
func GetDevice(c echo.Context) (*entity.Device, bool) {
	device, ok := c.Get(deviceKey).(*entity.Device)
	return device, ok
}
