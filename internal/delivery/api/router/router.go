// Package router contains routing and server setup for the device API delivery.
package router

import (
	"excerpta/internal/delivery/api/middleware"
	"excerpta/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IngestHandler        *handler.IngestHandler
	DeviceAuthMiddleware *middleware.DeviceAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	ingestHandler        *handler.IngestHandler
	deviceAuthMiddleware *middleware.DeviceAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ingestHandler:        params.IngestHandler,
		deviceAuthMiddleware: params.DeviceAuthMiddleware,
	}
}

// RegisterRoutes sets up all the device-facing ingestion routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		// Device-key ingestion path, always deduping.
		apiGroup.POST("/highlights", r.ingestHandler.Ingest,
			r.deviceAuthMiddleware.Authenticate)

		// Reader apps send either an access token or a device key.
		apiGroup.POST("/highlights/moon-reader", r.ingestHandler.ReaderIngest,
			r.deviceAuthMiddleware.AuthenticateTokenOrKey)
	}
}
