// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"excerpta/internal/delivery/http/middleware"
	"excerpta/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	HighlightHandler  *handler.HighlightHandler
	SourceHandler     *handler.SourceHandler
	CollectionHandler *handler.CollectionHandler
	ReminderHandler   *handler.ReminderHandler
	DeviceHandler     *handler.DeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	highlightHandler  *handler.HighlightHandler
	sourceHandler     *handler.SourceHandler
	collectionHandler *handler.CollectionHandler
	reminderHandler   *handler.ReminderHandler
	deviceHandler     *handler.DeviceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		highlightHandler:  params.HighlightHandler,
		sourceHandler:     params.SourceHandler,
		collectionHandler: params.CollectionHandler,
		reminderHandler:   params.ReminderHandler,
		deviceHandler:     params.DeviceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the web routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Everything below requires a valid access token.
	v1 := e.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate)

	highlightGroup := v1.Group("/highlights")
	{
		highlightGroup.POST("", r.highlightHandler.Create)
		highlightGroup.GET("", r.highlightHandler.Search)
		highlightGroup.GET("/:id", r.highlightHandler.Get)
		highlightGroup.PUT("/:id", r.highlightHandler.Update)
		highlightGroup.POST("/:id/favorite", r.highlightHandler.ToggleFavorite)
		highlightGroup.POST("/:id/archive", r.highlightHandler.ToggleArchive)
		highlightGroup.POST("/:id/tags", r.highlightHandler.AddTag)
		highlightGroup.DELETE("/:id/tags/:name", r.highlightHandler.RemoveTag)
	}

	v1.GET("/tags", r.highlightHandler.ListTags)

	sourceGroup := v1.Group("/sources")
	{
		sourceGroup.GET("", r.sourceHandler.List)
		sourceGroup.GET("/:id", r.sourceHandler.Get)
		sourceGroup.PUT("/:id", r.sourceHandler.Update)
	}

	collectionGroup := v1.Group("/collections")
	{
		collectionGroup.POST("", r.collectionHandler.Create)
		collectionGroup.GET("", r.collectionHandler.List)
		collectionGroup.GET("/:id", r.collectionHandler.Get)
		collectionGroup.PUT("/:id", r.collectionHandler.Update)
		collectionGroup.DELETE("/:id", r.collectionHandler.Delete)
		collectionGroup.GET("/:id/highlights", r.collectionHandler.ListHighlights)
		collectionGroup.POST("/:id/highlights/:highlightId", r.collectionHandler.AddHighlight)
		collectionGroup.DELETE("/:id/highlights/:highlightId", r.collectionHandler.RemoveHighlight)
	}

	reminderGroup := v1.Group("/reminders")
	{
		reminderGroup.POST("", r.reminderHandler.Create)
		reminderGroup.GET("/due", r.reminderHandler.ListDue)
		reminderGroup.GET("/upcoming", r.reminderHandler.ListUpcoming)
		reminderGroup.DELETE("/:id", r.reminderHandler.Dismiss)
	}

	deviceGroup := v1.Group("/devices")
	{
		deviceGroup.GET("", r.deviceHandler.ListDevices)
		deviceGroup.POST("", r.deviceHandler.CreateDevice)
		deviceGroup.POST("/:id/roll", r.deviceHandler.RollKey)
		deviceGroup.DELETE("/:id", r.deviceHandler.Revoke)
		deviceGroup.POST("/qr", r.deviceHandler.EnrollmentQR)
	}
}
