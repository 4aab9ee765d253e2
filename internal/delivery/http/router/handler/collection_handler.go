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

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler holds dependencies for collection-related handlers.
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler.
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// CollectionRequest is the request body for creating or updating a collection.
type CollectionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// MembershipResponse reports the outcome of a membership change.
type MembershipResponse struct {
	Status string `json:"status"`
}

// Create creates a new collection.
func (h *CollectionHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req CollectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid collection input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	collection, err := h.collectionUC.CreateCollection(c.Request().Context(), userID, usecase.CollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCollectionDTO(collection))
}

// List returns all of the caller's collections.
func (h *CollectionHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	collections, err := h.collectionUC.ListCollections(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCollectionDTOs(collections))
}

// Get retrieves one collection.
func (h *CollectionHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection ID")
	}

	collection, err := h.collectionUC.GetCollection(c.Request().Context(), userID, collectionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCollectionDTO(collection))
}

// Update renames a collection or changes its description.
func (h *CollectionHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection ID")
	}

	var req CollectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid collection input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	collection, err := h.collectionUC.UpdateCollection(c.Request().Context(), userID, collectionID, usecase.CollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCollectionDTO(collection))
}

// Delete removes a collection. Its member highlights are untouched.
func (h *CollectionHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection ID")
	}

	if err := h.collectionUC.DeleteCollection(c.Request().Context(), userID, collectionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Collection deleted"})
}

// AddHighlight puts a highlight into a collection.
func (h *CollectionHandler) AddHighlight(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection ID")
	}
	highlightID, err := uuid.Parse(c.Param("highlightId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	status, err := h.collectionUC.AddHighlight(c.Request().Context(), userID, collectionID, highlightID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MembershipResponse{Status: string(status)})
}

// RemoveHighlight takes a highlight out of a collection.
func (h *CollectionHandler) RemoveHighlight(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection ID")
	}
	highlightID, err := uuid.Parse(c.Param("highlightId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	status, err := h.collectionUC.RemoveHighlight(c.Request().Context(), userID, collectionID, highlightID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MembershipResponse{Status: string(status)})
}

// ListHighlights returns a collection's members ordered by when they were added.
func (h *CollectionHandler) ListHighlights(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid collection ID")
	}

	highlights, err := h.collectionUC.ListHighlights(c.Request().Context(), userID, collectionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHighlightDTOs(highlights))
}
