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

// SourceHandlerParams holds dependencies for SourceHandler, injected by Fx.
type SourceHandlerParams struct {
	fx.In

	SourceUC usecase.SourceUsecase
	Logger   *slog.Logger
}

// SourceHandler holds dependencies for source-related handlers.
type SourceHandler struct {
	sourceUC usecase.SourceUsecase
	logger   *slog.Logger
}

// NewSourceHandler is the constructor for SourceHandler.
func NewSourceHandler(params SourceHandlerParams) *SourceHandler {
	return &SourceHandler{
		sourceUC: params.SourceUC,
		logger:   params.Logger,
	}
}

// UpdateSourceRequest is the request body for editing a source.
// Omitted fields keep their values.
type UpdateSourceRequest struct {
	DisplayName *string `json:"display_name"`
	Author      *string `json:"author"`
}

// SourceDetailResponse bundles a source with its active highlights.
type SourceDetailResponse struct {
	Source     SourceDTO      `json:"source"`
	Highlights []HighlightDTO `json:"highlights"`
}

// List returns all of the caller's sources with active-highlight counts.
func (h *SourceHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	sources, err := h.sourceUC.ListSources(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSourceListDTOs(sources))
}

// Get retrieves one source together with its active highlights.
func (h *SourceHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid source ID")
	}

	detail, err := h.sourceUC.GetSource(c.Request().Context(), userID, sourceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SourceDetailResponse{
		Source:     toSourceDTO(detail.Source),
		Highlights: toHighlightDTOs(detail.Highlights),
	})
}

// Update edits a source's presentation fields.
func (h *SourceHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid source ID")
	}

	var req UpdateSourceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid source input")
	}

	source, err := h.sourceUC.UpdateSource(c.Request().Context(), userID, sourceID, usecase.UpdateSourceInput{
		DisplayName: req.DisplayName,
		Author:      req.Author,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSourceDTO(source))
}
