package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"excerpta/internal/delivery/http/middleware"
	"excerpta/internal/delivery/http/response"
	"excerpta/internal/domain/entity"
	"excerpta/internal/domain/repository"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HighlightHandlerParams holds dependencies for HighlightHandler, injected by Fx.
type HighlightHandlerParams struct {
	fx.In

	HighlightUC usecase.HighlightUsecase
	Logger      *slog.Logger
}

// HighlightHandler holds dependencies for highlight-related handlers.
type HighlightHandler struct {
	highlightUC usecase.HighlightUsecase
	logger      *slog.Logger
}

// NewHighlightHandler is the constructor for HighlightHandler.
func NewHighlightHandler(params HighlightHandlerParams) *HighlightHandler {
	return &HighlightHandler{
		highlightUC: params.HighlightUC,
		logger:      params.Logger,
	}
}

// CreateHighlightRequest is the request body for capturing a highlight from
// the web client. Re-adding previously captured text is deliberate here, so
// no dedup check is applied.
type CreateHighlightRequest struct {
	Text     string       `json:"text" validate:"required"`
	Note     string       `json:"note"`
	Tags     string       `json:"tags"`
	URL      string       `json:"url"`
	Title    string       `json:"title"`
	Author   string       `json:"author"`
	Location *LocationDTO `json:"location"`
}

// UpdateHighlightRequest is the request body for editing a highlight.
// Omitted fields keep their values.
type UpdateHighlightRequest struct {
	Text     *string      `json:"text"`
	Note     *string      `json:"note"`
	URL      *string      `json:"url"`
	Title    *string      `json:"title"`
	Author   *string      `json:"author"`
	Location *LocationDTO `json:"location"`
	Tags     []string     `json:"tags"`
}

// TagRequest is the request body for attaching or detaching a tag.
type TagRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create captures a highlight submitted through the web form.
func (h *HighlightHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req CreateHighlightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid highlight input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	highlight, _, err := h.highlightUC.Ingest(c.Request().Context(), usecase.IngestInput{
		UserID:   userID,
		Text:     req.Text,
		Note:     req.Note,
		TagsCSV:  req.Tags,
		URL:      req.URL,
		Title:    req.Title,
		Author:   req.Author,
		Location: toLocationEntity(req.Location),
		Dedupe:   false,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toHighlightDTO(highlight))
}

// Get retrieves one highlight.
func (h *HighlightHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	highlight, err := h.highlightUC.GetHighlight(c.Request().Context(), userID, highlightID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHighlightDTO(highlight))
}

// Search lists highlights matching the query parameters: q, source_id, tag,
// favorite, status, sort, limit.
func (h *HighlightHandler) Search(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	input := usecase.SearchHighlightsInput{
		Query:        c.QueryParam("q"),
		TagName:      c.QueryParam("tag"),
		FavoriteOnly: c.QueryParam("favorite") == "true",
		Status:       entity.HighlightStatus(c.QueryParam("status")),
		Sort:         repository.HighlightSort(c.QueryParam("sort")),
	}

	if raw := c.QueryParam("source_id"); raw != "" {
		sourceID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid source ID")
		}
		input.SourceID = &sourceID
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
		input.Limit = limit
	}

	highlights, err := h.highlightUC.SearchHighlights(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHighlightDTOs(highlights))
}

// Update edits a highlight.
func (h *HighlightHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	var req UpdateHighlightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid highlight input")
	}

	highlight, err := h.highlightUC.UpdateHighlight(c.Request().Context(), userID, highlightID, usecase.UpdateHighlightInput{
		Text:     req.Text,
		Note:     req.Note,
		URL:      req.URL,
		Title:    req.Title,
		Author:   req.Author,
		Location: toLocationEntity(req.Location),
		Tags:     req.Tags,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHighlightDTO(highlight))
}

// ToggleFavorite flips the favorite flag.
func (h *HighlightHandler) ToggleFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	isFavorite, err := h.highlightUC.ToggleFavorite(c.Request().Context(), userID, highlightID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_favorite": isFavorite})
}

// ToggleArchive flips the highlight between active and archived.
func (h *HighlightHandler) ToggleArchive(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	status, err := h.highlightUC.ToggleArchive(c.Request().Context(), userID, highlightID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": status.String()})
}

// AddTag attaches a named tag to a highlight.
func (h *HighlightHandler) AddTag(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	highlight, err := h.highlightUC.AddTag(c.Request().Context(), userID, highlightID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHighlightDTO(highlight))
}

// RemoveTag detaches a named tag from a highlight.
func (h *HighlightHandler) RemoveTag(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	highlightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid highlight ID")
	}

	highlight, err := h.highlightUC.RemoveTag(c.Request().Context(), userID, highlightID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHighlightDTO(highlight))
}

// ListTags returns all of the caller's tags.
func (h *HighlightHandler) ListTags(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	tags, err := h.highlightUC.ListTags(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTagDTOs(tags))
}

func toLocationEntity(dto *LocationDTO) *entity.HighlightLocation {
	if dto == nil {
		return nil
	}

	return &entity.HighlightLocation{Chapter: dto.Chapter}
}
