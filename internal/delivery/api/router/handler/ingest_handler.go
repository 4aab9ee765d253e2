package handler

import (
	"log/slog"
	"net/http"
	"time"

	"excerpta/internal/delivery/api/middleware"
	"excerpta/internal/delivery/api/response"
	"excerpta/internal/domain/entity"
	"excerpta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IngestHandlerParams holds dependencies for IngestHandler, injected by Fx.
type IngestHandlerParams struct {
	fx.In

	HighlightUC usecase.HighlightUsecase
	Logger      *slog.Logger
}

// IngestHandler holds dependencies for ingestion handlers.
type IngestHandler struct {
	highlightUC usecase.HighlightUsecase
	logger      *slog.Logger
}

// NewIngestHandler is the constructor for IngestHandler.
func NewIngestHandler(params IngestHandlerParams) *IngestHandler {
	return &IngestHandler{
		highlightUC: params.HighlightUC,
		logger:      params.Logger,
	}
}

// IngestRequest represents the request body for device ingestion.
type IngestRequest struct {
	Text   string `json:"text" validate:"required"`
	Note   string `json:"note"`
	Tags   string `json:"tags"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// IngestResponse acknowledges a created highlight.
type IngestResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// ReaderEntry is one highlight in a third-party reader payload.
type ReaderEntry struct {
	Text    string `json:"text"`
	Note    string `json:"note"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Chapter string `json:"chapter"`
}

// ReaderIngestRequest is the nested payload reader apps submit.
// Only the first entry is processed.
type ReaderIngestRequest struct {
	Highlights []ReaderEntry `json:"highlights" validate:"required,min=1"`
}

// Ingest handles authenticated device ingestion. Duplicates are rejected
// with a conflict carrying the existing highlight's id so the client can
// skip instead of retrying.
func (h *IngestHandler) Ingest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid credentials")
	}

	var req IngestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid highlight input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.IngestInput{
		UserID:  userID,
		Text:    req.Text,
		Note:    req.Note,
		TagsCSV: req.Tags,
		URL:     req.URL,
		Title:   req.Title,
		Author:  req.Author,
		Dedupe:  true,
	}
	if device, ok := middleware.GetDevice(c); ok {
		input.DeviceID = &device.ID
	}

	highlight, created, err := h.highlightUC.Ingest(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}
	if !created {
		return response.Error(c, http.StatusConflict, "DUPLICATE_IMPORT",
			"Highlight already imported", map[string]string{
				"highlight_id": highlight.ID.String(),
			})
	}

	return response.Success(c, http.StatusCreated, IngestResponse{
		ID:        highlight.ID.String(),
		CreatedAt: highlight.CreatedAt.Format(time.RFC3339),
	})
}

// ReaderIngest handles the third-party reader integration.
func (h *IngestHandler) ReaderIngest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid credentials")
	}

	var req ReaderIngestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reader payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	entry := req.Highlights[0]
	input := usecase.IngestInput{
		UserID: userID,
		Text:   entry.Text,
		Note:   entry.Note,
		Title:  entry.Title,
		Author: entry.Author,
		Dedupe: true,
	}
	if entry.Chapter != "" {
		input.Location = &entity.HighlightLocation{Chapter: entry.Chapter}
	}
	if device, ok := middleware.GetDevice(c); ok {
		input.DeviceID = &device.ID
	}

	highlight, created, err := h.highlightUC.Ingest(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}
	if !created {
		return response.Error(c, http.StatusConflict, "DUPLICATE_IMPORT",
			"Highlight already imported", map[string]string{
				"highlight_id": highlight.ID.String(),
			})
	}

	return response.Success(c, http.StatusCreated, IngestResponse{
		ID:        highlight.ID.String(),
		CreatedAt: highlight.CreatedAt.Format(time.RFC3339),
	})
}
