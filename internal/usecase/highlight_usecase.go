// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"excerpta/internal/domain/entity"
	"excerpta/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// IngestInput carries one captured highlight into the ingestion pipeline.
// URL, Title and Author feed source resolution; TagsCSV is a comma-separated
// tag list; Dedupe selects the entry point's duplicate policy.
type IngestInput struct {
	UserID   uuid.UUID
	Text     string
	Note     string
	TagsCSV  string
	URL      string
	Title    string
	Author   string
	DeviceID *uuid.UUID
	Location *entity.HighlightLocation
	Dedupe   bool
}

// UpdateHighlightInput carries an edit to an existing highlight. Nil fields
// are left untouched; Tags, when non-nil, replaces the whole tag set.
type UpdateHighlightInput struct {
	Text     *string
	Note     *string
	URL      *string
	Title    *string
	Author   *string
	Location *entity.HighlightLocation
	Tags     []string
}

// SearchHighlightsInput carries the free-text query and filters of a search.
type SearchHighlightsInput struct {
	Query        string
	SourceID     *uuid.UUID
	TagName      string
	FavoriteOnly bool
	Status       entity.HighlightStatus
	Sort         repository.HighlightSort
	Limit        int
}

// HighlightUsecase defines the interface for highlight capture and curation.
type HighlightUsecase interface {
	// Ingest runs the full capture pipeline: source resolution, fingerprinting,
	// duplicate handling per input.Dedupe, insert with creation snapshots, and
	// tag attachment. The returned bool is false when an existing duplicate was
	// returned instead of a new row.
	Ingest(ctx context.Context, input IngestInput) (*entity.Highlight, bool, error)

	// GetHighlight retrieves one highlight with its tags.
	GetHighlight(ctx context.Context, userID, id uuid.UUID) (*entity.Highlight, error)

	// SearchHighlights retrieves highlights matching the query and filters.
	SearchHighlights(ctx context.Context, userID uuid.UUID, input SearchHighlightsInput) ([]*entity.Highlight, error)

	// UpdateHighlight edits a highlight. Creation snapshots are never modified;
	// the import fingerprint is recomputed from the original text against the
	// re-resolved source.
	UpdateHighlight(ctx context.Context, userID, id uuid.UUID, input UpdateHighlightInput) (*entity.Highlight, error)

	// ToggleFavorite flips the favorite flag and returns the new value.
	ToggleFavorite(ctx context.Context, userID, id uuid.UUID) (bool, error)

	// ToggleArchive flips the highlight between active and archived. Archiving
	// deletes the highlight's reminders and sweeps sources left without active
	// highlights. Returns the new status.
	ToggleArchive(ctx context.Context, userID, id uuid.UUID) (entity.HighlightStatus, error)

	// AddTag attaches a named tag, creating it if needed. Re-adding is a no-op.
	AddTag(ctx context.Context, userID, highlightID uuid.UUID, name string) (*entity.Highlight, error)

	// RemoveTag detaches a named tag. Removing an absent tag is a no-op.
	RemoveTag(ctx context.Context, userID, highlightID uuid.UUID, name string) (*entity.Highlight, error)

	// ListTags returns all of the user's tags ordered by name.
	ListTags(ctx context.Context, userID uuid.UUID) ([]*entity.Tag, error)
}
