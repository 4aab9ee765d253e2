// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for highlight persistence.
var (
	// ErrHighlightNotFound is returned when a highlight is not found.
	ErrHighlightNotFound = errors.New("highlight not found")
	// ErrDuplicateHighlight is returned when an insert trips the fingerprint
	// uniqueness constraint. Callers treat it as the duplicate-import signal.
	ErrDuplicateHighlight = errors.New("highlight already imported")
)

// HighlightSort names the supported orderings of a highlight search.
type HighlightSort string

const (
	// HighlightSortNewest orders by creation time, most recent first.
	HighlightSortNewest HighlightSort = "newest"
	// HighlightSortOldest orders by creation time, oldest first.
	HighlightSortOldest HighlightSort = "oldest"
	// HighlightSortRelevance ranks exact text matches first, then by recency.
	HighlightSortRelevance HighlightSort = "relevance"
)

// IsValid checks if the HighlightSort is a valid value.
func (s HighlightSort) IsValid() bool {
	switch s {
	case HighlightSortNewest, HighlightSortOldest, HighlightSortRelevance:
		return true
	default:
		return false
	}
}

// HighlightSearch carries the filters and ordering of a highlight search.
// Zero values mean "no constraint".
type HighlightSearch struct {
	Query        string          // Case-insensitive substring match over text and note.
	SourceID     *uuid.UUID      // Restrict to one source.
	TagName      string          // Restrict to highlights carrying this tag.
	FavoriteOnly bool            // Restrict to favorites.
	Status       entity.HighlightStatus // Lifecycle filter. Empty means active.
	Sort         HighlightSort   // Ordering. Empty means newest.
	Limit        int             // Maximum rows. Zero means no limit.
}

// HighlightRepository defines the interface for highlight-related database operations.
// Every lookup is scoped to the owning user.
type HighlightRepository interface {
	// CreateHighlight persists a new highlight. A fingerprint uniqueness violation
	// is reported as ErrDuplicateHighlight.
	CreateHighlight(ctx context.Context, highlight *entity.Highlight) error

	// FindHighlightByID retrieves a highlight with its tags, scoped to the owning user.
	FindHighlightByID(ctx context.Context, userID, id uuid.UUID) (*entity.Highlight, error)

	// FindDuplicate searches the user's highlights on a source for an earlier import
	// of the same text, matching the fingerprint, the creation-time snapshot, or the
	// current text. Returns ErrHighlightNotFound when there is no match.
	FindDuplicate(ctx context.Context, userID, sourceID uuid.UUID, fingerprint, rawText string) (*entity.Highlight, error)

	// SearchHighlights retrieves the user's highlights matching the given filters.
	SearchHighlights(ctx context.Context, userID uuid.UUID, search HighlightSearch) ([]*entity.Highlight, error)

	// ListHighlightsBySource retrieves the user's active highlights on one source, newest first.
	ListHighlightsBySource(ctx context.Context, userID, sourceID uuid.UUID) ([]*entity.Highlight, error)

	// CountActiveBySource returns the number of active highlights the user has on a source.
	CountActiveBySource(ctx context.Context, userID, sourceID uuid.UUID) (int64, error)

	// UpdateHighlight modifies an existing highlight. A fingerprint uniqueness
	// violation is reported as ErrDuplicateHighlight.
	UpdateHighlight(ctx context.Context, highlight *entity.Highlight) error

	// AttachTag associates a tag with a highlight. Re-attaching is a no-op.
	AttachTag(ctx context.Context, highlightID, tagID uuid.UUID) error

	// DetachTag removes a tag association. Detaching an absent tag is a no-op.
	DetachTag(ctx context.Context, highlightID, tagID uuid.UUID) error

	// ReplaceTags replaces the highlight's tag set with the given tags.
	ReplaceTags(ctx context.Context, highlightID uuid.UUID, tagIDs []uuid.UUID) error
}
