// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HighlightStatus represents the lifecycle state of a highlight.
type HighlightStatus string

const (
	// HighlightStatusActive marks a visible highlight.
	HighlightStatusActive HighlightStatus = "active"
	// HighlightStatusArchived marks a soft-deleted highlight. Archiving is a toggle, not deletion.
	HighlightStatusArchived HighlightStatus = "archived"
)

// String returns the string representation of the HighlightStatus.
func (s HighlightStatus) String() string {
	return string(s)
}

// IsValid checks if the HighlightStatus is a valid value.
func (s HighlightStatus) IsValid() bool {
	switch s {
	case HighlightStatusActive, HighlightStatusArchived:
		return true
	default:
		return false
	}
}

// Highlight is the central entity: a captured text excerpt with its annotations
// and provenance. OriginalText and OriginalNote are snapshots taken at creation
// and never overwritten by later edits; ImportFingerprint is the dedup key derived
// from the source and the originally submitted text.
type Highlight struct {
	ID                uuid.UUID          // The Global Unique Identifier (GUID) for the highlight.
	UserID            uuid.UUID          // The ID of the user who owns this highlight.
	SourceID          *uuid.UUID         // The source this highlight is attributed to. Nil when none resolved.
	DeviceID          *uuid.UUID         // The device that submitted this highlight. Nil for untracked entry points.
	URL               string             // Exact page URL of a web capture. The Source only keeps the domain.
	PageTitle         string             // Page title as submitted with a web capture.
	PageAuthor        string             // Page author as submitted with a web capture.
	Text              string             // The captured excerpt. Editable.
	Note              string             // The user's annotation. Editable.
	Location          *HighlightLocation // Structured position within the source, e.g. a chapter. Nil when unknown.
	Status            HighlightStatus    // Lifecycle state, "active" or "archived".
	IsFavorite        bool               // Favorite flag, toggled by the user.
	OriginalText      string             // Snapshot of Text at creation time. Immutable.
	OriginalNote      string             // Snapshot of Note at creation time. Immutable.
	ImportFingerprint string             // Dedup key, "<source_id>::<normalized text>". Empty when no source.
	Tags              []*Tag             // Labels attached to this highlight.
	CreatedAt         time.Time          // Timestamp of when this highlight was captured.
	UpdatedAt         time.Time          // Timestamp of the last modification.
}

// HighlightLocation describes where in the source a highlight was taken.
type HighlightLocation struct {
	Chapter string `json:"chapter,omitempty"` // Chapter label reported by the submitting client.
}

// IsActive reports whether the highlight is in the active state.
func (h *Highlight) IsActive() bool {
	return h.Status == HighlightStatusActive
}
