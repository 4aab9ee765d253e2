// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceType discriminates the two shapes a Source can take.
type SourceType string

const (
	// SourceTypeWeb marks a source deduplicated by network domain.
	SourceTypeWeb SourceType = "web"
	// SourceTypeBook marks a source deduplicated by case-insensitive title.
	SourceTypeBook SourceType = "book"
)

// String returns the string representation of the SourceType.
func (t SourceType) String() string {
	return string(t)
}

// IsValid checks if the SourceType is a valid value.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeWeb, SourceTypeBook:
		return true
	default:
		return false
	}
}

// Source is a deduplicated reference to where a highlight came from.
// It is a tagged variant: exactly one of Web or Book is non-nil, matching Type.
type Source struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the source.
	UserID       uuid.UUID   // The ID of the user who owns this source.
	Type         SourceType  // Discriminator selecting the Web or Book shape.
	OriginalName string      // The name captured at creation time. Immutable.
	DisplayName  string      // The user-editable presentation name.
	Web          *WebSource  // Web-specific fields. Non-nil iff Type is "web".
	Book         *BookSource // Book-specific fields. Non-nil iff Type is "book".
	CreatedAt    time.Time   // Timestamp of when this source was first resolved.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}

// WebSource holds the fields specific to a web source.
// All highlights from the same domain share one Source regardless of exact page.
type WebSource struct {
	Domain string // The lowercased network domain, e.g. "example.com".
}

// BookSource holds the fields specific to a book source.
type BookSource struct {
	Title  string // The book title as first captured. Matched case-insensitively.
	Author string // The book author. Empty until supplied; backfilled once, never overwritten.
}
