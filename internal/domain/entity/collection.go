// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a user-named grouping of highlights.
type Collection struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the collection.
	UserID      uuid.UUID // The ID of the user who owns this collection.
	Name        string    // The collection name.
	Description string    // Optional free-form description.
	CreatedAt   time.Time // Timestamp of when this collection was created.
}

// CollectionItem is the membership record linking a highlight to a collection.
type CollectionItem struct {
	CollectionID uuid.UUID // The collection the highlight belongs to.
	HighlightID  uuid.UUID // The member highlight.
	AddedAt      time.Time // Timestamp of when the highlight was added to the collection.
}
