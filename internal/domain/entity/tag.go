// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a per-user named label, many-to-many with highlights.
// Names are unique within a user and tags are created lazily on first use.
type Tag struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the tag.
	UserID    uuid.UUID // The ID of the user who owns this tag.
	Name      string    // The label text, unique per user.
	CreatedAt time.Time // Timestamp of when this tag was first used.
}
