// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
)

// MembershipStatus reports the outcome of a collection membership change.
type MembershipStatus string

const (
	// MembershipAdded means the highlight was added to the collection.
	MembershipAdded MembershipStatus = "added"
	// MembershipAlreadyExists means the highlight was already a member.
	MembershipAlreadyExists MembershipStatus = "already_exists"
	// MembershipRemoved means the highlight was removed from the collection.
	MembershipRemoved MembershipStatus = "removed"
	// MembershipNotFound means the highlight was not a member to begin with.
	MembershipNotFound MembershipStatus = "not_found"
)

// --- Input DTOs ---

// CollectionInput defines the data for creating or renaming a collection.
type CollectionInput struct {
	Name        string
	Description string
}

// CollectionUsecase defines the interface for collection management.
type CollectionUsecase interface {
	// CreateCollection creates a new named collection.
	CreateCollection(ctx context.Context, userID uuid.UUID, input CollectionInput) (*entity.Collection, error)

	// ListCollections returns all of the user's collections, newest first.
	ListCollections(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error)

	// GetCollection retrieves one collection.
	GetCollection(ctx context.Context, userID, id uuid.UUID) (*entity.Collection, error)

	// UpdateCollection renames a collection or changes its description.
	UpdateCollection(ctx context.Context, userID, id uuid.UUID, input CollectionInput) (*entity.Collection, error)

	// DeleteCollection removes a collection and its membership rows. The member
	// highlights themselves are untouched.
	DeleteCollection(ctx context.Context, userID, id uuid.UUID) error

	// AddHighlight puts a highlight into a collection. Adding an existing member
	// reports MembershipAlreadyExists instead of failing.
	AddHighlight(ctx context.Context, userID, collectionID, highlightID uuid.UUID) (MembershipStatus, error)

	// RemoveHighlight takes a highlight out of a collection. Removing a
	// non-member reports MembershipNotFound instead of failing.
	RemoveHighlight(ctx context.Context, userID, collectionID, highlightID uuid.UUID) (MembershipStatus, error)

	// ListHighlights returns a collection's members ordered by when they were added.
	ListHighlights(ctx context.Context, userID, collectionID uuid.UUID) ([]*entity.Highlight, error)
}
