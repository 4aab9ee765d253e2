// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for collection persistence.
var (
	// ErrCollectionNotFound is returned when a collection is not found.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrCollectionItemExists is returned when adding a highlight that is already a member.
	ErrCollectionItemExists = errors.New("highlight already in collection")
	// ErrCollectionItemNotFound is returned when removing a highlight that is not a member.
	ErrCollectionItemNotFound = errors.New("highlight not in collection")
)

// CollectionRepository defines the interface for collection-related database operations.
// Every lookup is scoped to the owning user.
type CollectionRepository interface {
	// CreateCollection persists a new collection.
	CreateCollection(ctx context.Context, collection *entity.Collection) error

	// FindCollectionByID retrieves a collection by its unique ID, scoped to the owning user.
	FindCollectionByID(ctx context.Context, userID, id uuid.UUID) (*entity.Collection, error)

	// ListCollectionsByUser retrieves all of a user's collections, newest first.
	ListCollectionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error)

	// UpdateCollection modifies an existing collection.
	UpdateCollection(ctx context.Context, collection *entity.Collection) error

	// DeleteCollection removes a collection and its membership rows.
	DeleteCollection(ctx context.Context, userID, id uuid.UUID) error

	// AddHighlight adds a highlight to a collection. Adding an existing member
	// returns ErrCollectionItemExists.
	AddHighlight(ctx context.Context, item *entity.CollectionItem) error

	// RemoveHighlight removes a highlight from a collection. Removing a non-member
	// returns ErrCollectionItemNotFound.
	RemoveHighlight(ctx context.Context, collectionID, highlightID uuid.UUID) error

	// ListHighlights retrieves a collection's member highlights ordered by when they were added.
	ListHighlights(ctx context.Context, userID, collectionID uuid.UUID) ([]*entity.Highlight, error)
}
