// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTagNotFound is returned when a tag is not found.
var ErrTagNotFound = errors.New("tag not found")

// TagRepository defines the interface for tag-related database operations.
type TagRepository interface {
	// CreateTag persists a new tag.
	CreateTag(ctx context.Context, tag *entity.Tag) error

	// FindTagByName retrieves the user's tag with the given name.
	FindTagByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Tag, error)

	// ListTagsByUser retrieves all of a user's tags ordered by name.
	ListTagsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Tag, error)
}
