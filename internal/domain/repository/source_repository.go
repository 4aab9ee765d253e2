// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"excerpta/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSourceNotFound is returned when a source is not found.
var ErrSourceNotFound = errors.New("source not found")

// SourceWithCount bundles a source with its number of active highlights,
// avoiding N+1 lookups on listing pages.
type SourceWithCount struct {
	Source         *entity.Source
	HighlightCount int64
}

// SourceRepository defines the interface for source-related database operations.
// Every lookup is scoped to the owning user.
type SourceRepository interface {
	// CreateSource persists a new source.
	CreateSource(ctx context.Context, source *entity.Source) error

	// FindSourceByID retrieves a source by its unique ID, scoped to the owning user.
	FindSourceByID(ctx context.Context, userID, id uuid.UUID) (*entity.Source, error)

	// FindWebSourceByDomain retrieves the user's web source for a domain.
	FindWebSourceByDomain(ctx context.Context, userID uuid.UUID, domain string) (*entity.Source, error)

	// FindBookSourceByTitle retrieves the user's book source matching a title case-insensitively.
	FindBookSourceByTitle(ctx context.Context, userID uuid.UUID, title string) (*entity.Source, error)

	// ListSourcesByUser retrieves all of a user's sources with their active highlight counts.
	ListSourcesByUser(ctx context.Context, userID uuid.UUID) ([]*SourceWithCount, error)

	// UpdateSource modifies an existing source.
	UpdateSource(ctx context.Context, source *entity.Source) error

	// DeleteOrphanSources removes every source of the user that no active highlight references.
	// It returns the number of sources removed.
	DeleteOrphanSources(ctx context.Context, userID uuid.UUID) (int64, error)
}
