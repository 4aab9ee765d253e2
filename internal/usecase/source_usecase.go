// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"excerpta/internal/domain/entity"
	"excerpta/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateSourceInput carries an edit to a source. Nil fields are left untouched.
type UpdateSourceInput struct {
	DisplayName *string
	Author      *string
}

// --- Output DTOs ---

// SourceDetailOutput bundles a source with its active highlights.
type SourceDetailOutput struct {
	Source     *entity.Source
	Highlights []*entity.Highlight
}

// SourceUsecase defines the interface for source listing and curation.
type SourceUsecase interface {
	// ListSources returns all of the user's sources with active-highlight counts.
	ListSources(ctx context.Context, userID uuid.UUID) ([]*repository.SourceWithCount, error)

	// GetSource retrieves one source together with its active highlights.
	GetSource(ctx context.Context, userID, id uuid.UUID) (*SourceDetailOutput, error)

	// UpdateSource edits a source's presentation fields. The display name must
	// stay non-empty; the author is only meaningful for book sources.
	UpdateSource(ctx context.Context, userID, id uuid.UUID, input UpdateSourceInput) (*entity.Source, error)
}
