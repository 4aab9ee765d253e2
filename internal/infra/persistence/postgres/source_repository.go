// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	"excerpta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sourceRepository implements the repository.SourceRepository interface.
type sourceRepository struct {
	db *gorm.DB
}

// NewSourceRepository is the constructor for sourceRepository.
func NewSourceRepository(db *gorm.DB) repository.SourceRepository {
	return &sourceRepository{
		db: db,
	}
}

// CreateSource persists a new source.
func (repo *sourceRepository) CreateSource(ctx context.Context, source *entity.Source) error {
	sourceM := fromSourceDomain(source)

	if err := repo.db.WithContext(ctx).Create(sourceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required source information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create source")
	}

	source.ID = sourceM.ID
	source.CreatedAt = sourceM.CreatedAt
	source.UpdatedAt = sourceM.UpdatedAt

	return nil
}

// FindSourceByID retrieves a source by its unique ID, scoped to the owning user.
func (repo *sourceRepository) FindSourceByID(ctx context.Context, userID, id uuid.UUID) (*entity.Source, error) {
	var sourceM model.SourceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&sourceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find source by id")
	}

	return toSourceDomain(&sourceM), nil
}

// FindWebSourceByDomain retrieves the user's web source for a domain.
func (repo *sourceRepository) FindWebSourceByDomain(ctx context.Context, userID uuid.UUID, domain string) (*entity.Source, error) {
	var sourceM model.SourceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND domain = ?", userID, entity.SourceTypeWeb, domain).
		First(&sourceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find web source by domain")
	}

	return toSourceDomain(&sourceM), nil
}

// FindBookSourceByTitle retrieves the user's book source matching a title case-insensitively.
func (repo *sourceRepository) FindBookSourceByTitle(ctx context.Context, userID uuid.UUID, title string) (*entity.Source, error) {
	var sourceM model.SourceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND LOWER(title) = LOWER(?)", userID, entity.SourceTypeBook, title).
		First(&sourceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find book source by title")
	}

	return toSourceDomain(&sourceM), nil
}

// ListSourcesByUser retrieves all of a user's sources with their active highlight counts.
func (repo *sourceRepository) ListSourcesByUser(ctx context.Context, userID uuid.UUID) ([]*repository.SourceWithCount, error) {
	var rows []struct {
		model.SourceModel
		HighlightCount int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.SourceModel{}).
		Select("sources.*, COUNT(highlights.id) AS highlight_count").
		Joins("LEFT JOIN highlights ON highlights.source_id = sources.id AND highlights.status = ?", entity.HighlightStatusActive).
		Where("sources.user_id = ?", userID).
		Group("sources.id").
		Order("sources.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sources by user")
	}

	result := make([]*repository.SourceWithCount, 0, len(rows))
	for i := range rows {
		result = append(result, &repository.SourceWithCount{
			Source:         toSourceDomain(&rows[i].SourceModel),
			HighlightCount: rows[i].HighlightCount,
		})
	}

	return result, nil
}

// UpdateSource modifies an existing source.
func (repo *sourceRepository) UpdateSource(ctx context.Context, source *entity.Source) error {
	sourceM := fromSourceDomain(source)

	result := repo.db.WithContext(ctx).
		Model(&model.SourceModel{}).
		Where("user_id = ? AND id = ?", source.UserID, source.ID).
		Updates(map[string]any{
			"type":         sourceM.Type,
			"display_name": sourceM.DisplayName,
			"domain":       sourceM.Domain,
			"title":        sourceM.Title,
			"author":       sourceM.Author,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update source")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSourceNotFound
	}

	return nil
}

// DeleteOrphanSources removes every source of the user that no active highlight references.
func (repo *sourceRepository) DeleteOrphanSources(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id NOT IN (?)", repo.db.
			Model(&model.HighlightModel{}).
			Select("source_id").
			Where("user_id = ? AND source_id IS NOT NULL AND status = ?", userID, entity.HighlightStatusActive)).
		Delete(&model.SourceModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete orphan sources")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toSourceDomain converts a flat GORM SourceModel row into the tagged-variant domain entity.
func toSourceDomain(data *model.SourceModel) *entity.Source {
	if data == nil {
		return nil
	}

	source := &entity.Source{
		ID:           data.ID,
		UserID:       data.UserID,
		Type:         entity.SourceType(data.Type),
		OriginalName: data.OriginalName,
		DisplayName:  data.DisplayName,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	switch source.Type {
	case entity.SourceTypeWeb:
		web := &entity.WebSource{}
		if data.Domain != nil {
			web.Domain = *data.Domain
		}
		source.Web = web
	case entity.SourceTypeBook:
		book := &entity.BookSource{}
		if data.Title != nil {
			book.Title = *data.Title
		}
		if data.Author != nil {
			book.Author = *data.Author
		}
		source.Book = book
	}

	return source
}

// fromSourceDomain converts the tagged-variant domain entity into a flat GORM SourceModel row.
func fromSourceDomain(data *entity.Source) *model.SourceModel {
	if data == nil {
		return nil
	}

	sourceM := &model.SourceModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Type:         data.Type.String(),
		OriginalName: data.OriginalName,
		DisplayName:  data.DisplayName,
	}

	switch data.Type {
	case entity.SourceTypeWeb:
		if data.Web != nil {
			domain := data.Web.Domain
			sourceM.Domain = &domain
		}
	case entity.SourceTypeBook:
		if data.Book != nil {
			title := data.Book.Title
			sourceM.Title = &title
			if data.Book.Author != "" {
				author := data.Book.Author
				sourceM.Author = &author
			}
		}
	}

	return sourceM
}
