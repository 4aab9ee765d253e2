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

// collectionRepository implements the repository.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

// CreateCollection persists a new collection.
func (repo *collectionRepository) CreateCollection(ctx context.Context, collection *entity.Collection) error {
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Create(collectionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
	}

	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt

	return nil
}

// FindCollectionByID retrieves a collection by its unique ID, scoped to the owning user.
func (repo *collectionRepository) FindCollectionByID(ctx context.Context, userID, id uuid.UUID) (*entity.Collection, error) {
	var collectionM model.CollectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection by id")
	}

	return toCollectionDomain(&collectionM), nil
}

// ListCollectionsByUser retrieves all of a user's collections, newest first.
func (repo *collectionRepository) ListCollectionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	var collectionModels []*model.CollectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&collectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collections by user")
	}

	collections := make([]*entity.Collection, 0, len(collectionModels))
	for _, collectionM := range collectionModels {
		collections = append(collections, toCollectionDomain(collectionM))
	}

	return collections, nil
}

// UpdateCollection modifies an existing collection.
func (repo *collectionRepository) UpdateCollection(ctx context.Context, collection *entity.Collection) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("user_id = ? AND id = ?", collection.UserID, collection.ID).
		Updates(map[string]any{
			"name":        collection.Name,
			"description": collection.Description,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update collection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// DeleteCollection removes a collection and its membership rows.
func (repo *collectionRepository) DeleteCollection(ctx context.Context, userID, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("collection_id = ?", id).
		Delete(&model.CollectionItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete collection items")
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.CollectionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete collection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// AddHighlight adds a highlight to a collection.
func (repo *collectionRepository) AddHighlight(ctx context.Context, item *entity.CollectionItem) error {
	itemM := &model.CollectionItemModel{
		CollectionID: item.CollectionID,
		HighlightID:  item.HighlightID,
		AddedAt:      item.AddedAt,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCollectionItemExists
		}
		// The collection was deleted between the service's ownership check
		// and the insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCollectionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add highlight to collection")
	}

	return nil
}

// RemoveHighlight removes a highlight from a collection.
func (repo *collectionRepository) RemoveHighlight(ctx context.Context, collectionID, highlightID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("collection_id = ? AND highlight_id = ?", collectionID, highlightID).
		Delete(&model.CollectionItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove highlight from collection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionItemNotFound
	}

	return nil
}

// ListHighlights retrieves a collection's member highlights ordered by when they were added.
func (repo *collectionRepository) ListHighlights(ctx context.Context, userID, collectionID uuid.UUID) ([]*entity.Highlight, error) {
	var highlightModels []*model.HighlightModel

	if err := repo.db.WithContext(ctx).
		Model(&model.HighlightModel{}).
		Preload("Tags").
		Joins("JOIN collection_items ON collection_items.highlight_id = highlights.id").
		Where("collection_items.collection_id = ? AND highlights.user_id = ?", collectionID, userID).
		Order("collection_items.added_at DESC").
		Find(&highlightModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collection highlights")
	}

	return toHighlightDomains(highlightModels)
}

// --- Mapper Functions ---

// toCollectionDomain converts a GORM CollectionModel to a domain Collection entity.
func toCollectionDomain(data *model.CollectionModel) *entity.Collection {
	if data == nil {
		return nil
	}

	return &entity.Collection{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

// fromCollectionDomain converts a domain Collection entity to a GORM CollectionModel.
func fromCollectionDomain(data *entity.Collection) *model.CollectionModel {
	if data == nil {
		return nil
	}

	return &model.CollectionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
	}
}
