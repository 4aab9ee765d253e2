// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	"excerpta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// highlightRepository implements the repository.HighlightRepository interface.
type highlightRepository struct {
	db *gorm.DB
}

// NewHighlightRepository is the constructor for highlightRepository.
func NewHighlightRepository(db *gorm.DB) repository.HighlightRepository {
	return &highlightRepository{
		db: db,
	}
}

// CreateHighlight persists a new highlight. A fingerprint uniqueness violation
// is reported as ErrDuplicateHighlight so the caller can treat it as the
// duplicate-import signal.
func (repo *highlightRepository) CreateHighlight(ctx context.Context, highlight *entity.Highlight) error {
	highlightM, err := fromHighlightDomain(highlight)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Tags").Create(highlightM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateHighlight
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required highlight information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create highlight")
	}

	highlight.ID = highlightM.ID
	highlight.CreatedAt = highlightM.CreatedAt
	highlight.UpdatedAt = highlightM.UpdatedAt

	return nil
}

// FindHighlightByID retrieves a highlight with its tags, scoped to the owning user.
func (repo *highlightRepository) FindHighlightByID(ctx context.Context, userID, id uuid.UUID) (*entity.Highlight, error) {
	var highlightM model.HighlightModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("user_id = ? AND id = ?", userID, id).
		First(&highlightM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHighlightNotFound
		}

		return nil, errors.Wrap(err, "failed to find highlight by id")
	}

	return toHighlightDomain(&highlightM)
}

// FindDuplicate searches the user's highlights on a source for an earlier import of
// the same text. Three redundant match strategies cover rows written before the
// fingerprint column existed: the fingerprint, the creation-time snapshot, and the
// current text.
func (repo *highlightRepository) FindDuplicate(ctx context.Context, userID, sourceID uuid.UUID, fingerprint, rawText string) (*entity.Highlight, error) {
	var highlightM model.HighlightModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("user_id = ? AND source_id = ?", userID, sourceID).
		Where("import_fingerprint = ? OR original_text = ? OR text = ?", fingerprint, rawText, rawText).
		First(&highlightM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHighlightNotFound
		}

		return nil, errors.Wrap(err, "failed to find duplicate highlight")
	}

	return toHighlightDomain(&highlightM)
}

// SearchHighlights retrieves the user's highlights matching the given filters.
func (repo *highlightRepository) SearchHighlights(ctx context.Context, userID uuid.UUID, search repository.HighlightSearch) ([]*entity.Highlight, error) {
	status := search.Status
	if status == "" {
		status = entity.HighlightStatusActive
	}

	query := repo.db.WithContext(ctx).
		Model(&model.HighlightModel{}).
		Preload("Tags").
		Where("highlights.user_id = ? AND highlights.status = ?", userID, status)

	if search.Query != "" {
		pattern := "%" + search.Query + "%"
		query = query.Where("highlights.text ILIKE ? OR highlights.note ILIKE ?", pattern, pattern)
	}
	if search.SourceID != nil {
		query = query.Where("highlights.source_id = ?", *search.SourceID)
	}
	if search.FavoriteOnly {
		query = query.Where("highlights.is_favorite = ?", true)
	}
	if search.TagName != "" {
		query = query.
			Joins("JOIN highlight_tags ON highlight_tags.highlight_id = highlights.id").
			Joins("JOIN tags ON tags.id = highlight_tags.tag_id").
			Where("tags.user_id = ? AND tags.name = ?", userID, search.TagName)
	}

	switch search.Sort {
	case repository.HighlightSortOldest:
		query = query.Order("highlights.created_at ASC")
	case repository.HighlightSortRelevance:
		// Exact text matches rank first; recency breaks ties.
		query = query.
			Order(gorm.Expr("(LOWER(highlights.text) = LOWER(?)) DESC", search.Query)).
			Order("highlights.created_at DESC")
	default:
		query = query.Order("highlights.created_at DESC")
	}

	if search.Limit > 0 {
		query = query.Limit(search.Limit)
	}

	var highlightModels []*model.HighlightModel
	if err := query.Find(&highlightModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search highlights")
	}

	return toHighlightDomains(highlightModels)
}

// ListHighlightsBySource retrieves the user's active highlights on one source, newest first.
func (repo *highlightRepository) ListHighlightsBySource(ctx context.Context, userID, sourceID uuid.UUID) ([]*entity.Highlight, error) {
	var highlightModels []*model.HighlightModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("user_id = ? AND source_id = ? AND status = ?", userID, sourceID, entity.HighlightStatusActive).
		Order("created_at DESC").
		Find(&highlightModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list highlights by source")
	}

	return toHighlightDomains(highlightModels)
}

// CountActiveBySource returns the number of active highlights the user has on a source.
func (repo *highlightRepository) CountActiveBySource(ctx context.Context, userID, sourceID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.HighlightModel{}).
		Where("user_id = ? AND source_id = ? AND status = ?", userID, sourceID, entity.HighlightStatusActive).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active highlights by source")
	}

	return count, nil
}

// UpdateHighlight modifies an existing highlight. OriginalText and OriginalNote
// are deliberately left out of the column list so edits can never touch them.
func (repo *highlightRepository) UpdateHighlight(ctx context.Context, highlight *entity.Highlight) error {
	locationJSON, err := toLocationJSON(highlight.Location)
	if err != nil {
		return err
	}

	var sourceID any
	if highlight.SourceID != nil {
		sourceID = *highlight.SourceID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.HighlightModel{}).
		Where("user_id = ? AND id = ?", highlight.UserID, highlight.ID).
		Updates(map[string]any{
			"text":               highlight.Text,
			"note":               highlight.Note,
			"location":           locationJSON,
			"status":             highlight.Status.String(),
			"is_favorite":        highlight.IsFavorite,
			"source_id":          sourceID,
			"url":                highlight.URL,
			"page_title":         highlight.PageTitle,
			"page_author":        highlight.PageAuthor,
			"import_fingerprint": highlight.ImportFingerprint,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateHighlight
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update highlight")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHighlightNotFound
	}

	return nil
}

// AttachTag associates a tag with a highlight. Re-attaching is a no-op.
func (repo *highlightRepository) AttachTag(ctx context.Context, highlightID, tagID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.HighlightModel{ID: highlightID}).
		Association("Tags").
		Append(&model.TagModel{ID: tagID})
	if err != nil {
		return errors.Wrap(err, "failed to attach tag")
	}

	return nil
}

// DetachTag removes a tag association. Detaching an absent tag is a no-op.
func (repo *highlightRepository) DetachTag(ctx context.Context, highlightID, tagID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.HighlightModel{ID: highlightID}).
		Association("Tags").
		Delete(&model.TagModel{ID: tagID})
	if err != nil {
		return errors.Wrap(err, "failed to detach tag")
	}

	return nil
}

// ReplaceTags replaces the highlight's tag set with the given tags.
func (repo *highlightRepository) ReplaceTags(ctx context.Context, highlightID uuid.UUID, tagIDs []uuid.UUID) error {
	tags := make([]model.TagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tags = append(tags, model.TagModel{ID: tagID})
	}

	err := repo.db.WithContext(ctx).
		Model(&model.HighlightModel{ID: highlightID}).
		Association("Tags").
		Replace(tags)
	if err != nil {
		return errors.Wrap(err, "failed to replace tags")
	}

	return nil
}

// --- Mapper Functions ---

// toHighlightDomain converts a GORM HighlightModel to a domain Highlight entity.
func toHighlightDomain(data *model.HighlightModel) (*entity.Highlight, error) {
	if data == nil {
		return nil, nil
	}

	location, err := fromLocationJSON(data.Location)
	if err != nil {
		return nil, err
	}

	tags := make([]*entity.Tag, 0, len(data.Tags))
	for i := range data.Tags {
		tags = append(tags, toTagDomain(&data.Tags[i]))
	}

	return &entity.Highlight{
		ID:                data.ID,
		UserID:            data.UserID,
		SourceID:          data.SourceID,
		DeviceID:          data.DeviceID,
		URL:               data.URL,
		PageTitle:         data.PageTitle,
		PageAuthor:        data.PageAuthor,
		Text:              data.Text,
		Note:              data.Note,
		Location:          location,
		Status:            entity.HighlightStatus(data.Status),
		IsFavorite:        data.IsFavorite,
		OriginalText:      data.OriginalText,
		OriginalNote:      data.OriginalNote,
		ImportFingerprint: data.ImportFingerprint,
		Tags:              tags,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

// toHighlightDomains converts a slice of models, preserving order.
func toHighlightDomains(data []*model.HighlightModel) ([]*entity.Highlight, error) {
	highlights := make([]*entity.Highlight, 0, len(data))
	for _, highlightM := range data {
		highlight, err := toHighlightDomain(highlightM)
		if err != nil {
			return nil, err
		}
		highlights = append(highlights, highlight)
	}

	return highlights, nil
}

// fromHighlightDomain converts a domain Highlight entity to a GORM HighlightModel.
func fromHighlightDomain(data *entity.Highlight) (*model.HighlightModel, error) {
	if data == nil {
		return nil, nil
	}

	locationJSON, err := toLocationJSON(data.Location)
	if err != nil {
		return nil, err
	}

	return &model.HighlightModel{
		ID:                data.ID,
		UserID:            data.UserID,
		SourceID:          data.SourceID,
		DeviceID:          data.DeviceID,
		URL:               data.URL,
		PageTitle:         data.PageTitle,
		PageAuthor:        data.PageAuthor,
		Text:              data.Text,
		Note:              data.Note,
		Location:          locationJSON,
		Status:            data.Status.String(),
		IsFavorite:        data.IsFavorite,
		OriginalText:      data.OriginalText,
		OriginalNote:      data.OriginalNote,
		ImportFingerprint: data.ImportFingerprint,
	}, nil
}

// toLocationJSON serializes a highlight location into a JSON column value.
func toLocationJSON(location *entity.HighlightLocation) (datatypes.JSON, error) {
	if location == nil {
		return nil, nil
	}

	raw, err := json.Marshal(location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal highlight location")
	}

	return datatypes.JSON(raw), nil
}

// fromLocationJSON deserializes a JSON column value into a highlight location.
func fromLocationJSON(raw datatypes.JSON) (*entity.HighlightLocation, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	location := &entity.HighlightLocation{}
	if err := json.Unmarshal(raw, location); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal highlight location")
	}

	return location, nil
}
