// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	"excerpta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// CreateReminder persists a new reminder.
func (repo *reminderRepository) CreateReminder(ctx context.Context, reminder *entity.Reminder) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		// The referenced highlight vanished between the service's ownership
		// check and the insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHighlightNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reminder")
	}

	reminder.ID = reminderM.ID
	reminder.CreatedAt = reminderM.CreatedAt

	return nil
}

// FindReminderByID retrieves a reminder by its unique ID, scoped to the owning user.
func (repo *reminderRepository) FindReminderByID(ctx context.Context, userID, id uuid.UUID) (*entity.Reminder, error) {
	var reminderM model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder by id")
	}

	return toReminderDomain(&reminderM), nil
}

// ListDueReminders retrieves the user's reminders with remind_at at or before now.
func (repo *reminderRepository) ListDueReminders(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Reminder, error) {
	var reminderModels []*model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND remind_at <= ?", userID, now).
		Order("remind_at ASC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list due reminders")
	}

	return toReminderDomains(reminderModels), nil
}

// ListUpcomingReminders retrieves the user's reminders with remind_at after now, soonest first.
func (repo *reminderRepository) ListUpcomingReminders(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Reminder, error) {
	var reminderModels []*model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND remind_at > ?", userID, now).
		Order("remind_at ASC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming reminders")
	}

	return toReminderDomains(reminderModels), nil
}

// DeleteReminder removes a reminder by its ID.
func (repo *reminderRepository) DeleteReminder(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.ReminderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reminder")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// DeleteRemindersByHighlight removes every reminder attached to a highlight.
func (repo *reminderRepository) DeleteRemindersByHighlight(ctx context.Context, userID, highlightID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND highlight_id = ?", userID, highlightID).
		Delete(&model.ReminderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete reminders by highlight")
	}

	return nil
}

// --- Mapper Functions ---

// toReminderDomain converts a GORM ReminderModel to a domain Reminder entity.
func toReminderDomain(data *model.ReminderModel) *entity.Reminder {
	if data == nil {
		return nil
	}

	return &entity.Reminder{
		ID:          data.ID,
		UserID:      data.UserID,
		HighlightID: data.HighlightID,
		RemindAt:    data.RemindAt,
		CreatedAt:   data.CreatedAt,
	}
}

// toReminderDomains converts a slice of models, preserving order.
func toReminderDomains(data []*model.ReminderModel) []*entity.Reminder {
	reminders := make([]*entity.Reminder, 0, len(data))
	for _, reminderM := range data {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders
}

// fromReminderDomain converts a domain Reminder entity to a GORM ReminderModel.
func fromReminderDomain(data *entity.Reminder) *model.ReminderModel {
	if data == nil {
		return nil
	}

	return &model.ReminderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		HighlightID: data.HighlightID,
		RemindAt:    data.RemindAt,
	}
}
