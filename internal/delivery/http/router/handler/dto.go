package handler

import (
	"time"

	"excerpta/internal/domain/entity"
	"excerpta/internal/domain/repository"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
)

// Response DTOs shared by the handlers. Entities are never serialized
// directly; hashes and other internals stay out of the wire format.

// UserDTO is the wire form of a user account.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DeviceDTO is the wire form of a device. The key itself is never included;
// RawKey appears only in creation and roll responses.
type DeviceDTO struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"key_prefix"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	RawKey     string     `json:"raw_key,omitempty"`
}

// TagDTO is the wire form of a tag.
type TagDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// LocationDTO is the wire form of a highlight's position in its source.
type LocationDTO struct {
	Chapter string `json:"chapter,omitempty"`
}

// HighlightDTO is the wire form of a highlight.
type HighlightDTO struct {
	ID           uuid.UUID    `json:"id"`
	SourceID     *uuid.UUID   `json:"source_id,omitempty"`
	DeviceID     *uuid.UUID   `json:"device_id,omitempty"`
	URL          string       `json:"url,omitempty"`
	PageTitle    string       `json:"page_title,omitempty"`
	PageAuthor   string       `json:"page_author,omitempty"`
	Text         string       `json:"text"`
	Note         string       `json:"note,omitempty"`
	Location     *LocationDTO `json:"location,omitempty"`
	Status       string       `json:"status"`
	IsFavorite   bool         `json:"is_favorite"`
	OriginalText string       `json:"original_text"`
	OriginalNote string       `json:"original_note,omitempty"`
	Tags         []TagDTO     `json:"tags"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// SourceDTO is the wire form of a source. Domain is set for web sources,
// Title and Author for book sources.
type SourceDTO struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	OriginalName   string    `json:"original_name"`
	DisplayName    string    `json:"display_name"`
	Domain         string    `json:"domain,omitempty"`
	Title          string    `json:"title,omitempty"`
	Author         string    `json:"author,omitempty"`
	HighlightCount *int64    `json:"highlight_count,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CollectionDTO is the wire form of a collection.
type CollectionDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReminderDTO is the wire form of a reminder.
type ReminderDTO struct {
	ID          uuid.UUID `json:"id"`
	HighlightID uuid.UUID `json:"highlight_id"`
	RemindAt    time.Time `json:"remind_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserDTO(user *entity.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func toDeviceDTO(device *entity.Device) DeviceDTO {
	return DeviceDTO{
		ID:         device.ID,
		Name:       device.Name,
		KeyPrefix:  device.KeyPrefix,
		CreatedAt:  device.CreatedAt,
		LastUsedAt: device.LastUsedAt,
		RevokedAt:  device.RevokedAt,
	}
}

func toDeviceKeyDTO(output *usecase.DeviceKeyOutput) DeviceDTO {
	dto := toDeviceDTO(output.Device)
	dto.RawKey = output.RawKey

	return dto
}

func toDeviceDTOs(devices []*entity.Device) []DeviceDTO {
	dtos := make([]DeviceDTO, 0, len(devices))
	for _, device := range devices {
		dtos = append(dtos, toDeviceDTO(device))
	}

	return dtos
}

func toTagDTOs(tags []*entity.Tag) []TagDTO {
	dtos := make([]TagDTO, 0, len(tags))
	for _, tag := range tags {
		dtos = append(dtos, TagDTO{ID: tag.ID, Name: tag.Name})
	}

	return dtos
}

func toHighlightDTO(highlight *entity.Highlight) HighlightDTO {
	dto := HighlightDTO{
		ID:           highlight.ID,
		SourceID:     highlight.SourceID,
		DeviceID:     highlight.DeviceID,
		URL:          highlight.URL,
		PageTitle:    highlight.PageTitle,
		PageAuthor:   highlight.PageAuthor,
		Text:         highlight.Text,
		Note:         highlight.Note,
		Status:       highlight.Status.String(),
		IsFavorite:   highlight.IsFavorite,
		OriginalText: highlight.OriginalText,
		OriginalNote: highlight.OriginalNote,
		Tags:         toTagDTOs(highlight.Tags),
		CreatedAt:    highlight.CreatedAt,
		UpdatedAt:    highlight.UpdatedAt,
	}
	if highlight.Location != nil {
		dto.Location = &LocationDTO{Chapter: highlight.Location.Chapter}
	}

	return dto
}

func toHighlightDTOs(highlights []*entity.Highlight) []HighlightDTO {
	dtos := make([]HighlightDTO, 0, len(highlights))
	for _, highlight := range highlights {
		dtos = append(dtos, toHighlightDTO(highlight))
	}

	return dtos
}

func toSourceDTO(source *entity.Source) SourceDTO {
	dto := SourceDTO{
		ID:           source.ID,
		Type:         source.Type.String(),
		OriginalName: source.OriginalName,
		DisplayName:  source.DisplayName,
		CreatedAt:    source.CreatedAt,
	}
	if source.Web != nil {
		dto.Domain = source.Web.Domain
	}
	if source.Book != nil {
		dto.Title = source.Book.Title
		dto.Author = source.Book.Author
	}

	return dto
}

func toSourceListDTOs(sources []*repository.SourceWithCount) []SourceDTO {
	dtos := make([]SourceDTO, 0, len(sources))
	for _, item := range sources {
		dto := toSourceDTO(item.Source)
		count := item.HighlightCount
		dto.HighlightCount = &count
		dtos = append(dtos, dto)
	}

	return dtos
}

func toCollectionDTO(collection *entity.Collection) CollectionDTO {
	return CollectionDTO{
		ID:          collection.ID,
		Name:        collection.Name,
		Description: collection.Description,
		CreatedAt:   collection.CreatedAt,
	}
}

func toCollectionDTOs(collections []*entity.Collection) []CollectionDTO {
	dtos := make([]CollectionDTO, 0, len(collections))
	for _, collection := range collections {
		dtos = append(dtos, toCollectionDTO(collection))
	}

	return dtos
}

func toReminderDTO(reminder *entity.Reminder) ReminderDTO {
	return ReminderDTO{
		ID:          reminder.ID,
		HighlightID: reminder.HighlightID,
		RemindAt:    reminder.RemindAt,
		CreatedAt:   reminder.CreatedAt,
	}
}

func toReminderDTOs(reminders []*entity.Reminder) []ReminderDTO {
	dtos := make([]ReminderDTO, 0, len(reminders))
	for _, reminder := range reminders {
		dtos = append(dtos, toReminderDTO(reminder))
	}

	return dtos
}
