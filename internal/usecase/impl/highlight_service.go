package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "excerpta/internal/delivery/context"
	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/fingerprint"
	"excerpta/internal/domain/repository"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// highlightService implements the HighlightUsecase interface.
type highlightService struct {
	txManager     repository.TransactionManager
	highlightRepo repository.HighlightRepository
	tagRepo       repository.TagRepository
	logger        *slog.Logger
}

// HighlightServiceParams holds dependencies for highlightService, injected by Fx.
type HighlightServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	HighlightRepo repository.HighlightRepository
	TagRepo       repository.TagRepository
	Logger        *slog.Logger
}

// NewHighlightService is the constructor for highlightService.
func NewHighlightService(params HighlightServiceParams) usecase.HighlightUsecase {
	return &highlightService{
		txManager:     params.TxManager,
		highlightRepo: params.HighlightRepo,
		tagRepo:       params.TagRepo,
		logger:        params.Logger,
	}
}

func (srv *highlightService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest runs the capture pipeline in a single transaction: resolve the source,
// fingerprint the raw text, apply the entry point's duplicate policy, insert
// with creation snapshots, and attach tags.
func (srv *highlightService) Ingest(ctx context.Context, input usecase.IngestInput) (*entity.Highlight, bool, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, false, errors.Wrap(domainerrors.ErrValidationFailed, "highlight text must not be empty")
	}

	var (
		result  *entity.Highlight
		created bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sources := repoFactory.NewSourceRepository()
		highlights := repoFactory.NewHighlightRepository()
		tags := repoFactory.NewTagRepository()

		source, page, err := resolveSource(ctx, sources, input.UserID, input.URL, input.Title, input.Author)
		if err != nil {
			return err
		}

		var sourceID *uuid.UUID
		fp := ""
		if source != nil {
			id := source.ID
			sourceID = &id
			fp = fingerprint.Key(source.ID.String(), input.Text)
		}

		if input.Dedupe && fp != "" {
			existing, findErr := highlights.FindDuplicate(ctx, input.UserID, source.ID, fp, input.Text)
			if findErr == nil {
				result = existing

				return nil
			}
			if !errors.Is(findErr, repository.ErrHighlightNotFound) {
				return errors.Wrap(findErr, "failed to check for duplicate highlight")
			}
		}

		highlight := &entity.Highlight{
			UserID:            input.UserID,
			SourceID:          sourceID,
			DeviceID:          input.DeviceID,
			URL:               page.URL,
			PageTitle:         page.Title,
			PageAuthor:        page.Author,
			Text:              input.Text,
			Note:              input.Note,
			Location:          input.Location,
			Status:            entity.HighlightStatusActive,
			OriginalText:      input.Text,
			OriginalNote:      input.Note,
			ImportFingerprint: fp,
		}

		if err := srv.insertHighlight(ctx, highlights, highlight, input, source, &result); err != nil {
			return err
		}
		if result != nil {
			// An existing duplicate was returned instead of a new row.
			return nil
		}

		for _, name := range splitTagList(input.TagsCSV) {
			tag, tagErr := findOrCreateTag(ctx, tags, input.UserID, name)
			if tagErr != nil {
				return tagErr
			}
			if attachErr := highlights.AttachTag(ctx, highlight.ID, tag.ID); attachErr != nil {
				return errors.Wrap(attachErr, "failed to attach tag")
			}
			highlight.Tags = append(highlight.Tags, tag)
		}

		result = highlight
		created = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute ingest transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, false, errors.Wrap(err, "failed to execute highlight ingest transaction")
	}

	return result, created, nil
}

// insertHighlight persists the new row, falling back per the duplicate policy
// when the fingerprint index rejects it. With dedup on, the existing row is
// re-read and handed back through result. With dedup off (a deliberate re-add)
// the insert is retried with an empty fingerprint, leaving the dedup key on
// the original row.
func (srv *highlightService) insertHighlight(
	ctx context.Context,
	highlights repository.HighlightRepository,
	highlight *entity.Highlight,
	input usecase.IngestInput,
	source *entity.Source,
	result **entity.Highlight,
) error {
	err := highlights.CreateHighlight(ctx, highlight)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrDuplicateHighlight) {
		return errors.Wrap(err, "failed to create highlight")
	}

	if input.Dedupe {
		existing, findErr := highlights.FindDuplicate(ctx, input.UserID, source.ID, highlight.ImportFingerprint, input.Text)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load highlight behind duplicate import")
		}
		*result = existing

		return nil
	}

	highlight.ImportFingerprint = ""
	if retryErr := highlights.CreateHighlight(ctx, highlight); retryErr != nil {
		return errors.Wrap(retryErr, "failed to create re-added highlight")
	}

	return nil
}

// GetHighlight retrieves one highlight with its tags.
func (srv *highlightService) GetHighlight(ctx context.Context, userID, id uuid.UUID) (*entity.Highlight, error) {
	highlight, err := srv.highlightRepo.FindHighlightByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrHighlightNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHighlightNotFound, "highlight not found")
		}

		return nil, errors.Wrap(err, "failed to find highlight by id")
	}

	return highlight, nil
}

// SearchHighlights retrieves the user's highlights matching the query and filters.
func (srv *highlightService) SearchHighlights(ctx context.Context, userID uuid.UUID, input usecase.SearchHighlightsInput) ([]*entity.Highlight, error) {
	status := input.Status
	if status == "" {
		status = entity.HighlightStatusActive
	}
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status %q", input.Status)
	}

	sort := input.Sort
	if sort == "" {
		sort = repository.HighlightSortNewest
	}
	if !sort.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown sort %q", input.Sort)
	}

	search := repository.HighlightSearch{
		Query:        strings.TrimSpace(input.Query),
		SourceID:     input.SourceID,
		TagName:      strings.TrimSpace(input.TagName),
		FavoriteOnly: input.FavoriteOnly,
		Status:       status,
		Sort:         sort,
		Limit:        input.Limit,
	}

	results, err := srv.highlightRepo.SearchHighlights(ctx, userID, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search highlights")
	}

	return results, nil
}

// UpdateHighlight edits a highlight. The creation snapshots are never touched.
// When the edit re-resolves the source, the fingerprint is recomputed from the
// original text; a collision with another row clears it instead of failing.
func (srv *highlightService) UpdateHighlight(ctx context.Context, userID, id uuid.UUID, input usecase.UpdateHighlightInput) (*entity.Highlight, error) {
	if input.Text != nil && strings.TrimSpace(*input.Text) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "highlight text must not be empty")
	}

	var result *entity.Highlight

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		highlights := repoFactory.NewHighlightRepository()
		sources := repoFactory.NewSourceRepository()
		tags := repoFactory.NewTagRepository()

		highlight, err := highlights.FindHighlightByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, repository.ErrHighlightNotFound) {
				return errors.Wrap(domainerrors.ErrHighlightNotFound, "highlight not found")
			}

			return errors.Wrap(err, "failed to find highlight by id")
		}

		if input.Text != nil {
			highlight.Text = *input.Text
		}
		if input.Note != nil {
			highlight.Note = *input.Note
		}
		if input.Location != nil {
			highlight.Location = input.Location
		}

		sourceMoved := false
		if input.URL != nil || input.Title != nil {
			if err := srv.reattachSource(ctx, sources, highlight, input); err != nil {
				return err
			}
			sourceMoved = true
		}

		if err := highlights.UpdateHighlight(ctx, highlight); err != nil {
			if !errors.Is(err, repository.ErrDuplicateHighlight) {
				return errors.Wrap(err, "failed to update highlight")
			}
			// The recomputed fingerprint collides with another row.
			highlight.ImportFingerprint = ""
			if retryErr := highlights.UpdateHighlight(ctx, highlight); retryErr != nil {
				return errors.Wrap(retryErr, "failed to update highlight without fingerprint")
			}
		}

		if input.Tags != nil {
			if err := srv.replaceTags(ctx, highlights, tags, highlight, input.Tags); err != nil {
				return err
			}
		}

		if sourceMoved {
			if _, err := sources.DeleteOrphanSources(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to sweep orphan sources")
			}
		}

		result = highlight

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute highlight update transaction", slog.Any("highlightID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute highlight update transaction")
	}

	return result, nil
}

// reattachSource re-resolves the highlight's source from the edited url/title,
// replaces the page-level provenance with the resolver's outputs, and recomputes
// the fingerprint from the original text against the new source.
func (srv *highlightService) reattachSource(ctx context.Context, sources repository.SourceRepository, highlight *entity.Highlight, input usecase.UpdateHighlightInput) error {
	var rawURL, title, author string
	if input.URL != nil {
		rawURL = *input.URL
	}
	if input.Title != nil {
		title = *input.Title
	}
	if input.Author != nil {
		author = *input.Author
	}

	source, page, err := resolveSource(ctx, sources, highlight.UserID, rawURL, title, author)
	if err != nil {
		return err
	}

	highlight.URL = page.URL
	highlight.PageTitle = page.Title
	highlight.PageAuthor = page.Author

	if source == nil {
		highlight.SourceID = nil
		highlight.ImportFingerprint = ""

		return nil
	}

	id := source.ID
	highlight.SourceID = &id
	highlight.ImportFingerprint = fingerprint.Key(source.ID.String(), highlight.OriginalText)

	return nil
}

func (srv *highlightService) replaceTags(
	ctx context.Context,
	highlights repository.HighlightRepository,
	tags repository.TagRepository,
	highlight *entity.Highlight,
	names []string,
) error {
	resolved := make([]*entity.Tag, 0, len(names))
	ids := make([]uuid.UUID, 0, len(names))

	for _, name := range normalizeTagNames(names) {
		tag, err := findOrCreateTag(ctx, tags, highlight.UserID, name)
		if err != nil {
			return err
		}
		resolved = append(resolved, tag)
		ids = append(ids, tag.ID)
	}

	if err := highlights.ReplaceTags(ctx, highlight.ID, ids); err != nil {
		return errors.Wrap(err, "failed to replace tags")
	}
	highlight.Tags = resolved

	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (srv *highlightService) ToggleFavorite(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	highlight, err := srv.GetHighlight(ctx, userID, id)
	if err != nil {
		return false, err
	}

	highlight.IsFavorite = !highlight.IsFavorite
	if err := srv.highlightRepo.UpdateHighlight(ctx, highlight); err != nil {
		return false, errors.Wrap(err, "failed to update highlight")
	}

	return highlight.IsFavorite, nil
}

// ToggleArchive flips the highlight between active and archived. Archiving
// drops the highlight's reminders and sweeps sources left without any active
// highlight; unarchiving simply restores the row.
func (srv *highlightService) ToggleArchive(ctx context.Context, userID, id uuid.UUID) (entity.HighlightStatus, error) {
	var newStatus entity.HighlightStatus

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		highlights := repoFactory.NewHighlightRepository()
		reminders := repoFactory.NewReminderRepository()
		sources := repoFactory.NewSourceRepository()

		highlight, err := highlights.FindHighlightByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, repository.ErrHighlightNotFound) {
				return errors.Wrap(domainerrors.ErrHighlightNotFound, "highlight not found")
			}

			return errors.Wrap(err, "failed to find highlight by id")
		}

		if highlight.IsActive() {
			highlight.Status = entity.HighlightStatusArchived
		} else {
			highlight.Status = entity.HighlightStatusActive
		}

		if err := highlights.UpdateHighlight(ctx, highlight); err != nil {
			return errors.Wrap(err, "failed to update highlight status")
		}

		if highlight.Status == entity.HighlightStatusArchived {
			if err := reminders.DeleteRemindersByHighlight(ctx, userID, highlight.ID); err != nil {
				return errors.Wrap(err, "failed to delete highlight reminders")
			}
			if _, err := sources.DeleteOrphanSources(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to sweep orphan sources")
			}
		}

		newStatus = highlight.Status

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute archive toggle transaction", slog.Any("highlightID", id), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to execute archive toggle transaction")
	}

	return newStatus, nil
}

// AddTag attaches a named tag, creating the tag if it does not exist yet.
// Re-adding an attached tag leaves the highlight unchanged.
func (srv *highlightService) AddTag(ctx context.Context, userID, highlightID uuid.UUID, name string) (*entity.Highlight, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "tag name must not be empty")
	}

	highlight, err := srv.GetHighlight(ctx, userID, highlightID)
	if err != nil {
		return nil, err
	}

	tag, err := findOrCreateTag(ctx, srv.tagRepo, userID, name)
	if err != nil {
		return nil, err
	}

	if err := srv.highlightRepo.AttachTag(ctx, highlight.ID, tag.ID); err != nil {
		return nil, errors.Wrap(err, "failed to attach tag")
	}

	return srv.GetHighlight(ctx, userID, highlightID)
}

// RemoveTag detaches a named tag. Removing a tag that is absent, or that does
// not exist at all, is a no-op.
func (srv *highlightService) RemoveTag(ctx context.Context, userID, highlightID uuid.UUID, name string) (*entity.Highlight, error) {
	highlight, err := srv.GetHighlight(ctx, userID, highlightID)
	if err != nil {
		return nil, err
	}

	tag, err := srv.tagRepo.FindTagByName(ctx, userID, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return highlight, nil
		}

		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	if err := srv.highlightRepo.DetachTag(ctx, highlight.ID, tag.ID); err != nil {
		return nil, errors.Wrap(err, "failed to detach tag")
	}

	return srv.GetHighlight(ctx, userID, highlightID)
}

// ListTags returns all of the user's tags ordered by name.
func (srv *highlightService) ListTags(ctx context.Context, userID uuid.UUID) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.ListTagsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags by user")
	}

	return tags, nil
}

// splitTagList turns a comma-separated tag string into trimmed, de-duplicated names.
func splitTagList(csv string) []string {
	return normalizeTagNames(strings.Split(csv, ","))
}

func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

func findOrCreateTag(ctx context.Context, tags repository.TagRepository, userID uuid.UUID, name string) (*entity.Tag, error) {
	tag, err := tags.FindTagByName(ctx, userID, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, repository.ErrTagNotFound) {
		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	tag = &entity.Tag{UserID: userID, Name: name}
	if err := tags.CreateTag(ctx, tag); err != nil {
		return nil, errors.Wrap(err, "failed to create tag")
	}

	return tag, nil
}
