package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "excerpta/internal/delivery/context"
	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sourceService implements the SourceUsecase interface.
type sourceService struct {
	sourceRepo    repository.SourceRepository
	highlightRepo repository.HighlightRepository
	logger        *slog.Logger
}

// SourceServiceParams holds dependencies for sourceService, injected by Fx.
type SourceServiceParams struct {
	fx.In

	SourceRepo    repository.SourceRepository
	HighlightRepo repository.HighlightRepository
	Logger        *slog.Logger
}

// NewSourceService is the constructor for sourceService.
func NewSourceService(params SourceServiceParams) usecase.SourceUsecase {
	return &sourceService{
		sourceRepo:    params.SourceRepo,
		highlightRepo: params.HighlightRepo,
		logger:        params.Logger,
	}
}

func (srv *sourceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSources returns all of the user's sources with active-highlight counts.
func (srv *sourceService) ListSources(ctx context.Context, userID uuid.UUID) ([]*repository.SourceWithCount, error) {
	sources, err := srv.sourceRepo.ListSourcesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sources by user")
	}

	return sources, nil
}

// GetSource retrieves one source together with its active highlights.
func (srv *sourceService) GetSource(ctx context.Context, userID, id uuid.UUID) (*usecase.SourceDetailOutput, error) {
	source, err := srv.findOwnedSource(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	highlights, err := srv.highlightRepo.ListHighlightsBySource(ctx, userID, source.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list highlights by source")
	}

	return &usecase.SourceDetailOutput{
		Source:     source,
		Highlights: highlights,
	}, nil
}

// UpdateSource edits a source's presentation fields. The display name must stay
// non-empty; an author can only be set on a book source. The original name and
// the dedup identity (domain or title) are never touched.
func (srv *sourceService) UpdateSource(ctx context.Context, userID, id uuid.UUID, input usecase.UpdateSourceInput) (*entity.Source, error) {
	source, err := srv.findOwnedSource(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		displayName := strings.TrimSpace(*input.DisplayName)
		if displayName == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "display name must not be empty")
		}
		source.DisplayName = displayName
	}

	if input.Author != nil {
		if source.Type != entity.SourceTypeBook || source.Book == nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "author can only be set on book sources")
		}
		source.Book.Author = strings.TrimSpace(*input.Author)
	}

	if err := srv.sourceRepo.UpdateSource(ctx, source); err != nil {
		return nil, errors.Wrap(err, "failed to update source")
	}

	srv.log(ctx).Debug("Source updated", slog.Any("sourceID", source.ID))

	return source, nil
}

func (srv *sourceService) findOwnedSource(ctx context.Context, userID, id uuid.UUID) (*entity.Source, error) {
	source, err := srv.sourceRepo.FindSourceByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrSourceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSourceNotFound, "source not found")
		}

		return nil, errors.Wrap(err, "failed to find source by id")
	}

	return source, nil
}
