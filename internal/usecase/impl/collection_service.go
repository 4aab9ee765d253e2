package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "excerpta/internal/delivery/context"
	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	"excerpta/internal/domain/service"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	collectionRepo repository.CollectionRepository
	highlightRepo  repository.HighlightRepository
	clock          service.Clock
	logger         *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	CollectionRepo repository.CollectionRepository
	HighlightRepo  repository.HighlightRepository
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		collectionRepo: params.CollectionRepo,
		highlightRepo:  params.HighlightRepo,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCollection creates a new named collection.
func (srv *collectionService) CreateCollection(ctx context.Context, userID uuid.UUID, input usecase.CollectionInput) (*entity.Collection, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "collection name must not be empty")
	}

	collection := &entity.Collection{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := srv.collectionRepo.CreateCollection(ctx, collection); err != nil {
		return nil, errors.Wrap(err, "failed to create collection")
	}

	srv.log(ctx).Debug("Collection created", slog.Any("collectionID", collection.ID))

	return collection, nil
}

// ListCollections returns all of the user's collections, newest first.
func (srv *collectionService) ListCollections(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	collections, err := srv.collectionRepo.ListCollectionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections by user")
	}

	return collections, nil
}

// GetCollection retrieves one collection.
func (srv *collectionService) GetCollection(ctx context.Context, userID, id uuid.UUID) (*entity.Collection, error) {
	return srv.findOwnedCollection(ctx, userID, id)
}

// UpdateCollection renames a collection or changes its description.
func (srv *collectionService) UpdateCollection(ctx context.Context, userID, id uuid.UUID, input usecase.CollectionInput) (*entity.Collection, error) {
	collection, err := srv.findOwnedCollection(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "collection name must not be empty")
	}
	collection.Name = name
	collection.Description = strings.TrimSpace(input.Description)

	if err := srv.collectionRepo.UpdateCollection(ctx, collection); err != nil {
		return nil, errors.Wrap(err, "failed to update collection")
	}

	return collection, nil
}

// DeleteCollection removes a collection and its membership rows.
func (srv *collectionService) DeleteCollection(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.collectionRepo.DeleteCollection(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return errors.Wrap(domainerrors.ErrCollectionNotFound, "collection not found")
		}

		return errors.Wrap(err, "failed to delete collection")
	}

	return nil
}

// AddHighlight puts a highlight into a collection. Both sides are checked for
// ownership; adding an existing member reports the status instead of failing.
func (srv *collectionService) AddHighlight(ctx context.Context, userID, collectionID, highlightID uuid.UUID) (usecase.MembershipStatus, error) {
	collection, err := srv.findOwnedCollection(ctx, userID, collectionID)
	if err != nil {
		return "", err
	}

	if _, err := srv.highlightRepo.FindHighlightByID(ctx, userID, highlightID); err != nil {
		if errors.Is(err, repository.ErrHighlightNotFound) {
			return "", errors.Wrap(domainerrors.ErrHighlightNotFound, "highlight not found")
		}

		return "", errors.Wrap(err, "failed to find highlight by id")
	}

	item := &entity.CollectionItem{
		CollectionID: collection.ID,
		HighlightID:  highlightID,
		AddedAt:      srv.clock.Now(),
	}
	if err := srv.collectionRepo.AddHighlight(ctx, item); err != nil {
		if errors.Is(err, repository.ErrCollectionItemExists) {
			return usecase.MembershipAlreadyExists, nil
		}

		return "", errors.Wrap(err, "failed to add highlight to collection")
	}

	return usecase.MembershipAdded, nil
}

// RemoveHighlight takes a highlight out of a collection. Removing a non-member
// reports the status instead of failing.
func (srv *collectionService) RemoveHighlight(ctx context.Context, userID, collectionID, highlightID uuid.UUID) (usecase.MembershipStatus, error) {
	collection, err := srv.findOwnedCollection(ctx, userID, collectionID)
	if err != nil {
		return "", err
	}

	if err := srv.collectionRepo.RemoveHighlight(ctx, collection.ID, highlightID); err != nil {
		if errors.Is(err, repository.ErrCollectionItemNotFound) {
			return usecase.MembershipNotFound, nil
		}

		return "", errors.Wrap(err, "failed to remove highlight from collection")
	}

	return usecase.MembershipRemoved, nil
}

// ListHighlights returns a collection's members ordered by when they were added.
func (srv *collectionService) ListHighlights(ctx context.Context, userID, collectionID uuid.UUID) ([]*entity.Highlight, error) {
	if _, err := srv.findOwnedCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}

	highlights, err := srv.collectionRepo.ListHighlights(ctx, userID, collectionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection highlights")
	}

	return highlights, nil
}

func (srv *collectionService) findOwnedCollection(ctx context.Context, userID, id uuid.UUID) (*entity.Collection, error) {
	collection, err := srv.collectionRepo.FindCollectionByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCollectionNotFound, "collection not found")
		}

		return nil, errors.Wrap(err, "failed to find collection by id")
	}

	return collection, nil
}
