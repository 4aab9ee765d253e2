package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	mockRepo "excerpta/internal/mocks/repository"
	mockService "excerpta/internal/mocks/service"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service        usecase.CollectionUsecase
	collectionRepo *mockRepo.MockCollectionRepository
	highlightRepo  *mockRepo.MockHighlightRepository
	clock          *mockService.MockClock
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	collectionRepo := mockRepo.NewMockCollectionRepository(t)
	highlightRepo := mockRepo.NewMockHighlightRepository(t)
	clock := mockService.NewMockClock(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCollectionService(CollectionServiceParams{
		CollectionRepo: collectionRepo,
		HighlightRepo:  highlightRepo,
		Clock:          clock,
		Logger:         logger,
	})

	return collectionServiceFixtures{
		service:        svc,
		collectionRepo: collectionRepo,
		highlightRepo:  highlightRepo,
		clock:          clock,
	}
}

func TestCollectionService_CreateCollection_TrimsFields(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.collectionRepo.EXPECT().
		CreateCollection(ctx, mock.AnythingOfType("*entity.Collection")).
		Run(func(ctx context.Context, collection *entity.Collection) {
			collection.ID = uuid.New()
			assert.Equal(t, "Stoicism", collection.Name)
			assert.Equal(t, "Quotes to revisit", collection.Description)
		}).
		Return(nil)

	collection, err := fx.service.CreateCollection(ctx, userID, usecase.CollectionInput{
		Name:        "  Stoicism  ",
		Description: " Quotes to revisit ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Stoicism", collection.Name)
}

func TestCollectionService_CreateCollection_EmptyNameRejected(t *testing.T) {
	fx := createTestCollectionService(t)

	_, err := fx.service.CreateCollection(context.Background(), uuid.New(), usecase.CollectionInput{Name: "   "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCollectionService_UpdateCollection_EmptyNameRejected(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	collection := &entity.Collection{ID: uuid.New(), UserID: userID, Name: "Stoicism"}

	fx.collectionRepo.EXPECT().FindCollectionByID(ctx, userID, collection.ID).Return(collection, nil)

	_, err := fx.service.UpdateCollection(ctx, userID, collection.ID, usecase.CollectionInput{Name: " "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCollectionService_AddHighlight_StampsMembership(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	collection := &entity.Collection{ID: uuid.New(), UserID: userID, Name: "Stoicism"}
	highlight := &entity.Highlight{ID: uuid.New(), UserID: userID}
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	fx.collectionRepo.EXPECT().FindCollectionByID(ctx, userID, collection.ID).Return(collection, nil)
	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.collectionRepo.EXPECT().
		AddHighlight(ctx, mock.AnythingOfType("*entity.CollectionItem")).
		Run(func(ctx context.Context, item *entity.CollectionItem) {
			assert.Equal(t, collection.ID, item.CollectionID)
			assert.Equal(t, highlight.ID, item.HighlightID)
			assert.True(t, now.Equal(item.AddedAt))
		}).
		Return(nil)

	status, err := fx.service.AddHighlight(ctx, userID, collection.ID, highlight.ID)

	require.NoError(t, err)
	assert.Equal(t, usecase.MembershipAdded, status)
}

func TestCollectionService_AddHighlight_ExistingMemberReportsStatus(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	collection := &entity.Collection{ID: uuid.New(), UserID: userID, Name: "Stoicism"}
	highlight := &entity.Highlight{ID: uuid.New(), UserID: userID}

	fx.collectionRepo.EXPECT().FindCollectionByID(ctx, userID, collection.ID).Return(collection, nil)
	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlight.ID).Return(highlight, nil)
	fx.clock.EXPECT().Now().Return(time.Now())
	fx.collectionRepo.EXPECT().
		AddHighlight(ctx, mock.AnythingOfType("*entity.CollectionItem")).
		Return(repository.ErrCollectionItemExists)

	status, err := fx.service.AddHighlight(ctx, userID, collection.ID, highlight.ID)

	require.NoError(t, err)
	assert.Equal(t, usecase.MembershipAlreadyExists, status)
}

func TestCollectionService_AddHighlight_ForeignHighlightRejected(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	collection := &entity.Collection{ID: uuid.New(), UserID: userID, Name: "Stoicism"}
	highlightID := uuid.New()

	fx.collectionRepo.EXPECT().FindCollectionByID(ctx, userID, collection.ID).Return(collection, nil)
	fx.highlightRepo.EXPECT().
		FindHighlightByID(ctx, userID, highlightID).
		Return(nil, repository.ErrHighlightNotFound)

	_, err := fx.service.AddHighlight(ctx, userID, collection.ID, highlightID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHighlightNotFound))
}

func TestCollectionService_RemoveHighlight_NonMemberReportsStatus(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	collection := &entity.Collection{ID: uuid.New(), UserID: userID, Name: "Stoicism"}
	highlightID := uuid.New()

	fx.collectionRepo.EXPECT().FindCollectionByID(ctx, userID, collection.ID).Return(collection, nil)
	fx.collectionRepo.EXPECT().
		RemoveHighlight(ctx, collection.ID, highlightID).
		Return(repository.ErrCollectionItemNotFound)

	status, err := fx.service.RemoveHighlight(ctx, userID, collection.ID, highlightID)

	require.NoError(t, err)
	assert.Equal(t, usecase.MembershipNotFound, status)
}

func TestCollectionService_RemoveHighlight_Success(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	collection := &entity.Collection{ID: uuid.New(), UserID: userID, Name: "Stoicism"}
	highlightID := uuid.New()

	fx.collectionRepo.EXPECT().FindCollectionByID(ctx, userID, collection.ID).Return(collection, nil)
	fx.collectionRepo.EXPECT().RemoveHighlight(ctx, collection.ID, highlightID).Return(nil)

	status, err := fx.service.RemoveHighlight(ctx, userID, collection.ID, highlightID)

	require.NoError(t, err)
	assert.Equal(t, usecase.MembershipRemoved, status)
}

func TestCollectionService_ListHighlights_OtherUsersCollectionHidden(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	collectionID := uuid.New()

	fx.collectionRepo.EXPECT().
		FindCollectionByID(ctx, userID, collectionID).
		Return(nil, repository.ErrCollectionNotFound)

	_, err := fx.service.ListHighlights(ctx, userID, collectionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCollectionNotFound))
}
