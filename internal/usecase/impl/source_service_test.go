package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	mockRepo "excerpta/internal/mocks/repository"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sourceServiceFixtures holds all test dependencies for source service tests.
type sourceServiceFixtures struct {
	service       usecase.SourceUsecase
	sourceRepo    *mockRepo.MockSourceRepository
	highlightRepo *mockRepo.MockHighlightRepository
}

func createTestSourceService(t *testing.T) sourceServiceFixtures {
	sourceRepo := mockRepo.NewMockSourceRepository(t)
	highlightRepo := mockRepo.NewMockHighlightRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSourceService(SourceServiceParams{
		SourceRepo:    sourceRepo,
		HighlightRepo: highlightRepo,
		Logger:        logger,
	})

	return sourceServiceFixtures{
		service:       svc,
		sourceRepo:    sourceRepo,
		highlightRepo: highlightRepo,
	}
}

func TestSourceService_ListSources(t *testing.T) {
	fx := createTestSourceService(t)

	ctx := context.Background()
	userID := uuid.New()
	listed := []*repository.SourceWithCount{
		{Source: &entity.Source{ID: uuid.New(), UserID: userID}, HighlightCount: 3},
	}

	fx.sourceRepo.EXPECT().ListSourcesByUser(ctx, userID).Return(listed, nil)

	sources, err := fx.service.ListSources(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, listed, sources)
}

func TestSourceService_GetSource_IncludesHighlights(t *testing.T) {
	fx := createTestSourceService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}
	highlights := []*entity.Highlight{{ID: uuid.New(), UserID: userID}}

	fx.sourceRepo.EXPECT().FindSourceByID(ctx, userID, source.ID).Return(source, nil)
	fx.highlightRepo.EXPECT().ListHighlightsBySource(ctx, userID, source.ID).Return(highlights, nil)

	detail, err := fx.service.GetSource(ctx, userID, source.ID)

	require.NoError(t, err)
	assert.Equal(t, source, detail.Source)
	assert.Equal(t, highlights, detail.Highlights)
}

func TestSourceService_GetSource_OtherUsersSourceHidden(t *testing.T) {
	fx := createTestSourceService(t)

	ctx := context.Background()
	userID := uuid.New()
	sourceID := uuid.New()

	fx.sourceRepo.EXPECT().
		FindSourceByID(ctx, userID, sourceID).
		Return(nil, repository.ErrSourceNotFound)

	_, err := fx.service.GetSource(ctx, userID, sourceID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSourceNotFound))
}

func TestSourceService_UpdateSource_RenamesDisplayName(t *testing.T) {
	fx := createTestSourceService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         entity.SourceTypeWeb,
		OriginalName: "example.com",
		DisplayName:  "example.com",
		Web:          &entity.WebSource{Domain: "example.com"},
	}
	displayName := "  Example Essays  "

	fx.sourceRepo.EXPECT().FindSourceByID(ctx, userID, source.ID).Return(source, nil)
	fx.sourceRepo.EXPECT().
		UpdateSource(ctx, mock.AnythingOfType("*entity.Source")).
		Run(func(ctx context.Context, updated *entity.Source) {
			assert.Equal(t, "Example Essays", updated.DisplayName)
			assert.Equal(t, "example.com", updated.OriginalName)
			assert.Equal(t, "example.com", updated.Web.Domain)
		}).
		Return(nil)

	updated, err := fx.service.UpdateSource(ctx, userID, source.ID, usecase.UpdateSourceInput{
		DisplayName: &displayName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Example Essays", updated.DisplayName)
}

func TestSourceService_UpdateSource_EmptyDisplayNameRejected(t *testing.T) {
	fx := createTestSourceService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}
	displayName := "   "

	fx.sourceRepo.EXPECT().FindSourceByID(ctx, userID, source.ID).Return(source, nil)

	_, err := fx.service.UpdateSource(ctx, userID, source.ID, usecase.UpdateSourceInput{
		DisplayName: &displayName,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSourceService_UpdateSource_AuthorOnWebSourceRejected(t *testing.T) {
	fx := createTestSourceService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.SourceTypeWeb,
		Web:    &entity.WebSource{Domain: "example.com"},
	}
	author := "Marcus Aurelius"

	fx.sourceRepo.EXPECT().FindSourceByID(ctx, userID, source.ID).Return(source, nil)

	_, err := fx.service.UpdateSource(ctx, userID, source.ID, usecase.UpdateSourceInput{
		Author: &author,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSourceService_UpdateSource_SetsBookAuthor(t *testing.T) {
	fx := createTestSourceService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.SourceTypeBook,
		Book:   &entity.BookSource{Title: "Meditations"},
	}
	author := " Marcus Aurelius "

	fx.sourceRepo.EXPECT().FindSourceByID(ctx, userID, source.ID).Return(source, nil)
	fx.sourceRepo.EXPECT().
		UpdateSource(ctx, mock.AnythingOfType("*entity.Source")).
		Return(nil)

	updated, err := fx.service.UpdateSource(ctx, userID, source.ID, usecase.UpdateSourceInput{
		Author: &author,
	})

	require.NoError(t, err)
	assert.Equal(t, "Marcus Aurelius", updated.Book.Author)
}
