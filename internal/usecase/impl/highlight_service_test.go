package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/fingerprint"
	"excerpta/internal/domain/repository"
	mockRepo "excerpta/internal/mocks/repository"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// highlightServiceFixtures holds all test dependencies for highlight service tests.
type highlightServiceFixtures struct {
	service       usecase.HighlightUsecase
	txManager     *mockRepo.MockTransactionManager
	highlightRepo *mockRepo.MockHighlightRepository
	tagRepo       *mockRepo.MockTagRepository
}

func createTestHighlightService(t *testing.T) highlightServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	highlightRepo := mockRepo.NewMockHighlightRepository(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewHighlightService(HighlightServiceParams{
		TxManager:     txManager,
		HighlightRepo: highlightRepo,
		TagRepo:       tagRepo,
		Logger:        logger,
	})

	return highlightServiceFixtures{
		service:       svc,
		txManager:     txManager,
		highlightRepo: highlightRepo,
		tagRepo:       tagRepo,
	}
}

// ingestMocks bundles the transaction-scoped repositories an ingest run touches.
type ingestMocks struct {
	factory    *mockRepo.MockRepositoryFactory
	sources    *mockRepo.MockSourceRepository
	highlights *mockRepo.MockHighlightRepository
	tags       *mockRepo.MockTagRepository
}

func newIngestMocks(t *testing.T) ingestMocks {
	m := ingestMocks{
		factory:    mockRepo.NewMockRepositoryFactory(t),
		sources:    mockRepo.NewMockSourceRepository(t),
		highlights: mockRepo.NewMockHighlightRepository(t),
		tags:       mockRepo.NewMockTagRepository(t),
	}
	m.factory.EXPECT().NewSourceRepository().Return(m.sources)
	m.factory.EXPECT().NewHighlightRepository().Return(m.highlights)
	m.factory.EXPECT().NewTagRepository().Return(m.tags)

	return m
}

func expectTx(fx highlightServiceFixtures, ctx context.Context) *mockRepo.MockTransactionManager_Execute_Call {
	return fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error"))
}

func TestHighlightService_Ingest_CreatesWithFingerprintAndTags(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.SourceTypeWeb,
		Web:    &entity.WebSource{Domain: "example.com"},
	}
	input := usecase.IngestInput{
		UserID:  userID,
		Text:    "To be is to do.",
		Note:    "a note",
		TagsCSV: "philosophy, reading, philosophy",
		URL:     "https://example.com/essay",
		Title:   "An Essay",
		Author:  "Someone",
		Dedupe:  false,
	}
	wantFP := fingerprint.Key(source.ID.String(), input.Text)
	highlightID := uuid.New()
	tagIDs := map[string]uuid.UUID{
		"philosophy": uuid.New(),
		"reading":    uuid.New(),
	}

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		m.sources.EXPECT().FindWebSourceByDomain(ctx, userID, "example.com").Return(source, nil)

		m.highlights.EXPECT().
			CreateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Run(func(ctx context.Context, highlight *entity.Highlight) {
				highlight.ID = highlightID
				assert.Equal(t, wantFP, highlight.ImportFingerprint)
				assert.Equal(t, input.Text, highlight.OriginalText)
				assert.Equal(t, input.Note, highlight.OriginalNote)
				assert.Equal(t, entity.HighlightStatusActive, highlight.Status)
				assert.Equal(t, "https://example.com/essay", highlight.URL)
				assert.Equal(t, "An Essay", highlight.PageTitle)
				assert.Equal(t, "Someone", highlight.PageAuthor)
			}).
			Return(nil)

		m.tags.EXPECT().
			CreateTag(ctx, mock.AnythingOfType("*entity.Tag")).
			Run(func(ctx context.Context, created *entity.Tag) {
				created.ID = tagIDs[created.Name]
			}).
			Return(nil)
		for name, tagID := range tagIDs {
			m.tags.EXPECT().FindTagByName(ctx, userID, name).Return(nil, repository.ErrTagNotFound)
			m.highlights.EXPECT().AttachTag(ctx, highlightID, tagID).Return(nil)
		}

		return fn(m.factory)
	})

	highlight, created, err := fx.service.Ingest(ctx, input)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, wantFP, highlight.ImportFingerprint)
	assert.Len(t, highlight.Tags, 2)
}

func TestHighlightService_Ingest_DedupeSuppressesDuplicate(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}
	existing := &entity.Highlight{ID: uuid.New(), UserID: userID, Text: "To be is to do."}
	input := usecase.IngestInput{
		UserID: userID,
		Text:   "To be is to do.",
		URL:    "https://example.com/essay",
		Dedupe: true,
	}
	fp := fingerprint.Key(source.ID.String(), input.Text)

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		m.sources.EXPECT().FindWebSourceByDomain(ctx, userID, "example.com").Return(source, nil)
		m.highlights.EXPECT().FindDuplicate(ctx, userID, source.ID, fp, input.Text).Return(existing, nil)

		return fn(m.factory)
	})

	highlight, created, err := fx.service.Ingest(ctx, input)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, highlight.ID)
}

func TestHighlightService_Ingest_DedupeMapsInsertConflictToExisting(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}
	existing := &entity.Highlight{ID: uuid.New(), UserID: userID, Text: "To be is to do."}
	input := usecase.IngestInput{
		UserID: userID,
		Text:   "To be is to do.",
		URL:    "https://example.com/essay",
		Dedupe: true,
	}
	fp := fingerprint.Key(source.ID.String(), input.Text)

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		m.sources.EXPECT().FindWebSourceByDomain(ctx, userID, "example.com").Return(source, nil)

		// A concurrent import slipped in between the check and the insert.
		m.highlights.EXPECT().
			FindDuplicate(ctx, userID, source.ID, fp, input.Text).
			Return(nil, repository.ErrHighlightNotFound).
			Once()
		m.highlights.EXPECT().
			CreateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Return(repository.ErrDuplicateHighlight).
			Once()
		m.highlights.EXPECT().
			FindDuplicate(ctx, userID, source.ID, fp, input.Text).
			Return(existing, nil).
			Once()

		return fn(m.factory)
	})

	highlight, created, err := fx.service.Ingest(ctx, input)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, highlight.ID)
}

func TestHighlightService_Ingest_ReAddBypassesDedupe(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	source := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}
	input := usecase.IngestInput{
		UserID: userID,
		Text:   "To be is to do.",
		URL:    "https://example.com/essay",
		Dedupe: false,
	}

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		m.sources.EXPECT().FindWebSourceByDomain(ctx, userID, "example.com").Return(source, nil)

		// The fingerprint index rejects the re-add; it is retried without the
		// dedup key so the original row keeps it.
		m.highlights.EXPECT().
			CreateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Return(repository.ErrDuplicateHighlight).
			Once()
		m.highlights.EXPECT().
			CreateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Run(func(ctx context.Context, highlight *entity.Highlight) {
				assert.Empty(t, highlight.ImportFingerprint)
				highlight.ID = uuid.New()
			}).
			Return(nil).
			Once()

		return fn(m.factory)
	})

	highlight, created, err := fx.service.Ingest(ctx, input)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, highlight.ImportFingerprint)
}

func TestHighlightService_Ingest_NoSourceMeansNoFingerprint(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.IngestInput{
		UserID: userID,
		Text:   "A thought without provenance.",
		Dedupe: true,
	}

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		// No source, so no duplicate check even with dedup on.
		m.highlights.EXPECT().
			CreateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Run(func(ctx context.Context, highlight *entity.Highlight) {
				assert.Nil(t, highlight.SourceID)
				assert.Empty(t, highlight.ImportFingerprint)
				highlight.ID = uuid.New()
			}).
			Return(nil)

		return fn(m.factory)
	})

	highlight, created, err := fx.service.Ingest(ctx, input)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Nil(t, highlight.SourceID)
}

func TestHighlightService_Ingest_EmptyTextRejected(t *testing.T) {
	fx := createTestHighlightService(t)

	highlight, created, err := fx.service.Ingest(context.Background(), usecase.IngestInput{
		UserID: uuid.New(),
		Text:   "   ",
	})

	require.Error(t, err)
	assert.Nil(t, highlight)
	assert.False(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestHighlightService_Update_PreservesOriginalsAndRecomputesFingerprint(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()
	oldSourceID := uuid.New()
	newSource := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}
	stored := &entity.Highlight{
		ID:                highlightID,
		UserID:            userID,
		SourceID:          &oldSourceID,
		Text:              "edited before",
		OriginalText:      "the original text",
		OriginalNote:      "the original note",
		Status:            entity.HighlightStatusActive,
		ImportFingerprint: fingerprint.Key(oldSourceID.String(), "the original text"),
	}
	newText := "edited again"
	newURL := "https://other.org/page"
	wantFP := fingerprint.Key(newSource.ID.String(), "the original text")

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		m.highlights.EXPECT().FindHighlightByID(ctx, userID, highlightID).Return(stored, nil)
		m.sources.EXPECT().FindWebSourceByDomain(ctx, userID, "other.org").Return(newSource, nil)

		m.highlights.EXPECT().
			UpdateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Run(func(ctx context.Context, highlight *entity.Highlight) {
				assert.Equal(t, newText, highlight.Text)
				assert.Equal(t, "the original text", highlight.OriginalText)
				assert.Equal(t, "the original note", highlight.OriginalNote)
				assert.Equal(t, wantFP, highlight.ImportFingerprint)
				require.NotNil(t, highlight.SourceID)
				assert.Equal(t, newSource.ID, *highlight.SourceID)
				assert.Equal(t, "https://other.org/page", highlight.URL)
			}).
			Return(nil)

		m.sources.EXPECT().DeleteOrphanSources(ctx, userID).Return(1, nil)

		return fn(m.factory)
	})

	updated, err := fx.service.UpdateHighlight(ctx, userID, highlightID, usecase.UpdateHighlightInput{
		Text: &newText,
		URL:  &newURL,
	})

	require.NoError(t, err)
	assert.Equal(t, wantFP, updated.ImportFingerprint)
	assert.Equal(t, "the original text", updated.OriginalText)
}

func TestHighlightService_Update_MoveToBookClearsPageProvenance(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()
	oldSourceID := uuid.New()
	book := &entity.Source{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.SourceTypeBook,
		Book:   &entity.BookSource{Title: "Meditations", Author: "Marcus Aurelius"},
	}
	stored := &entity.Highlight{
		ID:           highlightID,
		UserID:       userID,
		SourceID:     &oldSourceID,
		URL:          "https://example.com/essay",
		PageTitle:    "An Essay",
		PageAuthor:   "Someone",
		Text:         "the text",
		OriginalText: "the text",
		Status:       entity.HighlightStatusActive,
	}
	newTitle := "Meditations"

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		m.highlights.EXPECT().FindHighlightByID(ctx, userID, highlightID).Return(stored, nil)
		m.sources.EXPECT().FindBookSourceByTitle(ctx, userID, "Meditations").Return(book, nil)

		m.highlights.EXPECT().
			UpdateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Run(func(ctx context.Context, highlight *entity.Highlight) {
				assert.Empty(t, highlight.URL)
				assert.Empty(t, highlight.PageTitle)
				assert.Empty(t, highlight.PageAuthor)
				require.NotNil(t, highlight.SourceID)
				assert.Equal(t, book.ID, *highlight.SourceID)
				assert.Equal(t, fingerprint.Key(book.ID.String(), "the text"), highlight.ImportFingerprint)
			}).
			Return(nil)

		m.sources.EXPECT().DeleteOrphanSources(ctx, userID).Return(1, nil)

		return fn(m.factory)
	})

	updated, err := fx.service.UpdateHighlight(ctx, userID, highlightID, usecase.UpdateHighlightInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Empty(t, updated.URL)
}

func TestHighlightService_Update_FingerprintCollisionCleared(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()
	newSource := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}
	stored := &entity.Highlight{
		ID:           highlightID,
		UserID:       userID,
		Text:         "same text",
		OriginalText: "same text",
		Status:       entity.HighlightStatusActive,
	}
	newURL := "https://other.org/page"

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		m := newIngestMocks(t)

		m.highlights.EXPECT().FindHighlightByID(ctx, userID, highlightID).Return(stored, nil)
		m.sources.EXPECT().FindWebSourceByDomain(ctx, userID, "other.org").Return(newSource, nil)

		// Another highlight on the target source already owns this fingerprint.
		m.highlights.EXPECT().
			UpdateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Return(repository.ErrDuplicateHighlight).
			Once()
		m.highlights.EXPECT().
			UpdateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Run(func(ctx context.Context, highlight *entity.Highlight) {
				assert.Empty(t, highlight.ImportFingerprint)
			}).
			Return(nil).
			Once()

		m.sources.EXPECT().DeleteOrphanSources(ctx, userID).Return(0, nil)

		return fn(m.factory)
	})

	updated, err := fx.service.UpdateHighlight(ctx, userID, highlightID, usecase.UpdateHighlightInput{
		URL: &newURL,
	})

	require.NoError(t, err)
	assert.Empty(t, updated.ImportFingerprint)
}

func TestHighlightService_ToggleArchive_SweepsRemindersAndOrphans(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()
	sourceID := uuid.New()
	stored := &entity.Highlight{
		ID:       highlightID,
		UserID:   userID,
		SourceID: &sourceID,
		Text:     "to archive",
		Status:   entity.HighlightStatusActive,
	}

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		factory := mockRepo.NewMockRepositoryFactory(t)
		highlights := mockRepo.NewMockHighlightRepository(t)
		reminders := mockRepo.NewMockReminderRepository(t)
		sources := mockRepo.NewMockSourceRepository(t)
		factory.EXPECT().NewHighlightRepository().Return(highlights)
		factory.EXPECT().NewReminderRepository().Return(reminders)
		factory.EXPECT().NewSourceRepository().Return(sources)

		highlights.EXPECT().FindHighlightByID(ctx, userID, highlightID).Return(stored, nil)
		highlights.EXPECT().
			UpdateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Run(func(ctx context.Context, highlight *entity.Highlight) {
				assert.Equal(t, entity.HighlightStatusArchived, highlight.Status)
			}).
			Return(nil)
		reminders.EXPECT().DeleteRemindersByHighlight(ctx, userID, highlightID).Return(nil)
		sources.EXPECT().DeleteOrphanSources(ctx, userID).Return(1, nil)

		return fn(factory)
	})

	status, err := fx.service.ToggleArchive(ctx, userID, highlightID)

	require.NoError(t, err)
	assert.Equal(t, entity.HighlightStatusArchived, status)
}

func TestHighlightService_ToggleArchive_RestoreSkipsSweep(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()
	stored := &entity.Highlight{
		ID:     highlightID,
		UserID: userID,
		Text:   "to restore",
		Status: entity.HighlightStatusArchived,
	}

	expectTx(fx, ctx).RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
		factory := mockRepo.NewMockRepositoryFactory(t)
		highlights := mockRepo.NewMockHighlightRepository(t)
		factory.EXPECT().NewHighlightRepository().Return(highlights)
		factory.EXPECT().NewReminderRepository().Return(mockRepo.NewMockReminderRepository(t))
		factory.EXPECT().NewSourceRepository().Return(mockRepo.NewMockSourceRepository(t))

		highlights.EXPECT().FindHighlightByID(ctx, userID, highlightID).Return(stored, nil)
		highlights.EXPECT().
			UpdateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
			Return(nil)

		return fn(factory)
	})

	status, err := fx.service.ToggleArchive(ctx, userID, highlightID)

	require.NoError(t, err)
	assert.Equal(t, entity.HighlightStatusActive, status)
}

func TestHighlightService_ToggleFavorite(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()

	fx.highlightRepo.EXPECT().
		FindHighlightByID(ctx, userID, highlightID).
		Return(&entity.Highlight{ID: highlightID, UserID: userID, IsFavorite: false}, nil)
	fx.highlightRepo.EXPECT().
		UpdateHighlight(ctx, mock.AnythingOfType("*entity.Highlight")).
		Return(nil)

	isFavorite, err := fx.service.ToggleFavorite(ctx, userID, highlightID)

	require.NoError(t, err)
	assert.True(t, isFavorite)
}

func TestHighlightService_AddTag_CreatesMissingTag(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()
	stored := &entity.Highlight{ID: highlightID, UserID: userID}

	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlightID).Return(stored, nil)
	fx.tagRepo.EXPECT().FindTagByName(ctx, userID, "philosophy").Return(nil, repository.ErrTagNotFound)
	fx.tagRepo.EXPECT().
		CreateTag(ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(ctx context.Context, tag *entity.Tag) {
			tag.ID = uuid.New()
		}).
		Return(nil)
	fx.highlightRepo.EXPECT().AttachTag(ctx, highlightID, mock.AnythingOfType("uuid.UUID")).Return(nil)

	highlight, err := fx.service.AddTag(ctx, userID, highlightID, " philosophy ")

	require.NoError(t, err)
	assert.Equal(t, highlightID, highlight.ID)
}

func TestHighlightService_RemoveTag_UnknownTagIsNoOp(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()
	highlightID := uuid.New()
	stored := &entity.Highlight{ID: highlightID, UserID: userID}

	fx.highlightRepo.EXPECT().FindHighlightByID(ctx, userID, highlightID).Return(stored, nil)
	fx.tagRepo.EXPECT().FindTagByName(ctx, userID, "nonexistent").Return(nil, repository.ErrTagNotFound)

	highlight, err := fx.service.RemoveTag(ctx, userID, highlightID, "nonexistent")

	require.NoError(t, err)
	assert.Equal(t, highlightID, highlight.ID)
}

func TestHighlightService_Search_DefaultsToActiveNewest(t *testing.T) {
	fx := createTestHighlightService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.highlightRepo.EXPECT().
		SearchHighlights(ctx, userID, mock.AnythingOfType("repository.HighlightSearch")).
		Run(func(ctx context.Context, userID uuid.UUID, search repository.HighlightSearch) {
			assert.Equal(t, entity.HighlightStatusActive, search.Status)
			assert.Equal(t, repository.HighlightSortNewest, search.Sort)
		}).
		Return([]*entity.Highlight{}, nil)

	_, err := fx.service.SearchHighlights(ctx, userID, usecase.SearchHighlightsInput{Query: "  stoic  "})

	require.NoError(t, err)
}

func TestHighlightService_Search_RejectsUnknownSort(t *testing.T) {
	fx := createTestHighlightService(t)

	_, err := fx.service.SearchHighlights(context.Background(), uuid.New(), usecase.SearchHighlightsInput{
		Sort: repository.HighlightSort("loudest"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestHighlightService_Search_RejectsUnknownStatus(t *testing.T) {
	fx := createTestHighlightService(t)

	_, err := fx.service.SearchHighlights(context.Background(), uuid.New(), usecase.SearchHighlightsInput{
		Status: entity.HighlightStatus("misplaced"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
