package impl

import (
	"context"
	"testing"

	"excerpta/internal/domain/entity"
	"excerpta/internal/domain/repository"
	mockRepo "excerpta/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDomainOf(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{name: "full url", rawURL: "https://example.com/essays/1", want: "example.com"},
		{name: "bare host", rawURL: "example.com/essays/1", want: "example.com"},
		{name: "uppercase host lowered", rawURL: "https://Example.COM/x", want: "example.com"},
		{name: "port stripped", rawURL: "https://example.com:8443/x", want: "example.com"},
		{name: "surrounding whitespace", rawURL: "  https://example.com  ", want: "example.com"},
		{name: "path only", rawURL: "/just/a/path", want: ""},
		{name: "empty", rawURL: "", want: ""},
		{name: "blank", rawURL: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domainOf(tt.rawURL))
		})
	}
}

func TestResolveSource_CollapsesURLsOntoOneDomainSource(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sources := mockRepo.NewMockSourceRepository(t)
	createdID := uuid.New()

	sources.EXPECT().
		FindWebSourceByDomain(ctx, userID, "a.com").
		Return(nil, repository.ErrSourceNotFound).
		Once()
	sources.EXPECT().
		CreateSource(ctx, mock.AnythingOfType("*entity.Source")).
		Run(func(ctx context.Context, source *entity.Source) {
			source.ID = createdID
			assert.Equal(t, entity.SourceTypeWeb, source.Type)
			assert.Equal(t, "a.com", source.DisplayName)
			require.NotNil(t, source.Web)
			assert.Equal(t, "a.com", source.Web.Domain)
		}).
		Return(nil).
		Once()

	first, firstPage, err := resolveSource(ctx, sources, userID, "https://a.com/page1", "", "")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "https://a.com/page1", firstPage.URL)

	sources.EXPECT().
		FindWebSourceByDomain(ctx, userID, "a.com").
		Return(first, nil).
		Once()

	second, secondPage, err := resolveSource(ctx, sources, userID, "http://a.com/page2", "", "")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "http://a.com/page2", secondPage.URL)
}

func TestResolveSource_URLWinsOverTitle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sources := mockRepo.NewMockSourceRepository(t)
	existing := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}

	sources.EXPECT().FindWebSourceByDomain(ctx, userID, "example.com").Return(existing, nil)

	source, page, err := resolveSource(ctx, sources, userID, "https://example.com/post", "Page Heading", "Page Author")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, source.ID)
	assert.Equal(t, "https://example.com/post", page.URL)
	assert.Equal(t, "Page Heading", page.Title)
	assert.Equal(t, "Page Author", page.Author)
}

func TestResolveSource_UnparseableURLYieldsNothing(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	// No repository expectations: the title branch must not run either.
	sources := mockRepo.NewMockSourceRepository(t)

	source, page, err := resolveSource(ctx, sources, userID, "/just/a/path", "Some Book", "Some Author")

	require.NoError(t, err)
	assert.Nil(t, source)
	assert.Equal(t, pageMeta{}, page)
}

func TestResolveSource_BareHostDefaultsScheme(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sources := mockRepo.NewMockSourceRepository(t)
	existing := &entity.Source{ID: uuid.New(), UserID: userID, Type: entity.SourceTypeWeb}

	sources.EXPECT().FindWebSourceByDomain(ctx, userID, "example.com").Return(existing, nil)

	source, page, err := resolveSource(ctx, sources, userID, "example.com/post", "", "")

	require.NoError(t, err)
	require.NotNil(t, source)
	assert.Equal(t, "http://example.com/post", page.URL)
}

func TestResolveSource_CreatesBookWithAuthor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sources := mockRepo.NewMockSourceRepository(t)

	sources.EXPECT().
		FindBookSourceByTitle(ctx, userID, "Meditations").
		Return(nil, repository.ErrSourceNotFound)
	sources.EXPECT().
		CreateSource(ctx, mock.AnythingOfType("*entity.Source")).
		Run(func(ctx context.Context, source *entity.Source) {
			source.ID = uuid.New()
			assert.Equal(t, entity.SourceTypeBook, source.Type)
			require.NotNil(t, source.Book)
			assert.Equal(t, "Meditations", source.Book.Title)
			assert.Equal(t, "Marcus Aurelius", source.Book.Author)
		}).
		Return(nil)

	source, page, err := resolveSource(ctx, sources, userID, "", " Meditations ", " Marcus Aurelius ")

	require.NoError(t, err)
	require.NotNil(t, source)
	assert.Equal(t, entity.SourceTypeBook, source.Type)
	assert.Equal(t, pageMeta{}, page)
}

func TestResolveSource_BackfillsEmptyBookAuthor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sources := mockRepo.NewMockSourceRepository(t)
	existing := &entity.Source{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.SourceTypeBook,
		Book:   &entity.BookSource{Title: "Meditations"},
	}

	sources.EXPECT().FindBookSourceByTitle(ctx, userID, "Meditations").Return(existing, nil)
	sources.EXPECT().
		UpdateSource(ctx, mock.AnythingOfType("*entity.Source")).
		Run(func(ctx context.Context, source *entity.Source) {
			assert.Equal(t, "Marcus Aurelius", source.Book.Author)
		}).
		Return(nil)

	source, _, err := resolveSource(ctx, sources, userID, "", "Meditations", "Marcus Aurelius")

	require.NoError(t, err)
	assert.Equal(t, "Marcus Aurelius", source.Book.Author)
}

func TestResolveSource_NeverOverwritesExistingAuthor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sources := mockRepo.NewMockSourceRepository(t)
	existing := &entity.Source{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.SourceTypeBook,
		Book:   &entity.BookSource{Title: "Meditations", Author: "Marcus Aurelius"},
	}

	sources.EXPECT().FindBookSourceByTitle(ctx, userID, "Meditations").Return(existing, nil)

	source, _, err := resolveSource(ctx, sources, userID, "", "Meditations", "Somebody Else")

	require.NoError(t, err)
	assert.Equal(t, "Marcus Aurelius", source.Book.Author)
}

func TestResolveSource_NothingGivenResolvesToNoSource(t *testing.T) {
	source, page, err := resolveSource(context.Background(), mockRepo.NewMockSourceRepository(t), uuid.New(), "", "   ", "")

	require.NoError(t, err)
	assert.Nil(t, source)
	assert.Equal(t, pageMeta{}, page)
}
