package impl

import (
	"context"
	"net/url"
	"strings"

	"excerpta/internal/domain/entity"
	"excerpta/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// normalizeRawURL defaults the scheme so bare hosts like "example.com/post"
// parse with a hostname instead of a path.
func normalizeRawURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		return "http://" + rawURL
	}

	return rawURL
}

// domainOf extracts the lowercased network domain of a URL, port stripped.
// Returns "" when no usable host can be extracted.
func domainOf(rawURL string) string {
	normalized := normalizeRawURL(rawURL)
	if normalized == "" {
		return ""
	}

	parsed, err := url.Parse(normalized)
	if err != nil {
		return ""
	}

	return strings.ToLower(parsed.Hostname())
}

// pageMeta is the page-level provenance a web capture keeps on the highlight
// itself: the exact URL plus the submitted page title and author. The Source
// only records the domain.
type pageMeta struct {
	URL    string
	Title  string
	Author string
}

// resolveSource finds or creates the source a capture belongs to. A URL wins
// over a title: the title branch is never consulted once a URL is given, even
// one with no parseable domain. All captures from one domain collapse onto one
// web source, and book titles match case-insensitively. An author supplied for
// an existing book backfills an empty author field but never overwrites one.
// Returns no source and empty page metadata when neither a usable URL nor a
// title is given.
func resolveSource(ctx context.Context, sources repository.SourceRepository, userID uuid.UUID, rawURL, title, author string) (*entity.Source, pageMeta, error) {
	if strings.TrimSpace(rawURL) != "" {
		domain := domainOf(rawURL)
		if domain == "" {
			return nil, pageMeta{}, nil
		}

		source, err := resolveWebSource(ctx, sources, userID, domain)
		if err != nil {
			return nil, pageMeta{}, err
		}

		// Title and author describe the specific page, not the domain-level
		// source; they travel with the highlight unchanged.
		return source, pageMeta{
			URL:    normalizeRawURL(rawURL),
			Title:  title,
			Author: author,
		}, nil
	}

	title = strings.TrimSpace(title)
	if title != "" {
		source, err := resolveBookSource(ctx, sources, userID, title, strings.TrimSpace(author))

		return source, pageMeta{}, err
	}

	return nil, pageMeta{}, nil
}

func resolveWebSource(ctx context.Context, sources repository.SourceRepository, userID uuid.UUID, domain string) (*entity.Source, error) {
	existing, err := sources.FindWebSourceByDomain(ctx, userID, domain)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrSourceNotFound) {
		return nil, errors.Wrap(err, "failed to find web source by domain")
	}

	source := &entity.Source{
		UserID:       userID,
		Type:         entity.SourceTypeWeb,
		OriginalName: domain,
		DisplayName:  domain,
		Web:          &entity.WebSource{Domain: domain},
	}
	if err := sources.CreateSource(ctx, source); err != nil {
		return nil, errors.Wrap(err, "failed to create web source")
	}

	return source, nil
}

func resolveBookSource(ctx context.Context, sources repository.SourceRepository, userID uuid.UUID, title, author string) (*entity.Source, error) {
	existing, err := sources.FindBookSourceByTitle(ctx, userID, title)
	if err == nil {
		if author != "" && existing.Book != nil && existing.Book.Author == "" {
			existing.Book.Author = author
			if updateErr := sources.UpdateSource(ctx, existing); updateErr != nil {
				return nil, errors.Wrap(updateErr, "failed to backfill book author")
			}
		}

		return existing, nil
	}
	if !errors.Is(err, repository.ErrSourceNotFound) {
		return nil, errors.Wrap(err, "failed to find book source by title")
	}

	source := &entity.Source{
		UserID:       userID,
		Type:         entity.SourceTypeBook,
		OriginalName: title,
		DisplayName:  title,
		Book:         &entity.BookSource{Title: title, Author: author},
	}
	if err := sources.CreateSource(ctx, source); err != nil {
		return nil, errors.Wrap(err, "failed to create book source")
	}

	return source, nil
}
