package client

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"morinolab/site/internal/assets"
	"morinolab/site/internal/domain"
)

const (
	articleMarkdownFile = "article.md"
	articleLegacyFile   = "article.html"
)

// ContentClient loads the site's structured content. Nothing is cached:
// every call goes back to the source.
type ContentClient interface {
	Load(ctx context.Context, contentType domain.ContentType) ([]domain.Record, error)
	LoadArticle(ctx context.Context, contentType domain.ContentType, id string) (*domain.Article, error)
	LoadDetail(ctx context.Context, contentType domain.ContentType, id string) (*domain.Record, *domain.Article, error)
	Resolver() *assets.Resolver
}

type contentClient struct {
	source   Source
	resolver *assets.Resolver
	index    *indexParser
	articles *articleParser
}

func NewContentClient(source Source, resolver *assets.Resolver) ContentClient {
	return &contentClient{
		source:   source,
		resolver: resolver,
		index:    newIndexParser(),
		articles: newArticleParser(resolver),
	}
}

func (c *contentClient) Resolver() *assets.Resolver {
	return c.resolver
}

func (c *contentClient) Load(ctx context.Context, contentType domain.ContentType) ([]domain.Record, error) {
	indexPath := c.resolver.IndexPath(contentType)
	if !contentType.Valid() {
		return nil, unknownContentType(indexPath, contentType)
	}

	content, err := c.source.Fetch(ctx, indexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s index: %w", contentType, err)
	}

	records, err := c.index.ParseIndex(indexPath, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s index: %w", contentType, err)
	}

	log.Debugf("Loaded %d %s records", len(records), contentType)
	return records, nil
}

// LoadArticle prefers the Markdown source and falls back to the legacy
// pre-rendered HTML. When both are missing the legacy error is returned.
func (c *contentClient) LoadArticle(ctx context.Context, contentType domain.ContentType, id string) (*domain.Article, error) {
	mdPath := c.resolver.ArticlePath(contentType, id, articleMarkdownFile)
	if !contentType.Valid() {
		return nil, unknownContentType(mdPath, contentType)
	}

	markdown, err := c.source.Fetch(ctx, mdPath)
	if err == nil {
		return c.articles.ParseMarkdown(contentType, id, mdPath, markdown)
	}
	log.Debugf("No markdown article at %s, trying legacy HTML: %v", mdPath, err)

	htmlPath := c.resolver.ArticlePath(contentType, id, articleLegacyFile)
	page, err := c.source.Fetch(ctx, htmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %s/%s: %w", contentType, id, err)
	}

	return c.articles.ParseLegacyHTML(contentType, id, htmlPath, page)
}

func (c *contentClient) LoadDetail(ctx context.Context, contentType domain.ContentType, id string) (*domain.Record, *domain.Article, error) {
	records, err := c.Load(ctx, contentType)
	if err != nil {
		return nil, nil, err
	}

	var record *domain.Record
	for i := range records {
		if records[i].ID == id {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return nil, nil, fmt.Errorf("%w: %s/%s", ErrNotFound, contentType, id)
	}

	article, err := c.LoadArticle(ctx, contentType, id)
	if err != nil {
		return record, nil, err
	}

	return record, article, nil
}

// unknownContentType reports a type outside the known set as a missing
// resource, the same way the site answers a request for an index that was
// never exported.
func unknownContentType(resource string, contentType domain.ContentType) error {
	return &FetchError{
		URL:        resource,
		StatusCode: 404,
		Err:        fmt.Errorf("%w: %q", ErrUnknownContentType, contentType),
	}
}

// ResolveLocalizedField returns the record's field in locale l, falling back
// to the other locale and finally to "". It never fails.
func ResolveLocalizedField(record domain.Record, fieldBaseName string, l domain.Locale) string {
	return record.Localized(fieldBaseName).Resolve(l)
}
