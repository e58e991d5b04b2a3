package client

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"morinolab/site/internal/assets"
	"morinolab/site/internal/domain"
)

var linkAttributes = []string{"href", "src", "poster"}

type articleParser struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
	resolver *assets.Resolver
}

func newArticleParser(resolver *assets.Resolver) *articleParser {
	// raw HTML inside Markdown is allowed here and cleaned by the policy afterwards
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	return &articleParser{
		markdown: md,
		policy:   bluemonday.UGCPolicy(),
		resolver: resolver,
	}
}

func (p *articleParser) ParseMarkdown(contentType domain.ContentType, id, source, markdown string) (*domain.Article, error) {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(markdown), &buf); err != nil {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("failed to render markdown: %w", err)}
	}

	html, err := p.finalize(contentType, id, source, buf.String())
	if err != nil {
		return nil, err
	}

	return &domain.Article{
		ContentType: contentType,
		ID:          id,
		Format:      domain.ArticleFormatMarkdown,
		HTML:        html,
		BaseDir:     p.resolver.ArticleDir(contentType, id),
	}, nil
}

// ParseLegacyHTML handles the pre-rendered article.html files, keeping only the body contents
func (p *articleParser) ParseLegacyHTML(contentType domain.ContentType, id, source, page string) (*domain.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("failed to parse HTML: %w", err)}
	}

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("failed to extract body: %w", err)}
	}

	html, err := p.finalize(contentType, id, source, body)
	if err != nil {
		return nil, err
	}

	return &domain.Article{
		ContentType: contentType,
		ID:          id,
		Format:      domain.ArticleFormatLegacy,
		HTML:        html,
		BaseDir:     p.resolver.ArticleDir(contentType, id),
	}, nil
}

// finalize sanitizes the fragment and points relative links at the item's asset directory
func (p *articleParser) finalize(contentType domain.ContentType, id, source, fragment string) (string, error) {
	clean := p.policy.Sanitize(fragment)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return "", &ParseError{Source: source, Err: fmt.Errorf("failed to parse sanitized HTML: %w", err)}
	}

	rewritten := 0
	for _, attr := range linkAttributes {
		doc.Find("[" + attr + "]").Each(func(i int, s *goquery.Selection) {
			link, _ := s.Attr(attr)
			resolved := p.resolver.ResolveArticleLink(contentType, id, link)
			if resolved != link {
				s.SetAttr(attr, resolved)
				rewritten++
			}
		})
	}

	html, err := doc.Find("body").First().Html()
	if err != nil {
		return "", &ParseError{Source: source, Err: fmt.Errorf("failed to serialize article: %w", err)}
	}

	log.Debugf("Rendered article %s/%s: %d links rewritten", contentType, id, rewritten)
	return strings.TrimSpace(html), nil
}
