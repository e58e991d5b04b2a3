package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"morinolab/site/internal/client"
	"morinolab/site/internal/domain"
	"morinolab/site/internal/locale"
	"morinolab/site/internal/scroll"
)

// ErrSuperseded is returned when a newer navigation started before this one finished
var ErrSuperseded = errors.New("navigation superseded")

// Page is what a list page renders: one ordered record list per section
type Page struct {
	Path     string
	Locale   domain.Locale
	Sections map[domain.ContentType][]domain.Record
	Failed   []domain.ContentType // sections that degraded to empty
}

// Records returns the section's records, never nil
func (p *Page) Records(contentType domain.ContentType) []domain.Record {
	if records, ok := p.Sections[contentType]; ok {
		return records
	}
	return []domain.Record{}
}

// DetailPage is a single item with its article; Article is nil when the
// narrative could not be loaded.
type DetailPage struct {
	ContentType domain.ContentType
	Record      *domain.Record
	Article     *domain.Article
	Locale      domain.Locale
}

type Site struct {
	client  client.ContentClient
	scroll  *scroll.Store
	locale  *locale.Preference
	tracker NavigationTracker
}

func NewSite(client client.ContentClient, scroll *scroll.Store, locale *locale.Preference) *Site {
	return &Site{
		client: client,
		scroll: scroll,
		locale: locale,
	}
}

// Navigate leaves the current page for toURL: the outgoing offset is saved,
// the requested sections are loaded concurrently, and the new page's offset
// is restored. A section that fails to load renders empty. If another
// navigation began meanwhile the result is dropped and ErrSuperseded returned.
func (s *Site) Navigate(ctx context.Context, toURL string, contentTypes ...domain.ContentType) (*Page, error) {
	s.scroll.Save(ctx, "")
	token := s.tracker.Begin()

	page := &Page{
		Path:     scroll.NormalizePath(toURL),
		Sections: make(map[domain.ContentType][]domain.Record, len(contentTypes)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, contentType := range contentTypes {
		contentType := contentType
		g.Go(func() error {
			records, err := s.client.Load(gctx, contentType)
			if err != nil {
				log.Warnf("⚠️ Rendering %s on %s without content: %v", contentType, page.Path, err)
				records = []domain.Record{}
			}

			mu.Lock()
			defer mu.Unlock()
			page.Sections[contentType] = records
			if err != nil {
				page.Failed = append(page.Failed, contentType)
			}
			return nil
		})
	}
	_ = g.Wait()

	sortContentTypes(page.Failed)

	if !s.tracker.IsCurrent(token) {
		log.Debugf("Discarding stale navigation to %s", page.Path)
		return nil, ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page.Locale = s.locale.Current()
	s.scroll.RouteChanged(toURL)

	log.Infof("✅ Navigated to %s (%d sections, %d degraded)", page.Path, len(contentTypes), len(page.Failed))
	return page, nil
}

// sortContentTypes orders types as they appear in domain.ContentTypes; types
// outside that list go last, by name.
func sortContentTypes(types []domain.ContentType) {
	rank := func(ct domain.ContentType) int {
		if i := slices.Index(domain.ContentTypes, ct); i >= 0 {
			return i
		}
		return len(domain.ContentTypes)
	}
	slices.SortFunc(types, func(a, b domain.ContentType) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	})
}

// Detail loads a single item page. A missing article leaves Article nil
// rather than failing the page; an unknown item is client.ErrNotFound.
func (s *Site) Detail(ctx context.Context, contentType domain.ContentType, id string) (*DetailPage, error) {
	record, article, err := s.client.LoadDetail(ctx, contentType, id)
	if record == nil {
		return nil, err
	}
	if err != nil {
		log.Warnf("⚠️ Rendering %s/%s without article: %v", contentType, id, err)
	}

	return &DetailPage{
		ContentType: contentType,
		Record:      record,
		Article:     article,
		Locale:      s.locale.Current(),
	}, nil
}

// PageHidden is called when the page is backgrounded or unloaded
func (s *Site) PageHidden(ctx context.Context) {
	s.scroll.PageHidden(ctx)
}

func (s *Site) Locale() *locale.Preference {
	return s.locale
}

func (s *Site) Scroll() *scroll.Store {
	return s.scroll
}
