package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"morinolab/site/internal/assets"
	"morinolab/site/internal/config"
)

// Source fetches a text resource addressed relative to the static root,
// e.g. "generated_contents/news/news.csv".
type Source interface {
	Fetch(ctx context.Context, relPath string) (string, error)
}

type HTTPSource struct {
	rl         ratelimit.Limiter
	baseURL    string
	resolver   *assets.Resolver
	httpClient *resty.Client
}

func NewHTTPSource(cfg config.SiteConfig, resolver *assets.Resolver) *HTTPSource {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "text/csv,text/markdown,text/html,text/plain;q=0.9,*/*;q=0.8")

	if cfg.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true,
		})
	}

	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
		log.Infof("🔄 Fetching content through proxy %s", cfg.Proxy)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &HTTPSource{
		rl:         rl,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		resolver:   resolver,
		httpClient: client,
	}
}

func (s *HTTPSource) URL(relPath string) string {
	return s.baseURL + s.resolver.StaticPath(relPath)
}

func (s *HTTPSource) Fetch(ctx context.Context, relPath string) (string, error) {
	url := s.URL(relPath)

	s.rl.Take()

	resp, err := s.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return "", &FetchError{URL: url, Err: fmt.Errorf("request cancelled: %w", ctx.Err())}
		}
		return "", &FetchError{URL: url, Err: err}
	}

	if resp.IsError() {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode(), Err: errors.New(resp.Status())}
	}

	body := resp.String()
	log.Debugf("Fetched %s: %d bytes", url, len(body))
	return body, nil
}

func (s *HTTPSource) Close() error {
	return s.httpClient.Close()
}

// DirSource reads the exported static tree from a filesystem, which is how
// pages are pre-rendered at build time.
type DirSource struct {
	fs   afero.Fs
	root string
}

func NewDirSource(fsys afero.Fs, root string) *DirSource {
	return &DirSource{fs: fsys, root: root}
}

func (s *DirSource) Fetch(ctx context.Context, relPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &FetchError{URL: relPath, Err: err}
	}

	clean := path.Clean("/" + relPath)
	fullPath := filepath.Join(s.root, filepath.FromSlash(clean))

	data, err := afero.ReadFile(s.fs, fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &FetchError{URL: fullPath, StatusCode: 404, Err: err}
		}
		return "", &FetchError{URL: fullPath, Err: err}
	}

	log.Debugf("Read %s: %d bytes", fullPath, len(data))
	return string(data), nil
}
