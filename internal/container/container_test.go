package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morinolab/site/internal/config"
	"morinolab/site/internal/domain"
	"morinolab/site/internal/scroll"
)

func TestNew_DirSourceWithSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	public := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(filepath.Join(public, "generated_contents", "news"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "generated_contents", "news", "news.csv"),
		[]byte("id,nameJa,nameEn,date\n1,ニュース,News,2024-04-01\n"), 0o644))

	cfg := &config.Config{
		Site: config.SiteConfig{
			ContentsDir: public,
			IndexRoot:   "generated_contents",
			ArticleRoot: "generated_contents",
		},
		Storage: config.StorageConfig{Driver: "sqlite", SQLitePath: filepath.Join(dir, "state.db")},
		Scroll:  config.ScrollConfig{StorageKey: "scrollPositions", RestoreDelayMs: 100},
		Locale:  config.LocaleConfig{Default: "en", StorageKey: "locale"},
	}

	c, err := New(ctx, cfg, scroll.NewMemoryViewport(0))
	require.NoError(t, err)
	defer c.Close()

	news, err := c.Catalog.News(ctx)
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "News", news[0].Name.Resolve(c.Locale.Current()))
	assert.Equal(t, domain.LocaleEnglish, c.Locale.Current())
}

func TestNew_UnknownStorageDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "floppy"}}

	_, err := New(context.Background(), cfg, scroll.NewMemoryViewport(0))
	assert.Error(t, err)
}
