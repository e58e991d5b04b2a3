package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "generated_contents", cfg.Site.IndexRoot)
	assert.Equal(t, "generated_contents", cfg.Site.ArticleRoot)
	assert.Equal(t, 100, cfg.Scroll.RestoreDelayMs)
	assert.Equal(t, "ja", cfg.Locale.Default)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  base_url: https://lab.example.com
  base_path: /morinolab_hp
storage:
  driver: memory
`), 0o644))
	t.Setenv("MORINOLAB_SCROLL_RESTORE_DELAY_MS", "250")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://lab.example.com", cfg.Site.BaseURL)
	assert.Equal(t, "/morinolab_hp", cfg.Site.BasePath)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 250, cfg.Scroll.RestoreDelayMs)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	assert.NoError(t, ConfigureLogging(LogConfig{Level: "debug", Format: "json"}))
	assert.Error(t, ConfigureLogging(LogConfig{Level: "loud"}))
	require.NoError(t, ConfigureLogging(LogConfig{Level: "info"}))
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
