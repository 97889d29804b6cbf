package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "content_root: ./public\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./public", cfg.ContentRoot)
	assert.Equal(t, "navigation", cfg.Navigation.MetadataKey)
	assert.False(t, cfg.Navigation.UsePermalinks)
	assert.Equal(t, "/", cfg.Navigation.RootPath)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, 500*time.Millisecond, cfg.Daemon.QuietWindow)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
content_root: ./site
navigation:
  metadataKey: nav
  usePermalinks: true
  rootPath: /docs/
  navIndex:
    /docs/intro: 1
  navExcludePatterns:
    - drafts/secret.html
    - "re:^private/"
store:
  backend: sqlite
  path: ./nav.db
daemon:
  quiet_window: 2s
  max_delay: 30s
  rebuild_interval: 5m
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Navigation.UsePermalinks)
	assert.Equal(t, "/docs/", cfg.Navigation.RootPath)
	assert.Equal(t, 1, cfg.Navigation.NavIndex["/docs/intro"])
	assert.Equal(t, StoreSQLite, cfg.Store.Backend)
	assert.Equal(t, 2*time.Second, cfg.Daemon.QuietWindow)
	assert.Equal(t, 5*time.Minute, cfg.Daemon.RebuildInterval)
	assert.Equal(t, LogLevelDebug, NormalizeLogLevel(cfg.Logging.Level))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_SQLiteRequiresPath(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: sqlite\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "sqlite backend requires a path")
}

func TestValidate_NATSRequiresURLAndBucket(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: nats\n  url: nats://localhost:4222\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "bucket")
}

func TestValidate_BadRegexPattern(t *testing.T) {
	path := writeConfig(t, "navigation:\n  navExcludePatterns:\n    - \"re:[unclosed\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_UnknownBackend(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: etcd\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown backend")
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("NAV_CONTENT", "/tmp/site-env")
	path := writeConfig(t, "content_root: ${NAV_CONTENT}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/site-env", cfg.ContentRoot)
}

func TestBuildOptions_CompilesPatterns(t *testing.T) {
	cfg := Default()
	cfg.Navigation.NavExcludePatterns = []string{"exact.html", "re:^drafts/"}

	opts, err := cfg.BuildOptions()
	require.NoError(t, err)
	require.Len(t, opts.ExcludePatterns, 2)
}

func TestNormalizeLogFormat(t *testing.T) {
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("text"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("weird"))
}
