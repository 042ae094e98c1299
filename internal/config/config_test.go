package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 120*time.Second, cfg.Timeout())
	assert.Equal(t, 8*time.Second, cfg.RotationInterval())
	assert.False(t, Exists())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "from-config"
	cfg.Gemini.TimeoutSec = 30
	cfg.Rotation.IntervalSec = 3
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))

	info, err := os.Stat(filepath.Join(dir, "tripbook", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, 30*time.Second, got.Timeout())
	assert.Equal(t, 3*time.Second, got.RotationInterval())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tripbook", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[rotation]\ninterval_sec = 5\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rotation.IntervalSec)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "passport", cfg.Appearance.Theme)
}

func TestLoad_Invalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tripbook", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[rotation\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestAPIKey_Precedence(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "cfg-key"

	assert.Equal(t, "cfg-key", APIKey(cfg))
	assert.Equal(t, "config", APIKeySource(cfg))

	t.Setenv("API_KEY", "generic")
	assert.Equal(t, "generic", APIKey(cfg))
	assert.Equal(t, "env:API_KEY", APIKeySource(cfg))

	t.Setenv("GEMINI_API_KEY", "gemini")
	assert.Equal(t, "gemini", APIKey(cfg))
	assert.Equal(t, "env:GEMINI_API_KEY", APIKeySource(cfg))

	assert.Equal(t, "env:GEMINI_API_KEY", APIKeySource(DefaultConfig()))
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_API_KEY=dotenv-key\n"), 0o600))

	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "dotenv-key", APIKey(DefaultConfig()))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLogPath(t *testing.T) {
	dir := isolate(t)
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(dir, "tripbook", "tripbook.log"), cfg.LogPath())

	cfg.Log.File = "/tmp/custom.log"
	assert.Equal(t, "/tmp/custom.log", cfg.LogPath())
}
