package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadFile(filepath.Join(home, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "MessianicChords"), cfg.LibraryRoot)
	assert.Equal(t, filepath.Join(home, ".config", "mc", "mc.db"), cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, defaultCacheSize, cfg.CacheSize)
}

func TestLoadFile_Overrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "config.toml")
	body := `
library_root = "~/Drive/Chords"
db_path = "/tmp/mc-test.db"
log_level = "debug"
log_format = "json"
cache_size = -4
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Drive", "Chords"), cfg.LibraryRoot)
	assert.Equal(t, "/tmp/mc-test.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, defaultCacheSize, cfg.CacheSize)
}

func TestLoadFile_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("library_root = ["), 0o644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_EnvPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "other.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "warn"`), 0o644))
	t.Setenv("MC_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
