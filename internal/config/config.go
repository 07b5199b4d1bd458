package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const defaultCacheSize = 128

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "MC_CONFIG"

type Config struct {
	LibraryRoot string `toml:"library_root"`
	DBPath      string `toml:"db_path"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	CacheSize   int    `toml:"cache_size"`
}

// Load reads $MC_CONFIG, or ~/.config/mc/config.toml when unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".config", "mc", "config.toml")
	}
	return LoadFile(path)
}

// LoadFile applies the config file at path over the defaults. A missing
// file is not an error.
func LoadFile(cfgPath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LibraryRoot: filepath.Join(home, "MessianicChords"),
		DBPath:      filepath.Join(home, ".config", "mc", "mc.db"),
		LogLevel:    "info",
		LogFormat:   "text",
		CacheSize:   defaultCacheSize,
	}

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.LibraryRoot = expandHome(cfg.LibraryRoot, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)

	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
