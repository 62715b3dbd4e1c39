// Package config loads application configuration from an optional YAML file
// and environment variables. Environment variables override YAML values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for biteme.
type Config struct {
	// DataDir is where the local database lives. Defaults to a biteme
	// directory under the user config dir when empty.
	DataDir string `yaml:"data_dir" env:"BITEME_DATA_DIR" env-default:""`

	// CatalogURL is the base URL serving recipes.json and manifest.json.
	CatalogURL string `yaml:"catalog_url" env:"BITEME_CATALOG_URL" env-default:"https://biteme.app"`

	// HTTPTimeout bounds catalog fetches.
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"BITEME_HTTP_TIMEOUT" env-default:"10s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"BITEME_LOG_LEVEL" env-default:"info"`
}

// Load reads config.yaml if present, then applies environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
			return finish(&cfg)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving user config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "biteme")
	}
	return cfg, nil
}

// DatabasePath is the sqlite file inside the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "biteme.db")
}
