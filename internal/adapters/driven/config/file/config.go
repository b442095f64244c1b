// Package file loads the Rollcall configuration from a TOML file.
//
// Configuration lives at ~/.rollcall/config.toml by default. A missing
// file yields the defaults; a malformed file is an error rather than a
// silent fallback.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config carries the application settings.
type Config struct {
	// RosterURL is the primary roster source.
	RosterURL string `toml:"roster_url"`

	// ReleasesURL is the secondary release-detail feed.
	ReleasesURL string `toml:"releases_url"`

	// DataDir holds the state database and change log.
	// Empty means ~/.rollcall/data.
	DataDir string `toml:"data_dir"`

	// MaxPendingAgeDays expires pending releases older than this.
	// 0 disables expiry.
	MaxPendingAgeDays int `toml:"max_pending_age_days"`

	// StrictExtraction fails a run when record blocks are discarded.
	StrictExtraction bool `toml:"strict_extraction"`

	// FetchRatePerSec throttles requests against the upstream server.
	FetchRatePerSec float64 `toml:"fetch_rate_per_sec"`

	// DisplayCap bounds added/removed lists handed to display.
	DisplayCap int `toml:"display_cap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxPendingAgeDays: 30,
		FetchRatePerSec:   1.0,
		DisplayCap:        30,
	}
}

// DefaultPath returns ~/.rollcall/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".rollcall", "config.toml"), nil
}

// Load reads the configuration at path, applying defaults for absent
// keys. A missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
