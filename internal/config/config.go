// Package config loads ordmap-shell settings from an optional project-local
// ".ordmap.json" file (parsed leniently as JSONC, so a line can be commented
// out while debugging), overridden by CLI flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ConfigFileName is the default project-local config file name.
const ConfigFileName = ".ordmap.json"

// Format selects how the range command renders map contents. save always
// writes the binary snapshot format, whatever Format is set to.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// Config holds the settings ordmap-shell reads at startup.
type Config struct {
	Snapshot string `json:"snapshot"`
	Capacity int    `json:"capacity"`
	Format   Format `json:"format"`
}

// Default returns the built-in defaults, applied before any file or flag is
// read.
func Default() Config {
	return Config{
		Snapshot: "ordmap.snapshot",
		Capacity: 8,
		Format:   FormatTable,
	}
}

var errInvalidFormat = errors.New("config: format must be \"table\" or \"yaml\"")

// Load reads the project config at filepath.Join(workDir, ConfigFileName),
// if present, and merges it over [Default]. A missing file is not an error.
func Load(workDir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is a fixed, well-known filename
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %q is not valid JSONC: %w", path, err)
	}

	var overlay Config
	if err := json.Unmarshal(standardized, &overlay); err != nil {
		return Config{}, fmt.Errorf("config: %q is not valid JSON: %w", path, err)
	}

	cfg = merge(cfg, overlay)

	return cfg, validate(cfg)
}

func merge(base, overlay Config) Config {
	if overlay.Snapshot != "" {
		base.Snapshot = overlay.Snapshot
	}

	if overlay.Capacity != 0 {
		base.Capacity = overlay.Capacity
	}

	if overlay.Format != "" {
		base.Format = overlay.Format
	}

	return base
}

func validate(cfg Config) error {
	if cfg.Format != FormatTable && cfg.Format != FormatYAML {
		return fmt.Errorf("%w, got %q", errInvalidFormat, cfg.Format)
	}

	if cfg.Capacity <= 0 {
		return fmt.Errorf("config: capacity must be positive, got %d", cfg.Capacity)
	}

	return nil
}
