package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// FileName is the config file path relative to the XDG config directories.
const FileName = "chessmatch/config.json"

// Load searches the XDG config directories for FileName and applies it over
// cfg. It returns the path that was read, or "" when no file exists.
func Load(cfg *Config) (string, error) {
	path, err := xdg.SearchConfigFile(FileName)
	if err != nil {
		return "", nil
	}
	return path, LoadFile(cfg, path)
}

// LoadFile applies the JSON file at path over cfg and validates the result.
// Settings missing from the file keep their current values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
