// Package config loads the configuration file of nuvalue.
//
// The file is TOML:
//
//	[table]
//	width = 100
//	color = "auto"
//
//	[store]
//	path = "~/.local/state/nuvalue/store.db"
//
//	[log]
//	file = "/tmp/nuvalue.log"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the configuration of nuvalue.
type Config struct {
	Table Table `toml:"table"`
	Store Store `toml:"store"`
	Log   Log   `toml:"log"`
}

// Table configures table output.
type Table struct {
	// Maximum width of the table; 0 means the width of the terminal.
	Width int `toml:"width"`
	// One of "auto", "always" and "never".
	Color string `toml:"color"`
}

// Store configures the value stash.
type Store struct {
	Path string `toml:"path"`
}

// Log configures debug logging.
type Log struct {
	File string `toml:"file"`
}

// Default returns the configuration used when there is no configuration
// file.
func Default() Config {
	return Config{Table: Table{Color: "auto"}}
}

// Load reads the configuration file at path on top of the default
// configuration. A missing file is not an error when path is the default
// path, as returned by DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath() {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
	return cfg, nil
}

// Validate checks the values of cfg.
func (cfg Config) Validate() error {
	switch cfg.Table.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("table.color must be auto, always or never, got %q", cfg.Table.Color)
	}
	if cfg.Table.Width < 0 {
		return fmt.Errorf("table.width must not be negative, got %d", cfg.Table.Width)
	}
	return nil
}

// DefaultPath returns the path of the configuration file used when none is
// specified, or "" if the config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nuvalue", "config.toml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
