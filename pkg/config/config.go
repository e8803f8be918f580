// Package config loads gridpush configuration from TOML files.
//
// Configuration is optional: every field has a default, a missing config
// file is not an error, and a partial file only overrides the keys it
// names. CLI flags override file values, which override defaults.
//
// The default location is the platform config directory, for example
// ~/.config/gridpush/config.toml on Linux:
//
//	[grid]
//	columns = 12
//	max_component_height = 20
//
//	[server]
//	addr = ":8080"
//
//	[store]
//	backend = "file"     # memory | file | mongo
//
//	[cache]
//	backend = "file"     # none | file | redis
//
//	[render]
//	format = "svg"       # svg | png | dot | json
//	cell_size = 40
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gridpush/gridpush/pkg/cache"
	"github.com/gridpush/gridpush/pkg/grid"
	"github.com/gridpush/gridpush/pkg/store"
)

// Config is the root configuration document.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
}

// GridConfig sets the board dimensions used when a board doesn't carry its
// own.
type GridConfig struct {
	Columns            int `toml:"columns"`
	MaxComponentHeight int `toml:"max_component_height"`
}

// ServerConfig configures the API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects and configures the board storage backend.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`
	URL       string `toml:"url"`
	KeyPrefix string `toml:"key_prefix"`
}

// RenderConfig sets rendering defaults, overridable per render call.
type RenderConfig struct {
	Format   string `toml:"format"`
	CellSize int    `toml:"cell_size"`
	MinRows  int    `toml:"min_rows"`
	ShowGrid bool   `toml:"show_grid"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Columns:            grid.DefaultColumns,
			MaxComponentHeight: grid.DefaultMaxComponentHeight,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			Backend: store.BackendFile,
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
		},
		Render: RenderConfig{
			Format:   "svg",
			CellSize: 40,
			MinRows:  8,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(base, "gridpush", "config.toml"), nil
}

// Load reads configuration from path, applying defaults for absent keys.
// If path is empty, the default location is read; a missing file there is
// not an error and yields the defaults. An explicit path that doesn't
// exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// GridConfig converts the grid table into engine configuration.
func (c Config) GridConfig() grid.Config {
	return grid.Config{
		Columns:            c.Grid.Columns,
		MaxComponentHeight: c.Grid.MaxComponentHeight,
	}
}

// StoreOptions converts the store table into backend options.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend:  c.Store.Backend,
		Dir:      c.Store.Dir,
		URI:      c.Store.URI,
		Database: c.Store.Database,
	}
}

// CacheOptions converts the cache table into backend options.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		Dir:       c.Cache.Dir,
		URL:       c.Cache.URL,
		KeyPrefix: c.Cache.KeyPrefix,
	}
}
