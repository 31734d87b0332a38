// Package config loads the viewer configuration from a YAML file. All
// fields are optional; zero values fall back to the defaults below.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ModeClasses names the two mutually exclusive visual-mode flags applied to
// the root element. They drive presentation styling and are configurable so
// a custom theme can hook different names.
type ModeClasses struct {
	List string `yaml:"list"`
	Full string `yaml:"full"`
}

// Search bundles tuning parameters for the fuzzy slide search.
type Search struct {
	MinCoverage float64 `yaml:"min_coverage"`
	MaxSpread   int     `yaml:"max_spread"`
	MaxResults  int     `yaml:"max_results"`
}

type Config struct {
	Theme       string      `yaml:"theme"`
	Watch       *bool       `yaml:"watch"`
	ModeClasses ModeClasses `yaml:"mode_classes"`
	Search      Search      `yaml:"search"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deckview.yaml"
	}
	return filepath.Join(home, ".deckview.yaml")
}

// Default returns the configuration used when no file exists.
func Default() Config {
	watch := true
	return Config{
		Theme: "auto",
		Watch: &watch,
		ModeClasses: ModeClasses{
			List: "list",
			Full: "full",
		},
		Search: Search{
			MinCoverage: 0.6,
			MaxSpread:   40,
			MaxResults:  200,
		},
	}
}

// Load reads the config at path and overlays it on the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.ModeClasses.List == "" {
		cfg.ModeClasses.List = "list"
	}
	if cfg.ModeClasses.Full == "" {
		cfg.ModeClasses.Full = "full"
	}
	if cfg.Search.MaxResults <= 0 {
		cfg.Search.MaxResults = 200
	}
	if cfg.Watch == nil {
		watch := true
		cfg.Watch = &watch
	}
	return cfg, nil
}

// WatchEnabled reports whether live reload is on.
func (c Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}
