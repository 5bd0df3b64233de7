// Package config loads starnavi's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/phanxgames/starnavi"
)

// FileName is the name of the configuration file inside the config
// directory.
const FileName = "config.toml"

// Config is the full configuration.
type Config struct {
	Galaxy GalaxyConfig `toml:"galaxy"`
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
	Tags   TagsConfig   `toml:"tags"`
}

// GalaxyConfig tunes galaxy construction.
type GalaxyConfig struct {
	RotationSpeed float64 `toml:"rotation_speed"` // degrees per frame
	StarScale     float64 `toml:"star_scale"`
	SectorMargin  float64 `toml:"sector_margin"` // degrees
	Cluster       string  `toml:"cluster"`       // initial cluster mode
}

// WindowConfig sizes the viewer window.
type WindowConfig struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Title         string `toml:"title"`
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`
}

// LogConfig selects the log level, format and destination.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, console
	Output string `toml:"output"` // stdout, stderr, or file path
}

// TagsConfig controls sidecar tag handling.
type TagsConfig struct {
	Watch bool `toml:"watch"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Galaxy: GalaxyConfig{
			RotationSpeed: starnavi.DefaultRotationSpeed,
			StarScale:     1,
			SectorMargin:  starnavi.DefaultSectorMargin,
			Cluster:       starnavi.ClusterHierarchy.String(),
		},
		Window: WindowConfig{
			Width:         starnavi.DefaultWindowWidth,
			Height:        starnavi.DefaultWindowHeight,
			Title:         "starnavi",
			ScreenshotDir: starnavi.DefaultScreenshotDir,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Tags: TagsConfig{Watch: true},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/starnavi/config.toml, falling back
// to the user config directory of the platform.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("config: locate config dir: %w", err)
		}
	}
	return filepath.Join(dir, "starnavi", FileName), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFrom reads path over the defaults and validates the result. Unlike
// Load, a missing file is an error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the cluster mode name.
func (c *Config) Validate() error {
	if c.Galaxy.StarScale < 0 {
		return fmt.Errorf("galaxy.star_scale must not be negative, got %g", c.Galaxy.StarScale)
	}
	if c.Galaxy.SectorMargin < 0 || c.Galaxy.SectorMargin >= 360 {
		return fmt.Errorf("galaxy.sector_margin must be in [0, 360), got %g", c.Galaxy.SectorMargin)
	}
	if _, err := c.ClusterMode(); err != nil {
		return fmt.Errorf("galaxy.cluster: %w", err)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// ClusterMode parses Galaxy.Cluster. An empty value is hierarchy.
func (c *Config) ClusterMode() (starnavi.ClusterMode, error) {
	if c.Galaxy.Cluster == "" {
		return starnavi.ClusterHierarchy, nil
	}
	return starnavi.ParseClusterMode(c.Galaxy.Cluster)
}

// Options returns the galaxy options described by c.
func (c *Config) Options() starnavi.Options {
	return starnavi.Options{
		RotationSpeed: c.Galaxy.RotationSpeed,
		StarScale:     c.Galaxy.StarScale,
		SectorMargin:  c.Galaxy.SectorMargin,
	}
}

// Save writes c to path as TOML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("config: encode: %w", err)
	}
	return f.Close()
}
