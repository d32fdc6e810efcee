// Package config loads the backdrop tool's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/window-backdrop/internal/theme"
	"github.com/yourusername/window-backdrop/pkg/backdrop"
)

const relativeConfigPath = "window-backdrop/config.yaml"

// Config holds user preferences. Command-line flags override every field.
type Config struct {
	// Effect is the effect applied when none is given on the command line.
	Effect string `yaml:"effect"`

	// Theme selects the title bar theme for Mica and tabbed: auto, dark or light.
	Theme string `yaml:"theme"`

	// WindowTitle is the default window looked up by title.
	WindowTitle string `yaml:"window_title"`

	Verbose bool   `yaml:"verbose"`
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Effect: backdrop.EffectMica.String(),
		Theme:  theme.ModeAuto,
	}
}

// DefaultConfigPath returns the config file location under the XDG config
// directory (%LOCALAPPDATA% on Windows). Nothing is created on disk.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, filepath.FromSlash(relativeConfigPath))
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	return LoadFromPath(DefaultConfigPath())
}

// LoadFromPath reads the configuration at path. A missing file yields the
// defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the effect and theme names.
func (c *Config) Validate() error {
	if _, err := backdrop.ParseEffect(c.Effect); err != nil {
		return fmt.Errorf("invalid effect: %w", err)
	}
	if !theme.ValidMode(c.Theme) {
		return fmt.Errorf("invalid theme %q (want auto, dark or light)", c.Theme)
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	return nil
}
