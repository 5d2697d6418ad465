package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the launcher configuration.
// Fields left out of the file keep their built-in defaults.
type FileConfig struct {
	Window *Config       `yaml:"window" toml:"window"`
	Button *ButtonConfig `yaml:"button" toml:"button"`
	Menu   *MenuConfig   `yaml:"menu" toml:"menu"`
}

// LoadFile overlays the globals with values from a .yaml/.yml or .toml file
func LoadFile(path string) error {
	fc := FileConfig{Window: C, Button: &Button, Menu: &Menu}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return fmt.Errorf("parse toml config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}

	return Validate()
}

// Validate rejects geometry the layout code cannot work with
func Validate() error {
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", C.Width, C.Height)
	}
	if C.HeightDivisions <= 0 {
		return fmt.Errorf("height_divisions must be positive, got %d", C.HeightDivisions)
	}
	if Button.Width < 0 || Button.Height < 0 {
		return fmt.Errorf("button size must not be negative, got %dx%d", Button.Width, Button.Height)
	}
	return nil
}
