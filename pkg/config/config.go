// Package config loads the optional scrawl configuration file. The file
// provides defaults for the CLI; the editor library itself never reads it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Config holds the user's editing defaults. Command line flags override
// every field.
type Config struct {
	Editor    string   `yaml:"editor"`
	Args      []string `yaml:"args"`
	Extension string   `yaml:"extension"`
	Trim      *bool    `yaml:"trim"`
}

// DefaultPath returns the configuration file location,
// $XDG_CONFIG_HOME/scrawl/config.yaml or ~/.config/scrawl/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "scrawl", fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "scrawl", fileName), nil
}

// Load reads the configuration file from the default location. A missing
// file yields an empty configuration, a file that fails to parse is an
// error.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from the given path.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not parse %s: %v", path, err)
	}
	return cfg, nil
}
