// Package config loads siegmeyer settings from .siegmeyer.yml and
// SIEGMEYER_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and $HOME.
const FileName = ".siegmeyer.yml"

// Config holds all settings.
type Config struct {
	Install InstallConfig `mapstructure:"install" yaml:"install"`
}

// InstallConfig controls the installers started after scaffolding.
type InstallConfig struct {
	Skip         bool     `mapstructure:"skip" yaml:"skip"`
	Quiet        bool     `mapstructure:"quiet" yaml:"quiet"`
	Dependencies []string `mapstructure:"dependencies" yaml:"dependencies"`
	Bundler      string   `mapstructure:"bundler" yaml:"bundler"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Install: InstallConfig{
			Dependencies: []string{"npm install", "bower install"},
			Bundler:      "bundle install",
		},
	}
}

// Save writes cfg to path as YAML, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
