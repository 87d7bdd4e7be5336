// Package config loads the optional .gh-autobump.yml repository
// configuration. Everything has a default; the file only overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default configuration file name
const ConfigFileName = ".gh-autobump.yml"

// DefaultVersionFile is the build file patched when none is configured.
const DefaultVersionFile = "CMakeLists.txt"

// Config represents the .gh-autobump.yml configuration file
type Config struct {
	// File is the path of the version file to patch, relative to the
	// working directory.
	File string `yaml:"file,omitempty"`

	// Repository is "owner/name"; overrides GITHUB_REPOSITORY.
	Repository string `yaml:"repository,omitempty"`

	// Stage controls whether the patched file is staged with git add.
	// Defaults to true when omitted.
	Stage *bool `yaml:"stage,omitempty"`

	// Phrases holds extra bump trigger phrases merged with the built-in
	// sets.
	Phrases Phrases `yaml:"phrases,omitempty"`
}

// Phrases contains additional trigger phrases per bump part
type Phrases struct {
	Major []string `yaml:"major,omitempty"`
	Minor []string `yaml:"minor,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{File: DefaultVersionFile}
}

// VersionFile returns the configured version file path, or the default.
func (c *Config) VersionFile() string {
	if c.File == "" {
		return DefaultVersionFile
	}
	return c.File
}

// ShouldStage reports whether the patched file gets staged.
func (c *Config) ShouldStage() bool {
	return c.Stage == nil || *c.Stage
}

// Load reads and parses a configuration file from the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDirectory finds and loads the config file from the given
// directory, walking up the directory tree. A missing config file is
// not an error: defaults are returned.
func LoadFromDirectory(dir string) (*Config, error) {
	configPath, err := FindConfigFile(dir)
	if err != nil {
		return Default(), nil
	}
	return Load(configPath)
}

// FindConfigFile searches for .gh-autobump.yml starting from dir and
// walking up the directory tree until found or filesystem root is
// reached.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", fmt.Errorf("no %s found in %s or any parent directory", ConfigFileName, startDir)
		}
		dir = parent
	}
}

// Validate checks configured values that can be checked offline
func (c *Config) Validate() error {
	if c.Repository != "" {
		parts := strings.SplitN(c.Repository, "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("repository must be owner/name, got %q", c.Repository)
		}
	}
	return nil
}
