// Package config loads server configuration from an optional YAML file
// with environment-variable overrides. Environment always wins, so a
// deployment can pin the database path without editing the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides
const (
	EnvDBPath          = "SEMVIEW_DB_PATH"
	EnvDefaultSnapshot = "SEMVIEW_DEFAULT_SNAPSHOT"
	EnvMaxResults      = "SEMVIEW_MAX_RESULTS"
)

// DefaultMaxResults caps the number of denotations a tool call returns
const DefaultMaxResults = 200

// Config holds the server configuration
type Config struct {
	// DBPath is the SQLite database location
	DBPath string `yaml:"db_path"`

	// DefaultSnapshot is used by tool calls that omit the model parameter
	DefaultSnapshot string `yaml:"default_snapshot"`

	// MaxResults caps member listings per tool call
	MaxResults int `yaml:"max_results"`
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Config{
		DBPath:     filepath.Join(home, ".semview", "semview.db"),
		MaxResults: DefaultMaxResults,
	}, nil
}

// DefaultPath returns the conventional config file location
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".semview", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvDefaultSnapshot); v != "" {
		c.DefaultSnapshot = v
	}
	if v := os.Getenv(EnvMaxResults); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxResults = n
		}
	}
}
