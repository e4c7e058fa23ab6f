// Package config loads CLI defaults for lacuna-tools. Command-line
// flags always take precedence; an optional YAML file supplies
// defaults for flags the user didn't pass.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings the CLI's flags and (optionally) a YAML
// defaults file populate.
type Config struct {
	IssuesOnly bool   `yaml:"issues_only"`
	Verbose    bool   `yaml:"verbose"`
	Debug      bool   `yaml:"debug"`
	ListInfos  bool   `yaml:"list_infos"`
	LogLevel   string `yaml:"log_level"`
	OutPath    string `yaml:"out"`
}

// DefaultConfig returns the CLI's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load returns DefaultConfig() overlaid with path's YAML contents, if
// path is non-empty. It never reads flag values; the caller merges
// flags on top of the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
