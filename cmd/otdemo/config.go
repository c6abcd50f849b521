package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the demo's starting document and relay address, loaded
// from a YAML file — the teacher's config.Load convention (default values,
// then overlay whatever the file supplies) generalized to this module's
// narrower domain.
type Config struct {
	Addr     string   `yaml:"addr"`
	Document string   `yaml:"document"`
	Clients  []string `yaml:"clients"`
}

// DefaultConfig returns the configuration used when no file is supplied or
// the file is missing.
func DefaultConfig() *Config {
	return &Config{
		Addr:     ":8080",
		Document: "hello world",
		Clients:  []string{"alice"},
	}
}

// LoadConfig loads configuration from a YAML file at path, falling back to
// DefaultConfig if the file does not exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("otdemo: read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("otdemo: parse config: %w", err)
	}
	return cfg, nil
}
