package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a book directory.
const FileName = "ledgerbook.yaml"

// Config represents the top-level ledgerbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Chart    []SeedAccount  `yaml:"chart,omitempty"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity the book belongs to.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// SeedAccount is one entry of a custom seed chart. When the chart list is
// empty the built-in predefined chart is used.
type SeedAccount struct {
	Number string `yaml:"number"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
}

// GitConfig controls git integration for the book directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a ledgerbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Ledgerbook",
			AuthorEmail: "books@ledgerbook.dev",
		},
	}
}
