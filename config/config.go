// Package config provides configuration loading and management for
// ontolint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontolint configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Checks  ChecksConfig  `yaml:"checks"`
	Publish PublishConfig `yaml:"publish"`
	Watch   WatchConfig   `yaml:"watch"`
}

// PathsConfig configures which documents are checked
type PathsConfig struct {
	// Ontologies is the list of ontology document paths; doublestar
	// glob patterns are allowed (e.g. "ontology/**/*.ttl")
	Ontologies []string `yaml:"ontologies"`
}

// ChecksConfig configures check selection
type ChecksConfig struct {
	// Enabled is the list of check names to run (empty = run all)
	Enabled []string `yaml:"enabled"`
}

// PublishConfig configures result publishing over NATS
type PublishConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
	// Subject is the subject check runs are published to
	Subject string `yaml:"subject"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is how long to wait after a file event before
	// re-running, in time.ParseDuration format (e.g. "500ms")
	Debounce string `yaml:"debounce"`
	// MetricsAddr is the listen address for the Prometheus metrics
	// endpoint (empty = metrics disabled)
	MetricsAddr string `yaml:"metrics_addr"`
}

// DebounceDuration returns the parsed debounce interval, falling back
// to the default when unset or unparseable
func (c *WatchConfig) DebounceDuration() time.Duration {
	if c.Debounce == "" {
		return 500 * time.Millisecond
	}
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Ontologies: []string{"**/*.ttl"},
		},
		Checks: ChecksConfig{
			Enabled: nil, // Run all
		},
		Publish: PublishConfig{
			URL:     "",
			Subject: "ontolint.check.result",
		},
		Watch: WatchConfig{
			Debounce:    "500ms",
			MetricsAddr: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Paths.Ontologies) == 0 {
		return fmt.Errorf("paths.ontologies is required")
	}
	if c.Publish.URL != "" && c.Publish.Subject == "" {
		return fmt.Errorf("publish.subject is required when publish.url is set")
	}
	if c.Watch.Debounce != "" {
		d, err := time.ParseDuration(c.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("invalid watch.debounce format: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("watch.debounce must not be negative")
		}
	}
	return nil
}

// Merge overlays non-zero values from other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.Paths.Ontologies) > 0 {
		c.Paths.Ontologies = other.Paths.Ontologies
	}
	if len(other.Checks.Enabled) > 0 {
		c.Checks.Enabled = other.Checks.Enabled
	}
	if other.Publish.URL != "" {
		c.Publish.URL = other.Publish.URL
	}
	if other.Publish.Subject != "" {
		c.Publish.Subject = other.Publish.Subject
	}
	if other.Watch.Debounce != "" {
		c.Watch.Debounce = other.Watch.Debounce
	}
	if other.Watch.MetricsAddr != "" {
		c.Watch.MetricsAddr = other.Watch.MetricsAddr
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
