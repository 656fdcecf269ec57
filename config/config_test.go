package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Paths.Ontologies) == 0 {
		t.Error("expected default ontology patterns")
	}
	if cfg.Publish.Subject != "ontolint.check.result" {
		t.Errorf("expected default publish subject ontolint.check.result, got %s", cfg.Publish.Subject)
	}
	if cfg.Watch.DebounceDuration() != 500*time.Millisecond {
		t.Errorf("expected default debounce 500ms, got %s", cfg.Watch.DebounceDuration())
	}
	if cfg.Publish.URL != "" {
		t.Error("expected publishing disabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing ontology paths",
			modify:  func(c *Config) { c.Paths.Ontologies = nil },
			wantErr: true,
		},
		{
			name:    "publish url without subject",
			modify:  func(c *Config) { c.Publish.URL = "nats://localhost:4222"; c.Publish.Subject = "" },
			wantErr: true,
		},
		{
			name:    "malformed debounce",
			modify:  func(c *Config) { c.Watch.Debounce = "soon" },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.Debounce = "-1s" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	overlay := &Config{
		Paths:   PathsConfig{Ontologies: []string{"ontology/**/*.ttl"}},
		Publish: PublishConfig{URL: "nats://localhost:4222"},
	}

	base.Merge(overlay)

	if len(base.Paths.Ontologies) != 1 || base.Paths.Ontologies[0] != "ontology/**/*.ttl" {
		t.Errorf("expected overlay paths, got %v", base.Paths.Ontologies)
	}
	if base.Publish.URL != "nats://localhost:4222" {
		t.Errorf("expected overlay publish URL, got %s", base.Publish.URL)
	}
	// Untouched fields keep their defaults
	if base.Publish.Subject != "ontolint.check.result" {
		t.Errorf("expected default subject preserved, got %s", base.Publish.Subject)
	}
	if base.Watch.Debounce != "500ms" {
		t.Errorf("expected default debounce preserved, got %s", base.Watch.Debounce)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ontolint.yaml")

	content := `paths:
  ontologies:
    - uco_monolithic.ttl
checks:
  enabled:
    - max-datatype-count
watch:
  debounce: 2s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if len(cfg.Paths.Ontologies) != 1 || cfg.Paths.Ontologies[0] != "uco_monolithic.ttl" {
		t.Errorf("unexpected ontology paths: %v", cfg.Paths.Ontologies)
	}
	if len(cfg.Checks.Enabled) != 1 || cfg.Checks.Enabled[0] != "max-datatype-count" {
		t.Errorf("unexpected enabled checks: %v", cfg.Checks.Enabled)
	}
	if cfg.Watch.DebounceDuration() != 2*time.Second {
		t.Errorf("unexpected debounce: %s", cfg.Watch.DebounceDuration())
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Publish.URL = "nats://example:4222"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Publish.URL != "nats://example:4222" {
		t.Errorf("round trip lost publish URL, got %s", loaded.Publish.URL)
	}
}
