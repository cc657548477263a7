package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.ManifestPath != "fixture.toml" {
		t.Errorf("ManifestPath = %q, want %q", cfg.ManifestPath, "fixture.toml")
	}
	if cfg.Logging.Format != "human" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "human")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig on empty dir should not fail, got: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("missing config should yield defaults, got level %q", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".hellogo")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `{"version": 1, "manifestPath": "expectations.toml", "logging": {"format": "json", "level": "debug"}}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ManifestPath != "expectations.toml" {
		t.Errorf("ManifestPath = %q, want %q", cfg.ManifestPath, "expectations.toml")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".hellogo")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}

	// Only level is set; everything else falls back to defaults.
	content := `{"logging": {"level": "warn"}}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Logging.Format != "human" {
		t.Errorf("Logging.Format should default to human, got %q", cfg.Logging.Format)
	}
	if cfg.ManifestPath != "fixture.toml" {
		t.Errorf("ManifestPath should default to fixture.toml, got %q", cfg.ManifestPath)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig after Save failed: %v", err)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("reloaded Logging.Level = %q, want %q", loaded.Logging.Level, "debug")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"bad version", func(c *Config) { c.Version = 2 }, true},
		{"empty manifest path", func(c *Config) { c.ManifestPath = "" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"json format is valid", func(c *Config) { c.Logging.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
