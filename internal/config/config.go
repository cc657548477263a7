// Package config loads the fixture's optional configuration. The default
// harness run reads nothing: a missing config file yields DefaultConfig,
// and nothing here can alter the stdout transcript.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the fixture configuration
type Config struct {
	Version      int           `json:"version" mapstructure:"version"`
	ManifestPath string        `json:"manifestPath" mapstructure:"manifestPath"`
	Logging      LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		ManifestPath: "fixture.toml",
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .hellogo/config.json under root.
// A missing file is not an error; defaults apply.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("version", 1)
	v.SetDefault("manifestPath", "fixture.toml")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	// Configure viper
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".hellogo"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .hellogo/config.json under root
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".hellogo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if c.ManifestPath == "" {
		return fmt.Errorf("manifestPath must not be empty")
	}
	switch c.Logging.Format {
	case "human", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}
