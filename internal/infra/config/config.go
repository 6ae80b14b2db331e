// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Player PlayerConfig `yaml:"player"`
	Log    LogConfig    `yaml:"log"`
}

// StoreConfig configures queue persistence.
type StoreConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// PlayerConfig configures the audio player adapter.
type PlayerConfig struct {
	Type     string         `yaml:"type" default:"exec" validate:"required,oneof=exec null"`
	Settings map[string]any `yaml:"settings"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Output string `yaml:"output" default:"stderr"`
}

// DefaultPath returns the default config file location under the user's
// config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cueline.yaml"
	}
	return filepath.Join(dir, "cueline", "config.yaml")
}

// defaultStorePath returns the default queue file location.
func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "queues.yaml"
	}
	return filepath.Join(dir, "cueline", "queues.yaml")
}

// Load loads configuration from a YAML file. A missing file is not an
// error; the configuration then consists of defaults and environment
// overrides only.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, errors.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath()
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("CUELINE_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("CUELINE_PLAYER_TYPE"); v != "" {
		c.Player.Type = v
	}
	if v := os.Getenv("CUELINE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
