/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/regkey/pkg/regkey"
)

// Config represents the regkey configuration
type Config struct {
	Licensee Licensee `yaml:"licensee"`
	Logging  Logging  `yaml:"logging"`
}

// Licensee holds the defaults used when no name or features are passed
type Licensee struct {
	Name     string `yaml:"name" validate:"required"`
	Features string `yaml:"features" validate:"required,hexadecimal"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Licensee: Licensee{
			Name:     regkey.DefaultName,
			Features: fmt.Sprintf("%08x", regkey.DefaultFeatures),
		},
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
	}
}

// FeatureMask parses the configured feature mask
func (c *Config) FeatureMask() (uint32, error) {
	return regkey.ParseFeatures(c.Licensee.Features)
}

// Validate checks field constraints and that the licensee defaults would
// produce a valid license request
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	mask, err := c.FeatureMask()
	if err != nil {
		return errors.Wrap(err, "invalid config")
	}
	// Name length is counted in bytes, which validator's min/max do not do.
	if _, err := regkey.NewLicenseRequest(c.Licensee.Name, mask); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Fields missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.Newf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config path")
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./regkey.yaml"
	}

	return filepath.Join(homeDir, ".config", "regkey", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
