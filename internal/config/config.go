package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// Validate checks that every field holds a known value
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.LogLevel)
	}

	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "twentyone", "config.toml")
}

// LoadConfig loads the config file, falling back to defaults when it is absent
func LoadConfig() (*Config, error) {
	return LoadFile(GetConfigFilePath())
}

// LoadFile loads the config at path. Keys missing from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// InitConfig writes the default config file if none exists and returns its path
func InitConfig() (string, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := Save(configPath, Default()); err != nil {
		return "", err
	}

	return configPath, nil
}

// Save encodes config to path, creating the parent directory
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
