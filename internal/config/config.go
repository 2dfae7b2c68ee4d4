// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration including reading and
// writing the configuration file and providing defaults for every setting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize          = 5
	DefaultPort          = 8080
	DefaultServerMaxSize = 200
)

// ServerConfig holds settings for the `serve` command.
type ServerConfig struct {
	// Port is the TCP port the HTTP server listens on
	Port int `yaml:"port,omitempty"`

	// MaxSize bounds sizes requested over HTTP
	MaxSize int `yaml:"max_size,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error
	Level string `yaml:"level,omitempty"`

	// File enables logging to the state-dir log file
	File *bool `yaml:"file,omitempty"`

	// Path overrides the log file location (may start with '~/')
	Path string `yaml:"path,omitempty"`
}

// Config represents the top-level application configuration
type Config struct {
	// DefaultSize is the starting size for the interactive viewer
	DefaultSize int `yaml:"default_size,omitempty"`

	// MaxSize bounds sizes accepted by the CLI and the viewer; 0 means unbounded
	MaxSize int `yaml:"max_size,omitempty"`

	Server ServerConfig `yaml:"server,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DefaultSize <= 0 {
		c.DefaultSize = DefaultSize
	}
	if c.Server.Port <= 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxSize <= 0 {
		c.Server.MaxSize = DefaultServerMaxSize
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == nil {
		enabled := true
		c.Log.File = &enabled
	}
}

// LogToFile reports whether file logging is enabled.
func (c Config) LogToFile() bool {
	return c.Log.File == nil || *c.Log.File
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "funtree", "config.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration at configPath. A missing file yields the
// defaults.
func LoadFrom(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if cfg.MaxSize < 0 || cfg.Server.MaxSize < 0 {
		return Config{}, fmt.Errorf("invalid max_size in %s: must not be negative", configPath)
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q in %s", cfg.Log.Level, configPath)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath with permissions rw-r----- (0640).
func SaveTo(configPath string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// YAML returns the configuration as it would be written to disk.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return string(data), nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
