package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModule       = "claude_code_sdk"
	DefaultDistribution = "claude-code-sdk"
	DefaultTimeout      = "10s"
)

// DefaultInterpreters is the PATH lookup order used when the config does
// not override it.
var DefaultInterpreters = []string{"python3", "python"}

// Config represents the pyprobe configuration
type Config struct {
	Interpreters []string `yaml:"interpreters"` // candidate binary names, tried in order
	Module       string   `yaml:"module"`       // import name to probe
	Distribution string   `yaml:"distribution"` // package metadata name for the version fallback
	Timeout      string   `yaml:"timeout"`      // duration string, e.g. "10s"
}

// Default returns the built-in configuration used when no config file
// exists. The probe must work out of the box with no setup.
func Default() *Config {
	return &Config{
		Interpreters: append([]string(nil), DefaultInterpreters...),
		Module:       DefaultModule,
		Distribution: DefaultDistribution,
		Timeout:      DefaultTimeout,
	}
}

// GetConfigPath returns the path to the global config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "pyprobe", "config.yml"), nil
}

// InitConfig creates the config directory and file with default content
func InitConfig(force bool) error {
	return WriteConfig(Default(), force)
}

// WriteConfig creates the config directory and writes cfg to it.
func WriteConfig(cfg *Config, force bool) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadConfig reads and parses the config file
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// LoadOrDefault loads the config file, falling back to built-in defaults
// when none exists. The probe run never creates the file itself.
func LoadOrDefault() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ParseTimeout returns the configured timeout as a duration.
func (c *Config) ParseTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout duration: %w", err)
	}
	return d, nil
}

// applyDefaults fills any field the config file left empty.
func (c *Config) applyDefaults() {
	if len(c.Interpreters) == 0 {
		c.Interpreters = append([]string(nil), DefaultInterpreters...)
	}
	if c.Module == "" {
		c.Module = DefaultModule
	}
	if c.Distribution == "" {
		c.Distribution = DefaultDistribution
	}
	if c.Timeout == "" {
		c.Timeout = DefaultTimeout
	}
}
