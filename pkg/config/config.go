package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nakkulla/termsys/pkg/sys"
)

// Config holds all configuration for termsys
type Config struct {
	// Platform backend: auto, term or syscall
	Backend string `yaml:"backend" env:"TERMSYS_BACKEND"`

	// Logging
	LogLevel string `yaml:"log_level" env:"TERMSYS_LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"TERMSYS_LOG_FILE"`

	// How often a PTY session polls for window resizes
	ResizePollInterval time.Duration `yaml:"resize_poll_interval" env:"TERMSYS_RESIZE_POLL"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend:            sys.BackendAuto,
		LogLevel:           "info",
		ResizePollInterval: 100 * time.Millisecond,
	}
}

// Load loads configuration from the default file location and environment
func Load() (*Config, error) {
	return LoadFile(getConfigPath())
}

// LoadFile loads configuration from path and environment. An empty path or
// a missing file leaves the defaults in place.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	normalize(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Platform builds the configured platform backend
func (c *Config) Platform() (sys.Platform, error) {
	return sys.NewPlatform(c.Backend)
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("TERMSYS_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "termsys", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "termsys", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var, flag or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if backend := os.Getenv("TERMSYS_BACKEND"); backend != "" {
		cfg.Backend = backend
	}

	if level := os.Getenv("TERMSYS_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if file := os.Getenv("TERMSYS_LOG_FILE"); file != "" {
		cfg.LogFile = file
	}

	if interval := os.Getenv("TERMSYS_RESIZE_POLL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid TERMSYS_RESIZE_POLL: %w", err)
		}
		cfg.ResizePollInterval = d
	}

	return nil
}

// normalize folds case and whitespace in enumerated values from any source
func normalize(cfg *Config) {
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Backend {
	case sys.BackendAuto, sys.BackendTerm, sys.BackendSyscall:
	default:
		return fmt.Errorf("backend must be one of auto, term, syscall (got %q)", cfg.Backend)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", cfg.LogLevel)
	}

	if cfg.ResizePollInterval <= 0 {
		return fmt.Errorf("resize_poll_interval must be positive")
	}

	return nil
}
