// Package config loads and persists DevFlow CLI configuration. Values are
// resolved defaults-first, then the JSON config file, then DEVFLOW_*
// environment variables; later sources overwrite earlier ones.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the settings the CLI and the memory service client need.
type Config struct {
	// APIURL is the memory service base URL
	APIURL string `json:"api_url"`

	// AuthToken is the bearer token sent to the memory service; empty
	// means unauthenticated
	AuthToken string `json:"auth_token,omitempty"`

	// UserID identifies the user in intelligence/behavior calls
	UserID string `json:"user_id,omitempty"`

	// RequestTimeout bounds every outbound memory service call
	RequestTimeout time.Duration `json:"request_timeout"`

	// Debug enables diagnostic logging
	Debug bool `json:"debug"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() *Config {
	return &Config{
		APIURL:         "https://api.devflow.ai",
		RequestTimeout: 30 * time.Second,
	}
}

// Validate checks the configuration before use.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url cannot be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// Repository loads and saves configuration from a JSON file plus the
// environment.
type Repository struct {
	configPath string
}

// NewRepository creates a repository over the default config path,
// honoring the DEVFLOW_CONFIG_FILE override.
func NewRepository() *Repository {
	path := os.Getenv("DEVFLOW_CONFIG_FILE")
	if path == "" {
		path = defaultConfigPath()
	}
	return &Repository{configPath: path}
}

// NewRepositoryWithPath creates a repository over an explicit path (tests).
func NewRepositoryWithPath(path string) *Repository {
	return &Repository{configPath: path}
}

// Load resolves the effective configuration: defaults, then the config
// file if present, then environment variables. A missing file is not an
// error; a malformed one is.
func (r *Repository) Load() (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(r.configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", r.configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", r.configPath, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Save persists the configuration as JSON, creating the directory if
// needed.
func (r *Repository) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(r.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the config file location.
func (r *Repository) Path() string {
	return r.configPath
}

// applyEnvOverrides merges DEVFLOW_* environment variables over cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DEVFLOW_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("DEVFLOW_AUTH_TOKEN"); v != "" {
		cfg.AuthToken = v
	}
	if v := os.Getenv("DEVFLOW_USER_ID"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("DEVFLOW_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("DEVFLOW_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".devflow", "config.json")
	}
	return filepath.Join(home, ".devflow", "config.json")
}
