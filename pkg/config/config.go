/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/airdata/ourairports-api/pkg/logging"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OURAIRPORTS_"

// Config represents the service configuration
type Config struct {
	Port    int     `yaml:"port"`
	Bind    string  `yaml:"bind"`
	Logging Logging `yaml:"logging"`
	Source  Source  `yaml:"source"`
	Refresh Refresh `yaml:"refresh"`
	Server  Server  `yaml:"server"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Source describes where datasets are downloaded from
type Source struct {
	BaseURL   string            `yaml:"base_url"`
	Timeout   time.Duration     `yaml:"timeout"`
	UserAgent string            `yaml:"user_agent"`
	URLs      map[string]string `yaml:"urls,omitempty"`
}

// Refresh controls periodic reloading. A zero interval disables it.
type Refresh struct {
	Interval time.Duration `yaml:"interval"`
}

// Server contains HTTP server settings
type Server struct {
	StaticDir       string        `yaml:"static_dir"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Port: 8080,
		Bind: "127.0.0.1",
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Source: Source{
			BaseURL:   ourairports.DefaultBaseURL,
			Timeout:   ourairports.DefaultTimeout,
			UserAgent: ourairports.DefaultUserAgent,
		},
		Refresh: Refresh{
			Interval: 24 * time.Hour,
		},
		Server: Server{
			AllowedOrigins:  []string{"*"},
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// LoadConfig loads configuration from the specified path. Keys missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig writes a default configuration to configPath. An existing
// file is only replaced when force is set.
func BootstrapConfig(configPath string, force bool) (*Config, error) {
	if ConfigExists(configPath) && !force {
		return nil, fmt.Errorf("config file already exists: %s", configPath)
	}

	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./ourairports.yaml"
	}

	// For Linux/macOS, use ~/.config/ourairports/config.yaml
	configDir := filepath.Join(homeDir, ".config", "ourairports")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables that are already set win, and a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from OURAIRPORTS_* variables found by lookup,
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sPORT: %w", EnvPrefix, err)
		}
		c.Port = port
	}
	if v, ok := get("BIND"); ok {
		c.Bind = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
	if v, ok := get("SOURCE_BASE_URL"); ok {
		c.Source.BaseURL = v
	}
	if v, ok := get("SOURCE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sSOURCE_TIMEOUT: %w", EnvPrefix, err)
		}
		c.Source.Timeout = d
	}
	if v, ok := get("REFRESH_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sREFRESH_INTERVAL: %w", EnvPrefix, err)
		}
		c.Refresh.Interval = d
	}
	if v, ok := get("STATIC_DIR"); ok {
		c.Server.StaticDir = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source base_url cannot be empty")
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source timeout cannot be negative")
	}
	if c.Refresh.Interval < 0 {
		return fmt.Errorf("refresh interval cannot be negative")
	}
	for name := range c.Source.URLs {
		if _, err := ourairports.ParseDataset(name); err != nil {
			return fmt.Errorf("invalid source url override: %w", err)
		}
	}
	return nil
}

// SourceURL returns the URL dataset d is fetched from: an explicit override
// if configured, otherwise the base URL joined with the file name.
func (c *Config) SourceURL(d ourairports.Dataset) string {
	for name, u := range c.Source.URLs {
		if parsed, err := ourairports.ParseDataset(name); err == nil && parsed == d && u != "" {
			return u
		}
	}
	base := c.Source.BaseURL
	if base == "" {
		base = ourairports.DefaultBaseURL
	}
	return d.SourceURL(base)
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}
