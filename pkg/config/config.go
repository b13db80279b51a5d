package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds CLI and discovery configuration
type Config struct {
	// PluginDirs are the manifest directories scanned for distributions
	PluginDirs []string

	// LogLevel is a logrus level name (debug, info, warn, error)
	LogLevel string

	// WASMEnabled turns on the Extism loader for *.wasm targets
	WASMEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		PluginDirs:  getEnvList("DOTPLUG_PLUGIN_DIRS", DefaultPluginDirectories()),
		LogLevel:    getEnv("DOTPLUG_LOG_LEVEL", "info"),
		WASMEnabled: getEnvBool("DOTPLUG_WASM_ENABLED", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if len(c.PluginDirs) == 0 {
		return fmt.Errorf("at least one plugin directory is required")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}

// ParsedLogLevel returns the logrus level for LogLevel. Validate must have
// passed.
func (c *Config) ParsedLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// DefaultPluginDirectories returns the default manifest search directories
func DefaultPluginDirectories() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "/tmp"
	}

	return []string{
		filepath.Join(homeDir, ".dotplug", "plugins"),
		"/etc/dotplug/plugins",
		"./plugins", // Current directory
	}
}

// getEnv retrieves an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvList retrieves a path-list environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, string(os.PathListSeparator)) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
