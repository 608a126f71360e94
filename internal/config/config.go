package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"wxcli/internal/weather"
)

// EnvAPIKey is the environment variable holding the provider API key
const EnvAPIKey = "OPENWEATHER_API_KEY"

// Config represents the application configuration
type Config struct {
	Provider weather.ProviderConfig `toml:"provider"` // Weather provider settings
	Logging  LoggingConfig          `toml:"logging"`  // Application logging settings
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`  // Log level: "debug", "info", "warn", or "error"
	Format string `toml:"format"` // Log format: "json" (structured) or "console" (human-readable)
}

// Default returns the built-in configuration used when no config file exists
func Default() *Config {
	return &Config{
		Provider: weather.DefaultProviderConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads the configuration from the specified file path
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// LoadWithFallback loads the configuration by checking multiple locations in
// order of preference. If no config file exists anywhere, the built-in
// defaults are returned: the tool must run with no setup beyond the API key.
func LoadWithFallback(preferredPath string) (*Config, error) {
	searchPaths := []string{
		preferredPath,         // User-specified path (if provided)
		"configs/config.toml", // Location in configs/ folder
		"config.toml",         // Root directory
	}

	for _, path := range searchPaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			config, err := Load(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
			return config, nil
		}
		// An explicitly requested file must exist
		if path == preferredPath && preferredPath != "" {
			return nil, fmt.Errorf("config file not found: %s", preferredPath)
		}
	}

	return Default(), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Provider.APIBaseURL == "" {
		return fmt.Errorf("provider api_base_url cannot be empty")
	}

	if c.Provider.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("provider request_timeout_seconds must be greater than 0: %d", c.Provider.RequestTimeoutSeconds)
	}

	switch c.Provider.Units {
	case "metric", "imperial", "standard":
	default:
		return fmt.Errorf("invalid provider units: %s (must be 'metric', 'imperial', or 'standard')", c.Provider.Units)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s (must be 'debug', 'info', 'warn', or 'error')", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (must be 'json' or 'console')", c.Logging.Format)
	}

	return nil
}

// ResolveAPIKey reads the provider API key from the environment.
// Absence is reported as ErrMissingCredential so the caller can fail
// before any network call is attempted.
func ResolveAPIKey() (string, error) {
	key, ok := os.LookupEnv(EnvAPIKey)
	if !ok || key == "" {
		return "", fmt.Errorf("%s: %w", EnvAPIKey, weather.ErrMissingCredential)
	}
	return key, nil
}
