// Package config provides configuration loading and validation for the site server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Duration is a time.Duration that reads from strings such as "1.5s" in both
// JSON config files and environment variables.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the server configuration. It can be loaded from a JSON
// file or from PORTFOLIO_* environment variables.
type Config struct {
	Port           int      `json:"port,omitempty" env:"PORTFOLIO_PORT" envDefault:"8080"`                   // HTTP listen port
	DataDir        string   `json:"data_dir,omitempty" env:"PORTFOLIO_DATA_DIR" envDefault:"data"`           // Directory holding the content documents
	ContactDelay   Duration `json:"contact_delay,omitempty" env:"PORTFOLIO_CONTACT_DELAY" envDefault:"1.5s"` // Simulated delivery latency
	ContactTimeout Duration `json:"contact_timeout,omitempty" env:"PORTFOLIO_CONTACT_TIMEOUT" envDefault:"10s"`
	AllowedOrigin  string   `json:"allowed_origin,omitempty" env:"PORTFOLIO_ALLOWED_ORIGIN"` // CORS origin; empty means same-origin only
	Preload        bool     `json:"preload,omitempty" env:"PORTFOLIO_PRELOAD"`               // Validate all content at startup
}

// FromEnv builds a Config from the environment, applying defaults for unset variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are allowed since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("config error: 'contact_delay' must be non-negative")
	}
	if c.ContactTimeout < 0 {
		return fmt.Errorf("config error: 'contact_timeout' must be non-negative")
	}

	if c.DataDir != "" {
		info, err := os.Stat(c.DataDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: data directory not found: %s", c.DataDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: data_dir is not a directory: %s", c.DataDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.ContactDelay == 0 {
		result.ContactDelay = defaults.ContactDelay
	}
	if result.ContactTimeout == 0 {
		result.ContactTimeout = defaults.ContactTimeout
	}
	if result.AllowedOrigin == "" {
		result.AllowedOrigin = defaults.AllowedOrigin
	}

	// Bools cannot distinguish unset from false, so true wins
	result.Preload = result.Preload || defaults.Preload

	return result
}
