package ratelimit

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EndpointConfig is the limit applied to one route.
type EndpointConfig struct {
	Path   string        // Exact path, or a prefix when it ends with "/"
	Method string        // HTTP method; empty matches any method
	Limit  int           // Requests per Window; zero or less means unlimited
	Window time.Duration // Refill window
	Burst  int           // Bucket capacity (defaults to Limit if 0)
}

// envConfig mirrors the RATE_LIMIT_* environment variables.
type envConfig struct {
	Enabled         bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	DefaultLimit    int           `env:"RATE_LIMIT_DEFAULT_LIMIT" envDefault:"600"`
	DefaultWindow   time.Duration `env:"RATE_LIMIT_DEFAULT_WINDOW" envDefault:"1m"`
	ContactLimit    int           `env:"RATE_LIMIT_CONTACT_LIMIT" envDefault:"5"`
	ContactWindow   time.Duration `env:"RATE_LIMIT_CONTACT_WINDOW" envDefault:"1h"`
	ContactBurst    int           `env:"RATE_LIMIT_CONTACT_BURST" envDefault:"2"`
	CleanupInterval time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"5m"`
	Whitelist       []string      `env:"RATE_LIMIT_WHITELIST" envSeparator:","`
	Blacklist       []string      `env:"RATE_LIMIT_BLACKLIST" envSeparator:","`
}

// LoadConfig loads rate limiting configuration from RATE_LIMIT_* environment variables.
func LoadConfig() (*Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse rate limit environment: %w", err)
	}

	if !raw.Enabled {
		return &Config{Enabled: false}, nil
	}

	if raw.DefaultWindow <= 0 || raw.ContactWindow <= 0 {
		return nil, fmt.Errorf("rate limit windows must be positive")
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    raw.DefaultLimit,
		DefaultWindow:   raw.DefaultWindow,
		CleanupInterval: raw.CleanupInterval,
		Whitelist:       toSet(raw.Whitelist),
		Blacklist:       toSet(raw.Blacklist),
		EndpointConfigs: EndpointConfigs(raw.ContactLimit, raw.ContactWindow, raw.ContactBurst),
	}, nil
}

// DefaultEndpointConfigs returns the route limits used when nothing is overridden.
func DefaultEndpointConfigs() []EndpointConfig {
	return EndpointConfigs(5, time.Hour, 2)
}

// EndpointConfigs builds the route table with the given contact limit.
// Reads fall through to the default limit; /health is unlimited in the matcher.
func EndpointConfigs(contactLimit int, contactWindow time.Duration, contactBurst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/contact", Method: http.MethodPost, Limit: contactLimit, Window: contactWindow, Burst: contactBurst},
	}
}

// toSet builds a lookup set from a list of client addresses.
func toSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
