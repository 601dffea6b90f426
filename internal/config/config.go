// Package config loads application configuration from the environment with
// an optional YAML file overlay and hot-reloadable feature flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the application needs at startup.
type Config struct {
	Environment string   `yaml:"environment"`
	Port        int      `yaml:"port"`
	Supabase    Supabase `yaml:"supabase"`
	Tracing     Tracing  `yaml:"tracing"`
	CORS        CORS     `yaml:"cors"`
	Features    Features `yaml:"features"`
}

// Supabase holds the hosted record-store and auth credentials.
type Supabase struct {
	URL            string `yaml:"url"`
	ServiceRoleKey string `yaml:"serviceRoleKey"`
	JWTSecret      string `yaml:"jwtSecret"`
}

// Tracing holds the OTLP exporter settings; tracing stays off when the
// endpoint is empty.
type Tracing struct {
	Endpoint string `yaml:"endpoint"`
}

// CORS holds the allowed browser origins.
type CORS struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// Features contains feature flags for the application.
type Features struct {
	EnableMetrics        bool `yaml:"enableMetrics"`
	EnableCircuitBreaker bool `yaml:"enableCircuitBreaker"`
}

// Load builds the configuration from environment variables, then overlays
// the YAML file named by CONFIG_FILE when present. Environment variables
// win over defaults; the file wins over both for the keys it sets.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: envOr("ENVIRONMENT", "development"),
		Port:        envIntOr("PORT", 8080),
		Supabase: Supabase{
			URL:            os.Getenv("SUPABASE_URL"),
			ServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
			JWTSecret:      os.Getenv("SUPABASE_JWT_SECRET"),
		},
		Tracing: Tracing{
			Endpoint: os.Getenv("OTLP_ENDPOINT"),
		},
		CORS: CORS{
			AllowedOrigins: splitOr("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Features: Features{
			EnableMetrics:        os.Getenv("ENABLE_METRICS") != "false", // default true
			EnableCircuitBreaker: os.Getenv("ENABLE_CIRCUIT_BREAKER") == "true",
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise fail at first request.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	// Supabase credentials are optional: without them the server runs
	// against the in-memory store for local development.
	if c.Supabase.URL != "" && c.Supabase.ServiceRoleKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required when SUPABASE_URL is set")
	}
	return nil
}

// UseSupabase reports whether the hosted store is configured.
func (c *Config) UseSupabase() bool {
	return c.Supabase.URL != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitOr(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
