package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Diff      DiffConfig

	// BudgetFile optionally names an uncertainty budget (.yaml, .toml or
	// .json) loaded into the workspace at startup.
	BudgetFile string `envconfig:"BUDGET_FILE"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration. Scope is "client" for
// one bucket per IP or "global" for a single shared bucket.
type RateLimitConfig struct {
	RequestsPerSecond int    `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int    `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool   `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Scope             string `envconfig:"RATE_LIMIT_SCOPE" default:"client"`
}

// DiffConfig selects the finite-difference scheme used for functions
// without a closed-form derivative. A zero step uses the scheme's default.
type DiffConfig struct {
	Formula string  `envconfig:"DIFF_FORMULA" default:"central"`
	Step    float64 `envconfig:"DIFF_STEP" default:"0"`
}

// Address returns host:port.
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
			Scope:             "client",
		},
		Diff: DiffConfig{
			Formula: "central",
		},
	}
}
