// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), loads them into structured Go types, and validates that
// required values are present so the app fails fast on bad or missing
// configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes the variables this service reads, e.g.
// CONTENTHUB_DATABASE.HOST maps to Config.Database.Host.
const envPrefix = "CONTENTHUB_"

// Config is the root configuration object for the application.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env      string `koanf:"env" validate:"required,oneof=local staging production"`
	LogLevel string `koanf:"log_level"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool sizing.
// MaxConns bounds the shared pool; acquires beyond it queue rather than
// fail.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxConns        int    `koanf:"max_conns" validate:"required,min=1"`
	MinConns        int    `koanf:"min_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// New loads configuration from environment variables, unmarshals it into
// Config, and validates it.
func New() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
