package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds the API server configuration, populated from the environment.
type Server struct {
	// Address is the listen address (ip:port).
	Address string `env:"SERVER_ADDRESS" envDefault:":8080"`
	// DatabaseDSN is the PostgreSQL connection string.
	DatabaseDSN string `env:"DATABASE_DSN"`
	// LogLevel sets the zap log level.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseServer reads the server configuration from environment variables.
func ParseServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
