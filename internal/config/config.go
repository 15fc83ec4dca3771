package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int    `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./auth.db"`
	JWTSecret    string `env:"JWT_SECRET"`
	ClientURL    string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
}

// Load loads configuration from the environment. A .env file in the working
// directory is read first when present; real deployments set variables
// directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// A missing secret would make every session token forgeable.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set to a non-empty value")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode, which
// turns on the Secure attribute of the session cookie.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
