package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, read from environment variables.
type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"akademix"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"akademix_dev_password"`
	DBName     string `envconfig:"DB_NAME" default:"akademix"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	TokenTTL  int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Load reads the configuration from the environment. A .env file is applied
// first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
