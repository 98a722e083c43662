package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

const (
	STORE_POSTGRESQL = "postgresql"
	STORE_MONGODB    = "mongodb"
)

type Config struct {
	Store           string `env:"GYM_STORE" envDefault:"postgresql"`
	PostgresqlURL   string `env:"POSTGRESQL_URL"`
	MigrationsPath  string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	MongodbURL      string `env:"MONGODB_URL"`
	MongodbDatabase string `env:"MONGODB_DATABASE" envDefault:"gym"`
}

func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}

	switch c.Store {
	case STORE_POSTGRESQL:
		if c.PostgresqlURL == "" {
			return nil, fmt.Errorf("POSTGRESQL_URL must be set")
		}
	case STORE_MONGODB:
		if c.MongodbURL == "" {
			return nil, fmt.Errorf("MONGODB_URL must be set")
		}
	default:
		return nil, fmt.Errorf("invalid GYM_STORE value: %q", c.Store)
	}
	return c, nil
}
