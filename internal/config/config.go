package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"FinancialDashboard"`
		Port int    `envconfig:"PORT" default:"5000"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"financial_dashboard"`
	}

	Auth struct {
		JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
		TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
		BcryptCost int           `envconfig:"BCRYPT_COST" default:"12"`
	}

	CORS struct {
		Origin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
