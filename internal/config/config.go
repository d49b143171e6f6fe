package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting the service needs. It is built once in
// main and handed to the components that use it; nothing reads the
// environment after startup.
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"host=localhost user=postgres password=postgres dbname=collablab port=5432 sslmode=disable"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
