package boot

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env    string `env:"ENV,default=dev"`
	Server struct {
		Port    string `env:"PORT,default=8080"`
		Origins string `env:"ALLOWED_ORIGINS,default=*"`
	}
	Metrics struct {
		Port string `env:"METRICS_PORT,default=8081"`
	}
	Database struct {
		Path string `env:"DATABASE_PATH,default=contacts.db"`
	}
}

func Load() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process(context.Background(), config); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}
