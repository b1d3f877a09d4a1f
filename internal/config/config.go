package config

import (
	"flag"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseURI   string `env:"DATABASE_URI"`
	Key           string `env:"CANTEEN_KEY"`
	TriggerSecret string `env:"TRIGGER_SECRET"`
	Environment   string `env:"ENVIRONMENT"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{Environment: "development"}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "DB connection string")
	flag.StringVar(&cfg.Environment, "e", cfg.Environment, "environment (development|production)")
	flag.Parse()

	if err := ReadServerEnvironment(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadServerEnvironment overlays environment variables on top of flag values.
func ReadServerEnvironment(cfg *Config) error {
	return env.Parse(cfg)
}

func (cfg *Config) IsProduction() bool {
	return cfg.Environment == "production"
}
