package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string `env:"PORT" envDefault:"5000"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`
	ProductsFile  string `env:"PRODUCTS_FILE" envDefault:"data/products.json"`
	OrdersFile    string `env:"ORDERS_FILE" envDefault:"data/orders.json"`
	AdminDir      string `env:"ADMIN_DIR" envDefault:"admin"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env when present, then the process environment. A missing
// .env file is fine; deployments set real environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
