package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBPath      string `env:"DB_PATH" envDefault:"farmers_crop_production.db"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultYear int    `env:"DEFAULT_YEAR" envDefault:"2025"`
}

func Load() (AppConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DefaultYear < 1900 || cfg.DefaultYear > 2100 {
		return AppConfig{}, fmt.Errorf("DEFAULT_YEAR %d outside 1900-2100", cfg.DefaultYear)
	}
	return cfg, nil
}
