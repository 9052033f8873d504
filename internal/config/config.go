package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	DatabaseURL    string
	SessionSecret  string
	Environment    string
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")

	cfg := &Config{
		Port:          v.GetString("PORT"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		Environment:   v.GetString("APP_ENV"),
	}

	for _, origin := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL no está configurada")
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET no está configurada")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production settings
// (secure session cookies, production logger).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
