package config

import (
	"os"
)

type Config struct {
	// Database
	DatabaseURL string

	// HTTP server
	Port string

	// Refresh job
	RefreshSpec    string
	RefreshEnabled bool

	Environment string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "sqlite:props.db"),

		Port: getEnv("PORT", "8080"),

		RefreshSpec:    getEnv("REFRESH_CRON", "0 */2 * * * *"),
		RefreshEnabled: getEnv("REFRESH_ENABLED", "true") == "true",

		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
