package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
	Secrets   SecretsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SchedulerConfig holds cron schedules for the background jobs.
// Schedules use standard five-field cron expressions.
type SchedulerConfig struct {
	Enabled          bool
	PriceRefreshSpec string
	NotificationSpec string
}

// SecretsConfig holds the fernet key used to encrypt values at rest.
// When the key is empty, encryption of stored settings is disabled.
type SecretsConfig struct {
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Scheduler: SchedulerConfig{
			Enabled:          getEnv("SCHEDULER_ENABLED", "true") == "true",
			PriceRefreshSpec: getEnv("PRICE_REFRESH_CRON", "0 18 * * *"),
			NotificationSpec: getEnv("NOTIFICATION_CRON", "0 8 * * *"),
		},
		Secrets: SecretsConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
