package config

import (
	"os"
	"strconv"

	"datalens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	UI       UIConfig
	Logging  LoggingConfig
	Upload   UploadConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds JSON API server settings
type ServerConfig struct {
	Port string
}

// UIConfig holds dashboard server settings
type UIConfig struct {
	Port    string
	GinMode string
}

// LoggingConfig holds structured logging settings. SeqURL is optional; when
// empty, logs go to the console only.
type LoggingConfig struct {
	SeqURL string
}

// UploadConfig holds file ingestion limits
type UploadConfig struct {
	MaxBytes int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		UI: UIConfig{
			Port:    getEnvOrDefault("UI_PORT", "8501"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Logging: LoggingConfig{
			SeqURL: getEnvOrDefault("SEQ_URL", ""),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 10<<20),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
