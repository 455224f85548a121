// Package config loads the server configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"pricebook/importer"
	"pricebook/pricelist"
)

// Config is the server configuration.
type Config struct {
	// Server
	Port string `json:"port"`

	// Database
	DatabasePath string `json:"database_path"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Logging
	LogLevel string `json:"log_level"`

	// Upload limits
	UploadMaxBytes   int64 `json:"upload_max_bytes"`
	UploadRatePerMin int   `json:"upload_rate_per_min"`

	// Scan limits
	SheetRowLimit int `json:"sheet_row_limit"`

	// Retention
	PurgeInterval time.Duration `json:"purge_interval"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		// Server
		Port: getEnv("SERVER_PORT", "8080"),

		// Database
		DatabasePath: getEnv("DATABASE_PATH", "pricebook.db"),

		// Connection pooling
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		// Upload limits
		UploadMaxBytes:   getEnvInt64("UPLOAD_MAX_BYTES", importer.MaxUploadBytes),
		UploadRatePerMin: getEnvInt("UPLOAD_RATE_PER_MIN", 10),

		// Scan limits
		SheetRowLimit: getEnvInt("SHEET_ROW_LIMIT", pricelist.DefaultMaxSheetRows),

		// Retention
		PurgeInterval: getEnvDuration("PURGE_INTERVAL", 24*time.Hour),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// EngineConfig builds the scanner configuration this server runs with.
func (c *Config) EngineConfig() pricelist.Config {
	cfg := pricelist.DefaultConfig()
	cfg.MaxSheetRows = c.SheetRowLimit
	return cfg
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as int with a fallback default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 reads an environment variable as int64 with a fallback default.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration reads an environment variable as Duration with a fallback default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
