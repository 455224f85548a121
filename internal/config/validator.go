package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pricebook/importer"
	"pricebook/pricelist"
)

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errors []string

	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}

	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	if c.UploadMaxBytes < 1 {
		errors = append(errors, "upload max bytes must be at least 1")
	}
	if c.UploadRatePerMin < 0 {
		errors = append(errors, "upload rate per minute cannot be negative")
	}
	if c.SheetRowLimit < 0 {
		errors = append(errors, "sheet row limit cannot be negative")
	}
	if c.PurgeInterval < time.Minute {
		errors = append(errors, "purge interval must be at least 1 minute")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults returns a configuration with default values.
func GetDefaults() *Config {
	return &Config{
		Port:             "8080",
		DatabasePath:     "pricebook.db",
		MaxOpenConns:     10,
		MaxIdleConns:     5,
		ConnMaxLifetime:  5 * time.Minute,
		LogLevel:         "INFO",
		UploadMaxBytes:   importer.MaxUploadBytes,
		UploadRatePerMin: 10,
		SheetRowLimit:    pricelist.DefaultMaxSheetRows,
		PurgeInterval:    24 * time.Hour,
	}
}
