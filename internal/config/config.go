package config

import (
	"os"
	"strconv"

	"synthgen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Generator GeneratorConfig
	Output    OutputConfig
	Database  DatabaseConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// GeneratorConfig holds generation defaults
type GeneratorConfig struct {
	Seed        int64
	GroupPrefix string
}

// OutputConfig holds file output settings
type OutputConfig struct {
	Dir string
}

// DatabaseConfig holds optional run-manifest storage settings. Recording is
// disabled when URL is empty.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Generator: GeneratorConfig{
			Seed:        getEnvInt64OrDefault("SEED", 42),
			GroupPrefix: getEnvOrDefault("GROUP_PREFIX", "Group"),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("OUTPUT_DIR", "test inputs"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
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
