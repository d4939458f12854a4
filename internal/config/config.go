package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats for query results
const (
	OutputTable = "table"
	OutputPlain = "plain"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DBType            string // postgres, mysql, mariadb, sqlite, sqlite-go, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	DBLogLevel        string // silent, error, warn, info

	// Logging configuration
	LogMode  string // development, production
	LogLevel string
	LogFile  string

	// Terminal output
	OutputFormat string
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables already present in the environment win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBType:            strings.ToLower(getEnv("DB_TYPE", "postgres")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBLogLevel:        strings.ToLower(getEnv("DB_LOG_LEVEL", "silent")),
		LogMode:           strings.ToLower(getEnv("LOG_MODE", "development")),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFile:           getEnv("LOG_FILE", ""),
		OutputFormat:      strings.ToLower(getEnv("OUTPUT_FORMAT", OutputTable)),
	}

	return cfg, nil
}

// ApplyArgs overrides the database name, port and user with the
// positional command line arguments.
func (c *Config) ApplyArgs(dbname, port, user string) {
	c.DBDatabase = dbname
	c.DBPort = port
	c.DBUser = user
}

// Validate checks the fields required to open a connection
func (c *Config) Validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	switch c.DBType {
	case "sqlite", "sqlite-go":
		// file path only, no credentials
	default:
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
	}
	if c.DBConnectionLimit < 1 {
		return fmt.Errorf("DB_CONNECTION_LIMIT must be positive, got %d", c.DBConnectionLimit)
	}
	switch c.OutputFormat {
	case OutputTable, OutputPlain:
	default:
		return fmt.Errorf("unsupported OUTPUT_FORMAT: %s", c.OutputFormat)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
