package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Storage backend selectors for the media store.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
	StorageMinIO = "minio"
)

// DB driver selectors. The sqlite driver covers the single-file relational
// deployment; postgres is the service deployment.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration (optional, enables upload rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Media store configuration
	StorageBackend string
	UploadDir      string

	// Upload rate limiting
	UploadRateLimit int
}

// Load reads configuration from environment variables. A .env file is
// auto-loaded when present; real environment variables take precedence.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "finstagram"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "finstagram.db"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		StorageBackend: getEnv("STORAGE_BACKEND", StorageLocal),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		UploadRateLimit: getEnvInt("UPLOAD_RATE_LIMIT", 60),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func Validate(cfg *Config) error {
	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBUser == "" {
			return fmt.Errorf("DB_USER is required for the postgres driver")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}

	switch cfg.StorageBackend {
	case StorageLocal, StorageS3, StorageMinIO:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND: %s", cfg.StorageBackend)
	}

	if cfg.StorageBackend == StorageLocal && cfg.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR is required for local storage")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
