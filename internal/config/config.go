package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// MigrationsPath, when set, makes the server apply pending schema
	// migrations from this directory on startup.
	MigrationsPath string

	// Document service configuration. An empty token leaves the service
	// reachable but unauthenticated; failing calls degrade to the
	// unavailable document marker.
	NotionToken             string
	NotionBaseURL           string
	NotionBlogRootPageID    string
	NotionProductRootPageID string

	// Object storage configuration. An empty region and public base URL
	// together disable storage resolution permanently (degraded mode).
	StorageRegion        string
	StorageEndpoint      string
	StoragePublicBaseURL string
	StorageBlogBucket    string
	StorageProductBucket string

	// Static asset configuration
	AssetRoot string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "simpro"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MigrationsPath: getEnv("MIGRATIONS_PATH", ""),

		NotionToken:             getEnv("NOTION_SECRET", ""),
		NotionBaseURL:           getEnv("NOTION_BASE_URL", ""),
		NotionBlogRootPageID:    getEnv("NOTION_BLOG_ROOT_PAGE_ID", ""),
		NotionProductRootPageID: getEnv("NOTION_PRODUCT_ROOT_PAGE_ID", ""),

		StorageRegion:        getEnv("STORAGE_REGION", ""),
		StorageEndpoint:      getEnv("STORAGE_ENDPOINT", ""),
		StoragePublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", ""),
		StorageBlogBucket:    getEnv("STORAGE_BLOG_BUCKET", "blog"),
		StorageProductBucket: getEnv("STORAGE_PRODUCT_BUCKET", "product"),

		AssetRoot: getEnv("ASSET_ROOT", "./public"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// StorageConfigured reports whether object storage settings are present.
// Without them the application runs in a permanent degraded mode where
// storage-backed images resolve to the default image.
func (c *Config) StorageConfigured() bool {
	return c.StorageRegion != "" || c.StoragePublicBaseURL != ""
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
