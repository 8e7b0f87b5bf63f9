// ABOUTME: Application configuration loaded from environment variables
// ABOUTME: Provides validation and sensible defaults for all settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	Extraction ExtractionConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port the API listens on
	Port string

	// RateLimitPerMinute caps extraction requests per client IP.
	// Zero disables rate limiting.
	RateLimitPerMinute int
}

// CacheConfig holds cache configuration
type CacheConfig struct {
	// Type selects the cache backend: "memory" or "redis"
	Type string

	// Redis holds Redis-specific settings, used when Type is "redis"
	Redis RedisConfig
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// ExtractionConfig holds extraction pipeline configuration
type ExtractionConfig struct {
	// CacheTTLSeconds is how long extracted records stay cached per URL
	CacheTTLSeconds int

	// ImageInlineMaxBytes bounds top-image inlining; zero uses the
	// service default
	ImageInlineMaxBytes int64

	// FetchTimeoutSeconds bounds live page snapshot fetches
	FetchTimeoutSeconds int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is a logrus level name: debug, info, warn, error
	Level string

	// Format is "json" for production or "text" for local development
	Format string
}

// LoadFromEnv loads configuration from environment variables with defaults
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8000"),
			RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		},
		Cache: CacheConfig{
			Type: getEnv("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnv("REDIS_ADDRESS", ""),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvInt("REDIS_DB", 0),
			},
		},
		Extraction: ExtractionConfig{
			CacheTTLSeconds:     getEnvInt("EXTRACTION_CACHE_TTL", 3600),
			ImageInlineMaxBytes: int64(getEnvInt("IMAGE_INLINE_MAX_BYTES", 0)),
			FetchTimeoutSeconds: getEnvInt("FETCH_TIMEOUT", 15),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimitPerMinute < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Cache.Type != "memory" && c.Cache.Type != "redis" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Extraction.CacheTTLSeconds < 0 {
		return errors.New("extraction cache TTL cannot be negative")
	}

	if c.Extraction.FetchTimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	return nil
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an int or a default.
// Unparseable values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
