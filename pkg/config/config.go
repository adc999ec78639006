// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, the upstream API and logging

package config

import (
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Upstream contains configuration for the content API being proxied
	Upstream UpstreamConfig

	// Logging contains logger configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// UpstreamConfig holds upstream API configuration
type UpstreamConfig struct {
	// BaseURL is prefixed to every upstream path
	BaseURL string

	UserAgent string

	// Timeout bounds each upstream attempt and, separately, a whole fetch including retries
	Timeout time.Duration

	// RateLimit is the number of outbound requests per second, 0 disables throttling
	RateLimit float64

	Burst int
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File enables rotated file output when set
	File string
}

// LoadFromEnv loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8000"),
			ReadTimeout:  getEnvAsDurationOrDefault("READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDurationOrDefault("WRITE_TIMEOUT", 15*time.Second),
		},
		Upstream: UpstreamConfig{
			BaseURL:   getEnvOrDefault("UPSTREAM_BASE_URL", "https://www.reddit.com"),
			UserAgent: getEnvOrDefault("UPSTREAM_USER_AGENT", ""),
			Timeout:   getEnvAsDurationOrDefault("UPSTREAM_TIMEOUT", 10*time.Second),
			RateLimit: getEnvAsFloatOrDefault("UPSTREAM_RATE_LIMIT", 0),
			Burst:     getEnvAsIntOrDefault("UPSTREAM_BURST", 3),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go duration strings ("5s") or plain seconds ("5")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.Port, validation.Required, is.Port),
		validation.Field(&c.Server.ReadTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.Server.WriteTimeout, validation.Min(time.Duration(0))),
	); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&c.Upstream,
		validation.Field(&c.Upstream.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Upstream.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.Upstream.RateLimit, validation.Min(0.0)),
		validation.Field(&c.Upstream.Burst, validation.Required, validation.Min(1)),
	); err != nil {
		return err
	}

	return validation.ValidateStruct(&c.Logging,
		validation.Field(&c.Logging.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Logging.Format, validation.In("json", "text")),
	)
}
