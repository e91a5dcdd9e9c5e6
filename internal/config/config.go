// internal/config/config.go
// Centralized configuration management
// Loads from environment variables with sensible defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Document store
	// Provider is "firestore" or "memory" (development fallback).
	StoreProvider           string
	FirebaseProjectID       string
	FirebaseCredentialsFile string

	// Session verification
	// AuthProvider is "firebase" or "jwt" (local HS256 tokens).
	AuthProvider string
	JWTSecret    string

	// Cache
	RedisURL      string
	BlockCacheTTL time.Duration

	// Feed
	FeedPageSize int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StoreProvider:           getEnv("STORE_PROVIDER", "firestore"),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),

		AuthProvider: getEnv("AUTH_PROVIDER", "firebase"),
		JWTSecret:    getEnv("JWT_SECRET", "change-this-in-production"),

		RedisURL:      getEnv("REDIS_URL", ""),
		BlockCacheTTL: getEnvDuration("BLOCK_CACHE_TTL", "30s"),

		FeedPageSize: getEnvInt("FEED_PAGE_SIZE", 10),
	}
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	if c.StoreProvider != "firestore" && c.StoreProvider != "memory" {
		return fmt.Errorf("unknown store provider %q", c.StoreProvider)
	}
	if c.AuthProvider != "firebase" && c.AuthProvider != "jwt" {
		return fmt.Errorf("unknown auth provider %q", c.AuthProvider)
	}

	if c.IsProduction() {
		if c.StoreProvider != "firestore" || c.FirebaseProjectID == "" {
			return fmt.Errorf("production requires the firestore provider and FIREBASE_PROJECT_ID")
		}
		if c.AuthProvider == "jwt" && c.JWTSecret == "change-this-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if c.FeedPageSize < 1 || c.FeedPageSize > 100 {
		return fmt.Errorf("feed page size must be between 1 and 100")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Helper functions

// getEnv gets a string value from environment with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment with a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration value from environment with a default
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
