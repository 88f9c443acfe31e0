package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Store    StoreConfig
	Grocery  GroceryConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

type StoreConfig struct {
	// DataFile is the JSON database path. Empty selects the in-memory store.
	DataFile string
}

type GroceryConfig struct {
	BaseURL      string
	APIKey       string
	AppName      string
	AppVersion   string
	StoreID      string
	RateLimitRPS float64
	RateBurst    int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTLHours: getEnvAsInt("TOKEN_TTL_HOURS", 24),
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@batchcook.local"),
		},
		Store: StoreConfig{
			DataFile: getEnv("DATA_FILE", ""),
		},
		Grocery: GroceryConfig{
			BaseURL:      getEnv("GROCERY_API_URL", "https://api-partners.intermarche.com/v1"),
			APIKey:       getEnv("GROCERY_API_KEY", "demo-key"),
			AppName:      getEnv("GROCERY_APP_NAME", "BatchEasyCook"),
			AppVersion:   getEnv("GROCERY_APP_VERSION", "1.0.0"),
			StoreID:      getEnv("GROCERY_STORE_ID", "103932"),
			RateLimitRPS: getEnvAsFloat("GROCERY_RATE_LIMIT_RPS", 0.5),
			RateBurst:    getEnvAsInt("GROCERY_RATE_BURST", 5),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}

	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("admin credentials must be configured")
	}

	if c.Grocery.RateLimitRPS <= 0 || c.Grocery.RateBurst <= 0 {
		return fmt.Errorf("grocery rate limit must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
