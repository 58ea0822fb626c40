package config

import "os"

// Config holds all application configuration
type Config struct {
	Port   string
	APIKey string // empty disables the API-key check
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		APIKey: getEnv("WARIKAN_API_KEY", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
