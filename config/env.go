package config

import "os"

// GetEnv returns the value of an environment variable, or "" when unset.
// godotenv.Load in main populates the process environment from .env first.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault returns the env value or a fallback when unset/blank.
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
