package main

import (
	"os"
	"time"
)

// Config holds all runtime configuration. It is built once at startup and
// passed explicitly to everything that needs it; nothing reads the
// environment after this point.
type Config struct {
	Port       string
	DBPath     string
	JWTSecret  string
	LogLevel   string
	CORSOrigin string
	TokenTTL   time.Duration
}

// NewConfig loads configuration from environment variables with development
// defaults.
func NewConfig() *Config {
	ttl := time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}
	return &Config{
		Port:       getEnv("PORT", "8081"),
		DBPath:     getEnv("DB_PATH", "db.sqlite"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-insecure-secret-change"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		TokenTTL:   ttl,
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
