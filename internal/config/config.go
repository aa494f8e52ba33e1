package config

import (
	"fmt"
	"os"
)

type Config struct {
	DatabaseURL   string
	RedisURL      string
	Port          string
	BaseURL       string // Public base URL for share links (e.g. http://localhost:8080)
	AllowedOrigin string // Frontend origin for CORS
}

func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	return &Config{
		DatabaseURL:   dbURL,
		RedisURL:      redisURL,
		Port:          port,
		BaseURL:       baseURL,
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}, nil
}
