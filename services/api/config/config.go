package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the REST API.
type Config struct {
	DatabaseURL    string
	Port           int
	JWTSecret      string
	SessionCookie  string
	OwnerOpenID    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	BlobAPIURL     string
	BlobBaseURL    string
	BlobToken      string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:           8080,
		SessionCookie:  "app_session_id",
		RedisAddr:      "localhost:6379",
		LogLevel:       "info",
		LogFormat:      "json",
		RequestTimeout: 10 * time.Second,
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is required")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil && n >= 0 {
			cfg.RedisDB = n
		} else {
			return cfg, fmt.Errorf("invalid REDIS_DB: %s", dbStr)
		}
	}

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT"); timeoutStr != "" {
		if d, err := time.ParseDuration(timeoutStr); err == nil && d > 0 {
			cfg.RequestTimeout = d
		} else {
			return cfg, fmt.Errorf("invalid REQUEST_TIMEOUT: %s", timeoutStr)
		}
	}

	if cookie := os.Getenv("SESSION_COOKIE"); cookie != "" {
		cfg.SessionCookie = cookie
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	cfg.OwnerOpenID = os.Getenv("OWNER_OPEN_ID")
	cfg.BlobAPIURL = os.Getenv("BLOB_API_URL")
	cfg.BlobBaseURL = os.Getenv("BLOB_BASE_URL")
	cfg.BlobToken = os.Getenv("BLOB_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
