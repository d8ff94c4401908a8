package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultTopic        = "sgsb/leituras/#"
	defaultClientID     = "sgsb-telemetry"
	defaultUserID       = "telemetria"
	defaultMinInterval  = 5 * time.Minute
	defaultValueEpsilon = 0.01
)

// Config holds runtime configuration for the telemetry bridge.
type Config struct {
	DatabaseURL  string
	Broker       string
	ClientID     string
	Username     string
	Password     string
	Topic        string
	UserID       string
	MinInterval  time.Duration
	ValueEpsilon float64
	DryRun       bool
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	cfg.Broker = strings.TrimSpace(os.Getenv("MQTT_BROKER"))
	if cfg.Broker == "" {
		return cfg, errors.New("MQTT_BROKER is required")
	}

	cfg.ClientID = envOr("MQTT_CLIENT_ID", defaultClientID)
	cfg.Username = os.Getenv("MQTT_USERNAME")
	cfg.Password = os.Getenv("MQTT_PASSWORD")
	cfg.Topic = envOr("TELEMETRY_TOPIC", defaultTopic)
	cfg.UserID = envOr("TELEMETRY_USER_ID", defaultUserID)
	cfg.LogLevel = envOr("LOG_LEVEL", "info")
	cfg.LogFormat = envOr("LOG_FORMAT", "json")

	cfg.MinInterval = defaultMinInterval
	if v := strings.TrimSpace(os.Getenv("TELEMETRY_MIN_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEMETRY_MIN_INTERVAL: %w", err)
		}
		cfg.MinInterval = d
	}

	cfg.ValueEpsilon = defaultValueEpsilon
	if v := strings.TrimSpace(os.Getenv("TELEMETRY_VALUE_EPSILON")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEMETRY_VALUE_EPSILON: %w", err)
		}
		cfg.ValueEpsilon = f
	}

	dryRun := strings.TrimSpace(os.Getenv("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
