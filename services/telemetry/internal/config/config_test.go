package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://sgsb@localhost/sgsb")
	t.Setenv("MQTT_BROKER", "tcp://localhost:1883")
	t.Setenv("TELEMETRY_TOPIC", "")
	t.Setenv("TELEMETRY_MIN_INTERVAL", "90s")
	t.Setenv("TELEMETRY_VALUE_EPSILON", "")
	t.Setenv("DRY_RUN", "TRUE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sgsb/leituras/#", cfg.Topic)
	assert.Equal(t, 90*time.Second, cfg.MinInterval)
	assert.Equal(t, 0.01, cfg.ValueEpsilon)
	assert.True(t, cfg.DryRun)
}

func TestLoadRequiresBroker(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://sgsb@localhost/sgsb")
	t.Setenv("MQTT_BROKER", "")

	_, err := Load()
	assert.EqualError(t, err, "MQTT_BROKER is required")
}

func TestLoadRejectsBadEpsilon(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://sgsb@localhost/sgsb")
	t.Setenv("MQTT_BROKER", "tcp://localhost:1883")
	t.Setenv("TELEMETRY_VALUE_EPSILON", "tiny")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid TELEMETRY_VALUE_EPSILON")
}
