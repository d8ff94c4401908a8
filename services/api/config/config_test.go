package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://sgsb@localhost/sgsb")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("API_PORT", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("SESSION_COOKIE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "app_session_id", cfg.SessionCookie)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := Load()
	assert.EqualError(t, err, "DATABASE_URL is required")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://sgsb@localhost/sgsb")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestLoadPortFallback(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("API_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadRejectsBadValues(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "abc")
	_, err := Load()
	assert.EqualError(t, err, "invalid PORT: abc")

	t.Setenv("PORT", "8080")
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err = Load()
	assert.EqualError(t, err, "invalid REQUEST_TIMEOUT: soon")
}
