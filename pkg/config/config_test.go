package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "127.0.0.1:8080", cfg.DevServer.Addr())
	assert.True(t, cfg.DevServer.WithIssuer)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend.internal:9000")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("DEVSERVER_WITH_ISSUER", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.DevServer.WithIssuer)
}

func TestLoad_MalformedTimeoutKeepsDefault(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "thirty")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout,
		"a non-numeric timeout must not collapse to an unbounded client")
}
