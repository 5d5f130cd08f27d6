package envcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOAuthMock_Defaults(t *testing.T) {
	cfg, err := LoadOAuthMock()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOAuthMock_Env(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://auth.example.com")

	cfg, err := LoadOAuthMock()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "https://auth.example.com", cfg.BaseURL)
}

func TestLoadOAuthMock_BaseURLTracksPort(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := LoadOAuthMock()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
}

func TestLoadRegistry_Defaults(t *testing.T) {
	cfg, err := LoadRegistry()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "http://localhost:8001", cfg.BaseURL)
}

func TestLoadToolServer(t *testing.T) {
	cfg, err := LoadToolServer()
	require.NoError(t, err)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv("MCP_TRANSPORT", "streamable-http")
	t.Setenv("MCP_LISTEN", ":9090")

	cfg, err = LoadToolServer()
	require.NoError(t, err)
	assert.Equal(t, "streamable-http", cfg.Transport)
	assert.Equal(t, ":9090", cfg.Listen)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := LoadOAuthMock()
	assert.Error(t, err)
}
