// Package envcfg holds the environment-driven configuration for the eval
// fixtures. Each service builds its config struct once in main and passes it
// by reference; nothing reads the environment after startup.
package envcfg

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// OAuthMock configures the OAuth authorization-flow mock.
// BASE_URL defaults to http://localhost:<PORT> so every absolute URL in
// metadata and redirects stays consistent with the listen address.
type OAuthMock struct {
	Port     int    `env:"PORT" envDefault:"8000"`
	BaseURL  string `env:"BASE_URL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Registry configures the fake MCP registry server.
type Registry struct {
	Port     int    `env:"REGISTRY_PORT" envDefault:"8001"`
	BaseURL  string `env:"REGISTRY_BASE_URL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// ToolServer configures the deterministic MCP tool servers.
type ToolServer struct {
	Transport string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	Listen    string `env:"MCP_LISTEN" envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load parses environment variables into target.
func Load(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// LoadOAuthMock builds the OAuth mock config and resolves the base URL default.
func LoadOAuthMock() (*OAuthMock, error) {
	var cfg OAuthMock
	if err := Load(&cfg); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	return &cfg, nil
}

// LoadRegistry builds the registry config and resolves the base URL default.
func LoadRegistry() (*Registry, error) {
	var cfg Registry
	if err := Load(&cfg); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	return &cfg, nil
}

// LoadToolServer builds the tool server config.
func LoadToolServer() (*ToolServer, error) {
	var cfg ToolServer
	if err := Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
