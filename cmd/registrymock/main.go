// registrymock serves a fixed catalog of MCP servers over the registry
// v0 API, for exercising a proxy's registry browsing without the network.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mcpproxy-eval/internal/envcfg"
	"mcpproxy-eval/internal/logs"
	"mcpproxy-eval/internal/registrymock"
)

var (
	port     int
	baseURL  string
	logLevel string

	version = "v0.1.0" // injected by -ldflags during build
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "registrymock",
		Short:   "Fake MCP registry with a deterministic ten-server catalog",
		Version: version,
		RunE:    run,
	}

	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default: REGISTRY_PORT env or 8001)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "External base URL (default: REGISTRY_BASE_URL env or http://localhost:<port>)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	envCfg, err := envcfg.LoadRegistry()
	if err != nil {
		return err
	}

	if port != 0 {
		envCfg.Port = port
		if baseURL == "" && os.Getenv("REGISTRY_BASE_URL") == "" {
			envCfg.BaseURL = fmt.Sprintf("http://localhost:%d", port)
		}
	}
	if baseURL != "" {
		envCfg.BaseURL = baseURL
	}
	if logLevel != "" {
		envCfg.LogLevel = logLevel
	}

	logCfg := logs.DefaultConfig()
	logCfg.Level = envCfg.LogLevel

	logger, err := logs.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	srv := registrymock.New(&registrymock.Config{
		BaseURL: envCfg.BaseURL,
		Port:    envCfg.Port,
	}, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting registry mock",
		zap.Int("port", envCfg.Port),
		zap.String("base_url", envCfg.BaseURL))

	return srv.Start(ctx)
}
