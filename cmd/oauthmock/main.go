// oauthmock runs the OAuth authorization-flow mock used in proxy
// evaluation runs.
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
	"mcpproxy-eval/internal/oauthmock"
)

var (
	port      int
	baseURL   string
	logLevel  string
	logToFile bool
	logDir    string

	version = "v0.1.0" // injected by -ldflags during build
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "oauthmock",
		Short:   "OAuth authorization server mock requiring the RFC 8707 resource parameter",
		Version: version,
		RunE:    run,
	}

	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default: PORT env or 8000)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "External base URL (default: BASE_URL env or http://localhost:<port>)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&logToFile, "log-to-file", false, "Enable logging to file")
	rootCmd.Flags().StringVar(&logDir, "log-dir", "", "Log directory path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	envCfg, err := envcfg.LoadOAuthMock()
	if err != nil {
		return err
	}

	// Flags win over environment.
	if port != 0 {
		envCfg.Port = port
		if baseURL == "" && os.Getenv("BASE_URL") == "" {
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
	logCfg.EnableFile = logToFile
	logCfg.LogDir = logDir
	logCfg.Filename = "oauthmock.log"

	logger, err := logs.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	srv := oauthmock.New(&oauthmock.Config{
		BaseURL: envCfg.BaseURL,
		Port:    envCfg.Port,
	}, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting OAuth mock",
		zap.Int("port", envCfg.Port),
		zap.String("base_url", envCfg.BaseURL))

	return srv.Start(ctx)
}
