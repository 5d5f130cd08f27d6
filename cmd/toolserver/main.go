// toolserver runs one of the deterministic MCP tool servers over stdio or
// streamable HTTP.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mcpproxy-eval/internal/envcfg"
	"mcpproxy-eval/internal/logs"
	"mcpproxy-eval/internal/toolsrv"
)

var (
	transport string
	listen    string
	logLevel  string

	version = "v0.1.0" // injected by -ldflags during build
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "toolserver <name>",
		Short:   "Deterministic MCP tool servers for evaluation runs",
		Long:    "Serves one of the fixed-response MCP tool servers: " + strings.Join(toolsrv.Names(), ", ") + ".",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&transport, "transport", "t", "", "Transport (stdio, streamable-http; default: MCP_TRANSPORT env or stdio)")
	rootCmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address for streamable-http (default: MCP_LISTEN env or :8080)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	cfg, err := envcfg.LoadToolServer()
	if err != nil {
		return err
	}

	if transport != "" {
		cfg.Transport = transport
	}
	if listen != "" {
		cfg.Listen = listen
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Logs go to stderr only. On the stdio transport, stdout carries the
	// MCP protocol stream and must stay clean.
	logCfg := logs.DefaultConfig()
	logCfg.Level = cfg.LogLevel

	logger, err := logs.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	srv, err := toolsrv.New(args[0])
	if err != nil {
		return err
	}

	return toolsrv.Run(srv, cfg, logger)
}
