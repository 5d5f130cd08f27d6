// Package toolsrv implements the deterministic MCP tool servers used as
// upstream fixtures in proxy evaluation runs. Every tool answers from a
// fixed table or formula so repeated runs see identical responses.
package toolsrv

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"mcpproxy-eval/internal/envcfg"
)

const serverVersion = "1.0.0"

// builders maps server names to their constructors.
var builders = map[string]func() *server.MCPServer{
	"calculator": NewCalculatorServer,
	"dice":       NewDiceServer,
	"morse":      NewMorseServer,
	"weather":    NewWeatherServer,
	"translator": NewTranslatorServer,
	"random":     NewRandomServer,
	"color":      NewColorServer,
	"restaurant": NewRestaurantServer,
}

// Names lists the available tool servers.
func Names() []string {
	return []string{"calculator", "dice", "morse", "weather", "translator", "random", "color", "restaurant"}
}

// New constructs the named tool server.
func New(name string) (*server.MCPServer, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool server: %s (available: %v)", name, Names())
	}
	return build(), nil
}

// Run serves srv over the configured transport until the process exits.
func Run(srv *server.MCPServer, cfg *envcfg.ToolServer, logger *zap.Logger) error {
	switch cfg.Transport {
	case "stdio":
		return server.ServeStdio(srv)
	case "streamable-http":
		httpServer := server.NewStreamableHTTPServer(
			srv,
			server.WithEndpointPath("/mcp"),
		)
		logger.Info("tool server listening",
			zap.String("addr", cfg.Listen),
			zap.String("transport", cfg.Transport))
		return httpServer.Start(cfg.Listen)
	default:
		return fmt.Errorf("unsupported transport: %s (valid: stdio, streamable-http)", cfg.Transport)
	}
}

// A panicking tool handler must become a tool-error response, not a dead
// stdio process, so every server carries the recovery middleware.
func newToolServer(name string) *server.MCPServer {
	return server.NewMCPServer(
		name,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
}

// jsonResult marshals v into a text content result, the shape the Python
// fixtures produced for their dict returns.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}
