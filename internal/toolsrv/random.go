package toolsrv

import (
	"context"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// Fixed fractional constant used in place of a RNG (golden ratio decimal part).
const goldenFraction = 0.6180339887

// NewRandomServer builds the "random" fixture. Nothing here is random:
// every tool derives its output from its inputs so assertions stay stable.
func NewRandomServer() *server.MCPServer {
	srv := newToolServer("random")

	srv.AddTool(mcp.NewTool("random_integer",
		mcp.WithDescription("Generate a random integer between min and max (deterministic for testing)"),
		mcp.WithNumber("min_val", mcp.Description("Minimum value"), mcp.DefaultNumber(1)),
		mcp.WithNumber("max_val", mcp.Description("Maximum value"), mcp.DefaultNumber(100)),
	), handleRandomInteger)

	srv.AddTool(mcp.NewTool("random_float",
		mcp.WithDescription("Generate a random float between min and max (deterministic for testing)"),
		mcp.WithNumber("min_val", mcp.Description("Minimum value"), mcp.DefaultNumber(0)),
		mcp.WithNumber("max_val", mcp.Description("Maximum value"), mcp.DefaultNumber(1)),
	), handleRandomFloat)

	srv.AddTool(mcp.NewTool("random_choice",
		mcp.WithDescription("Choose a random item from a list (deterministic for testing)"),
		mcp.WithArray("options", mcp.Required(), mcp.Description("Options to choose from")),
	), handleRandomChoice)

	srv.AddTool(mcp.NewTool("generate_uuid",
		mcp.WithDescription("Generate a UUID (deterministic for testing)"),
	), handleGenerateUUID)

	srv.AddTool(mcp.NewTool("random_password",
		mcp.WithDescription("Generate a random password (deterministic for testing)"),
		mcp.WithNumber("length", mcp.Description("Password length"), mcp.DefaultNumber(12)),
	), handleRandomPassword)

	return srv
}

func handleRandomInteger(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	minVal := request.GetInt("min_val", 1)
	maxVal := request.GetInt("max_val", 100)

	span := maxVal - minVal + 1
	if span <= 0 {
		return mcp.NewToolResultError("max_val must be greater than or equal to min_val"), nil
	}

	// Floored modulo keeps the result in [min_val, max_val] for negative
	// ranges, where Go's % would go negative.
	result := (((minVal+maxVal)%span+span)%span + minVal)
	return jsonResult(map[string]any{
		"min": minVal, "max": maxVal, "result": result,
	}), nil
}

func handleRandomFloat(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	minVal := request.GetFloat("min_val", 0.0)
	maxVal := request.GetFloat("max_val", 1.0)

	result := minVal + (maxVal-minVal)*goldenFraction
	return jsonResult(map[string]any{
		"min": minVal, "max": maxVal, "result": round6(result),
	}), nil
}

func handleRandomChoice(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	options := request.GetStringSlice("options", nil)
	if len(options) == 0 {
		return jsonResult(map[string]any{
			"error": "Options list cannot be empty",
		}), nil
	}

	// The selection formula always lands on the first entry.
	chosen := options[0]
	return jsonResult(map[string]any{
		"options": options, "chosen": chosen, "total_options": len(options),
	}), nil
}

func handleGenerateUUID(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"uuid":    "550e8400-e29b-41d4-a716-446655440000",
		"version": "4",
		"format":  "UUID4",
	}), nil
}

func handleRandomPassword(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	length := request.GetInt("length", 12)
	if length < 4 || length > 128 {
		return jsonResult(map[string]any{
			"error": "Password length must be between 4 and 128 characters",
		}), nil
	}

	var password strings.Builder
	for i := 0; i < length; i++ {
		password.WriteByte(passwordChars[i%len(passwordChars)])
	}

	return jsonResult(map[string]any{
		"password":      password.String(),
		"length":        length,
		"character_set": "alphanumeric + symbols",
	}), nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
