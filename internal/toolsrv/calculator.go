package toolsrv

import (
	"context"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewCalculatorServer builds the deterministic calculator fixture.
func NewCalculatorServer() *server.MCPServer {
	srv := newToolServer("calculator")

	srv.AddTool(mcp.NewTool("add",
		mcp.WithDescription("Add two numbers"),
		mcp.WithNumber("a", mcp.Required()),
		mcp.WithNumber("b", mcp.Required()),
	), handleAdd)

	srv.AddTool(mcp.NewTool("subtract",
		mcp.WithDescription("Subtract two numbers"),
		mcp.WithNumber("a", mcp.Required()),
		mcp.WithNumber("b", mcp.Required()),
	), handleSubtract)

	srv.AddTool(mcp.NewTool("multiply",
		mcp.WithDescription("Multiply two numbers"),
		mcp.WithNumber("a", mcp.Required()),
		mcp.WithNumber("b", mcp.Required()),
	), handleMultiply)

	srv.AddTool(mcp.NewTool("divide",
		mcp.WithDescription("Divide two numbers"),
		mcp.WithNumber("a", mcp.Required()),
		mcp.WithNumber("b", mcp.Required()),
	), handleDivide)

	srv.AddTool(mcp.NewTool("power",
		mcp.WithDescription("Calculate base raised to the power of exponent"),
		mcp.WithNumber("base", mcp.Required()),
		mcp.WithNumber("exponent", mcp.Required()),
	), handlePower)

	srv.AddTool(mcp.NewTool("square_root",
		mcp.WithDescription("Calculate square root of a number"),
		mcp.WithNumber("number", mcp.Required()),
	), handleSquareRoot)

	srv.AddTool(mcp.NewTool("factorial",
		mcp.WithDescription("Calculate factorial of a number"),
		mcp.WithNumber("n", mcp.Required()),
	), handleFactorial)

	return srv
}

func requirePair(request mcp.CallToolRequest) (float64, float64, error) {
	a, err := request.RequireFloat("a")
	if err != nil {
		return 0, 0, err
	}
	b, err := request.RequireFloat("b")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func handleAdd(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := requirePair(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"operation": "addition", "a": a, "b": b, "result": a + b,
	}), nil
}

func handleSubtract(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := requirePair(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"operation": "subtraction", "a": a, "b": b, "result": a - b,
	}), nil
}

func handleMultiply(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := requirePair(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"operation": "multiplication", "a": a, "b": b, "result": a * b,
	}), nil
}

func handleDivide(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := requirePair(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if b == 0 {
		return jsonResult(map[string]any{
			"operation": "division", "a": a, "b": b, "error": "Division by zero",
		}), nil
	}
	return jsonResult(map[string]any{
		"operation": "division", "a": a, "b": b, "result": a / b,
	}), nil
}

func handlePower(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, err := request.RequireFloat("base")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	exponent, err := request.RequireFloat("exponent")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"operation": "power", "base": base, "exponent": exponent,
		"result": math.Pow(base, exponent),
	}), nil
}

func handleSquareRoot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number, err := request.RequireFloat("number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if number < 0 {
		return jsonResult(map[string]any{
			"operation": "square_root", "number": number,
			"error": "Cannot calculate square root of negative number",
		}), nil
	}
	return jsonResult(map[string]any{
		"operation": "square_root", "number": number, "result": math.Sqrt(number),
	}), nil
}

func handleFactorial(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := request.RequireInt("n")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if n < 0 {
		return jsonResult(map[string]any{
			"operation": "factorial", "number": n,
			"error": "Cannot calculate factorial of negative number",
		}), nil
	}
	if n > 20 {
		return jsonResult(map[string]any{
			"operation": "factorial", "number": n,
			"error": "Number too large for factorial calculation",
		}), nil
	}

	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return jsonResult(map[string]any{
		"operation": "factorial", "number": n, "result": result,
	}), nil
}
