package toolsrv

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewDiceServer builds the deterministic dice fixture. Rolls come from a
// fixed formula of the inputs, not a RNG, so evaluations are reproducible.
func NewDiceServer() *server.MCPServer {
	srv := newToolServer("dice")

	srv.AddTool(mcp.NewTool("roll_dice",
		mcp.WithDescription("Roll dice with specified number of sides"),
		mcp.WithNumber("sides", mcp.Description("Number of sides on each die"), mcp.DefaultNumber(6)),
		mcp.WithNumber("count", mcp.Description("Number of dice to roll"), mcp.DefaultNumber(1)),
		mcp.WithNumber("modifier", mcp.Description("Modifier to add to total"), mcp.DefaultNumber(0)),
	), handleRollDice)

	srv.AddTool(mcp.NewTool("roll_advantage",
		mcp.WithDescription("Roll with advantage (roll twice, take higher)"),
	), handleRollAdvantage)

	srv.AddTool(mcp.NewTool("roll_disadvantage",
		mcp.WithDescription("Roll with disadvantage (roll twice, take lower)"),
	), handleRollDisadvantage)

	srv.AddTool(mcp.NewTool("dice_stats",
		mcp.WithDescription("Get statistical information about a die"),
		mcp.WithNumber("sides", mcp.Description("Number of sides on the die"), mcp.DefaultNumber(6)),
	), handleDiceStats)

	return srv
}

func handleRollDice(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sides := request.GetInt("sides", 6)
	count := request.GetInt("count", 1)
	modifier := request.GetInt("modifier", 0)

	if sides < 2 {
		return mcp.NewToolResultError("Dice must have at least 2 sides"), nil
	}
	if count < 1 {
		return mcp.NewToolResultError("Must roll at least 1 die"), nil
	}
	if count > 20 {
		return mcp.NewToolResultError("Cannot roll more than 20 dice at once"), nil
	}

	rolls := make([]int, count)
	total := 0
	for i := 0; i < count; i++ {
		rolls[i] = ((sides * count * (i + 1)) % sides) + 1
		total += rolls[i]
	}

	notation := fmt.Sprintf("%dd%d", count, sides)
	switch {
	case modifier > 0:
		notation += fmt.Sprintf("+%d", modifier)
	case modifier < 0:
		notation += fmt.Sprintf("%d", modifier)
	}

	return jsonResult(map[string]any{
		"rolls":          rolls,
		"total":          total,
		"modifier":       modifier,
		"modified_total": total + modifier,
		"dice_notation":  notation,
	}), nil
}

func handleRollAdvantage(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"roll1":     15,
		"roll2":     12,
		"advantage": 15,
		"type":      "advantage",
	}), nil
}

func handleRollDisadvantage(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"roll1":        8,
		"roll2":        14,
		"disadvantage": 8,
		"type":         "disadvantage",
	}), nil
}

func handleDiceStats(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sides := request.GetInt("sides", 6)
	if sides < 2 {
		return mcp.NewToolResultError("Dice must have at least 2 sides"), nil
	}
	return jsonResult(map[string]any{
		"sides":              sides,
		"min_value":          1,
		"max_value":          sides,
		"average":            float64(sides+1) / 2,
		"total_combinations": sides,
	}), nil
}
