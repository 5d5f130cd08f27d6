package toolsrv

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type colorInfo struct {
	Hex string
	RGB [3]int
	HSL [3]int
}

var colorNames = []string{"red", "green", "blue", "yellow", "purple", "orange", "pink", "black", "white"}

var colors = map[string]colorInfo{
	"red":    {"#FF0000", [3]int{255, 0, 0}, [3]int{0, 100, 50}},
	"green":  {"#00FF00", [3]int{0, 255, 0}, [3]int{120, 100, 50}},
	"blue":   {"#0000FF", [3]int{0, 0, 255}, [3]int{240, 100, 50}},
	"yellow": {"#FFFF00", [3]int{255, 255, 0}, [3]int{60, 100, 50}},
	"purple": {"#800080", [3]int{128, 0, 128}, [3]int{300, 100, 25}},
	"orange": {"#FFA500", [3]int{255, 165, 0}, [3]int{39, 100, 50}},
	"pink":   {"#FFC0CB", [3]int{255, 192, 203}, [3]int{350, 100, 88}},
	"black":  {"#000000", [3]int{0, 0, 0}, [3]int{0, 0, 0}},
	"white":  {"#FFFFFF", [3]int{255, 255, 255}, [3]int{0, 0, 100}},
}

// NewColorServer builds the color lookup and conversion fixture.
func NewColorServer() *server.MCPServer {
	srv := newToolServer("color")

	srv.AddTool(mcp.NewTool("get_color_info",
		mcp.WithDescription("Get color information by name"),
		mcp.WithString("color_name", mcp.Required(), mcp.Description("Name of the color")),
	), handleColorInfo)

	srv.AddTool(mcp.NewTool("hex_to_rgb",
		mcp.WithDescription("Convert hex color to RGB"),
		mcp.WithString("hex_color", mcp.Required(), mcp.Description("Hex color code, e.g. #FF0000")),
	), handleHexToRGB)

	srv.AddTool(mcp.NewTool("rgb_to_hex",
		mcp.WithDescription("Convert RGB to hex color"),
		mcp.WithNumber("r", mcp.Required(), mcp.Description("Red component (0-255)")),
		mcp.WithNumber("g", mcp.Required(), mcp.Description("Green component (0-255)")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Blue component (0-255)")),
	), handleRGBToHex)

	return srv
}

func handleColorInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	colorName, err := request.RequireString("color_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	colorKey := strings.ToLower(strings.TrimSpace(colorName))
	info, ok := colors[colorKey]
	if !ok {
		return jsonResult(map[string]any{
			"error":            fmt.Sprintf("Color '%s' not found", colorName),
			"available_colors": colorNames,
		}), nil
	}

	return jsonResult(map[string]any{
		"name": colorName,
		"hex":  info.Hex,
		"rgb":  info.RGB,
		"hsl":  info.HSL,
	}), nil
}

func handleHexToRGB(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hexColor, err := request.RequireString("hex_color")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	hexColor = strings.TrimPrefix(hexColor, "#")
	if len(hexColor) != 6 {
		return jsonResult(map[string]any{
			"error": "Invalid hex color format. Use #RRGGBB",
		}), nil
	}

	rgb := make([]int, 3)
	for i := 0; i < 3; i++ {
		component, err := strconv.ParseInt(hexColor[i*2:i*2+2], 16, 0)
		if err != nil {
			return jsonResult(map[string]any{
				"error": "Invalid hex color format",
			}), nil
		}
		rgb[i] = int(component)
	}

	return jsonResult(map[string]any{
		"hex": "#" + strings.ToUpper(hexColor),
		"rgb": rgb,
	}), nil
}

func handleRGBToHex(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := request.RequireInt("r")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	g, err := request.RequireInt("g")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := request.RequireInt("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return jsonResult(map[string]any{
				"error": "RGB values must be between 0 and 255",
			}), nil
		}
	}

	return jsonResult(map[string]any{
		"rgb": []int{r, g, b},
		"hex": fmt.Sprintf("#%02X%02X%02X", r, g, b),
	}), nil
}
