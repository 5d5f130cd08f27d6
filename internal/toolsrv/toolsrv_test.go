package toolsrv

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func callTool(t *testing.T, handler handlerFunc, args map[string]any) map[string]any {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func callToolError(t *testing.T, handler handlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.True(t, res.IsError)
	return res
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		srv, err := New(name)
		require.NoError(t, err, "server %s", name)
		assert.NotNil(t, srv)
	}

	_, err := New("bogus")
	assert.Error(t, err)
}

func TestCalculator(t *testing.T) {
	payload := callTool(t, handleAdd, map[string]any{"a": 2.0, "b": 3.0})
	assert.Equal(t, "addition", payload["operation"])
	assert.Equal(t, 5.0, payload["result"])

	payload = callTool(t, handleDivide, map[string]any{"a": 10.0, "b": 4.0})
	assert.Equal(t, 2.5, payload["result"])

	payload = callTool(t, handleDivide, map[string]any{"a": 1.0, "b": 0.0})
	assert.Equal(t, "Division by zero", payload["error"])

	payload = callTool(t, handleSquareRoot, map[string]any{"number": -4.0})
	assert.Equal(t, "Cannot calculate square root of negative number", payload["error"])

	payload = callTool(t, handleFactorial, map[string]any{"n": 5})
	assert.Equal(t, 120.0, payload["result"])

	payload = callTool(t, handleFactorial, map[string]any{"n": 25})
	assert.Equal(t, "Number too large for factorial calculation", payload["error"])

	callToolError(t, handleAdd, map[string]any{"a": 2.0})
}

func TestDice(t *testing.T) {
	// Same inputs must give the same rolls.
	first := callTool(t, handleRollDice, map[string]any{"sides": 20, "count": 3})
	second := callTool(t, handleRollDice, map[string]any{"sides": 20, "count": 3})
	assert.Equal(t, first["rolls"], second["rolls"])
	assert.Equal(t, first["total"], second["total"])

	payload := callTool(t, handleRollDice, map[string]any{"sides": 6, "modifier": -2})
	assert.Equal(t, "1d6-2", payload["dice_notation"])

	callToolError(t, handleRollDice, map[string]any{"sides": 1})
	callToolError(t, handleRollDice, map[string]any{"count": 21})

	payload = callTool(t, handleRollAdvantage, nil)
	assert.Equal(t, 15.0, payload["advantage"])

	payload = callTool(t, handleDiceStats, map[string]any{"sides": 20})
	assert.Equal(t, 10.5, payload["average"])
}

func TestMorse(t *testing.T) {
	payload := callTool(t, handleTextToMorse, map[string]any{"text": "SOS"})
	assert.Equal(t, "... --- ...", payload["morse_code"])
	assert.Equal(t, 3.0, payload["character_count"])

	payload = callTool(t, handleMorseToText, map[string]any{"morse_code": ".... . .-.. .-.. ---"})
	assert.Equal(t, "HELLO", payload["decoded_text"])

	payload = callTool(t, handleMorseToText, map[string]any{"morse_code": "... / ..."})
	assert.Equal(t, "S S", payload["decoded_text"])

	payload = callTool(t, handleTextToMorse, map[string]any{"text": "~"})
	assert.Equal(t, "?", payload["morse_code"])

	payload = callTool(t, handleValidateMorse, map[string]any{"morse_code": "... --- ..."})
	assert.Equal(t, true, payload["is_valid"])

	payload = callTool(t, handleValidateMorse, map[string]any{"morse_code": "... ......."})
	assert.Equal(t, false, payload["is_valid"])

	payload = callTool(t, handleMorseAudioTiming, map[string]any{"morse_code": "...", "wpm": 20})
	assert.Equal(t, 60.0, payload["dot_duration_ms"])
	assert.Equal(t, 180.0, payload["dash_duration_ms"])
	// Three dots, all equal to the last symbol, so no inter-symbol gaps.
	assert.Equal(t, 0.18, payload["total_duration_seconds"])
}

func TestWeather(t *testing.T) {
	payload := callTool(t, handleCurrentWeather, map[string]any{"city": "Tokyo"})
	assert.Equal(t, "Tokyo", payload["city"])
	assert.Equal(t, 77.0, payload["temperature"])
	assert.Equal(t, "sunny", payload["condition"])
	assert.Equal(t, "imperial", payload["units"])

	payload = callTool(t, handleCurrentWeather, map[string]any{"city": "Atlantis"})
	assert.Equal(t, "unknown", payload["condition"])
	assert.Equal(t, "Weather data not available for this location", payload["note"])

	payload = callTool(t, handleForecast, map[string]any{"city": "London", "days": 2})
	forecast := payload["forecast"].([]any)
	assert.Len(t, forecast, 2)
	assert.Equal(t, 2.0, payload["days"])

	payload = callTool(t, handleForecast, map[string]any{"city": "Berlin", "days": 5})
	forecast = payload["forecast"].([]any)
	require.Len(t, forecast, 5)
	day1 := forecast[0].(map[string]any)
	assert.Equal(t, "day_1", day1["day"])
	assert.Equal(t, 70.0, day1["high"])

	callToolError(t, handleForecast, map[string]any{"city": "London", "days": 8})

	payload = callTool(t, handleWeatherAlerts, map[string]any{"city": "Miami"})
	assert.Equal(t, 1.0, payload["alert_count"])

	payload = callTool(t, handleWeatherAlerts, map[string]any{"city": "London"})
	assert.Equal(t, 0.0, payload["alert_count"])

	payload = callTool(t, handleCompareWeather, map[string]any{"city1": "Tokyo", "city2": "London"})
	comparison := payload["comparison"].(map[string]any)
	assert.Equal(t, 18.0, comparison["temperature_difference"])
	assert.Equal(t, "Tokyo", comparison["warmer_city"])
	assert.Equal(t, "London", comparison["more_humid_city"])
}

func TestTranslator(t *testing.T) {
	payload := callTool(t, handleTranslateText, map[string]any{"text": "Hello", "target_language": "Spanish"})
	assert.Equal(t, "hola", payload["translated_text"])
	assert.Equal(t, "english", payload["source_language"])
	assert.Equal(t, 1.0, payload["confidence"])

	payload = callTool(t, handleTranslateText, map[string]any{"text": "computer", "target_language": "spanish"})
	assert.Contains(t, payload["error"], "Translation not available")
	assert.Len(t, payload["available_phrases"], 8)

	payload = callTool(t, handleSupportedLanguages, nil)
	assert.Len(t, payload["supported_languages"], 4)
}

func TestRandom(t *testing.T) {
	payload := callTool(t, handleRandomInteger, map[string]any{"min_val": 1, "max_val": 10})
	assert.Equal(t, 2.0, payload["result"])

	// Negative range stays inside [min, max].
	payload = callTool(t, handleRandomInteger, map[string]any{"min_val": -10, "max_val": -5})
	assert.Equal(t, -7.0, payload["result"])

	// Empty range must not divide by zero.
	callToolError(t, handleRandomInteger, map[string]any{"min_val": 5, "max_val": 4})

	payload = callTool(t, handleRandomFloat, map[string]any{"min_val": 0.0, "max_val": 10.0})
	assert.Equal(t, 6.18034, payload["result"])

	payload = callTool(t, handleRandomChoice, map[string]any{"options": []any{"a", "b", "c"}})
	assert.Equal(t, "a", payload["chosen"])
	assert.Equal(t, 3.0, payload["total_options"])

	payload = callTool(t, handleRandomChoice, map[string]any{"options": []any{}})
	assert.Equal(t, "Options list cannot be empty", payload["error"])

	payload = callTool(t, handleGenerateUUID, nil)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", payload["uuid"])

	payload = callTool(t, handleRandomPassword, map[string]any{"length": 8})
	assert.Equal(t, "ABCDEFGH", payload["password"])

	payload = callTool(t, handleRandomPassword, map[string]any{"length": 3})
	assert.Equal(t, "Password length must be between 4 and 128 characters", payload["error"])
}

func TestColor(t *testing.T) {
	payload := callTool(t, handleColorInfo, map[string]any{"color_name": "Red"})
	assert.Equal(t, "#FF0000", payload["hex"])

	payload = callTool(t, handleColorInfo, map[string]any{"color_name": "mauve"})
	assert.Contains(t, payload["error"], "not found")
	assert.Len(t, payload["available_colors"], 9)

	payload = callTool(t, handleHexToRGB, map[string]any{"hex_color": "#ffa500"})
	assert.Equal(t, "#FFA500", payload["hex"])
	assert.Equal(t, []any{255.0, 165.0, 0.0}, payload["rgb"])

	payload = callTool(t, handleHexToRGB, map[string]any{"hex_color": "#zzz"})
	assert.NotEmpty(t, payload["error"])

	payload = callTool(t, handleRGBToHex, map[string]any{"r": 128, "g": 0, "b": 128})
	assert.Equal(t, "#800080", payload["hex"])

	payload = callTool(t, handleRGBToHex, map[string]any{"r": 300, "g": 0, "b": 0})
	assert.Equal(t, "RGB values must be between 0 and 255", payload["error"])
}

func TestRestaurant(t *testing.T) {
	payload := callTool(t, handleSearchRestaurants, nil)
	assert.Equal(t, 3.0, payload["count"])

	payload = callTool(t, handleSearchRestaurants, map[string]any{"cuisine": "italian"})
	require.Equal(t, 1.0, payload["count"])
	results := payload["results"].([]any)
	first := results[0].(map[string]any)
	assert.Equal(t, "mario's pizza", first["name"])

	payload = callTool(t, handleSearchRestaurants, map[string]any{"price_range": "$$$"})
	require.Equal(t, 1.0, payload["count"])

	payload = callTool(t, handleGetMenu, map[string]any{"restaurant_name": "Sushi Zen"})
	menu := payload["menu"].(map[string]any)
	assert.Contains(t, menu, "sushi_rolls")

	payload = callTool(t, handleGetMenu, map[string]any{"restaurant_name": "Nowhere"})
	assert.Equal(t, "Restaurant not found", payload["error"])
	assert.Len(t, payload["available_restaurants"], 3)

	payload = callTool(t, handleGetMenuSection, map[string]any{
		"restaurant_name": "Burger Barn", "section": "shakes",
	})
	items := payload["items"].([]any)
	assert.Len(t, items, 3)

	payload = callTool(t, handleGetMenuSection, map[string]any{
		"restaurant_name": "Burger Barn", "section": "sushi_rolls",
	})
	assert.Equal(t, "Menu section not found", payload["error"])
	assert.Equal(t, []any{"burgers", "sides", "shakes"}, payload["available_sections"])

	payload = callTool(t, handleCalculateOrderTotal, map[string]any{
		"restaurant_name": "Mario's Pizza",
		"items":           []any{"Margherita Pizza", "Tiramisu", "Unicorn Steak"},
	})
	// 16.99 + 8.99 = 25.98; tax 2.0784, tip 4.6764
	assert.Equal(t, 25.98, payload["subtotal"])
	assert.Equal(t, 2.08, payload["tax"])
	assert.Equal(t, 4.68, payload["suggested_tip"])
	assert.Equal(t, 32.73, payload["total"])
	orderItems := payload["order_items"].([]any)
	require.Len(t, orderItems, 3)
	missing := orderItems[2].(map[string]any)
	assert.Equal(t, "Item not found", missing["error"])
	assert.Equal(t, 0.0, missing["price"])

	payload = callTool(t, handleGetRestaurantInfo, map[string]any{"restaurant_name": "sushi zen"})
	assert.Equal(t, 4.8, payload["rating"])
	assert.Equal(t, "$$$", payload["price_range"])
}
