package toolsrv

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type cityWeather struct {
	Temperature   int     `json:"temperature"`
	Condition     string  `json:"condition"`
	Humidity      int     `json:"humidity"`
	WindSpeed     int     `json:"wind_speed"`
	WindDirection string  `json:"wind_direction"`
	Pressure      float64 `json:"pressure"`
	Visibility    int     `json:"visibility"`
	UVIndex       int     `json:"uv_index"`
}

type forecastDay struct {
	Day       string `json:"day"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
	Condition string `json:"condition"`
}

type weatherAlert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Expires  string `json:"expires"`
}

var weatherData = map[string]cityWeather{
	"new york": {72, "partly cloudy", 65, 8, "NW", 1013.25, 10, 6},
	"london":   {59, "light rain", 82, 12, "SW", 1008.5, 8, 2},
	"tokyo":    {77, "sunny", 58, 5, "E", 1018.7, 15, 8},
	"paris":    {64, "overcast", 73, 7, "W", 1011.3, 12, 3},
	"sydney":   {68, "clear", 45, 15, "SE", 1020.1, 20, 9},
}

var forecastData = map[string][]forecastDay{
	"new york": {
		{"today", 75, 62, "partly cloudy"},
		{"tomorrow", 78, 65, "sunny"},
		{"day_after", 73, 60, "thunderstorms"},
	},
	"london": {
		{"today", 61, 48, "light rain"},
		{"tomorrow", 58, 45, "heavy rain"},
		{"day_after", 63, 50, "cloudy"},
	},
}

var alertData = map[string][]weatherAlert{
	"miami": {
		{
			Type:     "hurricane_watch",
			Severity: "moderate",
			Message:  "Hurricane watch in effect until 6 PM EST",
			Expires:  "2024-01-15T18:00:00Z",
		},
	},
	"phoenix": {
		{
			Type:     "excessive_heat",
			Severity: "high",
			Message:  "Excessive heat warning until midnight",
			Expires:  "2024-01-15T07:00:00Z",
		},
	},
}

// NewWeatherServer builds the deterministic weather fixture. Unknown cities
// get a fixed placeholder reading instead of an error.
func NewWeatherServer() *server.MCPServer {
	srv := newToolServer("weather")

	srv.AddTool(mcp.NewTool("get_current_weather",
		mcp.WithDescription("Get current weather for a city"),
		mcp.WithString("city", mcp.Required(), mcp.Description("Name of the city")),
	), handleCurrentWeather)

	srv.AddTool(mcp.NewTool("get_forecast",
		mcp.WithDescription("Get weather forecast for a city"),
		mcp.WithString("city", mcp.Required(), mcp.Description("Name of the city")),
		mcp.WithNumber("days", mcp.Description("Number of days to forecast (1-7)"), mcp.DefaultNumber(3)),
	), handleForecast)

	srv.AddTool(mcp.NewTool("get_weather_alerts",
		mcp.WithDescription("Get weather alerts for a city"),
		mcp.WithString("city", mcp.Required(), mcp.Description("Name of the city")),
	), handleWeatherAlerts)

	srv.AddTool(mcp.NewTool("compare_weather",
		mcp.WithDescription("Compare weather between two cities"),
		mcp.WithString("city1", mcp.Required(), mcp.Description("First city to compare")),
		mcp.WithString("city2", mcp.Required(), mcp.Description("Second city to compare")),
	), handleCompareWeather)

	return srv
}

func currentWeather(city string) map[string]any {
	cityKey := strings.ToLower(strings.TrimSpace(city))

	weather, ok := weatherData[cityKey]
	if !ok {
		return map[string]any{
			"city":           city,
			"temperature":    70,
			"condition":      "unknown",
			"humidity":       50,
			"wind_speed":     10,
			"wind_direction": "N",
			"pressure":       1013.25,
			"visibility":     10,
			"uv_index":       5,
			"note":           "Weather data not available for this location",
		}
	}

	return map[string]any{
		"city":           city,
		"temperature":    weather.Temperature,
		"condition":      weather.Condition,
		"humidity":       weather.Humidity,
		"wind_speed":     weather.WindSpeed,
		"wind_direction": weather.WindDirection,
		"pressure":       weather.Pressure,
		"visibility":     weather.Visibility,
		"uv_index":       weather.UVIndex,
		"units":          "imperial",
	}
}

func handleCurrentWeather(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(currentWeather(city)), nil
}

func handleForecast(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	days := request.GetInt("days", 3)
	if days < 1 || days > 7 {
		return mcp.NewToolResultError("Forecast days must be between 1 and 7"), nil
	}

	cityKey := strings.ToLower(strings.TrimSpace(city))
	var forecast []forecastDay
	if known, ok := forecastData[cityKey]; ok {
		if days < len(known) {
			forecast = known[:days]
		} else {
			forecast = known
		}
	} else {
		conditions := []string{"sunny", "cloudy", "partly cloudy"}
		for i := 0; i < days; i++ {
			forecast = append(forecast, forecastDay{
				Day:       fmt.Sprintf("day_%d", i+1),
				High:      70 + i*2,
				Low:       55 + i,
				Condition: conditions[i%3],
			})
		}
	}

	return jsonResult(map[string]any{
		"city":     city,
		"forecast": forecast,
		"days":     len(forecast),
		"units":    "imperial",
	}), nil
}

func handleWeatherAlerts(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cityKey := strings.ToLower(strings.TrimSpace(city))
	alerts := alertData[cityKey]
	if alerts == nil {
		alerts = []weatherAlert{}
	}

	return jsonResult(map[string]any{
		"city":        city,
		"alerts":      alerts,
		"alert_count": len(alerts),
	}), nil
}

func handleCompareWeather(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city1, err := request.RequireString("city1")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	city2, err := request.RequireString("city2")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	weather1 := currentWeather(city1)
	weather2 := currentWeather(city2)

	tempDiff := weather1["temperature"].(int) - weather2["temperature"].(int)
	humidityDiff := weather1["humidity"].(int) - weather2["humidity"].(int)

	warmer := city2
	if tempDiff > 0 {
		warmer = city1
	}
	moreHumid := city2
	if humidityDiff > 0 {
		moreHumid = city1
	}

	return jsonResult(map[string]any{
		"city1": weather1,
		"city2": weather2,
		"comparison": map[string]any{
			"temperature_difference": tempDiff,
			"humidity_difference":    humidityDiff,
			"warmer_city":            warmer,
			"more_humid_city":        moreHumid,
		},
	}), nil
}
