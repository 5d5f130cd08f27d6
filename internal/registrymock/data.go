package registrymock

import (
	"strings"

	"github.com/google/uuid"
)

// Deterministic registry entries. IDs, timestamps and versions are fixed so
// evaluation runs always see the same pages.
var fakeServers = []ServerEntry{
	{
		ID:          uuid.MustParse("01129bff-3d65-4e3d-8e82-6f2f269f818c").String(),
		Name:        "dice-roller",
		URL:         "stdio://uvx mcp-dice",
		Description: "A dice rolling MCP server for gaming and probability calculations",
		CreatedAt:   "2025-01-15T10:00:00.000Z",
		UpdatedAt:   "2025-01-15T10:00:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/dice-mcp-server",
			Source: "github",
			ID:     "123456789",
		},
		VersionDetail: &VersionDetail{
			Version:     "1.0.0",
			ReleaseDate: "2025-01-15T10:00:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("02229bff-3d65-4e3d-8e82-6f2f269f818d").String(),
		Name:        "weather-service",
		URL:         "stdio://uvx mcp-weather",
		Description: "Weather information MCP server with forecasts and current conditions",
		CreatedAt:   "2025-01-15T10:05:00.000Z",
		UpdatedAt:   "2025-01-15T10:05:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/weather-mcp-server",
			Source: "github",
			ID:     "123456790",
		},
		VersionDetail: &VersionDetail{
			Version:     "2.1.0",
			ReleaseDate: "2025-01-15T10:05:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("03329bff-3d65-4e3d-8e82-6f2f269f818e").String(),
		Name:        "restaurant-finder",
		URL:         "stdio://uvx mcp-restaurant",
		Description: "Restaurant menu and search MCP server for food discovery",
		CreatedAt:   "2025-01-15T10:10:00.000Z",
		UpdatedAt:   "2025-01-15T10:10:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/restaurant-mcp-server",
			Source: "github",
			ID:     "123456791",
		},
		VersionDetail: &VersionDetail{
			Version:     "1.5.0",
			ReleaseDate: "2025-01-15T10:10:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("04429bff-3d65-4e3d-8e82-6f2f269f818f").String(),
		Name:        "morse-translator",
		URL:         "stdio://uvx mcp-morse",
		Description: "Morse code translation MCP server for encoding and decoding text",
		CreatedAt:   "2025-01-15T10:15:00.000Z",
		UpdatedAt:   "2025-01-15T10:15:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/morse-mcp-server",
			Source: "github",
			ID:     "123456792",
		},
		VersionDetail: &VersionDetail{
			Version:     "1.0.0",
			ReleaseDate: "2025-01-15T10:15:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("05529bff-3d65-4e3d-8e82-6f2f269f8190").String(),
		Name:        "calculator",
		URL:         "stdio://uvx mcp-calculator",
		Description: "Mathematical calculation MCP server with basic and advanced operations",
		CreatedAt:   "2025-01-15T10:20:00.000Z",
		UpdatedAt:   "2025-01-15T10:20:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/calculator-mcp-server",
			Source: "github",
			ID:     "123456793",
		},
		VersionDetail: &VersionDetail{
			Version:     "3.0.0",
			ReleaseDate: "2025-01-15T10:20:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("06629bff-3d65-4e3d-8e82-6f2f269f8191").String(),
		Name:        "translator",
		URL:         "stdio://uvx mcp-translator",
		Description: "Multi-language translation MCP server supporting major languages",
		CreatedAt:   "2025-01-15T10:25:00.000Z",
		UpdatedAt:   "2025-01-15T10:25:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/translator-mcp-server",
			Source: "github",
			ID:     "123456794",
		},
		VersionDetail: &VersionDetail{
			Version:     "2.0.0",
			ReleaseDate: "2025-01-15T10:25:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("07729bff-3d65-4e3d-8e82-6f2f269f8192").String(),
		Name:        "time-service",
		URL:         "stdio://uvx mcp-time",
		Description: "Time and timezone MCP server for temporal operations",
		CreatedAt:   "2025-01-15T10:30:00.000Z",
		UpdatedAt:   "2025-01-15T10:30:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/time-mcp-server",
			Source: "github",
			ID:     "123456795",
		},
		VersionDetail: &VersionDetail{
			Version:     "1.2.0",
			ReleaseDate: "2025-01-15T10:30:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("08829bff-3d65-4e3d-8e82-6f2f269f8193").String(),
		Name:        "joke-generator",
		URL:         "stdio://uvx mcp-jokes",
		Description: "Joke and humor MCP server for entertainment and conversation",
		CreatedAt:   "2025-01-15T10:35:00.000Z",
		UpdatedAt:   "2025-01-15T10:35:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/jokes-mcp-server",
			Source: "github",
			ID:     "123456796",
		},
		VersionDetail: &VersionDetail{
			Version:     "1.1.0",
			ReleaseDate: "2025-01-15T10:35:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("09929bff-3d65-4e3d-8e82-6f2f269f8194").String(),
		Name:        "color-palette",
		URL:         "stdio://uvx mcp-color",
		Description: "Color manipulation and palette MCP server for design tools",
		CreatedAt:   "2025-01-15T10:40:00.000Z",
		UpdatedAt:   "2025-01-15T10:40:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/color-mcp-server",
			Source: "github",
			ID:     "123456797",
		},
		VersionDetail: &VersionDetail{
			Version:     "1.0.0",
			ReleaseDate: "2025-01-15T10:40:00Z",
			IsLatest:    true,
		},
	},
	{
		ID:          uuid.MustParse("10029bff-3d65-4e3d-8e82-6f2f269f8195").String(),
		Name:        "random-generator",
		URL:         "stdio://uvx mcp-random",
		Description: "Random number and data generation MCP server for testing and simulation",
		CreatedAt:   "2025-01-15T10:45:00.000Z",
		UpdatedAt:   "2025-01-15T10:45:00.000Z",
		Repository: &RepositoryInfo{
			URL:    "https://github.com/fake/random-mcp-server",
			Source: "github",
			ID:     "123456798",
		},
		VersionDetail: &VersionDetail{
			Version:     "2.0.0",
			ReleaseDate: "2025-01-15T10:45:00Z",
			IsLatest:    true,
		},
	},
}

// packagesFor builds the package detail attached to a single-entry response.
func packagesFor(entry ServerEntry) []Package {
	version := "1.0.0"
	if entry.VersionDetail != nil {
		version = entry.VersionDetail.Version
	}
	cmd := "mcp-" + strings.SplitN(entry.Name, "-", 2)[0]

	return []Package{
		{
			RegistryName: "uvx",
			Name:         "@mcpeval/" + entry.Name,
			Version:      version,
			PackageArguments: []PackageArgument{
				{
					Description: "Server executable command",
					IsRequired:  true,
					Format:      "string",
					Value:       cmd,
					Default:     cmd,
					Type:        "positional",
					ValueHint:   cmd,
				},
			},
		},
	}
}
