package toolsrv

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var supportedLanguages = []string{"spanish", "french", "german", "italian"}

var translations = map[string]map[string]string{
	"hello":     {"spanish": "hola", "french": "bonjour", "german": "hallo", "italian": "ciao"},
	"goodbye":   {"spanish": "adiós", "french": "au revoir", "german": "auf wiedersehen", "italian": "arrivederci"},
	"please":    {"spanish": "por favor", "french": "s'il vous plaît", "german": "bitte", "italian": "per favore"},
	"thank you": {"spanish": "gracias", "french": "merci", "german": "danke", "italian": "grazie"},
	"yes":       {"spanish": "sí", "french": "oui", "german": "ja", "italian": "sì"},
	"no":        {"spanish": "no", "french": "non", "german": "nein", "italian": "no"},
	"water":     {"spanish": "agua", "french": "eau", "german": "wasser", "italian": "acqua"},
	"food":      {"spanish": "comida", "french": "nourriture", "german": "essen", "italian": "cibo"},
}

// NewTranslatorServer builds the phrase-table translation fixture.
func NewTranslatorServer() *server.MCPServer {
	srv := newToolServer("translator")

	srv.AddTool(mcp.NewTool("translate_text",
		mcp.WithDescription("Translate text to target language"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to translate")),
		mcp.WithString("target_language", mcp.Required(), mcp.Description("Language to translate into")),
	), handleTranslateText)

	srv.AddTool(mcp.NewTool("get_supported_languages",
		mcp.WithDescription("Get list of supported languages"),
	), handleSupportedLanguages)

	return srv
}

func handleTranslateText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target, err := request.RequireString("target_language")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	textLower := strings.ToLower(strings.TrimSpace(text))
	targetLower := strings.ToLower(strings.TrimSpace(target))

	if phrases, ok := translations[textLower]; ok {
		if translated, ok := phrases[targetLower]; ok {
			return jsonResult(map[string]any{
				"original_text":   text,
				"translated_text": translated,
				"source_language": "english",
				"target_language": target,
				"confidence":      1.0,
			}), nil
		}
	}

	available := make([]string, 0, len(translations))
	for phrase := range translations {
		available = append(available, phrase)
	}
	sort.Strings(available)

	return jsonResult(map[string]any{
		"original_text":       text,
		"error":               fmt.Sprintf("Translation not available for '%s' to %s", text, target),
		"available_phrases":   available,
		"supported_languages": supportedLanguages,
	}), nil
}

func handleSupportedLanguages(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"supported_languages": supportedLanguages,
	}), nil
}
