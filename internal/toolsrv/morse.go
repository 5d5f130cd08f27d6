package toolsrv

import (
	"context"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var morseCode = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...", '8': "---..",
	'9': "----.", '0': "-----", ' ': "/", '.': ".-.-.-", ',': "--..--",
	'?': "..--..", '\'': ".----.", '!': "-.-.--", '/': "-..-.", '(': "-.--.",
	')': "-.--.-", '&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.", '$': "...-..-",
	'@': ".--.-.",
}

var reverseMorseCode = func() map[string]rune {
	reverse := make(map[string]rune, len(morseCode))
	for char, code := range morseCode {
		reverse[code] = char
	}
	return reverse
}()

// NewMorseServer builds the Morse code translation fixture.
func NewMorseServer() *server.MCPServer {
	srv := newToolServer("morse")

	srv.AddTool(mcp.NewTool("text_to_morse",
		mcp.WithDescription("Convert text to Morse code"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to convert to Morse code")),
	), handleTextToMorse)

	srv.AddTool(mcp.NewTool("morse_to_text",
		mcp.WithDescription("Convert Morse code to text"),
		mcp.WithString("morse_code", mcp.Required(), mcp.Description("Morse code to convert to text")),
	), handleMorseToText)

	srv.AddTool(mcp.NewTool("morse_info",
		mcp.WithDescription("Get information about Morse code"),
	), handleMorseInfo)

	srv.AddTool(mcp.NewTool("validate_morse",
		mcp.WithDescription("Validate if a string is valid Morse code"),
		mcp.WithString("morse_code", mcp.Required(), mcp.Description("String to validate as Morse code")),
	), handleValidateMorse)

	srv.AddTool(mcp.NewTool("morse_audio_timing",
		mcp.WithDescription("Calculate audio timing for Morse code transmission"),
		mcp.WithString("morse_code", mcp.Required(), mcp.Description("Morse code to calculate timing for")),
		mcp.WithNumber("wpm", mcp.Description("Words per minute"), mcp.DefaultNumber(20)),
	), handleMorseAudioTiming)

	return srv
}

func handleTextToMorse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if text == "" {
		return jsonResult(map[string]any{
			"original_text": "",
			"morse_code":    "",
			"error":         "Empty text provided",
		}), nil
	}

	var encoded []string
	for _, char := range strings.ToUpper(text) {
		if code, ok := morseCode[char]; ok {
			encoded = append(encoded, code)
		} else {
			encoded = append(encoded, "?")
		}
	}

	return jsonResult(map[string]any{
		"original_text":   text,
		"morse_code":      strings.Join(encoded, " "),
		"character_count": len([]rune(text)),
		"morse_length":    len(encoded),
	}), nil
}

func handleMorseToText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("morse_code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if code == "" {
		return jsonResult(map[string]any{
			"original_morse": "",
			"decoded_text":   "",
			"error":          "Empty Morse code provided",
		}), nil
	}

	morseChars := strings.Split(strings.TrimSpace(code), " ")
	var decoded []rune
	for _, morseChar := range morseChars {
		switch {
		case morseChar == "/":
			decoded = append(decoded, ' ')
		case morseChar == "":
			// skip empty strings from multiple spaces
		default:
			if char, ok := reverseMorseCode[morseChar]; ok {
				decoded = append(decoded, char)
			} else {
				decoded = append(decoded, '?')
			}
		}
	}

	return jsonResult(map[string]any{
		"original_morse":        code,
		"decoded_text":          string(decoded),
		"morse_character_count": len(morseChars),
		"decoded_length":        len(decoded),
	}), nil
}

func handleMorseInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"description":           "Morse code is a method of transmitting text using dots and dashes",
		"inventor":              "Samuel Morse",
		"year_invented":         "1836",
		"dot_symbol":            ".",
		"dash_symbol":           "-",
		"space_between_letters": "space",
		"space_between_words":   "/",
		"supported_characters":  len(morseCode),
		"sample_mappings": map[string]string{
			"SOS":   "... --- ...",
			"HELLO": ".... . .-.. .-.. ---",
			"WORLD": ".-- --- .-. .-.. -..",
		},
	}), nil
}

func handleValidateMorse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("morse_code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if code == "" {
		return jsonResult(map[string]any{
			"input":    code,
			"is_valid": false,
			"error":    "Empty input",
		}), nil
	}

	morseChars := strings.Split(strings.TrimSpace(code), " ")
	var invalid []string
	validCount := 0
	for _, morseChar := range morseChars {
		if morseChar == "/" || morseChar == "" {
			validCount++
			continue
		}
		if _, ok := reverseMorseCode[morseChar]; ok {
			validCount++
		} else {
			invalid = append(invalid, morseChar)
		}
	}

	result := map[string]any{
		"input":              code,
		"is_valid":           len(invalid) == 0,
		"valid_characters":   validCount,
		"total_characters":   len(morseChars),
		"invalid_characters": nil,
	}
	if len(invalid) > 0 {
		result["invalid_characters"] = invalid
	}
	return jsonResult(result), nil
}

func handleMorseAudioTiming(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("morse_code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	wpm := request.GetInt("wpm", 20)
	if wpm <= 0 {
		return jsonResult(map[string]any{
			"error": "Words per minute must be positive",
		}), nil
	}

	// Standard timing: dot = 1 unit, dash = 3 units, inter-symbol gap = 1,
	// inter-letter gap = 3, inter-word gap = 7. One unit is 1.2/wpm seconds.
	dotDuration := 1.2 / float64(wpm)
	dashDuration := dotDuration * 3
	symbolSpace := dotDuration
	letterSpace := dotDuration * 3
	wordSpace := dotDuration * 7

	total := 0.0
	morseChars := strings.Split(code, " ")
	for i, morseChar := range morseChars {
		if morseChar == "/" {
			total += wordSpace
			continue
		}
		last := byte(0)
		if len(morseChar) > 0 {
			last = morseChar[len(morseChar)-1]
		}
		for j := 0; j < len(morseChar); j++ {
			switch morseChar[j] {
			case '.':
				total += dotDuration
			case '-':
				total += dashDuration
			}
			// The original fixture compares symbol values, not positions, so
			// symbols equal to the final one never get a trailing gap.
			if morseChar[j] != last {
				total += symbolSpace
			}
		}
		if i < len(morseChars)-1 && morseChars[i+1] != "/" {
			total += letterSpace
		}
	}

	return jsonResult(map[string]any{
		"morse_code":             code,
		"wpm":                    wpm,
		"dot_duration_ms":        round2(dotDuration * 1000),
		"dash_duration_ms":       round2(dashDuration * 1000),
		"total_duration_seconds": round2(total),
		"total_duration_minutes": round2(total / 60),
	}), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
