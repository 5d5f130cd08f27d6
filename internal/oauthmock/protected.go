package oauthmock

import (
	"fmt"
	"net/http"
	"strings"
)

// handleMCP gates the protected MCP endpoint. Callers without a bearer-shaped
// Authorization header get a 401 whose WWW-Authenticate challenge points at
// the protected-resource metadata document, which is how a compliant client
// discovers the authorization server. Callers with any bearer header get the
// canned initialize result; the token value itself is never inspected.
func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")

	if !strings.HasPrefix(authHeader, "Bearer ") {
		challenge := fmt.Sprintf(
			`Bearer error="invalid_token", resource_metadata="%s/.well-known/oauth-protected-resource"`,
			s.cfg.BaseURL,
		)
		w.Header().Set("WWW-Authenticate", challenge)
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "unauthorized",
			"message": "Authentication required",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"result": map[string]any{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo": map[string]any{
				"name":    "runlayer-mock",
				"version": "1.0.0",
			},
		},
	})
}
