package oauthmock

import "net/http"

// The discovery documents and the live routes are both derived from
// cfg.BaseURL, so the endpoint URLs published here cannot drift from the
// paths actually served.

// handleProtectedResourceMetadata serves RFC 9728 Protected Resource Metadata.
func (s *Server) handleProtectedResourceMetadata(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, ProtectedResourceMetadata{
		Resource:               s.cfg.BaseURL + "/mcp",
		AuthorizationServers:   []string{s.cfg.BaseURL},
		ScopesSupported:        []string{"read", "write"},
		BearerMethodsSupported: []string{"header"},
	})
}

// handleAuthServerMetadata serves RFC 8414 Authorization Server Metadata.
func (s *Server) handleAuthServerMetadata(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, AuthorizationServerMetadata{
		Issuer:                        s.cfg.BaseURL,
		AuthorizationEndpoint:         s.cfg.BaseURL + "/authorize",
		TokenEndpoint:                 s.cfg.BaseURL + "/token",
		RegistrationEndpoint:          s.cfg.BaseURL + "/register",
		ResponseTypesSupported:        []string{"code"},
		CodeChallengeMethodsSupported: []string{"S256"},
		GrantTypesSupported:           []string{"authorization_code", "refresh_token"},
		TokenEndpointAuthMethodsSupported: []string{
			"none",
			"client_secret_post",
		},
	})
}

// handleRoot serves the self-description document.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":        "Runlayer OAuth Mock Server",
		"description": "Mock server for testing RFC 8707 resource parameter handling",
		"base_url":    s.cfg.BaseURL,
		"endpoints": map[string]string{
			"protected_resource_metadata":   "/.well-known/oauth-protected-resource",
			"authorization_server_metadata": "/.well-known/oauth-authorization-server",
			"register":                      "/register",
			"authorize":                     "/authorize",
			"token":                         "/token",
			"mcp":                           "/mcp",
		},
	})
}
