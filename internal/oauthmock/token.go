package oauthmock

import (
	"net/http"

	"go.uber.org/zap"
)

// handleToken implements the token endpoint for the authorization_code and
// refresh_token grants.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.domainError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	grantType := r.FormValue("grant_type")

	switch grantType {
	case "authorization_code":
		s.handleAuthCodeGrant(w, r)
	case "refresh_token":
		// The supplied refresh token is never validated; a fresh token set
		// is minted unconditionally.
		s.writeJSON(w, http.StatusOK, mintTokens())
	default:
		s.domainError(w, http.StatusBadRequest, "Unsupported grant_type: "+grantType)
	}
}

// handleAuthCodeGrant redeems an authorization code. Take removes the grant
// atomically, so a code redeems exactly once; any later attempt observes its
// absence and fails with no side effects. The grant's resource, redirect_uri
// and code_challenge are not re-checked at redemption.
func (s *Server) handleAuthCodeGrant(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("code")
	if code == "" {
		s.domainError(w, http.StatusBadRequest, "Invalid authorization code")
		return
	}

	grant, ok := s.grants.Take(code)
	if !ok {
		s.domainError(w, http.StatusBadRequest, "Invalid authorization code")
		return
	}

	s.logger.Info("redeemed authorization code",
		zap.String("client_id", grant.ClientID),
		zap.String("resource", grant.Resource))

	s.writeJSON(w, http.StatusOK, mintTokens())
}

// mintTokens generates a fresh token set. Nothing is persisted; the protected
// endpoint only checks for a bearer-shaped header, never token validity.
func mintTokens() TokenResponse {
	return TokenResponse{
		AccessToken:  "mock-access-token-" + randomHex(16),
		TokenType:    "Bearer",
		ExpiresIn:    accessTokenTTL,
		RefreshToken: "mock-refresh-token-" + randomHex(16),
	}
}
