package oauthmock

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// handleRegister implements dynamic client registration (RFC 7591).
// Repeated registrations with the same client_name produce distinct clients;
// there is no uniqueness check and no error path beyond a malformed body.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.domainError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.ClientName == "" {
		req.ClientName = "unknown"
	}
	if req.RedirectURIs == nil {
		req.RedirectURIs = []string{}
	}

	client := &RegisteredClient{
		ClientID:     "mock-client-" + randomHex(8),
		ClientSecret: "mock-secret-" + randomHex(16),
		ClientName:   req.ClientName,
		RedirectURIs: req.RedirectURIs,
	}
	s.clients.Put(client)

	s.logger.Info("registered client",
		zap.String("client_id", client.ClientID),
		zap.String("client_name", client.ClientName))

	// The full record, secret included, goes back to the caller.
	s.writeJSON(w, http.StatusOK, client)
}
