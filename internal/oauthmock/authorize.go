package oauthmock

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// handleAuthorize implements the authorization endpoint. The RFC 8707
// resource parameter is required; a request missing it fails at the
// validation layer with a 422 before any grant is minted, which is the
// Runlayer behavior clients are tested against. client_id and redirect_uri
// are accepted without cross-checking the registry.
func (s *Server) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	clientID := query.Get("client_id")
	redirectURI := query.Get("redirect_uri")
	state := query.Get("state")
	resource := query.Get("resource")
	codeChallenge := query.Get("code_challenge")

	// Validation is all-or-nothing: every missing required parameter is
	// reported and no state is mutated.
	var missing []string
	if clientID == "" {
		missing = append(missing, "client_id")
	}
	if redirectURI == "" {
		missing = append(missing, "redirect_uri")
	}
	if state == "" {
		missing = append(missing, "state")
	}
	if resource == "" {
		missing = append(missing, "resource")
	}
	if len(missing) > 0 {
		s.validationError(w, "query", missing)
		return
	}

	grant := &IssuedGrant{
		Code:          "mock-auth-code-" + randomHex(16),
		ClientID:      clientID,
		RedirectURI:   redirectURI,
		Resource:      resource,
		CodeChallenge: codeChallenge,
	}
	s.grants.Put(grant)

	s.logger.Info("issued authorization code",
		zap.String("client_id", clientID),
		zap.String("resource", resource))

	params := url.Values{}
	params.Set("code", grant.Code)
	params.Set("state", state)

	w.Header().Set("Location", redirectURI+"?"+params.Encode())
	w.WriteHeader(http.StatusFound)
}

// validationError writes the FastAPI/Pydantic-shaped 422 body with one
// detail entry per missing field.
func (s *Server) validationError(w http.ResponseWriter, location string, fields []string) {
	resp := ValidationError{}
	for _, field := range fields {
		resp.Detail = append(resp.Detail, ValidationErrorDetail{
			Type:  "missing",
			Loc:   []string{location, field},
			Msg:   "Field required",
			Input: nil,
		})
	}
	s.writeJSON(w, http.StatusUnprocessableEntity, resp)
}
