package oauthmock

// RegisteredClient is a dynamically registered OAuth client (RFC 7591).
// Records are created by the registration endpoint and live for the process
// lifetime; the mock never updates or expires them.
type RegisteredClient struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	ClientName   string   `json:"client_name"`
	RedirectURIs []string `json:"redirect_uris"`
}

// IssuedGrant is the context stored behind an authorization code. The code is
// single-use: redemption removes the grant from the store.
type IssuedGrant struct {
	Code          string
	ClientID      string
	RedirectURI   string
	Resource      string // RFC 8707 resource indicator, mandatory at creation
	CodeChallenge string // stored but never verified against a verifier
}

// RegistrationRequest is the dynamic client registration request body.
type RegistrationRequest struct {
	ClientName   string   `json:"client_name"`
	RedirectURIs []string `json:"redirect_uris"`
}

// TokenResponse is a freshly minted token set. Tokens are never stored
// server-side and never validated on subsequent use.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// ProtectedResourceMetadata is the RFC 9728 discovery document.
type ProtectedResourceMetadata struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers"`
	ScopesSupported        []string `json:"scopes_supported"`
	BearerMethodsSupported []string `json:"bearer_methods_supported"`
}

// AuthorizationServerMetadata is the RFC 8414 discovery document.
type AuthorizationServerMetadata struct {
	Issuer                            string   `json:"issuer"`
	AuthorizationEndpoint             string   `json:"authorization_endpoint"`
	TokenEndpoint                     string   `json:"token_endpoint"`
	RegistrationEndpoint              string   `json:"registration_endpoint"`
	ResponseTypesSupported            []string `json:"response_types_supported"`
	CodeChallengeMethodsSupported     []string `json:"code_challenge_methods_supported"`
	GrantTypesSupported               []string `json:"grant_types_supported"`
	TokenEndpointAuthMethodsSupported []string `json:"token_endpoint_auth_methods_supported"`
}

// ValidationError is the FastAPI/Pydantic-shaped 422 body the original mock
// produces when a required request parameter is missing. Clients under test
// must cope with this raw transport-layer shape, not an OAuth error body.
type ValidationError struct {
	Detail []ValidationErrorDetail `json:"detail"`
}

// ValidationErrorDetail describes one missing or malformed field.
type ValidationErrorDetail struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input"`
}

// DomainError is the FastAPI HTTPException-shaped 400 body used for
// redemption and unsupported-grant errors.
type DomainError struct {
	Detail string `json:"detail"`
}
