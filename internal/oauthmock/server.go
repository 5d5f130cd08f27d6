// Package oauthmock implements a Runlayer-style OAuth authorization server
// double for exercising an MCP proxy's OAuth client. It reproduces the
// control-flow and validation contract of a server that mandates the RFC 8707
// resource indicator, including the raw 422 validation error a missing
// parameter produces. The mock is deliberately loose: redirect URIs are not
// matched against registrations, PKCE challenges are stored but never
// verified, refresh and access tokens are never validated. Clients under
// test only need the happy path plus the documented failure shapes.
package oauthmock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mcpproxy-eval/internal/observability"
)

const accessTokenTTL = 3600 // seconds, fixed in every token response

// Config holds everything the mock needs; it is built once at startup and
// passed by reference. BaseURL determines every absolute URL in metadata and
// redirects and must agree with the listen port.
type Config struct {
	BaseURL string
	Port    int
}

// Server is the OAuth mock. All state is in-memory and lost on restart.
type Server struct {
	cfg     *Config
	logger  *zap.Logger
	router  chi.Router
	clients ClientRegistry
	grants  GrantStore
	metrics *observability.Metrics

	httpServer *http.Server
}

// New creates a mock with in-memory stores.
func New(cfg *Config, logger *zap.Logger) *Server {
	return NewWithStores(cfg, logger, NewMemoryClientRegistry(), NewMemoryGrantStore())
}

// NewWithStores creates a mock with injected stores. Tests use this to
// observe grant-store state across requests.
func NewWithStores(cfg *Config, logger *zap.Logger, clients ClientRegistry, grants GrantStore) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		clients: clients,
		grants:  grants,
		metrics: observability.NewMetrics("oauthmock"),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(s.logRequests)

	r.Get("/.well-known/oauth-protected-resource", s.handleProtectedResourceMetadata)
	r.Get("/.well-known/oauth-authorization-server", s.handleAuthServerMetadata)
	r.Post("/register", s.handleRegister)
	r.Get("/authorize", s.handleAuthorize)
	r.Post("/token", s.handleToken)
	r.Get("/mcp", s.handleMCP)
	r.Post("/mcp", s.handleMCP)
	r.Get("/", s.handleRoot)
	r.Handle("/metrics", s.metrics.Handler())

	return r
}

// Router exposes the HTTP handler, mainly for httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// ClientCount reports the number of registered clients (for tests).
func (s *Server) ClientCount() int { return s.clients.Len() }

// GrantCount reports the number of unredeemed grants (for tests).
func (s *Server) GrantCount() int { return s.grants.Len() }

// Start listens on the configured port and serves until ctx is cancelled or
// Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("OAuth mock server listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("base_url", s.cfg.BaseURL))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown()
	case err := <-errCh:
		return err
	}
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// logRequests logs each request with structured fields.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// domainError writes a FastAPI HTTPException-shaped error body.
func (s *Server) domainError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, DomainError{Detail: detail})
}

// randomHex returns 2n hex characters from a cryptographically strong source,
// matching the shape of Python's secrets.token_hex(n).
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
