// Package registrymock serves a deterministic, read-only MCP registry for
// proxy evaluation runs. The listing endpoint paginates a fixed entry set
// with a cursor equal to the id of the last returned entry.
package registrymock

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mcpproxy-eval/internal/observability"
)

const (
	defaultLimit = 30
	maxLimit     = 100
)

// Config holds the registry's listen settings, built once at startup.
type Config struct {
	BaseURL string
	Port    int
}

// Server is the fake registry. It holds no mutable state; every response is
// a pure function of the request and the fixed entry list.
type Server struct {
	cfg     *Config
	logger  *zap.Logger
	router  chi.Router
	metrics *observability.Metrics

	httpServer *http.Server
}

// New creates the registry server.
func New(cfg *Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: observability.NewMetrics("registrymock"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)

	r.Get("/v0/servers", s.handleListServers)
	r.Get("/v0/servers/{serverID}", s.handleGetServer)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	s.router = r
	return s
}

// Router exposes the HTTP handler, mainly for httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start listens on the configured port and serves until ctx is cancelled.
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

	s.logger.Info("registry mock listening", zap.String("addr", listener.Addr().String()))

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

// handleListServers pages through the fixed entry list. The cursor is the id
// of the last entry of the previous page; an unknown cursor restarts from the
// beginning, matching the original fixture.
func (s *Server) handleListServers(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.validationError(w, "limit", "int_parsing", "Input should be a valid integer")
			return
		}
		if parsed > maxLimit {
			s.validationError(w, "limit", "less_than_equal",
				"Input should be less than or equal to 100")
			return
		}
		limit = parsed
	}
	if limit < 0 {
		limit = 0
	}

	start := 0
	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		for i, entry := range fakeServers {
			if entry.ID == cursor {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	if end > len(fakeServers) {
		end = len(fakeServers)
	}
	servers := fakeServers[start:end]

	metadata := ListMetadata{Count: len(servers)}
	if end < len(fakeServers) && end > 0 {
		metadata.NextCursor = fakeServers[end-1].ID
	}

	s.writeJSON(w, http.StatusOK, ServersResponse{
		Servers:  servers,
		Metadata: metadata,
	})
}

// handleGetServer returns one entry with package detail filled in.
func (s *Server) handleGetServer(w http.ResponseWriter, r *http.Request) {
	serverID := chi.URLParam(r, "serverID")

	for _, entry := range fakeServers {
		if entry.ID == serverID {
			entry.Packages = packagesFor(entry)
			s.writeJSON(w, http.StatusOK, entry)
			return
		}
	}

	s.writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Server not found"})
}

// handleHealth reports liveness with a current timestamp.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// validationError mirrors the FastAPI 422 shape for bad query parameters.
func (s *Server) validationError(w http.ResponseWriter, field, errType, msg string) {
	s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"detail": []map[string]any{
			{
				"type": errType,
				"loc":  []string{"query", field},
				"msg":  msg,
			},
		},
	})
}
