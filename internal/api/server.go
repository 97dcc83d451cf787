package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/amterp/swatch/internal/state"
)

// ServerOptions configure NewServer.
type ServerOptions struct {
	Port int
	// PalettesDir is watched for saved-palette changes. Empty disables watching.
	PalettesDir string
}

// Server wraps the HTTP server for the web frontend.
type Server struct {
	httpServer *http.Server
	watcher    *FileWatcher
	wsHub      *WebSocketHub
}

// NewServer wires the handler, websocket hub, file watcher and metrics endpoint.
func NewServer(handler *Handler, session *state.Session, opts ServerOptions) *Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	wsHub := NewWebSocketHub()
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)
	mux.Handle("GET /metrics", promhttp.Handler())
	session.OnChange(wsHub.OnPaletteChange)

	var watcher *FileWatcher
	if opts.PalettesDir != "" {
		var err error
		watcher, err = NewFileWatcher(opts.PalettesDir)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to create file watcher")
		} else {
			watcher.Subscribe(wsHub)
		}
	}

	wrapped := Chain(mux, RequestID, Recovery, Logging, Cors)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. Blocks until shutdown, after
// which it returns nil.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Warn().Err(err).Msg("Failed to start file watcher")
		}
	}

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			log.Warn().Err(err).Msg("Failed to stop file watcher")
		}
	}
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
