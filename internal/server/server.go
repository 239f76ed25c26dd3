// Package server exposes the stat lookup, decay projector and monument
// reference over HTTP, plus a websocket lookup session that only ever shows
// the latest submission.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/vukan322/rustkit/internal/lookup"
)

const (
	// ReadHeader limits how long the server waits for request headers.
	ReadHeader = 5 * time.Second
	// Shutdown limits how long in-flight requests get during graceful shutdown.
	Shutdown = 5 * time.Second
)

type Config struct {
	HTTPAddr string
	Resolver *lookup.Resolver
	Logger   *log.Logger
}

type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with all routes and middleware.
func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	h := &handlers{
		resolver: cfg.Resolver,
		logger:   logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stats", h.stats).Methods(http.MethodGet)
	api.HandleFunc("/stats/card.svg", h.statsCard).Methods(http.MethodGet)
	api.HandleFunc("/decay/materials", h.materials).Methods(http.MethodGet)
	api.HandleFunc("/decay", h.decay).Methods(http.MethodGet)
	api.HandleFunc("/monuments", h.monuments).Methods(http.MethodGet)
	api.HandleFunc("/monuments/{id}", h.monument).Methods(http.MethodGet)

	r.HandleFunc("/ws/stats", h.statsSocket).Methods(http.MethodGet)

	r.Use(recoverPanic(logger), requestLogger(logger))
	return r
}

// NewServer validates config and constructs a server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Resolver == nil {
		return nil, errors.New("resolver is required")
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until ctx is cancelled or the server
// stops.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
