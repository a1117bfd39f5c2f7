// Package server exposes an already-loaded export over a local HTTP API so
// a frontend can fetch wrapped statistics without re-running the CLI per
// chat. It is read-only: the archive is loaded once at startup.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Server serves wrapped statistics for one loaded export archive.
type Server struct {
	logger  *slog.Logger
	cfg     *config.Config
	files   archive.FileSet
	metrics *Metrics
	server  *http.Server
}

// New builds a server around a loaded archive.
func New(logger *slog.Logger, cfg *config.Config, files archive.FileSet) *Server {
	return &Server{
		logger:  logger,
		cfg:     cfg,
		files:   files,
		metrics: NewMetrics(),
	}
}

// router constructs the chi mux with all routes wired.
func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth())
	r.Get("/chats", s.handleChats())
	r.Get("/wrapped/{chat}", s.handleWrapped())
	r.Handle("/metrics", s.metrics.Handler())

	return r
}

// Start binds the configured address and serves in the background.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.cfg.Serve.Addr,
		Handler: s.router(),
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", s.cfg.Serve.Addr)
	if err != nil {
		return errors.New("server: listen failed: " + err.Error())
	}

	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Serve.Addr)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server serve error", "error", err)
		}
	}()

	return nil
}

// Stop shuts the listener down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("server shutting down")
	return s.server.Shutdown(shutdownCtx)
}
