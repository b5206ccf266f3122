// Package server exposes the layout pipeline and the pane engine over a
// small JSON HTTP API.
//
// Routes:
//
//	POST /v1/layout         {"graph": {...}, "options": {...}}
//	POST /v1/panes/insert   {"tree": {...}, "pane": {...}, "target": {...}}
//	GET  /healthz
//
// Every response carries an X-Request-ID header. Errors are returned as
// {"error": {"code": "...", "message": "..."}} with a status derived from
// the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stacklayout/pkg/panes"
	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// Server serves the HTTP API. It is safe for concurrent use.
type Server struct {
	runner   *pipeline.Runner
	engine   *panes.Engine
	defaults pipeline.Options
	cfg      pipeline.ServerConfig
	logger   *log.Logger
}

// New creates a server around runner. Layout requests start from the
// [layout] table of cfg; fields set in a request override it.
func New(runner *pipeline.Runner, cfg pipeline.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:   runner,
		engine:   panes.NewEngine(logger),
		defaults: cfg.Layout,
		cfg:      cfg.Server,
		logger:   logger,
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/panes/insert", s.handleInsert)
	})
	return r
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = pipeline.DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
