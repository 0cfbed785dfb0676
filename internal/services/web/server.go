// Package web composes the audit desk HTTP server from feature modules.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/seoforge/auditdesk/internal/services/web/module"
	"github.com/seoforge/auditdesk/internal/services/web/modules/board"
	"github.com/seoforge/auditdesk/internal/services/web/modules/checklist"
	"github.com/seoforge/auditdesk/internal/services/web/modules/recommend"
	"github.com/seoforge/auditdesk/internal/services/web/platform/httpx"
	"github.com/seoforge/auditdesk/internal/services/web/platform/observability"
	"github.com/seoforge/auditdesk/internal/services/web/routepath"
)

const shutdownTimeout = 10 * time.Second

// Config carries server dependencies. Nil gateways mount the matching module
// in degraded mode instead of failing startup.
type Config struct {
	HTTPAddr    string
	Dataset     board.DatasetGateway
	Checklist   checklist.ChecklistGateway
	Recommender recommend.RecommendationGateway
	Logger      *log.Logger
}

// Server is the composed audit desk HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	logger     *log.Logger
	modules    []module.Module
}

// NewServer mounts all feature modules and builds the request pipeline.
func NewServer(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	mods := []module.Module{
		board.NewWithGateway(cfg.Dataset),
		checklist.NewWithGateway(cfg.Checklist),
		recommend.NewWithGateway(cfg.Recommender),
	}

	mux := http.NewServeMux()
	for _, mod := range mods {
		mount, err := mod.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", mod.ID(), err)
		}
		mux.Handle(mount.Prefix, mount.Handler)
		mux.Handle(mount.Prefix+"/", mount.Handler)
	}

	srv := &Server{logger: logger, modules: mods}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, srv.handleHealth)

	srv.handler = httpx.Chain(
		mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		observability.RequestLogger(logger),
	)
	srv.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, nil
}

// Handler exposes the composed request pipeline, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// handleHealth reports 204 when every module with a health opinion is
// operational, 503 otherwise.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	for _, mod := range s.modules {
		reporter, ok := mod.(module.HealthReporter)
		if ok && !reporter.Healthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening addr=%s", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Close releases the server listener without waiting for in-flight requests.
func (s *Server) Close() error {
	return s.httpServer.Close()
}
