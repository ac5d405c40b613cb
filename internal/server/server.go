// Package server is the reactive HTTP runtime of the dashboard. It serves
// the layout, and re-runs the registered resolvers for every figure request
// built from the current widget values.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yildizm/LaunchDash/internal/config"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/layout"
	"github.com/yildizm/LaunchDash/internal/logger"
	"github.com/yildizm/LaunchDash/internal/monitor"
	"github.com/yildizm/LaunchDash/internal/render"
)

// Server serves one immutable dataset. Handlers share only read-only state
// and may run concurrently.
type Server struct {
	address         string
	shutdownTimeout time.Duration
	format          render.Format

	dataset   *dataset.Dataset
	layout    layout.Layout
	callbacks *Callbacks
	renderer  *render.Renderer
	metrics   *monitor.MetricsCollector
	logger    *logger.Logger

	mux    *http.ServeMux
	server *http.Server
}

// New creates a server for ds. A nil metrics collector gets a private one;
// a nil logger is silent below warnings.
func New(cfg *config.Config, ds *dataset.Dataset, metrics *monitor.MetricsCollector, log *logger.Logger) (*Server, error) {
	format, err := render.ParseFormat(cfg.Charts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	if metrics == nil {
		metrics = monitor.New()
	}
	if log == nil {
		log = logger.New("server", nil)
	}

	s := &Server{
		address:         cfg.Server.Address(),
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		format:          format,
		dataset:         ds,
		layout:          layout.Build(ds),
		callbacks:       DefaultCallbacks(ds),
		renderer:        render.New(cfg.Charts.Width, cfg.Charts.Height),
		metrics:         metrics,
		logger:          log,
	}

	s.mux = s.setupRoutes()
	s.server = &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	return s, nil
}

// Handler returns the instrumented route table
func (s *Server) Handler() http.Handler {
	return s.instrument(s.mux)
}

// Start listens on the configured address and serves until ctx is done
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured shutdown timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Serving dashboard on http://%s", ln.Addr())
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("Graceful shutdown failed, closing connections: %v", err)
			if cerr := s.server.Close(); cerr != nil {
				s.logger.Warn("HTTP server force close error: %v", cerr)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/layout", s.handleLayout)
	mux.HandleFunc("GET /api/figures/{output}", s.handleFigureSpec)
	mux.HandleFunc("GET /figures/{file}", s.handleFigureImage)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	return mux
}
