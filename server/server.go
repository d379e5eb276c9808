package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/logger"
)

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 5 * time.Second

// Server owns the router and the underlying http.Server.
type Server struct {
	cfg    config.Config
	log    *slog.Logger
	router chi.Router
	srv    *http.Server
}

// New assembles a Server from cfg. A nil log discards everything.
func New(cfg config.Config, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{cfg: cfg, log: log, router: chi.NewRouter()}
	s.routes()
	s.srv = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Server.Addr }

func (s *Server) routes() {
	r := s.router
	r.Use(chimid.RequestID)
	r.Use(AccessLog(s.log))
	r.Use(Compression)
	r.Use(Recover(s.log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         600,
	}).Handler)

	h := &handlers{
		cfg:    s.cfg,
		log:    s.log,
		now:    time.Now,
		sweeps: semaphore.NewWeighted(int64(max(1, s.cfg.Server.Limits.MaxConcurrentSweeps))),
	}
	r.Get("/healthz", h.health)
	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/sort/algorithms", h.sortAlgorithms)
		v1.Get("/sort/{algo}", h.sortTrace)
		v1.Get("/path/algorithms", h.pathAlgorithms)
		v1.Get("/path/{algo}", h.pathTrace)
		v1.Get("/sweep", h.sweep)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, fmt.Errorf("%w: %s", errNotFound, r.URL.Path))
	})
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.srv.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", slog.String("addr", ln.Addr().String()))
		errc <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}

	return nil
}
