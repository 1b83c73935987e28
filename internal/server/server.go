// Package server exposes the article and edition pipelines over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/wikireader/pkg/config"
	"github.com/matzehuels/wikireader/pkg/edition"
	"github.com/matzehuels/wikireader/pkg/integrations/wikipedia"
)

// Articles fetches transformed articles. *article.Service satisfies it.
type Articles interface {
	Fetch(ctx context.Context, title string, refresh bool) (string, error)
	Markdown(ctx context.Context, title string, refresh bool) (string, error)
}

// Editions assembles editions. *edition.Builder satisfies it.
type Editions interface {
	Build(ctx context.Context) *edition.Edition
}

// Searcher suggests titles. *wikipedia.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]wikipedia.SearchResult, error)
}

// Deps are the pipelines the server routes to.
type Deps struct {
	Articles Articles
	Editions Editions
	Search   Searcher
	Registry *prometheus.Registry // nil disables /metrics
}

// Server is the HTTP front of the reader.
type Server struct {
	deps   Deps
	cfg    config.Config
	logger *log.Logger
	router chi.Router
}

// New builds the router.
func New(cfg config.Config, deps Deps, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{deps: deps, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/article/*", s.handleArticle)
		r.Get("/edition", s.handleEdition)
		r.Get("/search", s.handleSearch)
		r.Get("/styles", s.handleStyles)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
