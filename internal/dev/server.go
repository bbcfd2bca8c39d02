// Package dev runs the folio development server.
//
// The server renders the portfolio page on every request, serves static
// assets, exposes health and Prometheus metrics endpoints, and pushes
// live-reload notifications over a WebSocket when watched files change.
package dev

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-go/folio/internal/config"
	"github.com/vango-go/folio/pkg/middleware"
	"github.com/vango-go/folio/pkg/page"
	"github.com/vango-go/folio/pkg/render"
)

// ReloadPath is the WebSocket endpoint browsers connect to for live reload.
const ReloadPath = "/__folio/reload"

// watchInterval is how often watched files are polled for changes.
const watchInterval = time.Second

// Server serves the rendered portfolio page during development.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	reload *ReloadServer
	http   *http.Server
}

// NewServer creates a dev server for the given configuration.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		reload: NewReloadServer(),
	}
}

// Start runs the server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics())
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(req *http.Request) bool {
			return !strings.HasPrefix(req.URL.Path, "/__folio/")
		}),
	))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get(ReloadPath, s.reload.HandleWebSocket)

	if dir := s.cfg.Assets; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fileServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(dir)))
			r.Get("/assets/*", fileServer.ServeHTTP)
		}
	}

	s.http = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.watch(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dev server listening", "addr", s.cfg.Addr())
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dev server: %w", err)
	}
}

// handleIndex renders the page fresh on every request so config and asset
// edits show up on reload.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := page.Build(s.site())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Page(w, doc, render.PageConfig{
		Title:   s.title(),
		Styles:  []string{"/assets/style.css"},
		Scripts: []string{"/assets/folio.js"},
	}); err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// site builds the page content from the configuration, falling back to the
// packaged defaults for unset fields.
func (s *Server) site() page.Site {
	site := page.DefaultSite()
	if s.cfg.Owner != "" {
		site.Owner = s.cfg.Owner
	}
	if s.cfg.Title != "" {
		site.Title = s.cfg.Title
	}
	if s.cfg.Tagline != "" {
		site.Tagline = s.cfg.Tagline
	}
	return site
}

func (s *Server) title() string {
	if s.cfg.Title != "" {
		return s.cfg.Title
	}
	return page.DefaultSite().Title
}

// watch polls the config file and asset directory and notifies connected
// browsers when something changes. Polling keeps the dev loop dependency
// free; one-second latency is fine for a reload hint.
func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	last := s.snapshot()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := s.snapshot()
			for path, mod := range current {
				prev, seen := last[path]
				if seen && prev.Equal(mod) {
					continue
				}
				if filepath.Ext(path) == ".css" {
					s.logger.Debug("css changed", "file", path)
					s.reload.NotifyCSS("/assets/" + filepath.Base(path))
				} else {
					s.logger.Debug("file changed", "file", path)
					s.reload.NotifyReload()
				}
			}
			last = current
		}
	}
}

// snapshot records modification times for every watched file.
func (s *Server) snapshot() map[string]time.Time {
	out := make(map[string]time.Time)
	if s.cfg.Path() != "" {
		if info, err := os.Stat(s.cfg.Path()); err == nil {
			out[s.cfg.Path()] = info.ModTime()
		}
	}
	if s.cfg.Assets != "" {
		filepath.WalkDir(s.cfg.Assets, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if info, err := d.Info(); err == nil {
				out[path] = info.ModTime()
			}
			return nil
		})
	}
	return out
}
