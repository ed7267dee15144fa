// Package server owns the herodex HTTP server: the mux, the fixed routes
// (welcome, health, metrics, swagger, images, not-found) and the middleware
// chain. Feature packages mount their own routes through RouteRegistrar.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/HerbHall/herodex/internal/version"
)

// Fixed response bodies.
const (
	WelcomeMessage  = "Welcome to Boruto API!"
	NotFoundMessage = "Page not Found."
)

// RouteRegistrar is implemented by packages that serve HTTP routes.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// CatalogStats reports the size of the loaded catalog for health checks.
type CatalogStats interface {
	Len() int
	PageCount() int
}

// Options configures a Server. Zero timeouts fall back to the defaults used
// by New.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// ImagesDir is served under /images/. Empty disables the route.
	ImagesDir string

	// Registry receives the HTTP collectors and is exposed at /metrics.
	// Nil disables both.
	Registry *prometheus.Registry

	// Swagger mounts the Swagger UI at /swagger/.
	Swagger bool

	Catalog CatalogStats
}

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version map[string]string `json:"version"`
	Heroes  int               `json:"heroes"`
	Pages   int               `json:"pages"`
}

// Server is the main herodex server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
	opts       Options
}

// New creates a new Server and mounts the routes of every registrar.
func New(opts Options, logger *zap.Logger, registrars ...RouteRegistrar) *Server {
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 15 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 15 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}

	mux := http.NewServeMux()
	s := &Server{
		logger: logger,
		mux:    mux,
		opts:   opts,
	}

	s.registerCoreRoutes()
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.middleware(mux),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}
	return s
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("/", s.handleNotFound)

	if s.opts.ImagesDir != "" {
		s.mux.Handle("GET /images/", staticFiles("/images/", http.Dir(s.opts.ImagesDir), s.handleNotFound))
	}
	if s.opts.Registry != nil {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))
	}
	if s.opts.Swagger {
		s.mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}
}

// middleware wraps h in the request id, access log, recovery and (when a
// registry is configured) Prometheus instrumentation layers, outermost first.
func (s *Server) middleware(h http.Handler) http.Handler {
	if s.opts.Registry != nil {
		h = instrument(s.opts.Registry, h)
	}
	h = recovery(s.logger)(h)
	h = accessLog(s.logger)(h)
	return requestID(h)
}

func instrument(reg prometheus.Registerer, next http.Handler) http.Handler {
	f := promauto.With(reg)
	requests := f.NewCounterVec(prometheus.CounterOpts{
		Namespace: "herodex",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by status code and method.",
	}, []string{"code", "method"})
	duration := f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "herodex",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"})

	return promhttp.InstrumentHandlerDuration(duration,
		promhttp.InstrumentHandlerCounter(requests, next))
}

// staticFiles serves regular files from root under prefix. Missing files and
// directories are answered by notFound, so every miss gets the same body.
func staticFiles(prefix string, root http.FileSystem, notFound http.HandlerFunc) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, prefix))
		if !isRegularFile(root, name) {
			notFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func isRegularFile(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	return err == nil && fi.Mode().IsRegular()
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start begins serving HTTP requests on the configured address.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Serve serves HTTP requests on an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, WelcomeMessage)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("route not found",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	writeText(w, http.StatusNotFound, NotFoundMessage)
}

// handleHealth returns the server health status.
//
//	@Summary	Service health
//	@Tags		system
//	@Produce	json
//	@Success	200 {object} HealthResponse
//	@Router		/api/v1/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Service: version.Name,
		Version: version.Map(),
	}
	if s.opts.Catalog != nil {
		resp.Heroes = s.opts.Catalog.Len()
		resp.Pages = s.opts.Catalog.PageCount()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Herodex-Version", version.Short())
	_ = json.NewEncoder(w).Encode(resp)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
