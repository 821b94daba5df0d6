package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/fsa/pkg/buildinfo"
	"github.com/matzehuels/fsa/pkg/cache"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
	"github.com/matzehuels/fsa/pkg/observability"
)

// maxBodyBytes bounds run request bodies.
const maxBodyBytes = 1 << 20

// Options configures a [Server]. The zero value is usable.
type Options struct {
	// Cache stores rendered diagrams. Nil disables caching.
	Cache cache.Cache
	// CacheTTL applies to diagram entries.
	CacheTTL time.Duration
	// Logger receives debug request logs. Nil discards them.
	Logger *log.Logger
	// Gatherer backs /metrics. Nil uses prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	cache    cache.Cache
	ttl      time.Duration
	logger   *log.Logger
	gatherer prometheus.Gatherer
}

// New creates a server from opts.
func New(opts Options) *Server {
	s := &Server{
		cache:    opts.Cache,
		ttl:      opts.CacheTTL,
		logger:   opts.Logger,
		gatherer: opts.Gatherer,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, health{Status: "ok", Build: buildinfo.Get()})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/machines", func(r chi.Router) {
		r.Get("/", s.listMachines)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.getMachine)
			r.Post("/run", s.runMachine)
			r.Get("/diagram", s.diagram)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// instrument reports every request through the HTTP hooks, labelled with
// the matched route pattern rather than the raw path.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, route, sw.status, d)
		if s.logger != nil {
			s.logger.Debug("request", "method", r.Method, "route", route, "status", sw.status, "duration", d)
		}
	})
}

type health struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := fsaerrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorBody{Error: fsaerrors.UserMessage(err), Code: string(fsaerrors.GetCode(err))})
}
