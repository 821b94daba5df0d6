package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements every hook interface with Prometheus collectors.
type Prometheus struct {
	runs           *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	runSymbols     *prometheus.CounterVec
	reductions     *prometheus.CounterVec
	statesRemoved  *prometheus.CounterVec
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	cacheEvents    *prometheus.CounterVec
	cacheBytes     *prometheus.CounterVec
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

var (
	_ EngineHooks = (*Prometheus)(nil)
	_ CacheHooks  = (*Prometheus)(nil)
	_ HTTPHooks   = (*Prometheus)(nil)
)

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_runs_total",
			Help: "Automaton runs by machine and verdict.",
		}, []string{"machine", "verdict"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fsa_run_duration_seconds",
			Help:    "Duration of automaton runs.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"machine"}),
		runSymbols: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_run_symbols_total",
			Help: "Input symbols fed to automata.",
		}, []string{"machine"}),
		reductions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_reductions_total",
			Help: "Minimizations by machine and outcome.",
		}, []string{"machine", "outcome"}),
		statesRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_reduction_states_removed_total",
			Help: "States removed or merged by minimization.",
		}, []string{"machine"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_renders_total",
			Help: "Diagram renders by format and outcome.",
		}, []string{"format", "outcome"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "fsa_render_duration_seconds",
			Help: "Duration of diagram renders.",
		}, []string{"format"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_cache_events_total",
			Help: "Cache hits, misses and writes by key type.",
		}, []string{"key_type", "event"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_cache_written_bytes_total",
			Help: "Bytes written to the cache.",
		}, []string{"key_type"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fsa_http_requests_total",
			Help: "HTTP responses by route and status code.",
		}, []string{"method", "route", "code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "fsa_http_request_duration_seconds",
			Help: "HTTP request latency by route.",
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		p.runs, p.runDuration, p.runSymbols,
		p.reductions, p.statesRemoved,
		p.renders, p.renderDuration,
		p.cacheEvents, p.cacheBytes,
		p.requests, p.requestLatency,
	)
	return p
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (p *Prometheus) OnRun(_ context.Context, machine string, accepted bool, symbols int, d time.Duration, err error) {
	verdict := "reject"
	switch {
	case err != nil:
		verdict = "error"
	case accepted:
		verdict = "accept"
	}
	p.runs.WithLabelValues(machine, verdict).Inc()
	p.runDuration.WithLabelValues(machine).Observe(d.Seconds())
	p.runSymbols.WithLabelValues(machine).Add(float64(symbols))
}

func (p *Prometheus) OnReduce(_ context.Context, machine string, before, after int, _ time.Duration, err error) {
	p.reductions.WithLabelValues(machine, outcome(err)).Inc()
	if err == nil && before > after {
		p.statesRemoved.WithLabelValues(machine).Add(float64(before - after))
	}
}

func (p *Prometheus) OnRender(_ context.Context, format string, d time.Duration, err error) {
	p.renders.WithLabelValues(format, outcome(err)).Inc()
	p.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.cacheEvents.WithLabelValues(keyType, "set").Inc()
	p.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (p *Prometheus) OnRequest(context.Context, string, string) {}

func (p *Prometheus) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	p.requestLatency.WithLabelValues(method, route).Observe(d.Seconds())
}
