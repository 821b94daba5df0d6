// Package observability lets callers report automaton runs, reductions,
// diagram rendering, cache traffic and HTTP requests to a metrics backend
// without the reporting packages depending on one.
//
// Three hook families exist: [EngineHooks], [CacheHooks] and [HTTPHooks].
// Each has a no-op default, so reporting is always safe. The automaton core
// never reports anything itself; the CLI, the HTTP API and the classifier
// report what they did with it.
//
//	m := observability.NewPrometheus(reg)
//	restore := observability.Install(m) // m implements all three families
//	defer restore()
//
//	res, err := a.Run(input)
//	observability.Engine().OnRun(ctx, machine, res.Accepted, len(input), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// EngineHooks receives events about work done with automata.
type EngineHooks interface {
	// OnRun records one execution of an automaton on an input sequence.
	OnRun(ctx context.Context, machine string, accepted bool, symbols int, duration time.Duration, err error)
	// OnReduce records a minimization and the state counts around it.
	OnReduce(ctx context.Context, machine string, before, after int, duration time.Duration, err error)
	// OnRender records the generation of a diagram.
	OnRender(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks receives cache traffic. keyType is the key prefix, such as
// "diagram".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives served requests. route is the matched pattern, such as
// "/machines/{name}/run", never the raw path.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

type NoopEngineHooks struct{}

func (NoopEngineHooks) OnRun(context.Context, string, bool, int, time.Duration, error)   {}
func (NoopEngineHooks) OnReduce(context.Context, string, int, int, time.Duration, error) {}
func (NoopEngineHooks) OnRender(context.Context, string, time.Duration, error)           {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// slot holds the current hooks of one family.
type slot[T any] struct {
	mu   sync.RWMutex
	cur  T
	noop T
}

func newSlot[T any](noop T) *slot[T] { return &slot[T]{cur: noop, noop: noop} }

func (s *slot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// swap installs h and returns the previous hooks.
func (s *slot[T]) swap(h T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.cur
	s.cur = h
	return prev
}

func (s *slot[T]) reset() { s.swap(s.noop) }

var (
	engine = newSlot[EngineHooks](NoopEngineHooks{})
	cache  = newSlot[CacheHooks](NoopCacheHooks{})
	web    = newSlot[HTTPHooks](NoopHTTPHooks{})
)

// SetEngineHooks installs h. A nil h is ignored.
func SetEngineHooks(h EngineHooks) {
	if h != nil {
		engine.swap(h)
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cache.swap(h)
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		web.swap(h)
	}
}

func Engine() EngineHooks { return engine.get() }
func Cache() CacheHooks   { return cache.get() }
func HTTP() HTTPHooks     { return web.get() }

// Install registers h for every hook family it implements and returns a
// function that puts the previous hooks back.
func Install(h any) (restore func()) {
	var undo []func()
	if e, ok := h.(EngineHooks); ok {
		prev := engine.swap(e)
		undo = append(undo, func() { engine.swap(prev) })
	}
	if c, ok := h.(CacheHooks); ok {
		prev := cache.swap(c)
		undo = append(undo, func() { cache.swap(prev) })
	}
	if w, ok := h.(HTTPHooks); ok {
		prev := web.swap(w)
		undo = append(undo, func() { web.swap(prev) })
	}
	return func() {
		for _, f := range undo {
			f()
		}
	}
}

// Reset restores the no-op defaults.
func Reset() {
	engine.reset()
	cache.reset()
	web.reset()
}
