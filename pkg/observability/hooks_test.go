package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type recorder struct {
	NoopEngineHooks
	runs int
}

func (r *recorder) OnRun(context.Context, string, bool, int, time.Duration, error) { r.runs++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()
	Engine().OnRun(ctx, "profile", true, 4, time.Millisecond, nil)
	Cache().OnCacheSet(ctx, "diagram", 1024)
	HTTP().OnResponse(ctx, "GET", "/machines", 200, time.Second)

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Errorf("Engine() = %T, want NoopEngineHooks", Engine())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestSetEngineHooks(t *testing.T) {
	t.Cleanup(Reset)
	r := &recorder{}
	SetEngineHooks(r)
	SetEngineHooks(nil)

	Engine().OnRun(context.Background(), "profile", true, 3, 0, nil)
	if r.runs != 1 {
		t.Errorf("runs = %d, want 1 (nil must not replace installed hooks)", r.runs)
	}
	Reset()
	if Engine() == EngineHooks(r) {
		t.Error("Reset() kept the recorder")
	}
}

func TestInstall(t *testing.T) {
	Reset()
	outer := &recorder{}
	SetEngineHooks(outer)

	p := NewPrometheus(prometheus.NewRegistry())
	restore := Install(p)
	if Engine() != EngineHooks(p) || Cache() != CacheHooks(p) || HTTP() != HTTPHooks(p) {
		t.Fatal("Install did not register every family")
	}
	restore()
	if Engine() != EngineHooks(outer) {
		t.Errorf("Engine() = %T after restore, want the previous hooks", Engine())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T after restore, want NoopCacheHooks", Cache())
	}

	// Only the implemented families are touched.
	r := &recorder{}
	restore = Install(r)
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want untouched", HTTP())
	}
	restore()
	Reset()
}

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)
	ctx := context.Background()

	p.OnRun(ctx, "profile", true, 4, time.Microsecond, nil)
	p.OnRun(ctx, "profile", false, 2, time.Microsecond, nil)
	p.OnRun(ctx, "profile", false, 0, 0, errors.New("not ready"))
	p.OnReduce(ctx, "profile", 6, 2, time.Millisecond, nil)
	p.OnRender(ctx, "svg", time.Millisecond, nil)
	p.OnCacheMiss(ctx, "diagram")
	p.OnCacheSet(ctx, "diagram", 512)
	p.OnCacheHit(ctx, "diagram")
	p.OnResponse(ctx, "GET", "/machines", 200, time.Millisecond)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"accepted runs", testutil.ToFloat64(p.runs.WithLabelValues("profile", "accept")), 1},
		{"rejected runs", testutil.ToFloat64(p.runs.WithLabelValues("profile", "reject")), 1},
		{"failed runs", testutil.ToFloat64(p.runs.WithLabelValues("profile", "error")), 1},
		{"symbols", testutil.ToFloat64(p.runSymbols.WithLabelValues("profile")), 6},
		{"states removed", testutil.ToFloat64(p.statesRemoved.WithLabelValues("profile")), 4},
		{"renders", testutil.ToFloat64(p.renders.WithLabelValues("svg", "ok")), 1},
		{"cache hits", testutil.ToFloat64(p.cacheEvents.WithLabelValues("diagram", "hit")), 1},
		{"cache bytes", testutil.ToFloat64(p.cacheBytes.WithLabelValues("diagram")), 512},
		{"requests", testutil.ToFloat64(p.requests.WithLabelValues("GET", "/machines", "200")), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
