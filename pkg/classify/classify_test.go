package classify

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/dataset"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

const edges = `0 1
0 2
0 3
1 2
1 3
2 3
3 4
3 5
4 5
`

func graph(t *testing.T) *dataset.Graph {
	t.Helper()
	g, err := dataset.Parse(strings.NewReader(edges))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSplitGenuine(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	got := SplitGenuine(100, 30, rng)
	if len(got) != 30 {
		t.Errorf("len(SplitGenuine) = %d, want 30", len(got))
	}
	for id := range got {
		if id < 0 || id >= 100 {
			t.Errorf("id %d out of range", id)
		}
	}
	if got := SplitGenuine(5, 10, rng); len(got) != 5 {
		t.Errorf("genuine larger than total: got %d ids, want 5", len(got))
	}
	if got := SplitGenuine(-1, 5, rng); len(got) != 0 {
		t.Errorf("negative total: got %d ids, want 0", len(got))
	}
	if got := SplitGenuine(4, -2, rng); len(got) != 0 {
		t.Errorf("negative genuine: got %d ids, want 0", len(got))
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		ok     bool
	}{
		{"defaults", func(*Options) {}, true},
		{"all genuine", func(o *Options) { o.Genuine = o.Total }, true},
		{"zero attempts", func(o *Options) { o.Attempts = 0 }, true},
		{"negative total", func(o *Options) { o.Total = -1 }, false},
		{"negative genuine", func(o *Options) { o.Genuine = -1 }, false},
		{"negative attempts", func(o *Options) { o.Attempts = -3 }, false},
		{"negative max profiles", func(o *Options) { o.MaxProfiles = -1 }, false},
		{"genuine above total", func(o *Options) { o.Total, o.Genuine = 3, 4 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			err := opts.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tt.ok && !fsaerrors.Is(err, fsaerrors.ErrCodeValidation) {
				t.Errorf("Validate() error = %v, want VALIDATION", err)
			}
		})
	}
}

func TestEvaluate_InvalidOptions(t *testing.T) {
	c, _ := New()
	opts := DefaultOptions()
	opts.Total = -1
	if _, err := Evaluate(context.Background(), graph(t), c, opts); !fsaerrors.Is(err, fsaerrors.ErrCodeValidation) {
		t.Errorf("Evaluate() error = %v, want VALIDATION", err)
	}
}

func TestClassify(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	tests := []struct {
		activity string
		want     bool
	}{
		{"aa#", true},
		{"bba#", true},
		{"a#", false},
		{"ab#", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := c.Classify(context.Background(), tt.activity)
		if err != nil {
			t.Errorf("Classify(%q) error: %v", tt.activity, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.activity, got, tt.want)
		}
	}

	if _, err := c.Classify(context.Background(), "abc#"); !errors.Is(err, automaton.ErrInvalidSymbol) {
		t.Errorf("Classify(abc#) error = %v, want ErrInvalidSymbol", err)
	}
}

func TestNewWith_RejectsTransducer(t *testing.T) {
	m := automaton.NewMealy([]string{"a"}, []string{"a"})
	if _, err := NewWith("m", m); err == nil {
		t.Error("NewWith() should reject transducers")
	}
	if _, err := NewWith("empty", automaton.NewDFA("a")); !errors.Is(err, automaton.ErrNotReady) {
		t.Errorf("NewWith() error = %v, want ErrNotReady", err)
	}
}

func TestEvaluate(t *testing.T) {
	g := graph(t)
	c, _ := New()
	opts := DefaultOptions()
	opts.Total = 6
	opts.Genuine = 3
	opts.MaxProfiles = 0

	r, err := Evaluate(context.Background(), g, c, opts)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if r.Profiles != g.Len() {
		t.Errorf("Profiles = %d, want %d", r.Profiles, g.Len())
	}
	if r.Samples != g.EdgeCount() {
		t.Errorf("Samples = %d, want %d", r.Samples, g.EdgeCount())
	}
	if r.TP+r.FP+r.TN+r.FN != r.Samples {
		t.Errorf("confusion matrix %+v does not sum to %d", r, r.Samples)
	}
	if r.TruthGenuine+r.TruthFake != r.Samples || r.PredictedGenuine+r.PredictedFake != r.Samples {
		t.Errorf("truth or prediction totals do not match samples: %+v", r)
	}

	again, err := Evaluate(context.Background(), g, c, opts)
	if err != nil {
		t.Fatalf("second Evaluate() error: %v", err)
	}
	if *again != *r {
		t.Errorf("same seed gave %+v and %+v", r, again)
	}
}

func TestEvaluate_MaxProfiles(t *testing.T) {
	c, _ := New()
	opts := DefaultOptions()
	opts.MaxProfiles = 2

	r, err := Evaluate(context.Background(), graph(t), c, opts)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	// Profiles 0 and 1 have 3 and 2 friends.
	if r.Profiles != 2 || r.Samples != 5 {
		t.Errorf("Profiles, Samples = %d, %d; want 2, 5", r.Profiles, r.Samples)
	}
}

func TestEvaluate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, _ := New()
	if _, err := Evaluate(ctx, graph(t), c, DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate() error = %v, want context.Canceled", err)
	}
}

func TestEvaluate_BadPattern(t *testing.T) {
	c, _ := New()
	opts := DefaultOptions()
	opts.FakePattern = "(a"
	if _, err := Evaluate(context.Background(), graph(t), c, opts); err == nil {
		t.Error("Evaluate() with invalid pattern should fail")
	}
}

func TestReport_Ratios(t *testing.T) {
	r := &Report{}
	if r.Accuracy() != 0 || r.Precision() != 0 || r.Recall() != 0 {
		t.Error("empty report should have zero ratios")
	}
	r.add(true, true)
	r.add(true, false)
	r.add(false, true)
	r.add(false, false)
	if r.Accuracy() != 0.5 || r.Precision() != 0.5 || r.Recall() != 0.5 {
		t.Errorf("ratios = %v, %v, %v; want 0.5 each", r.Accuracy(), r.Precision(), r.Recall())
	}
	if !strings.Contains(r.String(), "4 samples") {
		t.Errorf("String() = %q", r.String())
	}
}
