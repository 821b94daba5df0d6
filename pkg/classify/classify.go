package classify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/catalog"
	"github.com/matzehuels/fsa/pkg/dataset"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
	"github.com/matzehuels/fsa/pkg/observability"
	"github.com/matzehuels/fsa/pkg/sample"
)

// Defaults mirror the ego network of 4039 Facebook users.
const (
	DefaultTotal          = 4039
	DefaultGenuine        = 1399
	DefaultMaxProfiles    = 51
	DefaultSeed           = 42
	DefaultAttempts       = 100
	DefaultGenuinePattern = `(a|b)*a#`
	DefaultFakePattern    = `(a*|b)(b|ab*a)#`
)

// Options configures [Evaluate].
type Options struct {
	Total          int    // ids 0..Total-1 take part in the genuine split
	Genuine        int    // how many of them are genuine
	MaxProfiles    int    // profiles to evaluate; 0 means all
	Seed           uint64 // seed for the split and both generators
	Attempts       int    // retries per friend to keep activity strings unique
	GenuinePattern string
	FakePattern    string
	Logger         *log.Logger // optional; per-profile progress at debug level
}

// DefaultOptions returns the settings of the original experiment.
func DefaultOptions() Options {
	return Options{
		Total:          DefaultTotal,
		Genuine:        DefaultGenuine,
		MaxProfiles:    DefaultMaxProfiles,
		Seed:           DefaultSeed,
		Attempts:       DefaultAttempts,
		GenuinePattern: DefaultGenuinePattern,
		FakePattern:    DefaultFakePattern,
	}
}

// Validate rejects negative counts and a genuine share larger than Total.
func (o Options) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"total", o.Total},
		{"genuine", o.Genuine},
		{"max-profiles", o.MaxProfiles},
		{"attempts", o.Attempts},
	} {
		if f.v < 0 {
			return fsaerrors.New(fsaerrors.ErrCodeValidation, "classify %s must not be negative, got %d", f.name, f.v)
		}
	}
	if o.Genuine > o.Total {
		return fsaerrors.New(fsaerrors.ErrCodeValidation, "classify genuine %d exceeds total %d", o.Genuine, o.Total)
	}
	return nil
}

// SplitGenuine picks genuine ids out of 0..total-1 without replacement.
// Out-of-range counts are clamped.
func SplitGenuine(total, genuine int, rng *rand.Rand) map[int]bool {
	total = max(total, 0)
	genuine = min(max(genuine, 0), total)
	out := make(map[int]bool, genuine)
	for _, id := range rng.Perm(total)[:genuine] {
		out[id] = true
	}
	return out
}

// Classifier wraps an acceptor used as a stateless predicate.
type Classifier struct {
	name string
	dfa  *automaton.Automaton
}

// New returns a classifier backed by the catalog's profile acceptor.
func New() (*Classifier, error) {
	a, err := catalog.Profile.Build()
	if err != nil {
		return nil, err
	}
	return &Classifier{name: catalog.Profile.Name, dfa: a}, nil
}

// NewWith returns a classifier backed by a.
func NewWith(name string, a *automaton.Automaton) (*Classifier, error) {
	if a.Kind() != automaton.KindAcceptor {
		return nil, fmt.Errorf("classifier %s: need an acceptor, got %s", name, a.Kind())
	}
	if err := a.Ready(); err != nil {
		return nil, fmt.Errorf("classifier %s: %w", name, err)
	}
	return &Classifier{name: name, dfa: a}, nil
}

// Classify reports whether activity looks genuine.
func (c *Classifier) Classify(ctx context.Context, activity string) (bool, error) {
	start := time.Now()
	input := automaton.Symbols(activity)
	res, err := c.dfa.Run(input)
	observability.Engine().OnRun(ctx, c.name, res.Accepted, len(input), time.Since(start), err)
	if err != nil {
		return false, err
	}
	return res.Accepted, nil
}

// Evaluate classifies generated activity for the friends of each profile in
// g and tallies the verdicts.
func Evaluate(ctx context.Context, g *dataset.Graph, c *Classifier, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	genuine := SplitGenuine(opts.Total, opts.Genuine, rng)

	genuineGen, err := sample.New(opts.GenuinePattern, sample.WithSeed(opts.Seed+1))
	if err != nil {
		return nil, fmt.Errorf("genuine pattern: %w", err)
	}
	fakeGen, err := sample.New(opts.FakePattern, sample.WithSeed(opts.Seed+2))
	if err != nil {
		return nil, fmt.Errorf("fake pattern: %w", err)
	}

	report := &Report{}
	for i, id := range g.IDs() {
		if opts.MaxProfiles > 0 && i >= opts.MaxProfiles {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seen := make(map[string]bool)
		var collisions int
		for _, friend := range g.Friends(id) {
			truth := genuine[friend]
			gen := fakeGen
			if truth {
				gen = genuineGen
			}
			activity, unique := gen.GenerateUnique(seen, opts.Attempts)
			if !unique {
				collisions++
			}
			predicted, err := c.Classify(ctx, activity)
			if err != nil {
				return nil, fmt.Errorf("profile %d friend %d: %w", id, friend, err)
			}
			report.add(truth, predicted)
		}
		report.Profiles++

		if opts.Logger != nil {
			opts.Logger.Debug("profile classified", "id", id, "friends", len(g.Friends(id)), "collisions", collisions)
		}
	}
	return report, nil
}
