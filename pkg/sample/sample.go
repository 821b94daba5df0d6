package sample

import (
	"errors"
	"fmt"
	"regexp/syntax"

	"github.com/lucasjones/reggen"
)

// ErrUnsupported is returned by [New] for patterns using constructs that
// cannot be sampled, such as word boundaries.
var ErrUnsupported = errors.New("unsupported regular expression construct")

// DefaultLimit is the most repetitions drawn for * and +.
const DefaultLimit = 10

// Generator produces random strings matching one pattern.
type Generator struct {
	pattern string
	gen     *reggen.Generator
	limit   int
}

// Option configures a [Generator].
type Option func(*Generator)

// WithSeed makes the generator deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.gen.SetSeed(int64(seed)) }
}

// WithLimit caps * and + at n repetitions. Values below 1 are raised to 1,
// as + needs at least one.
func WithLimit(n int) Option {
	return func(g *Generator) { g.limit = max(n, 1) }
}

// New parses pattern with Perl syntax and returns a generator for it.
// Without [WithSeed] the generator is seeded from the clock.
func New(pattern string, opts ...Option) (*Generator, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", pattern, err)
	}
	// reggen skips assertions it cannot satisfy, which would yield strings
	// that do not match.
	if err := check(re); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	gen, err := reggen.NewGenerator(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	g := &Generator{pattern: pattern, gen: gen, limit: DefaultLimit}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// String returns the pattern.
func (g *Generator) String() string { return g.pattern }

func check(re *syntax.Regexp) error {
	switch re.Op {
	case syntax.OpNoMatch, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return fmt.Errorf("%w: %s", ErrUnsupported, re)
	case syntax.OpCharClass:
		if len(re.Rune) == 0 {
			return fmt.Errorf("%w: empty class", ErrUnsupported)
		}
	}
	for _, sub := range re.Sub {
		if err := check(sub); err != nil {
			return err
		}
	}
	return nil
}

// Generate returns one matching string.
func (g *Generator) Generate() string { return g.gen.Generate(g.limit) }

// GenerateN returns n matching strings, possibly with repeats.
func (g *Generator) GenerateN(n int) []string {
	out := make([]string, max(n, 0))
	for i := range out {
		out[i] = g.Generate()
	}
	return out
}

// GenerateUnique draws up to attempts strings until one is not in seen and
// records the result in seen. It reports false when every attempt collided,
// in which case the last draw is returned anyway.
func (g *Generator) GenerateUnique(seen map[string]bool, attempts int) (string, bool) {
	var s string
	for range max(attempts, 1) {
		s = g.Generate()
		if !seen[s] {
			seen[s] = true
			return s, true
		}
	}
	return s, false
}

// Distinct returns n strings, retrying each up to attempts times to avoid
// repeats. Patterns with fewer than n matches yield repeats.
func (g *Generator) Distinct(n, attempts int) []string {
	seen := make(map[string]bool, max(n, 0))
	out := make([]string, max(n, 0))
	for i := range out {
		out[i], _ = g.GenerateUnique(seen, attempts)
	}
	return out
}
