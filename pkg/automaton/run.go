package automaton

import (
	"fmt"
	"iter"
	"strings"
)

// Reason explains why a run rejected its input.
type Reason string

const (
	// ReasonNoTransition means the current state has no transition on the
	// next input symbol.
	ReasonNoTransition Reason = "no transition for current state and symbol"
	// ReasonNotAccepting means the whole input was consumed but the final
	// state is not an accept state.
	ReasonNotAccepting Reason = "final state not accepting"
)

// Result is the outcome of [Automaton.Run]. A rejection is a Result with
// Accepted=false, never an error.
type Result struct {
	Accepted bool
	// Output holds the symbols emitted so far by a transducer. It is nil for
	// acceptors and non-nil (possibly empty) for transducers.
	Output []string
	// Final is the state the run stopped in.
	Final string
	// Reason is empty when Accepted is true.
	Reason Reason
	// Symbol is the input symbol that had no transition when Reason is
	// ReasonNoTransition.
	Symbol string
	// Consumed counts the input symbols that were followed by a transition.
	Consumed int
}

// OutputString concatenates the emitted output symbols.
func (r Result) OutputString() string { return strings.Join(r.Output, "") }

// String renders the verdict on one line, e.g.
//
//	accept at q3
//	reject at q1: no transition for current state and symbol (symbol "#" at position 2)
func (r Result) String() string {
	var b strings.Builder
	if r.Accepted {
		fmt.Fprintf(&b, "accept at %s", r.Final)
	} else {
		fmt.Fprintf(&b, "reject at %s: %s", r.Final, r.Reason)
		if r.Reason == ReasonNoTransition {
			fmt.Fprintf(&b, " (symbol %q at position %d)", r.Symbol, r.Consumed)
		}
	}
	if r.Output != nil {
		fmt.Fprintf(&b, ", output %q", r.OutputString())
	}
	return b.String()
}

// Step is one consumed symbol of a run.
type Step struct {
	Index  int // position of Symbol in the input
	From   string
	Symbol string
	Output []string // nil for acceptors
	To     string
}

// String formats the step as "(from, symbol) -> to" or
// "(from, symbol, output) -> to" for transducers.
func (s Step) String() string {
	if s.Output == nil {
		return fmt.Sprintf("(%s, %s) -> %s", s.From, s.Symbol, s.To)
	}
	return fmt.Sprintf("(%s, %s, %s) -> %s", s.From, s.Symbol, FormatOutput(s.Output), s.To)
}

// Symbols splits s into one symbol per rune, the usual way to feed text to
// an automaton whose alphabet is made of single characters.
func Symbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Run executes the automaton on input.
//
// Starting at the initial state, each symbol selects the outgoing transition
// on that symbol. A missing transition stops the run with
// [ReasonNoTransition]; after the last symbol the run accepts iff the final
// state accepts, otherwise it rejects with [ReasonNotAccepting]. The empty
// input is accepted iff the initial state accepts.
//
// Run fails with [ErrNotReady] if [Automaton.Ready] fails and with
// [ErrInvalidSymbol] if input holds a symbol outside the alphabet.
func (a *Automaton) Run(input []string) (Result, error) {
	return a.walk(input, nil)
}

// RunString runs the automaton on the runes of s. See [Symbols].
func (a *Automaton) RunString(s string) (Result, error) {
	return a.walk(Symbols(s), nil)
}

// Trace returns the steps of running input as a lazy sequence. Each
// iteration re-runs the automaton from the initial state, so the sequence can
// be ranged over any number of times.
//
// The sequence ends early, without a step for the offending symbol, where Run
// would reject with [ReasonNoTransition] or fail. Use Run for the verdict.
func (a *Automaton) Trace(input []string) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		_, _ = a.walk(input, yield)
	}
}

func (a *Automaton) walk(input []string, yield func(Step) bool) (Result, error) {
	if err := a.Ready(); err != nil {
		return Result{}, err
	}

	var res Result
	if a.kind == KindTransducer {
		res.Output = []string{}
	}
	cur := a.initial
	for i, sym := range input {
		if !a.alphabet.Contains(sym) {
			return Result{}, invalid(ErrInvalidSymbol, "input symbol %q at position %d", sym, i)
		}
		e, ok := a.next(cur, sym)
		if !ok {
			res.Final = a.states[cur].Name
			res.Reason = ReasonNoTransition
			res.Symbol = sym
			res.Consumed = i
			return res, nil
		}
		if a.kind == KindTransducer {
			res.Output = append(res.Output, e.output...)
		}
		if yield != nil {
			step := Step{Index: i, From: a.states[cur].Name, Symbol: sym, To: a.states[e.to].Name}
			if a.kind == KindTransducer {
				step.Output = append([]string{}, e.output...)
			}
			if !yield(step) {
				return res, nil
			}
		}
		cur = e.to
	}

	res.Final = a.states[cur].Name
	res.Consumed = len(input)
	res.Accepted = a.states[cur].Accept
	if !res.Accepted {
		res.Reason = ReasonNotAccepting
	}
	return res, nil
}
