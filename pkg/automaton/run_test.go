package automaton

import (
	"errors"
	"slices"
	"testing"

	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

func TestRun_Acceptor(t *testing.T) {
	a := profileDFA(t)

	tests := []struct {
		input    string
		accepted bool
		final    string
		reason   Reason
		symbol   string
		consumed int
	}{
		{input: "aa#", accepted: true, final: "q3", consumed: 3},
		{input: "aba#", accepted: true, final: "q3", consumed: 4},
		{input: "baaba#", accepted: true, final: "q3", consumed: 6},
		{input: "ab", final: "q1", reason: ReasonNotAccepting, consumed: 2},
		{input: "aa", final: "q2", reason: ReasonNotAccepting, consumed: 2},
		{input: "aab#", final: "q1", reason: ReasonNoTransition, symbol: "#", consumed: 3},
		{input: "bb#", final: "q1", reason: ReasonNoTransition, symbol: "#", consumed: 2},
		{input: "#", final: "q0", reason: ReasonNoTransition, symbol: "#", consumed: 0},
		{input: "aa#a", final: "q3", reason: ReasonNoTransition, symbol: "a", consumed: 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := a.RunString(tt.input)
			if err != nil {
				t.Fatalf("RunString(%q) error: %v", tt.input, err)
			}
			if res.Accepted != tt.accepted {
				t.Errorf("Accepted = %v, want %v", res.Accepted, tt.accepted)
			}
			if res.Final != tt.final {
				t.Errorf("Final = %q, want %q", res.Final, tt.final)
			}
			if res.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", res.Reason, tt.reason)
			}
			if res.Symbol != tt.symbol {
				t.Errorf("Symbol = %q, want %q", res.Symbol, tt.symbol)
			}
			if res.Consumed != tt.consumed {
				t.Errorf("Consumed = %d, want %d", res.Consumed, tt.consumed)
			}
			if res.Output != nil {
				t.Errorf("Output = %v, want nil for acceptor", res.Output)
			}
		})
	}
}

func TestRun_Transducer(t *testing.T) {
	a := squeezeBlanks(t)

	tests := []struct {
		input    string
		accepted bool
		output   string
		reason   Reason
	}{
		{input: "x___xxx.", accepted: true, output: "x_xxx."},
		{input: "X_x.", accepted: true, output: "X_x."},
		{input: "_x__X.", accepted: true, output: "_x_X."},
		{input: "x__", output: "x_", reason: ReasonNotAccepting},
		// No transition on "." from q2: output so far is kept.
		{input: "x_.", output: "x_", reason: ReasonNoTransition},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := a.RunString(tt.input)
			if err != nil {
				t.Fatalf("RunString(%q) error: %v", tt.input, err)
			}
			if res.Accepted != tt.accepted {
				t.Errorf("Accepted = %v, want %v", res.Accepted, tt.accepted)
			}
			if got := res.OutputString(); got != tt.output {
				t.Errorf("OutputString() = %q, want %q", got, tt.output)
			}
			if res.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", res.Reason, tt.reason)
			}
		})
	}
}

func TestRun_EmptyInput(t *testing.T) {
	a := profileDFA(t)
	res, err := a.Run(nil)
	if err != nil {
		t.Fatalf("Run(nil) error: %v", err)
	}
	if res.Accepted || res.Reason != ReasonNotAccepting || res.Final != "q0" {
		t.Errorf("Run(nil) = %+v, want reject at q0 with %q", res, ReasonNotAccepting)
	}

	b := NewDFA("a")
	mustState(t, b, State{Name: "s", Initial: true, Accept: true})
	mustTransition(t, b, "s", "s", "a")
	res, err = b.Run([]string{})
	if err != nil {
		t.Fatalf("Run([]) error: %v", err)
	}
	if !res.Accepted || res.Reason != "" {
		t.Errorf("Run([]) = %+v, want accept", res)
	}

	m := squeezeBlanks(t)
	res, err = m.Run(nil)
	if err != nil {
		t.Fatalf("Run(nil) error: %v", err)
	}
	if res.Output == nil || len(res.Output) != 0 {
		t.Errorf("transducer Output = %#v, want empty non-nil", res.Output)
	}
}

func TestRun_NotReady(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *Automaton
		want  error
	}{
		{
			name:  "no states",
			build: func(*testing.T) *Automaton { return NewDFA("a") },
			want:  ErrNoStates,
		},
		{
			name: "no transitions",
			build: func(t *testing.T) *Automaton {
				a := NewDFA("a")
				mustState(t, a, State{Initial: true, Accept: true})
				return a
			},
			want: ErrNoTransitions,
		},
		{
			name: "no initial state",
			build: func(t *testing.T) *Automaton {
				a := NewDFA("a")
				mustState(t, a, State{Name: "p", Accept: true})
				mustTransition(t, a, "p", "p", "a")
				return a
			},
			want: ErrNoInitialState,
		},
		{
			name: "no accept state",
			build: func(t *testing.T) *Automaton {
				a := NewDFA("a")
				mustState(t, a, State{Name: "p", Initial: true})
				mustTransition(t, a, "p", "p", "a")
				return a
			},
			want: ErrNoAcceptState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.build(t)
			_, err := a.RunString("a")
			if !errors.Is(err, ErrNotReady) {
				t.Errorf("RunString() error = %v, want ErrNotReady", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("RunString() error = %v, want %v", err, tt.want)
			}
			if !fsaerrors.Is(err, fsaerrors.ErrCodeConfiguration) {
				t.Errorf("RunString() code = %q, want CONFIGURATION", fsaerrors.GetCode(err))
			}
		})
	}
}

func TestRun_InvalidSymbol(t *testing.T) {
	a := profileDFA(t)

	res, err := a.RunString("az#")
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("RunString() error = %v, want ErrInvalidSymbol", err)
	}
	if !fsaerrors.Is(err, fsaerrors.ErrCodeValidation) {
		t.Errorf("RunString() code = %q, want VALIDATION", fsaerrors.GetCode(err))
	}
	if res.Accepted || res.Final != "" {
		t.Errorf("Result = %+v, want zero value on error", res)
	}

	// An invalid symbol after a dead end is never reached.
	res, err = a.RunString("#z")
	if err != nil {
		t.Fatalf("RunString(#z) error: %v", err)
	}
	if res.Reason != ReasonNoTransition {
		t.Errorf("Reason = %q, want %q", res.Reason, ReasonNoTransition)
	}
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		res  Result
		want string
	}{
		{Result{Accepted: true, Final: "q3"}, "accept at q3"},
		{Result{Final: "q1", Reason: ReasonNotAccepting}, "reject at q1: final state not accepting"},
		{
			Result{Final: "q1", Reason: ReasonNoTransition, Symbol: "#", Consumed: 2},
			`reject at q1: no transition for current state and symbol (symbol "#" at position 2)`,
		},
		{Result{Accepted: true, Final: "q3", Output: []string{"x", "_"}}, `accept at q3, output "x_"`},
	}
	for _, tt := range tests {
		if got := tt.res.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTrace(t *testing.T) {
	a := squeezeBlanks(t)
	input := Symbols("x__x.")

	var first []string
	for step := range a.Trace(input) {
		first = append(first, step.String())
	}
	want := []string{
		"(q0, x, x) -> q1",
		"(q1, _, _) -> q2",
		"(q2, _, ε) -> q2",
		"(q2, x, x) -> q1",
		"(q1, ., .) -> q3",
	}
	if !slices.Equal(first, want) {
		t.Fatalf("Trace() = %v, want %v", first, want)
	}

	// Ranging again restarts from the initial state.
	var second []string
	for step := range a.Trace(input) {
		second = append(second, step.String())
	}
	if !slices.Equal(first, second) {
		t.Errorf("second Trace() = %v, want %v", second, first)
	}
}

func TestTrace_EarlyStop(t *testing.T) {
	a := profileDFA(t)

	n := 0
	for step := range a.Trace(Symbols("aaaa#")) {
		if step.Index != n {
			t.Errorf("Index = %d, want %d", step.Index, n)
		}
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("consumed %d steps, want 2", n)
	}

	// A dead end produces no step for the offending symbol.
	var steps []Step
	for step := range a.Trace(Symbols("a#")) {
		steps = append(steps, step)
	}
	if len(steps) != 1 || steps[0].String() != "(q0, a) -> q1" {
		t.Errorf("Trace(a#) = %v, want [(q0, a) -> q1]", steps)
	}
}

func TestSymbols(t *testing.T) {
	if got := Symbols("aé#"); !slices.Equal(got, []string{"a", "é", "#"}) {
		t.Errorf("Symbols() = %q", got)
	}
	if got := Symbols(""); len(got) != 0 {
		t.Errorf("Symbols(\"\") = %q, want empty", got)
	}
}
