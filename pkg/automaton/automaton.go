package automaton

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind selects the transition payload of an automaton once, at construction.
type Kind int

const (
	// KindAcceptor is a deterministic finite acceptor: transitions carry an
	// input symbol only.
	KindAcceptor Kind = iota
	// KindTransducer is a Mealy machine: every transition also emits a
	// (possibly empty) sequence of output symbols.
	KindTransducer
)

// String returns "dfa" or "mealy".
func (k Kind) String() string {
	if k == KindTransducer {
		return "mealy"
	}
	return "dfa"
}

// State is the public view of a state. Names are unique within an automaton.
type State struct {
	Name    string
	Initial bool
	Accept  bool
}

// Transition is an edge of the transition table.
//
// Output is nil for acceptors. For transducers an empty Output deletes the
// consumed symbol from the produced sequence.
type Transition struct {
	From   string
	To     string
	Symbol string
	Output []string
}

// String formats the transition as "from -symbol-> to", or
// "from -symbol/output-> to" when it carries output. Empty output prints as ε.
func (t Transition) String() string {
	if t.Output == nil {
		return fmt.Sprintf("%s -%s-> %s", t.From, t.Symbol, t.To)
	}
	return fmt.Sprintf("%s -%s/%s-> %s", t.From, t.Symbol, FormatOutput(t.Output), t.To)
}

// FormatOutput concatenates output symbols, rendering the empty sequence as ε.
func FormatOutput(out []string) string {
	s := strings.Join(out, "")
	if s == "" {
		return "ε"
	}
	return s
}

type edge struct {
	from   int
	to     int
	symbol string
	output []string
}

type node struct {
	State
	out []int // indices into Automaton.edges in insertion order
}

// Automaton is a DFA or Mealy machine. The zero value is not usable; create
// one with [New], [NewDFA] or [NewMealy].
type Automaton struct {
	kind     Kind
	alphabet *Alphabet
	outputs  *Alphabet
	states   []node
	edges    []edge
	byName   map[string]int
	initial  int
	frozen   bool
}

// New creates an empty automaton of the given kind. outputAlphabet is ignored
// for acceptors.
func New(kind Kind, alphabet, outputAlphabet []string) *Automaton {
	a := &Automaton{
		kind:     kind,
		alphabet: NewAlphabet(alphabet...),
		byName:   make(map[string]int),
		initial:  -1,
	}
	if kind == KindTransducer {
		a.outputs = NewAlphabet(outputAlphabet...)
	}
	return a
}

// NewDFA creates an empty acceptor over alphabet.
func NewDFA(alphabet ...string) *Automaton {
	return New(KindAcceptor, alphabet, nil)
}

// NewMealy creates an empty transducer reading from alphabet and emitting
// symbols of outputAlphabet.
func NewMealy(alphabet, outputAlphabet []string) *Automaton {
	return New(KindTransducer, alphabet, outputAlphabet)
}

// Kind reports whether the automaton is an acceptor or a transducer.
func (a *Automaton) Kind() Kind { return a.kind }

// Alphabet returns the input symbols in declaration order.
func (a *Automaton) Alphabet() []string { return a.alphabet.Symbols() }

// OutputAlphabet returns the output symbols, or nil for acceptors.
func (a *Automaton) OutputAlphabet() []string {
	if a.outputs == nil {
		return nil
	}
	return a.outputs.Symbols()
}

// AddSymbols extends the input alphabet. It fails with [ErrAlphabetFrozen]
// once a transition has been added.
func (a *Automaton) AddSymbols(symbols ...string) error {
	if a.frozen {
		return invalid(ErrAlphabetFrozen, "add symbols %q", symbols)
	}
	a.alphabet.add(symbols...)
	return nil
}

// AddOutputSymbols extends the output alphabet of a transducer.
func (a *Automaton) AddOutputSymbols(symbols ...string) error {
	if a.kind != KindTransducer {
		return invalid(ErrUnexpectedOutput, "add output symbols %q", symbols)
	}
	if a.frozen {
		return invalid(ErrAlphabetFrozen, "add output symbols %q", symbols)
	}
	a.outputs.add(symbols...)
	return nil
}

// AddState registers a state and returns its name. An empty Name is replaced
// by "q<n>", where n starts at the current state count and grows until the
// name is unused.
//
// AddState fails with [ErrDuplicateInitial] if s.Initial is set and an
// initial state already exists, and with [ErrDuplicateState] if the name is
// taken. On failure the automaton is unchanged.
func (a *Automaton) AddState(s State) (string, error) {
	if s.Initial && a.initial >= 0 {
		return "", invalid(ErrDuplicateInitial, "add initial state %q: %q is initial", s.Name, a.states[a.initial].Name)
	}
	if s.Name == "" {
		s.Name = a.defaultName()
	} else if _, exists := a.byName[s.Name]; exists {
		return "", invalid(ErrDuplicateState, "add state %q", s.Name)
	}

	idx := len(a.states)
	a.byName[s.Name] = idx
	a.states = append(a.states, node{State: s})
	if s.Initial {
		a.initial = idx
	}
	return s.Name, nil
}

func (a *Automaton) defaultName() string {
	for n := len(a.states); ; n++ {
		name := "q" + strconv.Itoa(n)
		if _, exists := a.byName[name]; !exists {
			return name
		}
	}
}

// AddTransition appends t to the transition table: to the outgoing list of
// its source state and to the flat list returned by [Automaton.Transitions].
//
// The checks run in this order and the first failure is returned:
//   - [ErrEmptyAlphabet], [ErrEmptyOutputAlphabet] (CONFIGURATION)
//   - [ErrUnexpectedOutput] for acceptor transitions carrying output
//   - [ErrInvalidSymbol], [ErrInvalidOutputSymbol]
//   - [ErrUnknownState] for From, then To
//   - [ErrNondeterministic] if From already has a transition on t.Symbol
//
// On failure the automaton is unchanged.
func (a *Automaton) AddTransition(t Transition) error {
	if a.alphabet.Len() == 0 {
		return misconfigured(ErrEmptyAlphabet, "add transition %s", t)
	}
	if a.kind == KindTransducer && a.outputs.Len() == 0 {
		return misconfigured(ErrEmptyOutputAlphabet, "add transition %s", t)
	}
	if a.kind == KindAcceptor && t.Output != nil {
		return invalid(ErrUnexpectedOutput, "add transition %s", t)
	}
	if !a.alphabet.Contains(t.Symbol) {
		return invalid(ErrInvalidSymbol, "add transition %s: symbol %q", t, t.Symbol)
	}
	if a.kind == KindTransducer {
		for _, o := range t.Output {
			if !a.outputs.Contains(o) {
				return invalid(ErrInvalidOutputSymbol, "add transition %s: output symbol %q", t, o)
			}
		}
	}
	from, ok := a.byName[t.From]
	if !ok {
		return invalid(ErrUnknownState, "add transition %s: state %q", t, t.From)
	}
	to, ok := a.byName[t.To]
	if !ok {
		return invalid(ErrUnknownState, "add transition %s: state %q", t, t.To)
	}
	if _, exists := a.next(from, t.Symbol); exists {
		return invalid(ErrNondeterministic, "add transition %s", t)
	}

	e := edge{from: from, to: to, symbol: t.Symbol}
	if a.kind == KindTransducer {
		e.output = append([]string{}, t.Output...)
	}
	a.states[from].out = append(a.states[from].out, len(a.edges))
	a.edges = append(a.edges, e)
	a.frozen = true
	return nil
}

// next returns the first outgoing edge of state on symbol.
func (a *Automaton) next(state int, symbol string) (edge, bool) {
	for _, ei := range a.states[state].out {
		if e := a.edges[ei]; e.symbol == symbol {
			return e, true
		}
	}
	return edge{}, false
}

// States returns all states in insertion order.
func (a *Automaton) States() []State {
	out := make([]State, len(a.states))
	for i, n := range a.states {
		out[i] = n.State
	}
	return out
}

// State returns the state called name.
func (a *Automaton) State(name string) (State, bool) {
	idx, ok := a.byName[name]
	if !ok {
		return State{}, false
	}
	return a.states[idx].State, true
}

// Initial returns the initial state, if one exists.
func (a *Automaton) Initial() (State, bool) {
	if a.initial < 0 {
		return State{}, false
	}
	return a.states[a.initial].State, true
}

// AcceptStates returns the accepting states in insertion order.
func (a *Automaton) AcceptStates() []State {
	var out []State
	for _, n := range a.states {
		if n.Accept {
			out = append(out, n.State)
		}
	}
	return out
}

// Transitions returns the flat transition list in insertion order.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, len(a.edges))
	for i, e := range a.edges {
		out[i] = a.transition(e)
	}
	return out
}

// Out returns the outgoing transitions of the named state in insertion
// order, or nil if the state does not exist.
func (a *Automaton) Out(name string) []Transition {
	idx, ok := a.byName[name]
	if !ok {
		return nil
	}
	out := make([]Transition, len(a.states[idx].out))
	for i, ei := range a.states[idx].out {
		out[i] = a.transition(a.edges[ei])
	}
	return out
}

func (a *Automaton) transition(e edge) Transition {
	t := Transition{
		From:   a.states[e.from].Name,
		To:     a.states[e.to].Name,
		Symbol: e.symbol,
	}
	if a.kind == KindTransducer {
		t.Output = slices.Clone(e.output)
		if t.Output == nil {
			t.Output = []string{}
		}
	}
	return t
}

// StateCount returns the number of states.
func (a *Automaton) StateCount() int { return len(a.states) }

// TransitionCount returns the number of transitions.
func (a *Automaton) TransitionCount() int { return len(a.edges) }

// Ready reports whether the automaton can run: it needs at least one state,
// one transition, an initial state and an accept state. The returned error
// wraps [ErrNotReady] together with the first missing piece.
func (a *Automaton) Ready() error {
	var missing error
	switch {
	case len(a.states) == 0:
		missing = ErrNoStates
	case len(a.edges) == 0:
		missing = ErrNoTransitions
	case a.initial < 0:
		missing = ErrNoInitialState
	case !slices.ContainsFunc(a.states, func(n node) bool { return n.Accept }):
		missing = ErrNoAcceptState
	default:
		return nil
	}
	return misconfigured(fmt.Errorf("%w: %w", ErrNotReady, missing), "%s", a.kind)
}

// Retain keeps the states for which keep reports true and removes the rest,
// together with every transition whose source or target is removed. Order of
// the surviving states and transitions is preserved. It returns the number of
// removed states.
//
// Retain is the only way states leave an automaton; the reducers in
// package reduce are built on it.
func (a *Automaton) Retain(keep func(State) bool) int {
	remap := make([]int, len(a.states))
	states := make([]node, 0, len(a.states))
	for i, n := range a.states {
		if !keep(n.State) {
			remap[i] = -1
			continue
		}
		remap[i] = len(states)
		states = append(states, node{State: n.State})
	}
	removed := len(a.states) - len(states)
	if removed == 0 {
		return 0
	}

	edges := make([]edge, 0, len(a.edges))
	for _, e := range a.edges {
		from, to := remap[e.from], remap[e.to]
		if from < 0 || to < 0 {
			continue
		}
		states[from].out = append(states[from].out, len(edges))
		edges = append(edges, edge{from: from, to: to, symbol: e.symbol, output: e.output})
	}

	byName := make(map[string]int, len(states))
	for i, n := range states {
		byName[n.Name] = i
	}
	if a.initial >= 0 {
		a.initial = remap[a.initial]
	}
	a.states = states
	a.edges = edges
	a.byName = byName
	return removed
}

// Clone returns a deep copy of the automaton.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		kind:     a.kind,
		alphabet: a.alphabet.clone(),
		states:   make([]node, len(a.states)),
		edges:    make([]edge, len(a.edges)),
		byName:   make(map[string]int, len(a.byName)),
		initial:  a.initial,
		frozen:   a.frozen,
	}
	if a.outputs != nil {
		c.outputs = a.outputs.clone()
	}
	for i, n := range a.states {
		c.states[i] = node{State: n.State, out: slices.Clone(n.out)}
	}
	for i, e := range a.edges {
		e.output = slices.Clone(e.output)
		c.edges[i] = e
	}
	for k, v := range a.byName {
		c.byName[k] = v
	}
	return c
}
