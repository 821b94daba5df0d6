package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/fsa/pkg/automaton"
)

// ErrUnknownMachine is returned by [Get] for names that are not in the catalog.
var ErrUnknownMachine = errors.New("unknown machine")

// Edge is one transition of a [Machine]. Emit is split into one output
// symbol per rune; an empty Emit deletes the consumed symbol.
type Edge struct {
	From, To, Symbol string
	Emit             string
}

// Machine describes a built-in automaton.
type Machine struct {
	Name           string
	Aliases        []string
	Description    string
	Kind           automaton.Kind
	Alphabet       []string
	OutputAlphabet []string
	States         []automaton.State
	Edges          []Edge
	// Samples are inputs worth trying; `fsa run` uses them when no input is
	// given.
	Samples []string
}

// Build constructs a new automaton from the description.
func (m *Machine) Build() (*automaton.Automaton, error) {
	a := automaton.New(m.Kind, m.Alphabet, m.OutputAlphabet)
	for _, s := range m.States {
		if _, err := a.AddState(s); err != nil {
			return nil, fmt.Errorf("build %s: %w", m.Name, err)
		}
	}
	for _, e := range m.Edges {
		t := automaton.Transition{From: e.From, To: e.To, Symbol: e.Symbol}
		if m.Kind == automaton.KindTransducer {
			t.Output = automaton.Symbols(e.Emit)
		}
		if err := a.AddTransition(t); err != nil {
			return nil, fmt.Errorf("build %s: %w", m.Name, err)
		}
	}
	return a, nil
}

// Machines lists the catalog in display order.
var Machines = []*Machine{
	Profile,
	OneDoubleZero,
	IsolatedA,
	EvenAEndsB,
	SqueezeBlanks,
	TrimLeadingBlanks,
	TrimTrailingBlanks,
	TitleCase,
	PhraseSpacing,
	PhraseSpacingLenient,
}

// Lookup finds a machine by name or alias.
func Lookup(name string) (*Machine, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Machines {
		if m.Name == name || slices.Contains(m.Aliases, name) {
			return m, true
		}
	}
	return nil, false
}

// Get builds the machine called name.
func Get(name string) (*automaton.Automaton, error) {
	m, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownMachine, name, strings.Join(Names(), ", "))
	}
	return m.Build()
}

// Names returns the machine names in display order.
func Names() []string {
	out := make([]string, len(Machines))
	for i, m := range Machines {
		out[i] = m.Name
	}
	return out
}

func states(n int, initial int, accept ...int) []automaton.State {
	out := make([]automaton.State, n)
	for i := range out {
		out[i] = automaton.State{
			Name:    fmt.Sprintf("q%d", i),
			Initial: i == initial,
			Accept:  slices.Contains(accept, i),
		}
	}
	return out
}
