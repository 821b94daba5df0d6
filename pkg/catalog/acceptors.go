package catalog

import "github.com/matzehuels/fsa/pkg/automaton"

// Profile accepts activity strings of genuine profiles: at least two symbols
// whose last letter is a, closed by #.
var Profile = &Machine{
	Name:        "profile",
	Aliases:     []string{"ipr", "facebook"},
	Description: "genuine profile activity: (a|b)(a|b)*a#",
	Kind:        automaton.KindAcceptor,
	Alphabet:    []string{"a", "b", "#"},
	States:      states(4, 0, 3),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "a"},
		{From: "q0", To: "q1", Symbol: "b"},
		{From: "q1", To: "q2", Symbol: "a"},
		{From: "q1", To: "q1", Symbol: "b"},
		{From: "q2", To: "q2", Symbol: "a"},
		{From: "q2", To: "q1", Symbol: "b"},
		{From: "q2", To: "q3", Symbol: "#"},
	},
	Samples: []string{"aa#", "aba#", "bbba#", "ab#", "bb#", "a#"},
}

// OneDoubleZero accepts binary strings in which every 1 is followed by 00.
var OneDoubleZero = &Machine{
	Name:        "one-double-zero",
	Aliases:     []string{"ex3a"},
	Description: "binary strings where every 1 is followed by 00",
	Kind:        automaton.KindAcceptor,
	Alphabet:    []string{"0", "1"},
	States:      states(3, 0, 0),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "1"},
		{From: "q0", To: "q0", Symbol: "0"},
		{From: "q1", To: "q2", Symbol: "0"},
		{From: "q2", To: "q0", Symbol: "0"},
	},
	Samples: []string{"", "0", "1", "100", "000000100", "01100", "0100100100"},
}

// IsolatedA accepts the empty string and b-delimited strings without aa.
var IsolatedA = &Machine{
	Name:        "isolated-a",
	Aliases:     []string{"ex3b"},
	Description: "empty, or starts and ends with b with no two a's in a row",
	Kind:        automaton.KindAcceptor,
	Alphabet:    []string{"a", "b"},
	States:      states(3, 0, 0, 1),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "b"},
		{From: "q1", To: "q1", Symbol: "b"},
		{From: "q1", To: "q2", Symbol: "a"},
		{From: "q2", To: "q1", Symbol: "b"},
	},
	Samples: []string{"", "b", "a", "bab", "aba", "baaab", "bababab"},
}

// EvenAEndsB accepts the empty string and strings with an even, nonzero
// number of a's that end in b.
var EvenAEndsB = &Machine{
	Name:        "even-a-ends-b",
	Aliases:     []string{"ex3c"},
	Description: "empty, or an even nonzero number of a's and ending in b",
	Kind:        automaton.KindAcceptor,
	Alphabet:    []string{"a", "b"},
	States:      states(5, 0, 0, 4),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "b"},
		{From: "q0", To: "q2", Symbol: "a"},
		{From: "q1", To: "q1", Symbol: "b"},
		{From: "q1", To: "q2", Symbol: "a"},
		{From: "q2", To: "q3", Symbol: "a"},
		{From: "q2", To: "q2", Symbol: "b"},
		{From: "q3", To: "q2", Symbol: "a"},
		{From: "q3", To: "q4", Symbol: "b"},
		{From: "q4", To: "q4", Symbol: "b"},
		{From: "q4", To: "q2", Symbol: "a"},
	},
	Samples: []string{"", "b", "a", "aab", "bbaa", "bbaaaab", "babababab"},
}
