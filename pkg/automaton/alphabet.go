package automaton

import "slices"

// Alphabet is a finite, ordered set of symbols. Duplicates passed to
// [NewAlphabet] are dropped; the first occurrence fixes the order.
type Alphabet struct {
	symbols []string
	index   map[string]struct{}
}

// NewAlphabet returns an alphabet holding symbols in first-seen order.
func NewAlphabet(symbols ...string) *Alphabet {
	a := &Alphabet{index: make(map[string]struct{}, len(symbols))}
	a.add(symbols...)
	return a
}

// Contains reports whether s belongs to the alphabet.
func (a *Alphabet) Contains(s string) bool {
	_, ok := a.index[s]
	return ok
}

// Len returns the number of distinct symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns a copy of the symbols in order.
func (a *Alphabet) Symbols() []string { return slices.Clone(a.symbols) }

func (a *Alphabet) add(symbols ...string) {
	for _, s := range symbols {
		if _, ok := a.index[s]; ok {
			continue
		}
		a.index[s] = struct{}{}
		a.symbols = append(a.symbols, s)
	}
}

func (a *Alphabet) clone() *Alphabet {
	return NewAlphabet(a.symbols...)
}
