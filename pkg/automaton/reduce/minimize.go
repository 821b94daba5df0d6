package reduce

import (
	"fmt"
	"strings"

	"github.com/matzehuels/fsa/pkg/automaton"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

// Minimize removes unreachable and useless states and then merges states
// that no input sequence can tell apart. The automaton is replaced in place.
//
// Merged states are named by joining their members' names with commas in
// insertion order. A merged state is initial if any member was initial and
// accepting if its members accept.
//
// The result may have states but no transitions, for example when only the
// initial state accepts and every successor is useless. Such an automaton
// fails [automaton.Automaton.Ready] with [automaton.ErrNoTransitions] even
// though the original accepted the empty input.
func Minimize(a *automaton.Automaton) (Result, error) {
	if _, ok := a.Initial(); !ok {
		return Result{}, noInitial("minimize")
	}

	var res Result
	var err error
	if res.UnreachableRemoved, err = RemoveUnreachable(a); err != nil {
		return res, err
	}
	if res.UselessRemoved, err = RemoveUseless(a); err != nil {
		return res, err
	}

	if a.StateCount() > 1 {
		merged, err := mergeEquivalent(a)
		if err != nil {
			return res, err
		}
		res.StatesMerged = merged
	}
	res.States = a.StateCount()
	return res, nil
}

type move struct {
	to     int
	output string
	ok     bool
}

// mergeEquivalent refines the accept/non-accept partition until no block
// splits, then rebuilds a with one state per block.
func mergeEquivalent(a *automaton.Automaton) (int, error) {
	states := a.States()
	alphabet := a.Alphabet()

	index := make(map[string]int, len(states))
	for i, s := range states {
		index[s.Name] = i
	}
	symbol := make(map[string]int, len(alphabet))
	for i, sym := range alphabet {
		symbol[sym] = i
	}

	delta := make([][]move, len(states))
	for i := range delta {
		delta[i] = make([]move, len(alphabet))
	}
	for _, t := range a.Transitions() {
		m := move{to: index[t.To], ok: true}
		if t.Output != nil {
			m.output = fmt.Sprintf("%q", t.Output)
		}
		delta[index[t.From]][symbol[t.Symbol]] = m
	}

	block := make([]int, len(states))
	count := 0
	{
		ids := make(map[bool]int, 2)
		for i, s := range states {
			id, ok := ids[s.Accept]
			if !ok {
				id = len(ids)
				ids[s.Accept] = id
			}
			block[i] = id
		}
		count = len(ids)
	}

	var sig strings.Builder
	for {
		ids := make(map[string]int, count)
		next := make([]int, len(states))
		for i := range states {
			sig.Reset()
			fmt.Fprintf(&sig, "%d", block[i])
			for _, m := range delta[i] {
				if !m.ok {
					sig.WriteString("|-")
					continue
				}
				fmt.Fprintf(&sig, "|%d/%s", block[m.to], m.output)
			}
			id, ok := ids[sig.String()]
			if !ok {
				id = len(ids)
				ids[sig.String()] = id
			}
			next[i] = id
		}
		block = next
		if len(ids) == count {
			break
		}
		count = len(ids)
	}

	if count == len(states) {
		return 0, nil
	}

	members := make([][]int, count)
	for i, b := range block {
		members[b] = append(members[b], i)
	}
	names := make([]string, count)
	for b, ms := range members {
		parts := make([]string, len(ms))
		for j, i := range ms {
			parts[j] = states[i].Name
		}
		names[b] = strings.Join(parts, ",")
	}

	m := automaton.New(a.Kind(), alphabet, a.OutputAlphabet())
	for b, ms := range members {
		s := automaton.State{Name: names[b]}
		for _, i := range ms {
			s.Initial = s.Initial || states[i].Initial
			s.Accept = s.Accept || states[i].Accept
		}
		if _, err := m.AddState(s); err != nil {
			return 0, fsaerrors.Wrap(fsaerrors.ErrCodeInternal, err, "rebuild minimized automaton")
		}
	}
	for b, ms := range members {
		for _, t := range a.Out(states[ms[0]].Name) {
			t.From = names[b]
			t.To = names[block[index[t.To]]]
			if err := m.AddTransition(t); err != nil {
				return 0, fsaerrors.Wrap(fsaerrors.ErrCodeInternal, err, "rebuild minimized automaton")
			}
		}
	}

	*a = *m
	return len(states) - count, nil
}
