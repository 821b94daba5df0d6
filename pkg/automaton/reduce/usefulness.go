package reduce

import "github.com/matzehuels/fsa/pkg/automaton"

// RemoveUseless removes every state from which no accept state is reachable,
// along with all transitions into it. Accept states are never removed. The
// initial state is removed if it is useless, which leaves an automaton that
// accepts nothing. It returns the number of removed states.
func RemoveUseless(a *automaton.Automaton) (int, error) {
	if _, ok := a.Initial(); !ok {
		return 0, noInitial("remove useless states")
	}

	preds := make(map[string][]string)
	for _, t := range a.Transitions() {
		preds[t.To] = append(preds[t.To], t.From)
	}

	useful := make(map[string]bool)
	var stack []string
	for _, s := range a.AcceptStates() {
		useful[s.Name] = true
		stack = append(stack, s.Name)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range preds[cur] {
			if !useful[p] {
				useful[p] = true
				stack = append(stack, p)
			}
		}
	}

	return a.Retain(func(s automaton.State) bool { return useful[s.Name] }), nil
}
