package reduce

import "github.com/matzehuels/fsa/pkg/automaton"

// RemoveUnreachable removes every state that cannot be reached from the
// initial state, along with its transitions. It returns the number of
// removed states.
func RemoveUnreachable(a *automaton.Automaton) (int, error) {
	start, ok := a.Initial()
	if !ok {
		return 0, noInitial("remove unreachable states")
	}

	reached := map[string]bool{start.Name: true}
	queue := []string{start.Name}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range a.Out(cur) {
			if !reached[t.To] {
				reached[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}

	return a.Retain(func(s automaton.State) bool { return reached[s.Name] }), nil
}
