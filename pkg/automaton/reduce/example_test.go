package reduce_test

import (
	"fmt"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/automaton/reduce"
)

func ExampleMinimize() {
	a := automaton.NewDFA("a", "b")
	_, _ = a.AddState(automaton.State{Name: "q0", Initial: true})
	_, _ = a.AddState(automaton.State{Name: "q1", Accept: true})
	_, _ = a.AddState(automaton.State{Name: "q2", Accept: true})
	_, _ = a.AddState(automaton.State{Name: "lost"})
	_ = a.AddTransition(automaton.Transition{From: "q0", To: "q1", Symbol: "a"})
	_ = a.AddTransition(automaton.Transition{From: "q0", To: "q2", Symbol: "b"})
	_ = a.AddTransition(automaton.Transition{From: "q1", To: "q1", Symbol: "a"})
	_ = a.AddTransition(automaton.Transition{From: "q2", To: "q2", Symbol: "a"})
	_ = a.AddTransition(automaton.Transition{From: "lost", To: "q0", Symbol: "a"})

	res, _ := reduce.Minimize(a)
	fmt.Println(res)
	for _, t := range a.Transitions() {
		fmt.Println(t)
	}
	// Output:
	// 1 unreachable, 0 useless, 1 merged, 2 states
	// q0 -a-> q1,q2
	// q0 -b-> q1,q2
	// q1,q2 -a-> q1,q2
}

func ExampleRemoveUseless() {
	a := automaton.NewDFA("a", "b")
	_, _ = a.AddState(automaton.State{Name: "start", Initial: true})
	_, _ = a.AddState(automaton.State{Name: "done", Accept: true})
	_, _ = a.AddState(automaton.State{Name: "trap"})
	_ = a.AddTransition(automaton.Transition{From: "start", To: "done", Symbol: "a"})
	_ = a.AddTransition(automaton.Transition{From: "start", To: "trap", Symbol: "b"})
	_ = a.AddTransition(automaton.Transition{From: "trap", To: "trap", Symbol: "a"})

	removed, _ := reduce.RemoveUseless(a)
	fmt.Println("removed:", removed)
	fmt.Println("transitions:", a.TransitionCount())
	// Output:
	// removed: 1
	// transitions: 1
}
