// Package automaton provides deterministic finite acceptors (DFA) and
// symbol-transducing Mealy machines over string symbols.
//
// # Overview
//
// An [Automaton] aggregates three things fixed by its constructor and grown
// by its builder methods:
//
//   - an input [Alphabet] (and, for transducers, an output alphabet)
//   - a registry of named states, at most one of them initial
//   - a transition table mapping (state, symbol) to a destination state and,
//     for transducers, a sequence of output symbols
//
// States live in an arena owned by the automaton and transitions refer to
// them by index, so self-loops and cycles carry no aliasing concerns. Callers
// only ever see names: [State] and [Transition] are plain values.
//
// # Building
//
// Create an acceptor with [NewDFA] or a transducer with [NewMealy], then add
// states and transitions:
//
//	a := automaton.NewDFA("a", "b", "#")
//	a.AddState(automaton.State{Name: "q0", Initial: true})
//	a.AddState(automaton.State{Name: "q1", Accept: true})
//	a.AddTransition(automaton.Transition{From: "q0", To: "q1", Symbol: "#"})
//
// Every builder method validates its arguments before touching the
// automaton: a failed call leaves it exactly as it was. Transitions are kept
// deterministic; a second transition for the same (state, symbol) pair fails
// with [ErrNondeterministic]. Alphabets may be extended with
// [Automaton.AddSymbols] until the first transition is added.
//
// # Running
//
// [Automaton.Run] walks the transition table from the initial state. A run
// that meets a symbol with no outgoing transition, or that ends in a
// non-accepting state, is a rejection: a normal [Result] with
// Accepted=false and a [Reason]. Symbols outside the alphabet are a caller
// error and fail with [ErrInvalidSymbol].
//
// [Automaton.Trace] exposes the same walk as a lazy [iter.Seq] of [Step]
// records for callers that want to display execution.
//
// # Errors
//
// Builder and run failures wrap the package sentinels in a coded
// [github.com/matzehuels/fsa/pkg/errors.Error]: VALIDATION for contract
// violations, CONFIGURATION for an automaton that is not ready. Both the code
// and the sentinel can be matched.
//
// # Concurrency
//
// An Automaton is not safe for concurrent mutation. Concurrent calls to Run
// and Trace are safe as long as no goroutine is building or reducing the same
// automaton.
package automaton
