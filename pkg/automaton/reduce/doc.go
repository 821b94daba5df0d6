// Package reduce shrinks automata without changing what they accept or emit.
//
// # Overview
//
// Three reductions are provided, each modifying the automaton in place:
//
//   - [RemoveUnreachable] drops states that cannot be reached from the
//     initial state.
//   - [RemoveUseless] drops states from which no accept state can be reached.
//   - [Minimize] applies both and then merges equivalent states.
//
// Removal always goes through [automaton.Automaton.Retain], so transitions
// into a removed state disappear together with it.
//
// # Minimization
//
// [Minimize] uses partition refinement. States start in two blocks, accept
// and non-accept, and a block is split whenever two of its states disagree,
// for some symbol, on the block their transition leads to. A missing
// transition counts as its own target. For transducers the emitted output is
// part of the comparison, so merged states produce the same output.
//
// Refinement only ever splits blocks, so it stops after at most as many
// rounds as there are states. Each final block becomes one state named by
// joining its members with commas:
//
//	Before: q0 -a-> q1, q0 -b-> q2, q1 and q2 accept and loop on a, b
//	After:  q0 -a-> "q1,q2", q0 -b-> "q1,q2"
//
// # Errors
//
// All reductions fail with a CONFIGURATION error wrapping
// [automaton.ErrNoInitialState] when the automaton has no initial state.
package reduce
