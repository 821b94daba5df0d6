// Package catalog holds the built-in automata.
//
// Each [Machine] is a declarative description: alphabets, states and
// transitions written as Go values. [Machine.Build] turns it into a fresh
// [automaton.Automaton] on every call, so callers own what they get and may
// reduce or run it without affecting anyone else.
//
// Acceptors:
//
//   - profile: the four-state classifier over {a, b, #} used by package
//     classify to tell genuine profiles from fake ones
//   - one-double-zero: binary strings where every 1 is followed by 00
//   - isolated-a: strings over {a, b} that start and end with b and never
//     hold aa
//   - even-a-ends-b: strings with an even, nonzero number of a's that end
//     in b
//
// Transducers over {x, X, _, .}, where x and X stand for letters and _ for a
// blank:
//
//   - squeeze-blanks: collapse runs of blanks into one
//   - trim-leading-blanks: drop blanks at the start
//   - trim-trailing-blanks: drop blanks before the final period
//   - title-case: capitalize the first letter and lowercase the rest
package catalog
