// Package sample generates random strings that match a regular expression.
//
// A [Generator] is a seeded github.com/lucasjones/reggen generator. It makes
// a random choice at every alternation, character class and repetition; *
// and + draw at most the generator's limit of repetitions, 10 by default.
// Anchors produce nothing, and patterns with word boundaries are rejected
// up front because reggen cannot honour them.
//
//	g, err := sample.New(`(a|b)*a#`, sample.WithSeed(42))
//	s := g.Generate() // e.g. "bba#"
//
// Generators built with the same pattern, seed and limit produce the same
// sequence of strings. A Generator is not safe for concurrent use.
package sample
