// Package pkg holds the libraries behind the fsa command: deterministic
// finite automata, Mealy-style transducers and the tooling around them.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Core: [automaton] (builder, executor, traces) and [automaton/reduce]
//     (reachability, usefulness, minimization)
//  2. Domain: [catalog] (built-in machines), [dataset], [sample] and
//     [classify] (the profile classifier evaluated over a friendship graph)
//  3. Infrastructure: [render/diagram], [cache], [config], [errors],
//     [observability], [api] and [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	catalog entry or hand-built automaton
//	         ↓
//	    [automaton] package (states, transitions, runs)
//	         ↓
//	    [automaton/reduce] package (optional minimization)
//	         ↓
//	    verdicts, traces, DOT/Mermaid/SVG/PNG diagrams
//
// # Quick Start
//
//	a := automaton.NewDFA("0", "1")
//	a.AddState(automaton.State{Name: "even", Initial: true, Accept: true})
//	a.AddState(automaton.State{Name: "odd"})
//	a.AddTransition(automaton.Transition{From: "even", To: "odd", Symbol: "1"})
//	a.AddTransition(automaton.Transition{From: "odd", To: "even", Symbol: "1"})
//	a.AddTransition(automaton.Transition{From: "even", To: "even", Symbol: "0"})
//	a.AddTransition(automaton.Transition{From: "odd", To: "odd", Symbol: "0"})
//
//	res, err := a.RunString("1001")
//	// res.Accepted == true
//
//	stats, err := reduce.Minimize(a)
//	svg, err := diagram.Generate(ctx, a, diagram.FormatSVG, diagram.Options{})
//
// # Concurrency
//
// An automaton has a single owner. Build it, reduce it and run it from one
// goroutine, or build a fresh copy per goroutine with [catalog.Get] or
// Automaton.Clone. Caches and observability hooks are safe for
// concurrent use.
//
// [automaton]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/automaton
// [automaton/reduce]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/automaton/reduce
// [catalog]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/catalog
// [catalog.Get]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/catalog#Get
// [dataset]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/dataset
// [sample]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/sample
// [classify]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/classify
// [render/diagram]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/render/diagram
// [cache]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/observability
// [api]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/api
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/buildinfo
package pkg
