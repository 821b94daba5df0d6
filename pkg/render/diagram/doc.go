// Package diagram renders automata as state diagrams.
//
// # Overview
//
// [ToDOT] produces Graphviz DOT source laid out left to right. States are
// fixed-size circles, accept states double circles, and an unlabeled start
// arrow points at the initial state. Parallel transitions between the same
// two states share one edge whose label lists their symbols; transducer
// labels read "input/output" with ε for empty output.
//
// [ToMermaid] produces the same picture as a Mermaid stateDiagram-v2 for
// embedding in Markdown.
//
// [Render] turns DOT into SVG, PNG or JPG in-process:
//
//	dot := diagram.ToDOT(a, diagram.Options{})
//	svg, err := diagram.Render(ctx, dot, diagram.FormatSVG)
//
// # Overlay
//
// [Options.Overlay] highlights the states a run visited and the state it
// stopped in, which is how `fsa render --input` shows an execution path.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for rendering; no
// Graphviz installation is needed.
package diagram
