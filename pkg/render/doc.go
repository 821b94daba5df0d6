// Package render groups the visual outputs of fsa.
//
// The [diagram] subpackage turns an automaton into a state diagram: DOT and
// Mermaid text, or SVG, PNG and JPG images rendered with go-graphviz. A run
// trace can be overlaid to highlight the visited states and edges.
//
//	svg, err := diagram.Generate(ctx, a, diagram.FormatSVG, diagram.Options{Title: "profile"})
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/fsa/pkg/render/diagram
package render
