package diagram

import (
	"fmt"
	"strings"

	"github.com/matzehuels/fsa/pkg/automaton"
)

// ToMermaid converts an automaton to a Mermaid stateDiagram-v2. The start
// marker points at the initial state and accept states lead to the end
// marker.
func ToMermaid(a *automaton.Automaton, opts Options) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString("    direction LR\n")

	for _, s := range a.States() {
		if id := mermaidID(s.Name); id != s.Name {
			fmt.Fprintf(&sb, "    state \"%s\" as %s\n", s.Name, id)
		}
	}
	if start, ok := a.Initial(); ok {
		fmt.Fprintf(&sb, "    [*] --> %s\n", mermaidID(start.Name))
	}
	for _, g := range groupEdges(a) {
		label := strings.ReplaceAll(strings.Join(g.labels, ", "), ":", "#58;")
		fmt.Fprintf(&sb, "    %s --> %s: %s\n", mermaidID(g.from), mermaidID(g.to), label)
	}
	for _, s := range a.AcceptStates() {
		fmt.Fprintf(&sb, "    %s --> [*]\n", mermaidID(s.Name))
	}

	if opts.Overlay != nil {
		sb.WriteString("\n    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")
		for _, s := range a.States() {
			if style := opts.Overlay.style(s.Name); style != "" {
				fmt.Fprintf(&sb, "    class %s %s\n", mermaidID(s.Name), style)
			}
		}
	}
	return sb.String()
}

var mermaidReplacer = strings.NewReplacer(
	",", "_",
	".", "_",
	"-", "_",
	" ", "_",
	"/", "_",
	"\\", "_",
	":", "_",
	"\"", "_",
)

func mermaidID(name string) string {
	return mermaidReplacer.Replace(name)
}
