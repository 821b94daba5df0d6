package diagram

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/fsa/pkg/automaton"
)

// Options configures diagram generation.
type Options struct {
	// Title is drawn below the diagram when set.
	Title string
	// Overlay marks the path of a run.
	Overlay *Overlay
}

// Overlay holds the states touched by a run.
type Overlay struct {
	Visited []string
	Current string
}

// OverlayFromTrace builds an overlay from the steps of a run.
func OverlayFromTrace(initial string, steps []automaton.Step) *Overlay {
	o := &Overlay{Visited: []string{initial}, Current: initial}
	for _, s := range steps {
		if !slices.Contains(o.Visited, s.To) {
			o.Visited = append(o.Visited, s.To)
		}
		o.Current = s.To
	}
	return o
}

func (o *Overlay) style(name string) string {
	switch {
	case o == nil:
		return ""
	case name == o.Current:
		return "current"
	case slices.Contains(o.Visited, name):
		return "visited"
	}
	return ""
}

// edgeGroup collects the labels of all transitions between one pair of states.
type edgeGroup struct {
	from, to string
	labels   []string
}

// groupEdges merges parallel transitions, keeping first-appearance order.
func groupEdges(a *automaton.Automaton) []edgeGroup {
	var groups []edgeGroup
	index := make(map[[2]string]int)
	for _, t := range a.Transitions() {
		key := [2]string{t.From, t.To}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, edgeGroup{from: t.From, to: t.To})
		}
		groups[i].labels = append(groups[i].labels, edgeLabel(t))
	}
	return groups
}

func edgeLabel(t automaton.Transition) string {
	if t.Output == nil {
		return t.Symbol
	}
	return t.Symbol + "/" + automaton.FormatOutput(t.Output)
}

// ToDOT converts an automaton to Graphviz DOT source. The result can be
// passed to [Render] or to external Graphviz tools.
func ToDOT(a *automaton.Automaton, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  ranksep=1;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=b;\n")
		buf.WriteString("  labeljust=r;\n")
	}
	buf.WriteString("  node [shape=circle, fixedsize=true, width=0.85, height=0.85, fontsize=18];\n")
	buf.WriteString("\n")

	start, hasInit := a.Initial()
	if hasInit {
		buf.WriteString("  __start [shape=none, label=\"\", width=0.1, height=0.1];\n")
	}
	for _, s := range a.States() {
		attrs := []string{fmt.Sprintf("label=%q", s.Name)}
		if s.Accept {
			attrs = append(attrs, "shape=doublecircle")
		}
		switch opts.Overlay.style(s.Name) {
		case "current":
			attrs = append(attrs, "style=filled", "fillcolor=\"#ffeb3b\"", "penwidth=3")
		case "visited":
			attrs = append(attrs, "style=filled", "fillcolor=\"#e1f5fe\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", s.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	if hasInit {
		fmt.Fprintf(&buf, "  __start -> %q;\n", start.Name)
	}
	for _, g := range groupEdges(a) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", g.from, g.to, strings.Join(g.labels, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}
