package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/automaton"
)

var (
	consumedStyle = lipgloss.NewStyle().Foreground(colorFaint)
	nextStyle     = lipgloss.NewStyle().Foreground(colorReject).Bold(true).Underline(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(colorText)
)

func (c *CLI) traceCommand() *cobra.Command {
	var plain, symbols bool
	cmd := &cobra.Command{
		Use:   "trace <machine> <input>",
		Short: "Step through a run interactively",
		Long: `Step through a run one symbol at a time. The transition table highlights
the current state and the symbol about to be read.

Keys: → / l / space step forward, ← / h step back, g / G jump to start / end,
q quit. --plain prints the steps instead.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeMachines,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, a, err := loadMachine(args[0])
			if err != nil {
				return err
			}
			input := automaton.Symbols(args[1])
			if symbols {
				input = strings.Fields(args[1])
			}
			res, err := execute(cmd.Context(), m.Name, a, input)
			if err != nil {
				return err
			}
			model := newTraceModel(m.Name, a, input, res)

			if plain {
				return printTrace(cmd.OutOrStdout(), model)
			}
			_, err = tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the steps without the interactive view")
	cmd.Flags().BoolVar(&symbols, "symbols", false, "treat the input as a space-separated symbol list")
	return cmd
}

// traceModel is the bubbletea model of a recorded run. pos counts the
// steps applied so far.
type traceModel struct {
	machine string
	a       *automaton.Automaton
	input   []string
	initial string
	steps   []automaton.Step
	result  automaton.Result
	pos     int
}

// newTraceModel records the steps of running input; res is the verdict of
// the same run.
func newTraceModel(name string, a *automaton.Automaton, input []string, res automaton.Result) traceModel {
	start, _ := a.Initial()
	m := traceModel{machine: name, a: a, input: input, initial: start.Name, result: res}
	for step := range a.Trace(input) {
		m.steps = append(m.steps, step)
	}
	return m
}

func (m traceModel) Init() tea.Cmd { return nil }

func (m traceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "right", "l", " ", "n", "enter":
		if m.pos < len(m.steps) {
			m.pos++
		}
	case "left", "h", "p", "backspace":
		if m.pos > 0 {
			m.pos--
		}
	case "home", "g":
		m.pos = 0
	case "end", "G":
		m.pos = len(m.steps)
	}
	return m, nil
}

// state is the state reached after pos steps.
func (m traceModel) state() string {
	if m.pos == 0 {
		return m.initial
	}
	return m.steps[m.pos-1].To
}

// nextSymbol is the symbol read by the next step, or "" once the run is
// over or blocked.
func (m traceModel) nextSymbol() string {
	if m.pos < len(m.input) {
		return m.input[m.pos]
	}
	return ""
}

func (m traceModel) done() bool { return m.pos == len(m.steps) }

func (m traceModel) output() []string {
	var out []string
	for _, s := range m.steps[:m.pos] {
		out = append(out, s.Output...)
	}
	return out
}

func (m traceModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.machine))
	b.WriteString(styleMuted.Render(fmt.Sprintf("  step %d/%d", m.pos, len(m.steps))))
	b.WriteString("\n\n")

	b.WriteString("input   ")
	for i, sym := range m.input {
		switch {
		case i < m.pos:
			b.WriteString(consumedStyle.Render(sym))
		case i == m.pos && !m.done():
			b.WriteString(nextStyle.Render(sym))
		case i == m.pos:
			b.WriteString(styleDead.Render(sym))
		default:
			b.WriteString(pendingStyle.Render(sym))
		}
	}
	if len(m.input) == 0 {
		b.WriteString(styleMuted.Render("ε"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "state   %s\n", styleCurrent.Render(m.state()))
	if m.a.Kind() == automaton.KindTransducer {
		fmt.Fprintf(&b, "output  %s\n", styleText.Render(automaton.FormatOutput(m.output())))
	}
	b.WriteString("\n")

	cur := &tableCursor{state: m.state()}
	if !m.done() {
		cur.symbol = m.nextSymbol()
	}
	b.WriteString(transitionTable(m.a, cur))
	b.WriteString("\n\n")

	if m.done() {
		b.WriteString(verdict(m.result))
	} else {
		b.WriteString(styleMuted.Render("next: " + m.steps[m.pos].String()))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("←/→ step  g/G start/end  q quit"))
	b.WriteString("\n")
	return b.String()
}

func printTrace(w io.Writer, m traceModel) error {
	fmt.Fprintf(w, "%s on %q\n", m.machine, strings.Join(m.input, ""))
	for _, s := range m.steps {
		fmt.Fprintf(w, "  %d  %s\n", s.Index, s.String())
	}
	_, err := fmt.Fprintln(w, verdict(m.result))
	return err
}
