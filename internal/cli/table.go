package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/catalog"
)

// headerRow is the row index lipgloss passes to StyleFunc for headers.
const headerRow = -1

var (
	headerStyle  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	currentStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorReject).Bold(true)
	firedStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(colorAccept).Bold(true)
	deadStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(colorFaint)
)

// machineTable lists catalog entries with their size.
func machineTable(machines []*catalog.Machine) string {
	rows := make([][]string, 0, len(machines))
	for _, m := range machines {
		rows = append(rows, []string{
			m.Name,
			m.Kind.String(),
			strconv.Itoa(len(m.States)),
			strconv.Itoa(len(m.Edges)),
			strings.Join(m.Aliases, ", "),
			m.Description,
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Name", "Kind", "States", "Edges", "Aliases", "Language").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return cellStyle.Foreground(colorAccent)
			}
			return cellStyle
		}).
		Render()
}

// stateLabel marks the initial state with → and accept states with *.
func stateLabel(s automaton.State) string {
	prefix := "  "
	if s.Initial {
		prefix = "→ "
	}
	if s.Accept {
		return prefix + s.Name + " *"
	}
	return prefix + s.Name
}

// tableCursor highlights a cell of the transition table: the row of the
// current state, and the column of the symbol about to be read.
type tableCursor struct {
	state  string
	symbol string
}

// transitionTable renders the state × symbol matrix. Cells show the target
// state, followed by "/output" for transducers; "-" marks a missing
// transition.
func transitionTable(a *automaton.Automaton, cur *tableCursor) string {
	symbols := a.Alphabet()
	states := a.States()

	rows := make([][]string, 0, len(states))
	for _, s := range states {
		row := []string{stateLabel(s)}
		next := make(map[string]automaton.Transition)
		for _, t := range a.Out(s.Name) {
			next[t.Symbol] = t
		}
		for _, sym := range symbols {
			t, ok := next[sym]
			switch {
			case !ok:
				row = append(row, "-")
			case a.Kind() == automaton.KindTransducer:
				row = append(row, t.To+"/"+automaton.FormatOutput(t.Output))
			default:
				row = append(row, t.To)
			}
		}
		rows = append(rows, row)
	}

	headers := append([]string{"State"}, symbols...)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				if cur != nil && col > 0 && symbols[col-1] == cur.symbol {
					return currentStyle
				}
				return headerStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(rows) {
				return cellStyle
			}
			if cur != nil && states[row].Name == cur.state {
				if col > 0 && symbols[col-1] == cur.symbol {
					return firedStyle
				}
				return currentStyle
			}
			if col > 0 && rows[row][col] == "-" {
				return deadStyle
			}
			return cellStyle
		}).
		Render()
}
