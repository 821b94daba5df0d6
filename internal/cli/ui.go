package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Accept and reject colours are shared by run verdicts, the
// transition table and the trace viewer.
var (
	colorAccent  = lipgloss.Color("36")
	colorAccept  = lipgloss.Color("35")
	colorReject  = lipgloss.Color("220")
	colorDead    = lipgloss.Color("167")
	colorCommand = lipgloss.Color("75")
	colorText    = lipgloss.Color("255")
	colorMuted   = lipgloss.Color("245")
	colorFaint   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleCurrent = lipgloss.NewStyle().Foreground(colorAccent)
	styleMuted   = lipgloss.NewStyle().Foreground(colorFaint)
	styleText    = lipgloss.NewStyle().Foreground(colorText)
	styleAccept  = lipgloss.NewStyle().Foreground(colorAccept)
	styleReject  = lipgloss.NewStyle().Foreground(colorReject)
	styleDead    = lipgloss.NewStyle().Foreground(colorDead)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand = lipgloss.NewStyle().Foreground(colorCommand)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

// status writes the human-readable summary lines that follow a command's
// real output.
type status struct{ w io.Writer }

func newStatus(w io.Writer) status { return status{w: w} }

func (s status) line(mark lipgloss.Style, glyph, format string, args ...any) {
	fmt.Fprintln(s.w, mark.Render(glyph)+" "+fmt.Sprintf(format, args...))
}

func (s status) ok(format string, args ...any) { s.line(styleAccept, "✓", format, args...) }

func (s status) info(format string, args ...any) {
	s.line(lipgloss.NewStyle().Foreground(colorMuted), "›", format, args...)
}

// detail prints an indented, muted line.
func (s status) detail(format string, args ...any) {
	fmt.Fprintln(s.w, "  "+styleMuted.Render(fmt.Sprintf(format, args...)))
}

func (s status) file(path string) {
	fmt.Fprintln(s.w, "  "+styleMuted.Render("→")+" "+styleText.Render(path))
}

func (s status) field(key, value string) {
	fmt.Fprintln(s.w, styleKey.Render(key)+" "+styleText.Render(value))
}

// size prints "4 states · 7 transitions · cached" for a rendered machine.
func (s status) size(states, transitions int, cached bool) {
	origin := lipgloss.NewStyle().Foreground(colorMuted).Render("fresh")
	if cached {
		origin = styleAccept.Render("cached")
	}
	sep := styleMuted.Render(" · ")
	fmt.Fprintln(s.w, "  "+strings.Join([]string{
		styleMuted.Render(fmt.Sprintf("%d states", states)),
		styleMuted.Render(fmt.Sprintf("%d transitions", transitions)),
		origin,
	}, sep))
}

// hint suggests a follow-up command.
func (s status) hint(what, command string) {
	fmt.Fprintln(s.w, styleMuted.Render(what+":")+" "+styleCommand.Render(command))
}
