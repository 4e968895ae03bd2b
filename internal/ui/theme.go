package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Dragged, Flash                lipgloss.Style

	BoxUnchecked, BoxChecked string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	SymDone, SymPending      string
	BarColor                 string
}

var current = classic()

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	s := lipgloss.NewStyle
	return Theme{
		Name:    "classic",
		Title:   s().Bold(true),
		Muted:   s().Faint(true),
		Accent:  s().Foreground(lipgloss.Color("12")),
		Success: s().Foreground(lipgloss.Color("42")),
		Error:   s().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: s().Foreground(lipgloss.Color("214")),

		Selected: s().Bold(true).Reverse(true),
		Done:     s().Faint(true).Strikethrough(true),
		Dragged:  s().Bold(true).Foreground(lipgloss.Color("12")),
		Flash:    s().Bold(true).Foreground(lipgloss.Color("42")),

		BoxUnchecked: "☐", BoxChecked: "☑",
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),
		SymDone:     "✔", SymPending: "•",
		BarColor: "42",
	}
}

func neon() Theme {
	t := classic()
	s := lipgloss.NewStyle
	t.Name = "neon"
	t.Title = s().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = s().Foreground(lipgloss.Color("14"))
	t.Pending = s().Foreground(lipgloss.Color("11"))
	t.Dragged = s().Bold(true).Foreground(lipgloss.Color("14"))
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.Border = lipgloss.RoundedBorder()
	t.BarColor = "13"
	return t
}

func mono() Theme {
	s := lipgloss.NewStyle
	return Theme{
		Name:    "mono",
		Title:   s(),
		Muted:   s(),
		Accent:  s(),
		Success: s(),
		Error:   s(),
		Pending: s(),

		Selected: s().Reverse(true),
		Done:     s(),
		Dragged:  s().Underline(true),
		Flash:    s(),

		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		Border:      asciiBorder,
		BorderColor: lipgloss.NoColor{},
		SymDone:     "x", SymPending: "-",
	}
}
