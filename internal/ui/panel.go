package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar of width cells followed by the percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	pct := float64(done) / float64(total)
	if pct > 1 {
		pct = 1
	}
	opts := []progress.Option{progress.WithWidth(width)}
	if c := Current().BarColor; c != "" {
		opts = append(opts, progress.WithSolidFill(c))
	} else {
		opts = append(opts, progress.WithFillCharacters('#', '.'))
	}
	return progress.New(opts...).ViewAs(pct)
}

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
