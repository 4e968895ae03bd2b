package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	symCheck = "✔"
	symCross = "✖"
	symWarn  = "!"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	hintColor = color.New(color.Faint)
)

// SetColorForcing overrides TTY detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		color.NoColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		color.NoColor = false
		lipgloss.SetColorProfile(termenv.ANSI256)
	case !isTTY():
		color.NoColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func isTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func OK(w io.Writer, msg string)   { _, _ = okColor.Fprintln(w, symCheck+" "+msg) }
func Fail(w io.Writer, msg string) { _, _ = failColor.Fprintln(w, symCross+" "+msg) }
func Warn(w io.Writer, msg string) { _, _ = warnColor.Fprintln(w, symWarn+" "+msg) }

func Hint(w io.Writer, format string, args ...any) {
	_, _ = hintColor.Fprintln(w, fmt.Sprintf(format, args...))
}
