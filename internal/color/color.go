// Package color provides color detection and theming for lint output.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Enabled reports whether color output should be used for w.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - noColorFlag is true (--no-color CLI flag)
//   - w is not a terminal, unless CLICOLOR_FORCE is set to a non-zero value
func Enabled(w *os.File, noColorFlag bool) bool {
	if !Profile(noColorFlag) {
		return false
	}

	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}

	return IsTerminal(w)
}

// Profile applies the environment and flag rules without looking at the output.
func Profile(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}

// IsTerminal returns true if the given file is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Theme holds lipgloss styles for lint reports.
type Theme struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Valid   lipgloss.Style
	Input   lipgloss.Style
	Rule    lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // bright red
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // bright yellow
		Valid:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // bright green
		Input:   lipgloss.NewStyle().Bold(true),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
