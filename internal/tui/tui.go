package tui

import (
	"os"

	"github.com/smykla-skalski/commitlint/internal/color"
)

// New returns the huh form when stdin and stdout are terminals and noTUI is
// not set, the line-based form otherwise.
//
//nolint:ireturn // the implementation depends on the terminal
func New(noTUI bool) UI {
	if !noTUI && Interactive() {
		return NewHuhUI()
	}

	return NewFallbackUI()
}

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return color.IsTerminal(os.Stdin) && color.IsTerminal(os.Stdout)
}
