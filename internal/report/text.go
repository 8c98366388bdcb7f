package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize/english"

	"github.com/smykla-skalski/commitlint/internal/lint"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

const (
	iconInput   = "⧗"
	iconError   = "✖"
	iconWarning = "⚠"
	iconValid   = "✔"
	iconInfo    = "ⓘ"
	iconIgnored = "○"
)

// TextReporter prints outcomes the way commitlint does on a terminal.
type TextReporter struct {
	opts Options
}

// Report writes one block per reportable outcome.
func (r *TextReporter) Report(w io.Writer, outcomes []*lint.Outcome) error {
	var b strings.Builder

	printed := 0

	for _, o := range outcomes {
		block := r.render(o)
		if block == "" {
			continue
		}

		if printed > 0 {
			b.WriteString("\n")
		}

		b.WriteString(block)

		printed++
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "writing report")
	}

	return nil
}

func (r *TextReporter) render(o *lint.Outcome) string {
	theme := r.opts.Theme
	hasProblems := len(o.Errors) > 0 || o.HasWarnings()

	if o.Ignored {
		if !r.opts.Verbose {
			return ""
		}

		return fmt.Sprintf("%s   input: %s\n%s   ignored by %s\n",
			iconInput, theme.Input.Render(header(o.Input)),
			theme.Muted.Render(iconIgnored), o.IgnoredBy)
	}

	if !hasProblems && !r.opts.Verbose {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s   input: %s\n", iconInput, theme.Input.Render(header(o.Input)))

	for _, p := range o.Problems() {
		icon := theme.Error.Render(iconError)
		if p.Level == config.LevelWarning {
			icon = theme.Warning.Render(iconWarning)
		}

		fmt.Fprintf(&b, "%s   %s %s\n", icon, p.Message, theme.Rule.Render("["+p.Name+"]"))
	}

	b.WriteString("\n")
	b.WriteString(r.summaryLine(o))
	b.WriteString("\n")

	if hasProblems && r.opts.HelpURL != "" {
		fmt.Fprintf(&b, "%s   Get help: %s\n", theme.Muted.Render(iconInfo), r.opts.HelpURL)
	}

	return b.String()
}

func (r *TextReporter) summaryLine(o *lint.Outcome) string {
	theme := r.opts.Theme

	icon := theme.Valid.Render(iconValid)

	switch {
	case len(o.Errors) > 0:
		icon = theme.Error.Render(iconError)
	case o.HasWarnings():
		icon = theme.Warning.Render(iconWarning)
	}

	return fmt.Sprintf("%s   found %s, %s", icon,
		english.Plural(len(o.Errors), "problem", ""),
		english.Plural(len(o.Warnings), "warning", ""))
}

// header returns the first line of a message for the input line.
func header(message string) string {
	first, _, _ := strings.Cut(strings.TrimLeft(message, "\n"), "\n")

	return first
}
