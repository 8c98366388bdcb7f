package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/commitlint/internal/prompt"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// FallbackUI implements UI using simple stdin/stdout prompts.
// This is used when the terminal is not interactive (CI, piped input, etc.).
type FallbackUI struct {
	prompter prompt.Prompter
	out      io.Writer
}

// NewFallbackUI creates a new FallbackUI instance.
func NewFallbackUI() *FallbackUI {
	return &FallbackUI{
		prompter: prompt.NewStdPrompter(),
		out:      os.Stdout,
	}
}

// NewFallbackUIWithPrompter creates a FallbackUI with a custom prompter and output.
func NewFallbackUIWithPrompter(p prompt.Prompter, out io.Writer) *FallbackUI {
	return &FallbackUI{
		prompter: p,
		out:      out,
	}
}

// IsInteractive returns false as FallbackUI is for non-interactive terminals.
func (*FallbackUI) IsInteractive() bool {
	return false
}

// RunInitForm runs the initialization configuration form using simple prompts.
func (f *FallbackUI) RunInitForm(opts InitFormOptions) (*config.Config, error) {
	result := newResult(opts.Defaults)

	f.displayHeader(opts.Global)

	types, err := f.promptList(
		"Commit Types",
		"Types accepted by the type-enum rule.",
		"Types (comma separated)",
		result.Types,
	)
	if err != nil {
		return nil, err
	}

	result.Types = types

	scopes, err := f.promptList(
		"Scopes",
		"Scopes accepted by the scope-enum rule. Enter \""+prompt.ClearListAnswer+"\" to allow any scope.",
		"Scopes (comma separated)",
		result.Scopes,
	)
	if err != nil {
		return nil, err
	}

	result.Scopes = scopes

	length, err := f.prompter.Input("Subject max length", result.SubjectMaxLength)
	if err != nil {
		return nil, errors.Wrap(err, "reading subject max length")
	}

	if err := validateLength(length); err != nil {
		return nil, err
	}

	result.SubjectMaxLength = length

	fmt.Fprintln(f.out)

	result.Confirmed, err = f.prompter.Confirm("Write configuration?", true)
	if err != nil {
		return nil, errors.Wrap(err, "reading confirmation")
	}

	return buildConfigFromResult(opts.Defaults, &result)
}

func (f *FallbackUI) displayHeader(global bool) {
	fmt.Fprintln(f.out, "╔═══════════════════════════════════════════════╗")

	if global {
		fmt.Fprintln(f.out, "║   commitlint Global Configuration Setup       ║")
	} else {
		fmt.Fprintln(f.out, "║   commitlint Project Configuration Setup      ║")
	}

	fmt.Fprintln(f.out, "╚═══════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)
}

// promptList asks for a list answer. An empty answer keeps current; "-" clears it.
func (f *FallbackUI) promptList(title, description, label string, current []string) ([]string, error) {
	fmt.Fprintln(f.out, separator)
	fmt.Fprintln(f.out, title)
	fmt.Fprintln(f.out, separator)
	fmt.Fprintln(f.out, description)
	fmt.Fprintln(f.out)

	tokens, err := f.prompter.List(label, current)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", strings.ToLower(title))
	}

	if len(tokens) == 0 {
		fmt.Fprintf(f.out, "✓ %s cleared\n\n", title)
	} else {
		fmt.Fprintf(f.out, "✓ %s: %s\n\n", title, strings.Join(tokens, ", "))
	}

	return tokens, nil
}
