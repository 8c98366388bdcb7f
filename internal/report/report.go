// Package report renders lint outcomes and rule tables.
package report

import (
	"io"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/commitlint/internal/color"
	"github.com/smykla-skalski/commitlint/internal/lint"
)

// ErrUnknownFormat is returned for output formats other than text and json.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the reporter.
type Format string

const (
	// FormatText is the human readable report.
	FormatText Format = "text"

	// FormatJSON is a JSON document with one entry per message.
	FormatJSON Format = "json"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatText, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", errors.Wrapf(ErrUnknownFormat, "%q (expected text or json)", s)
	}

	return f, nil
}

// Options controls what a reporter prints.
type Options struct {
	// Theme styles text output. The zero value prints without color.
	Theme color.Theme

	// Verbose prints valid and ignored messages too.
	Verbose bool

	// HelpURL is printed below reports with problems.
	HelpURL string
}

// Reporter writes the outcomes of a lint run.
type Reporter interface {
	Report(w io.Writer, outcomes []*lint.Outcome) error
}

// New returns the reporter for format.
//
//nolint:ireturn // callers pick the reporter at runtime
func New(format Format, opts Options) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &TextReporter{opts: opts}, nil
	case FormatJSON:
		return &JSONReporter{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}
