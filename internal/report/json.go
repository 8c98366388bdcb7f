package report

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/commitlint/internal/lint"
)

// JSONReporter writes {"results": [...], "summary": {...}}.
type JSONReporter struct{}

type jsonReport struct {
	Results []*lint.Outcome `json:"results"`
	Summary lint.Summary    `json:"summary"`
}

// Report encodes every outcome, valid and ignored ones included.
func (*JSONReporter) Report(w io.Writer, outcomes []*lint.Outcome) error {
	results := make([]*lint.Outcome, 0, len(outcomes))

	for _, o := range outcomes {
		normalized := *o
		if normalized.Errors == nil {
			normalized.Errors = []lint.Problem{}
		}

		if normalized.Warnings == nil {
			normalized.Warnings = []lint.Problem{}
		}

		results = append(results, &normalized)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(jsonReport{Results: results, Summary: lint.Summarize(outcomes)}); err != nil {
		return errors.Wrap(err, "encoding report")
	}

	return nil
}
