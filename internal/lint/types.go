// Package lint evaluates commit messages against a rule table.
package lint

import (
	"github.com/smykla-skalski/commitlint/pkg/commit"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

// Problem is a single rule violation.
type Problem struct {
	// Level is the severity declared for the rule.
	Level config.Level `json:"level"`

	// Name is the rule name, e.g. "type-enum".
	Name string `json:"name"`

	// Message describes the violation.
	Message string `json:"message"`
}

// Outcome is the result of linting one message.
type Outcome struct {
	// Input is the message as given.
	Input string `json:"input"`

	// Valid is false when at least one error-level rule failed.
	Valid bool `json:"valid"`

	// Ignored is true when an ignore predicate exempted the message.
	Ignored bool `json:"ignored,omitempty"`

	// IgnoredBy names the predicate that matched.
	IgnoredBy string `json:"ignored_by,omitempty"`

	// Commit is the parsed message. Nil for ignored messages.
	Commit *Parsed `json:"commit,omitempty"`

	Errors   []Problem `json:"errors"`
	Warnings []Problem `json:"warnings"`
}

// Parsed is the conventional-commit breakdown reported with an outcome.
type Parsed struct {
	Type       string           `json:"type"`
	Scopes     []string         `json:"scopes,omitempty"`
	Subject    string           `json:"subject"`
	Breaking   bool             `json:"breaking"`
	Notes      []string         `json:"notes,omitempty"`
	References []string         `json:"references,omitempty"`
	Trailers   []commit.Trailer `json:"trailers,omitempty"`
	Merge      bool             `json:"merge,omitempty"`
	Revert     bool             `json:"revert,omitempty"`
}

func newParsed(c *commit.Commit) *Parsed {
	return &Parsed{
		Type:       c.Type,
		Scopes:     c.Scopes,
		Subject:    c.Subject,
		Breaking:   c.Breaking,
		Notes:      c.Notes,
		References: c.References,
		Trailers:   c.Trailers,
		Merge:      c.Merge,
		Revert:     c.Revert,
	}
}

// HasWarnings reports whether any warning-level rule failed.
func (o *Outcome) HasWarnings() bool {
	return len(o.Warnings) > 0
}

// Problems returns errors followed by warnings.
func (o *Outcome) Problems() []Problem {
	problems := make([]Problem, 0, len(o.Errors)+len(o.Warnings))
	problems = append(problems, o.Errors...)

	return append(problems, o.Warnings...)
}

// Find returns the problem reported by the named rule.
func (o *Outcome) Find(name string) (Problem, bool) {
	for _, p := range o.Problems() {
		if p.Name == name {
			return p, true
		}
	}

	return Problem{}, false
}

func (o *Outcome) add(p Problem) {
	switch p.Level {
	case config.LevelError:
		o.Errors = append(o.Errors, p)
		o.Valid = false
	case config.LevelWarning:
		o.Warnings = append(o.Warnings, p)
	case config.LevelOff:
	}
}
