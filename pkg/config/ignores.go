package config

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidIgnore is returned when an ignore entry has neither a substring nor a pattern.
var ErrInvalidIgnore = errors.New("invalid ignore")

// IgnorePredicate reports whether a raw commit message is exempt from linting.
type IgnorePredicate func(message string) bool

// Ignore is a named ignore predicate.
type Ignore struct {
	Name  string
	Match IgnorePredicate
}

// IgnoreConfig declares an ignore predicate in a config file. A message is
// ignored when it contains Contains, or when Pattern matches it. When both
// are set, either one matching is enough.
type IgnoreConfig struct {
	// Name identifies the predicate in logs and reports.
	Name string `json:"name" koanf:"name" toml:"name" yaml:"name"`

	// Contains is a literal substring.
	Contains string `json:"contains,omitempty" koanf:"contains" toml:"contains,omitempty" yaml:"contains,omitempty"`

	// Pattern is a regular expression (RE2 syntax).
	Pattern string `json:"pattern,omitempty" koanf:"pattern" toml:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Compile turns the declaration into an Ignore.
func (c IgnoreConfig) Compile() (Ignore, error) {
	if c.Contains == "" && c.Pattern == "" {
		return Ignore{}, errors.Wrapf(ErrInvalidIgnore, "%q: contains or pattern is required", c.Name)
	}

	var re *regexp.Regexp

	if c.Pattern != "" {
		compiled, err := regexp.Compile(c.Pattern)
		if err != nil {
			return Ignore{}, errors.Wrapf(err, "ignore %q: invalid pattern", c.Name)
		}

		re = compiled
	}

	contains := c.Contains

	return Ignore{
		Name: c.Name,
		Match: func(message string) bool {
			if contains != "" && strings.Contains(message, contains) {
				return true
			}

			return re != nil && re.MatchString(message)
		},
	}, nil
}

// CompileIgnores compiles declarations in order.
func CompileIgnores(configs []IgnoreConfig) ([]Ignore, error) {
	ignores := make([]Ignore, 0, len(configs))

	for _, c := range configs {
		ignore, err := c.Compile()
		if err != nil {
			return nil, err
		}

		ignores = append(ignores, ignore)
	}

	return ignores, nil
}
