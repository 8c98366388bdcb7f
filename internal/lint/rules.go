package lint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/smykla-skalski/commitlint/pkg/commit"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

// Lines containing a URL are exempt from line-length rules.
var urlRegex = regexp.MustCompile(`https?://`)

// Rule checks one aspect of a commit message.
type Rule interface {
	// Name returns the rule name as used in the config rule table.
	Name() string

	// Validate returns an empty string when the commit satisfies the rule
	// definition, otherwise the violation message.
	Validate(c *commit.Commit, def *config.Rule) string
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	name string
	fn   func(c *commit.Commit, def *config.Rule) string
}

// NewRuleFunc creates a named rule from fn.
func NewRuleFunc(name string, fn func(c *commit.Commit, def *config.Rule) string) *RuleFunc {
	return &RuleFunc{name: name, fn: fn}
}

// Name returns the rule name.
func (r *RuleFunc) Name() string {
	return r.name
}

// Validate runs the wrapped function.
func (r *RuleFunc) Validate(c *commit.Commit, def *config.Rule) string {
	return r.fn(c, def)
}

func builtinRules() []Rule {
	return []Rule{
		NewRuleFunc(config.RuleTypeEnum, enumRule("type", func(c *commit.Commit) []string {
			return nonEmpty(c.Type)
		})),
		NewRuleFunc(config.RuleTypeEmpty, emptyRule("type", func(c *commit.Commit) string { return c.Type })),
		NewRuleFunc(config.RuleTypeCase, caseRule("type", func(c *commit.Commit) []string {
			return nonEmpty(c.Type)
		})),
		NewRuleFunc(config.RuleTypeMaxLength, maxLengthRule("type", func(c *commit.Commit) string { return c.Type })),

		NewRuleFunc(config.RuleScopeEnum, enumRule("scope", func(c *commit.Commit) []string { return c.Scopes })),
		NewRuleFunc(config.RuleScopeEmpty, emptyRule("scope", func(c *commit.Commit) string { return c.Scope })),
		NewRuleFunc(config.RuleScopeCase, caseRule("scope", func(c *commit.Commit) []string { return c.Scopes })),

		NewRuleFunc(config.RuleSubjectEmpty, emptyRule("subject", func(c *commit.Commit) string { return c.Subject })),
		NewRuleFunc(config.RuleSubjectFullStop, subjectFullStop),
		NewRuleFunc(config.RuleSubjectCase, caseRule("subject", func(c *commit.Commit) []string {
			return nonEmpty(c.Subject)
		})),
		NewRuleFunc(config.RuleSubjectMaxLength, maxLengthRule("subject", func(c *commit.Commit) string {
			return c.Subject
		})),
		NewRuleFunc(config.RuleSubjectMinLength, minLengthRule("subject", func(c *commit.Commit) string {
			return c.Subject
		})),

		NewRuleFunc(config.RuleHeaderMaxLength, maxLengthRule("header", func(c *commit.Commit) string {
			return c.Header
		})),
		NewRuleFunc(config.RuleHeaderMinLength, minLengthRule("header", func(c *commit.Commit) string {
			return c.Header
		})),
		NewRuleFunc(config.RuleHeaderTrim, headerTrim),

		NewRuleFunc(config.RuleBodyLeadingBlank, leadingBlankRule("body", func(c *commit.Commit) (string, bool) {
			return c.Body, c.BodyLeadingBlank
		})),
		NewRuleFunc(config.RuleBodyEmpty, emptyRule("body", func(c *commit.Commit) string { return c.Body })),
		NewRuleFunc(config.RuleBodyMaxLineLength, maxLineLengthRule("body", (*commit.Commit).BodyLines)),

		NewRuleFunc(config.RuleFooterLeadingBlank, leadingBlankRule("footer", func(c *commit.Commit) (string, bool) {
			return c.Footer, c.FooterLeadingBlank
		})),
		NewRuleFunc(config.RuleFooterMaxLineLength, maxLineLengthRule("footer", (*commit.Commit).FooterLines)),
	}
}

// enumRule checks every token against the rule values. Missing tokens pass.
func enumRule(field string, tokens func(*commit.Commit) []string) func(*commit.Commit, *config.Rule) string {
	return func(c *commit.Commit, def *config.Rule) string {
		values := tokens(c)
		if len(values) == 0 {
			return ""
		}

		allowed := "[" + strings.Join(def.Tokens(), ", ") + "]"

		for _, v := range values {
			listed := def.HasToken(v)

			if def.When == config.Always && !listed {
				return fmt.Sprintf("%s must be one of %s", field, allowed)
			}

			if def.When == config.Never && listed {
				return fmt.Sprintf("%s must not be one of %s", field, allowed)
			}
		}

		return ""
	}
}

// emptyRule with "never" requires a value, with "always" forbids one.
func emptyRule(field string, value func(*commit.Commit) string) func(*commit.Commit, *config.Rule) string {
	return func(c *commit.Commit, def *config.Rule) string {
		empty := strings.TrimSpace(value(c)) == ""

		switch {
		case def.When == config.Never && empty:
			return field + " may not be empty"
		case def.When == config.Always && !empty:
			return field + " must be empty"
		default:
			return ""
		}
	}
}

func caseRule(field string, tokens func(*commit.Commit) []string) func(*commit.Commit, *config.Rule) string {
	return func(c *commit.Commit, def *config.Rule) string {
		if len(def.Cases) == 0 {
			return ""
		}

		for _, v := range tokens(c) {
			matches := matchesAnyCase(v, def.Cases)

			if def.When == config.Always && !matches {
				return fmt.Sprintf("%s must be %s", field, describeCases(def.Cases))
			}

			if def.When == config.Never && matches {
				return fmt.Sprintf("%s must not be %s", field, describeCases(def.Cases))
			}
		}

		return ""
	}
}

func describeCases(cases []config.CaseMode) string {
	if len(cases) == 1 {
		return string(cases[0])
	}

	names := make([]string, 0, len(cases))
	for _, c := range cases {
		names = append(names, string(c))
	}

	return "one of [" + strings.Join(names, ", ") + "]"
}

// Length rules ignore When: the limit is always an upper or lower bound.
func maxLengthRule(field string, value func(*commit.Commit) string) func(*commit.Commit, *config.Rule) string {
	return func(c *commit.Commit, def *config.Rule) string {
		if def.Limit == nil {
			return ""
		}

		n := utf8.RuneCountInString(value(c))
		if n <= *def.Limit {
			return ""
		}

		return fmt.Sprintf(
			"%s must not be longer than %d characters, current length is %d",
			field,
			*def.Limit,
			n,
		)
	}
}

func minLengthRule(field string, value func(*commit.Commit) string) func(*commit.Commit, *config.Rule) string {
	return func(c *commit.Commit, def *config.Rule) string {
		v := value(c)
		if def.Limit == nil || v == "" {
			return ""
		}

		n := utf8.RuneCountInString(v)
		if n >= *def.Limit {
			return ""
		}

		return fmt.Sprintf(
			"%s must not be shorter than %d characters, current length is %d",
			field,
			*def.Limit,
			n,
		)
	}
}

func maxLineLengthRule(field string, lines func(*commit.Commit) []string) func(*commit.Commit, *config.Rule) string {
	return func(c *commit.Commit, def *config.Rule) string {
		if def.Limit == nil {
			return ""
		}

		for _, line := range lines(c) {
			if urlRegex.MatchString(line) {
				continue
			}

			if utf8.RuneCountInString(line) > *def.Limit {
				return fmt.Sprintf("%s's lines must not be longer than %d characters", field, *def.Limit)
			}
		}

		return ""
	}
}

func leadingBlankRule(
	field string,
	section func(*commit.Commit) (string, bool),
) func(*commit.Commit, *config.Rule) string {
	return func(c *commit.Commit, def *config.Rule) string {
		text, blank := section(c)
		if text == "" {
			return ""
		}

		switch {
		case def.When == config.Always && !blank:
			return field + " must have leading blank line"
		case def.When == config.Never && blank:
			return field + " may not have leading blank line"
		default:
			return ""
		}
	}
}

func subjectFullStop(c *commit.Commit, def *config.Rule) string {
	if c.Subject == "" {
		return ""
	}

	stop := def.Character
	if stop == "" {
		stop = "."
	}

	ends := strings.HasSuffix(c.Subject, stop)

	switch {
	case def.When == config.Never && ends:
		return "subject may not end with full stop"
	case def.When == config.Always && !ends:
		return "subject must end with full stop"
	default:
		return ""
	}
}

func headerTrim(c *commit.Commit, _ *config.Rule) string {
	trimmed := strings.TrimSpace(c.Header)

	switch {
	case trimmed == c.Header:
		return ""
	case strings.TrimLeft(c.Header, " \t") == trimmed:
		return "header must not start with whitespace"
	case strings.TrimRight(c.Header, " \t") == trimmed:
		return "header must not end with whitespace"
	default:
		return "header must not be surrounded by whitespace"
	}
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}

	return []string{s}
}
