package config

import (
	"slices"
	"strconv"
	"strings"
)

// Rule names understood by the lint engine.
const (
	RuleTypeEnum            = "type-enum"
	RuleTypeEmpty           = "type-empty"
	RuleTypeCase            = "type-case"
	RuleTypeMaxLength       = "type-max-length"
	RuleScopeEnum           = "scope-enum"
	RuleScopeEmpty          = "scope-empty"
	RuleScopeCase           = "scope-case"
	RuleSubjectEmpty        = "subject-empty"
	RuleSubjectFullStop     = "subject-full-stop"
	RuleSubjectCase         = "subject-case"
	RuleSubjectMaxLength    = "subject-max-length"
	RuleSubjectMinLength    = "subject-min-length"
	RuleHeaderMaxLength     = "header-max-length"
	RuleHeaderMinLength     = "header-min-length"
	RuleHeaderTrim          = "header-trim"
	RuleBodyLeadingBlank    = "body-leading-blank"
	RuleBodyEmpty           = "body-empty"
	RuleBodyMaxLineLength   = "body-max-line-length"
	RuleFooterLeadingBlank  = "footer-leading-blank"
	RuleFooterMaxLineLength = "footer-max-line-length"
)

// AllowedValue is a permitted token of an enum rule. Description is only
// used for display.
type AllowedValue struct {
	Value       string `json:"value"                 koanf:"value"       toml:"value"                 yaml:"value"`
	Description string `json:"description,omitempty" koanf:"description" toml:"description,omitempty" yaml:"description,omitempty"`
}

// Rule is a single entry of the rule table.
//
// Only the parameter field matching the rule kind is meaningful: Values for
// enum rules, Limit for length rules, Cases for casing rules and Character
// for full-stop rules.
type Rule struct {
	// Level is the severity of a violation: 0 off, 1 warning, 2 error.
	Level Level `json:"level" koanf:"level" toml:"level" yaml:"level"`

	// When is "always" (condition must hold) or "never" (must not hold).
	When Applicability `json:"when" koanf:"when" toml:"when" yaml:"when"`

	// Values is the ordered set of tokens for enum rules.
	Values []AllowedValue `json:"values,omitempty" koanf:"values" toml:"values,omitempty" yaml:"values,omitempty"`

	// Limit is the bound for length rules.
	Limit *int `json:"limit,omitempty" koanf:"limit" toml:"limit,omitempty" yaml:"limit,omitempty"`

	// Cases lists casing modes for casing rules; any one of them satisfies the rule.
	Cases []CaseMode `json:"cases,omitempty" koanf:"cases" toml:"cases,omitempty" yaml:"cases,omitempty"`

	// Character is the forbidden or required trailing character for full-stop rules.
	Character string `json:"character,omitempty" koanf:"character" toml:"character,omitempty" yaml:"character,omitempty"`
}

// IsActive reports whether the rule is evaluated at all.
func (r *Rule) IsActive() bool {
	return r != nil && r.Level != LevelOff
}

// Tokens returns the bare token strings of Values in declaration order.
func (r *Rule) Tokens() []string {
	if r == nil {
		return nil
	}

	tokens := make([]string, 0, len(r.Values))
	for _, v := range r.Values {
		tokens = append(tokens, v.Value)
	}

	return tokens
}

// HasToken reports whether token is one of the rule's values.
func (r *Rule) HasToken(token string) bool {
	return slices.Contains(r.Tokens(), token)
}

// LimitOr returns the configured limit or fallback when none is set.
func (r *Rule) LimitOr(fallback int) int {
	if r == nil || r.Limit == nil {
		return fallback
	}

	return *r.Limit
}

// Describe renders the rule as "[level, when, parameter]" for display.
func (r *Rule) Describe() string {
	parts := []string{r.Level.String(), r.When.String()}

	switch {
	case len(r.Values) > 0:
		parts = append(parts, "["+strings.Join(r.Tokens(), ", ")+"]")
	case r.Limit != nil:
		parts = append(parts, strconv.Itoa(*r.Limit))
	case len(r.Cases) > 0:
		cases := make([]string, 0, len(r.Cases))
		for _, c := range r.Cases {
			cases = append(cases, string(c))
		}

		parts = append(parts, "["+strings.Join(cases, ", ")+"]")
	case r.Character != "":
		parts = append(parts, "'"+r.Character+"'")
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// RuleSet maps rule names to rule definitions.
type RuleSet map[string]*Rule

// Names returns the rule names in lexical order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Get returns the named rule or nil.
func (rs RuleSet) Get(name string) *Rule {
	if rs == nil {
		return nil
	}

	return rs[name]
}

// Values builds an AllowedValue slice from bare tokens.
func Values(tokens ...string) []AllowedValue {
	values := make([]AllowedValue, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, AllowedValue{Value: t})
	}

	return values
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
