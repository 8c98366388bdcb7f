// Package tui provides the interactive and line-based forms of `commitlint init`.
package tui

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

var (
	// ErrAborted is returned when the user declines to write the configuration.
	ErrAborted = errors.New("init aborted")

	// ErrInvalidLength is returned for a subject length that is not a positive integer.
	ErrInvalidLength = errors.New("subject max length must be a positive integer")

	// ErrNoTypes is returned when no commit type was selected.
	ErrNoTypes = errors.New("at least one type is required")
)

// UI defines the interface for terminal user interface operations.
// This interface abstracts the TUI implementation to allow for both
// interactive (huh) and fallback (simple prompt) implementations.
type UI interface {
	// RunInitForm asks for types, scopes and the subject length and returns
	// Defaults with those choices applied.
	RunInitForm(opts InitFormOptions) (*config.Config, error)

	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool
}

// InitFormOptions contains options for the init form.
type InitFormOptions struct {
	// Global indicates whether this is a global or project config.
	Global bool

	// Defaults is the configuration the form starts from. It is not modified.
	Defaults *config.Config
}

// InitFormResult contains the answers of the init form.
type InitFormResult struct {
	Types            []string
	Scopes           []string
	SubjectMaxLength string
	Confirmed        bool
}

// newResult pre-fills a result from the defaults: every known type and scope
// selected, the current subject limit.
func newResult(defaults *config.Config) InitFormResult {
	return InitFormResult{
		Types:            defaults.Rule(config.RuleTypeEnum).Tokens(),
		Scopes:           defaults.Rule(config.RuleScopeEnum).Tokens(),
		SubjectMaxLength: strconv.Itoa(defaults.Rule(config.RuleSubjectMaxLength).LimitOr(0)),
		Confirmed:        true,
	}
}

// validateLength checks the subject length answer.
func validateLength(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.Wrapf(ErrInvalidLength, "got %q", s)
	}

	return nil
}

// buildConfigFromResult applies the answers to a copy of defaults. Rules and
// prompt choices keep their descriptions; tokens added by the user get none.
func buildConfigFromResult(defaults *config.Config, result *InitFormResult) (*config.Config, error) {
	if !result.Confirmed {
		return nil, ErrAborted
	}

	if len(result.Types) == 0 {
		return nil, ErrNoTypes
	}

	if err := validateLength(result.SubjectMaxLength); err != nil {
		return nil, err
	}

	limit, _ := strconv.Atoi(strings.TrimSpace(result.SubjectMaxLength))

	cfg := *defaults
	cfg.Rules = maps.Clone(defaults.Rules)
	if cfg.Rules == nil {
		cfg.Rules = config.RuleSet{}
	}

	cfg.Rules[config.RuleTypeEnum] = withValues(defaults.Rule(config.RuleTypeEnum), result.Types)

	if len(result.Scopes) > 0 {
		cfg.Rules[config.RuleScopeEnum] = withValues(defaults.Rule(config.RuleScopeEnum), result.Scopes)
	} else {
		// an absent rule would fall back to the built-in scope list on load
		cfg.Rules[config.RuleScopeEnum] = &config.Rule{Level: config.LevelOff}
	}

	subject := ruleOrDefault(defaults.Rule(config.RuleSubjectMaxLength))
	subject.Limit = config.IntPtr(limit)
	cfg.Rules[config.RuleSubjectMaxLength] = subject

	if defaults.Prompt != nil {
		prompt := *defaults.Prompt
		prompt.Types = filterChoices(prompt.Types, result.Types)
		prompt.Scopes = filterChoices(prompt.Scopes, result.Scopes)
		cfg.Prompt = &prompt
	}

	return &cfg, nil
}

func ruleOrDefault(rule *config.Rule) *config.Rule {
	if rule == nil {
		return &config.Rule{Level: config.LevelError, When: config.Always}
	}

	clone := *rule

	return &clone
}

func withValues(rule *config.Rule, tokens []string) *config.Rule {
	described := make(map[string]string)
	if rule != nil {
		for _, v := range rule.Values {
			described[v.Value] = v.Description
		}
	}

	updated := ruleOrDefault(rule)
	updated.Values = make([]config.AllowedValue, 0, len(tokens))

	for _, token := range tokens {
		updated.Values = append(updated.Values, config.AllowedValue{
			Value:       token,
			Description: described[token],
		})
	}

	return updated
}

// filterChoices keeps the choices whose value was selected, in choice order.
func filterChoices(choices []config.Choice, selected []string) []config.Choice {
	if len(choices) == 0 {
		return choices
	}

	return slices.DeleteFunc(slices.Clone(choices), func(c config.Choice) bool {
		return !slices.Contains(selected, c.Value)
	})
}
