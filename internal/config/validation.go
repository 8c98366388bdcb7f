package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/commitlint/internal/lint"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownPreset is returned when extends names a preset that does not exist.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnsupportedVersion is returned for config versions newer than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrDuplicateValue is returned when an enum rule or choice list repeats a token.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrInvalidValue is returned when an allowed token is empty or not lower-case.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMissingParameter is returned when an active rule lacks the parameter its kind needs.
	ErrMissingParameter = errors.New("missing rule parameter")
)

// Rule kinds by the parameter they consume.
var (
	enumRules = []string{config.RuleTypeEnum, config.RuleScopeEnum}

	lengthRules = []string{
		config.RuleTypeMaxLength,
		config.RuleSubjectMaxLength,
		config.RuleSubjectMinLength,
		config.RuleHeaderMaxLength,
		config.RuleHeaderMinLength,
		config.RuleBodyMaxLineLength,
		config.RuleFooterMaxLineLength,
	}

	caseRules = []string{config.RuleTypeCase, config.RuleScopeCase, config.RuleSubjectCase}
)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
// Returns an error describing all validation failures.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	validationErrors := v.Failures(cfg)
	if len(validationErrors) > 0 {
		return errors.WithSecondaryError(
			errors.Wrapf(
				ErrInvalidConfig,
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			combineErrors(validationErrors),
		)
	}

	return nil
}

// Failures returns every validation failure of cfg, one per offending
// top-level entry, in a stable order.
func (v *Validator) Failures(cfg *config.Config) []error {
	var validationErrors []error

	if cfg.Version > config.CurrentConfigVersion || cfg.Version < 0 {
		validationErrors = append(validationErrors, errors.Wrapf(
			ErrUnsupportedVersion,
			"version %d, latest supported is %d",
			cfg.Version,
			config.CurrentConfigVersion,
		))
	}

	presets := Presets()

	for _, name := range cfg.Extends {
		if _, ok := presets[name]; !ok {
			validationErrors = append(validationErrors, errors.Wrapf(ErrUnknownPreset, "extends: %q", name))
		}
	}

	for _, name := range cfg.Rules.Names() {
		if err := v.validateRule(name, cfg.Rules[name]); err != nil {
			validationErrors = append(validationErrors, errors.Wrapf(err, "rules.%s", name))
		}
	}

	for i, ignore := range cfg.Ignores {
		if _, err := ignore.Compile(); err != nil {
			validationErrors = append(validationErrors, errors.Wrapf(err, "ignores[%d]", i))
		}
	}

	if cfg.Prompt != nil {
		if err := v.validatePromptConfig(cfg.Prompt); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "prompt"))
		}
	}

	return validationErrors
}

// validateRule checks a single rule table entry.
func (v *Validator) validateRule(name string, rule *config.Rule) error {
	if !lint.IsKnownRule(name) {
		return errors.Wrapf(lint.ErrUnknownRule, "%q", name)
	}

	if rule == nil {
		return errors.WithMessage(ErrMissingParameter, "rule has no definition")
	}

	var validationErrors []error

	if !rule.Level.IsValid() {
		validationErrors = append(validationErrors, errors.Wrapf(
			config.ErrInvalidLevel,
			"level %d, must be 0 (off), 1 (warning) or 2 (error)",
			int(rule.Level),
		))
	}

	if !rule.When.IsValid() {
		validationErrors = append(validationErrors, errors.Wrapf(
			config.ErrInvalidApplicability,
			"when %d, must be always or never",
			int(rule.When),
		))
	}

	if err := v.validateValues(rule.Tokens()); err != nil {
		validationErrors = append(validationErrors, errors.Wrap(err, "values"))
	}

	if rule.Limit != nil && *rule.Limit < 0 {
		validationErrors = append(validationErrors, errors.Wrapf(
			config.ErrInvalidLimit,
			"limit %d, must be non-negative",
			*rule.Limit,
		))
	}

	for _, c := range rule.Cases {
		if !c.IsValid() {
			validationErrors = append(validationErrors, errors.Wrapf(config.ErrInvalidCase, "cases: %q", string(c)))
		}
	}

	if rule.IsActive() {
		if err := validateParameter(name, rule); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}

	return combineErrors(validationErrors)
}

// validateParameter checks that an active rule carries the parameter its kind needs.
func validateParameter(name string, rule *config.Rule) error {
	switch {
	case slices.Contains(enumRules, name) && len(rule.Values) == 0:
		return errors.WithMessage(ErrMissingParameter, "enum rule requires values")
	case slices.Contains(lengthRules, name) && rule.Limit == nil:
		return errors.WithMessage(ErrMissingParameter, "length rule requires limit")
	case slices.Contains(caseRules, name) && len(rule.Cases) == 0:
		return errors.WithMessage(ErrMissingParameter, "case rule requires cases")
	default:
		return nil
	}
}

// validateValues checks that tokens are non-empty, lower-case and unique.
func (*Validator) validateValues(tokens []string) error {
	var validationErrors []error

	seen := make(map[string]bool, len(tokens))

	for _, token := range tokens {
		switch {
		case strings.TrimSpace(token) == "":
			validationErrors = append(validationErrors, errors.WithMessage(ErrInvalidValue, "empty token"))
		case token != strings.ToLower(token):
			validationErrors = append(validationErrors, errors.Wrapf(ErrInvalidValue, "%q must be lower-case", token))
		case seen[token]:
			validationErrors = append(validationErrors, errors.Wrapf(ErrDuplicateValue, "%q", token))
		}

		seen[token] = true
	}

	return combineErrors(validationErrors)
}

// validatePromptConfig validates the prompt schema.
func (v *Validator) validatePromptConfig(cfg *config.PromptConfig) error {
	var validationErrors []error

	aligns := map[string]config.Align{
		"emoji_align":               cfg.EmojiAlign,
		"custom_scopes_align":       cfg.CustomScopesAlign,
		"custom_issue_prefix_align": cfg.CustomIssuePrefixAlign,
	}

	for _, key := range slices.Sorted(maps.Keys(aligns)) {
		if !aligns[key].IsValid() {
			validationErrors = append(validationErrors, errors.Wrapf(
				config.ErrInvalidAlign,
				"%s: %q",
				key,
				string(aligns[key]),
			))
		}
	}

	limits := map[string]config.Limit{
		"max_header_length":  cfg.MaxHeaderLength,
		"max_subject_length": cfg.MaxSubjectLength,
	}

	for _, key := range slices.Sorted(maps.Keys(limits)) {
		if !limits[key].IsValid() {
			validationErrors = append(validationErrors, errors.Wrapf(
				config.ErrInvalidLimit,
				"%s: %d",
				key,
				int(limits[key]),
			))
		}
	}

	if cfg.MinSubjectLength < 0 {
		validationErrors = append(validationErrors, errors.Wrapf(
			config.ErrInvalidLimit,
			"min_subject_length: %d, must be non-negative",
			cfg.MinSubjectLength,
		))
	}

	if cfg.BreaklineNumber < 0 {
		validationErrors = append(validationErrors, errors.Wrapf(
			config.ErrInvalidLimit,
			"breakline_number: %d, must be non-negative",
			cfg.BreaklineNumber,
		))
	}

	if err := v.validateValues(config.ChoiceValues(cfg.Types)); err != nil {
		validationErrors = append(validationErrors, errors.Wrap(err, "types"))
	}

	if err := v.validateValues(config.ChoiceValues(cfg.Scopes)); err != nil {
		validationErrors = append(validationErrors, errors.Wrap(err, "scopes"))
	}

	for _, typ := range slices.Sorted(maps.Keys(cfg.ScopeOverrides)) {
		if err := v.validateValues(config.ChoiceValues(cfg.ScopeOverrides[typ])); err != nil {
			validationErrors = append(validationErrors, errors.Wrapf(err, "scope_overrides.%s", typ))
		}
	}

	return combineErrors(validationErrors)
}

// combineErrors combines multiple errors into a single error.
func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
