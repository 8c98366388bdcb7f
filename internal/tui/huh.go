package tui

import (
	"charm.land/huh/v2"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

// HuhUI implements UI using charm.land/huh.
type HuhUI struct{}

// NewHuhUI creates a new HuhUI instance.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// IsInteractive returns true as HuhUI is for interactive terminals.
func (*HuhUI) IsInteractive() bool {
	return true
}

// RunInitForm runs the initialization configuration form using huh.
func (*HuhUI) RunInitForm(opts InitFormOptions) (*config.Config, error) {
	result := newResult(opts.Defaults)

	form := buildInitForm(opts, &result)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}

		return nil, errors.Wrap(err, "running init form")
	}

	return buildConfigFromResult(opts.Defaults, &result)
}

// buildInitForm creates the huh form for initialization.
func buildInitForm(opts InitFormOptions, result *InitFormResult) *huh.Form {
	typeSelect := huh.NewMultiSelect[string]().
		Title("Commit types").
		Description("Types accepted by the type-enum rule.").
		Options(valueOptions(opts.Defaults.Rule(config.RuleTypeEnum), result.Types)...).
		Validate(func(selected []string) error {
			if len(selected) == 0 {
				return ErrNoTypes
			}

			return nil
		}).
		Value(&result.Types)

	scopeSelect := huh.NewMultiSelect[string]().
		Title("Scopes").
		Description("Scopes accepted by the scope-enum rule.\nSelect none to allow any scope.").
		Options(valueOptions(opts.Defaults.Rule(config.RuleScopeEnum), result.Scopes)...).
		Value(&result.Scopes)

	lengthInput := huh.NewInput().
		Title("Subject max length").
		Description("Longest subject accepted by the subject-max-length rule.").
		Validate(validateLength).
		Value(&result.SubjectMaxLength)

	target := "project"
	if opts.Global {
		target = "global"
	}

	confirm := huh.NewConfirm().
		Title("Write " + target + " configuration?").
		Affirmative("Yes").
		Negative("No").
		Value(&result.Confirmed)

	return huh.NewForm(
		huh.NewGroup(typeSelect),
		huh.NewGroup(scopeSelect),
		huh.NewGroup(lengthInput, confirm),
	).WithShowHelp(true)
}

// valueOptions lists the rule values as options, described ones as "token - description".
func valueOptions(rule *config.Rule, selected []string) []huh.Option[string] {
	if rule == nil {
		return nil
	}

	options := make([]huh.Option[string], 0, len(rule.Values))

	for _, v := range rule.Values {
		label := v.Value
		if v.Description != "" {
			label += " - " + v.Description
		}

		option := huh.NewOption(label, v.Value)

		for _, s := range selected {
			if s == v.Value {
				option = option.Selected(true)

				break
			}
		}

		options = append(options, option)
	}

	return options
}
