package lint_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/commitlint/internal/lint"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

func lintWith(name string, rule *config.Rule, message string) *lint.Outcome {
	cfg := &config.Config{
		Rules:          config.RuleSet{name: rule},
		DefaultIgnores: config.BoolPtr(false),
	}

	linter, err := lint.New(cfg)
	Expect(err).NotTo(HaveOccurred())

	return linter.Lint(context.Background(), message)
}

func errorRule(when config.Applicability) *config.Rule {
	return &config.Rule{Level: config.LevelError, When: when}
}

func withValues(r *config.Rule, tokens ...string) *config.Rule {
	r.Values = config.Values(tokens...)

	return r
}

func withLimit(r *config.Rule, limit int) *config.Rule {
	r.Limit = config.IntPtr(limit)

	return r
}

func withCases(r *config.Rule, cases ...config.CaseMode) *config.Rule {
	r.Cases = cases

	return r
}

var _ = Describe("Rules", func() {
	DescribeTable("rule evaluation",
		func(name string, rule *config.Rule, message, expected string) {
			outcome := lintWith(name, rule, message)

			if expected == "" {
				Expect(outcome.Errors).To(BeEmpty())
				Expect(outcome.Valid).To(BeTrue())

				return
			}

			Expect(outcome.Valid).To(BeFalse())
			Expect(outcome.Errors).To(HaveLen(1))
			Expect(outcome.Errors[0].Name).To(Equal(name))
			Expect(outcome.Errors[0].Message).To(Equal(expected))
		},

		Entry("type-enum allows listed type",
			config.RuleTypeEnum, withValues(errorRule(config.Always), "feat", "fix"),
			"feat: add thing", ""),
		Entry("type-enum rejects unlisted type",
			config.RuleTypeEnum, withValues(errorRule(config.Always), "feat", "fix"),
			"foo: add thing", "type must be one of [feat, fix]"),
		Entry("type-enum passes on missing type",
			config.RuleTypeEnum, withValues(errorRule(config.Always), "feat"),
			"add thing", ""),
		Entry("type-enum never rejects listed type",
			config.RuleTypeEnum, withValues(errorRule(config.Never), "wip"),
			"wip: add thing", "type must not be one of [wip]"),

		Entry("type-empty never rejects missing type",
			config.RuleTypeEmpty, errorRule(config.Never),
			"add thing", "type may not be empty"),
		Entry("type-empty never accepts a type",
			config.RuleTypeEmpty, errorRule(config.Never),
			"feat: add thing", ""),

		Entry("type-case lower-case rejects capitalized type",
			config.RuleTypeCase, withCases(errorRule(config.Always), config.CaseLower),
			"Feat: add thing", "type must be lower-case"),
		Entry("type-case accepts any of several modes",
			config.RuleTypeCase, withCases(errorRule(config.Always), config.CaseLower, config.CaseUpper),
			"FEAT: add thing", ""),

		Entry("type-max-length rejects long type",
			config.RuleTypeMaxLength, withLimit(errorRule(config.Always), 4),
			"refactor: move code", "type must not be longer than 4 characters, current length is 8"),

		Entry("scope-enum accepts every listed scope",
			config.RuleScopeEnum, withValues(errorRule(config.Always), "api", "db"),
			"feat(api,db): add thing", ""),
		Entry("scope-enum rejects one unlisted scope",
			config.RuleScopeEnum, withValues(errorRule(config.Always), "api", "db"),
			"feat(api/web): add thing", "scope must be one of [api, db]"),
		Entry("scope-enum passes on missing scope",
			config.RuleScopeEnum, withValues(errorRule(config.Always), "api"),
			"feat: add thing", ""),

		Entry("scope-empty always rejects a scope",
			config.RuleScopeEmpty, errorRule(config.Always),
			"feat(api): add thing", "scope must be empty"),

		Entry("scope-case rejects upper-case scope",
			config.RuleScopeCase, withCases(errorRule(config.Always), config.CaseLower),
			"feat(API): add thing", "scope must be lower-case"),
		Entry("scope-case kebab-case accepts kebab scope",
			config.RuleScopeCase, withCases(errorRule(config.Always), config.CaseKebab),
			"feat(user-profile): add thing", ""),

		Entry("subject-empty never rejects empty subject",
			config.RuleSubjectEmpty, errorRule(config.Never),
			"feat: ", "subject may not be empty"),
		Entry("subject-empty never rejects non-conventional header",
			config.RuleSubjectEmpty, errorRule(config.Never),
			"just some text", "subject may not be empty"),

		Entry("subject-full-stop never rejects trailing dot",
			config.RuleSubjectFullStop, &config.Rule{Level: config.LevelError, When: config.Never, Character: "."},
			"feat: add thing.", "subject may not end with full stop"),
		Entry("subject-full-stop defaults to dot",
			config.RuleSubjectFullStop, errorRule(config.Always),
			"feat: add thing", "subject must end with full stop"),

		Entry("subject-case lower-case rejects capitalized subject",
			config.RuleSubjectCase, withCases(errorRule(config.Always), config.CaseLower),
			"feat: Add thing", "subject must be lower-case"),
		Entry("subject-case ignores quoted fragments",
			config.RuleSubjectCase, withCases(errorRule(config.Always), config.CaseLower),
			"feat: add `NewThing` helper", ""),
		Entry("subject-case accepts subjects starting with a digit",
			config.RuleSubjectCase, withCases(errorRule(config.Always), config.CaseLower),
			"feat: 2FA Support", ""),
		Entry("subject-case never rejects sentence case",
			config.RuleSubjectCase, withCases(errorRule(config.Never), config.CaseSentence),
			"feat: Add thing", "subject must not be sentence-case"),

		Entry("subject-max-length rejects long subject",
			config.RuleSubjectMaxLength, withLimit(errorRule(config.Always), 10),
			"feat: this is way too long", "subject must not be longer than 10 characters, current length is 20"),
		Entry("subject-max-length counts runes",
			config.RuleSubjectMaxLength, withLimit(errorRule(config.Always), 4),
			"feat: 新功能啊", ""),

		Entry("subject-min-length rejects short subject",
			config.RuleSubjectMinLength, withLimit(errorRule(config.Always), 5),
			"feat: ab", "subject must not be shorter than 5 characters, current length is 2"),

		Entry("header-max-length rejects long header",
			config.RuleHeaderMaxLength, withLimit(errorRule(config.Always), 10),
			"feat: add thing", "header must not be longer than 10 characters, current length is 15"),
		Entry("header-min-length accepts long enough header",
			config.RuleHeaderMinLength, withLimit(errorRule(config.Always), 5),
			"feat: add thing", ""),

		Entry("header-trim rejects leading whitespace",
			config.RuleHeaderTrim, errorRule(config.Always),
			" feat: add thing", "header must not start with whitespace"),
		Entry("header-trim rejects trailing whitespace",
			config.RuleHeaderTrim, errorRule(config.Always),
			"feat: add thing ", "header must not end with whitespace"),
		Entry("header-trim rejects surrounding whitespace",
			config.RuleHeaderTrim, errorRule(config.Always),
			" feat: add thing ", "header must not be surrounded by whitespace"),

		Entry("body-leading-blank rejects body glued to header",
			config.RuleBodyLeadingBlank, errorRule(config.Always),
			"feat: add thing\nbody text", "body must have leading blank line"),
		Entry("body-leading-blank accepts separated body",
			config.RuleBodyLeadingBlank, errorRule(config.Always),
			"feat: add thing\n\nbody text", ""),

		Entry("body-empty always rejects a body",
			config.RuleBodyEmpty, errorRule(config.Always),
			"feat: add thing\n\nbody text", "body must be empty"),

		Entry("body-max-line-length rejects long line",
			config.RuleBodyMaxLineLength, withLimit(errorRule(config.Always), 10),
			"feat: add thing\n\nthis line is too long", "body's lines must not be longer than 10 characters"),
		Entry("body-max-line-length skips URL lines",
			config.RuleBodyMaxLineLength, withLimit(errorRule(config.Always), 10),
			"feat: add thing\n\nsee https://example.com/a/very/long/path", ""),

		Entry("footer-leading-blank rejects footer glued to header",
			config.RuleFooterLeadingBlank, errorRule(config.Always),
			"feat: add thing\nCloses #12", "footer must have leading blank line"),
		Entry("footer-max-line-length rejects long footer line",
			config.RuleFooterMaxLineLength, withLimit(errorRule(config.Always), 20),
			"feat: add thing\n\nReviewed-by: Someone With A Long Name", "footer's lines must not be longer than 20 characters"),
	)

	It("reports warnings without invalidating the outcome", func() {
		rule := &config.Rule{Level: config.LevelWarning, When: config.Always}

		outcome := lintWith(config.RuleBodyLeadingBlank, rule, "feat: add thing\nbody")

		Expect(outcome.Valid).To(BeTrue())
		Expect(outcome.Errors).To(BeEmpty())
		Expect(outcome.Warnings).To(HaveLen(1))
		Expect(outcome.Warnings[0].Level).To(Equal(config.LevelWarning))
	})

	It("skips rules that are off", func() {
		rule := withValues(&config.Rule{Level: config.LevelOff, When: config.Always}, "feat")

		outcome := lintWith(config.RuleTypeEnum, rule, "foo: add thing")

		Expect(outcome.Valid).To(BeTrue())
		Expect(outcome.Problems()).To(BeEmpty())
	})
})

var _ = Describe("Registry", func() {
	It("knows every rule name declared in the config package", func() {
		Expect(lint.KnownRules()).To(ConsistOf(
			config.RuleTypeEnum, config.RuleTypeEmpty, config.RuleTypeCase, config.RuleTypeMaxLength,
			config.RuleScopeEnum, config.RuleScopeEmpty, config.RuleScopeCase,
			config.RuleSubjectEmpty, config.RuleSubjectFullStop, config.RuleSubjectCase,
			config.RuleSubjectMaxLength, config.RuleSubjectMinLength,
			config.RuleHeaderMaxLength, config.RuleHeaderMinLength, config.RuleHeaderTrim,
			config.RuleBodyLeadingBlank, config.RuleBodyEmpty, config.RuleBodyMaxLineLength,
			config.RuleFooterLeadingBlank, config.RuleFooterMaxLineLength,
		))
	})

	It("rejects duplicate registrations", func() {
		registry := lint.DefaultRegistry()

		err := registry.Register(lint.NewRuleFunc(config.RuleTypeEnum, nil))
		Expect(err).To(MatchError(lint.ErrDuplicateRule))
	})

	It("accepts custom rules", func() {
		registry := lint.NewRegistry()
		Expect(registry.Register(lint.NewRuleFunc("ticket-required", nil))).To(Succeed())

		Expect(lint.IsKnownRule("ticket-required")).To(BeFalse())
		Expect(registry.Names()).To(Equal([]string{"ticket-required"}))
	})
})
