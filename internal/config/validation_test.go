package config

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/commitlint/internal/lint"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

var _ = Describe("Validator", func() {
	var validator *Validator

	BeforeEach(func() {
		validator = NewValidator()
	})

	singleFailure := func(cfg *config.Config) error {
		failures := validator.Failures(cfg)
		Expect(failures).To(HaveLen(1))

		return failures[0]
	}

	Describe("Validate", func() {
		It("should return error when config is nil", func() {
			err := validator.Validate(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("config is nil"))
		})

		It("should pass validation for empty config", func() {
			Expect(validator.Validate(&config.Config{})).To(Succeed())
		})

		It("should pass validation for the default config", func() {
			Expect(validator.Validate(DefaultConfig())).To(Succeed())
		})

		It("should collect multiple validation errors", func() {
			cfg := &config.Config{
				Version: 7,
				Extends: []string{"angular"},
			}

			err := validator.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("2 error(s)"))
			Expect(validator.Failures(cfg)).To(HaveLen(2))
		})
	})

	Describe("rules", func() {
		It("rejects unknown rule names", func() {
			err := singleFailure(&config.Config{Rules: config.RuleSet{
				"no-such-rule": {Level: config.LevelError},
			}})

			Expect(errors.Is(err, lint.ErrUnknownRule)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("rules.no-such-rule"))
		})

		It("rejects levels outside off, warning and error", func() {
			err := singleFailure(&config.Config{Rules: config.RuleSet{
				config.RuleTypeEmpty: {Level: config.Level(3), When: config.Never},
			}})

			Expect(errors.Is(err, config.ErrInvalidLevel)).To(BeTrue())
		})

		It("rejects applicabilities other than always and never", func() {
			err := singleFailure(&config.Config{Rules: config.RuleSet{
				config.RuleTypeEmpty: {Level: config.LevelError, When: config.Applicability(2)},
			}})

			Expect(errors.Is(err, config.ErrInvalidApplicability)).To(BeTrue())
		})

		It("rejects duplicate tokens", func() {
			err := singleFailure(&config.Config{Rules: config.RuleSet{
				config.RuleTypeEnum: {
					Level:  config.LevelError,
					Values: config.Values("feat", "fix", "feat"),
				},
			}})

			Expect(errors.Is(err, ErrDuplicateValue)).To(BeTrue())
		})

		It("rejects tokens that are not lower-case", func() {
			err := singleFailure(&config.Config{Rules: config.RuleSet{
				config.RuleScopeEnum: {
					Level:  config.LevelError,
					Values: config.Values("api", "Auth"),
				},
			}})

			Expect(errors.Is(err, ErrInvalidValue)).To(BeTrue())
		})

		It("rejects negative limits", func() {
			err := singleFailure(&config.Config{Rules: config.RuleSet{
				config.RuleSubjectMaxLength: {Level: config.LevelError, Limit: config.IntPtr(-1)},
			}})

			Expect(errors.Is(err, config.ErrInvalidLimit)).To(BeTrue())
		})

		It("rejects unknown casing modes", func() {
			err := singleFailure(&config.Config{Rules: config.RuleSet{
				config.RuleSubjectCase: {
					Level: config.LevelError,
					Cases: []config.CaseMode{"shouting-case"},
				},
			}})

			Expect(errors.Is(err, config.ErrInvalidCase)).To(BeTrue())
		})

		DescribeTable("requires the parameter of active rules",
			func(name string) {
				err := singleFailure(&config.Config{Rules: config.RuleSet{
					name: {Level: config.LevelError},
				}})

				Expect(errors.Is(err, ErrMissingParameter)).To(BeTrue())
			},
			Entry("enum", config.RuleTypeEnum),
			Entry("length", config.RuleHeaderMaxLength),
			Entry("case", config.RuleTypeCase),
		)

		It("does not require parameters of disabled rules", func() {
			Expect(validator.Validate(&config.Config{Rules: config.RuleSet{
				config.RuleTypeEnum: {Level: config.LevelOff},
			}})).To(Succeed())
		})
	})

	Describe("ignores", func() {
		It("rejects entries without a predicate", func() {
			err := singleFailure(&config.Config{Ignores: []config.IgnoreConfig{{Name: "empty"}}})

			Expect(errors.Is(err, config.ErrInvalidIgnore)).To(BeTrue())
		})

		It("rejects invalid patterns", func() {
			err := singleFailure(&config.Config{Ignores: []config.IgnoreConfig{{Name: "bad", Pattern: "(["}}})

			Expect(err.Error()).To(ContainSubstring("ignores[0]"))
		})
	})

	Describe("prompt", func() {
		It("rejects unknown alignments", func() {
			err := singleFailure(&config.Config{Prompt: &config.PromptConfig{EmojiAlign: "middle"}})

			Expect(errors.Is(err, config.ErrInvalidAlign)).To(BeTrue())
		})

		It("rejects negative limits", func() {
			err := singleFailure(&config.Config{Prompt: &config.PromptConfig{MaxSubjectLength: -5}})

			Expect(errors.Is(err, config.ErrInvalidLimit)).To(BeTrue())
		})

		It("accepts unbounded limits", func() {
			Expect(validator.Validate(&config.Config{Prompt: &config.PromptConfig{
				MaxHeaderLength:  config.Unbounded,
				MaxSubjectLength: config.Unbounded,
			}})).To(Succeed())
		})

		It("rejects duplicate type choices", func() {
			err := singleFailure(&config.Config{Prompt: &config.PromptConfig{
				Types: []config.Choice{{Value: "feat"}, {Value: "feat"}},
			}})

			Expect(errors.Is(err, ErrDuplicateValue)).To(BeTrue())
		})
	})
})
