package lint_test

import (
	"context"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/smykla-skalski/commitlint/internal/config"
	"github.com/smykla-skalski/commitlint/internal/lint"
	"github.com/smykla-skalski/commitlint/pkg/commit"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

var _ = Describe("Linter", func() {
	var (
		ctx    context.Context
		linter *lint.Linter
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error

		linter, err = lint.New(internalconfig.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("with the default configuration", func() {
		It("accepts a conventional message", func() {
			outcome := linter.Lint(ctx, "feat(api): add user endpoint\n\nAdds GET /users.\n\nCloses #42")

			Expect(outcome.Valid).To(BeTrue())
			Expect(outcome.Ignored).To(BeFalse())
			Expect(outcome.Problems()).To(BeEmpty())
		})

		It("reports the parsed commit with the outcome", func() {
			outcome := linter.Lint(ctx,
				"feat(api,auth)!: drop v1 tokens\n\nBREAKING CHANGE: v1 tokens are rejected\nRefs #7")

			Expect(outcome.Commit).NotTo(BeNil())
			Expect(outcome.Commit.Type).To(Equal("feat"))
			Expect(outcome.Commit.Scopes).To(Equal([]string{"api", "auth"}))
			Expect(outcome.Commit.Subject).To(Equal("drop v1 tokens"))
			Expect(outcome.Commit.Breaking).To(BeTrue())
			Expect(outcome.Commit.Notes).To(Equal([]string{"v1 tokens are rejected"}))
			Expect(outcome.Commit.References).To(Equal([]string{"#7"}))
			Expect(outcome.Commit.Trailers).To(HaveLen(2))
			Expect(outcome.Commit.Revert).To(BeFalse())
		})

		It("marks conventional reverts", func() {
			outcome := linter.Lint(ctx, "revert: feat(api): add user endpoint")

			Expect(outcome.Ignored).To(BeFalse())
			Expect(outcome.Commit.Revert).To(BeTrue())
		})

		It("reports an unknown type at the declared severity", func() {
			outcome := linter.Lint(ctx, "wip(api): add user endpoint")

			Expect(outcome.Valid).To(BeFalse())

			problem, ok := outcome.Find(config.RuleTypeEnum)
			Expect(ok).To(BeTrue())
			Expect(problem.Level).To(Equal(config.LevelError))
			Expect(problem.Message).To(HavePrefix("type must be one of [feat, fix, docs"))
		})

		It("reports an over-long subject", func() {
			outcome := linter.Lint(ctx, "feat(api): add an endpoint returning every user with all attributes")

			Expect(outcome.Valid).To(BeFalse())

			problem, ok := outcome.Find(config.RuleSubjectMaxLength)
			Expect(ok).To(BeTrue())
			Expect(problem.Message).To(ContainSubstring("must not be longer than 50 characters"))
		})

		It("reports an empty subject", func() {
			outcome := linter.Lint(ctx, "feat(api): ")

			Expect(outcome.Valid).To(BeFalse())

			_, ok := outcome.Find(config.RuleSubjectEmpty)
			Expect(ok).To(BeTrue())
		})

		It("exempts messages containing Merge from every rule", func() {
			outcome := linter.Lint(ctx, "WIP: Merge stuff. Into Things!")

			Expect(outcome.Valid).To(BeTrue())
			Expect(outcome.Ignored).To(BeTrue())
			Expect(outcome.IgnoredBy).To(Equal("merge"))
			Expect(outcome.Problems()).To(BeEmpty())
			Expect(outcome.Commit).To(BeNil())
		})

		It("warns about a body without a leading blank line", func() {
			outcome := linter.Lint(ctx, "fix(db): close connections\nthey leaked")

			Expect(outcome.Valid).To(BeTrue())
			Expect(outcome.Warnings).To(HaveLen(1))
			Expect(outcome.Warnings[0].Name).To(Equal(config.RuleBodyLeadingBlank))
		})

		It("reports problems in rule-name order", func() {
			outcome := linter.Lint(ctx, "Feat(API): Add thing.")

			names := make([]string, 0, len(outcome.Errors))
			for _, p := range outcome.Errors {
				names = append(names, p.Name)
			}

			Expect(names).To(Equal([]string{
				config.RuleScopeCase,
				config.RuleScopeEnum,
				config.RuleSubjectCase,
				config.RuleSubjectFullStop,
				config.RuleTypeCase,
				config.RuleTypeEnum,
			}))
		})
	})

	Describe("ignores", func() {
		It("applies the built-in ignores when enabled", func() {
			cfg := &config.Config{
				Rules: config.RuleSet{
					config.RuleSubjectEmpty: {Level: config.LevelError, When: config.Never},
				},
			}

			l, err := lint.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for _, msg := range []string{
				"fixup! feat: add thing",
				"squash! fix: thing",
				"Merge branch 'main' into feature",
				"Merge pull request #1 from a/b",
				"Initial commit",
				`Revert "feat: add thing"`,
			} {
				Expect(l.Lint(ctx, msg).Ignored).To(BeTrue(), msg)
			}

			Expect(l.Lint(ctx, "plain message").Ignored).To(BeFalse())
		})

		It("skips the built-in ignores when disabled", func() {
			cfg := &config.Config{
				Rules: config.RuleSet{
					config.RuleSubjectEmpty: {Level: config.LevelError, When: config.Never},
				},
				DefaultIgnores: config.BoolPtr(false),
			}

			l, err := lint.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			outcome := l.Lint(ctx, "fixup! feat: add thing")
			Expect(outcome.Ignored).To(BeFalse())
			Expect(outcome.Valid).To(BeFalse())
		})

		It("accepts extra predicates", func() {
			cfg := &config.Config{
				Rules: config.RuleSet{
					config.RuleSubjectEmpty: {Level: config.LevelError, When: config.Never},
				},
				DefaultIgnores: config.BoolPtr(false),
			}

			l, err := lint.New(cfg, lint.WithIgnores(config.Ignore{
				Name:  "bot",
				Match: func(msg string) bool { return msg == "chore: bump" },
			}))
			Expect(err).NotTo(HaveOccurred())

			Expect(l.Lint(ctx, "chore: bump").IgnoredBy).To(Equal("bot"))
		})

		It("fails on an invalid ignore pattern", func() {
			cfg := &config.Config{
				Ignores: []config.IgnoreConfig{{Name: "broken", Pattern: "("}},
			}

			_, err := lint.New(cfg)
			Expect(err).To(HaveOccurred())
		})
	})

	It("rejects unknown rule names", func() {
		cfg := &config.Config{
			Rules: config.RuleSet{"no-such-rule": {Level: config.LevelError}},
		}

		_, err := lint.New(cfg)
		Expect(err).To(MatchError(lint.ErrUnknownRule))
	})

	It("evaluates rules from a custom registry", func() {
		registry := lint.NewRegistry()
		Expect(registry.Register(lint.NewRuleFunc("no-wip", func(c *commit.Commit, _ *config.Rule) string {
			if strings.HasPrefix(c.Subject, "wip") {
				return "subject must not start with wip"
			}

			return ""
		}))).To(Succeed())

		cfg := &config.Config{
			Rules: config.RuleSet{"no-wip": {Level: config.LevelWarning, When: config.Always}},
		}

		custom, err := lint.New(cfg, lint.WithRegistry(registry))
		Expect(err).NotTo(HaveOccurred())

		outcome := custom.Lint(ctx, "feat: wip on parser")
		Expect(outcome.Valid).To(BeTrue())
		Expect(outcome.HasWarnings()).To(BeTrue())
		Expect(outcome.Warnings[0].Message).To(Equal("subject must not start with wip"))

		Expect(custom.Lint(ctx, "feat: finish parser").HasWarnings()).To(BeFalse())
	})

	It("rejects a nil config", func() {
		_, err := lint.New(nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("LintAll", func() {
		It("preserves input order", func() {
			messages := make([]string, 0, 50)
			for i := range 50 {
				if i%2 == 0 {
					messages = append(messages, fmt.Sprintf("feat(api): add endpoint %d", i))
				} else {
					messages = append(messages, fmt.Sprintf("bogus(api): change %d", i))
				}
			}

			l, err := lint.New(internalconfig.DefaultConfig(), lint.WithConcurrency(4))
			Expect(err).NotTo(HaveOccurred())

			outcomes, err := l.LintAll(ctx, messages)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(len(messages)))

			for i, o := range outcomes {
				Expect(o.Input).To(Equal(messages[i]))
				Expect(o.Valid).To(Equal(i%2 == 0))
			}

			summary := lint.Summarize(outcomes)
			Expect(summary.Total).To(Equal(50))
			Expect(summary.Valid).To(Equal(25))
			Expect(summary.Errors).To(Equal(25))
		})

		It("honours context cancellation", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := linter.LintAll(cancelled, []string{"feat: a", "feat: b"})
			Expect(err).To(MatchError(context.Canceled))
		})

		It("returns no outcomes for no messages", func() {
			outcomes, err := linter.LintAll(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(BeEmpty())
		})
	})
})
