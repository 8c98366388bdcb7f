package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

var _ = Describe("Rule", func() {
	It("is inactive when off or nil", func() {
		var nilRule *config.Rule
		Expect(nilRule.IsActive()).To(BeFalse())
		Expect((&config.Rule{Level: config.LevelOff}).IsActive()).To(BeFalse())
		Expect((&config.Rule{Level: config.LevelWarning}).IsActive()).To(BeTrue())
	})

	It("exposes tokens in declaration order", func() {
		rule := &config.Rule{Values: []config.AllowedValue{
			{Value: "feat", Description: "new feature"},
			{Value: "fix"},
		}}

		Expect(rule.Tokens()).To(Equal([]string{"feat", "fix"}))
		Expect(rule.HasToken("fix")).To(BeTrue())
		Expect(rule.HasToken("wip")).To(BeFalse())
	})

	It("falls back when no limit is configured", func() {
		Expect((&config.Rule{}).LimitOr(100)).To(Equal(100))
		Expect((&config.Rule{Limit: config.IntPtr(50)}).LimitOr(100)).To(Equal(50))
	})

	DescribeTable("Describe",
		func(rule config.Rule, expected string) {
			Expect(rule.Describe()).To(Equal(expected))
		},
		Entry("enum",
			config.Rule{Level: config.LevelError, When: config.Always, Values: config.Values("feat", "fix")},
			"[error, always, [feat, fix]]"),
		Entry("limit",
			config.Rule{Level: config.LevelError, When: config.Always, Limit: config.IntPtr(72)},
			"[error, always, 72]"),
		Entry("case",
			config.Rule{Level: config.LevelWarning, When: config.Never, Cases: []config.CaseMode{config.CaseUpper}},
			"[warning, never, [upper-case]]"),
		Entry("character",
			config.Rule{Level: config.LevelError, When: config.Never, Character: "."},
			"[error, never, '.']"),
		Entry("no parameter",
			config.Rule{Level: config.LevelError, When: config.Never},
			"[error, never]"),
	)
})

var _ = Describe("RuleSet", func() {
	It("lists names in lexical order", func() {
		rs := config.RuleSet{
			config.RuleTypeEnum:   {},
			config.RuleBodyEmpty:  {},
			config.RuleScopeEnum:  {},
			config.RuleHeaderTrim: {},
		}

		Expect(rs.Names()).To(Equal([]string{"body-empty", "header-trim", "scope-enum", "type-enum"}))
	})

	It("returns nil for missing rules and nil sets", func() {
		var rs config.RuleSet
		Expect(rs.Get(config.RuleTypeEnum)).To(BeNil())
	})
})

var _ = Describe("Config", func() {
	It("uses default ignores unless disabled", func() {
		cfg := &config.Config{}
		Expect(cfg.UseDefaultIgnores()).To(BeTrue())

		cfg.DefaultIgnores = config.BoolPtr(false)
		Expect(cfg.UseDefaultIgnores()).To(BeFalse())
	})

	It("lazily creates prompt and rules", func() {
		cfg := &config.Config{}
		Expect(cfg.GetPrompt()).NotTo(BeNil())
		Expect(cfg.GetRules()).NotTo(BeNil())
		Expect(cfg.Rule(config.RuleTypeEnum)).To(BeNil())
	})
})
