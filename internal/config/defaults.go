// Package config provides internal configuration loading and processing.
package config

import (
	"maps"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

// DefaultHelpURL is printed below failed lint reports.
const DefaultHelpURL = "https://github.com/conventional-changelog/commitlint/#what-is-commitlint"

// Default rule parameters.
const (
	defaultSubjectMaxLength    = 50
	defaultHeaderMaxLength     = 72
	defaultBodyMaxLineLength   = 72
	defaultFooterMaxLineLength = 72
	defaultBreaklineNumber     = 100

	conventionalMaxLength = 100
)

// DefaultConfig returns a Config with all default values populated: the
// conventional preset overlaid with the project rule table.
func DefaultConfig() *config.Config {
	return &config.Config{
		Version:        config.CurrentConfigVersion,
		Extends:        []string{config.PresetConventional},
		Rules:          MergeRules(ConventionalRules(), DefaultRules()),
		Ignores:        DefaultIgnores(),
		DefaultIgnores: config.BoolPtr(true),
		HelpURL:        DefaultHelpURL,
		Prompt:         DefaultPromptConfig(),
	}
}

// MergeRules overlays rule tables left to right. A rule present in a later
// table replaces the earlier definition as a whole.
func MergeRules(tables ...config.RuleSet) config.RuleSet {
	merged := config.RuleSet{}

	for _, table := range tables {
		maps.Copy(merged, table)
	}

	return merged
}

// Presets returns the built-in presets by name.
func Presets() map[string]func() config.RuleSet {
	return map[string]func() config.RuleSet{
		config.PresetConventional: ConventionalRules,
	}
}

// ConventionalRules returns the rule table of the conventional preset.
func ConventionalRules() config.RuleSet {
	return config.RuleSet{
		config.RuleBodyLeadingBlank: {Level: config.LevelWarning, When: config.Always},
		config.RuleBodyMaxLineLength: {
			Level: config.LevelError,
			When:  config.Always,
			Limit: config.IntPtr(conventionalMaxLength),
		},
		config.RuleFooterLeadingBlank: {Level: config.LevelWarning, When: config.Always},
		config.RuleFooterMaxLineLength: {
			Level: config.LevelError,
			When:  config.Always,
			Limit: config.IntPtr(conventionalMaxLength),
		},
		config.RuleHeaderMaxLength: {
			Level: config.LevelError,
			When:  config.Always,
			Limit: config.IntPtr(conventionalMaxLength),
		},
		config.RuleHeaderTrim: {Level: config.LevelError, When: config.Always},
		config.RuleSubjectCase: {
			Level: config.LevelError,
			When:  config.Never,
			Cases: []config.CaseMode{
				config.CaseSentence,
				config.CaseStart,
				config.CasePascal,
				config.CaseUpper,
			},
		},
		config.RuleSubjectEmpty:    {Level: config.LevelError, When: config.Never},
		config.RuleSubjectFullStop: {Level: config.LevelError, When: config.Never, Character: "."},
		config.RuleTypeCase: {
			Level: config.LevelError,
			When:  config.Always,
			Cases: []config.CaseMode{config.CaseLower},
		},
		config.RuleTypeEmpty: {Level: config.LevelError, When: config.Never},
		config.RuleTypeEnum: {
			Level: config.LevelError,
			When:  config.Always,
			Values: config.Values(
				"build", "chore", "ci", "docs", "feat", "fix",
				"perf", "refactor", "revert", "style", "test",
			),
		},
	}
}

// DefaultRules returns the project rule table applied on top of the preset.
func DefaultRules() config.RuleSet {
	return config.RuleSet{
		config.RuleTypeEnum: {
			Level: config.LevelError,
			When:  config.Always,
			Values: []config.AllowedValue{
				{Value: "feat", Description: "新功能"},
				{Value: "fix", Description: "修复bug"},
				{Value: "docs", Description: "文档更新"},
				{Value: "style", Description: "代码格式化"},
				{Value: "refactor", Description: "代码重构"},
				{Value: "test", Description: "测试相关"},
				{Value: "chore", Description: "构建/工具相关"},
				{Value: "perf", Description: "性能优化"},
				{Value: "ci", Description: "CI/CD相关"},
				{Value: "build", Description: "构建系统"},
				{Value: "revert", Description: "回滚提交"},
			},
		},
		config.RuleScopeEnum: {
			Level: config.LevelError,
			When:  config.Always,
			Values: []config.AllowedValue{
				{Value: "api", Description: "API接口相关"},
				{Value: "auth", Description: "认证授权"},
				{Value: "db", Description: "数据库相关"},
				{Value: "docker", Description: "Docker相关"},
				{Value: "config", Description: "配置文件"},
				{Value: "middleware", Description: "中间件"},
				{Value: "model", Description: "数据模型"},
				{Value: "service", Description: "业务逻辑"},
				{Value: "handler", Description: "请求处理"},
				{Value: "test", Description: "测试相关"},
				{Value: "ci", Description: "CI/CD"},
				{Value: "docs", Description: "文档"},
				{Value: "user", Description: "用户相关"},
				{Value: "post", Description: "博客相关"},
				{Value: "server", Description: "服务器相关"},
				{Value: "client", Description: "客户端相关"},
				{Value: "utils", Description: "工具函数"},
				{Value: "deps", Description: "依赖相关"},
			},
		},
		config.RuleSubjectEmpty:    {Level: config.LevelError, When: config.Never},
		config.RuleSubjectFullStop: {Level: config.LevelError, When: config.Never, Character: "."},
		config.RuleSubjectCase: {
			Level: config.LevelError,
			When:  config.Always,
			Cases: []config.CaseMode{config.CaseLower},
		},
		config.RuleSubjectMaxLength: {
			Level: config.LevelError,
			When:  config.Always,
			Limit: config.IntPtr(defaultSubjectMaxLength),
		},
		config.RuleTypeEmpty: {Level: config.LevelError, When: config.Never},
		config.RuleTypeCase: {
			Level: config.LevelError,
			When:  config.Always,
			Cases: []config.CaseMode{config.CaseLower},
		},
		config.RuleScopeCase: {
			Level: config.LevelError,
			When:  config.Always,
			Cases: []config.CaseMode{config.CaseLower},
		},
		config.RuleBodyMaxLineLength: {
			Level: config.LevelError,
			When:  config.Always,
			Limit: config.IntPtr(defaultBodyMaxLineLength),
		},
		config.RuleFooterMaxLineLength: {
			Level: config.LevelError,
			When:  config.Always,
			Limit: config.IntPtr(defaultFooterMaxLineLength),
		},
		config.RuleHeaderMaxLength: {
			Level: config.LevelError,
			When:  config.Always,
			Limit: config.IntPtr(defaultHeaderMaxLength),
		},
	}
}

// DefaultIgnores returns the project ignore predicates.
func DefaultIgnores() []config.IgnoreConfig {
	return []config.IgnoreConfig{
		{Name: "merge", Contains: "Merge"},
		{Name: "revert", Contains: "Revert"},
	}
}

// DefaultPromptConfig returns the default prompt schema.
func DefaultPromptConfig() *config.PromptConfig {
	return &config.PromptConfig{
		Messages: &config.PromptMessages{
			Type:          "选择你要提交的类型:",
			Scope:         "选择一个scope (可选):",
			CustomScope:   "请输入自定义的scope:",
			Subject:       "填写简短精炼的变更描述:",
			Body:          `填写更加详细的变更描述 (可选)。使用 "|" 换行:`,
			Breaking:      "列举非兼容性重大的变更 (可选):",
			Footer:        "列举出所有变更的 ISSUES CLOSED (可选)。 例如: #31, #34:",
			ConfirmCommit: "确认提交?",
		},
		Types: []config.Choice{
			{Value: "feat", Name: "feat:     新功能"},
			{Value: "fix", Name: "fix:      修复"},
			{Value: "docs", Name: "docs:     文档变更"},
			{Value: "style", Name: "style:    代码格式(不影响代码运行的变动)"},
			{Value: "refactor", Name: "refactor: 重构(既不是增加feature，也不是修复bug)"},
			{Value: "perf", Name: "perf:     性能优化"},
			{Value: "test", Name: "test:     增加测试"},
			{Value: "chore", Name: "chore:    构建过程或辅助工具的变动"},
			{Value: "revert", Name: "revert:   回退"},
			{Value: "build", Name: "build:    打包"},
			{Value: "ci", Name: "ci:       CI/CD相关"},
		},
		UseEmoji:               false,
		EmojiAlign:             config.AlignCenter,
		AllowCustomScopes:      true,
		AllowEmptyScopes:       true,
		CustomScopesAlign:      config.AlignBottom,
		CustomScopesAlias:      "custom",
		EmptyScopesAlias:       "empty",
		UpperCaseSubject:       false,
		MarkBreakingChangeMode: false,
		AllowBreakingChanges:   []string{"feat", "fix"},
		BreaklineNumber:        defaultBreaklineNumber,
		BreaklineChar:          "|",
		IssuePrefixes: []config.Choice{
			{Value: "closed", Name: "closed:   ISSUES has been processed"},
		},
		CustomIssuePrefixAlign: config.AlignTop,
		EmptyIssuePrefixAlias:  "skip",
		CustomIssuePrefixAlias: "custom",
		AllowCustomIssuePrefix: true,
		AllowEmptyIssuePrefix:  true,
		ConfirmColorize:        true,
		MaxHeaderLength:        config.Unbounded,
		MaxSubjectLength:       config.Unbounded,
		MinSubjectLength:       0,
	}
}
