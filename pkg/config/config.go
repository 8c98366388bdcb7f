package config

// CurrentConfigVersion is the latest config schema version.
const CurrentConfigVersion = 1

// PresetConventional is the only built-in preset name accepted by Extends.
const PresetConventional = "conventional"

// Config is the root configuration. It is built once by the loader and
// treated as read-only afterwards.
type Config struct {
	// Version is the config schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty" yaml:"version,omitempty"`

	// Extends lists presets applied below this file's own settings.
	Extends []string `json:"extends,omitempty" koanf:"extends" toml:"extends,omitempty" yaml:"extends,omitempty"`

	// Rules is the rule table keyed by rule name.
	Rules RuleSet `json:"rules,omitempty" koanf:"rules" toml:"rules,omitempty" yaml:"rules,omitempty"`

	// Ignores declares messages exempt from every rule.
	Ignores []IgnoreConfig `json:"ignores,omitempty" koanf:"ignores" toml:"ignores,omitempty" yaml:"ignores,omitempty"`

	// DefaultIgnores enables the built-in ignores (merge, revert, fixup, ...).
	// Default: true
	DefaultIgnores *bool `json:"default_ignores,omitempty" koanf:"default_ignores" toml:"default_ignores,omitempty" yaml:"default_ignores,omitempty"`

	// HelpURL is printed below failed lint reports.
	HelpURL string `json:"help_url,omitempty" koanf:"help_url" toml:"help_url,omitempty" yaml:"help_url,omitempty"`

	// Prompt holds the interactive prompt schema.
	Prompt *PromptConfig `json:"prompt,omitempty" koanf:"prompt" toml:"prompt,omitempty" yaml:"prompt,omitempty"`
}

// UseDefaultIgnores returns whether built-in ignores apply.
// Returns true if DefaultIgnores is nil.
func (c *Config) UseDefaultIgnores() bool {
	if c.DefaultIgnores == nil {
		return true
	}

	return *c.DefaultIgnores
}

// Rule returns the named rule or nil.
func (c *Config) Rule(name string) *Rule {
	if c == nil {
		return nil
	}

	return c.Rules.Get(name)
}

// GetPrompt returns the prompt config, creating it if it doesn't exist.
func (c *Config) GetPrompt() *PromptConfig {
	if c.Prompt == nil {
		c.Prompt = &PromptConfig{}
	}

	return c.Prompt
}

// GetRules returns the rule table, creating it if it doesn't exist.
func (c *Config) GetRules() RuleSet {
	if c.Rules == nil {
		c.Rules = RuleSet{}
	}

	return c.Rules
}
