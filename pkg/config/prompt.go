package config

// PromptConfig holds the labels, choice lists and toggles consumed by an
// interactive commit prompt. Its limits are independent of the rule table.
type PromptConfig struct {
	// Messages are the question labels.
	Messages *PromptMessages `json:"messages,omitempty" koanf:"messages" toml:"messages,omitempty" yaml:"messages,omitempty"`

	// Types is the ordered list of commit type choices.
	Types []Choice `json:"types,omitempty" koanf:"types" toml:"types,omitempty" yaml:"types,omitempty"`

	// Scopes is the ordered list of scope choices. When empty, renderers fall
	// back to the scope-enum rule values.
	Scopes []Choice `json:"scopes,omitempty" koanf:"scopes" toml:"scopes,omitempty" yaml:"scopes,omitempty"`

	// ScopeOverrides maps a commit type to its own scope choices.
	ScopeOverrides map[string][]Choice `json:"scope_overrides,omitempty" koanf:"scope_overrides" toml:"scope_overrides,omitempty" yaml:"scope_overrides,omitempty"`

	UseEmoji   bool  `json:"use_emoji" koanf:"use_emoji" toml:"use_emoji" yaml:"use_emoji"`
	EmojiAlign Align `json:"emoji_align,omitempty" koanf:"emoji_align" toml:"emoji_align,omitempty" yaml:"emoji_align,omitempty"`

	AllowCustomScopes bool   `json:"allow_custom_scopes" koanf:"allow_custom_scopes" toml:"allow_custom_scopes" yaml:"allow_custom_scopes"`
	AllowEmptyScopes  bool   `json:"allow_empty_scopes" koanf:"allow_empty_scopes" toml:"allow_empty_scopes" yaml:"allow_empty_scopes"`
	CustomScopesAlign Align  `json:"custom_scopes_align,omitempty" koanf:"custom_scopes_align" toml:"custom_scopes_align,omitempty" yaml:"custom_scopes_align,omitempty"`
	CustomScopesAlias string `json:"custom_scopes_alias,omitempty" koanf:"custom_scopes_alias" toml:"custom_scopes_alias,omitempty" yaml:"custom_scopes_alias,omitempty"`
	EmptyScopesAlias  string `json:"empty_scopes_alias,omitempty" koanf:"empty_scopes_alias" toml:"empty_scopes_alias,omitempty" yaml:"empty_scopes_alias,omitempty"`

	UpperCaseSubject       bool `json:"upper_case_subject" koanf:"upper_case_subject" toml:"upper_case_subject" yaml:"upper_case_subject"`
	MarkBreakingChangeMode bool `json:"mark_breaking_change_mode" koanf:"mark_breaking_change_mode" toml:"mark_breaking_change_mode" yaml:"mark_breaking_change_mode"`

	// AllowBreakingChanges lists the types for which the breaking-change question is asked.
	AllowBreakingChanges []string `json:"allow_breaking_changes,omitempty" koanf:"allow_breaking_changes" toml:"allow_breaking_changes,omitempty" yaml:"allow_breaking_changes,omitempty"`

	// BreaklineNumber is the column at which long body text is wrapped.
	BreaklineNumber int `json:"breakline_number,omitempty" koanf:"breakline_number" toml:"breakline_number,omitempty" yaml:"breakline_number,omitempty"`

	// BreaklineChar is typed by the user to force a line break.
	BreaklineChar string `json:"breakline_char,omitempty" koanf:"breakline_char" toml:"breakline_char,omitempty" yaml:"breakline_char,omitempty"`

	SkipQuestions []string `json:"skip_questions,omitempty" koanf:"skip_questions" toml:"skip_questions,omitempty" yaml:"skip_questions,omitempty"`

	IssuePrefixes          []Choice `json:"issue_prefixes,omitempty" koanf:"issue_prefixes" toml:"issue_prefixes,omitempty" yaml:"issue_prefixes,omitempty"`
	CustomIssuePrefixAlign Align    `json:"custom_issue_prefix_align,omitempty" koanf:"custom_issue_prefix_align" toml:"custom_issue_prefix_align,omitempty" yaml:"custom_issue_prefix_align,omitempty"`
	EmptyIssuePrefixAlias  string   `json:"empty_issue_prefix_alias,omitempty" koanf:"empty_issue_prefix_alias" toml:"empty_issue_prefix_alias,omitempty" yaml:"empty_issue_prefix_alias,omitempty"`
	CustomIssuePrefixAlias string   `json:"custom_issue_prefix_alias,omitempty" koanf:"custom_issue_prefix_alias" toml:"custom_issue_prefix_alias,omitempty" yaml:"custom_issue_prefix_alias,omitempty"`
	AllowCustomIssuePrefix bool     `json:"allow_custom_issue_prefix" koanf:"allow_custom_issue_prefix" toml:"allow_custom_issue_prefix" yaml:"allow_custom_issue_prefix"`
	AllowEmptyIssuePrefix  bool     `json:"allow_empty_issue_prefix" koanf:"allow_empty_issue_prefix" toml:"allow_empty_issue_prefix" yaml:"allow_empty_issue_prefix"`

	ConfirmColorize bool `json:"confirm_colorize" koanf:"confirm_colorize" toml:"confirm_colorize" yaml:"confirm_colorize"`

	// MaxHeaderLength may be "unbounded".
	MaxHeaderLength Limit `json:"max_header_length" koanf:"max_header_length" toml:"max_header_length" yaml:"max_header_length"`

	// MaxSubjectLength may be "unbounded".
	MaxSubjectLength Limit `json:"max_subject_length" koanf:"max_subject_length" toml:"max_subject_length" yaml:"max_subject_length"`

	MinSubjectLength int `json:"min_subject_length" koanf:"min_subject_length" toml:"min_subject_length" yaml:"min_subject_length"`

	DefaultBody    string `json:"default_body,omitempty" koanf:"default_body" toml:"default_body,omitempty" yaml:"default_body,omitempty"`
	DefaultIssues  string `json:"default_issues,omitempty" koanf:"default_issues" toml:"default_issues,omitempty" yaml:"default_issues,omitempty"`
	DefaultScope   string `json:"default_scope,omitempty" koanf:"default_scope" toml:"default_scope,omitempty" yaml:"default_scope,omitempty"`
	DefaultSubject string `json:"default_subject,omitempty" koanf:"default_subject" toml:"default_subject,omitempty" yaml:"default_subject,omitempty"`
}

// PromptMessages are the labels shown for each prompt question.
type PromptMessages struct {
	Type          string `json:"type,omitempty" koanf:"type" toml:"type,omitempty" yaml:"type,omitempty"`
	Scope         string `json:"scope,omitempty" koanf:"scope" toml:"scope,omitempty" yaml:"scope,omitempty"`
	CustomScope   string `json:"custom_scope,omitempty" koanf:"custom_scope" toml:"custom_scope,omitempty" yaml:"custom_scope,omitempty"`
	Subject       string `json:"subject,omitempty" koanf:"subject" toml:"subject,omitempty" yaml:"subject,omitempty"`
	Body          string `json:"body,omitempty" koanf:"body" toml:"body,omitempty" yaml:"body,omitempty"`
	Breaking      string `json:"breaking,omitempty" koanf:"breaking" toml:"breaking,omitempty" yaml:"breaking,omitempty"`
	Footer        string `json:"footer,omitempty" koanf:"footer" toml:"footer,omitempty" yaml:"footer,omitempty"`
	ConfirmCommit string `json:"confirm_commit,omitempty" koanf:"confirm_commit" toml:"confirm_commit,omitempty" yaml:"confirm_commit,omitempty"`
}

// Choice is one entry of a prompt selection list.
type Choice struct {
	Value string `json:"value" koanf:"value" toml:"value" yaml:"value"`
	Name  string `json:"name,omitempty" koanf:"name" toml:"name,omitempty" yaml:"name,omitempty"`
	Emoji string `json:"emoji,omitempty" koanf:"emoji" toml:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// DisplayName returns Name, or Value when no name is set.
func (c Choice) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}

	return c.Value
}

// ChoiceValues returns the value tokens of choices in order.
func ChoiceValues(choices []Choice) []string {
	values := make([]string, 0, len(choices))
	for _, c := range choices {
		values = append(values, c.Value)
	}

	return values
}
