package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/maps"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".commitlint"

	// ProjectConfigDir is the directory name for project configuration.
	ProjectConfigDir = ".commitlint"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = "config.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "commitlint.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "COMMITLINT_"

	// envKeySeparator separates nesting levels in environment variable names,
	// since single underscores appear inside keys.
	envKeySeparator = "__"

	rulesKey = "rules"
)

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (COMMITLINT_*)
// 3. Project Config (.commitlint/config.toml or commitlint.toml)
// 4. Global Config (~/.commitlint/config.toml)
// 5. Presets named by extends
// 6. Defaults
type KoanfLoader struct {
	k       *koanf.Koanf
	homeDir string
	workDir string
}

// NewKoanfLoader creates a new KoanfLoader with default directories.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDirs(homeDir, workDir), nil
}

// NewKoanfLoaderWithDirs creates a new KoanfLoader with custom directories (for testing).
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{
		k:       koanf.New("."),
		homeDir: homeDir,
		workDir: workDir,
	}
}

// Load loads configuration from all sources with precedence and validates it.
//
// Rule tables have special merge semantics: a rule defined by a higher
// source replaces the lower definition as a whole, rules with different
// names are combined.
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(flags)
	if err != nil {
		return nil, err
	}

	return validated(cfg)
}

// LoadWithoutValidation loads configuration without running validation.
// This is useful for tools that need to show or fix invalid configurations.
func (l *KoanfLoader) LoadWithoutValidation(flags map[string]any) (*config.Config, error) {
	var paths []string

	if l.HasGlobalConfig() {
		paths = append(paths, l.GlobalConfigPath())
	}

	if projectPath := l.findProjectConfig(); projectPath != "" {
		paths = append(paths, projectPath)
	}

	return l.load(paths, flags)
}

// LoadFile loads configuration from defaults, the given file, environment
// and flags, skipping global and project discovery.
func (l *KoanfLoader) LoadFile(path string, flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadFileWithoutValidation(path, flags)
	if err != nil {
		return nil, err
	}

	return validated(cfg)
}

// LoadFileWithoutValidation is LoadFile without the validation step.
func (l *KoanfLoader) LoadFileWithoutValidation(path string, flags map[string]any) (*config.Config, error) {
	if !fileExists(path) {
		return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
	}

	return l.load([]string{path}, flags)
}

// Sources returns the configuration files that Load would read, lowest precedence first.
func (l *KoanfLoader) Sources() []string {
	var paths []string

	if l.HasGlobalConfig() {
		paths = append(paths, l.GlobalConfigPath())
	}

	if projectPath := l.findProjectConfig(); projectPath != "" {
		paths = append(paths, projectPath)
	}

	return paths
}

func validated(cfg *config.Config) (*config.Config, error) {
	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

func (l *KoanfLoader) load(paths []string, flags map[string]any) (*config.Config, error) {
	// Reset koanf instance for fresh load
	l.k = koanf.New(".")

	// 1. Defaults, without rules: rule tables are merged by name below
	defaults, err := defaultsToMap()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build defaults")
	}

	delete(defaults, rulesKey)

	if err := l.k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Config files, tracking each file's own rule table
	ruleLayers := make([]config.RuleSet, 0, len(paths))

	for _, path := range paths {
		fileRules, err := l.loadTOMLFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load config %s", path)
		}

		ruleLayers = append(ruleLayers, fileRules)
	}

	// 3. Environment variables (COMMITLINT_*) and 4. CLI flags, collected
	// apart so their rule entries can be applied field by field
	overrides := koanf.New(".")

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: l.envTransform,
	}

	if err := overrides.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := overrides.Load(confmap.Provider(flagsToConfig(flags), "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	ruleOverrides := overrides.Cut(rulesKey)

	settings := overrides.Raw()
	delete(settings, rulesKey)

	if err := l.k.Load(confmap.Provider(settings, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load overrides")
	}

	var cfg config.Config
	if err := l.unmarshal(l.k, "", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Presets are the base, then project defaults, then files in order
	tables := make([]config.RuleSet, 0, len(cfg.Extends)+1+len(ruleLayers))
	presets := Presets()

	for _, name := range cfg.Extends {
		if preset, ok := presets[name]; ok {
			tables = append(tables, preset())
		}
	}

	tables = append(tables, DefaultRules())
	tables = append(tables, ruleLayers...)

	cfg.Rules = MergeRules(tables...)

	if err := l.applyRuleOverrides(cfg.Rules, ruleOverrides); err != nil {
		return nil, errors.Wrap(err, "failed to apply rule overrides")
	}

	return &cfg, nil
}

// loadTOMLFile loads a TOML configuration file with security checks and
// returns the rule table it declares.
func (l *KoanfLoader) loadTOMLFile(path string) (config.RuleSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	// Security check: reject world-writable files
	if info.Mode().Perm()&0o002 != 0 {
		return nil, errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return nil, err
	}

	var rules config.RuleSet
	if fk.Exists(rulesKey) {
		if err := l.unmarshal(fk, rulesKey, &rules); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal rules")
		}
	}

	// Merge everything but rules into the layered instance
	raw := fk.Raw()
	delete(raw, rulesKey)

	if err := l.k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, err
	}

	return rules, nil
}

func (*KoanfLoader) unmarshal(k *koanf.Koanf, path string, out any) error {
	return k.UnmarshalWithConf(path, out, koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: CustomDecoderConfig(out),
	})
}

// applyRuleOverrides decodes env and flag rule entries on top of the merged
// table. Unlike file layers they only replace the fields they name, so
// COMMITLINT_RULES__SUBJECT_MAX_LENGTH__LIMIT=60 keeps level and when.
func (l *KoanfLoader) applyRuleOverrides(rules config.RuleSet, overrides *koanf.Koanf) error {
	for name := range overrides.Raw() {
		var rule config.Rule
		if base := rules[name]; base != nil {
			rule = *base
		}

		// Reset shared fields that the override replaces
		if overrides.Exists(name + ".values") {
			rule.Values = nil
		}

		if overrides.Exists(name + ".cases") {
			rule.Cases = nil
		}

		if overrides.Exists(name + ".limit") {
			rule.Limit = nil
		}

		if err := l.unmarshal(overrides, name, &rule); err != nil {
			return errors.Wrapf(err, "rule %s", name)
		}

		rules[name] = &rule
	}

	return nil
}

// envTransform transforms environment variable names to config paths.
// COMMITLINT_PROMPT__USE_EMOJI → prompt.use_emoji
// COMMITLINT_RULES__TYPE_ENUM__VALUES=feat,fix → rules.type-enum.values
func (*KoanfLoader) envTransform(key, value string) (string, any) {
	path := configPath(strings.TrimPrefix(key, EnvPrefix), envKeySeparator)

	if strings.HasPrefix(path, rulesKey+".") && isListKey(path) {
		return path, splitList(value)
	}

	return path, value
}

// configPath maps an env or flag key to a koanf path. Rule names keep their
// dashes, every other segment uses underscores like the koanf tags.
func configPath(key, sep string) string {
	parts := strings.Split(strings.ToLower(key), sep)

	for i, part := range parts {
		if i == 1 && parts[0] == rulesKey {
			parts[i] = strings.ReplaceAll(part, "_", "-")

			continue
		}

		parts[i] = strings.ReplaceAll(part, "-", "_")
	}

	return strings.Join(parts, ".")
}

func isListKey(path string) bool {
	return strings.HasSuffix(path, ".values") || strings.HasSuffix(path, ".cases")
}

// splitList splits a comma separated env value, dropping empty items.
func splitList(value string) []string {
	items := make([]string, 0)

	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPaths returns the paths to check for project configuration.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	return []string{
		filepath.Join(l.workDir, ProjectConfigDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
	}
}

// findProjectConfig checks for project config files and returns the first found.
func (l *KoanfLoader) findProjectConfig() string {
	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// FindProjectConfigPath returns the path to the project config file if one exists.
// Returns empty string if no project config file is found.
func (l *KoanfLoader) FindProjectConfigPath() string {
	return l.findProjectConfig()
}

// flagsToConfig converts dotted CLI flag keys (e.g. "help-url",
// "rules.subject-max-length.limit") to a nested configuration map.
func flagsToConfig(flags map[string]any) map[string]any {
	flat := make(map[string]any, len(flags))

	for key, value := range flags {
		flat[configPath(key, ".")] = value
	}

	return maps.Unflatten(flat, ".")
}

// defaultsToMap converts DefaultConfig to a map for koanf loading by
// encoding it the same way the writer does.
func defaultsToMap() (map[string]any, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(DefaultConfig()); err != nil {
		return nil, err
	}

	return tomlparser.Parser().Unmarshal(buf.Bytes())
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
