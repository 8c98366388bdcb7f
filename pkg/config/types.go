// Package config provides the configuration schema for commitlint.
package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidLevel is returned when a severity level is not off, warning or error.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInvalidApplicability is returned when a rule applicability is not always or never.
	ErrInvalidApplicability = errors.New("invalid applicability")

	// ErrInvalidCase is returned when a casing mode is not one of the known modes.
	ErrInvalidCase = errors.New("invalid case")

	// ErrInvalidLimit is returned when a limit is neither a non-negative integer nor unbounded.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidAlign is returned when an alignment value is not one of the known values.
	ErrInvalidAlign = errors.New("invalid align")
)

//go:generate enumer -type=Level -trimprefix=Level -transform=lower -json -text -yaml
//go:generate enumer -type=Applicability -transform=lower -json -text -yaml
//go:generate go run github.com/smykla-skalski/commitlint/tools/enumerfix level_enumer.go applicability_enumer.go

// Level is the severity attached to a rule.
type Level int

const (
	// LevelOff disables the rule.
	LevelOff Level = iota

	// LevelWarning reports a violation without failing the lint.
	LevelWarning

	// LevelError reports a violation and fails the lint.
	LevelError
)

// levelAliases are spellings accepted besides the names and numbers.
var levelAliases = map[string]Level{"warn": LevelWarning}

// IsValid reports whether the level is one of the three defined levels.
func (l Level) IsValid() bool {
	return l.IsALevel()
}

// ParseLevel parses a level name ("off", "warning"/"warn", "error") or its
// numeric form ("0", "1", "2").
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if level, err := LevelString(s); err == nil {
		return level, nil
	}

	if level, ok := levelAliases[s]; ok {
		return level, nil
	}

	if n, err := strconv.Atoi(s); err == nil && Level(n).IsALevel() {
		return Level(n), nil
	}

	return LevelOff, errors.Wrapf(ErrInvalidLevel, "%q, must be 0|1|2 or %s", s, strings.Join(LevelStrings(), "|"))
}

// Applicability says whether a rule condition must hold or must not hold.
type Applicability int

const (
	// Always requires the rule condition to hold.
	Always Applicability = iota

	// Never requires the rule condition not to hold.
	Never
)

// IsValid reports whether a is Always or Never.
func (a Applicability) IsValid() bool {
	return a.IsAApplicability()
}

// ParseApplicability parses "always" or "never".
func ParseApplicability(s string) (Applicability, error) {
	a, err := ApplicabilityString(strings.TrimSpace(s))
	if err != nil {
		return Always, errors.Wrapf(ErrInvalidApplicability, "%q, must be always or never", s)
	}

	return a, nil
}

// CaseMode is a casing requirement used by the *-case rules.
type CaseMode string

const (
	CaseLower    CaseMode = "lower-case"
	CaseUpper    CaseMode = "upper-case"
	CaseCamel    CaseMode = "camel-case"
	CaseKebab    CaseMode = "kebab-case"
	CasePascal   CaseMode = "pascal-case"
	CaseSentence CaseMode = "sentence-case"
	CaseSnake    CaseMode = "snake-case"
	CaseStart    CaseMode = "start-case"
)

// CaseModes lists every supported casing mode.
var CaseModes = []CaseMode{
	CaseLower,
	CaseUpper,
	CaseCamel,
	CaseKebab,
	CasePascal,
	CaseSentence,
	CaseSnake,
	CaseStart,
}

// IsValid reports whether c is one of CaseModes.
func (c CaseMode) IsValid() bool {
	for _, m := range CaseModes {
		if c == m {
			return true
		}
	}

	return false
}

// ParseCaseMode parses a casing mode name. Aliases used by other tooling
// ("lowercase", "uppercase", "sentencecase", ...) are accepted.
func ParseCaseMode(s string) (CaseMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	mode := CaseMode(normalized)
	if mode.IsValid() {
		return mode, nil
	}

	if !strings.HasSuffix(normalized, "-case") && strings.HasSuffix(normalized, "case") {
		mode = CaseMode(strings.TrimSuffix(normalized, "case") + "-case")
		if mode.IsValid() {
			return mode, nil
		}
	}

	return "", errors.Wrapf(ErrInvalidCase, "%q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CaseMode) UnmarshalText(text []byte) error {
	mode, err := ParseCaseMode(string(text))
	if err != nil {
		return err
	}

	*c = mode

	return nil
}

// Unbounded is the sentinel value of a Limit without an upper bound.
const Unbounded Limit = -1

// Limit is a non-negative length limit or Unbounded.
type Limit int

// IsUnbounded reports whether the limit has no upper bound.
func (l Limit) IsUnbounded() bool {
	return l == Unbounded
}

// IsValid reports whether l is non-negative or Unbounded.
func (l Limit) IsValid() bool {
	return l >= 0 || l == Unbounded
}

// Allows reports whether n fits inside the limit.
func (l Limit) Allows(n int) bool {
	return l.IsUnbounded() || n <= int(l)
}

// String returns the decimal limit or "unbounded".
func (l Limit) String() string {
	if l.IsUnbounded() {
		return "unbounded"
	}

	return strconv.Itoa(int(l))
}

// ParseLimit parses a decimal limit or one of "unbounded", "infinity", "inf".
func ParseLimit(s string) (Limit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unbounded", "infinity", "inf":
		return Unbounded, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidLimit, "%q", s)
	}

	return LimitFromInt(int64(n))
}

// LimitFromInt converts an integer to a Limit, rejecting negative values.
func LimitFromInt(n int64) (Limit, error) {
	if n < 0 || n > math.MaxInt32 {
		return 0, errors.Wrapf(ErrInvalidLimit, "%d, must be non-negative or unbounded", n)
	}

	return Limit(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Limit) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, errors.Wrapf(ErrInvalidLimit, "%d", int(l))
	}

	return []byte(l.String()), nil
}

// MarshalJSON writes finite limits as numbers and Unbounded as "unbounded".
func (l Limit) MarshalJSON() ([]byte, error) {
	if !l.IsValid() {
		return nil, errors.Wrapf(ErrInvalidLimit, "%d", int(l))
	}

	if l.IsUnbounded() {
		return []byte(`"` + l.String() + `"`), nil
	}

	return []byte(l.String()), nil
}

// MarshalYAML writes finite limits as integers.
func (l Limit) MarshalYAML() (any, error) {
	if !l.IsValid() {
		return nil, errors.Wrapf(ErrInvalidLimit, "%d", int(l))
	}

	if l.IsUnbounded() {
		return l.String(), nil
	}

	return int(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Limit) UnmarshalText(text []byte) error {
	parsed, err := ParseLimit(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}

// Align positions custom/empty entries inside a prompt choice list.
type Align string

const (
	AlignTop    Align = "top"
	AlignBottom Align = "bottom"
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// IsValid reports whether a is a known alignment. The empty value is valid
// and means "renderer default".
func (a Align) IsValid() bool {
	switch a {
	case "", AlignTop, AlignBottom, AlignLeft, AlignCenter, AlignRight:
		return true
	default:
		return false
	}
}

// ParseAlign parses an alignment value.
func ParseAlign(s string) (Align, error) {
	a := Align(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", errors.Wrapf(ErrInvalidAlign, "%q", s)
	}

	return a, nil
}
