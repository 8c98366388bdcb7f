package lint

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

// Quoted fragments are exempt from casing checks.
var quotedRegex = regexp.MustCompile("`[^`]*`|\"[^\"]*\"|'[^']*'")

// matchesCase reports whether s already is in the given casing mode.
// Inputs that convert to nothing or start with a digit always match.
func matchesCase(s string, mode config.CaseMode) bool {
	s = strings.TrimSpace(quotedRegex.ReplaceAllString(s, ""))

	converted := toCase(s, mode)
	if converted == "" {
		return true
	}

	if r, _ := utf8.DecodeRuneInString(converted); unicode.IsDigit(r) {
		return true
	}

	return converted == s
}

// matchesAnyCase reports whether s matches at least one mode.
func matchesAnyCase(s string, modes []config.CaseMode) bool {
	for _, mode := range modes {
		if matchesCase(s, mode) {
			return true
		}
	}

	return false
}

func toCase(s string, mode config.CaseMode) string {
	switch mode {
	case config.CaseLower:
		return strings.ToLower(s)
	case config.CaseUpper:
		return strings.ToUpper(s)
	case config.CaseSentence:
		return upperFirst(s)
	case config.CaseCamel:
		return camel(words(s))
	case config.CasePascal:
		return upperFirst(camel(words(s)))
	case config.CaseKebab:
		return strings.ToLower(strings.Join(words(s), "-"))
	case config.CaseSnake:
		return strings.ToLower(strings.Join(words(s), "_"))
	case config.CaseStart:
		parts := words(s)
		for i, w := range parts {
			parts[i] = upperFirst(w)
		}

		return strings.Join(parts, " ")
	default:
		return s
	}
}

// words splits s on non-alphanumeric runes and lower-to-upper transitions.
func words(s string) []string {
	var (
		result  []string
		current []rune
		prev    rune
	)

	flush := func() {
		if len(current) > 0 {
			result = append(result, string(current))
			current = current[:0]
		}
	}

	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()

			current = append(current, r)
		default:
			current = append(current, r)
		}

		prev = r
	}

	flush()

	return result
}

func camel(parts []string) string {
	var b strings.Builder

	for i, w := range parts {
		w = strings.ToLower(w)
		if i > 0 {
			w = upperFirst(w)
		}

		b.WriteString(w)
	}

	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
