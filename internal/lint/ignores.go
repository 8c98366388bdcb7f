package lint

import (
	"regexp"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

// Messages generated by git or hosting platforms.
var defaultIgnorePatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"merge-pull-request", regexp.MustCompile(`^Merge pull request`)},
	{"merge-branch", regexp.MustCompile(`(?m)^(Merge (.*?) into (.*?)|Merge branch (.*?))$`)},
	{"merge-tag", regexp.MustCompile(`(?m)^Merge tag (.*?)$`)},
	{"merge-remote-tracking", regexp.MustCompile(`^Merge remote-tracking branch`)},
	{"merged-pr", regexp.MustCompile(`^(Merged (.*?)(in|into) (.*)|Merged PR (.*): (.*))`)},
	{"automatic-merge", regexp.MustCompile(`^(Automatic merge|Auto-merged (.*?) into (.*))`)},
	{"revert", regexp.MustCompile(`^(R|r)evert (.*)`)},
	{"reapply", regexp.MustCompile(`^(R|r)eapply (.*)`)},
	{"autosquash", regexp.MustCompile(`^(amend|fixup|squash)!`)},
	{"initial-commit", regexp.MustCompile(`^Initial commit\s*$`)},
}

// DefaultIgnores returns the built-in ignore predicates.
func DefaultIgnores() []config.Ignore {
	ignores := make([]config.Ignore, 0, len(defaultIgnorePatterns))

	for _, p := range defaultIgnorePatterns {
		re := p.pattern
		ignores = append(ignores, config.Ignore{
			Name:  p.name,
			Match: re.MatchString,
		})
	}

	return ignores
}
