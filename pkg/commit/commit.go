// Package commit splits raw commit messages into conventional-commit parts.
package commit

import (
	"regexp"
	"strings"
)

// ScissorsLine marks the start of the diff git appends in verbose commit mode.
const ScissorsLine = "# ------------------------ >8 ------------------------"

var (
	// type(scope)!: subject
	headerRegex = regexp.MustCompile(`^(\w*)(?:\((.*)\))?(!)?: (.*)$`)

	breakingRegex  = regexp.MustCompile(`^BREAKING[ -]CHANGE: ?(.*)$`)
	trailerRegex   = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*(?:-[A-Za-z0-9]+)+): (.*)$`)
	referenceRegex = regexp.MustCompile(
		`(?i)^(close[sd]?|fix(?:e[sd])?|resolve[sd]?|refs?|issues closed)(?::\s*|\s+)(#\d+.*)$`,
	)
	issueRegex = regexp.MustCompile(`#\d+`)

	scopeSeparators = regexp.MustCompile(`\s*[,/\\]\s*`)
)

// Trailer is a "Token: value" line from the footer.
type Trailer struct {
	Token string `json:"token"`
	Value string `json:"value"`
}

// Commit is a parsed commit message.
type Commit struct {
	// Raw is the message after comment and scissors stripping.
	Raw string

	// Header is the first line, untrimmed.
	Header string

	Type    string
	Scope   string
	Scopes  []string
	Subject string

	// Breaking is set by "!" in the header or a BREAKING CHANGE footer.
	Breaking bool

	// Body is the text between header and footer, without surrounding blank lines.
	Body string

	// Footer starts at the first trailer paragraph.
	Footer string

	// BodyLeadingBlank reports whether a blank line separates header and body.
	BodyLeadingBlank bool

	// FooterLeadingBlank reports whether a blank line precedes the footer.
	FooterLeadingBlank bool

	// Notes holds BREAKING CHANGE texts.
	Notes []string

	// References holds issue references like "#31".
	References []string

	Trailers []Trailer

	Merge  bool
	Revert bool
}

// Parse splits message into its parts. It never fails: a header that does
// not follow the conventional shape leaves Type, Scope and Subject empty.
func Parse(message string) *Commit {
	lines := Clean(message)
	c := &Commit{Raw: strings.Join(lines, "\n")}

	if len(lines) == 0 {
		return c
	}

	c.Header = lines[0]
	c.parseHeader()

	rest := lines[1:]
	footerAt := findFooter(rest)

	bodyLines := rest
	if footerAt >= 0 {
		bodyLines = rest[:footerAt]
		c.FooterLeadingBlank = footerAt > 0 && strings.TrimSpace(rest[footerAt-1]) == ""
		c.parseFooter(rest[footerAt:])
	}

	c.Body = strings.Join(trimBlank(bodyLines), "\n")
	if c.Body != "" {
		c.BodyLeadingBlank = strings.TrimSpace(rest[0]) == ""
	}

	return c
}

// Clean normalizes line endings, drops git comment lines and everything
// below the scissors line, and trims leading and trailing blank lines.
func Clean(message string) []string {
	message = strings.ReplaceAll(message, "\r\n", "\n")

	kept := make([]string, 0)

	for _, line := range strings.Split(message, "\n") {
		if line == ScissorsLine {
			break
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		kept = append(kept, line)
	}

	return trimBlank(kept)
}

// BodyLines returns the body split into lines.
func (c *Commit) BodyLines() []string {
	return splitNonEmpty(c.Body)
}

// FooterLines returns the footer split into lines.
func (c *Commit) FooterLines() []string {
	return splitNonEmpty(c.Footer)
}

func (c *Commit) parseHeader() {
	c.Merge = strings.HasPrefix(c.Header, "Merge ")
	c.Revert = strings.HasPrefix(c.Header, `Revert "`)

	m := headerRegex.FindStringSubmatch(c.Header)
	if m == nil {
		return
	}

	c.Type = m[1]
	c.Scope = m[2]
	c.Breaking = m[3] == "!"
	c.Subject = m[4]

	if c.Type == "revert" {
		c.Revert = true
	}

	if c.Scope != "" {
		c.Scopes = scopeSeparators.Split(strings.TrimSpace(c.Scope), -1)
	}
}

func (c *Commit) parseFooter(lines []string) {
	lines = trimBlank(lines)
	c.Footer = strings.Join(lines, "\n")

	for _, line := range lines {
		if m := breakingRegex.FindStringSubmatch(line); m != nil {
			c.Breaking = true
			c.Notes = append(c.Notes, m[1])
			c.Trailers = append(c.Trailers, Trailer{Token: "BREAKING CHANGE", Value: m[1]})

			continue
		}

		if m := referenceRegex.FindStringSubmatch(line); m != nil {
			c.References = append(c.References, issueRegex.FindAllString(m[2], -1)...)
			c.Trailers = append(c.Trailers, Trailer{Token: m[1], Value: m[2]})

			continue
		}

		if m := trailerRegex.FindStringSubmatch(line); m != nil {
			c.Trailers = append(c.Trailers, Trailer{Token: m[1], Value: m[2]})
		}
	}
}

// findFooter returns the index of the first line starting a footer
// paragraph, or -1.
func findFooter(lines []string) int {
	for i, line := range lines {
		if i > 0 && strings.TrimSpace(lines[i-1]) != "" {
			continue
		}

		if isFooterLine(line) {
			return i
		}
	}

	return -1
}

func isFooterLine(line string) bool {
	return breakingRegex.MatchString(line) ||
		referenceRegex.MatchString(line) ||
		trailerRegex.MatchString(line)
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)

	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return lines[start:end]
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
