// Package prompt asks line-based questions on a reader/writer pair.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyInput is returned for an empty answer to a question without default.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput is returned for an answer the question does not accept.
	ErrInvalidInput = errors.New("invalid input")
)

// ClearListAnswer is the List answer that selects nothing.
const ClearListAnswer = "-"

// Prompter asks questions and returns the answers.
type Prompter interface {
	// Input asks for one line of text.
	Input(prompt string, defaultValue string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(prompt string, defaultValue bool) (bool, error)

	// List asks for a comma separated list. An empty answer keeps
	// defaultValue and ClearListAnswer returns an empty list.
	List(prompt string, defaultValue []string) ([]string, error)
}

// LinePrompter implements Prompter with one answer per line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdPrompter asks on stdout and reads stdin.
func NewStdPrompter() *LinePrompter {
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// NewLinePrompter asks on w and reads r.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(r), out: w}
}

// ask writes "label [hint]: " and returns the trimmed answer. A last line
// without a trailing newline still counts as an answer.
func (p *LinePrompter) ask(label, hint string) (string, error) {
	question := label + ": "
	if hint != "" {
		question = fmt.Sprintf("%s [%s]: ", label, hint)
	}

	if _, err := io.WriteString(p.out, question); err != nil {
		return "", errors.Wrap(err, "writing prompt")
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrapf(err, "reading answer to %q", label)
	}

	return strings.TrimSpace(line), nil
}

// Input implements Prompter.
func (p *LinePrompter) Input(prompt string, defaultValue string) (string, error) {
	answer, err := p.ask(prompt, defaultValue)
	if err != nil {
		return "", err
	}

	switch {
	case answer != "":
		return answer, nil
	case defaultValue != "":
		return defaultValue, nil
	default:
		return "", ErrEmptyInput
	}
}

// Confirm implements Prompter.
func (p *LinePrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	answer, err := p.ask(prompt, hint)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "":
		return defaultValue, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidInput, "expected y/n, got %q", answer)
	}
}

// List implements Prompter.
func (p *LinePrompter) List(prompt string, defaultValue []string) ([]string, error) {
	answer, err := p.Input(prompt, strings.Join(defaultValue, ", "))

	switch {
	case errors.Is(err, ErrEmptyInput):
		return nil, nil
	case err != nil:
		return nil, err
	case answer == ClearListAnswer:
		return nil, nil
	default:
		return ParseList(answer), nil
	}
}

// ParseList splits on commas and whitespace into unique lower-case tokens,
// keeping first-seen order.
func ParseList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	tokens := make([]string, 0, len(fields))

	for _, f := range fields {
		token := strings.ToLower(f)
		if !slices.Contains(tokens, token) {
			tokens = append(tokens, token)
		}
	}

	return tokens
}
