// Package main rewrites enumer output to report errors through cockroachdb/errors.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	errorsImport = `"github.com/cockroachdb/errors"`
	fileMode     = 0o644
)

// ErrUsage is returned when no file is given.
var ErrUsage = errors.New("usage: enumerfix <file>...")

var importBlock = regexp.MustCompile(`(?s)import \((.*?)\n\)`)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "enumerfix: %v\n", err)
		os.Exit(1)
	}
}

func run(files []string) error {
	if len(files) == 0 {
		return ErrUsage
	}

	for _, name := range files {
		//nolint:gosec // paths come from go:generate directives
		content, err := os.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}

		if err := os.WriteFile(name, []byte(fix(string(content))), fileMode); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}

	return nil
}

// fix swaps fmt.Errorf for errors.Newf and adjusts the imports. fmt stays
// when String still formats unknown values with it.
func fix(src string) string {
	src = strings.ReplaceAll(src, "fmt.Errorf(", "errors.Newf(")

	if strings.Contains(src, errorsImport) {
		return src
	}

	if !strings.Contains(src, "fmt.") {
		return strings.Replace(src, `"fmt"`, errorsImport, 1)
	}

	return importBlock.ReplaceAllString(src, "import ($1\n\t"+errorsImport+"\n)")
}
