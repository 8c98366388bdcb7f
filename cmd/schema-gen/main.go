// Command schema-gen writes the versioned JSON Schema of the configuration
// file. The output directory defaults to schema/.
//
//	go run ./cmd/schema-gen [dir]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/commitlint/internal/schema"
)

const (
	defaultOutDir = "schema"
	dirPerms      = 0o755
	filePerms     = 0o644
)

func main() {
	outDir := defaultOutDir
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	path, err := run(outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema-gen: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(path)
}

func run(outDir string) (string, error) {
	data, err := schema.GenerateJSON(true)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, dirPerms); err != nil {
		return "", errors.Wrapf(err, "creating %s", outDir)
	}

	path := filepath.Join(filepath.Clean(outDir), schema.Filename())

	//nolint:gosec // development tool writing below a directory chosen by the caller
	if err := os.WriteFile(path, data, filePerms); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}

	return path, nil
}
