//go:build !windows

package config

import (
	"os"

	"github.com/google/renameio/v2"
)

// replaceFile writes data to a temporary file next to path, syncs it and
// renames it over path.
func replaceFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
