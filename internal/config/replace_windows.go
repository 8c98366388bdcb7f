//go:build windows

package config

import "os"

// replaceFile writes data to path. renameio does not support Windows.
func replaceFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
