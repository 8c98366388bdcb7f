package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/commitlint/internal/schema"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

const (
	// ConfigFileMode is the mode of written configuration files.
	ConfigFileMode = 0o600

	// ConfigDirMode is the mode of created configuration directories.
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when writing would overwrite an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// Writer writes configuration files to the global and project locations.
type Writer struct {
	homeDir string
	workDir string
}

// NewWriter creates a Writer for the user's home and the working directory.
func NewWriter() (*Writer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewWriterWithDirs(homeDir, workDir), nil
}

// NewWriterWithDirs creates a Writer for the given directories.
func NewWriterWithDirs(homeDir, workDir string) *Writer {
	return &Writer{homeDir: homeDir, workDir: workDir}
}

// GlobalConfigPath returns ~/.commitlint/config.toml.
func (w *Writer) GlobalConfigPath() string {
	return filepath.Join(w.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPath returns .commitlint/config.toml below the working directory.
func (w *Writer) ProjectConfigPath() string {
	return filepath.Join(w.workDir, ProjectConfigDir, ProjectConfigFile)
}

// IsGlobalConfigExists reports whether the global file exists.
func (w *Writer) IsGlobalConfigExists() bool {
	return fileExists(w.GlobalConfigPath())
}

// IsProjectConfigExists reports whether the project file exists.
func (w *Writer) IsProjectConfigExists() bool {
	return fileExists(w.ProjectConfigPath())
}

// WriteGlobal writes cfg to the global file.
func (w *Writer) WriteGlobal(cfg *config.Config) error {
	return w.WriteFile(w.GlobalConfigPath(), cfg)
}

// WriteProject writes cfg to the project file.
func (w *Writer) WriteProject(cfg *config.Config) error {
	return w.WriteFile(w.ProjectConfigPath(), cfg)
}

// WriteNew writes cfg to path unless a file already exists there and force is false.
func (w *Writer) WriteNew(path string, cfg *config.Config, force bool) error {
	if !force && fileExists(path) {
		return errors.Wrapf(ErrConfigExists, "%s", path)
	}

	return w.WriteFile(path, cfg)
}

// WriteFile encodes cfg and replaces the file at path in one step, creating
// the parent directory when needed.
func (*Writer) WriteFile(path string, cfg *config.Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	if err := replaceFile(path, data, ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// Encode renders cfg as TOML preceded by the Taplo schema directive.
func Encode(cfg *config.Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	var buf bytes.Buffer

	buf.WriteString(schema.SchemaDirective())
	buf.WriteByte('\n')

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to encode config to TOML")
	}

	return buf.Bytes(), nil
}
