// Package main provides the CLI entry point for commitlint.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/commitlint/internal/color"
	internalconfig "github.com/smykla-skalski/commitlint/internal/config"
	"github.com/smykla-skalski/commitlint/pkg/config"
	"github.com/smykla-skalski/commitlint/pkg/logger"
)

const (
	// ExitCodeValid indicates every message passed.
	ExitCodeValid = 0

	// ExitCodeErrors indicates at least one error-level problem or a runtime failure.
	ExitCodeErrors = 1

	// ExitCodeWarnings indicates warnings were found while running with --strict.
	ExitCodeWarnings = 2

	// ExitCodeConfig indicates the configuration could not be loaded or is invalid.
	ExitCodeConfig = 9

	logFileName = "commitlint.log"
)

var (
	debugMode   bool
	traceMode   bool
	configPath  string
	helpURL     string
	noColorFlag bool

	log logger.Logger = logger.NewNoOpLogger()
)

// ExitError carries a process exit code through cobra. Err may be nil when
// the command already reported the problem.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitWith(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitCodeValid
	}

	code := ExitCodeErrors

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code

		if exitErr.Err == nil {
			return code
		}
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	return code
}

var rootCmd = &cobra.Command{
	Use:   "commitlint",
	Short: "Lint commit messages against a conventional rule table",
	Long: `commitlint checks commit messages against a configurable rule table.

The message is read from stdin unless --edit, --last or --from/--to is given.
Configuration is read from .commitlint/config.toml or commitlint.toml in the
current directory, ~/.commitlint/config.toml, COMMITLINT_* environment
variables and flags, in increasing priority.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		checkVersionFlag()

		return setupLogger()
	},
	RunE:              runLint,
	Args:              cobra.MaximumNArgs(1),
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to a configuration file (skips discovery of global and project files)",
	)
	rootCmd.PersistentFlags().StringVar(
		&helpURL,
		"help-url",
		"",
		"Help URL printed below failed reports",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)

	addLintFlags(rootCmd)
}

// setupLogger opens ~/.commitlint/commitlint.log. Logging is best effort:
// without a home directory the no-op logger stays in place.
func setupLogger() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil //nolint:nilerr // logging is optional
	}

	logFile := filepath.Join(homeDir, internalconfig.GlobalConfigDir, logFileName)

	fileLog, err := logger.NewFileLogger(logFile, debugMode, traceMode)
	if err != nil {
		return nil //nolint:nilerr // logging is optional
	}

	log = fileLog

	return nil
}

// loadConfig loads configuration from all sources with precedence.
// Any failure maps to ExitCodeConfig.
func loadConfig() (*config.Config, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, exitWith(ExitCodeConfig, errors.Wrap(err, "failed to create config loader"))
	}

	flags := buildFlagsMap()

	var cfg *config.Config

	if configPath != "" {
		cfg, err = loader.LoadFile(configPath, flags)
	} else {
		cfg, err = loader.Load(flags)
	}

	if err != nil {
		return nil, exitWith(ExitCodeConfig, errors.Wrap(err, "failed to load config"))
	}

	log.Debug("configuration loaded", "sources", loader.Sources())

	return cfg, nil
}

// buildFlagsMap converts CLI flags to a map for the config provider.
func buildFlagsMap() map[string]any {
	flags := make(map[string]any)

	if helpURL != "" {
		flags["help-url"] = helpURL
	}

	return flags
}

// themeFor returns the color theme for w.
func themeFor(w io.Writer) color.Theme {
	f, ok := w.(*os.File)
	if !ok {
		return color.NewTheme(false)
	}

	return color.NewTheme(color.Enabled(f, noColorFlag))
}
