package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/commitlint/internal/config"
	"github.com/smykla-skalski/commitlint/internal/tui"
)

var (
	globalFlag bool
	forceFlag  bool
	noTUIFlag  bool
)

// newUI builds the form used by init. Replaced in tests.
var newUI = tui.New

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize commitlint configuration",
	Long: `Initialize a commitlint configuration file.

By default, creates a project-local configuration file (.commitlint/config.toml).
Use --global or -g to create a global configuration file (~/.commitlint/config.toml).

The form starts from the built-in defaults and asks for:
- the allowed commit types
- the allowed scopes (clear them to disable the scope check)
- the maximum subject length

Use --force to overwrite an existing configuration file.
Use --no-tui to use simple prompts instead of the interactive form.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&globalFlag, "global", "g", false, "Initialize global configuration")
	initCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration file")
	initCmd.Flags().BoolVar(&noTUIFlag, "no-tui", false, "Use simple prompts instead of interactive TUI")
}

func runInit(cmd *cobra.Command, _ []string) error {
	writer, err := internalconfig.NewWriter()
	if err != nil {
		return err
	}

	path, exists := writer.ProjectConfigPath(), writer.IsProjectConfigExists()
	if globalFlag {
		path, exists = writer.GlobalConfigPath(), writer.IsGlobalConfigExists()
	}

	// Fail before asking anything.
	if exists && !forceFlag {
		return errors.Wrapf(internalconfig.ErrConfigExists, "%s\nUse --force to overwrite", path)
	}

	cfg, err := newUI(noTUIFlag).RunInitForm(tui.InitFormOptions{
		Global:   globalFlag,
		Defaults: internalconfig.DefaultConfig(),
	})
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted, nothing written.")

		return nil
	}

	if err != nil {
		return errors.Wrap(err, "configuration form failed")
	}

	if err := internalconfig.NewValidator().Validate(cfg); err != nil {
		return exitWith(ExitCodeConfig, err)
	}

	if err := writer.WriteNew(path, cfg, forceFlag); err != nil {
		return err
	}

	log.Info("configuration written", "path", path, "global", globalFlag)

	out := cmd.OutOrStdout()
	theme := themeFor(out)

	fmt.Fprintf(out, "%s Configuration written to %s\n", theme.Valid.Render("✓"), path)

	return nil
}
