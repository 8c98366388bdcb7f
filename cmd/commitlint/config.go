package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	internalconfig "github.com/smykla-skalski/commitlint/internal/config"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

const diffContextLines = 3

var (
	printFormat   string
	printDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging defaults, presets, files,
environment and flags.

Examples:
  commitlint config print
  commitlint config print --format json
  commitlint config print --defaults > commitlint.toml`,
	Args: cobra.NoArgs,
	RunE: runConfigPrint,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and list every problem",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show how the effective configuration differs from the defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigDiff,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPrintCmd, configValidateCmd, configDiffCmd)

	configPrintCmd.Flags().StringVar(&printFormat, "format", "toml", "Output format (toml, json, yaml)")
	configPrintCmd.Flags().BoolVar(&printDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfigPrint(cmd *cobra.Command, _ []string) error {
	cfg := internalconfig.DefaultConfig()

	if !printDefaults {
		var err error

		cfg, err = loadConfig()
		if err != nil {
			return err
		}
	}

	data, err := encodeConfig(cfg, printFormat)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return errors.Wrap(err, "writing configuration")
}

func encodeConfig(cfg *config.Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		return internalconfig.Encode(cfg)
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding json")
		}

		return append(data, '\n'), nil
	case "yaml", "yml":
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2) //nolint:mnd // conventional yaml indent

		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, "encoding yaml")
		}

		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding yaml")
		}

		return buf.Bytes(), nil
	default:
		return nil, errors.Newf("unknown format %q (expected toml, json or yaml)", format)
	}
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return exitWith(ExitCodeConfig, err)
	}

	var cfg *config.Config

	if configPath != "" {
		cfg, err = loader.LoadFileWithoutValidation(configPath, buildFlagsMap())
	} else {
		cfg, err = loader.LoadWithoutValidation(buildFlagsMap())
	}

	if err != nil {
		return exitWith(ExitCodeConfig, errors.Wrap(err, "failed to load config"))
	}

	out := cmd.OutOrStdout()
	theme := themeFor(out)

	failures := internalconfig.NewValidator().Failures(cfg)
	if len(failures) == 0 {
		sources := loader.Sources()
		if configPath != "" {
			sources = []string{configPath}
		}

		if len(sources) == 0 {
			sources = []string{"built-in defaults"}
		}

		fmt.Fprintf(out, "%s configuration is valid (%s)\n",
			theme.Valid.Render("✓"), strings.Join(sources, ", "))

		return nil
	}

	for _, failure := range failures {
		fmt.Fprintf(out, "%s %v\n", theme.Error.Render("✗"), failure)
	}

	return exitWith(ExitCodeConfig, nil)
}

func runConfigDiff(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	diff, err := configDiff(internalconfig.DefaultConfig(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if diff == "" {
		fmt.Fprintln(out, "no differences from the built-in defaults")

		return nil
	}

	_, err = fmt.Fprint(out, diff)

	return errors.Wrap(err, "writing diff")
}

// configDiff returns a unified diff of the TOML renderings of two configs.
func configDiff(from, to *config.Config) (string, error) {
	fromData, err := internalconfig.Encode(from)
	if err != nil {
		return "", err
	}

	toData, err := internalconfig.Encode(to)
	if err != nil {
		return "", err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(fromData)),
		B:        difflib.SplitLines(string(toData)),
		FromFile: "defaults",
		ToFile:   "effective",
		Context:  diffContextLines,
	})
	if err != nil {
		return "", errors.Wrap(err, "computing diff")
	}

	return diff, nil
}
