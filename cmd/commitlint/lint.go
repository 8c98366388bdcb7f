package main

import (
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/commitlint/internal/git"
	"github.com/smykla-skalski/commitlint/internal/lint"
	"github.com/smykla-skalski/commitlint/internal/report"
)

var (
	editFlag    string
	lastFlag    bool
	fromFlag    string
	toFlag      string
	formatFlag  string
	quietFlag   bool
	strictFlag  bool
	verboseFlag bool

	// openSource opens the repository of the working directory. Replaced in tests.
	openSource = func() (git.Source, error) {
		return git.OpenSource(".")
	}
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint commit messages (default command)",
	Long: `Lint commit messages.

Input, in order of preference:
  --edit [file]     the commit message file (default: COMMIT_EDITMSG in the git directory)
  --last            the HEAD commit
  --from/--to       every commit reachable from --to (default HEAD) but not from --from
  stdin             otherwise

Exit codes: 0 valid, 1 errors, 2 warnings with --strict, 9 invalid configuration.

Examples:
  echo "feat(api): add endpoint" | commitlint
  commitlint --edit "$1"             # commit-msg hook
  commitlint --from origin/main      # every commit of a branch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
	addLintFlags(lintCmd)
}

func addLintFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVarP(&editFlag, "edit", "e", "", "Read the message from a file (default: COMMIT_EDITMSG)")
	flags.Lookup("edit").NoOptDefVal = git.DefaultEditFile
	flags.BoolVarP(&lastFlag, "last", "l", false, "Lint the HEAD commit")
	flags.StringVarP(&fromFlag, "from", "f", "", "Lower end of the commit range (exclusive)")
	flags.StringVarP(&toFlag, "to", "t", "", "Upper end of the commit range (default: HEAD)")
	flags.StringVarP(&formatFlag, "format", "o", string(report.FormatText), "Output format (text, json)")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Print nothing, only set the exit code")
	flags.BoolVarP(&strictFlag, "strict", "s", false, "Exit with 2 when only warnings were found")
	flags.BoolVarP(&verboseFlag, "verbose", "V", false, "Print valid and ignored messages too")
}

func runLint(cmd *cobra.Command, args []string) error {
	// "--edit file" leaves the file as a positional argument.
	if len(args) > 0 {
		if editFlag != git.DefaultEditFile {
			return errors.Newf("unexpected argument %q (use --edit to lint a file)", args[0])
		}

		editFlag = args[0]
	}

	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	messages, err := readMessages(ctx, cmd.InOrStdin())
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	linter, err := lint.New(cfg, lint.WithLogger(log))
	if err != nil {
		return exitWith(ExitCodeConfig, err)
	}

	outcomes, err := linter.LintAll(ctx, messages)
	if err != nil {
		return err
	}

	summary := lint.Summarize(outcomes)

	log.Info("lint finished",
		"total", summary.Total,
		"errors", summary.Errors,
		"warnings", summary.Warnings,
		"ignored", summary.Ignored,
	)

	if !quietFlag {
		reporter, err := report.New(format, report.Options{
			Theme:   themeFor(cmd.OutOrStdout()),
			Verbose: verboseFlag,
			HelpURL: cfg.HelpURL,
		})
		if err != nil {
			return err
		}

		if err := reporter.Report(cmd.OutOrStdout(), outcomes); err != nil {
			return err
		}
	}

	if code := exitCodeFor(summary, strictFlag); code != ExitCodeValid {
		return exitWith(code, nil)
	}

	return nil
}

// exitCodeFor maps a summary to the process exit code.
func exitCodeFor(summary lint.Summary, strict bool) int {
	switch {
	case summary.Errors > 0:
		return ExitCodeErrors
	case strict && summary.Warnings > 0:
		return ExitCodeWarnings
	default:
		return ExitCodeValid
	}
}

// readMessages collects the messages selected by the input flags.
func readMessages(ctx context.Context, stdin io.Reader) ([]string, error) {
	switch {
	case editFlag != "" && editFlag != git.DefaultEditFile:
		msg, err := git.ReadMessageFile(editFlag)
		if err != nil {
			return nil, err
		}

		return []string{msg}, nil
	case editFlag != "":
		source, err := openSource()
		if err != nil {
			return nil, err
		}

		msg, err := source.EditMessage("")
		if err != nil {
			return nil, err
		}

		return []string{msg}, nil
	case lastFlag:
		source, err := openSource()
		if err != nil {
			return nil, err
		}

		msg, err := source.Last(ctx)
		if err != nil {
			return nil, err
		}

		return []string{msg}, nil
	case fromFlag != "" || toFlag != "":
		source, err := openSource()
		if err != nil {
			return nil, err
		}

		messages, err := source.Range(ctx, fromFlag, toFlag)
		if err != nil {
			return nil, err
		}

		log.Debug("read commit range", "from", fromFlag, "to", toFlag, "count", len(messages))

		return messages, nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}

		if strings.TrimSpace(string(data)) == "" {
			return nil, git.ErrEmptyInput
		}

		return []string{string(data)}, nil
	}
}
