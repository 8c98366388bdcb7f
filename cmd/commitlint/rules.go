package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-skalski/commitlint/internal/report"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the effective rule table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if len(cfg.Rules) == 0 {
			fmt.Fprintln(out, "no rules configured")

			return nil
		}

		theme := themeFor(out)

		fmt.Fprintln(out, report.RulesTitle(cfg.Rules, theme))
		fmt.Fprintln(out, report.RenderRules(cfg.Rules, theme))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
