package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/commitlint/internal/schema"
)

const schemaFilePerms = 0o644

var (
	schemaOutput  string
	schemaCompact bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON Schema for the configuration file",
	Long: `Generate a JSON Schema (Draft 2020-12) for the commitlint configuration format.

Files written by "commitlint init" reference the published copy of this schema
through a Taplo "#:schema" directive.

Examples:
  commitlint schema                        # Print to stdout
  commitlint schema --output schema.json   # Write to file
  commitlint schema --compact              # Compact output`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVar(&schemaOutput, "output", "", "Write schema to file instead of stdout")
	schemaCmd.Flags().BoolVar(&schemaCompact, "compact", false, "Output compact JSON without indentation")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	data, err := schema.GenerateJSON(!schemaCompact)
	if err != nil {
		return errors.Wrap(err, "generating schema")
	}

	out := cmd.OutOrStdout()

	if schemaOutput == "" {
		_, err = out.Write(data)

		return errors.Wrap(err, "writing schema")
	}

	if err := os.WriteFile(schemaOutput, data, schemaFilePerms); err != nil {
		return errors.Wrap(err, "writing schema file")
	}

	fmt.Fprintf(out, "Schema written to %s\n", schemaOutput)

	return nil
}
