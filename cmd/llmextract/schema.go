package main

import (
	"github.com/spf13/cobra"

	"github.com/leofalp/llmextract/core/schemas"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [name]",
	Short: "Print the JSON Schema of a record type",
	Long: `Print the JSON Schema sent as function parameters for a record type.
Without a name, the available record types are listed.

Examples:
  llmextract schema movie -o json
  llmextract schema`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return write(cmd, schemas.Names())
		}
		d, err := schemas.Lookup(args[0])
		if err != nil {
			return err
		}
		return write(cmd, d.JSONSchema())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
