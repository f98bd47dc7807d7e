package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie <title>",
	Short: "Ask the backend for the details of a movie",
	Long: `Ask the configured backend for the details of a movie and print the
extracted record: title, year, director, up to five genres and up to ten actors.

Examples:
  llmextract movie "The Lord of the Rings: The Return of the King"
  llmextract movie Heat -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		movie, ok, err := c.Movie(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if !ok {
			return errNoResult
		}
		return write(cmd, movie)
	},
}

func init() {
	rootCmd.AddCommand(movieCmd)
}
