package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/llmextract/internal/webpage"
	"github.com/leofalp/llmextract/providers/observability"
)

var recipeURL string

var recipeCmd = &cobra.Command{
	Use:   "recipe <dish>",
	Short: "Ask the backend for a recipe",
	Long: `Ask the configured backend for a recipe and print the extracted record.

With --url the page is fetched, converted to Markdown and sent along with the
prompt, so the recipe is taken from that page.

Examples:
  llmextract recipe carbonara
  llmextract recipe "pad thai" --url https://example.com/pad-thai`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dish := strings.Join(args, " ")

		var source string
		if recipeURL != "" {
			var opts []webpage.Option
			if cfg.Timeout > 0 {
				opts = append(opts, webpage.WithTimeout(cfg.Timeout))
			}
			page, err := webpage.Fetch(ctx, recipeURL, opts...)
			if err != nil {
				return fmt.Errorf("failed to fetch recipe page: %w", err)
			}
			observer.Debug(ctx, "recipe page fetched",
				observability.String("url", page.URL),
				observability.Int("markdown.bytes", len(page.Markdown)),
				observability.Bool("truncated", page.Truncated),
			)
			source = page.Markdown
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		recipe, ok, err := c.RecipeFrom(ctx, dish, source)
		if err != nil {
			return err
		}
		if !ok {
			return errNoResult
		}
		return write(cmd, recipe)
	},
}

func init() {
	recipeCmd.Flags().StringVar(&recipeURL, "url", "", "recipe page to ground the answer in")

	rootCmd.AddCommand(recipeCmd)
}
