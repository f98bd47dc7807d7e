package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leofalp/llmextract/core/client"
	"github.com/leofalp/llmextract/core/client/middleware"
	"github.com/leofalp/llmextract/internal/config"
	"github.com/leofalp/llmextract/internal/output"
	"github.com/leofalp/llmextract/providers/ai/openai"
	"github.com/leofalp/llmextract/providers/observability/slogobs"
)

// errNoResult is returned by commands whose extraction produced no record.
// It maps to exit status 2.
var errNoResult = errors.New("no result")

var (
	cfgFile      string
	outputFormat string
	logLevel     string
)

// Resolved by PersistentPreRunE before any subcommand runs.
var (
	cfg      *config.Config
	observer *slogobs.Observer
	format   output.Format
)

var rootCmd = &cobra.Command{
	Use:   "llmextract",
	Short: "Extract structured records from chat-completion responses",
	Long: `llmextract turns raw chat-completion responses into bounded, typed records.

A response goes through three stages:
  - the envelope reader pulls the function-call arguments or message content
  - the narrower cuts the outermost {...} span out of surrounding prose
  - the binder parses the object and clips it to the schema's length limits

Any failure yields "no result" (exit status 2) instead of a partial record.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd, cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./llmextract.yaml or ~/.llmextract/llmextract.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "", "output format: yaml or json (default from config, yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: trace, debug, info, warn or error",
	)
}

// setup loads the configuration, applies flag overrides and builds the observer.
func setup(cmd *cobra.Command, logOutput io.Writer) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		loaded.Output = outputFormat
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	format, err = output.ParseFormat(loaded.Output)
	if err != nil {
		return err
	}
	level, err := slogobs.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}
	observer = slogobs.New(
		slogobs.WithLevel(level),
		slogobs.WithFormat(slogobs.ParseFormat(loaded.Log.Format)),
		slogobs.WithOutput(logOutput),
	)
	cfg = loaded
	return nil
}

// newClient builds a Client for the configured OpenAI-compatible backend.
func newClient() (*client.Client, error) {
	provider := openai.New()
	if cfg.APIKey != "" {
		provider.WithAPIKey(cfg.APIKey)
	}
	if cfg.BaseURL != "" {
		provider.WithBaseURL(cfg.BaseURL)
	}

	opts := []func(*client.ClientOptions){
		client.WithObserver(observer),
		client.WithModel(cfg.Model),
		client.WithMaxTokens(cfg.MaxTokens),
	}
	if level, ok := requestLogLevel(cfg.Log.Requests); ok {
		opts = append(opts, client.WithMiddleware(middleware.NewLoggingMiddleware(observer.Logger(), level)))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, client.WithMiddleware(middleware.NewTimeoutMiddleware(cfg.Timeout)))
	}
	if cfg.Repair {
		opts = append(opts, client.WithRepair())
	}
	if cfg.ValidateRecords {
		opts = append(opts, client.WithValidation())
	}
	return client.New(provider, opts...)
}

func requestLogLevel(name string) (middleware.LogLevel, bool) {
	switch name {
	case "minimal":
		return middleware.LogLevelMinimal, true
	case "standard":
		return middleware.LogLevelStandard, true
	case "verbose":
		return middleware.LogLevelVerbose, true
	default:
		return 0, false
	}
}

// write renders data in the selected output format.
func write(cmd *cobra.Command, data any) error {
	if err := output.Write(cmd.OutOrStdout(), format, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// readInput returns the contents of path, or of stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(raw), nil
}
