package main

import (
	"github.com/spf13/cobra"

	"github.com/leofalp/llmextract/core/extract"
	"github.com/leofalp/llmextract/core/schemas"
)

var (
	extractSchema   string
	extractFile     string
	extractRepair   bool
	extractValidate bool
)

// extractReport is the output of the extract command.
type extractReport struct {
	OK          bool           `json:"ok"`
	Stage       string         `json:"stage"`
	Record      extract.Record `json:"record"`
	Missing     []string       `json:"missing,omitempty"`
	Truncations int            `json:"truncations,omitempty"`
	Violation   string         `json:"violation,omitempty"`
	Error       string         `json:"error,omitempty"`
}

func newExtractReport(res extract.Result) extractReport {
	report := extractReport{
		OK:          res.OK,
		Stage:       res.Stage.String(),
		Record:      res.Record,
		Missing:     res.Missing,
		Truncations: res.Truncations,
	}
	if res.Violation != nil {
		report.Violation = res.Violation.Error()
	}
	if res.Err != nil {
		report.Error = res.Err.Error()
	}
	return report
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a record from a raw chat-completion response",
	Long: `Run the extraction pipeline on a raw chat-completion response body.

The response is read from --file, or from stdin when no file is given. It may
be a full chat-completion envelope or any text containing a JSON object.

Examples:
  llmextract extract --schema movie --file response.json
  curl ... | llmextract extract --schema recipe -o json
  llmextract extract --schema movie --repair < sloppy.txt
  llmextract extract --schema recipe --validate --file response.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := schemas.Lookup(extractSchema)
		if err != nil {
			return err
		}
		raw, err := readInput(cmd, extractFile)
		if err != nil {
			return err
		}

		opts := []extract.Option{extract.WithObserver(observer)}
		if extractRepair || cfg.Repair {
			opts = append(opts, extract.WithRepair())
		}
		if extractValidate || cfg.ValidateRecords {
			opts = append(opts, extract.WithValidation())
		}
		res := extract.New(opts...).Extract(cmd.Context(), raw, d)

		if err := write(cmd, newExtractReport(res)); err != nil {
			return err
		}
		if !res.OK {
			return errNoResult
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractSchema, "schema", "s", "", "schema name: movie or recipe")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "file holding the raw response (default: stdin)")
	extractCmd.Flags().BoolVar(&extractRepair, "repair", false, "repair malformed JSON before binding")
	extractCmd.Flags().BoolVar(&extractValidate, "validate", false, "check the record against the schema's JSON Schema")
	_ = extractCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(extractCmd)
}
