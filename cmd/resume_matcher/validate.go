package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a saved report against the keyword report schema",
	Long:  "Checks a report JSON file written by analyze or batch against schemas/keyword_report.schema.json, falling back to the built-in copy of the schema when the file cannot be found.",
	RunE:  runValidate,
}

var (
	validateReport string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateReport, "report", "r", "", "Path to report JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file overriding the keyword report schema")

	if err := validateCmd.MarkFlagRequired("report"); err != nil {
		panic(fmt.Sprintf("failed to mark report flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateReportFile(validateReport, validateSchema); err != nil {
		return fmt.Errorf("%s: %w", validateReport, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", validateReport)
	return nil
}
