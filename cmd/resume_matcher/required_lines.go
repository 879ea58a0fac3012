package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/spf13/cobra"
)

var requiredLinesCmd = &cobra.Command{
	Use:   "required-lines",
	Short: "List phrases a job description clearly requires",
	Long:  "Scans requirement blocks and obligation lines (\"must have\", \"strong knowledge of\") and outputs the top required-language candidates as a JSON array.",
	RunE:  runRequiredLines,
}

var (
	requiredLinesJob        string
	requiredLinesVocabulary string
	requiredLinesScored     bool
)

func init() {
	requiredLinesCmd.Flags().StringVarP(&requiredLinesJob, "job", "j", "", "Path to job description file (required)")
	requiredLinesCmd.Flags().StringVar(&requiredLinesVocabulary, "vocabulary", "", "Path to a vocabulary YAML file replacing the built-in tables")
	requiredLinesCmd.Flags().BoolVar(&requiredLinesScored, "scored", false, "Include the confidence score of every candidate")

	if err := requiredLinesCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(requiredLinesCmd)
}

func runRequiredLines(_ *cobra.Command, _ []string) error {
	jobText, err := readDocument("job description", requiredLinesJob)
	if err != nil {
		return err
	}

	v, err := loadVocabulary(requiredLinesVocabulary)
	if err != nil {
		return err
	}

	extractor := skills.NewExtractor(v, parsing.DefaultRequiredLineWeights()).RequiredLines()
	if requiredLinesScored {
		return writeJSON("", extractor.ExtractScored(jobText))
	}
	return writeJSON("", extractor.ExtractRequiredLineKeywords(jobText))
}
