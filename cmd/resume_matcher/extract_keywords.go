package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/spf13/cobra"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract ATS keywords from a job description",
	Long:  "Runs the keyword extractor over a job description and outputs the ordered keyword list as a JSON array.",
	RunE:  runExtractKeywords,
}

var (
	extractKeywordsJob        string
	extractKeywordsVocabulary string
	extractKeywordsOut        string
)

func init() {
	extractKeywordsCmd.Flags().StringVarP(&extractKeywordsJob, "job", "j", "", "Path to job description file (required)")
	extractKeywordsCmd.Flags().StringVar(&extractKeywordsVocabulary, "vocabulary", "", "Path to a vocabulary YAML file replacing the built-in tables")
	extractKeywordsCmd.Flags().StringVarP(&extractKeywordsOut, "out", "o", "", "Path to output JSON file (stdout if omitted)")

	if err := extractKeywordsCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(extractKeywordsCmd)
}

func runExtractKeywords(_ *cobra.Command, _ []string) error {
	jobText, err := readDocument("job description", extractKeywordsJob)
	if err != nil {
		return err
	}

	v, err := loadVocabulary(extractKeywordsVocabulary)
	if err != nil {
		return err
	}

	extractor := skills.NewExtractor(v, parsing.DefaultRequiredLineWeights())
	keywords := extractor.ExtractKeywords(jobText)
	logger.Debug().Int("keywords", len(keywords)).Msg("extracted keywords")

	return writeJSON(extractKeywordsOut, keywords)
}
