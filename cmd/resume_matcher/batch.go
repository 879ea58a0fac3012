package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compare one job description with many resumes",
	Long:  "Generates one keyword report per resume against a shared job description, analyzing resumes concurrently. Reports are written to --out-dir as <resume>.report.json.",
	RunE:  runBatch,
}

var (
	batchJob            string
	batchResumes        []string
	batchOutDir         string
	batchVocabulary     string
	batchFreeMissingMax int
	batchConcurrency    int
)

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description file (required)")
	batchCmd.Flags().StringSliceVarP(&batchResumes, "resume", "r", nil, "Path to a resume file; repeat or comma-separate for several (required)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Directory for the report files (required)")
	batchCmd.Flags().StringVar(&batchVocabulary, "vocabulary", "", "Path to a vocabulary YAML file replacing the built-in tables")
	batchCmd.Flags().IntVar(&batchFreeMissingMax, "free-missing-max", report.DefaultFreeMissingMax, "Number of missing keywords in the preview")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", report.DefaultBatchConcurrency, "Maximum reports generated in parallel")

	for _, name := range []string{"job", "resume", "out-dir"} {
		if err := batchCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	ctx := logger.WithContext(context.Background())

	if batchFreeMissingMax < 0 {
		return fmt.Errorf("--free-missing-max must not be negative")
	}

	jobText, err := readDocument("job description", batchJob)
	if err != nil {
		return err
	}

	inputs := make([]report.BatchInput, 0, len(batchResumes))
	for _, path := range batchResumes {
		text, err := readDocument("resume", path)
		if err != nil {
			return err
		}
		inputs = append(inputs, report.BatchInput{Name: path, Resume: text})
	}

	v, err := loadVocabulary(batchVocabulary)
	if err != nil {
		return err
	}
	settings := report.DefaultSettings()
	settings.Vocabulary = v
	settings.FreeMissingMax = batchFreeMissingMax

	results, err := report.NewAnalyzer(settings).BuildBatch(ctx, jobText, inputs, batchConcurrency)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	issued := make(map[string]bool)
	for _, res := range results {
		if err := schemas.ValidateReport(res.Report); err != nil {
			return fmt.Errorf("report for %s failed schema validation: %w", res.Name, err)
		}
		outPath := filepath.Join(batchOutDir, reportFileName(res.Name, issued))
		if err := writeJSON(outPath, res.Report); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s\t%d%%\t%d missing\t%s\n",
			res.Name, res.Report.CoveragePercent, res.Report.MissingCount, outPath)
	}

	return nil
}
