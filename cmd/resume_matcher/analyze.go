package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a job description with a resume",
	Long: `Extracts keywords from a job description, splits them into matched and missing against a resume, scores their importance and ranks them by ATS impact. The report is written as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath     string
	analyzeJob            string
	analyzeJobURL         string
	analyzeResume         string
	analyzeOut            string
	analyzeVocabulary     string
	analyzeFreeMissingMax int
	analyzeSave           bool
	analyzeDatabaseURL    string
	analyzeUseBrowser     bool
	analyzeVerbose        bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description file (.txt, .md or .html; mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.txt, .md or .html)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to output report JSON file (stdout if omitted)")
	analyzeCmd.Flags().StringVar(&analyzeVocabulary, "vocabulary", "", "Path to a vocabulary YAML file replacing the built-in tables")
	analyzeCmd.Flags().IntVar(&analyzeFreeMissingMax, "free-missing-max", report.DefaultFreeMissingMax, "Number of missing keywords in the preview")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Store the report in the history database")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeConfig merges the config file with the flags that were set explicitly.
func analyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		logger.Debug().Str("path", analyzeConfigPath).Msg("loaded config")
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("job") {
		cfg.Job = analyzeJob
	}
	if flags.Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if flags.Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if flags.Changed("out") {
		cfg.Out = analyzeOut
	}
	if flags.Changed("vocabulary") {
		cfg.Vocabulary = analyzeVocabulary
	}
	if flags.Changed("free-missing-max") {
		n := analyzeFreeMissingMax
		cfg.FreeMissingMax = &n
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if flags.Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume must be provided (via flag or config)")
	}
	if *cfg.FreeMissingMax < 0 {
		return cfg, fmt.Errorf("--free-missing-max must not be negative")
	}
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := analyzeConfig(cmd)
	if err != nil {
		return err
	}

	// Config file log settings apply unless the root flags were set
	level, format := logLevel, logFormat
	if cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
		level = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !cmd.Flags().Changed("log-format") {
		format = cfg.LogFormat
	}
	if level != logLevel || format != logFormat {
		logger.Init(logger.Config{Level: level, Format: format})
	}
	ctx := logger.WithContext(context.Background())

	// The database backs both history and the posting cache
	var database *db.DB
	if analyzeSave || (cfg.JobURL != "" && cfg.DatabaseURL != "") {
		database, err = openDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	jobText, jobSource, err := readJob(ctx, cfg, database)
	if err != nil {
		return err
	}
	resumeText, err := readDocument("resume", cfg.Resume)
	if err != nil {
		return err
	}

	v, err := loadVocabulary(cfg.Vocabulary)
	if err != nil {
		return err
	}
	settings := cfg.ApplyTo(report.DefaultSettings())
	settings.Vocabulary = v

	r := report.NewAnalyzer(settings).New(jobText, resumeText)
	logger.Info().
		Str("report_id", r.ID.String()).
		Int("keywords", len(r.Keywords)).
		Int("missing", r.MissingCount).
		Int("coverage", r.CoveragePercent).
		Msg("report generated")

	if err := schemas.ValidateReport(r); err != nil {
		return fmt.Errorf("generated report failed schema validation: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintReport(r)
	}

	if err := writeJSON(cfg.Out, r); err != nil {
		return err
	}

	if analyzeSave {
		input := &db.ReportCreateInput{
			Report:     r,
			JobSource:  jobSource,
			JobText:    jobText,
			ResumeText: resumeText,
		}
		if err := database.SaveReport(ctx, input); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		logger.Info().Str("report_id", r.ID.String()).Msg("report saved to history")
	}

	return nil
}

// readJob ingests the job description from a file or URL and returns its
// text and source label.
func readJob(ctx context.Context, cfg config.Config, database *db.DB) (string, string, error) {
	if cfg.Job != "" {
		text, err := readDocument("job description", cfg.Job)
		return text, cfg.Job, err
	}

	var cache fetch.PostingCache
	if database != nil {
		cache = database
	}
	text, metadata, err := ingestion.IngestFromURL(ctx, cfg.JobURL, ingestion.URLOptions{
		Fetcher:    fetch.NewCachedFetcher(cache, nil),
		UseBrowser: cfg.UseBrowser,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to ingest from URL: %w", err)
	}
	logger.Info().
		Str("url", metadata.URL).
		Str("platform", metadata.Platform).
		Bool("from_cache", metadata.FromCache).
		Msg("fetched job posting")
	return text, cfg.JobURL, nil
}
