package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a saved report",
	RunE:  runShow,
}

var (
	showID          string
	showDatabaseURL string
	showVerbose     bool
)

func init() {
	showCmd.Flags().StringVar(&showID, "id", "", "Report ID (required)")
	showCmd.Flags().StringVar(&showDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	showCmd.Flags().BoolVarP(&showVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	if err := showCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	id, err := parseReportID(showID)
	if err != nil {
		return err
	}

	ctx := logger.WithContext(context.Background())
	database, err := openDatabase(ctx, resolveDatabaseURL(showDatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	r, err := database.GetReport(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}
	if r == nil {
		return fmt.Errorf("report %s not found", id)
	}

	if showVerbose {
		observability.NewPrinter(os.Stderr).PrintReport(r)
	}
	return writeJSON("", r)
}
