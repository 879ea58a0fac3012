package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved reports, newest first, or delete one",
	RunE:  runHistory,
}

var (
	historyLimit       int
	historyDatabaseURL string
	historyJSON        bool
	historyDelete      string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.DefaultHistoryLimit, "Maximum number of reports to list")
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output summaries as JSON")
	historyCmd.Flags().StringVar(&historyDelete, "delete", "", "Delete the report with this ID instead of listing")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	if historyLimit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	var deleteID uuid.UUID
	if historyDelete != "" {
		id, err := parseReportID(historyDelete)
		if err != nil {
			return err
		}
		deleteID = id
	}

	ctx := logger.WithContext(context.Background())
	database, err := openDatabase(ctx, resolveDatabaseURL(historyDatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	if deleteID != uuid.Nil {
		if err := database.DeleteReport(ctx, deleteID); err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		logger.Info().Str("report_id", deleteID.String()).Msg("report deleted")
		_, _ = fmt.Fprintf(os.Stdout, "Deleted report %s\n", deleteID)
		return nil
	}

	summaries, err := database.ListReports(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if historyJSON {
		return writeJSON("", summaries)
	}
	observability.NewPrinter(os.Stdout).PrintHistory(summaries)
	return nil
}
