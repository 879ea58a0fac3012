// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// writeList writes up to limit items as bullets, followed by a count of the rest.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := range count {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintReport outputs the summary, top ranked keywords and category breakdown of a report.
func (p *Printer) PrintReport(r *types.KeywordReport) {
	if r == nil {
		return
	}
	p.PrintSummary(r)
	p.PrintRanked(r.Ranked)
	p.PrintBreakdown(r.Breakdown)
}

// PrintSummary outputs the coverage headline and the free-tier missing preview.
func (p *Printer) PrintSummary(r *types.KeywordReport) {
	if r == nil {
		return
	}

	var sb strings.Builder
	if r.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", r.Company))
	}
	if r.RoleGuess != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", r.RoleGuess))
	}
	sb.WriteString(fmt.Sprintf("Coverage: %d%% (%d of %d keywords)\n",
		r.CoveragePercent, len(r.Match.Matched), len(r.Keywords)))
	sb.WriteString("\n")

	if len(r.Match.Matched) > 0 {
		sb.WriteString("Matched:\n")
		writeList(&sb, r.Match.Matched, maxItemsToShow)
		sb.WriteString("\n")
	}

	if r.MissingCount == 0 {
		sb.WriteString("✅ No missing keywords\n")
	} else {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", r.MissingCount))
		for _, kw := range r.MissingPreview {
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
		if r.HasMoreMissing {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", r.MissingCount-len(r.MissingPreview)))
		}
	}

	p.printBox("KEYWORD MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanked outputs the highest-impact keywords with their tier and reason.
func (p *Printer) PrintRanked(ranked []types.RankedKeyword) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := range count {
		kw := ranked[i]
		mark := "✗"
		if kw.InResume {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s %s\n", i+1, mark, kw.Term))
		sb.WriteString(fmt.Sprintf("    %s %d  [%s]\n", kw.Tier, kw.ImpactScore, kw.Category))
		sb.WriteString(fmt.Sprintf("    %s\n", kw.Reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP ATS IMPACT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs matched and missing counts for every non-empty category.
func (p *Printer) PrintBreakdown(breakdown []types.CategoryCoverage) {
	var sb strings.Builder
	for _, row := range breakdown {
		if row.Matched+row.Missing == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s %2d matched  %2d missing\n", row.Category, row.Matched, row.Missing))
	}
	if sb.Len() == 0 {
		return
	}

	p.printBox("CATEGORY BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs one line per stored report, newest first as given.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(summaries []types.ReportSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(p.out, "No saved reports.")
		return
	}

	for _, s := range summaries {
		label := s.RoleGuess
		if s.Company != "" {
			label = strings.TrimSpace(s.Company + " " + label)
		}
		if label == "" {
			label = "(untitled)"
		}
		fmt.Fprintf(p.out, "%s  %s  %3d%%  %2d missing  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.CoveragePercent, s.MissingCount, truncate(label, 40))
	}
}
