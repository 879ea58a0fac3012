package report

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds BuildBatch when the caller passes 0.
const DefaultBatchConcurrency = 4

// BatchInput is one resume to compare against the shared job description.
type BatchInput struct {
	Name   string
	Resume string
}

// BatchResult pairs an input name with its report.
type BatchResult struct {
	Name   string
	Report *types.KeywordReport
}

// BuildBatch analyzes every resume against jobText with at most concurrency
// reports in flight. Results keep input order. The only error is ctx's.
func (a *Analyzer) BuildBatch(ctx context.Context, jobText string, inputs []BatchInput, concurrency int) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]BatchResult, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("batch cancelled before %s: %w", in.Name, err)
			}
			r := a.New(jobText, in.Resume)
			results[i] = BatchResult{Name: in.Name, Report: r}
			logger.Debug().
				Str("resume", in.Name).
				Int("keywords", len(r.Keywords)).
				Int("missing", r.MissingCount).
				Msg("report built")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info().Int("reports", len(results)).Msg("batch complete")
	return results, nil
}
