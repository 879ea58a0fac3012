package skills

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SplitMatchedMissing partitions keywords by substring presence in the
// normalized resume. Input order is kept in both lists. Keywords that
// normalize to nothing are skipped.
func SplitMatchedMissing(keywords []string, resumeText string) types.MatchResult {
	resume := parsing.Normalize(resumeText)

	result := types.MatchResult{
		Matched: make([]string, 0),
		Missing: make([]string, 0),
	}
	for _, k := range keywords {
		needle := parsing.Normalize(k)
		if needle == "" {
			continue
		}
		if strings.Contains(resume, needle) {
			result.Matched = append(result.Matched, k)
		} else {
			result.Missing = append(result.Missing, k)
		}
	}
	return result
}
