// Package report assembles the keyword report for one job description and
// resume: extraction, matching, importance, impact ranking and the summary
// numbers a report view needs.
package report

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// DefaultFreeMissingMax is how many missing keywords the free preview shows.
const DefaultFreeMissingMax = 5

// Settings configures an Analyzer. Start from DefaultSettings and override
// individual fields.
type Settings struct {
	Vocabulary      *vocab.Vocabulary
	RequiredWeights parsing.RequiredLineWeights
	Impact          ranking.ImpactParams
	FreeMissingMax  int
}

// DefaultSettings uses the embedded vocabulary and stock tunables.
func DefaultSettings() Settings {
	return Settings{
		Vocabulary:      vocab.MustDefault(),
		RequiredWeights: parsing.DefaultRequiredLineWeights(),
		Impact:          ranking.DefaultImpactParams(),
		FreeMissingMax:  DefaultFreeMissingMax,
	}
}

// Analyzer turns (job description, resume) pairs into keyword reports. It is
// immutable after construction and safe for concurrent use.
type Analyzer struct {
	extractor      *skills.Extractor
	ranker         *ranking.Ranker
	freeMissingMax int
}

// NewAnalyzer builds an Analyzer. A nil vocabulary means the embedded default.
func NewAnalyzer(s Settings) *Analyzer {
	v := s.Vocabulary
	if v == nil {
		v = vocab.MustDefault()
	}
	return &Analyzer{
		extractor:      skills.NewExtractor(v, s.RequiredWeights),
		ranker:         ranking.NewRanker(v, s.Impact),
		freeMissingMax: max(s.FreeMissingMax, 0),
	}
}

// Extractor exposes the keyword extractor the analyzer uses.
func (a *Analyzer) Extractor() *skills.Extractor {
	return a.extractor
}

// Analyze is the pure report boundary. It sets neither ID nor GeneratedAt, so
// equal inputs give equal reports.
func (a *Analyzer) Analyze(jobText, resumeText string) types.KeywordReport {
	keywords := a.extractor.ExtractKeywords(jobText)
	match := skills.SplitMatchedMissing(keywords, resumeText)

	r := types.KeywordReport{
		Company:    GuessCompany(jobText),
		RoleGuess:  GuessRole(jobText),
		Keywords:   keywords,
		Match:      match,
		Importance: ranking.ComputeKeywordImportance(jobText, keywords),
		Ranked:     a.ranker.RankKeywordsByAtsImpact(jobText, resumeText, keywords),
		Breakdown:  a.breakdown(match),
	}
	r.CoveragePercent = CoveragePercent(match)
	r.MissingCount, r.MissingPreview, r.HasMoreMissing = MissingPreview(match.Missing, a.freeMissingMax)
	return r
}

// New is Analyze plus a fresh ID and timestamp.
func (a *Analyzer) New(jobText, resumeText string) *types.KeywordReport {
	r := a.Analyze(jobText, resumeText)
	r.ID = uuid.New()
	r.GeneratedAt = time.Now().UTC()
	return &r
}

func (a *Analyzer) breakdown(match types.MatchResult) []types.CategoryCoverage {
	counts := make(map[types.Category]*types.CategoryCoverage, len(types.AllCategories))
	rows := make([]types.CategoryCoverage, len(types.AllCategories))
	for i, c := range types.AllCategories {
		rows[i].Category = c
		counts[c] = &rows[i]
	}

	classifier := a.ranker.Classifier()
	for _, k := range match.Matched {
		counts[classifier.Categorize(k)].Matched++
	}
	for _, k := range match.Missing {
		counts[classifier.Categorize(k)].Missing++
	}
	return rows
}

// CoveragePercent is round(100 * matched / (matched + missing)), 0 with no keywords.
func CoveragePercent(match types.MatchResult) int {
	total := len(match.Matched) + len(match.Missing)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(match.Matched)) / float64(total)))
}

// MissingPreview returns the missing count, the first limit missing keywords
// and whether more exist beyond them.
func MissingPreview(missing []string, limit int) (int, []string, bool) {
	limit = max(limit, 0)
	n := min(limit, len(missing))
	preview := make([]string, n)
	copy(preview, missing[:n])
	return len(missing), preview, len(missing) > limit
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer {
	return NewAnalyzer(DefaultSettings())
})

// Analyze runs an analyzer with DefaultSettings.
func Analyze(jobText, resumeText string) types.KeywordReport {
	return defaultAnalyzer().Analyze(jobText, resumeText)
}
