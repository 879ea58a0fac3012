package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Tier thresholds on the 0-100 impact score.
const (
	HighTierMin = 60
	MedTierMin  = 30

	maxImpactScore = 100
)

// ImpactParams are the tunable parts of the impact formula
// round(100 * emphasis * categoryWeight * presenceMultiplier).
type ImpactParams struct {
	// EmphasisDivisor normalizes log2(jdFreq+1) into [0,1]; 3.5 saturates near 12 mentions.
	EmphasisDivisor float64
	// PresentMultiplier applies when the resume already mentions the keyword.
	PresentMultiplier float64
	// MissingMultiplier applies when it does not.
	MissingMultiplier float64
}

// DefaultImpactParams returns divisor 3.5, present 0.35, missing 1.0.
func DefaultImpactParams() ImpactParams {
	return ImpactParams{
		EmphasisDivisor:   3.5,
		PresentMultiplier: 0.35,
		MissingMultiplier: 1.0,
	}
}

// Classifier assigns keywords to ATS categories by exact match against the
// vocabulary's category term lists, in priority order.
type Classifier struct {
	rules       []categoryTerms
	otherWeight float64
}

type categoryTerms struct {
	category types.Category
	weight   float64
	terms    map[string]bool
}

// NewClassifier builds a Classifier from the vocabulary's category tables.
// Priority always follows types.AllCategories, whatever order the file uses.
func NewClassifier(v *vocab.Vocabulary) *Classifier {
	byName := make(map[types.Category]vocab.CategoryRule)
	for _, rule := range v.Categories() {
		byName[types.Category(rule.Name)] = rule
	}

	c := &Classifier{otherWeight: v.OtherWeight()}
	for _, category := range types.AllCategories {
		rule, ok := byName[category]
		if !ok {
			continue
		}
		ct := categoryTerms{
			category: category,
			weight:   rule.Weight,
			terms:    make(map[string]bool, len(rule.Terms)),
		}
		for _, term := range rule.Terms {
			ct.terms[parsing.Normalize(term)] = true
		}
		c.rules = append(c.rules, ct)
	}
	return c
}

// Categorize returns the first category listing term, or CategoryOther.
func (c *Classifier) Categorize(term string) types.Category {
	t := parsing.Normalize(term)
	for _, r := range c.rules {
		if r.terms[t] {
			return r.category
		}
	}
	return types.CategoryOther
}

// Weight returns the impact multiplier of a category. Categories the vocabulary
// does not configure weigh 1.0.
func (c *Classifier) Weight(category types.Category) float64 {
	if category == types.CategoryOther {
		return c.otherWeight
	}
	for _, r := range c.rules {
		if r.category == category {
			return r.weight
		}
	}
	return 1.0
}

// CountOccurrences counts term in already-normalized text. Phrases are counted
// as non-overlapping substrings; single words as exact tokens, ignoring a
// sentence-final period.
func CountOccurrences(normalizedHaystack, term string) int {
	t := parsing.Normalize(term)
	if t == "" {
		return 0
	}

	if strings.Contains(t, " ") {
		return strings.Count(normalizedHaystack, t)
	}

	count := 0
	for _, tok := range parsing.Tokens(normalizedHaystack) {
		if tok == t {
			count++
		}
	}
	return count
}

// TierFromScore maps an impact score to its tier.
func TierFromScore(score int) types.Tier {
	switch {
	case score >= HighTierMin:
		return types.TierHigh
	case score >= MedTierMin:
		return types.TierMed
	default:
		return types.TierLow
	}
}

// ImpactReason explains a ranking row in one sentence.
func ImpactReason(jdFreq int, inResume bool) string {
	if inResume {
		if jdFreq >= 4 {
			return fmt.Sprintf("Appears %d× in the JD; found in your resume.", jdFreq)
		}
		return "Mentioned in the JD; found in your resume."
	}

	switch {
	case jdFreq >= 5:
		return fmt.Sprintf("High signal: appears %d× in the JD; not found in your resume.", jdFreq)
	case jdFreq >= 2:
		return fmt.Sprintf("Appears %d× in the JD; not found in your resume.", jdFreq)
	default:
		return "Mentioned in the JD; not found in your resume."
	}
}

// Ranker orders keywords by estimated ATS impact.
type Ranker struct {
	classifier *Classifier
	params     ImpactParams
}

// NewRanker builds a Ranker over the vocabulary's category tables. A
// non-positive EmphasisDivisor is replaced by the default.
func NewRanker(v *vocab.Vocabulary, params ImpactParams) *Ranker {
	if params.EmphasisDivisor <= 0 {
		params.EmphasisDivisor = DefaultImpactParams().EmphasisDivisor
	}
	return &Ranker{classifier: NewClassifier(v), params: params}
}

// Classifier exposes the category classifier.
func (r *Ranker) Classifier() *Classifier {
	return r.classifier
}

// ImpactScore computes the 0-100 score for one keyword.
func (r *Ranker) ImpactScore(category types.Category, jdFreq int, inResume bool) int {
	emphasis := clamp01(math.Log2(float64(jdFreq)+1) / r.params.EmphasisDivisor)

	multiplier := r.params.MissingMultiplier
	if inResume {
		multiplier = r.params.PresentMultiplier
	}

	score := int(math.Round(100 * emphasis * r.classifier.Weight(category) * multiplier))
	return min(max(score, 0), maxImpactScore)
}

// RankKeywordsByAtsImpact scores every keyword and sorts the rows missing
// first, then by impact score, JD frequency and term.
func (r *Ranker) RankKeywordsByAtsImpact(jobText, resumeText string, keywords []string) []types.RankedKeyword {
	jd := parsing.Normalize(jobText)
	resume := parsing.Normalize(resumeText)

	rows := make([]types.RankedKeyword, 0, len(keywords))
	for _, term := range keywords {
		category := r.classifier.Categorize(term)
		jdFreq := CountOccurrences(jd, term)
		inResume := CountOccurrences(resume, term) > 0
		score := r.ImpactScore(category, jdFreq, inResume)

		rows = append(rows, types.RankedKeyword{
			Term:        term,
			Category:    category,
			JDFreq:      jdFreq,
			InResume:    inResume,
			ImpactScore: score,
			Tier:        TierFromScore(score),
			Reason:      ImpactReason(jdFreq, inResume),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.InResume != b.InResume {
			return !a.InResume
		}
		if a.ImpactScore != b.ImpactScore {
			return a.ImpactScore > b.ImpactScore
		}
		if a.JDFreq != b.JDFreq {
			return a.JDFreq > b.JDFreq
		}
		return a.Term < b.Term
	})

	return rows
}

func clamp01(n float64) float64 {
	return math.Max(0, math.Min(1, n))
}
