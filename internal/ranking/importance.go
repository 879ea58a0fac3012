// Package ranking scores extracted keywords: how strongly the job description
// asks for each one, and how much each one is likely to matter to an ATS filter.
package ranking

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	contextRadius = 10

	weightStrong  = 3.0
	weightNeutral = 1.0
	weightWeak    = 0.25

	// WeakScoreCap bounds the score of a keyword only ever mentioned in optional language.
	WeakScoreCap = 1.5
)

var (
	strongContextPhrases = []string{
		"must have",
		"required to",
		"required experience",
		"strong experience",
		"deep experience",
		"expert in",
		"hands on experience",
	}
	strongContextWords = []string{"must", "required", "strong", "deep", "expert"}
	weakContextTerms   = []string{"nice to have", "preferred", "bonus", "optional"}
)

// DetectLanguageStrength classifies a normalized context window. Strong
// signals win over weak ones.
func DetectLanguageStrength(context string) types.LanguageStrength {
	for _, p := range strongContextPhrases {
		if strings.Contains(context, p) {
			return types.StrengthStrong
		}
	}
	for _, w := range strongContextWords {
		if strings.Contains(context, w) {
			return types.StrengthStrong
		}
	}
	for _, w := range weakContextTerms {
		if strings.Contains(context, w) {
			return types.StrengthWeak
		}
	}
	return types.StrengthNeutral
}

// ComputeKeywordImportance scores every keyword by the language around each of
// its occurrences in jobText: 3 per strong context, 1 per neutral, 0.25 per weak.
// A mention inside parentheses is judged by the parenthetical alone, so
// "(Terraform preferred)" stays weak even on a "Strong knowledge of" line.
// Keywords that normalize to nothing are left out of the result.
func ComputeKeywordImportance(jobText string, keywords []string) map[string]types.ImportanceScore {
	doc := newContextDoc(jobText)
	result := make(map[string]types.ImportanceScore, len(keywords))

	for _, raw := range keywords {
		parts := parsing.Tokens(parsing.Normalize(raw))
		if len(parts) == 0 {
			continue
		}

		score := 0.0
		strongest := types.StrengthNeutral

		for i := 0; i+len(parts) <= len(doc.words); i++ {
			if !doc.matchesAt(i, parts) {
				continue
			}

			switch DetectLanguageStrength(doc.window(i, len(parts))) {
			case types.StrengthStrong:
				score += weightStrong
				strongest = types.StrengthStrong
			case types.StrengthWeak:
				score += weightWeak
				if strongest != types.StrengthStrong {
					strongest = types.StrengthWeak
				}
			default:
				score += weightNeutral
			}
		}

		if strongest == types.StrengthWeak && score > WeakScoreCap {
			score = WeakScoreCap
		}

		result[raw] = types.ImportanceScore{Score: score, Strongest: strongest}
	}

	return result
}

// contextDoc is the normalized word sequence of a job description. group[i] is
// 0 for top-level words and the 1-based index of the enclosing parenthetical
// otherwise.
type contextDoc struct {
	words []string
	group []int
	spans map[int][2]int // group -> [first, end) word index
}

func newContextDoc(text string) *contextDoc {
	doc := &contextDoc{spans: make(map[int][2]int)}
	for _, s := range splitParentheticals(text) {
		start := len(doc.words)
		for _, w := range parsing.Tokens(parsing.Normalize(s.text)) {
			doc.words = append(doc.words, w)
			doc.group = append(doc.group, s.group)
		}
		if s.group > 0 {
			doc.spans[s.group] = [2]int{start, len(doc.words)}
		}
	}
	return doc
}

func (d *contextDoc) matchesAt(i int, parts []string) bool {
	for j, p := range parts {
		if d.words[i+j] != p {
			return false
		}
	}
	return true
}

// window returns the words within contextRadius of an occurrence starting at
// i, limited to the occurrence's parenthetical when it starts inside one.
func (d *contextDoc) window(i, length int) string {
	lo, hi := 0, len(d.words)
	if g := d.group[i]; g > 0 {
		bounds := d.spans[g]
		lo, hi = bounds[0], bounds[1]
	}

	start := max(lo, i-contextRadius)
	end := min(hi, i+contextRadius+length)
	return strings.Join(d.words[start:end], " ")
}

type textSpan struct {
	text  string
	group int
}

// splitParentheticals cuts text into top-level runs and balanced top-level
// parentheticals. An unmatched "(" is left as ordinary text.
func splitParentheticals(text string) []textSpan {
	var spans []textSpan
	group := 0
	rest := text

	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			break
		}
		closing := matchingParen(rest, open)
		if closing < 0 {
			break
		}
		group++
		spans = append(spans,
			textSpan{text: rest[:open]},
			textSpan{text: rest[open+1 : closing], group: group},
		)
		rest = rest[closing+1:]
	}

	return append(spans, textSpan{text: rest})
}

func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
