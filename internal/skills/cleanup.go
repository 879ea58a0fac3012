package skills

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Stage is one cleanup pass over the candidate keyword list. A stage only
// removes or replaces candidates; it never invents new ones, and it keeps the
// relative order of what survives.
type Stage func(candidates []string) []string

// RunStages applies stages in order.
func RunStages(candidates []string, stages ...Stage) []string {
	out := candidates
	for _, stage := range stages {
		out = stage(out)
	}
	return out
}

const edgeCutset = "\"'`.,;:!?()[]{}<>“”‘’"

// StripPunctuation trims punctuation, quotes and brackets from both ends of each
// candidate and drops candidates left empty.
func StripPunctuation(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(strings.Trim(strings.TrimSpace(c), edgeCutset))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// bannedSubstrings mark benefits, legal and compliance boilerplate.
var bannedSubstrings = []string{
	"insurance",
	"401k",
	"401(k)",
	"vacation",
	"disclaimer",
	"eeo",
	"dental",
	"medical",
	"benefit",
	"salary",
	"paid time off",
	"equal opportunity",
	"equal employment",
	"immunization",
	"sponsorship",
	"compensation",
	"holiday",
	"disability",
}

// genericHeadWords carry no skill meaning on their own. A multi-word candidate
// made mostly of these is a fragment of requirement prose, not a skill.
var genericHeadWords = toSet(
	"strong", "solid", "proven", "deep", "excellent", "good", "great",
	"understanding", "knowledge", "experience", "experienced", "ability",
	"familiarity", "proficiency", "background", "fundamentals",
	"performance", "services", "protocols", "languages", "language",
	"skills", "skill", "hands", "working", "years", "year",
	"a", "an", "the", "of", "to", "in", "on", "for", "and", "or", "with", "as",
)

// GarbageFilter drops candidates that cannot be skills: words without letters,
// unknown single words, boilerplate phrases, and prose fragments.
func GarbageFilter(v *vocab.Vocabulary) Stage {
	return func(candidates []string) []string {
		out := make([]string, 0, len(candidates))
		for _, c := range candidates {
			if !isGarbageKeyword(v, c) {
				out = append(out, c)
			}
		}
		return out
	}
}

func isGarbageKeyword(v *vocab.Vocabulary, keyword string) bool {
	kw := strings.ToLower(keyword)
	tokens := strings.Fields(kw)
	if len(tokens) == 0 {
		return true
	}

	for _, t := range tokens {
		if strings.IndexFunc(t, unicode.IsLetter) < 0 {
			return true
		}
	}

	if len(tokens) == 1 {
		t := tokens[0]
		if !v.IsHardSkill(t) && !v.IsSoftSignal(t) && !v.IsAcronym(t) && !v.IsCanonicalPhrase(t) {
			return true
		}
	}

	for _, banned := range bannedSubstrings {
		if strings.Contains(kw, banned) {
			return true
		}
	}

	if len(tokens) > 1 {
		meaningful := 0
		for _, t := range tokens {
			if !genericHeadWords[t] {
				meaningful++
			}
		}
		if meaningful <= 1 {
			return true
		}
	}

	return false
}

// SuppressSubTokens drops single-word candidates that already appear as a token
// of a multi-word candidate.
func SuppressSubTokens(candidates []string) []string {
	inPhrase := make(map[string]bool)
	for _, c := range candidates {
		tokens := strings.Fields(c)
		if len(tokens) < 2 {
			continue
		}
		for _, t := range tokens {
			inPhrase[t] = true
		}
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !strings.Contains(c, " ") && inPhrase[c] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CollapseEquivalents keeps one candidate per equivalence key (punctuation
// stripped, "and" removed, tokens sorted). A variant containing " and " beats
// one without; otherwise the longer string wins. The group keeps the position
// of its first member.
func CollapseEquivalents(candidates []string) []string {
	var order []string
	best := make(map[string]string)

	for _, c := range candidates {
		key := equivalenceKey(c)
		existing, seen := best[key]
		if !seen {
			order = append(order, key)
			best[key] = c
			continue
		}
		if preferVariant(c, existing) {
			best[key] = c
		}
	}

	out := make([]string, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

func equivalenceKey(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)

	var tokens []string
	for _, t := range strings.Fields(cleaned) {
		if t != "and" {
			tokens = append(tokens, t)
		}
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func preferVariant(candidate, existing string) bool {
	candAnd := strings.Contains(candidate, " and ")
	existAnd := strings.Contains(existing, " and ")
	if candAnd != existAnd {
		return candAnd
	}
	return len(candidate) > len(existing)
}

// SuppressAliasExpansions drops candidates whose token set strictly contains the
// token set of a canonical alias phrase, e.g. "real time systems" once
// "real time" is a known phrase.
func SuppressAliasExpansions(v *vocab.Vocabulary) Stage {
	var canonicalTokens []map[string]bool
	for _, a := range v.PhraseAliases() {
		if set := toSet(parsing.Words(parsing.Normalize(a.Canonical))...); len(set) > 0 {
			canonicalTokens = append(canonicalTokens, set)
		}
	}

	return func(candidates []string) []string {
		out := make([]string, 0, len(candidates))
		for _, c := range candidates {
			tokens := toSet(parsing.Words(parsing.Normalize(c))...)
			if expandsAlias(tokens, canonicalTokens) {
				continue
			}
			out = append(out, c)
		}
		return out
	}
}

func expandsAlias(tokens map[string]bool, canonicals []map[string]bool) bool {
	for _, canon := range canonicals {
		if len(tokens) <= len(canon) {
			continue
		}
		contained := true
		for t := range canon {
			if !tokens[t] {
				contained = false
				break
			}
		}
		if contained {
			return true
		}
	}
	return false
}

func toSet(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
