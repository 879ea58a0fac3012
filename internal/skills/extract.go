// Package skills turns a job description into a short list of canonical skill
// keywords and splits that list against a resume.
package skills

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

const (
	// MaxKeywords caps the extractor output.
	MaxKeywords = 24
	// MaxSoftSignals caps how many soft-signal words join the keyword list.
	MaxSoftSignals = 4
	minTokenLength = 2
)

// Extractor merges phrase matches, skills-section tokens and required-language
// candidates into one cleaned keyword list. It holds no mutable state and is
// safe for concurrent use.
type Extractor struct {
	vocab    *vocab.Vocabulary
	phrases  *parsing.PhraseMatcher
	required *parsing.RequiredLineExtractor
	stages   []Stage
}

// NewExtractor builds an Extractor over the given vocabulary and required-line weights.
func NewExtractor(v *vocab.Vocabulary, weights parsing.RequiredLineWeights) *Extractor {
	phrases := parsing.NewPhraseMatcher(v)
	return &Extractor{
		vocab:    v,
		phrases:  phrases,
		required: parsing.NewRequiredLineExtractor(phrases, weights),
		stages: []Stage{
			StripPunctuation,
			GarbageFilter(v),
			SuppressSubTokens,
			CollapseEquivalents,
			SuppressAliasExpansions(v),
		},
	}
}

// NewDefaultExtractor uses the embedded vocabulary and stock weights.
func NewDefaultExtractor() *Extractor {
	return NewExtractor(vocab.MustDefault(), parsing.DefaultRequiredLineWeights())
}

// PhraseMatcher exposes the compiled phrase matcher.
func (e *Extractor) PhraseMatcher() *parsing.PhraseMatcher {
	return e.phrases
}

// RequiredLines exposes the required-language extractor.
func (e *Extractor) RequiredLines() *parsing.RequiredLineExtractor {
	return e.required
}

// ExtractKeywords returns up to MaxKeywords canonical keywords for jobText.
// Empty or skill-free text yields an empty, non-nil list.
func (e *Extractor) ExtractKeywords(jobText string) []string {
	phraseMatches := e.phrases.ExtractPhraseMatches(jobText)
	withoutPhrases := e.phrases.RemovePhrasesFromText(parsing.Normalize(jobText), phraseMatches)
	skillsChunk := parsing.ExtractFromSkillsSection(jobText)

	var acronymsFound []string
	for _, a := range e.vocab.Acronyms() {
		if strings.Contains(skillsChunk, a) {
			acronymsFound = append(acronymsFound, a)
		}
	}

	var hardSkills, softSignals []string
	for _, tok := range e.candidateTokens(withoutPhrases + " " + skillsChunk) {
		switch {
		case e.vocab.IsHardSkill(tok):
			hardSkills = append(hardSkills, tok)
		case e.vocab.IsJunk(tok):
			// dropped
		case e.vocab.IsSoftSignal(tok):
			softSignals = append(softSignals, tok)
		}
	}

	var requiredCandidates []string
	for _, c := range e.required.ExtractRequiredLineKeywords(jobText) {
		if !e.vocab.IsJunk(c) {
			requiredCandidates = append(requiredCandidates, c)
		}
	}

	merged := newOrderedSet()
	merged.add(phraseMatches...)
	merged.add(acronymsFound...)
	merged.add(hardSkills...)
	merged.add(requiredCandidates...)
	merged.add(firstDistinct(softSignals, MaxSoftSignals)...)

	out := RunStages(merged.items, e.stages...)
	if len(out) > MaxKeywords {
		out = out[:MaxKeywords]
	}
	return out
}

// candidateTokens splits normalized text into rewritten single tokens, dropping
// tokens shorter than two characters or starting with a digit.
func (e *Extractor) candidateTokens(text string) []string {
	var out []string
	for _, tok := range parsing.Tokens(text) {
		if len(tok) < minTokenLength {
			continue
		}
		if unicode.IsDigit(rune(tok[0])) {
			continue
		}
		out = append(out, e.vocab.Rewrite(tok))
	}
	return out
}

func firstDistinct(items []string, limit int) []string {
	seen := make(map[string]bool, limit)
	var out []string
	for _, it := range items {
		if len(out) == limit {
			break
		}
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: make([]string, 0), seen: make(map[string]bool)}
}

func (s *orderedSet) add(items ...string) {
	for _, it := range items {
		if !s.seen[it] {
			s.seen[it] = true
			s.items = append(s.items, it)
		}
	}
}
