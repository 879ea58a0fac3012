package parsing

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

// PhraseMatcher finds canonical multi-word skills in text. Patterns are
// compiled once at construction; a PhraseMatcher is safe for concurrent use.
type PhraseMatcher struct {
	phrases []compiledPhrase
	byKey   map[string]*compiledPhrase
}

type compiledPhrase struct {
	canonical string
	patterns  []*regexp.Regexp
}

// NewPhraseMatcher compiles every variant in the vocabulary's alias table.
func NewPhraseMatcher(v *vocab.Vocabulary) *PhraseMatcher {
	aliases := v.PhraseAliases()
	m := &PhraseMatcher{
		phrases: make([]compiledPhrase, 0, len(aliases)),
		byKey:   make(map[string]*compiledPhrase, len(aliases)),
	}
	for _, a := range aliases {
		cp := compiledPhrase{canonical: a.Canonical}
		for _, variant := range a.Variants {
			if re := CompileVariant(variant); re != nil {
				cp.patterns = append(cp.patterns, re)
			}
		}
		m.phrases = append(m.phrases, cp)
	}
	for i := range m.phrases {
		m.byKey[m.phrases[i].canonical] = &m.phrases[i]
	}
	return m
}

// ExtractPhraseMatches returns the canonical phrases with at least one variant
// present in text, in alias-table order. Only presence is tracked.
func (m *PhraseMatcher) ExtractPhraseMatches(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var found []string
	for _, p := range m.phrases {
		for _, re := range p.patterns {
			if re.MatchString(normalized) {
				found = append(found, p.canonical)
				break
			}
		}
	}
	return found
}

// RemovePhrasesFromText blanks out every variant of every matched canonical
// phrase so that phrase words are not re-tokenized as loose single skills.
func (m *PhraseMatcher) RemovePhrasesFromText(normalized string, matched []string) string {
	out := normalized
	for _, canonical := range matched {
		p, ok := m.byKey[canonical]
		if !ok {
			continue
		}
		for _, re := range p.patterns {
			out = re.ReplaceAllString(out, " ")
		}
	}
	return collapseSpaces(out)
}
