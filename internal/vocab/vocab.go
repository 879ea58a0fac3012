// Package vocab holds the static skill vocabulary: phrase aliases, hard-skill and
// junk-token sets, and the ATS category tables. A Vocabulary is immutable once
// built and is shared freely between goroutines.
package vocab

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default_vocabulary.yaml
var defaultVocabularyYAML []byte

// DefaultYAML returns the embedded default vocabulary file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultVocabularyYAML))
	copy(out, defaultVocabularyYAML)
	return out
}

// File is the on-disk (YAML) shape of a vocabulary.
type File struct {
	PhraseAliases []PhraseAlias     `yaml:"phrase_aliases" validate:"unique=Canonical,dive"`
	HardSkills    []string          `yaml:"hard_skills" validate:"dive,required"`
	SoftSignals   []string          `yaml:"soft_signals" validate:"dive,required"`
	Acronyms      []string          `yaml:"acronyms" validate:"dive,required"`
	TokenRewrites map[string]string `yaml:"token_rewrites" validate:"dive,keys,required,endkeys,required"`
	JunkTokens    []string          `yaml:"junk_tokens" validate:"dive,required"`
	Categories    []CategoryRule    `yaml:"categories" validate:"unique=Name,dive"`
	OtherWeight   float64           `yaml:"other_weight" validate:"gt=0"`
}

// PhraseAlias maps a canonical multi-word skill to its surface variants.
type PhraseAlias struct {
	Canonical string   `yaml:"canonical" validate:"required"`
	Variants  []string `yaml:"variants" validate:"min=1,dive,required"`
}

// CategoryRule lists the exact terms belonging to one ATS category and its weight.
type CategoryRule struct {
	Name   string   `yaml:"name" validate:"required,oneof='AWS/Cloud' 'DevOps/IaC' Backend Frontend 'Product/UX' Leadership"`
	Weight float64  `yaml:"weight" validate:"gt=0"`
	Terms  []string `yaml:"terms" validate:"dive,required"`
}

// LoadError reports a vocabulary file that could not be read, parsed or validated.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Vocabulary is the validated, lookup-ready form of a File.
type Vocabulary struct {
	aliases     []PhraseAlias
	canonical   map[string]bool
	hardSkills  map[string]bool
	softSignals []string
	softSet     map[string]bool
	acronyms    []string
	acronymSet  map[string]bool
	rewrites    map[string]string
	junk        map[string]bool
	categories  []CategoryRule
	otherWeight float64
}

var loadDefault = sync.OnceValues(func() (*Vocabulary, error) {
	return Parse(defaultVocabularyYAML, "(embedded default)")
})

// Default returns the embedded default vocabulary. It is parsed once per process.
func Default() (*Vocabulary, error) {
	return loadDefault()
}

// MustDefault is Default for callers that cannot proceed without the built-in tables.
func MustDefault() *Vocabulary {
	v, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary is invalid: %v", err))
	}
	return v
}

// Load reads a vocabulary YAML file from disk.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(data, path)
}

// Parse decodes and validates vocabulary YAML. source is used in error messages only.
func Parse(data []byte, source string) (*Vocabulary, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Path: source, Message: "failed to parse YAML", Cause: err}
	}
	v, err := New(f)
	if err != nil {
		return nil, &LoadError{Path: source, Message: "invalid vocabulary", Cause: err}
	}
	return v, nil
}

// New validates f and builds a Vocabulary from it. Terms are lowercased and trimmed.
func New(f File) (*Vocabulary, error) {
	if err := validator.New().Struct(f); err != nil {
		return nil, err
	}

	v := &Vocabulary{
		canonical:   make(map[string]bool, len(f.PhraseAliases)),
		hardSkills:  toSet(f.HardSkills),
		softSet:     toSet(f.SoftSignals),
		acronymSet:  toSet(f.Acronyms),
		junk:        toSet(f.JunkTokens),
		rewrites:    make(map[string]string, len(f.TokenRewrites)),
		otherWeight: f.OtherWeight,
	}

	for _, a := range f.PhraseAliases {
		alias := PhraseAlias{Canonical: clean(a.Canonical)}
		for _, variant := range a.Variants {
			alias.Variants = append(alias.Variants, clean(variant))
		}
		v.aliases = append(v.aliases, alias)
		v.canonical[alias.Canonical] = true
	}
	for _, s := range f.SoftSignals {
		v.softSignals = append(v.softSignals, clean(s))
	}
	for _, a := range f.Acronyms {
		v.acronyms = append(v.acronyms, clean(a))
	}
	for from, to := range f.TokenRewrites {
		v.rewrites[clean(from)] = clean(to)
	}
	for _, c := range f.Categories {
		rule := CategoryRule{Name: c.Name, Weight: c.Weight}
		for _, term := range c.Terms {
			rule.Terms = append(rule.Terms, clean(term))
		}
		v.categories = append(v.categories, rule)
	}

	return v, nil
}

// PhraseAliases returns the alias table in declaration order.
func (v *Vocabulary) PhraseAliases() []PhraseAlias {
	return v.aliases
}

// IsCanonicalPhrase reports whether term is a key of the alias table.
func (v *Vocabulary) IsCanonicalPhrase(term string) bool { return v.canonical[term] }

// IsHardSkill reports whether token is a curated hard skill.
func (v *Vocabulary) IsHardSkill(token string) bool { return v.hardSkills[token] }

// IsSoftSignal reports whether token is a soft signal such as "leadership".
func (v *Vocabulary) IsSoftSignal(token string) bool { return v.softSet[token] }

// IsAcronym reports whether token is on the acronym allow-list.
func (v *Vocabulary) IsAcronym(token string) bool { return v.acronymSet[token] }

// IsJunk reports whether token is a noise word.
func (v *Vocabulary) IsJunk(token string) bool { return v.junk[token] }

// Acronyms returns the acronym allow-list in declaration order.
func (v *Vocabulary) Acronyms() []string { return v.acronyms }

// Rewrite maps a token onto its canonical spelling; unknown tokens are returned unchanged.
func (v *Vocabulary) Rewrite(token string) string {
	if to, ok := v.rewrites[token]; ok {
		return to
	}
	return token
}

// Categories returns the category rules in priority order.
func (v *Vocabulary) Categories() []CategoryRule { return v.categories }

// OtherWeight is the weight of keywords that match no category.
func (v *Vocabulary) OtherWeight() float64 { return v.otherWeight }

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[clean(item)] = true
	}
	return set
}
