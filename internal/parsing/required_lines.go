package parsing

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// MaxRequiredCandidates caps the output of the required-language extractor.
const MaxRequiredCandidates = 24

// RequiredLineWeights holds the line-strength boosts and per-source bonuses used
// to rank required-language candidates. The defaults were tuned by hand.
type RequiredLineWeights struct {
	MustHave       int // line contains "must have"
	RequiredBlock  int // line sits under a requirements header
	StrongLanguage int // line contains other obligation phrasing

	MustHavePhraseBonus int // phrase pulled from a "must have" line
	PhraseMatchBonus    int // canonical phrase found on a parsed line
	ListItemBonus       int // item of a "strong knowledge of" list
	WeakListItemBonus   int // same, when the line also says preferred/optional
}

// DefaultRequiredLineWeights returns the stock weights (60/40/25, +45/+30/+20/+5).
func DefaultRequiredLineWeights() RequiredLineWeights {
	return RequiredLineWeights{
		MustHave:            60,
		RequiredBlock:       40,
		StrongLanguage:      25,
		MustHavePhraseBonus: 45,
		PhraseMatchBonus:    30,
		ListItemBonus:       20,
		WeakListItemBonus:   5,
	}
}

// Rule tables. Each list is matched case-insensitively against a trimmed line.
var (
	requiredHeaders = []string{
		"required skills",
		"requirements",
		"required",
		"minimum qualifications",
		"minimum requirements",
		"basic qualifications",
		"qualifications",
	}

	stopSectionHeaders = []string{
		"disclaimer",
		"range and benefit",
		"oracle us offers",
		"benefits",
		"paid time off",
		"equal employment",
	}

	strongLinePhrases = []string{
		"must have",
		"must-have",
		"required",
		"strong experience",
		"hands-on",
		"hands on",
		"experience with",
		"proficient in",
		"expert in",
	}

	strongListPrefixes = []string{
		"strong knowledge of",
		"strong understanding of",
	}
)

// requiredStopWords never start or make up a "must have" phrase.
var requiredStopWords = toWordSet(
	"a", "an", "the", "of", "to", "in", "on", "for", "and", "or",
	"must", "have", "strong", "required", "preferred", "nice", "bonus", "optional",
	"prior", "background", "developing", "developed", "build", "building",
	"design", "designing", "work", "working", "team", "environment", "role",
	"candidate", "candidates",
	"experience", "skills", "skill", "ability", "years", "year", "total",
	"development", "software",
	"remote", "remotely", "hours", "est", "w2", "visa", "sponsorship",
	"third", "party", "parties",
	"benefits", "package", "medical", "dental", "vision", "insurance",
	"disability", "coverage", "match",
	"based", "area", "us", "usa",
	"understanding", "familiarity", "available", "fundamentals", "consistently",
	"comfortably", "excited", "learn", "learning", "extensive", "performance",
	"delivering", "deliver", "delivery", "language", "languages", "operating",
	"systems", "protocol", "protocols", "service", "services", "management",
	"troubleshooting", "scripting", "architecture", "architectures",
	"persistence", "knowledge",
)

var (
	mustHaveTail      = regexp.MustCompile(`\bmust\s+have\b[:\s]+(.*)$`)
	mustHaveQualifier = regexp.MustCompile(`\b(strong|hands on|hands-on|solid|proven|prior)\b`)
	mustHaveNoun      = regexp.MustCompile(`\b(experience|skills?|background|knowledge)\b`)

	parenthetical     = regexp.MustCompile(`\(([^)]+)\)`)
	listSeparator     = regexp.MustCompile(`,|\band\b`)
	weakMarker        = regexp.MustCompile(`\b(preferred|nice to have|optional|bonus)\b`)
	weakMarkerAnyCase = regexp.MustCompile(`(?i)\b(preferred|nice to have|optional|bonus)\b`)
	genericListNoun   = regexp.MustCompile(`\b(fundamentals?|technologies?|skills?|experience|background|knowledge|understanding)\b`)
)

// ScoredCandidate is one required-language candidate with its confidence score.
type ScoredCandidate struct {
	Phrase string `json:"phrase"`
	Score  int    `json:"score"`
}

// RequiredLineExtractor pulls short "clearly required" phrases out of
// requirement blocks and obligation lines of a job description.
type RequiredLineExtractor struct {
	phrases *PhraseMatcher
	weights RequiredLineWeights
}

// NewRequiredLineExtractor builds an extractor over the given phrase matcher.
func NewRequiredLineExtractor(phrases *PhraseMatcher, weights RequiredLineWeights) *RequiredLineExtractor {
	return &RequiredLineExtractor{phrases: phrases, weights: weights}
}

// ExtractRequiredLineKeywords returns up to MaxRequiredCandidates canonical
// phrases, highest confidence first, longer phrase first on ties.
func (e *RequiredLineExtractor) ExtractRequiredLineKeywords(jobText string) []string {
	scored := e.ExtractScored(jobText)
	out := make([]string, 0, len(scored))
	for _, c := range scored {
		out = append(out, c.Phrase)
	}
	return out
}

// ExtractScored is ExtractRequiredLineKeywords with scores attached.
func (e *RequiredLineExtractor) ExtractScored(jobText string) []ScoredCandidate {
	scores := newScoreBoard()
	w := e.weights

	inRequiredBlock := false
	blankStreak := 0

	for _, raw := range splitLines(jobText) {
		line := strings.TrimSpace(raw)

		if line == "" {
			blankStreak++
			if inRequiredBlock && blankStreak >= 2 {
				inRequiredBlock = false
			}
			continue
		}
		blankStreak = 0

		// Benefits and legal boilerplate produce nothing but noise from here on.
		if isStopSectionLine(line) {
			break
		}

		if looksLikeRequirementHeader(line) {
			inRequiredBlock = true
			continue
		}

		boost := e.lineStrengthBoost(line, inRequiredBlock)
		shouldParse := inRequiredBlock || boost >= w.MustHave

		if boost >= w.MustHave {
			// One authoritative phrase per "must have" line; tokenizing the rest
			// would split "widget farming" into two unrelated skills.
			if phrase, ok := extractMustHavePhrase(line); ok {
				scores.bump(phrase, boost+w.MustHavePhraseBonus)
				continue
			}
		}

		if boost >= w.StrongLanguage {
			bonus := w.ListItemBonus
			if weakMarkerAnyCase.MatchString(line) {
				bonus = w.WeakListItemBonus
			}
			for _, item := range extractStrongOfList(line) {
				scores.bump(item, boost+bonus)
			}
		}

		if !shouldParse {
			continue
		}

		for _, p := range e.phrases.ExtractPhraseMatches(line) {
			scores.bump(p, boost+w.PhraseMatchBonus)
		}
	}

	return scores.ranked(MaxRequiredCandidates)
}

func (e *RequiredLineExtractor) lineStrengthBoost(line string, inRequiredBlock bool) int {
	l := strings.ToLower(line)
	switch {
	case strings.Contains(l, "must have") || strings.Contains(l, "must-have"):
		return e.weights.MustHave
	case inRequiredBlock:
		return e.weights.RequiredBlock
	case containsAny(l, strongLinePhrases):
		return e.weights.StrongLanguage
	default:
		return 0
	}
}

func isStopSectionLine(line string) bool {
	lc := strings.ToLower(strings.TrimSpace(line))
	for _, h := range stopSectionHeaders {
		if strings.HasPrefix(lc, h) {
			return true
		}
	}
	return false
}

// looksLikeRequirementHeader accepts "Requirements", "REQUIRED SKILLS", "Required:"
// but not "Required: Bachelor's degree ...".
func looksLikeRequirementHeader(line string) bool {
	l := strings.TrimSpace(line)
	lc := strings.TrimSpace(strings.TrimSuffix(strings.ToLower(l), ":"))

	isHeader := false
	for _, h := range requiredHeaders {
		if lc == h {
			isHeader = true
			break
		}
	}
	if !isHeader {
		return false
	}

	isShort := len(lc) <= 28
	isAllCaps := l == strings.ToUpper(l) && strings.IndexFunc(l, isASCIIUpper) >= 0
	return isShort || isAllCaps || strings.HasSuffix(l, ":")
}

// extractMustHavePhrase turns "Must have strong widget farming experience" into
// "widget farming": the first two meaningful tokens after "must have".
func extractMustHavePhrase(line string) (string, bool) {
	l := strings.ReplaceAll(Normalize(line), "-", " ")

	m := mustHaveTail.FindStringSubmatch(l)
	if m == nil {
		return "", false
	}
	tail := strings.TrimSpace(m[1])
	if tail == "" {
		return "", false
	}

	cleaned := mustHaveQualifier.ReplaceAllString(tail, "")
	cleaned = mustHaveNoun.ReplaceAllString(cleaned, "")

	var tokens []string
	for _, t := range strings.Fields(cleaned) {
		if !requiredStopWords[t] {
			tokens = append(tokens, t)
		}
	}

	switch {
	case len(tokens) >= 2:
		return tokens[0] + " " + tokens[1], true
	case len(tokens) == 1:
		return tokens[0], true
	default:
		return "", false
	}
}

// extractStrongOfList splits "Strong knowledge of X, Y and Z (W preferred)" into
// X, Y, Z, W. Commas and parentheses are read before normalization removes them.
func extractStrongOfList(line string) []string {
	l := strings.ToLower(line)
	l = unicodeDashes.ReplaceAllString(l, "-")
	l = strings.ReplaceAll(l, "-", " ")
	l = collapseSpaces(lineBreaks.ReplaceAllString(l, " "))

	idx, prefix := -1, ""
	for _, p := range strongListPrefixes {
		if i := strings.Index(l, p); i >= 0 {
			idx, prefix = i, p
			break
		}
	}
	if idx < 0 {
		return nil
	}

	tail := strings.TrimSpace(l[idx+len(prefix):])
	if tail == "" {
		return nil
	}
	tail = parenthetical.ReplaceAllString(tail, ", $1")

	var items []string
	for _, part := range listSeparator.Split(tail, -1) {
		part = weakMarker.ReplaceAllString(part, "")
		part = genericListNoun.ReplaceAllString(part, "")
		tokens := strings.Fields(Normalize(part))
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) > 3 {
			tokens = tokens[:3]
		}
		items = append(items, strings.Join(tokens, " "))
	}
	return items
}

// scoreBoard keeps the best score seen per canonical phrase, in first-seen order.
type scoreBoard struct {
	order  []string
	scores map[string]int
}

func newScoreBoard() *scoreBoard {
	return &scoreBoard{scores: make(map[string]int)}
}

func (b *scoreBoard) bump(phrase string, score int) {
	key := CanonicalizeKeyword(phrase)
	if key == "" {
		return
	}
	existing, seen := b.scores[key]
	if !seen {
		b.order = append(b.order, key)
		b.scores[key] = score
		return
	}
	if score > existing {
		b.scores[key] = score
	}
}

func (b *scoreBoard) ranked(limit int) []ScoredCandidate {
	out := make([]ScoredCandidate, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, ScoredCandidate{Phrase: k, Score: b.scores[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return len(out[i].Phrase) > len(out[j].Phrase)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func isASCIIUpper(r rune) bool {
	return r <= unicode.MaxASCII && unicode.IsUpper(r)
}

func toWordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
