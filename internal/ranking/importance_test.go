package ranking

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioJD = "Requirements:\nMust have AWS Lambda experience\nStrong knowledge of Docker, Kubernetes (Terraform preferred)"

func filler(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ", n))
}

func TestComputeKeywordImportance_Scenario(t *testing.T) {
	keywords := []string{"infrastructure as code", "docker", "kubernetes", "aws lambda", "terraform"}

	got := ComputeKeywordImportance(scenarioJD, keywords)
	require.Len(t, got, len(keywords))

	assert.Equal(t, types.StrengthWeak, got["terraform"].Strongest)
	assert.LessOrEqual(t, got["terraform"].Score, WeakScoreCap)
	assert.Equal(t, 0.25, got["terraform"].Score)

	assert.Equal(t, types.ImportanceScore{Score: 3, Strongest: types.StrengthStrong}, got["kubernetes"])
	assert.Equal(t, types.ImportanceScore{Score: 3, Strongest: types.StrengthStrong}, got["aws lambda"])
	assert.Equal(t, types.ImportanceScore{Score: 0, Strongest: types.StrengthNeutral}, got["infrastructure as code"])
}

func TestComputeKeywordImportance_WeakCap(t *testing.T) {
	jd := strings.Repeat("Nice to have: Rust, ", 10)

	got := ComputeKeywordImportance(jd, []string{"rust"})
	assert.Equal(t, types.StrengthWeak, got["rust"].Strongest)
	assert.Equal(t, WeakScoreCap, got["rust"].Score)
}

func TestComputeKeywordImportance_Strength(t *testing.T) {
	tests := []struct {
		name     string
		jd       string
		expected types.ImportanceScore
	}{
		{
			name:     "Neutral mention",
			jd:       "We use Go daily",
			expected: types.ImportanceScore{Score: 1, Strongest: types.StrengthNeutral},
		},
		{
			name:     "Strong beats earlier weak",
			jd:       "Go preferred. " + filler(12) + " must have go",
			expected: types.ImportanceScore{Score: 3.25, Strongest: types.StrengthStrong},
		},
		{
			name:     "Neutral then weak is weak",
			jd:       "We use Go " + filler(12) + " go optional",
			expected: types.ImportanceScore{Score: 1.25, Strongest: types.StrengthWeak},
		},
		{
			name:     "Not mentioned",
			jd:       "Nothing relevant here",
			expected: types.ImportanceScore{Score: 0, Strongest: types.StrengthNeutral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeKeywordImportance(tt.jd, []string{"go"})
			assert.Equal(t, tt.expected, got["go"])
		})
	}
}

func TestComputeKeywordImportance_PhraseOccurrence(t *testing.T) {
	got := ComputeKeywordImportance("Must have widget farming, "+filler(15)+" widget farming again", []string{"widget farming"})
	assert.Equal(t, types.ImportanceScore{Score: 4, Strongest: types.StrengthStrong}, got["widget farming"])
}

func TestComputeKeywordImportance_SkipsEmptyKeywords(t *testing.T) {
	got := ComputeKeywordImportance("anything", []string{"", "!!"})
	assert.Empty(t, got)
}

func TestDetectLanguageStrength(t *testing.T) {
	tests := []struct {
		context  string
		expected types.LanguageStrength
	}{
		{"must have docker", types.StrengthStrong},
		{"hands on experience with go", types.StrengthStrong},
		{"expert in go nice to have rust", types.StrengthStrong},
		{"rust is a bonus", types.StrengthWeak},
		{"optional rust", types.StrengthWeak},
		{"we use rust", types.StrengthNeutral},
		{"", types.StrengthNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguageStrength(tt.context))
		})
	}
}

func TestSplitParentheticals(t *testing.T) {
	got := splitParentheticals("a (b (c) d) e (unclosed")
	assert.Equal(t, []textSpan{
		{text: "a "},
		{text: "b (c) d", group: 1},
		{text: " e (unclosed"},
	}, got)
}
