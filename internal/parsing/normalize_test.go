package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Lowercases and strips punctuation", "Hello, World!", "hello world"},
		{"Keeps plus and dot", "C++ / Next.js", "c++ next.js"},
		{"Unicode dash becomes hyphen", "Real–time", "real-time"},
		{"Line breaks and tabs", "a\tb\r\nc", "a b c"},
		{"Separators collapse", "  (AWS) [Lambda] {x} | y; z: ", "aws lambda x y z"},
		{"Non-ascii letters dropped", "Café latte", "caf latte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Must have AWS Lambda experience",
		"Strong knowledge of Docker, Kubernetes (Terraform preferred)",
		"C++/C#; Node.js — real‑time!!",
		"  \t\n ",
		"end-to-end -- testing ++ ..",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestBuildVariantRegex(t *testing.T) {
	assert.Equal(t, `\breal(?:\s+|-|/)+time\b`, BuildVariantRegex("Real Time"))
	assert.Equal(t, `\bnext\.js\b`, BuildVariantRegex("next.js"))
	assert.Equal(t, "", BuildVariantRegex("   "))
}

func TestCompileVariant(t *testing.T) {
	re := CompileVariant("real time")
	for _, s := range []string{"real time", "real-time", "real/time", "REAL   TIME", "a real - time feed"} {
		assert.True(t, re.MatchString(s), "should match %q", s)
	}
	for _, s := range []string{"realtime", "surreal timer"} {
		assert.False(t, re.MatchString(s), "should not match %q", s)
	}

	assert.Nil(t, CompileVariant(""))
}

func TestCanonicalizeKeyword(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{" Widget-Farming. ", "widget farming"},
		{"Docker,", "docker"},
		{"ci/cd", "ci/cd"},
		{"next.js", "next.js"},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalizeKeyword(tt.input))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"built", "on", "docker", "and", "next.js"}, Tokens("built on docker. and next.js."))
	assert.Empty(t, Tokens(".. ."))
	assert.Empty(t, Tokens(""))
}
