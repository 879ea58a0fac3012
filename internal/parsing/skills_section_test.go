package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFromSkillsSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Stops at next section",
			text:     "About us\nWe build things.\nSkills: Go, SQL, Kafka\nResponsibilities\nShip code",
			expected: "skills go sql kafka",
		},
		{
			name:     "Case insensitive heading",
			text:     "SKILLS\nReact; Redux\n  Benefits\nDental",
			expected: "skills react redux",
		},
		{
			name:     "Runs to end without boundary",
			text:     "Key skills: Docker",
			expected: "skills docker",
		},
		{
			name:     "No skills heading",
			text:     "Requirements\nDocker",
			expected: "",
		},
		{
			name:     "Empty text",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractFromSkillsSection(tt.text))
		})
	}
}

func TestExtractFromSkillsSection_WindowLimit(t *testing.T) {
	text := "Skills " + strings.Repeat("go ", 1000) + "kafka"

	chunk := ExtractFromSkillsSection(text)
	assert.LessOrEqual(t, len(chunk), SkillsSectionWindow)
	assert.NotContains(t, chunk, "kafka")
}
