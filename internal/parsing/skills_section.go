package parsing

import (
	"regexp"
)

// SkillsSectionWindow is the number of characters read after the "skills" heading.
const SkillsSectionWindow = 1200

var (
	skillsHeading   = regexp.MustCompile(`(?i)skills`)
	sectionBoundary = regexp.MustCompile(`(?i)\n\s*(responsibilities|requirements|preferred|about|benefits)\b`)
)

// ExtractFromSkillsSection returns the normalized text of the region starting
// at the first "skills" (any case) and ending at the next responsibilities,
// requirements, preferred, about or benefits line, or after
// SkillsSectionWindow characters. Returns "" when the text has no "skills".
func ExtractFromSkillsSection(jobText string) string {
	loc := skillsHeading.FindStringIndex(jobText)
	if loc == nil {
		return ""
	}

	chunk := []rune(jobText[loc[0]:])
	if len(chunk) > SkillsSectionWindow {
		chunk = chunk[:SkillsSectionWindow]
	}
	slice := string(chunk)

	if stop := sectionBoundary.FindStringIndex(slice); stop != nil && stop[0] > 0 {
		slice = slice[:stop[0]]
	}

	return Normalize(slice)
}
