package report

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

const (
	companyScanLines = 8
	maxCompanyLine   = 60
	maxRoleLine      = 80
)

var (
	companyLabel   = regexp.MustCompile(`(?i)Company:\s*([^\n·|]+)\b`)
	atCompany      = regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9&.\- ]{2,})`)
	orgSuffix      = regexp.MustCompile(`(?i)solutions|inc|llc|corp|partners|technologies|systems`)
	aboutTheJob    = regexp.MustCompile(`(?i)about the job`)
	wordStartRegex = regexp.MustCompile(`\b\w`)
)

var roleHints = []string{
	"senior software engineer",
	"software engineer",
	"frontend engineer",
	"full stack engineer",
	"react developer",
	"senior react developer",
}

// GuessCompany looks for "Company: X", then "at X", then an org-looking line
// near the top of the posting. Returns "" when nothing fits.
func GuessCompany(jobText string) string {
	if m := companyLabel.FindStringSubmatch(jobText); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}

	if m := atCompany.FindStringSubmatch(jobText); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}

	lines := nonEmptyLines(jobText)
	if len(lines) > companyScanLines {
		lines = lines[:companyScanLines]
	}
	for _, line := range lines {
		if aboutTheJob.MatchString(line) {
			break
		}
		if len(line) > 2 && len(line) < maxCompanyLine && orgSuffix.MatchString(line) {
			return line
		}
	}

	return ""
}

// GuessRole returns the first line when it is short enough to be a title,
// otherwise the first known role phrase in the text, title-cased.
func GuessRole(jobText string) string {
	lines := nonEmptyLines(jobText)
	if len(lines) > 0 && len(lines[0]) < maxRoleLine {
		return lines[0]
	}

	normalized := parsing.Normalize(jobText)
	for _, hint := range roleHints {
		if strings.Contains(normalized, hint) {
			return wordStartRegex.ReplaceAllStringFunc(hint, strings.ToUpper)
		}
	}

	return ""
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
