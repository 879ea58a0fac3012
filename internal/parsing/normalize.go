// Package parsing provides the text-level building blocks of keyword extraction:
// normalization, phrase-alias matching, skills-section slicing and
// required-language detection.
package parsing

import (
	"regexp"
	"strings"
)

var (
	unicodeDashes  = regexp.MustCompile(`[\x{2010}-\x{2015}]`)
	separatorChars = regexp.MustCompile(`[/,;:(){}\[\]|]`)
	lineBreaks     = regexp.MustCompile(`[\r\n\t]+`)
	disallowed     = regexp.MustCompile(`[^a-z0-9+.\- ]+`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	trailingPunct  = regexp.MustCompile(`[.,:;]+$`)
)

// Normalize lowercases text, turns separators into spaces, strips everything
// outside [a-z0-9+.\- ] and collapses whitespace. "+" and "." survive so that
// c++ and next.js stay intact. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = unicodeDashes.ReplaceAllString(s, "-")
	s = separatorChars.ReplaceAllString(s, " ")
	s = lineBreaks.ReplaceAllString(s, " ")
	s = disallowed.ReplaceAllString(s, " ")
	return collapseSpaces(s)
}

// BuildVariantRegex turns a human-written variant into a pattern that tolerates
// any run of spaces, hyphens or slashes between its words, so "real time",
// "real-time" and "real/time" all match one pattern.
func BuildVariantRegex(variant string) string {
	parts := strings.Fields(strings.ToLower(variant))
	if len(parts) == 0 {
		return ""
	}
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return `\b` + strings.Join(parts, `(?:\s+|-|/)+`) + `\b`
}

// CompileVariant compiles BuildVariantRegex(variant) case-insensitively.
// A blank variant yields nil.
func CompileVariant(variant string) *regexp.Regexp {
	pattern := BuildVariantRegex(variant)
	if pattern == "" {
		return nil
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

// CanonicalizeKeyword strips trailing punctuation, folds hyphens to spaces,
// lowercases and trims.
func CanonicalizeKeyword(s string) string {
	s = trailingPunct.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// Words splits normalized text into its space-separated tokens.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}

// Tokens is Words with sentence-final periods removed, so "docker." compares
// equal to "docker" while "next.js" is untouched. Tokens that were only dots
// are dropped.
func Tokens(normalized string) []string {
	fields := strings.Fields(normalized)
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimRight(f, "."); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
