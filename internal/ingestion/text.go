// Package ingestion reads job descriptions and resumes from files or URLs and
// cleans them into line-structured plain text.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/logger"
)

// ErrEmptyInput is returned when a document contains no text after cleaning.
var ErrEmptyInput = errors.New("input is empty")

var (
	innerWhitespace = regexp.MustCompile(`\s+`)
	blankLineRun    = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Markdown headings lose their indentation
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullets keep their indentation so nesting survives
	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	content := innerWhitespace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// DetectFormat picks a document format from the file extension, sniffing the
// content for HTML when the extension says nothing.
func DetectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".md", ".markdown":
		return FormatMarkdown
	case ".txt", ".text":
		return FormatText
	}

	head := strings.ToLower(strings.TrimSpace(string(content[:min(len(content), 512)])))
	if strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") {
		return FormatHTML
	}
	return FormatText
}

// HTMLToText converts an HTML document into cleaned, line-structured text.
func HTMLToText(html string) (string, error) {
	text, err := fetch.ExtractMainText(html, fetch.DefaultTextSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	return CleanText(text), nil
}

// IngestFromFile reads a text, markdown or HTML file and returns its cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := DetectFormat(path, content)

	var cleanedText string
	if format == FormatHTML {
		cleanedText, err = HTMLToText(string(content))
		if err != nil {
			return "", nil, fmt.Errorf("failed to convert %s: %w", path, err)
		}
	} else {
		cleanedText = CleanText(string(content))
	}

	if cleanedText == "" {
		return "", nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	metadata := NewMetadata(cleanedText, format)
	metadata.Source = path

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("chars", len(cleanedText)).
		Msg("ingested file")

	return cleanedText, metadata, nil
}
