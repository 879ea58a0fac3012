// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// LanguageStrength labels how strongly the job description asks for a keyword.
type LanguageStrength string

const (
	// StrengthStrong marks obligation language ("must have", "required", "expert in")
	StrengthStrong LanguageStrength = "strong"
	// StrengthNeutral marks a plain mention
	StrengthNeutral LanguageStrength = "neutral"
	// StrengthWeak marks optional language ("nice to have", "preferred", "bonus")
	StrengthWeak LanguageStrength = "weak"
)

// Category is the coarse ATS bucket a keyword falls into.
type Category string

const (
	CategoryCloud      Category = "AWS/Cloud"
	CategoryDevOps     Category = "DevOps/IaC"
	CategoryBackend    Category = "Backend"
	CategoryFrontend   Category = "Frontend"
	CategoryProduct    Category = "Product/UX"
	CategoryLeadership Category = "Leadership"
	CategoryOther      Category = "Other"
)

// AllCategories lists every category in classification priority order, Other last.
var AllCategories = []Category{
	CategoryCloud,
	CategoryDevOps,
	CategoryBackend,
	CategoryFrontend,
	CategoryProduct,
	CategoryLeadership,
	CategoryOther,
}

// Tier is the coarse impact bucket derived from an impact score.
type Tier string

const (
	TierHigh Tier = "HIGH"
	TierMed  Tier = "MED"
	TierLow  Tier = "LOW"
)

// MatchResult partitions extracted keywords by presence in the resume.
// Both lists keep extraction order.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// ImportanceScore is the frequency-weighted language-strength score of one keyword.
type ImportanceScore struct {
	Score     float64          `json:"score"`
	Strongest LanguageStrength `json:"strongest"`
}

// RankedKeyword is one row of the ATS impact ranking.
type RankedKeyword struct {
	Term        string   `json:"term"`
	Category    Category `json:"category"`
	JDFreq      int      `json:"jd_freq"`
	InResume    bool     `json:"in_resume"`
	ImpactScore int      `json:"impact_score"` // 0-100
	Tier        Tier     `json:"tier"`
	Reason      string   `json:"reason"`
}

// CategoryCoverage counts matched and missing keywords within one category.
type CategoryCoverage struct {
	Category Category `json:"category"`
	Matched  int      `json:"matched"`
	Missing  int      `json:"missing"`
}

// KeywordReport is the full result of comparing one job description with one resume.
type KeywordReport struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Company   string `json:"company,omitempty"`
	RoleGuess string `json:"role_guess,omitempty"`

	Keywords   []string                   `json:"keywords"`
	Match      MatchResult                `json:"match"`
	Importance map[string]ImportanceScore `json:"importance"`
	Ranked     []RankedKeyword            `json:"ranked"`

	CoveragePercent int                `json:"coverage_percent"`
	Breakdown       []CategoryCoverage `json:"breakdown"`

	// Free-tier preview of the missing list; the full list stays in Match.Missing.
	MissingCount   int      `json:"missing_count"`
	MissingPreview []string `json:"missing_preview"`
	HasMoreMissing bool     `json:"has_more_missing"`
}

// ReportSummary is a compact listing row for stored reports.
type ReportSummary struct {
	ID              uuid.UUID `json:"id"`
	Company         string    `json:"company,omitempty"`
	RoleGuess       string    `json:"role_guess,omitempty"`
	KeywordCount    int       `json:"keyword_count"`
	MissingCount    int       `json:"missing_count"`
	CoveragePercent int       `json:"coverage_percent"`
	CreatedAt       time.Time `json:"created_at"`
}
