// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-matcher/internal/report"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job        string `json:"job,omitempty"`                              // Path to job description file
	JobURL     string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from
	Resume     string `json:"resume,omitempty"`                           // Path to resume file
	Vocabulary string `json:"vocabulary,omitempty"`                       // Path to a replacement vocabulary YAML

	// Output
	Out            string `json:"out,omitempty"`                                         // Report output path (stdout if empty)
	FreeMissingMax *int   `json:"free_missing_max,omitempty" validate:"omitempty,gte=0"` // Missing keywords shown in the preview; nil means unset, 0 hides the preview

	// Scoring
	EmphasisDivisor   float64 `json:"emphasis_divisor,omitempty" validate:"gte=0"`         // Divisor applied to JD frequency
	PresentMultiplier float64 `json:"present_multiplier,omitempty" validate:"gte=0,lte=1"` // Impact multiplier for keywords already in the resume

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`                                                // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`                                                    // Print detailed debug information
	LogLevel    string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"` // zerolog level
	LogFormat   string `json:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`          // Log output format
	DatabaseURL string `json:"database_url,omitempty"`                                               // PostgreSQL connection URL
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	files := []struct {
		label string
		path  string
	}{
		{"job", c.Job},
		{"resume", c.Resume},
		{"vocabulary", c.Vocabulary},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.label, f.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Pointer fields: use default if unset, so an explicit 0 survives
	if result.FreeMissingMax == nil {
		n := report.DefaultFreeMissingMax
		if defaults.FreeMissingMax != nil {
			n = *defaults.FreeMissingMax
		}
		result.FreeMissingMax = &n
	}

	// Float fields
	if result.EmphasisDivisor == 0 {
		result.EmphasisDivisor = defaults.EmphasisDivisor
	}
	if result.PresentMultiplier == 0 {
		result.PresentMultiplier = defaults.PresentMultiplier
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyTo overrides the tunables of s that this config sets.
func (c *Config) ApplyTo(s report.Settings) report.Settings {
	if c.FreeMissingMax != nil {
		s.FreeMissingMax = *c.FreeMissingMax
	}
	if c.EmphasisDivisor > 0 {
		s.Impact.EmphasisDivisor = c.EmphasisDivisor
	}
	if c.PresentMultiplier > 0 {
		s.Impact.PresentMultiplier = c.PresentMultiplier
	}
	return s
}
