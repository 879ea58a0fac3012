package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Format is the detected format of an ingested document.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Metadata describes where ingested text came from
type Metadata struct {
	Source    string `json:"source,omitempty"` // File path, empty for URLs
	URL       string `json:"url,omitempty"`
	Format    Format `json:"format"`
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest of the cleaned text
	Platform  string `json:"platform,omitempty"` // Detected job board platform
	FromCache bool   `json:"from_cache,omitempty"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, format Format) *Metadata {
	return &Metadata{
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
