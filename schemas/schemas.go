// Package schemas embeds the JSON Schemas for the artifacts the CLI writes.
package schemas

import _ "embed"

// KeywordReportFile is the schema file name, relative to this directory.
const KeywordReportFile = "keyword_report.schema.json"

//go:embed keyword_report.schema.json
var keywordReport string

// KeywordReport returns the JSON Schema of a keyword report.
func KeywordReport() string {
	return keywordReport
}
