package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/schemas"
	reportschemas "github.com/jonathan/resume-matcher/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	reportschemas.KeywordReportFile,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_Compile(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			abs, err := filepath.Abs(schemaFile)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + abs))
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestKeywordReport_MatchesFileOnDisk(t *testing.T) {
	data, err := os.ReadFile(reportschemas.KeywordReportFile)
	require.NoError(t, err)
	assert.Equal(t, string(data), reportschemas.KeywordReport())
}

func TestKeywordReport_ValidatesWrittenReport(t *testing.T) {
	r := report.NewAnalyzer(report.DefaultSettings()).New(
		"Senior Software Engineer\nRequired:\n- Go and PostgreSQL\n- Kubernetes (Helm a plus)",
		"Go services on Kubernetes",
	)

	out := filepath.Join(t.TempDir(), "report.json")
	data, err := json.MarshalIndent(r, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(out, data, 0644))

	err = schemas.ValidateJSON(reportschemas.KeywordReportFile, out)
	assert.NoError(t, err)
}
