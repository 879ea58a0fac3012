package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFileName(t *testing.T) {
	issued := make(map[string]bool)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"plain", "resumes/alice.txt", "alice.report.json"},
		{"markdown", "bob.md", "bob.report.json"},
		{"duplicate stem", "other/alice.html", "alice-2.report.json"},
		{"third duplicate", "alice", "alice-3.report.json"},
		{"no extension", "resumes/carol", "carol.report.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reportFileName(tt.path, issued))
		})
	}
}

func TestReportFileName_SuffixCollidesWithRealStem(t *testing.T) {
	issued := make(map[string]bool)

	names := []string{
		reportFileName("a/cv.txt", issued),
		reportFileName("b/cv.md", issued),
		reportFileName("c/cv-2.txt", issued),
		reportFileName("d/cv.html", issued),
	}

	assert.Equal(t, []string{"cv.report.json", "cv-2.report.json", "cv-2-2.report.json", "cv-3.report.json"}, names)
}

func TestParseReportID(t *testing.T) {
	id := uuid.New()

	got, err := parseReportID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = parseReportID("not-a-uuid")
	assert.ErrorContains(t, err, "invalid report id")
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	require.NoError(t, writeJSON(path, []string{"docker", "go"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []string{"docker", "go"}, got)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	err := writeJSON(filepath.Join(t.TempDir(), "out.json"), make(chan int))
	assert.ErrorContains(t, err, "failed to marshal JSON")
}

func TestResolveDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")

	assert.Equal(t, "postgres://flag", resolveDatabaseURL("postgres://flag"))
	assert.Equal(t, "postgres://env", resolveDatabaseURL(""))

	t.Setenv("DATABASE_URL", "")
	assert.Empty(t, resolveDatabaseURL(""))
}

func TestOpenDatabase_RequiresURL(t *testing.T) {
	_, err := openDatabase(t.Context(), "")
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadVocabulary(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		v, err := loadVocabulary("")
		require.NoError(t, err)
		assert.Same(t, vocab.MustDefault(), v)
	})

	t.Run("from file", func(t *testing.T) {
		path := writeTestFile(t, t.TempDir(), "vocab.yaml", string(vocab.DefaultYAML()))
		v, err := loadVocabulary(path)
		require.NoError(t, err)
		assert.NotEmpty(t, v.PhraseAliases())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		var loadErr *vocab.LoadError
		assert.ErrorAs(t, err, &loadErr)
	})
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()

	path := writeTestFile(t, dir, "job.txt", testJobDescription)
	text, err := readDocument("job description", path)
	require.NoError(t, err)
	assert.Contains(t, text, "Must have AWS Lambda experience")

	_, err = readDocument("resume", filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "failed to read resume")
}
