package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	jobPath := writeTestFile(t, tmpDir, "job.txt", testJobDescription)
	alice := writeTestFile(t, tmpDir, "alice.txt", testResume)
	bob := writeTestFile(t, tmpDir, "bob.md", "Kubernetes, Docker, Terraform and AWS Lambda in production")
	outDir := filepath.Join(tmpDir, "reports")

	cmd := exec.Command(binaryPath, "batch", "--job", jobPath,
		"--resume", alice, "--resume", bob, "--out-dir", outDir, "--concurrency", "2", "--log-level", "error")
	output, err := cmd.Output()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], alice), "results keep input order")
	assert.True(t, strings.HasPrefix(lines[1], bob), "results keep input order")

	reports := make(map[string]types.KeywordReport)
	for _, name := range []string{"alice.report.json", "bob.report.json"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		var r types.KeywordReport
		require.NoError(t, json.Unmarshal(data, &r))
		reports[name] = r
	}

	assert.Equal(t, reports["alice.report.json"].Keywords, reports["bob.report.json"].Keywords)
	assert.Greater(t, reports["bob.report.json"].CoveragePercent, reports["alice.report.json"].CoveragePercent)
	assert.NotEqual(t, reports["alice.report.json"].ID, reports["bob.report.json"].ID)
}

func TestBatchCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	jobPath := writeTestFile(t, tmpDir, "job.txt", testJobDescription)
	resumePath := writeTestFile(t, tmpDir, "resume.txt", testResume)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"Missing --resume", []string{"batch", "--job", jobPath, "--out-dir", tmpDir}, "required"},
		{"Missing --out-dir", []string{"batch", "--job", jobPath, "--resume", resumePath}, "required"},
		{"Resume not found", []string{"batch", "--job", jobPath, "--resume", filepath.Join(tmpDir, "nope.txt"), "--out-dir", tmpDir}, "file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := exec.Command(binaryPath, tt.args...).CombinedOutput()
			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}
