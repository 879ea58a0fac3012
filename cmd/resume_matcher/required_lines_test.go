package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredLinesCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jobPath := writeTestFile(t, t.TempDir(), "job.txt", testJobDescription)

	output, err := exec.Command(binaryPath, "required-lines", "--job", jobPath, "--log-level", "error").Output()
	require.NoError(t, err)

	var phrases []string
	require.NoError(t, json.Unmarshal(output, &phrases))
	assert.NotEmpty(t, phrases)
	assert.LessOrEqual(t, len(phrases), parsing.MaxRequiredCandidates)
	assert.Contains(t, phrases, "aws lambda")
}

func TestRequiredLinesCommand_Scored(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jobPath := writeTestFile(t, t.TempDir(), "job.txt", testJobDescription)

	output, err := exec.Command(binaryPath, "required-lines", "--job", jobPath, "--scored", "--log-level", "error").Output()
	require.NoError(t, err)

	var scored []parsing.ScoredCandidate
	require.NoError(t, json.Unmarshal(output, &scored))
	require.NotEmpty(t, scored)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score, "candidates are sorted by score")
	}
}

func TestRequiredLinesCommand_MissingJob(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "required-lines").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
