package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabCommand_Stdout(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "vocab").Output()
	require.NoError(t, err)
	assert.Equal(t, string(vocab.DefaultYAML()), string(output))
}

func TestVocabCommand_RoundTrip(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outPath := filepath.Join(t.TempDir(), "vocab", "custom.yaml")

	output, err := exec.Command(binaryPath, "vocab", "--out", outPath).CombinedOutput()
	require.NoError(t, err, string(output))

	_, err = os.Stat(outPath)
	require.NoError(t, err)

	v, err := vocab.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, vocab.MustDefault().PhraseAliases(), v.PhraseAliases())
}
