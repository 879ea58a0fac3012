package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testJobDescription = `Company: Acme Cloud Inc
Platform Engineer

Requirements:
Must have AWS Lambda experience
Strong knowledge of Docker, Kubernetes (Terraform preferred)
`

const testResume = `Jane Doe
Built services on AWS Lambda and Docker.
`

// getBinaryPath returns the path to the resume_matcher binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_matcher"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeTestFile writes content to name inside a fresh temp dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// envWithoutDatabase returns the current environment minus DATABASE_URL.
func envWithoutDatabase() []string {
	env := make([]string, 0, len(os.Environ()))
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "DATABASE_URL=") {
			continue
		}
		env = append(env, kv)
	}
	return env
}
