package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryCommands_RequireDatabase(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"history without database", []string{"history"}, "DATABASE_URL"},
		{"history with bad limit", []string{"history", "--limit", "0"}, "--limit must be positive"},
		{"delete with malformed id", []string{"history", "--delete", "not-a-uuid"}, "invalid report id"},
		{"delete without database", []string{"history", "--delete", "00000000-0000-0000-0000-000000000001"}, "DATABASE_URL"},
		{"show without id", []string{"show"}, "required"},
		{"show with malformed id", []string{"show", "--id", "not-a-uuid"}, "invalid report id"},
		{"show without database", []string{"show", "--id", "00000000-0000-0000-0000-000000000001"}, "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Env = envWithoutDatabase()
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}
