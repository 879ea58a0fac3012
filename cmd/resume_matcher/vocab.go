package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/vocab"
	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the built-in vocabulary YAML",
	Long:  "Writes the embedded vocabulary tables (phrase aliases, hard skills, acronyms, categories) so they can be edited and passed back with --vocabulary.",
	RunE:  runVocab,
}

var vocabOut string

func init() {
	vocabCmd.Flags().StringVarP(&vocabOut, "out", "o", "", "Path to output YAML file (stdout if omitted)")

	rootCmd.AddCommand(vocabCmd)
}

func runVocab(_ *cobra.Command, _ []string) error {
	data := vocab.DefaultYAML()
	if vocabOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(vocabOut); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(vocabOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", vocabOut, err)
	}
	return nil
}
