package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/scoring"
)

var (
	analyzeJSON    bool
	analyzeProfile bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Score a local resume file for ATS compatibility",
	Long:  `Extract text from a PDF, DOCX, or TXT resume and print its ATS compatibility report. Runs entirely offline.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeProfile, "profile", false, "Also print the parsed profile summary")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := ingestion.ExtractDocument(data, path)
	if err != nil {
		return err
	}

	profile := parsing.Extract(text)
	result := scoring.Score(profile)

	if analyzeJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if analyzeProfile {
		printer.PrintProfile(profile)
	}
	printer.PrintScoreReport(result, roles.Infer(profile.Skills))
	return nil
}
