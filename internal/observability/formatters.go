// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of detected skills listed in the report
	maxSkillsToShow = 10
)

// Printer handles formatted output for the analyze command
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable ATS compatibility report.
func (p *Printer) PrintScoreReport(result *types.ATSScoreResult, suggestedKeyword string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100 (%s)\n\n", result.OverallScore, result.Grade))

	categories := make([]types.Category, 0, len(result.Categories))
	for category := range result.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, category := range categories {
		score := result.Categories[category]
		sb.WriteString(fmt.Sprintf("%-14s %3.0f/%.0f\n", categoryLabel(category), score.PointsEarned, score.PointsMax))
		for _, line := range score.Feedback {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}

	if suggestedKeyword != "" {
		sb.WriteString(fmt.Sprintf("\nSuggested search keyword: %s", suggestedKeyword))
	}

	p.printBox("ATS COMPATIBILITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs a summary of the parsed resume profile.
func (p *Printer) PrintProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Email:    %s\n", valueOrDash(profile.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", valueOrDash(profile.Contact.Phone)))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", profile.WordCount))
	sb.WriteString(fmt.Sprintf("Bullets:  %d\n", profile.BulletCount))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxSkillsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxSkillsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxSkillsToShow))
		}
	}

	p.printBox("PARSED RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func categoryLabel(category types.Category) string {
	return strings.ReplaceAll(string(category), "_", " ")
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
