// Package ingestion turns uploaded résumé documents into clean plain text.
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)
var blankRunRe = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes extracted résumé text while preserving structure.
// Line endings are unified, per-line whitespace is collapsed, and runs of
// blank lines shrink to at most one blank line. Bullet markers and section
// heading lines survive untouched so downstream parsing can rely on them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses internal whitespace but keeps the bullet prefix and
// the line's leading indentation intact.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
