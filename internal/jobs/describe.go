package jobs

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanDescription strips HTML markup and collapses whitespace in a job
// description. Adzuna snippets arrive with inline tags and entity escapes;
// the matcher and the API both want plain text. Input that fails to parse
// is returned trimmed rather than dropped.
func CleanDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.ContainsAny(trimmed, "<&") {
		return collapseWhitespace(trimmed)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return collapseWhitespace(trimmed)
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
