// Package parsing extracts a structured resume profile from plain text.
package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// phonePatterns are tried in priority order; the first valid match wins.
var phonePatterns = []*regexp.Regexp{
	// US/Canada with country code: +1 555 123 4567, +1 (555) 123-4567
	regexp.MustCompile(`\+1[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	// Bare 10-digit NANP, optionally grouped: (555) 123-4567, 555.123.4567
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	// UK with country code: +44 20 1234 5678
	regexp.MustCompile(`\+44[-.\s]?\d{2,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),
	// UK 0-leading: 020 1234 5678
	regexp.MustCompile(`\b0\d{2,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}\b`),
	// Generic international: +49 30 12345678, +33 1 23 45 67 89
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{2,4}[-.\s]?\d{2,4}(?:[-.\s]?\d{2,4})?`),
	// Long plain digit run
	regexp.MustCompile(`\b\d{10,15}\b`),
}

var (
	nonDigitRe    = regexp.MustCompile(`\D`)
	yearTokenRe   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	percentRe     = regexp.MustCompile(`\d(?:[\d,.]*)\s?%`)
	currencyRe    = regexp.MustCompile(`[$€£]\s?\d`)
	multiplierRe  = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?[kKxX]\b`)
	quantityRe    *regexp.Regexp
	skillMatchers []skillMatcher
)

type skillMatcher struct {
	term string
	re   *regexp.Regexp
}

func init() {
	quantityRe = regexp.MustCompile(`(?i)\d[\d,.]*\s*(?:` + strings.Join(quantityWords, "|") + `)\b`)

	skillMatchers = make([]skillMatcher, 0, len(skillVocabulary))
	for _, term := range skillVocabulary {
		skillMatchers = append(skillMatchers, skillMatcher{term: term, re: skillRegexp(term)})
	}
}

// skillRegexp builds a case-insensitive matcher for a vocabulary term.
// Word boundaries are only asserted next to word characters, so terms like
// "c++" and "c#" still match at the end of a token.
func skillRegexp(term string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(term)
	if isWordByte(term[0]) {
		pattern = `\b` + pattern
	}
	if isWordByte(term[len(term)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Extract parses normalized resume text into a ResumeProfile.
// It is total and deterministic: empty input yields an empty profile,
// never an error.
func Extract(rawText string) *types.ResumeProfile {
	profile := &types.ResumeProfile{
		Skills:           []string{},
		SectionsFound:    map[string]bool{},
		AchievementLines: []string{},
	}
	if strings.TrimSpace(rawText) == "" {
		return profile
	}

	profile.Contact = extractContactInfo(rawText)
	profile.Skills = extractSkills(rawText)
	profile.WordCount = len(strings.Fields(rawText))

	lines := strings.Split(rawText, "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if canonical, ok := detectSection(trimmed); ok {
			profile.SectionsFound[canonical] = true
		}
		if isBulletLine(trimmed) {
			profile.BulletCount++
		}
		if isAchievementLine(trimmed) {
			profile.AchievementLines = append(profile.AchievementLines, trimmed)
		}
		if startsWithActionVerb(trimmed) {
			profile.ActionVerbHits++
		}
	}

	return profile
}

// extractContactInfo finds the first email and phone number in the text.
// A missing field is reported as an empty string, not an error.
func extractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{}
	info.Email = emailRe.FindString(text)

	// Collapse whitespace so numbers broken across runs still match.
	flat := strings.Join(strings.Fields(text), " ")
	for _, pattern := range phonePatterns {
		for _, candidate := range pattern.FindAllString(flat, -1) {
			if validPhone(candidate) {
				info.Phone = strings.TrimSpace(candidate)
				return info
			}
		}
	}
	return info
}

// validPhone filters out matches that are too short, too long, or look like
// years rather than phone numbers.
func validPhone(candidate string) bool {
	digits := nonDigitRe.ReplaceAllString(candidate, "")
	if len(digits) < 9 || len(digits) > 15 {
		return false
	}
	return !yearTokenRe.MatchString(candidate)
}

// extractSkills scans for vocabulary terms, preserving the order of first
// occurrence in the text and collapsing case-insensitive duplicates.
func extractSkills(text string) []string {
	type hit struct {
		pos  int
		term string
	}
	var hits []hit
	for _, m := range skillMatchers {
		if loc := m.re.FindStringIndex(text); loc != nil {
			hits = append(hits, hit{pos: loc[0], term: m.term})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := map[string]bool{}
	skills := []string{}
	for _, h := range hits {
		display := displaySkill(h.term)
		key := strings.ToLower(display)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, display)
	}
	return skills
}

// displaySkill normalizes a vocabulary term for display while keeping the
// lowercase term usable as a matching key.
func displaySkill(term string) string {
	switch {
	case upperSkills[term]:
		return strings.ToUpper(term)
	case term == "c#":
		return "C#"
	case term == "c++":
		return "C++"
	case strings.Contains(term, "."):
		// Dotted names (node.js, vue.js) keep their conventional casing.
		return term
	default:
		return strings.ToUpper(term[:1]) + term[1:]
	}
}

// detectSection reports whether a line is a section heading and returns the
// canonical section name. Headings are short lines consisting of a known
// phrase alone, in title case or all caps, optionally ending with a colon.
func detectSection(line string) (string, bool) {
	if len(line) > 48 {
		return "", false
	}
	normalized := strings.ToLower(strings.TrimRight(line, ": \t"))
	for _, s := range sectionSynonyms {
		if normalized == s.Phrase {
			return s.Canonical, true
		}
	}
	return "", false
}

// isBulletLine reports whether a line starts with a bullet glyph.
func isBulletLine(line string) bool {
	for _, prefix := range []string{"• ", "- ", "* ", "– ", "· "} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// isAchievementLine reports whether a line contains a quantified metric:
// a number adjacent to a percent sign, currency symbol, or quantity word.
func isAchievementLine(line string) bool {
	return percentRe.MatchString(line) ||
		currencyRe.MatchString(line) ||
		quantityRe.MatchString(line) ||
		multiplierRe.MatchString(line)
}

// startsWithActionVerb reports whether the first token of a line (after any
// bullet glyph) is a known strong verb.
func startsWithActionVerb(line string) bool {
	for _, prefix := range []string{"• ", "- ", "* ", "– ", "· "} {
		line = strings.TrimPrefix(line, prefix)
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(fields[0], ".,;:"))
	return actionVerbs[first]
}
