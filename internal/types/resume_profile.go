// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds the contact fields detected in a resume.
// Empty strings mean the field was not found; absence is a valid outcome.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ResumeProfile is the structured profile extracted from raw resume text.
// It is created once per analysis request and never mutated afterwards.
type ResumeProfile struct {
	Contact          ContactInfo     `json:"contact_info"`
	Skills           []string        `json:"skills"`
	SectionsFound    map[string]bool `json:"sections_found"`
	WordCount        int             `json:"word_count"`
	BulletCount      int             `json:"bullet_count"`
	AchievementLines []string        `json:"achievement_lines"`
	ActionVerbHits   int             `json:"action_verb_hits"`
}

// HasSection reports whether a canonical section name was detected.
func (p *ResumeProfile) HasSection(name string) bool {
	return p.SectionsFound[name]
}
