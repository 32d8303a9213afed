package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
john.doe@example.com | (555) 123-4567

SUMMARY
Backend engineer with 6 years of experience.

WORK EXPERIENCE
Senior Software Engineer, Acme Corp
• Developed a payment service in Python and Django
• Reduced API latency by 40%
• Managed a team of 5 engineers serving 2 million users

EDUCATION
B.S. Computer Science

SKILLS
Python, PostgreSQL, Docker, AWS, C++
`

func TestExtract_EmptyInputYieldsEmptyProfile(t *testing.T) {
	profile := Extract("")

	require.NotNil(t, profile)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.SectionsFound)
	assert.Zero(t, profile.WordCount)
	assert.Empty(t, profile.Contact.Email)
	assert.Empty(t, profile.Contact.Phone)
}

func TestExtract_ContactInfo(t *testing.T) {
	profile := Extract(sampleResume)

	assert.Equal(t, "john.doe@example.com", profile.Contact.Email)
	assert.Equal(t, "(555) 123-4567", profile.Contact.Phone)
}

func TestExtract_PhoneWithCountryCode(t *testing.T) {
	profile := Extract("Contact: +1 (212) 555-0175")

	assert.Equal(t, "+1 (212) 555-0175", profile.Contact.Phone)
}

func TestExtract_UKPhone(t *testing.T) {
	profile := Extract("Reach me on +44 20 7946 0958")

	assert.Equal(t, "+44 20 7946 0958", profile.Contact.Phone)
}

func TestExtract_YearRangeIsNotAPhone(t *testing.T) {
	profile := Extract("Acme Corp 2018 2022\nSoftware Engineer")

	assert.Empty(t, profile.Contact.Phone)
}

func TestExtract_SkillsFirstOccurrenceOrder(t *testing.T) {
	profile := Extract("Built services in Python using Django on AWS. More Python later.")

	assert.Equal(t, []string{"Python", "Django", "AWS"}, profile.Skills)
}

func TestExtract_SkillsWithNonWordCharacters(t *testing.T) {
	profile := Extract("Languages: C++, C#, Node.js")

	assert.Contains(t, profile.Skills, "C++")
	assert.Contains(t, profile.Skills, "C#")
	assert.Contains(t, profile.Skills, "node.js")
}

func TestExtract_SkillSubstringDoesNotMatch(t *testing.T) {
	// "java" must not match inside "javascript"
	profile := Extract("Expert in JavaScript development")

	assert.Contains(t, profile.Skills, "Javascript")
	assert.NotContains(t, profile.Skills, "Java")
}

func TestExtract_Sections(t *testing.T) {
	profile := Extract(sampleResume)

	assert.True(t, profile.HasSection("summary"))
	assert.True(t, profile.HasSection("experience"))
	assert.True(t, profile.HasSection("education"))
	assert.True(t, profile.HasSection("skills"))
}

func TestExtract_SectionSynonyms(t *testing.T) {
	profile := Extract("Employment History\n...\nTechnical Skills:\n...")

	assert.True(t, profile.HasSection("experience"))
	assert.True(t, profile.HasSection("skills"))
}

func TestExtract_LongLineIsNotASectionHeading(t *testing.T) {
	profile := Extract("My experience spans many industries and a variety of technical domains")

	assert.False(t, profile.HasSection("experience"))
}

func TestExtract_BulletAndVerbCounts(t *testing.T) {
	profile := Extract(sampleResume)

	assert.Equal(t, 3, profile.BulletCount)
	assert.Equal(t, 3, profile.ActionVerbHits)
}

func TestExtract_AchievementLines(t *testing.T) {
	profile := Extract(sampleResume)

	require.Len(t, profile.AchievementLines, 2)
	assert.Contains(t, profile.AchievementLines[0], "40%")
	assert.Contains(t, profile.AchievementLines[1], "2 million users")
}

func TestExtract_CurrencyIsAnAchievement(t *testing.T) {
	profile := Extract("- Saved $250,000 annually through automation")

	assert.Len(t, profile.AchievementLines, 1)
}

func TestExtract_WordCount(t *testing.T) {
	profile := Extract("one two three\nfour five")

	assert.Equal(t, 5, profile.WordCount)
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(sampleResume)
	second := Extract(sampleResume)

	assert.Equal(t, first, second)
}
