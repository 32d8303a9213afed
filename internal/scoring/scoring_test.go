package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func fullProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Contact: types.ContactInfo{Email: "a@b.com", Phone: "(555) 123-4567"},
		Skills:  []string{"Python", "Django", "AWS", "Docker", "PostgreSQL", "React", "Git", "Linux"},
		SectionsFound: map[string]bool{
			"experience": true, "education": true, "skills": true, "summary": true,
		},
		WordCount:        600,
		BulletCount:      8,
		AchievementLines: []string{"a", "b", "c"},
		ActionVerbHits:   6,
	}
}

func TestScore_PerfectProfileScores100(t *testing.T) {
	result := Score(fullProfile())

	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, types.GradeExcellent, result.Grade)
}

func TestScore_EmptyProfileScoresZero(t *testing.T) {
	result := Score(&types.ResumeProfile{SectionsFound: map[string]bool{}})

	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, types.GradePoor, result.Grade)
}

func TestScore_OverallEqualsSumOfCategories(t *testing.T) {
	profile := fullProfile()
	profile.Skills = profile.Skills[:4]
	profile.AchievementLines = profile.AchievementLines[:1]
	delete(profile.SectionsFound, "summary")

	result := Score(profile)

	sum := 0.0
	for _, c := range result.Categories {
		sum += c.PointsEarned
	}
	assert.Equal(t, result.OverallScore, int(sum))
}

func TestScore_CategoryMaximumsSumTo100(t *testing.T) {
	result := Score(fullProfile())

	totalMax := 0.0
	for _, c := range result.Categories {
		totalMax += c.PointsMax
	}
	assert.Equal(t, 100.0, totalMax)
}

func TestScore_AllCategoriesPresent(t *testing.T) {
	result := Score(&types.ResumeProfile{SectionsFound: map[string]bool{}})

	require.Len(t, result.Categories, 6)
	for _, category := range types.AllCategories() {
		assert.Contains(t, result.Categories, category)
	}
}

func TestScore_ContactInfoPartialCredit(t *testing.T) {
	profile := fullProfile()
	profile.Contact.Phone = ""

	result := Score(profile)

	contact := result.Categories[types.CategoryContactInfo]
	assert.Equal(t, 10.0, contact.PointsEarned)
	assert.Contains(t, strings.Join(contact.Feedback, "\n"), "Phone number missing")
}

func TestScore_SectionsEqualShares(t *testing.T) {
	profile := fullProfile()
	profile.SectionsFound = map[string]bool{"experience": true, "skills": true}

	result := Score(profile)

	sections := result.Categories[types.CategorySections]
	assert.Equal(t, 10.0, sections.PointsEarned)
	feedback := strings.Join(sections.Feedback, "\n")
	assert.Contains(t, feedback, "Missing section: education")
	assert.Contains(t, feedback, "Missing section: summary")
}

func TestScore_SkillBands(t *testing.T) {
	cases := []struct {
		skills int
		points float64
	}{
		{8, 25},
		{7, 18},
		{5, 18},
		{4, 10},
		{3, 10},
		{2, 5},
		{1, 5},
		{0, 0},
	}
	for _, tc := range cases {
		profile := fullProfile()
		profile.Skills = make([]string, tc.skills)

		result := Score(profile)

		assert.Equal(t, tc.points, result.Categories[types.CategorySkills].PointsEarned,
			"skills=%d", tc.skills)
	}
}

func TestScore_WordCountBands(t *testing.T) {
	cases := []struct {
		words  int
		points float64
	}{
		{400, 7},
		{1000, 7},
		{1001, 3},
		{399, 2},
		{1, 2},
		{0, 0},
	}
	for _, tc := range cases {
		profile := fullProfile()
		profile.WordCount = tc.words
		profile.BulletCount = 0

		result := Score(profile)

		assert.Equal(t, tc.points, result.Categories[types.CategoryFormatting].PointsEarned,
			"words=%d", tc.words)
	}
}

func TestScore_GradeBoundaries(t *testing.T) {
	cases := []struct {
		score int
		grade types.Grade
	}{
		{100, types.GradeExcellent},
		{90, types.GradeExcellent},
		{89, types.GradeGood},
		{75, types.GradeGood},
		{74, types.GradeFair},
		{60, types.GradeFair},
		{59, types.GradePoor},
		{0, types.GradePoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, types.GradeForScore(tc.score), "score=%d", tc.score)
	}
}

func TestScore_FeedbackMarkers(t *testing.T) {
	result := Score(&types.ResumeProfile{SectionsFound: map[string]bool{}})

	verbs := result.Categories[types.CategoryActionVerbs]
	require.NotEmpty(t, verbs.Feedback)
	assert.True(t, strings.HasPrefix(verbs.Feedback[0], "✗"))

	full := Score(fullProfile())
	skills := full.Categories[types.CategorySkills]
	assert.True(t, strings.HasPrefix(skills.Feedback[0], "✓"))
}

func TestScore_AchievementFeedbackUnescapesPercent(t *testing.T) {
	result := Score(&types.ResumeProfile{SectionsFound: map[string]bool{}})

	achievements := result.Categories[types.CategoryAchievements]
	require.NotEmpty(t, achievements.Feedback)
	assert.Contains(t, achievements.Feedback[0], "by 30%")
	assert.NotContains(t, achievements.Feedback[0], "%%")
}

func TestScore_Deterministic(t *testing.T) {
	first := Score(fullProfile())
	second := Score(fullProfile())

	assert.Equal(t, first, second)
}
