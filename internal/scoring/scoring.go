// Package scoring turns a resume profile into a weighted ATS score with
// categorized feedback.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Category weights. These are fixed and sum to exactly 100.
const (
	weightContactInfo  = 15
	weightSections     = 20
	weightSkills       = 25
	weightFormatting   = 15
	weightAchievements = 15
	weightActionVerbs  = 10
)

// Feedback markers for the three outcome levels.
const (
	markerPass = "✓"
	markerWarn = "⚠"
	markerFail = "✗"
)

// expectedSections are the canonical sections a resume is scored against.
// Each one found earns an equal share of the sections weight.
var expectedSections = []string{"experience", "education", "skills", "summary"}

// band maps a minimum count to earned points and a feedback outcome.
// Bands are scanned top-down, so they must be ordered by descending Min.
type band struct {
	Min     int
	Points  float64
	Marker  string
	Message string
}

var skillBands = []band{
	{8, 25, markerPass, "Excellent - %d skills found"},
	{5, 18, markerWarn, "Good - %d skills found. Add 3-5 more relevant skills"},
	{3, 10, markerWarn, "Fair - %d skills found. Add 5-8 more skills"},
	{1, 5, markerFail, "Weak - only %d skills. Add a dedicated Skills section with 8+ skills"},
	{0, 0, markerFail, "No recognizable skills found - add a Skills section"},
}

var achievementBands = []band{
	{3, 15, markerPass, "Great - %d quantified achievements found"},
	{2, 10, markerWarn, "Good - %d quantified achievements. Add 1-2 more"},
	{1, 5, markerWarn, "Only %d quantified achievement. Add numbers to show impact"},
	{0, 0, markerFail, "No quantified achievements - add numbers to show impact (e.g. 'Increased efficiency by 30%%')"},
}

var actionVerbBands = []band{
	{5, 10, markerPass, "Excellent use of action verbs (%d lines)"},
	{3, 7, markerWarn, "Good action verbs (%d lines). Add more like 'Achieved', 'Optimized'"},
	{1, 3, markerWarn, "Few action verbs (%d lines). Start bullets with verbs like 'Developed', 'Led'"},
	{0, 0, markerFail, "No action verbs found - start bullet points with strong verbs"},
}

var bulletBands = []band{
	{5, 8, markerPass, "%d bullet points found - good use of lists"},
	{1, 4, markerWarn, "Only %d bullet points - use more lists for readability"},
	{0, 0, markerFail, "No bullet points - use lists for readability"},
}

// Score evaluates a resume profile against the six ATS categories.
// It is a pure function of its input: identical profiles produce
// byte-identical feedback and scores.
func Score(profile *types.ResumeProfile) *types.ATSScoreResult {
	categories := map[types.Category]types.CategoryScore{
		types.CategoryContactInfo:  scoreContactInfo(profile),
		types.CategorySections:     scoreSections(profile),
		types.CategorySkills:       scoreSkills(profile),
		types.CategoryFormatting:   scoreFormatting(profile),
		types.CategoryAchievements: scoreAchievements(profile),
		types.CategoryActionVerbs:  scoreActionVerbs(profile),
	}

	total := 0.0
	for _, c := range categories {
		total += c.PointsEarned
	}
	overall := types.ClampScore(total)

	return &types.ATSScoreResult{
		OverallScore: overall,
		Grade:        types.GradeForScore(overall),
		Categories:   categories,
		Profile:      profile,
	}
}

func scoreContactInfo(profile *types.ResumeProfile) types.CategoryScore {
	score := types.CategoryScore{
		Category:  types.CategoryContactInfo,
		PointsMax: weightContactInfo,
	}

	if profile.Contact.Email != "" {
		score.PointsEarned += 10
		score.Feedback = append(score.Feedback, markerPass+" Email found")
	} else {
		score.Feedback = append(score.Feedback, markerFail+" Email missing - add a professional email address")
	}

	if profile.Contact.Phone != "" {
		score.PointsEarned += 5
		score.Feedback = append(score.Feedback, markerPass+" Phone number found")
	} else {
		score.Feedback = append(score.Feedback, markerFail+" Phone number missing - include a valid phone number")
	}

	return score
}

func scoreSections(profile *types.ResumeProfile) types.CategoryScore {
	score := types.CategoryScore{
		Category:  types.CategorySections,
		PointsMax: weightSections,
	}
	perSection := float64(weightSections) / float64(len(expectedSections))

	var found, missing []string
	for _, name := range expectedSections {
		if profile.HasSection(name) {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	sort.Strings(found)
	sort.Strings(missing)

	score.PointsEarned = perSection * float64(len(found))
	if len(found) > 0 {
		score.Feedback = append(score.Feedback,
			fmt.Sprintf("%s Found sections: %s", markerPass, strings.Join(found, ", ")))
	}
	for _, name := range missing {
		score.Feedback = append(score.Feedback,
			fmt.Sprintf("%s Missing section: %s", markerFail, name))
	}

	return score
}

func scoreSkills(profile *types.ResumeProfile) types.CategoryScore {
	return scoreBanded(types.CategorySkills, weightSkills, len(profile.Skills), skillBands)
}

func scoreFormatting(profile *types.ResumeProfile) types.CategoryScore {
	score := types.CategoryScore{
		Category:  types.CategoryFormatting,
		PointsMax: weightFormatting,
	}

	bullets := applyBands(profile.BulletCount, bulletBands)
	score.PointsEarned += bullets.Points
	score.Feedback = append(score.Feedback, bandFeedback(bullets, profile.BulletCount))

	words := profile.WordCount
	switch {
	case words >= 400 && words <= 1000:
		score.PointsEarned += 7
		score.Feedback = append(score.Feedback,
			fmt.Sprintf("%s Word count is %d - ideal length", markerPass, words))
	case words > 1000:
		score.PointsEarned += 3
		score.Feedback = append(score.Feedback,
			fmt.Sprintf("%s Word count is %d - ensure content is relevant and concise", markerWarn, words))
	case words > 0:
		score.PointsEarned += 2
		score.Feedback = append(score.Feedback,
			fmt.Sprintf("%s Word count is %d - consider adding more detail", markerWarn, words))
	default:
		score.Feedback = append(score.Feedback, markerFail+" Document contains no text")
	}

	return score
}

func scoreAchievements(profile *types.ResumeProfile) types.CategoryScore {
	return scoreBanded(types.CategoryAchievements, weightAchievements,
		len(profile.AchievementLines), achievementBands)
}

func scoreActionVerbs(profile *types.ResumeProfile) types.CategoryScore {
	return scoreBanded(types.CategoryActionVerbs, weightActionVerbs,
		profile.ActionVerbHits, actionVerbBands)
}

// scoreBanded builds a category score from a count and its band table.
func scoreBanded(category types.Category, max int, count int, bands []band) types.CategoryScore {
	matched := applyBands(count, bands)
	return types.CategoryScore{
		Category:     category,
		PointsEarned: matched.Points,
		PointsMax:    float64(max),
		Feedback:     []string{bandFeedback(matched, count)},
	}
}

// applyBands returns the first band whose minimum the count satisfies.
func applyBands(count int, bands []band) band {
	for _, b := range bands {
		if count >= b.Min {
			return b
		}
	}
	return bands[len(bands)-1]
}

func bandFeedback(b band, count int) string {
	if strings.Contains(b.Message, "%d") {
		return b.Marker + " " + fmt.Sprintf(b.Message, count)
	}
	return b.Marker + " " + strings.ReplaceAll(b.Message, "%%", "%")
}
