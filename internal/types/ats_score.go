package types

import "math"

// Category identifies one of the six weighted ATS scoring categories.
type Category string

// Scoring categories. The set is fixed; weights are defined in the scoring package.
const (
	CategoryContactInfo  Category = "contact_info"
	CategorySections     Category = "sections"
	CategorySkills       Category = "skills"
	CategoryFormatting   Category = "formatting"
	CategoryAchievements Category = "achievements"
	CategoryActionVerbs  Category = "action_verbs"
)

// AllCategories returns the categories in their canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryContactInfo,
		CategorySections,
		CategorySkills,
		CategoryFormatting,
		CategoryAchievements,
		CategoryActionVerbs,
	}
}

// CategoryScore holds the earned points and feedback for a single category.
type CategoryScore struct {
	Category     Category `json:"category"`
	PointsEarned float64  `json:"points_earned"`
	PointsMax    float64  `json:"points_max"`
	Feedback     []string `json:"feedback"`
}

// ATSScoreResult is the full output of the ATS scoring engine.
// Derived from a ResumeProfile; never mutated after creation.
type ATSScoreResult struct {
	OverallScore int                        `json:"overall_score"`
	Grade        Grade                      `json:"grade"`
	Categories   map[Category]CategoryScore `json:"categories"`
	Profile      *ResumeProfile             `json:"-"`
}

// Grade is a letter-style band derived from a 0-100 score.
type Grade string

// Grade bands, closed on the lower bound: a score of exactly 90 is Excellent.
const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeFair      Grade = "Fair"
	GradePoor      Grade = "Poor"
)

// GradeForScore maps a 0-100 score to its grade band.
// The same banding is used for ATS scores and job match scores.
func GradeForScore(score int) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 75:
		return GradeGood
	case score >= 60:
		return GradeFair
	default:
		return GradePoor
	}
}

// ClampScore bounds a raw score to the [0,100] range after rounding.
func ClampScore(raw float64) int {
	score := int(math.Round(raw))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
