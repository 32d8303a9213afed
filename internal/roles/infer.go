// Package roles infers a job-search keyword phrase from an extracted skill set.
package roles

import "strings"

// DefaultRole is returned when no skills are available to classify.
const DefaultRole = "software developer"

// roleCategory defines one named skill category. Categories are evaluated in
// declaration order, which doubles as the tie-break priority.
type roleCategory struct {
	Name     string
	Role     string
	Keywords []string
}

var roleCategories = []roleCategory{
	{"frontend", "frontend developer", []string{"react", "angular", "vue", "svelte", "css", "html", "javascript", "typescript", "tailwind", "next.js", "jquery"}},
	{"backend", "backend developer", []string{"python", "java", "go", "golang", "node", "django", "flask", "spring", "rails", "php", "express", "fastapi", "c#", "ruby"}},
	{"fullstack", "full stack developer", []string{"full stack", "fullstack"}},
	{"mobile", "mobile developer", []string{"android", "ios", "flutter", "react native", "swift", "kotlin", "xamarin"}},
	{"data-science", "data scientist", []string{"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn", "nlp", "keras", "data science"}},
	{"data-analyst", "data analyst", []string{"pandas", "numpy", "matplotlib", "excel", "tableau", "power bi", "sql"}},
	{"devops", "devops engineer", []string{"docker", "kubernetes", "jenkins", "terraform", "ansible", "ci/cd", "devops", "github actions"}},
	{"cloud", "cloud engineer", []string{"aws", "azure", "gcp", "google cloud", "serverless", "lambda", "ec2", "s3"}},
	{"database", "database administrator", []string{"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "oracle", "cassandra"}},
	{"security", "security engineer", []string{"security", "penetration", "oauth", "cryptography"}},
}

// alternateRoles maps skill keywords to alternative role phrases, scanned in
// declaration order when cycling to a different keyword. The phrases are
// deliberately varied so a non-overlapping alternative usually exists.
var alternateRoles = []struct {
	Keyword string
	Roles   []string
}{
	{"react", []string{"frontend developer", "ui engineer", "web engineer"}},
	{"angular", []string{"frontend developer", "ui engineer"}},
	{"vue", []string{"frontend developer", "web engineer"}},
	{"javascript", []string{"web developer", "frontend engineer"}},
	{"typescript", []string{"frontend engineer", "web developer"}},
	{"css", []string{"ui developer", "web designer"}},
	{"python", []string{"python developer", "software engineer", "data engineer"}},
	{"java", []string{"java developer", "software engineer"}},
	{"go", []string{"go developer", "systems engineer"}},
	{"node", []string{"node developer", "api engineer"}},
	{"django", []string{"python developer", "web engineer"}},
	{"machine learning", []string{"machine learning engineer", "ai specialist"}},
	{"tensorflow", []string{"machine learning engineer", "ai researcher"}},
	{"pandas", []string{"data analyst", "analytics specialist"}},
	{"sql", []string{"data analyst", "database specialist"}},
	{"aws", []string{"cloud engineer", "site reliability engineer", "solutions architect"}},
	{"azure", []string{"cloud engineer", "solutions architect"}},
	{"docker", []string{"devops engineer", "platform engineer"}},
	{"kubernetes", []string{"devops engineer", "infrastructure specialist"}},
	{"android", []string{"android developer", "mobile engineer"}},
	{"ios", []string{"ios developer", "mobile engineer"}},
	{"flutter", []string{"mobile developer", "app engineer"}},
}

// Infer maps a skill set to a best-guess job-search keyword phrase.
//
// Each skill counts toward a category when it contains one of the category's
// keywords (case-insensitive substring). If both the frontend and backend
// counts reach 2, the result is the full stack role regardless of other
// counts. Otherwise the category with the strictly highest count wins, ties
// resolved by declaration order. A winning count of zero falls back to
// "<first skill> developer"; an empty skill set yields DefaultRole.
func Infer(skills []string) string {
	if len(skills) == 0 {
		return DefaultRole
	}

	counts := countByCategory(skills)
	if counts["frontend"] >= 2 && counts["backend"] >= 2 {
		return "full stack developer"
	}

	best := roleCategories[0]
	bestCount := counts[best.Name]
	for _, cat := range roleCategories[1:] {
		if counts[cat.Name] > bestCount {
			best = cat
			bestCount = counts[cat.Name]
		}
	}
	if bestCount == 0 {
		return strings.ToLower(skills[0]) + " developer"
	}
	return best.Role
}

// Alternate returns a role phrase different from current, preferring one that
// shares no word token with it. It is a pure function of (skills, current),
// so cycling through keywords needs no server-side state.
//
// Candidates are enumerated in a fixed order: for each skill in order, the
// alternate role lists of every keyword the skill contains. When every
// candidate overlaps with current, the first candidate that is not current
// itself is returned.
func Alternate(skills []string, current string) string {
	candidates := enumerateCandidates(skills)
	if len(candidates) == 0 {
		return Infer(skills)
	}

	currentTokens := wordTokens(current)
	for _, candidate := range candidates {
		if candidate == current {
			continue
		}
		if !sharesToken(candidate, currentTokens) {
			return candidate
		}
	}
	for _, candidate := range candidates {
		if candidate != current {
			return candidate
		}
	}
	return current
}

func countByCategory(skills []string) map[string]int {
	counts := make(map[string]int, len(roleCategories))
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, cat := range roleCategories {
			for _, keyword := range cat.Keywords {
				if strings.Contains(lower, keyword) {
					counts[cat.Name]++
					break
				}
			}
		}
	}
	return counts
}

func enumerateCandidates(skills []string) []string {
	seen := map[string]bool{}
	var candidates []string
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, entry := range alternateRoles {
			if !strings.Contains(lower, entry.Keyword) {
				continue
			}
			for _, role := range entry.Roles {
				if !seen[role] {
					seen[role] = true
					candidates = append(candidates, role)
				}
			}
		}
	}
	return candidates
}

func wordTokens(phrase string) map[string]bool {
	tokens := map[string]bool{}
	for _, field := range strings.Fields(strings.ToLower(phrase)) {
		tokens[field] = true
	}
	return tokens
}

func sharesToken(candidate string, tokens map[string]bool) bool {
	for _, field := range strings.Fields(strings.ToLower(candidate)) {
		if tokens[field] {
			return true
		}
	}
	return false
}
