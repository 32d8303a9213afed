package types

// JobPosting is a single external job listing. Read-only once fetched;
// the posting URL serves as its identity.
type JobPosting struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	SalaryMin    *float64 `json:"salary_min,omitempty"`
	SalaryMax    *float64 `json:"salary_max,omitempty"`
	ContractType string   `json:"contract_type,omitempty"`
	URL          string   `json:"url"`
	Created      string   `json:"created,omitempty"`
}

// JobMatch pairs a posting with its similarity to a resume.
type JobMatch struct {
	Posting    JobPosting `json:"job"`
	Similarity float64    `json:"-"`
	MatchScore int        `json:"match_score"`
	MatchGrade Grade      `json:"match_grade"`
}

// MatchResult is the ranked output of the semantic matcher.
// Matches are sorted by descending MatchScore; ties keep input order.
type MatchResult struct {
	Matches           []JobMatch `json:"matches"`
	TotalJobsAnalyzed int        `json:"total_jobs_analyzed"`
	AverageScore      float64    `json:"average_score"`
}
