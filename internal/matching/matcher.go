// Package matching ranks job postings against a resume by semantic similarity.
package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Truncation caps for embedding inputs. Short samples keep embedding calls
// cheap without losing much ranking signal for resume-length documents.
const (
	resumeTextSample     = 1000
	jobDescriptionSample = 500
)

// Matcher ranks postings against resume text using a shared embedding model.
// A Matcher is safe for concurrent use; it holds no per-request state.
type Matcher struct {
	embedder llm.Client
}

// New creates a Matcher backed by the given embedding client.
func New(embedder llm.Client) *Matcher {
	return &Matcher{embedder: embedder}
}

// Match embeds the resume text and every posting, computes cosine similarity,
// and returns the topK postings ranked by descending match score. Ties keep
// the original posting order. Zero postings yields an empty result with an
// average score of 0, not an error.
func (m *Matcher) Match(ctx context.Context, resumeText string, postings []types.JobPosting, topK int) (*types.MatchResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("top_k must be positive, got %d", topK)
	}
	if len(postings) == 0 {
		return &types.MatchResult{Matches: []types.JobMatch{}}, nil
	}

	texts := make([]string, 0, len(postings)+1)
	texts = append(texts, truncate(resumeText, resumeTextSample))
	for _, posting := range postings {
		texts = append(texts, postingText(posting))
	}

	vectors, err := m.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume and postings: %w", err)
	}

	resumeVec := vectors[0]
	matches := make([]types.JobMatch, len(postings))
	for i, posting := range postings {
		similarity := CosineSimilarity(resumeVec, vectors[i+1])
		score := matchScore(similarity)
		matches[i] = types.JobMatch{
			Posting:    posting,
			Similarity: similarity,
			MatchScore: score,
			MatchGrade: types.GradeForScore(score),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if topK < len(matches) {
		matches = matches[:topK]
	}

	return &types.MatchResult{
		Matches:           matches,
		TotalJobsAnalyzed: len(postings),
		AverageScore:      averageScore(matches),
	}, nil
}

// BuildResumeText assembles the embedding input for a resume: the detected
// skills up front, then a sample of the raw text.
func BuildResumeText(profile *types.ResumeProfile, rawText string) string {
	var parts []string
	if len(profile.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(profile.Skills, " "))
	}
	if rawText != "" {
		parts = append(parts, truncate(rawText, resumeTextSample))
	}
	return strings.Join(parts, " ")
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Zero-length or mismatched vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// matchScore maps a cosine similarity to a 0-100 score. Similarities below
// zero clamp to 0; natural-language embeddings rarely produce them.
func matchScore(similarity float64) int {
	if similarity < 0 {
		similarity = 0
	}
	if similarity > 1 {
		similarity = 1
	}
	return int(math.Round(similarity * 100))
}

func postingText(posting types.JobPosting) string {
	return posting.Title + ". " + truncate(posting.Description, jobDescriptionSample)
}

// averageScore returns the mean match score of the returned set, rounded to
// two decimals. An empty set averages to 0.
func averageScore(matches []types.JobMatch) float64 {
	if len(matches) == 0 {
		return 0
	}
	total := 0
	for _, m := range matches {
		total += m.MatchScore
	}
	mean := float64(total) / float64(len(matches))
	return math.Round(mean*100) / 100
}

// truncate cuts s to at most limit bytes without splitting a rune, so the
// result is always valid UTF-8 for the embedding API.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
