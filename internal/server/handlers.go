package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/jobs"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadBytes caps résumé uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// defaultTopMatches is the number of matches returned when top_matches is absent.
const defaultTopMatches = 10

// defaultResultsPerPage is the posting pool size fetched per match request.
const defaultResultsPerPage = 20

var validate = validator.New()

// analyzeResponse is the payload for POST /analyze.
type analyzeResponse struct {
	Filename         string                      `json:"filename"`
	ATSScore         int                         `json:"ats_score"`
	ATSGrade         types.Grade                 `json:"ats_grade"`
	Feedback         map[types.Category][]string `json:"feedback"`
	ParsedData       parsedData                  `json:"parsed_data"`
	SuggestedKeyword string                      `json:"suggested_keyword"`
}

// parsedData is the subset of the parsed profile exposed to clients.
type parsedData struct {
	Skills      []string    `json:"skills"`
	ContactInfo contactInfo `json:"contact_info"`
	WordCount   int         `json:"word_count"`
}

type contactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// handleAnalyze scores an uploaded résumé for ATS compatibility.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	text, filename, err := s.readUpload(w, r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	profile := parsing.Extract(text)
	result := scoring.Score(profile)

	feedback := make(map[types.Category][]string, len(result.Categories))
	for category, score := range result.Categories {
		feedback[category] = score.Feedback
	}

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		Filename: filename,
		ATSScore: result.OverallScore,
		ATSGrade: result.Grade,
		Feedback: feedback,
		ParsedData: parsedData{
			Skills: profile.Skills,
			ContactInfo: contactInfo{
				Email: profile.Contact.Email,
				Phone: profile.Contact.Phone,
			},
			WordCount: profile.WordCount,
		},
		SuggestedKeyword: roles.Infer(profile.Skills),
	})
}

// jobSearchParams binds and validates GET /jobs/search query parameters.
type jobSearchParams struct {
	Keywords       string `validate:"required,min=1"`
	Location       string `validate:"omitempty,len=2"`
	Locations      string `validate:"omitempty"`
	ResultsPerPage int    `validate:"omitempty,min=1,max=50"`
	Page           int    `validate:"omitempty,min=1"`
}

// handleJobSearch proxies a keyword search to the job board. With a
// locations list it fans out one search per country.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	params, err := bindJobSearchParams(r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	var result *jobs.SearchResult
	if params.Locations != "" {
		result, err = s.jobClient.SearchMultipleLocations(r.Context(), params.Keywords,
			strings.Split(params.Locations, ","), params.ResultsPerPage)
	} else {
		result, err = s.jobClient.Search(r.Context(), jobs.SearchParams{
			Keywords:       params.Keywords,
			Location:       params.Location,
			ResultsPerPage: params.ResultsPerPage,
			Page:           params.Page,
		})
	}
	if err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleMatchJobs uploads a résumé, searches for matching postings, and
// ranks them by semantic similarity.
func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	text, _, err := s.readUpload(w, r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	profile := parsing.Extract(text)

	keywords := strings.TrimSpace(r.FormValue("keywords"))
	if keywords == "" {
		keywords = roles.Infer(profile.Skills)
	}

	topMatches, err := formIntValue(r, "top_matches", defaultTopMatches)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	resultsPerPage, err := formIntValue(r, "results_per_page", defaultResultsPerPage)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	location := strings.TrimSpace(r.FormValue("location"))
	searchResult, err := s.jobClient.Search(r.Context(), jobs.SearchParams{
		Keywords:       keywords,
		Location:       location,
		ResultsPerPage: resultsPerPage,
	})
	if err != nil {
		s.handlerError(w, err)
		return
	}

	resumeText := matching.BuildResumeText(profile, text)
	matchResult, err := s.matcher.Match(r.Context(), resumeText, searchResult.Jobs, topMatches)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, matchResult)
}

// alternateKeywordRequest is the body for POST /keywords/alternate.
type alternateKeywordRequest struct {
	Skills  []string `json:"skills" validate:"required,min=1,dive,min=1"`
	Current string   `json:"current" validate:"required,min=1"`
}

// handleAlternateKeyword suggests a different search keyword for the same
// skill set, for clients whose first search came back thin.
func (s *Server) handleAlternateKeyword(w http.ResponseWriter, r *http.Request) {
	var req alternateKeywordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handlerError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		s.handlerError(w, &ErrValidation{Field: "body", Message: validationMessage(err)})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"keyword": roles.Alternate(req.Skills, req.Current),
	})
}

// readUpload pulls the résumé file out of a multipart form and extracts its
// text. Only .pdf and .docx uploads are accepted; plain text stays a
// CLI-only format.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", "", &ErrFileTooLarge{MaxBytes: maxUploadBytes}
		}
		return "", "", &ErrValidation{Field: "body", Message: "expected multipart form data with a 'file' field"}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", "", &ErrValidation{Field: "file", Message: "missing file upload"}
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return "", "", ingestion.ErrUnsupportedFormat
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read upload: %w", err)
	}

	text, err := ingestion.ExtractDocument(data, header.Filename)
	if err != nil {
		if errors.Is(err, ingestion.ErrNoText) {
			return "", "", &ErrUnreadableDocument{Filename: header.Filename}
		}
		return "", "", err
	}

	return text, header.Filename, nil
}

// handlerError logs and writes an error with the status HTTPStatus chooses.
func (s *Server) handlerError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	} else {
		s.logger.Info("request rejected", zap.Error(err), zap.Int("status", status))
	}
	s.errorResponse(w, status, err.Error())
}

func bindJobSearchParams(r *http.Request) (*jobSearchParams, error) {
	query := r.URL.Query()
	params := &jobSearchParams{
		Keywords:  strings.TrimSpace(query.Get("keywords")),
		Location:  strings.TrimSpace(query.Get("location")),
		Locations: strings.TrimSpace(query.Get("locations")),
	}

	for key, target := range map[string]*int{
		"results_per_page": &params.ResultsPerPage,
		"page":             &params.Page,
	} {
		if raw := query.Get(key); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return nil, &ErrValidation{Field: key, Message: "must be an integer"}
			}
			*target = value
		}
	}

	if err := validate.Struct(params); err != nil {
		return nil, &ErrValidation{Field: "query", Message: validationMessage(err)}
	}
	return params, nil
}

// formIntValue reads an optional integer form field, constrained to 1..50.
func formIntValue(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > 50 {
		return 0, &ErrValidation{Field: key, Message: "must be an integer between 1 and 50"}
	}
	return value, nil
}

func decodeJSON(r *http.Request, target any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return fmt.Sprintf("field %s failed %s validation", first.Field(), first.Tag())
	}
	return err.Error()
}
