// Package jobs provides the client for the external job-search API (Adzuna).
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultBaseURL is the Adzuna jobs API root.
const DefaultBaseURL = "https://api.adzuna.com/v1/api/jobs"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 10 * time.Second

// supportedLocations is the country-code allow-list. Adzuna exposes more
// markets, but these are the ones the product supports.
var supportedLocations = map[string]bool{
	"gb": true, "de": true, "fr": true, "nl": true, "pl": true, "us": true,
}

// ErrMissingCredentials indicates the Adzuna credentials are not configured.
// This is an operator error and is raised at client construction, before any
// request is attempted.
var ErrMissingCredentials = errors.New("adzuna credentials are not configured (ADZUNA_APP_ID / ADZUNA_APP_KEY)")

// ErrEmptyKeywords indicates a search was requested without keywords.
var ErrEmptyKeywords = errors.New("search keywords must not be empty")

// Error represents a failed request to the job-search API.
type Error struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job search error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job search error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client calls the Adzuna job-search API.
type Client struct {
	appID      string
	appKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a job-search client. Missing credentials fail fast so
// serve startup reports the misconfiguration instead of the first request.
func NewClient(appID, appKey string) (*Client, error) {
	if appID == "" || appKey == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		appID:      appID,
		appKey:     appKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// NewClientWithBaseURL is NewClient with a custom API root, used by tests.
func NewClientWithBaseURL(appID, appKey, baseURL string) (*Client, error) {
	client, err := NewClient(appID, appKey)
	if err != nil {
		return nil, err
	}
	client.baseURL = strings.TrimRight(baseURL, "/")
	return client, nil
}

// SearchParams describes one job search.
type SearchParams struct {
	Keywords       string
	Location       string
	ResultsPerPage int
	Page           int
}

// SearchResult is a page of postings plus the upstream total.
type SearchResult struct {
	Jobs         []types.JobPosting `json:"jobs"`
	Count        int                `json:"count"`
	TotalResults int                `json:"total_results"`
}

// SupportedLocation reports whether a country code is on the allow-list.
func SupportedLocation(code string) bool {
	return supportedLocations[strings.ToLower(code)]
}

// Search fetches one page of postings matching the keywords.
// Zero results is a valid outcome, distinct from an error.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if strings.TrimSpace(params.Keywords) == "" {
		return nil, ErrEmptyKeywords
	}
	location := strings.ToLower(params.Location)
	if location == "" {
		location = "gb"
	}
	if !SupportedLocation(location) {
		return nil, &Error{Message: fmt.Sprintf("unsupported location %q", params.Location)}
	}
	if params.ResultsPerPage <= 0 {
		params.ResultsPerPage = 10
	}
	if params.Page <= 0 {
		params.Page = 1
	}

	endpoint := fmt.Sprintf("%s/%s/search/%d", c.baseURL, location, params.Page)
	query := url.Values{}
	query.Set("app_id", c.appID)
	query.Set("app_key", c.appKey)
	query.Set("what", params.Keywords)
	query.Set("results_per_page", strconv.Itoa(params.ResultsPerPage))
	query.Set("content-type", "application/json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &Error{Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusUnauthorized:
		return nil, &Error{StatusCode: resp.StatusCode, Message: "invalid API credentials"}
	case http.StatusTooManyRequests:
		return nil, &Error{StatusCode: resp.StatusCode, Message: "rate limit exceeded, try again later"}
	default:
		return nil, &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("API returned status %d", resp.StatusCode)}
	}

	var decoded adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: "failed to decode response", Cause: err}
	}

	jobs := make([]types.JobPosting, 0, len(decoded.Results))
	for _, result := range decoded.Results {
		jobs = append(jobs, result.toPosting())
	}

	return &SearchResult{
		Jobs:         jobs,
		Count:        len(jobs),
		TotalResults: decoded.Count,
	}, nil
}

// adzunaResponse mirrors the relevant parts of the Adzuna search payload.
type adzunaResponse struct {
	Count   int            `json:"count"`
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RedirectURL string `json:"redirect_url"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	ContractType string   `json:"contract_type"`
	Created      string   `json:"created"`
}

func (r adzunaResult) toPosting() types.JobPosting {
	return types.JobPosting{
		Title:        r.Title,
		Company:      r.Company.DisplayName,
		Location:     r.Location.DisplayName,
		Description:  CleanDescription(r.Description),
		SalaryMin:    r.SalaryMin,
		SalaryMax:    r.SalaryMax,
		ContractType: r.ContractType,
		URL:          r.RedirectURL,
		Created:      r.Created,
	}
}
