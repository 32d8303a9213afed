package jobs

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxConcurrentSearches caps the fan-out so a broad multi-location search
// does not trip the upstream rate limit.
const maxConcurrentSearches = 3

// SearchMultipleLocations runs one search per location concurrently and
// merges the pages. Locations are deduplicated; the merged list is ordered
// by location code so results are stable across runs. A location whose
// search fails contributes nothing to the merged result instead of failing
// the whole call.
func (c *Client) SearchMultipleLocations(ctx context.Context, keywords string, locations []string, resultsPerLocation int) (*SearchResult, error) {
	seen := make(map[string]bool)
	var ordered []string
	for _, loc := range locations {
		code := strings.ToLower(strings.TrimSpace(loc))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		ordered = append(ordered, code)
	}
	if len(ordered) == 0 {
		ordered = []string{"gb"}
	}
	sort.Strings(ordered)

	results := make([]*SearchResult, len(ordered))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentSearches)
	for i, location := range ordered {
		i, location := i, location
		group.Go(func() error {
			result, err := c.Search(groupCtx, SearchParams{
				Keywords:       keywords,
				Location:       location,
				ResultsPerPage: resultsPerLocation,
			})
			if err != nil {
				// One down market must not kill the merged result;
				// its slot stays empty.
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = group.Wait()

	merged := &SearchResult{Jobs: []types.JobPosting{}}
	for _, result := range results {
		if result == nil {
			continue
		}
		merged.Jobs = append(merged.Jobs, result.Jobs...)
		merged.TotalResults += result.TotalResults
	}
	merged.Count = len(merged.Jobs)
	return merged, nil
}
