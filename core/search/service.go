// ABOUTME: Search service fetching web results from the SerpAPI Google engine
// ABOUTME: Exposes the first organic snippet used by the summary stage

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"validity-app-api/core/domain"
	"validity-app-api/core/errors"
	"validity-app-api/core/interfaces"
	"validity-app-api/pkg/utils/html"
)

// DefaultEndpoint is the SerpAPI search URL
const DefaultEndpoint = "https://serpapi.com/search"

const (
	maxQueryLength = 500
	snippetTTL     = 24 * time.Hour
)

// SearchService queries the search provider
type SearchService struct {
	deps     interfaces.Dependencies
	apiKey   string
	endpoint string
}

// Option configures a SearchService
type Option func(*SearchService)

// WithEndpoint points the service at another SerpAPI-compatible URL
func WithEndpoint(endpoint string) Option {
	return func(s *SearchService) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// NewSearchService creates a new search service instance. An empty apiKey is
// allowed; every search then fails with a configuration error.
func NewSearchService(deps interfaces.Dependencies, apiKey string, opts ...Option) *SearchService {
	s := &SearchService{
		deps:     deps,
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validateQuery validates search query parameters
func (s *SearchService) validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &errors.ValidationError{Field: "query", Message: "search query cannot be empty"}
	}

	if len(query) > maxQueryLength {
		return &errors.ValidationError{Field: "query", Message: fmt.Sprintf("search query cannot exceed %d characters", maxQueryLength)}
	}

	return nil
}

type serpResponse struct {
	Error          string `json:"error"`
	OrganicResults []struct {
		Position int    `json:"position"`
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
	} `json:"organic_results"`
}

// Search returns every organic result for the query
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	results, err := s.search(ctx, query)
	s.observe(err)
	return results, err
}

func (s *SearchService) search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	if s.apiKey == "" {
		return nil, &errors.ConfigurationError{Key: "SERPAPI_API_KEY", Message: "search API key is not configured"}
	}

	if s.deps.HTTPClient == nil {
		return nil, &errors.ConfigurationError{Key: "http_client", Message: "HTTP client not configured"}
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", s.apiKey)
	apiURL := s.endpoint + "?" + params.Encode()

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return nil, &errors.SearchUnavailableError{Cause: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.SearchUnavailableError{StatusCode: resp.StatusCode()}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.SearchUnavailableError{StatusCode: resp.StatusCode(), Cause: fmt.Errorf("failed to read response: %w", err)}
	}

	var apiResponse serpResponse
	if err := json.Unmarshal(bodyBytes, &apiResponse); err != nil {
		return nil, &errors.SearchUnavailableError{StatusCode: resp.StatusCode(), Cause: fmt.Errorf("failed to parse search results: %w", err)}
	}

	if apiResponse.Error != "" || len(apiResponse.OrganicResults) == 0 {
		if apiResponse.Error != "" && s.deps.Logger != nil {
			s.deps.Logger.Info("Search provider returned an error message", map[string]interface{}{
				"query": query,
				"error": apiResponse.Error,
			})
		}
		return nil, &errors.NoResultsError{Query: query}
	}

	results := make([]domain.SearchResult, 0, len(apiResponse.OrganicResults))
	for i, r := range apiResponse.OrganicResults {
		position := r.Position
		if position == 0 {
			position = i + 1
		}
		results = append(results, domain.SearchResult{
			Position: position,
			Title:    html.StripHTML(r.Title),
			Link:     r.Link,
			Snippet:  html.StripHTML(r.Snippet),
		})
	}

	return results, nil
}

// FirstSnippet returns the snippet of the first organic result
func (s *SearchService) FirstSnippet(ctx context.Context, query string) (string, error) {
	cacheKey := fmt.Sprintf("search:snippet:%s", query)
	if s.deps.Cache != nil {
		data, err := s.deps.Cache.Get(ctx, cacheKey)
		if err == nil && len(data) > 0 {
			s.observeOutcome("cached")
			return string(data), nil
		}
	}

	results, err := s.search(ctx, query)
	if err != nil {
		s.observe(err)
		return "", err
	}

	snippet := strings.TrimSpace(results[0].Snippet)
	if snippet == "" {
		err := &errors.NoResultsError{Query: query}
		s.observe(err)
		return "", err
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(snippet), snippetTTL)
	}

	s.observe(nil)
	return snippet, nil
}

func (s *SearchService) observe(err error) {
	switch {
	case err == nil:
		s.observeOutcome("ok")
	case errors.IsNoResults(err):
		s.observeOutcome("no_results")
	case errors.IsConfiguration(err), errors.IsValidation(err):
		s.observeOutcome("rejected")
	default:
		s.observeOutcome("unavailable")
	}
}

func (s *SearchService) observeOutcome(outcome string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveSearch(outcome)
	}
}
