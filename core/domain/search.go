// ABOUTME: Search domain models for web search results
// ABOUTME: Only the first organic result's snippet feeds the summary stage

package domain

// SearchResult represents a single organic web search result
type SearchResult struct {
	// Position is the 1-based rank reported by the search provider
	Position int `json:"position"`

	// Title is the result's headline
	Title string `json:"title"`

	// Link is the result URL
	Link string `json:"link"`

	// Snippet is the short text excerpt shown under the result
	Snippet string `json:"snippet"`
}
