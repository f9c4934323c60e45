// ABOUTME: Domain models for readable page text
// ABOUTME: Defines the structure for article content extracted from fetched HTML

package domain

// ReaderView represents extracted article content from a webpage
type ReaderView struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	TextContent string `json:"textContent"`
	Excerpt     string `json:"excerpt"`
	SiteName    string `json:"siteName"`
	Byline      string `json:"byline"`
}
