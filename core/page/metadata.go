// ABOUTME: Page metadata extraction from fetched HTML
// ABOUTME: Uses goquery to read the title, meta description and outbound links

package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata holds the parts of a page the heuristic signals inspect
type Metadata struct {
	Title       string
	Description string

	// ExternalLinks are anchor hrefs that reference an http(s) URL
	ExternalLinks []string
}

// Text returns the lowercased title and description joined by a space
func (m *Metadata) Text() string {
	if m == nil {
		return ""
	}
	return strings.ToLower(m.Title) + " " + strings.ToLower(m.Description)
}

// ParseMetadata extracts metadata from an HTML document.
// Malformed HTML yields whatever goquery could recover; it never fails.
func ParseMetadata(html string) *Metadata {
	result := &Metadata{
		ExternalLinks: []string{},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result
	}

	result.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content, ok := s.Attr("content")
		if !ok || content == "" {
			return
		}

		name := strings.ToLower(s.AttrOr("name", ""))
		property := strings.ToLower(s.AttrOr("property", ""))

		switch {
		case name == "description":
			result.Description = content
		case property == "og:description" && result.Description == "":
			result.Description = content
		case property == "og:title" && result.Title == "":
			result.Title = content
		}
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if strings.Contains(href, "http") {
			result.ExternalLinks = append(result.ExternalLinks, href)
		}
	})

	return result
}
