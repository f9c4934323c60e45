// ABOUTME: Service layer implementation for reader view extraction
// ABOUTME: Turns already fetched HTML into readable article text using go-readability

package reader

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"validity-app-api/core/domain"
	"validity-app-api/core/errors"
	"validity-app-api/core/interfaces"

	readability "github.com/go-shiori/go-readability"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\v]+`)
	blankLines      = regexp.MustCompile(`\n{3,}`)
)

type Service struct {
	logger interfaces.Logger
}

func NewService(logger interfaces.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Extract parses html fetched from pageURL into a reader view
func (s *Service) Extract(pageURL string, html string) (*domain.ReaderView, error) {
	if strings.TrimSpace(html) == "" {
		return nil, &errors.ValidationError{Field: "html", Message: "page content is empty"}
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, &errors.ValidationError{Field: "url", Message: err.Error()}
	}

	article, err := readability.FromReader(strings.NewReader(html), parsedURL)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to parse reader view", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		}
		return nil, fmt.Errorf("failed to extract readable text: %w", err)
	}

	return &domain.ReaderView{
		URL:         pageURL,
		Title:       strings.TrimSpace(article.Title),
		TextContent: cleanText(article.TextContent),
		Excerpt:     strings.TrimSpace(article.Excerpt),
		SiteName:    article.SiteName,
		Byline:      article.Byline,
	}, nil
}

// cleanText collapses runs of spaces and blank lines left behind by the extractor
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
