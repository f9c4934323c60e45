// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Used to turn provider snippets and page fragments into plain text

package html

import (
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes tags, script and style content, decodes entities and
// collapses whitespace. Text without markup is only decoded and collapsed.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<>") {
		return collapse(DecodeEntities(fragment))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(DecodeEntities(fragment))
	}
	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	if len(parts) == 0 {
		parts = append(parts, doc.Text())
	}

	return collapse(strings.Join(parts, " "))
}

// DecodeEntities decodes named and numeric HTML entities
func DecodeEntities(text string) string {
	return stdhtml.UnescapeString(text)
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
