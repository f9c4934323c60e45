// ABOUTME: Offline extractive summarizer that keeps the leading sentences of a text
// ABOUTME: Used when no inference token is configured or for deterministic local runs

package lead

import (
	"context"
	"strings"
	"unicode"

	"validity-app-api/core/errors"
)

// Summarizer implements interfaces.Summarizer by sentence extraction
type Summarizer struct{}

// New creates a lead-sentence summarizer
func New() *Summarizer {
	return &Summarizer{}
}

// Summarize keeps whole sentences from the start of text until at least minWords
// are collected, then truncates to maxWords.
func (s *Summarizer) Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &errors.SummarizationFailureError{Cause: err}
	}
	if maxWords < 1 {
		return "", &errors.SummarizationFailureError{Cause: errNoRoom}
	}

	var words []string
	for _, sentence := range splitSentences(text) {
		fields := strings.Fields(sentence)
		if len(words) >= minWords && len(words)+len(fields) > maxWords {
			break
		}
		words = append(words, fields...)
		if len(words) >= maxWords {
			break
		}
	}

	if len(words) == 0 {
		return "", &errors.SummarizationFailureError{Cause: errEmptyInput}
	}
	if len(words) > maxWords {
		words = words[:maxWords]
	}

	return strings.Join(words, " "), nil
}

// splitSentences breaks text after '.', '!' or '?' followed by whitespace
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(strings.TrimSpace(text))
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
