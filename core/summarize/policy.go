// ABOUTME: Adaptive length policy deciding summary word bounds from source length
// ABOUTME: Short sources skip summarization entirely

package summarize

import (
	"strings"

	"validity-app-api/core/domain"
)

const (
	// MinSourceWords is the shortest source that is sent to the summarizer
	MinSourceWords = 10

	// MaxSummaryWords caps the requested summary length
	MaxSummaryWords = 50
)

// LengthPlan is the computed summarization bounds for one source text
type LengthPlan struct {
	Words    int
	MinWords int
	MaxWords int
	Skip     bool
}

// CountWords splits on whitespace
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// PlanSummaryLength computes word bounds for text under the given policy.
// The result always satisfies MinWords <= MaxWords <= max(Words, 0).
func PlanSummaryLength(text string, policy domain.LengthPolicy) LengthPlan {
	n := CountWords(text)
	if n < MinSourceWords {
		return LengthPlan{Words: n, MinWords: n, MaxWords: n, Skip: true}
	}

	maxWords := min(MaxSummaryWords, n, n*3/2)

	var minWords int
	if policy == domain.StrictLength {
		minWords = max(10, n/2, min(25, n*4/5))
	} else {
		minWords = max(5, n/2)
	}
	minWords = min(minWords, maxWords)

	return LengthPlan{Words: n, MinWords: minWords, MaxWords: maxWords}
}
