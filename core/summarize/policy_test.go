package summarize

import (
	"strings"
	"testing"

	"validity-app-api/core/domain"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one  two\tthree\nfour", 4},
	}
	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestPlanSummaryLength(t *testing.T) {
	tests := []struct {
		name   string
		words  int
		policy domain.LengthPolicy
		want   LengthPlan
	}{
		{"empty skips", 0, domain.LooseLength, LengthPlan{Words: 0, MinWords: 0, MaxWords: 0, Skip: true}},
		{"five skips", 5, domain.StrictLength, LengthPlan{Words: 5, MinWords: 5, MaxWords: 5, Skip: true}},
		{"nine skips", 9, domain.LooseLength, LengthPlan{Words: 9, MinWords: 9, MaxWords: 9, Skip: true}},
		{"ten loose", 10, domain.LooseLength, LengthPlan{Words: 10, MinWords: 5, MaxWords: 10}},
		{"ten strict", 10, domain.StrictLength, LengthPlan{Words: 10, MinWords: 10, MaxWords: 10}},
		{"twenty loose", 20, domain.LooseLength, LengthPlan{Words: 20, MinWords: 10, MaxWords: 20}},
		{"twenty strict", 20, domain.StrictLength, LengthPlan{Words: 20, MinWords: 16, MaxWords: 20}},
		{"forty loose", 40, domain.LooseLength, LengthPlan{Words: 40, MinWords: 20, MaxWords: 40}},
		{"forty strict", 40, domain.StrictLength, LengthPlan{Words: 40, MinWords: 25, MaxWords: 40}},
		{"sixty strict", 60, domain.StrictLength, LengthPlan{Words: 60, MinWords: 30, MaxWords: 50}},
		{"hundred loose clamps min", 100, domain.LooseLength, LengthPlan{Words: 100, MinWords: 50, MaxWords: 50}},
		{"thousand strict", 1000, domain.StrictLength, LengthPlan{Words: 1000, MinWords: 50, MaxWords: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanSummaryLength(words(tt.words), tt.policy)
			if got != tt.want {
				t.Errorf("PlanSummaryLength(%d words, %s) = %+v, want %+v", tt.words, tt.policy, got, tt.want)
			}
		})
	}
}

func TestPlanSummaryLength_Bounds(t *testing.T) {
	for _, policy := range []domain.LengthPolicy{domain.StrictLength, domain.LooseLength} {
		for n := 0; n <= 200; n++ {
			plan := PlanSummaryLength(words(n), policy)
			if plan.MinWords > plan.MaxWords {
				t.Fatalf("%s n=%d: min %d > max %d", policy, n, plan.MinWords, plan.MaxWords)
			}
			if plan.MaxWords > n {
				t.Fatalf("%s n=%d: max %d exceeds source", policy, n, plan.MaxWords)
			}
			if !plan.Skip && plan.MaxWords > MaxSummaryWords {
				t.Fatalf("%s n=%d: max %d exceeds cap", policy, n, plan.MaxWords)
			}
			if plan.Skip != (n < MinSourceWords) {
				t.Fatalf("%s n=%d: skip=%v", policy, n, plan.Skip)
			}
		}
	}
}
