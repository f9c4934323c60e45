package interfaces

import "time"

// Metrics records pipeline outcomes without tying core code to a metrics backend.
// Outcome values are short labels such as "ok", "degraded" or "error".
type Metrics interface {
	// ObserveEvaluation records one scoring attempt and, when successful, its final score
	ObserveEvaluation(scale string, outcome string, finalScore float64, duration time.Duration)

	// ObserveSummary records one summarization attempt
	ObserveSummary(outcome string)

	// ObserveSearch records one search attempt
	ObserveSearch(outcome string)
}
