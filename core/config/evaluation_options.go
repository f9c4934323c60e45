// ABOUTME: Evaluation configuration for service-level control of scoring and summarization
// ABOUTME: Provides configuration options independent of HTTP request structures

package config

import "validity-app-api/core/domain"

// EvaluationConfig controls how URLs are scored and how summaries are sized
type EvaluationConfig struct {
	// Scale selects the 0-10 or 0-100 signal basis
	Scale domain.ScaleMode

	// FailOnMissingContent aborts an evaluation when the page could not be fetched
	FailOnMissingContent bool

	// Signals selects the signal implementations
	Signals domain.SignalPreset

	// LengthPolicy selects the summary length floor
	LengthPolicy domain.LengthPolicy

	// BatchConcurrency bounds concurrent evaluations in batch mode
	BatchConcurrency int
}

// DefaultEvaluationConfig returns the ten-point, lenient, placeholder configuration
func DefaultEvaluationConfig() EvaluationConfig {
	return EvaluationConfig{
		Scale:                domain.TenPoint,
		FailOnMissingContent: false,
		Signals:              domain.PlaceholderSignals,
		LengthPolicy:         domain.LooseLength,
		BatchConcurrency:     10,
	}
}

// EvaluationOption is a functional option for configuring evaluation
type EvaluationOption func(*EvaluationConfig)

// WithScale selects the scoring scale
func WithScale(scale domain.ScaleMode) EvaluationOption {
	return func(c *EvaluationConfig) {
		c.Scale = scale
	}
}

// WithFailOnMissingContent enables or disables the strict content policy
func WithFailOnMissingContent(enabled bool) EvaluationOption {
	return func(c *EvaluationConfig) {
		c.FailOnMissingContent = enabled
	}
}

// WithSignals selects the signal preset
func WithSignals(preset domain.SignalPreset) EvaluationOption {
	return func(c *EvaluationConfig) {
		c.Signals = preset
	}
}

// WithLengthPolicy selects the summary length policy
func WithLengthPolicy(policy domain.LengthPolicy) EvaluationOption {
	return func(c *EvaluationConfig) {
		c.LengthPolicy = policy
	}
}

// WithBatchConcurrency bounds concurrent evaluations; values below 1 are ignored
func WithBatchConcurrency(n int) EvaluationOption {
	return func(c *EvaluationConfig) {
		if n > 0 {
			c.BatchConcurrency = n
		}
	}
}

// NewEvaluationConfig creates a new evaluation configuration with the given options
func NewEvaluationConfig(opts ...EvaluationOption) EvaluationConfig {
	config := DefaultEvaluationConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
