// ABOUTME: Score aggregator combining six signals into a normalized final score
// ABOUTME: Pure computation with no I/O; the page fetch happens upstream

package scoring

import (
	"fmt"

	"validity-app-api/core/config"
	"validity-app-api/core/domain"
	"validity-app-api/core/errors"
	"validity-app-api/core/page"
)

// tenPointDenominator is the sum of the ten-point signal maxima used for normalization
const tenPointDenominator = 55.0

// Aggregator scores URLs. It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	scale                domain.ScaleMode
	failOnMissingContent bool
	table                *ReputationTable
	signals              map[domain.SignalName]ContentSignal
}

// Option customizes an Aggregator
type Option func(*Aggregator)

// WithReputationTable replaces the default reputation table for the configured scale
func WithReputationTable(table *ReputationTable) Option {
	return func(a *Aggregator) {
		if table != nil {
			a.table = table
		}
	}
}

// WithExtraEntries layers ten-point trust values over the table, scaled to the
// configured scale
func WithExtraEntries(tenPoint map[string]float64) Option {
	return func(a *Aggregator) {
		if len(tenPoint) == 0 {
			return
		}
		factor := a.scale.Max() / 10
		scaled := make(map[string]float64, len(tenPoint))
		for d, score := range tenPoint {
			scaled[d] = score * factor
		}
		a.table = a.table.WithEntries(scaled)
	}
}

// WithSignal overrides one signal implementation
func WithSignal(signal ContentSignal) Option {
	return func(a *Aggregator) {
		if signal != nil {
			a.signals[signal.Name()] = signal
		}
	}
}

// NewAggregator builds an aggregator from the evaluation configuration
func NewAggregator(cfg config.EvaluationConfig, opts ...Option) (*Aggregator, error) {
	scale := cfg.Scale
	if scale == "" {
		scale = domain.TenPoint
	}
	if scale != domain.TenPoint && scale != domain.HundredPoint {
		return nil, &errors.ValidationError{Field: "scale", Message: fmt.Sprintf("unknown scale %q", scale)}
	}

	set, err := SignalSet(cfg.Signals, scale)
	if err != nil {
		return nil, &errors.ValidationError{Field: "signals", Message: err.Error()}
	}

	a := &Aggregator{
		scale:                scale,
		failOnMissingContent: cfg.FailOnMissingContent,
		table:                DefaultReputationTable(scale),
		signals:              make(map[domain.SignalName]ContentSignal, len(domain.SignalNames())),
	}
	a.signals[domain.Https] = HTTPSSignal(scale)
	for _, s := range set {
		a.signals[s.Name()] = s
	}

	for _, opt := range opts {
		opt(a)
	}

	// The trust signal follows whichever table the options settled on
	if _, overridden := a.signals[domain.DomainTrust]; !overridden {
		a.signals[domain.DomainTrust] = DomainTrustSignal(a.table)
	}

	return a, nil
}

// Scale returns the configured scale mode
func (a *Aggregator) Scale() domain.ScaleMode {
	return a.scale
}

// Evaluate scores a URL. Content is nil when the page could not be retrieved.
func (a *Aggregator) Evaluate(rawURL string, keywords []string, content *string) (domain.EvaluationResult, error) {
	host, err := ParseDomain(rawURL)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	in := Input{
		URL:      rawURL,
		Domain:   host,
		Keywords: keywords,
		Content:  content,
	}
	if !in.HasContent() && a.failOnMissingContent {
		return domain.EvaluationResult{}, &errors.ContentUnavailableError{URL: rawURL}
	}
	if in.HasContent() {
		in.Page = page.ParseMetadata(*content)
	}

	scores := make(domain.SignalScores, len(a.signals))
	for _, name := range domain.SignalNames() {
		scores[name] = clamp(a.signals[name].Score(in), 0, a.scale.Max())
	}

	final := FinalScore(a.scale, scores)
	return domain.EvaluationResult{
		URL:        rawURL,
		Domain:     host,
		Scale:      a.scale,
		Scores:     scores,
		FinalScore: final,
		StarRating: StarRating(final),
	}, nil
}

// FinalScore normalizes the signal sum onto 0-100, rounded to two decimals.
// Ten-point sums above 55 are only reachable through overridden signals and cap at 100.
func FinalScore(scale domain.ScaleMode, scores domain.SignalScores) float64 {
	sum := scores.Sum()
	var final float64
	if scale == domain.HundredPoint {
		final = sum / float64(len(domain.SignalNames()))
	} else {
		final = sum / tenPointDenominator * 100
	}
	return clamp(RoundHalfEven(final, 2), 0, 100)
}
