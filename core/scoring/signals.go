// ABOUTME: Signal capabilities that each produce one bounded sub-score
// ABOUTME: Placeholder and heuristic presets share the ContentSignal interface

package scoring

import (
	"fmt"
	"net/url"
	"strings"

	"validity-app-api/core/domain"
	"validity-app-api/core/page"
)

// Input is everything a signal may look at for one evaluation
type Input struct {
	URL      string
	Domain   string
	Keywords []string

	// Content is nil when the page could not be fetched
	Content *string

	// Page is parsed from Content; nil when content is absent
	Page *page.Metadata
}

// HasContent reports whether page content was retrieved. Empty content counts as absent.
func (in Input) HasContent() bool {
	return in.Content != nil && *in.Content != ""
}

// HasDomain reports whether a host was parsed from the URL
func (in Input) HasDomain() bool {
	return in.Domain != ""
}

// ContentSignal produces one signal's score. Implementations must be pure and
// return a value within [0, scale max]; the aggregator clamps anything outside.
type ContentSignal interface {
	Name() domain.SignalName
	Score(in Input) float64
}

// SignalFunc adapts a plain function into a ContentSignal
type SignalFunc struct {
	name domain.SignalName
	fn   func(Input) float64
}

// NewSignal wraps fn as the named signal
func NewSignal(name domain.SignalName, fn func(Input) float64) SignalFunc {
	return SignalFunc{name: name, fn: fn}
}

// Name implements ContentSignal
func (s SignalFunc) Name() domain.SignalName { return s.name }

// Score implements ContentSignal
func (s SignalFunc) Score(in Input) float64 { return s.fn(in) }

// presence picks between two constants based on a predicate
func presence(name domain.SignalName, present, absent float64, test func(Input) bool) SignalFunc {
	return NewSignal(name, func(in Input) float64 {
		if test(in) {
			return present
		}
		return absent
	})
}

func hasContent(in Input) bool { return in.HasContent() }
func hasDomain(in Input) bool  { return in.HasDomain() }

// DomainTrustSignal scores the URL's domain from a reputation table
func DomainTrustSignal(table *ReputationTable) SignalFunc {
	return NewSignal(domain.DomainTrust, func(in Input) float64 {
		return table.Lookup(in.Domain)
	})
}

// HTTPSSignal awards the scale's HTTPS value when the URL scheme is https
func HTTPSSignal(scale domain.ScaleMode) SignalFunc {
	value := scale.Max() / 2
	return NewSignal(domain.Https, func(in Input) float64 {
		u, err := url.Parse(strings.TrimSpace(in.URL))
		if err != nil {
			return 0
		}
		if strings.EqualFold(u.Scheme, "https") {
			return value
		}
		return 0
	})
}

// PlaceholderSet returns constant signals keyed on content and domain presence
func PlaceholderSet(scale domain.ScaleMode) []ContentSignal {
	if scale == domain.HundredPoint {
		return []ContentSignal{
			presence(domain.ContentRelevance, 75, 25, hasContent),
			presence(domain.FactCheck, 70, 30, hasContent),
			presence(domain.Bias, 60, 50, hasDomain),
			presence(domain.Citation, 70, 30, hasContent),
		}
	}
	return []ContentSignal{
		presence(domain.ContentRelevance, 8, 4, hasContent),
		presence(domain.FactCheck, 7, 3, hasContent),
		presence(domain.Bias, 6, 5, hasDomain),
		presence(domain.Citation, 7, 3, hasContent),
	}
}

// UnbiasedSources score the maximum on the heuristic bias signal
var UnbiasedSources = []string{"who.int", "cdc.gov", "nih.gov"}

// HeuristicSet returns signals that inspect the page title, description and links
func HeuristicSet(scale domain.ScaleMode) []ContentSignal {
	factor := scale.Max() / 10
	return []ContentSignal{
		NewSignal(domain.ContentRelevance, func(in Input) float64 {
			if !in.HasContent() {
				return 0
			}
			hits := keywordHits(in.Page.Text(), in.Keywords)
			return float64(min(hits*2, 10)) * factor
		}),
		presence(domain.FactCheck, 8*factor, 4*factor, hasContent),
		NewSignal(domain.Bias, func(in Input) float64 {
			for _, source := range UnbiasedSources {
				if in.Domain == source {
					return 10 * factor
				}
			}
			return 5 * factor
		}),
		NewSignal(domain.Citation, func(in Input) float64 {
			if !in.HasContent() {
				return 0
			}
			var links int
			if in.Page != nil {
				links = len(in.Page.ExternalLinks)
			}
			switch {
			case links >= 5:
				return 10 * factor
			case links >= 3:
				return 7 * factor
			case links >= 1:
				return 5 * factor
			default:
				return 2 * factor
			}
		}),
	}
}

// SignalSet resolves a preset name to its signal implementations
func SignalSet(preset domain.SignalPreset, scale domain.ScaleMode) ([]ContentSignal, error) {
	switch preset {
	case domain.PlaceholderSignals, "":
		return PlaceholderSet(scale), nil
	case domain.HeuristicSignals:
		return HeuristicSet(scale), nil
	}
	return nil, fmt.Errorf("unknown signal preset %q", preset)
}

func keywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}
