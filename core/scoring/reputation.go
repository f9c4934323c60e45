// ABOUTME: Domain reputation table used for the DomainTrust signal
// ABOUTME: Exact entries win; otherwise the registrable suffix picks a tier

package scoring

import (
	"net/url"
	"strings"

	"validity-app-api/core/domain"
	"validity-app-api/core/errors"
)

// Tiers are the fallback trust values for domains missing from the table
type Tiers struct {
	// High applies to .gov and .edu
	High float64

	// Mid applies to .org and .com
	Mid float64

	// Low applies to everything else
	Low float64
}

// ReputationTable maps domains to trust values. It is read-only after construction
// and safe for concurrent use.
type ReputationTable struct {
	entries map[string]float64
	tiers   Tiers
}

var tenPointEntries = map[string]float64{
	"mayoclinic.org": 9,
	"cdc.gov":        10,
	"who.int":        10,
	"nih.gov":        10,
	"healthline.com": 8,
	"forbes.com":     7,
	"bbc.com":        8,
	"reuters.com":    9,
	"nytimes.com":    8,
	"guardian.com":   8,
}

// NewReputationTable copies entries, normalizing every key
func NewReputationTable(entries map[string]float64, tiers Tiers) *ReputationTable {
	normalized := make(map[string]float64, len(entries))
	for d, score := range entries {
		normalized[NormalizeDomain(d)] = score
	}
	return &ReputationTable{
		entries: normalized,
		tiers:   tiers,
	}
}

// DefaultReputationTable returns the built-in table for a scale
func DefaultReputationTable(scale domain.ScaleMode) *ReputationTable {
	factor := scale.Max() / 10
	entries := make(map[string]float64, len(tenPointEntries))
	for d, score := range tenPointEntries {
		entries[d] = score * factor
	}
	return NewReputationTable(entries, DefaultTiers(scale))
}

// DefaultTiers returns the suffix fallback values for a scale
func DefaultTiers(scale domain.ScaleMode) Tiers {
	factor := scale.Max() / 10
	return Tiers{High: 10 * factor, Mid: 7 * factor, Low: 4 * factor}
}

// WithEntries returns a new table with extra entries layered over this one
func (t *ReputationTable) WithEntries(extra map[string]float64) *ReputationTable {
	merged := t.Entries()
	for d, score := range extra {
		merged[d] = score
	}
	return NewReputationTable(merged, t.tiers)
}

// Lookup returns the trust value for a domain
func (t *ReputationTable) Lookup(host string) float64 {
	d := NormalizeDomain(host)
	if score, ok := t.entries[d]; ok {
		return score
	}

	switch {
	case strings.HasSuffix(d, ".gov"), strings.HasSuffix(d, ".edu"):
		return t.tiers.High
	case strings.HasSuffix(d, ".org"), strings.HasSuffix(d, ".com"):
		return t.tiers.Mid
	default:
		return t.tiers.Low
	}
}

// Entries returns a copy of the exact-match entries
func (t *ReputationTable) Entries() map[string]float64 {
	out := make(map[string]float64, len(t.entries))
	for d, score := range t.entries {
		out[d] = score
	}
	return out
}

// NormalizeDomain lowercases a host and strips one leading "www." label
func NormalizeDomain(host string) string {
	d := strings.ToLower(strings.TrimSpace(host))
	d = strings.TrimSuffix(d, ".")
	return strings.TrimPrefix(d, "www.")
}

// ParseDomain extracts the normalized host from a URL. A URL without a host
// (e.g. a bare path) yields an empty domain rather than an error.
func ParseDomain(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", &errors.ValidationError{Field: "url", Message: err.Error()}
	}
	return NormalizeDomain(u.Hostname()), nil
}
