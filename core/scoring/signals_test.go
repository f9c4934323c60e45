package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validity-app-api/core/domain"
	"validity-app-api/core/page"
)

func scoresByName(signals []ContentSignal, in Input) map[domain.SignalName]float64 {
	out := make(map[domain.SignalName]float64, len(signals))
	for _, s := range signals {
		out[s.Name()] = s.Score(in)
	}
	return out
}

func withContent(in Input, html string) Input {
	in.Content = &html
	if html != "" {
		in.Page = page.ParseMetadata(html)
	}
	return in
}

func TestInput_HasContent(t *testing.T) {
	empty := ""
	body := "<p>hi</p>"

	assert.False(t, Input{}.HasContent())
	assert.False(t, Input{Content: &empty}.HasContent())
	assert.True(t, Input{Content: &body}.HasContent())
}

func TestPlaceholderSet_TenPoint(t *testing.T) {
	set := PlaceholderSet(domain.TenPoint)

	present := scoresByName(set, withContent(Input{Domain: "example.com"}, "<p>body</p>"))
	assert.Equal(t, 8.0, present[domain.ContentRelevance])
	assert.Equal(t, 7.0, present[domain.FactCheck])
	assert.Equal(t, 6.0, present[domain.Bias])
	assert.Equal(t, 7.0, present[domain.Citation])

	absent := scoresByName(set, Input{})
	assert.Equal(t, 4.0, absent[domain.ContentRelevance])
	assert.Equal(t, 3.0, absent[domain.FactCheck])
	assert.Equal(t, 5.0, absent[domain.Bias])
	assert.Equal(t, 3.0, absent[domain.Citation])
}

func TestPlaceholderSet_HundredPoint(t *testing.T) {
	set := PlaceholderSet(domain.HundredPoint)

	present := scoresByName(set, withContent(Input{Domain: "example.com"}, "<p>body</p>"))
	assert.Equal(t, 75.0, present[domain.ContentRelevance])
	assert.Equal(t, 70.0, present[domain.FactCheck])
	assert.Equal(t, 60.0, present[domain.Bias])
	assert.Equal(t, 70.0, present[domain.Citation])

	absent := scoresByName(set, Input{})
	assert.Equal(t, 25.0, absent[domain.ContentRelevance])
	assert.Equal(t, 30.0, absent[domain.FactCheck])
	assert.Equal(t, 50.0, absent[domain.Bias])
	assert.Equal(t, 30.0, absent[domain.Citation])
}

func TestHeuristicSet_Relevance(t *testing.T) {
	set := HeuristicSet(domain.TenPoint)
	html := `<html><head><title>Newborn Health</title>
<meta name="description" content="Flight risks for infants"></head></html>`

	in := withContent(Input{Keywords: []string{"newborn", "HEALTH", "flight", "dogs", " "}}, html)
	assert.Equal(t, 6.0, scoresByName(set, in)[domain.ContentRelevance])

	many := withContent(Input{Keywords: []string{"newborn", "health", "flight", "risks", "infants", "for"}}, html)
	assert.Equal(t, 10.0, scoresByName(set, many)[domain.ContentRelevance], "relevance caps at the scale max")

	assert.Equal(t, 0.0, scoresByName(set, Input{Keywords: []string{"newborn"}})[domain.ContentRelevance])
}

func TestHeuristicSet_Citation(t *testing.T) {
	set := HeuristicSet(domain.TenPoint)

	links := func(n int) string {
		html := "<body>"
		for i := 0; i < n; i++ {
			html += `<a href="https://example.com/ref">ref</a>`
		}
		return html + `<a href="/local">local</a></body>`
	}

	tests := []struct {
		links int
		want  float64
	}{
		{0, 2},
		{1, 5},
		{2, 5},
		{3, 7},
		{4, 7},
		{5, 10},
		{9, 10},
	}
	for _, tt := range tests {
		got := scoresByName(set, withContent(Input{}, links(tt.links)))[domain.Citation]
		assert.Equal(t, tt.want, got, "links=%d", tt.links)
	}

	assert.Equal(t, 0.0, scoresByName(set, Input{})[domain.Citation])
}

func TestHeuristicSet_BiasAndFactCheck(t *testing.T) {
	set := HeuristicSet(domain.HundredPoint)

	for _, source := range UnbiasedSources {
		assert.Equal(t, 100.0, scoresByName(set, Input{Domain: source})[domain.Bias], source)
	}
	assert.Equal(t, 50.0, scoresByName(set, Input{Domain: "example.com"})[domain.Bias])

	assert.Equal(t, 80.0, scoresByName(set, withContent(Input{}, "<p>x</p>"))[domain.FactCheck])
	assert.Equal(t, 40.0, scoresByName(set, Input{})[domain.FactCheck])
}

func TestHTTPSSignal(t *testing.T) {
	ten := HTTPSSignal(domain.TenPoint)
	hundred := HTTPSSignal(domain.HundredPoint)

	assert.Equal(t, domain.Https, ten.Name())
	assert.Equal(t, 5.0, ten.Score(Input{URL: "https://cdc.gov"}))
	assert.Equal(t, 5.0, ten.Score(Input{URL: "HTTPS://cdc.gov"}))
	assert.Equal(t, 0.0, ten.Score(Input{URL: "http://cdc.gov"}))
	assert.Equal(t, 0.0, ten.Score(Input{URL: "cdc.gov"}))
	assert.Equal(t, 50.0, hundred.Score(Input{URL: "https://cdc.gov"}))
}

func TestSignalSet(t *testing.T) {
	set, err := SignalSet(domain.HeuristicSignals, domain.TenPoint)
	require.NoError(t, err)
	assert.Len(t, set, 4)

	set, err = SignalSet("", domain.TenPoint)
	require.NoError(t, err)
	assert.Len(t, set, 4)

	_, err = SignalSet("magic", domain.TenPoint)
	assert.Error(t, err)
}
