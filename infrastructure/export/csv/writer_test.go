package csv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"validity-app-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredReport() domain.Report {
	return domain.Report{
		Request: domain.EvaluationRequest{URL: "https://www.mayoclinic.org/faq"},
		Result: &domain.EvaluationResult{
			URL:    "https://www.mayoclinic.org/faq",
			Domain: "mayoclinic.org",
			Scale:  domain.TenPoint,
			Scores: domain.SignalScores{
				domain.DomainTrust:      9,
				domain.ContentRelevance: 8,
				domain.FactCheck:        7,
				domain.Bias:             6,
				domain.Citation:         7,
				domain.Https:            5,
			},
			FinalScore: 76.36,
			StarRating: 4,
		},
		Summary: &domain.SummaryResult{SummaryText: "Infants can fly, with care."},
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t,
		[]string{"DomainTrust", "ContentRelevance", "FactCheck", "Bias", "Citation", "Https", "FinalScore"},
		Header(Options{}))

	assert.Equal(t,
		[]string{"URL", "DomainTrust", "ContentRelevance", "FactCheck", "Bias", "Citation", "Https", "FinalScore", "StarRating", "Summary"},
		Header(Options{IncludeURL: true, IncludeStars: true, IncludeSummary: true}))
}

func TestWriteReports_Basic(t *testing.T) {
	var buf bytes.Buffer
	rows, err := WriteReports(&buf, []domain.Report{scoredReport()}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	want := "DomainTrust,ContentRelevance,FactCheck,Bias,Citation,Https,FinalScore\n" +
		"9,8,7,6,7,5,76.36\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReports_OptionalColumns(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteReports(&buf, []domain.Report{scoredReport()}, Options{IncludeStars: true, IncludeSummary: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "9,8,7,6,7,5,76.36,⭐⭐⭐⭐ (4/5),\"Infants can fly, with care.\"", lines[1])
}

func TestWriteReports_PageSummaryFallback(t *testing.T) {
	report := scoredReport()
	report.Summary = nil
	report.PageSummary = &domain.SummaryResult{SummaryText: "Page summary"}

	var buf bytes.Buffer
	_, err := WriteReports(&buf, []domain.Report{report}, Options{IncludeSummary: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), ",Page summary"))
}

func TestWriteReports_SkipsUnscored(t *testing.T) {
	failed := domain.Report{
		Request:         domain.EvaluationRequest{URL: "https://down.example"},
		EvaluationError: "content unavailable",
	}

	var buf bytes.Buffer
	rows, err := WriteReports(&buf, []domain.Report{failed, scoredReport(), failed}, Options{IncludeURL: true})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	assert.NotContains(t, buf.String(), "down.example")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	rows, err := WriteFile(path, []domain.Report{scoredReport(), scoredReport()}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))

	_, err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), nil, Options{})
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		10:     "10",
		72.73:  "72.73",
		0:      "0",
		4.5:    "4.5",
		100:    "100",
		30.833: "30.833",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in))
	}
}
