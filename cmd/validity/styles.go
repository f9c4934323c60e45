// ABOUTME: Console styling and rendering of reports, summaries and search results
// ABOUTME: Rendering returns strings so commands and tests share the same output

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	csvexport "validity-app-api/infrastructure/export/csv"
	validity "validity-app-api/validity-lib"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(18)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)
)

// renderReport prints the six signals, the final score and any summaries
func renderReport(report validity.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(report.Request.URL))
	b.WriteString("\n")

	if !report.Scored() {
		b.WriteString(errorStyle.Render("Evaluation failed: " + report.EvaluationError))
		b.WriteString("\n")
	} else {
		result := report.Result
		for _, name := range validity.SignalNames() {
			b.WriteString(labelStyle.Render(string(name)))
			b.WriteString(formatScore(result.Scores[name]))
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render("FinalScore"))
		b.WriteString(scoreStyle.Render(formatScore(result.FinalScore)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Rating"))
		b.WriteString(result.RatingLabel())
		b.WriteString("\n")
	}

	if report.SearchError != "" {
		b.WriteString(warnStyle.Render("Search failed: " + report.SearchError))
		b.WriteString("\n")
	}
	if report.Summary != nil {
		b.WriteString(renderSummary("Summary", *report.Summary))
	}
	if report.PageSummary != nil {
		b.WriteString(renderSummary("Page summary", *report.PageSummary))
	}

	return b.String()
}

// renderSummary boxes the summary text with its word bounds
func renderSummary(title string, summary validity.SummaryResult) string {
	header := fmt.Sprintf("%s (%d-%d words)", title, summary.TargetMinWords, summary.TargetMaxWords)
	switch {
	case summary.Skipped:
		header = title + " (source too short, shown as is)"
	case summary.Failed:
		header = title + " (failed)"
	}
	return boxStyle.Render(titleStyle.Render(header)+"\n"+summary.SummaryText) + "\n"
}

// renderSearchResults lists organic results in rank order
func renderSearchResults(results []validity.SearchResult) string {
	if len(results) == 0 {
		return "No results found.\n"
	}

	var b strings.Builder
	for i, r := range results {
		b.WriteString(fmt.Sprintf("  [%d] %s\n", i+1, titleStyle.Render(r.Title)))
		if r.Link != "" {
			b.WriteString(fmt.Sprintf("      %s\n", r.Link))
		}
		if r.Snippet != "" {
			b.WriteString(fmt.Sprintf("      %s\n", r.Snippet))
		}
	}
	return b.String()
}

// renderMissingCredentials warns about absent credentials without failing
func renderMissingCredentials(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return warnStyle.Render("Warning: "+strings.Join(missing, ", ")+" not set; dependent stages will degrade") + "\n"
}

func formatScore(v float64) string {
	return csvexport.FormatNumber(v)
}
