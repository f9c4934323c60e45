// ABOUTME: CSV export of evaluation reports in a fixed column order
// ABOUTME: One row per scored report; unscored reports are left out

package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"validity-app-api/core/domain"
)

// DefaultFileName is the file written by the CLI when no path is given
const DefaultFileName = "url_validity_results.csv"

// Options selects the optional trailing columns
type Options struct {
	// IncludeURL prepends the evaluated URL
	IncludeURL bool

	// IncludeStars appends the star rating with its numeric value
	IncludeStars bool

	// IncludeSummary appends the query summary, or the page summary when no query ran
	IncludeSummary bool
}

// Header returns the column names for the given options
func Header(opts Options) []string {
	var header []string
	if opts.IncludeURL {
		header = append(header, "URL")
	}
	for _, name := range domain.SignalNames() {
		header = append(header, string(name))
	}
	header = append(header, "FinalScore")
	if opts.IncludeStars {
		header = append(header, "StarRating")
	}
	if opts.IncludeSummary {
		header = append(header, "Summary")
	}
	return header
}

// WriteReports writes a header and one row per scored report. It returns the
// number of data rows written.
func WriteReports(w io.Writer, reports []domain.Report, opts Options) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(opts)); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	rows := 0
	for _, report := range reports {
		if !report.Scored() {
			continue
		}
		if err := cw.Write(row(report, opts)); err != nil {
			return rows, fmt.Errorf("write row for %s: %w", report.Request.URL, err)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("flush csv: %w", err)
	}
	return rows, nil
}

// WriteFile writes reports to path, replacing any existing file
func WriteFile(path string, reports []domain.Report, opts Options) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	rows, writeErr := WriteReports(f, reports, opts)
	if closeErr := f.Close(); writeErr == nil && closeErr != nil {
		writeErr = fmt.Errorf("close %s: %w", path, closeErr)
	}
	return rows, writeErr
}

func row(report domain.Report, opts Options) []string {
	result := report.Result

	var record []string
	if opts.IncludeURL {
		record = append(record, result.URL)
	}
	for _, name := range domain.SignalNames() {
		record = append(record, FormatNumber(result.Scores[name]))
	}
	record = append(record, FormatNumber(result.FinalScore))
	if opts.IncludeStars {
		record = append(record, result.RatingLabel())
	}
	if opts.IncludeSummary {
		record = append(record, summaryText(report))
	}
	return record
}

func summaryText(report domain.Report) string {
	switch {
	case report.Summary != nil:
		return report.Summary.SummaryText
	case report.PageSummary != nil:
		return report.PageSummary.SummaryText
	}
	return ""
}

// FormatNumber renders a float with the fewest digits needed, so 10 prints as "10"
// and 72.73 as "72.73".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
