// ABOUTME: Advanced example showing custom configuration and advanced features
// ABOUTME: Demonstrates dependency injection, summaries and error classification

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	validity "validity-app-api/validity-lib"
)

func main() {
	// Example 1: Create client with custom configuration
	fmt.Println("=== Custom Configuration ===")

	client, err := validity.NewClient(
		// Keep summaries across runs
		validity.WithCacheOption(validity.CacheOption{
			Type:     validity.CacheTypeSQLite,
			FilePath: "./validity_cache.db",
		}),

		// Hundred-point signals with heuristic scoring
		validity.WithScale(validity.HundredPoint),
		validity.WithSignals(validity.HeuristicSignals),

		// Unreachable pages are errors rather than degraded scores
		validity.WithStrictContent(true),

		// Local trust overrides on the ten-point scale
		validity.WithReputationEntries(map[string]float64{
			"nejm.org": 10,
		}),

		validity.WithFetchSettings("ValidityBot/1.0", 8*time.Second),
		validity.WithLengthPolicy(validity.StrictLength),
		validity.WithCredentialsFromEnv(),
		validity.WithBatchConcurrency(4),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	// Example 2: Evaluation with a search-driven summary
	fmt.Println("\n=== Evaluation With Summary ===")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := client.Evaluate(ctx,
		"https://www.nejm.org/",
		[]string{"clinical", "trial"},
		validity.WithQuery("effects of air travel on newborns"),
		validity.WithPageSummary(),
	)
	switch validity.Classify(err) {
	case "":
		fmt.Printf("Final score: %.2f %s\n", report.Result.FinalScore, report.Result.Stars())
	case validity.ErrorTypeContentUnavailable:
		fmt.Println("Page could not be fetched in strict mode")
	default:
		log.Printf("Evaluation failed: %v\n", err)
	}

	if report.Summary != nil {
		fmt.Printf("Snippet summary: %s\n", report.Summary.SummaryText)
	} else if report.SearchError != "" {
		fmt.Printf("Search failed: %s\n", report.SearchError)
	}
	if report.PageSummary != nil {
		fmt.Printf("Page summary (%d-%d words): %s\n",
			report.PageSummary.TargetMinWords, report.PageSummary.TargetMaxWords, report.PageSummary.SummaryText)
	}

	// Example 3: Offline summaries
	fmt.Println("\n=== Offline Summary ===")
	offline, err := validity.NewClient(validity.WithQuietMode(), validity.WithLeadSummarizer())
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer offline.Close()

	summary, _ := offline.Summarize(ctx, "Air travel is generally safe for healthy full-term infants. "+
		"Pediatricians often suggest waiting until the immune system matures. "+
		"Cabin pressure changes can cause ear discomfort during takeoff and landing. "+
		"Feeding during ascent and descent helps equalize pressure.")
	fmt.Printf("Summary: %s\n", summary.SummaryText)
}
