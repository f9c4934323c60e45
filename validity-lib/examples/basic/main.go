// ABOUTME: Basic example showing simple URL scoring with the Validity library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	validity "validity-app-api/validity-lib"
)

func main() {
	// Example 1: Create a client with default configuration
	client, err := validity.NewClient(validity.WithCredentialsFromEnv())
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	if missing := client.MissingCredentials(); len(missing) > 0 {
		fmt.Printf("Missing credentials: %v (search and summaries will degrade)\n", missing)
	}

	// Example 2: Score a single URL
	fmt.Println("=== Scoring Single URL ===")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	keywords := []string{"newborn", "health", "flight", "risks", "air travel", "infant"}
	report, err := client.Evaluate(ctx, "https://www.cdc.gov/pregnancy/travel.html", keywords)
	if err != nil {
		log.Printf("Error scoring URL: %v\n", err)
	} else {
		result := report.Result
		fmt.Printf("Domain: %s\n", result.Domain)
		fmt.Printf("Final score: %.2f\n", result.FinalScore)
		fmt.Printf("Rating: %s (%s)\n", result.Stars(), result.RatingLabel())
	}

	// Example 3: Score several URLs and export them
	fmt.Println("\n=== Batch Scoring ===")
	reports, err := client.EvaluateBatch(ctx, []validity.Request{
		{URL: "https://www.mayoclinic.org/healthy-lifestyle/infant-and-toddler-health", Keywords: keywords},
		{URL: "https://www.bbc.com/news/health", Keywords: keywords},
	})
	if err != nil {
		log.Printf("Error scoring batch: %v\n", err)
		return
	}
	for _, r := range reports {
		if r.Scored() {
			fmt.Printf("- %s: %.2f\n", r.Request.URL, r.Result.FinalScore)
		} else {
			fmt.Printf("- %s: %s\n", r.Request.URL, r.EvaluationError)
		}
	}

	rows, err := client.ExportCSV(os.Stdout, reports, validity.CSVOptions{IncludeURL: true})
	if err != nil {
		log.Printf("Error exporting: %v\n", err)
	}
	fmt.Printf("Exported %d rows\n", rows)
}
