package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	csvexport "validity-app-api/infrastructure/export/csv"
	validity "validity-app-api/validity-lib"
)

var (
	evalKeywords      []string
	evalQuery         string
	evalScale         string
	evalStrict        bool
	evalSignals       string
	evalSummarizePage bool
	evalCSV           string
	evalJSON          bool
	evalTimeout       time.Duration
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [url]",
	Short: "Score a URL's credibility",
	Long: `Fetches the page and scores domain trust, content relevance, fact check,
bias, citation and HTTPS. With --query the first search snippet is
summarized; with --summarize-page the page text is summarized.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringSliceVarP(&evalKeywords, "keywords", "k", nil, "topical keywords for the relevance signal")
	evaluateCmd.Flags().StringVarP(&evalQuery, "query", "q", "", "search query whose first snippet is summarized")
	evaluateCmd.Flags().StringVar(&evalScale, "scale", "", "signal scale: ten or hundred")
	evaluateCmd.Flags().BoolVar(&evalStrict, "strict", false, "fail when the page cannot be fetched")
	evaluateCmd.Flags().StringVar(&evalSignals, "signals", "", "signal preset: placeholder or heuristic")
	evaluateCmd.Flags().BoolVar(&evalSummarizePage, "summarize-page", false, "summarize the page's readable text")
	evaluateCmd.Flags().StringVar(&evalCSV, "csv", csvexport.DefaultFileName, "CSV output path; empty disables export")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "output the report as JSON")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 60*time.Second, "overall time limit")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	opts, err := evaluateOptions()
	if err != nil {
		return err
	}

	client, err := newClient(opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	if evalQuery != "" || evalSummarizePage {
		cmd.Print(renderMissingCredentials(client.MissingCredentials()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	var stages []validity.EvaluateOption
	if evalQuery != "" {
		stages = append(stages, validity.WithQuery(evalQuery))
	}
	if evalSummarizePage {
		stages = append(stages, validity.WithPageSummary())
	}

	report, evalErr := client.Evaluate(ctx, args[0], evalKeywords, stages...)

	if evalJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		cmd.Print(renderReport(report))
	}

	if evalErr != nil {
		return evalErr
	}

	if evalCSV != "" {
		if err := writeCSV(client, evalCSV, report); err != nil {
			return err
		}
		if !evalJSON {
			cmd.Printf("Saved to %s\n", evalCSV)
		}
	}
	return nil
}

// evaluateOptions turns flags into client options, leaving unset flags to configuration
func evaluateOptions() ([]validity.Option, error) {
	var opts []validity.Option
	if evalScale != "" {
		scale, err := validity.ParseScaleMode(evalScale)
		if err != nil {
			return nil, err
		}
		opts = append(opts, validity.WithScale(scale))
	}
	if evalSignals != "" {
		preset, err := validity.ParseSignalPreset(evalSignals)
		if err != nil {
			return nil, err
		}
		opts = append(opts, validity.WithSignals(preset))
	}
	if evalStrict {
		opts = append(opts, validity.WithStrictContent(true))
	}
	return opts, nil
}

func writeCSV(client *validity.Client, path string, report validity.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := client.ExportCSV(f, []validity.Report{report}, validity.CSVOptions{}); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
