package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"validity-app-api/pkg/config"
	validity "validity-app-api/validity-lib"
)

var (
	summaryPolicy string
	summaryLead   bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text]",
	Short: "Summarize text with an adaptive length",
	Long: `Summarizes the given text. The summary length follows the source word
count; sources under ten words are returned unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summaryPolicy, "policy", "", "length policy: strict or loose")
	summarizeCmd.Flags().BoolVar(&summaryLead, "offline", false, "use the lead-sentence summarizer instead of the inference API")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	var opts []validity.Option
	if summaryPolicy != "" {
		policy, err := validity.ParseLengthPolicy(summaryPolicy)
		if err != nil {
			return err
		}
		opts = append(opts, validity.WithLengthPolicy(policy))
	}
	if summaryLead {
		opts = append(opts, validity.WithLeadSummarizer())
	}

	client, err := newClient(opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	cmd.Print(renderMissingCredentials(summarizerCredential(client.MissingCredentials())))

	result, err := client.Summarize(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	cmd.Print(renderSummary("Summary", result))
	return nil
}

// summarizerCredential keeps only the inference token from the missing list
func summarizerCredential(missing []string) []string {
	var out []string
	for _, name := range missing {
		if name != config.SearchAPIKeyEnv {
			out = append(out, name)
		}
	}
	return out
}
