// ABOUTME: Command line entry point for scoring URLs and summarizing search results
// ABOUTME: Builds a library client from configuration and dispatches cobra subcommands

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"validity-app-api/pkg/config"
	validity "validity-app-api/validity-lib"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "validity",
	Short: "Score the credibility of web pages",
	Long: `Scores a URL on six credibility signals and combines them into a 0-100
score with a star rating. Optionally summarizes the first search result
for a query or the page itself.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress")
}

// newClient builds the library client; tests replace it
var newClient = func(extra ...validity.Option) (*validity.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	opts := []validity.Option{validity.WithAppConfig(cfg)}
	if !verbose {
		opts = append(opts, validity.WithQuietMode())
	}
	return validity.NewClient(append(opts, extra...)...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
