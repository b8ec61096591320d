package main

import (
	"fmt"

	"github.com/hqanh/vanban"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Results.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vanban.ErrorMessage(err))
		return err
	}

	if stats.Documents == 0 {
		fmt.Fprintln(deps.Stdout, "No results stored. Use 'vanban run' to process a dataset.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents:     %d\n", stats.Documents)
	fmt.Fprintf(deps.Stdout, "With articles: %d (%.1f%%)\n",
		stats.WithArticles, 100*float64(stats.WithArticles)/float64(stats.Documents))
	fmt.Fprintf(deps.Stdout, "Strategies:    primary=%d loose=%d fallback=%d\n",
		stats.ByStrategy[vanban.StrategyPrimary],
		stats.ByStrategy[vanban.StrategyLoose],
		stats.ByStrategy[vanban.StrategyFallback])
	fmt.Fprintf(deps.Stdout, "Diff totals:   added=%d deleted=%d\n", stats.TotalAdded, stats.TotalDeleted)

	return nil
}
