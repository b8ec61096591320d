package main

import (
	"fmt"

	"github.com/hqanh/vanban"
	"github.com/hqanh/vanban/batch"
	"github.com/hqanh/vanban/bloom"
	"github.com/hqanh/vanban/fs"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	loader := fs.NewLoader()
	loader.Extractor = deps.Extractor

	docs, err := loader.Load(c.Dataset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vanban.ErrorMessage(err))
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "Dataset contains no documents.")
		return nil
	}

	// Store the source documents so list/show/delete can operate on them.
	// Re-running over the same dataset replaces the stored copies.
	for _, doc := range docs {
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			_ = deps.Documents.DeleteDocument(deps.Ctx, doc.ID)
			if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", doc.ID, vanban.ErrorMessage(err))
			}
		}
	}

	runner := &batch.Runner{
		Normalizer:  deps.Normalizer,
		Segmenter:   deps.Segmenter,
		Differ:      deps.Differ,
		Results:     deps.Results,
		Logger:      deps.Logger,
		Concurrency: c.Concurrency,
		MaxBytes:    c.MaxBytes,
	}
	if c.Out != "" {
		runner.Writer = fs.NewWriter(c.Out)
	}
	if !c.NoDedup {
		runner.Dedup = bloom.NewFilter(uint(len(docs))*2, 0.001)
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d documents\n", event.Total)
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.DocID, event.Reason)
		}
	}

	out, err := runner.Run(deps.Ctx, docs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vanban.ErrorMessage(err))
		return err
	}

	byStrategy := make(map[vanban.Strategy]int)
	for _, res := range out.Results {
		byStrategy[res.Segmentation.Strategy]++
	}

	fmt.Fprintf(deps.Stdout, "Processed %d documents (%d skipped)\n", len(out.Results), len(out.Skipped))
	fmt.Fprintf(deps.Stdout, "  primary: %d  loose: %d  fallback: %d\n",
		byStrategy[vanban.StrategyPrimary],
		byStrategy[vanban.StrategyLoose],
		byStrategy[vanban.StrategyFallback])
	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "  results written under %s\n", c.Out)
	}

	return nil
}
