package main

import (
	"fmt"

	"github.com/hqanh/vanban"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := vanban.DocumentFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Number != "" {
		filter.Number = &c.Number
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vanban.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'vanban run' to process a dataset.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", d.ID, d.Number, d.Title)
	}

	return nil
}
