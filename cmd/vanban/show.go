package main

import (
	"encoding/json"
	"fmt"

	"github.com/hqanh/vanban"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	seg, diff, err := deps.Results.FindResultByDocID(deps.Ctx, c.ID)
	if err != nil {
		if vanban.ErrorCode(err) == vanban.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no results for document %q. Use 'vanban run' to process a dataset.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vanban.ErrorMessage(err))
		}
		return err
	}

	var out any = seg
	if c.Diff {
		out = diff
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
