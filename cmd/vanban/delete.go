package main

import (
	"fmt"

	"github.com/hqanh/vanban"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return vanban.Errorf(vanban.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if vanban.ErrorCode(err) == vanban.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'vanban list' to see stored documents.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vanban.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.ID)
	return nil
}
