package main

import (
	"fmt"

	"github.com/mwierzba/wikiread"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wikiread.Errorf(wikiread.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, c.Title); err != nil {
		if wikiread.ErrorCode(err) == wikiread.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not saved. Use 'wikiread list' to see saved articles.\n", c.Title)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", c.Title)
	return nil
}
