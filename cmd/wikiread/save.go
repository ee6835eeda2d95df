package main

import (
	"fmt"

	"github.com/mwierzba/wikiread"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	article, err := deps.Fetcher.FetchArticle(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		if wikiread.ErrorCode(err) == wikiread.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Try 'wikiread search %q' to find the exact title.\n", c.Title)
		}
		return err
	}

	if err := deps.Articles.SaveArticle(deps.Ctx, article); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q (%d sections)\n", article.Title, len(article.Sections))
	return nil
}
