package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwierzba/wikiread"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	if c.Plain {
		color.NoColor = true
	}

	article, err := deps.Fetcher.FetchArticle(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		if wikiread.ErrorCode(err) == wikiread.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Try 'wikiread search %q' to find the exact title.\n", c.Title)
		}
		return err
	}

	renderArticle(deps.Stdout, article)
	return nil
}
