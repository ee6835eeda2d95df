package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwierzba/wikiread"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if c.Plain {
		color.NoColor = true
	}

	article, err := deps.Articles.FindArticleByTitle(deps.Ctx, c.Title)
	if err != nil {
		if wikiread.ErrorCode(err) == wikiread.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not saved. Use 'wikiread list' to see saved articles.\n", c.Title)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		}
		return err
	}

	renderArticle(deps.Stdout, article)
	return nil
}
