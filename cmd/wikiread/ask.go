package main

import (
	"fmt"

	"github.com/mwierzba/wikiread"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Title, c.Question)
	if err != nil {
		if wikiread.ErrorCode(err) == wikiread.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not saved. Run 'wikiread save %q' first.\n", c.Title, c.Title)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
