package main

import (
	"fmt"

	"github.com/mwierzba/wikiread"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, r.Title)
		if r.Description != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", r.Description)
		}
		fmt.Fprintf(deps.Stdout, "   %s\n", r.URL)
	}

	return nil
}
