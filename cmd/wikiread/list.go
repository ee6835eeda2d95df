package main

import (
	"fmt"

	"github.com/mwierzba/wikiread"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, wikiread.ArticleFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved articles. Use 'wikiread save' to add one.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", a.FetchedAt.Format("2006-01-02"), a.Title, a.SourceURL)
	}

	return nil
}
