package main

import (
	"fmt"
	"path/filepath"

	"github.com/mwierzba/wikiread"
	"github.com/mwierzba/wikiread/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	article, err := deps.Fetcher.FetchArticle(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		if wikiread.ErrorCode(err) == wikiread.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Try 'wikiread search %q' to find the exact title.\n", c.Title)
		}
		return err
	}

	markdown, err := c.exportMarkdown(deps)
	if err != nil {
		// Fall back to the flat section text when the page HTML can't be
		// fetched or yields no usable content root.
		markdown = wikiread.FormatSections(article.Sections)
	}

	if err := deps.Writer.WriteArticle(deps.Ctx, article, markdown); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiread.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %q to %s\n", article.Title, filepath.Join(c.Dir, fs.TitleToFilename(article.Title)))
	return nil
}

// exportMarkdown converts the article's filtered content HTML to Markdown.
// The page fetch is served from cache after FetchArticle.
func (c *ExportCmd) exportMarkdown(deps *Dependencies) (string, error) {
	html, err := deps.Pages.FetchPageHTML(deps.Ctx, c.Title)
	if err != nil {
		return "", err
	}

	contentHTML, err := deps.Extractor.ExtractContentHTML(html)
	if err != nil {
		return "", err
	}

	return deps.Converter.Convert(contentHTML)
}
