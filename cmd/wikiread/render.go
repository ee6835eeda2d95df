package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mwierzba/wikiread"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	headingColor = color.New(color.FgYellow, color.Bold)
)

// renderArticle writes an article to w with colored headings and aligned
// tables. Section content is decoded from its wire form before printing.
func renderArticle(w io.Writer, article *wikiread.Article) {
	titleColor.Fprintln(w, article.Title)
	if article.SourceURL != "" {
		fmt.Fprintln(w, article.SourceURL)
	}

	for _, s := range article.Sections {
		if !s.IsIntro() {
			fmt.Fprintln(w)
			headingColor.Fprintln(w, sectionHeading(s))
		}
		fmt.Fprintln(w)
		renderContent(w, s.Content)
	}
}

// sectionHeading prefixes the title with markers matching the heading depth,
// so nesting stays visible in plain terminal output.
func sectionHeading(s wikiread.Section) string {
	depth := s.Level
	if depth < 2 {
		depth = 2
	}
	return strings.Repeat("#", depth-1) + " " + s.Title
}

func renderContent(w io.Writer, content string) {
	for _, frag := range wikiread.DecodeContent(content) {
		if frag.Table != nil {
			renderTable(w, frag.Table)
			continue
		}
		fmt.Fprintln(w, frag.Text)
	}
}

func renderTable(w io.Writer, table *wikiread.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range table.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}
