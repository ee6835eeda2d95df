package goquery

import (
	"strconv"
	"strings"

	"github.com/mwierzba/wikiread"
	"golang.org/x/net/html"
)

// dataTableClass marks tables that carry structured data rather than
// layout. Layout tables are removed by the boilerplate filter before
// formatting runs.
const dataTableClass = "wikitable"

// formatNode converts one non-heading content node into a text fragment.
// Lists and data tables get stable text forms; everything else flattens to
// its visible text. Entity and tag cleanup is the renderer's job, not ours.
func formatNode(n *html.Node) string {
	switch {
	case n.Data == "ul":
		var sb strings.Builder
		for _, item := range listItems(n) {
			sb.WriteString("• ")
			sb.WriteString(item)
			sb.WriteString("\n")
		}
		return sb.String()
	case n.Data == "ol":
		var sb strings.Builder
		for i, item := range listItems(n) {
			sb.WriteString(strconv.Itoa(i + 1))
			sb.WriteString(". ")
			sb.WriteString(item)
			sb.WriteString("\n")
		}
		return sb.String()
	case n.Data == "table" && hasClass(n, dataTableClass):
		return wikiread.EncodeTable(parseTable(n))
	default:
		return textContent(n)
	}
}

// listItems returns the trimmed text of the direct list items of a ul/ol.
func listItems(list *html.Node) []string {
	var items []string
	for _, c := range elementChildren(list) {
		if c.Data == "li" {
			items = append(items, strings.TrimSpace(textContent(c)))
		}
	}
	return items
}

// parseTable builds the row model of a data table. The first row becomes a
// header row only when it holds at least one non-empty header cell; data
// rows are trimmed cell by cell and dropped entirely when they hold no
// data cells.
func parseTable(table *html.Node) wikiread.Table {
	var t wikiread.Table

	rows := findRows(table)
	if len(rows) == 0 {
		return t
	}

	if header := headerCells(rows[0]); len(header) > 0 {
		t.Rows = append(t.Rows, header)
		rows = rows[1:]
	}

	for _, row := range rows {
		var cells []string
		for _, c := range elementChildren(row) {
			if c.Data == "td" {
				cells = append(cells, strings.TrimSpace(textContent(c)))
			}
		}
		if len(cells) == 0 {
			continue
		}
		t.Rows = append(t.Rows, cells)
	}

	return t
}

// findRows collects the tr elements of a table in document order,
// including rows nested in thead/tbody.
func findRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "tr" {
				rows = append(rows, c)
				continue
			}
			walk(c)
		}
	}
	walk(table)
	return rows
}

// headerCells returns the trimmed th cell texts of a row, or nil when the
// row holds no non-empty header cell.
func headerCells(row *html.Node) []string {
	var cells []string
	nonEmpty := false
	for _, c := range elementChildren(row) {
		if c.Data != "th" {
			continue
		}
		text := strings.TrimSpace(textContent(c))
		if text != "" {
			nonEmpty = true
		}
		cells = append(cells, text)
	}
	if !nonEmpty {
		return nil
	}
	return cells
}

// skippable identifies boilerplate-by-class nodes that the segmenter must
// not format even when they survived bulk removal, e.g. wrappers that
// gained the class after filtering or markup variants outside the rule
// set.
func skippable(n *html.Node) bool {
	if n.Data == "meta" || n.Data == "style" {
		return true
	}
	if hasClass(n, "shortdescription") || hasClass(n, "hatnote") ||
		hasClass(n, "mw-jump-link") || hasClass(n, "toc") {
		return true
	}
	return classContains(n, "infobox") || classContains(n, "navbox")
}
