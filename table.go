package wikiread

import (
	"strings"
)

// Inline table marker delimiters. Section content strings embed tabular
// data between these literal markers; rows are joined by newlines and
// cells within a row by tabs. This encoding is the wire contract between
// the extraction core and the renderer and must not change shape.
const (
	tableMarkerStart = "<table>"
	tableMarkerEnd   = "</table>"
)

// Table holds the rows of cell text extracted from a data table. The first
// row is a header row only when it was built from header cells.
type Table struct {
	Rows [][]string `json:"rows"`
}

// EncodeTable serializes a table into its inline marker form.
func EncodeTable(t Table) string {
	rows := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, strings.Join(row, "\t"))
	}
	return tableMarkerStart + strings.Join(rows, "\n") + tableMarkerEnd
}

// Fragment is one decoded piece of a section content string: plain text
// when Table is nil, tabular data otherwise.
type Fragment struct {
	Text  string
	Table *Table
}

// DecodeContent splits a section content string into plain-text and table
// fragments. The string is scanned left to right; each opening marker is
// paired with the first closing marker after it, so multiple tables per
// string are supported. An opening marker with no closing marker is treated
// as literal text. Text fragments are normalized via NormalizeText and
// dropped when they normalize to nothing; blank table rows are discarded.
func DecodeContent(content string) []Fragment {
	var frags []Fragment

	appendText := func(s string) {
		if text := NormalizeText(s); text != "" {
			frags = append(frags, Fragment{Text: text})
		}
	}

	rest := content
	for {
		start := strings.Index(rest, tableMarkerStart)
		if start < 0 {
			appendText(rest)
			break
		}

		end := strings.Index(rest[start+len(tableMarkerStart):], tableMarkerEnd)
		if end < 0 {
			// Stray opening marker: the remainder is literal text.
			appendText(rest)
			break
		}
		end += start + len(tableMarkerStart)

		appendText(rest[:start])

		if t := decodeTableBody(rest[start+len(tableMarkerStart) : end]); len(t.Rows) > 0 {
			frags = append(frags, Fragment{Table: &t})
		}

		rest = rest[end+len(tableMarkerEnd):]
	}

	return frags
}

// decodeTableBody splits a marker body into rows and cells, discarding
// blank rows.
func decodeTableBody(body string) Table {
	var t Table
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.Rows = append(t.Rows, strings.Split(line, "\t"))
	}
	return t
}

// wireEntities covers exactly the entity set the renderer is contracted to
// unescape. Anything else passes through untouched.
var wireEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// NormalizeText prepares a plain-text portion of a content string for
// rendering: unescape the wire entity set, strip any remaining
// angle-bracket-delimited tags, then trim surrounding whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(stripTags(wireEntities.Replace(s)))
}

// stripTags removes angle-bracket-delimited runs literally. An unmatched
// "<" is kept as-is.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for {
		open := strings.IndexByte(s, '<')
		if open < 0 {
			sb.WriteString(s)
			break
		}
		closing := strings.IndexByte(s[open:], '>')
		if closing < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:open])
		s = s[open+closing+1:]
	}
	return sb.String()
}
