// Package goquery implements the HTML extraction core on top of the
// goquery DOM library. It turns raw MediaWiki parse HTML into the ordered
// section list the rest of the application consumes: boilerplate is
// stripped destructively, headings are detected under the wrapper
// containment rules, and lists and data tables are reformatted into stable
// text forms.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwierzba/wikiread"
)

// contentRootSelector matches the parser output container holding an
// article's rendered body.
const contentRootSelector = "div.mw-parser-output"

// Sentinel sections for HTML-stage failures. These are reported in-band;
// parsing never fails the surrounding fetch.
var (
	parseFailure = wikiread.Section{
		Title:   "Error",
		Content: "Could not parse article content.",
	}
	missingRoot = wikiread.Section{
		Title:   "Error",
		Content: "Could not find main content area.",
	}
)

// Ensure Parser implements the extraction interfaces at compile time.
var (
	_ wikiread.SectionParser    = (*Parser)(nil)
	_ wikiread.ContentExtractor = (*Parser)(nil)
)

// Parser extracts sectioned article content from raw parse HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseSections extracts the ordered section list from raw parse HTML.
// The whole document is processed in one pass: filter, then a linear scan
// of the content root's children through the segmenter. Structural
// failures yield a single sentinel section rather than an error.
func (p *Parser) ParseSections(rawHTML string) []wikiread.Section {
	root, sentinel := p.contentRoot(rawHTML)
	if sentinel != nil {
		return []wikiread.Section{*sentinel}
	}

	node := root.Nodes[0]
	removeBoilerplate(node)

	seg := &segmenter{}
	for _, child := range elementChildren(node) {
		seg.feed(child)
	}
	return seg.finish()
}

// ExtractContentHTML returns the filtered content root as clean HTML with
// structure preserved, for consumers that need markup rather than the
// flattened section list.
func (p *Parser) ExtractContentHTML(rawHTML string) (string, error) {
	root, sentinel := p.contentRoot(rawHTML)
	if sentinel != nil {
		return "", wikiread.Errorf(wikiread.EINVALID, "%s", sentinel.Content)
	}

	removeBoilerplate(root.Nodes[0])

	inner, err := root.Html()
	if err != nil {
		return "", wikiread.Errorf(wikiread.EINTERNAL, "render content HTML: %v", err)
	}
	return inner, nil
}

// contentRoot parses the HTML and locates the content root: the parser
// output container, falling back to the document body. A sentinel section
// is returned instead when the HTML cannot be parsed or no usable root
// exists.
func (p *Parser) contentRoot(rawHTML string) (*goquery.Selection, *wikiread.Section) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, &missingRoot
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &parseFailure
	}

	root := doc.Find(contentRootSelector).First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		return nil, &missingRoot
	}
	return root, nil
}
