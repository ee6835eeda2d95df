package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// Class markers used by MediaWiki heading markup.
const (
	headlineClass         = "mw-headline"
	headingContainerClass = "mw-heading"
)

// Heading is a detected section heading.
type Heading struct {
	Level int
	Title string
}

// detectHeading classifies a node as a section heading. Two encodings are
// recognized: the node is itself an h1-h6 tag, or the node wraps a primary
// heading under the containment rules below. A heading buried deeper in
// unrelated content (a nested table cell, say) is not primary, so it never
// starts a section.
func detectHeading(n *html.Node) (Heading, bool) {
	if n.Type != html.ElementNode {
		return Heading{}, false
	}

	if level, ok := headingLevel(n); ok {
		return Heading{Level: level, Title: strings.TrimSpace(textContent(n))}, true
	}

	h := findFirst(n, func(d *html.Node) bool {
		_, ok := headingLevel(d)
		return ok
	})
	if h == nil || !isPrimaryHeading(n, h) {
		return Heading{}, false
	}

	level, _ := headingLevel(h)
	return Heading{Level: level, Title: strings.TrimSpace(textContent(h))}, true
}

// isPrimaryHeading applies the wrapper containment rules in priority
// order; the first match decides.
func isPrimaryHeading(wrapper, h *html.Node) bool {
	// Direct child of the wrapper.
	if h.Parent == wrapper {
		return true
	}
	// Degenerate case: the wrapper is the heading itself.
	if h == wrapper {
		return true
	}
	// Headline marker between the heading and the wrapper.
	if h.Parent != nil && hasClass(h.Parent, headlineClass) && h.Parent.Parent == wrapper {
		return true
	}
	// Recognized heading container holding the heading directly.
	if hasClass(wrapper, headingContainerClass) && h.Parent == wrapper {
		return true
	}
	return false
}

// headingLevel returns the level of an h1-h6 element. Any other tag, or a
// numeral suffix outside 1-6, is not a heading.
func headingLevel(n *html.Node) (int, bool) {
	if n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0, false
	}
	level := int(n.Data[1] - '0')
	if level < 1 || level > 6 {
		return 0, false
	}
	return level, true
}
