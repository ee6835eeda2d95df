package goquery

import (
	"golang.org/x/net/html"
)

// removeRule is one structural predicate in the boilerplate rule set.
// Rules are data: tag and class membership tests, no selector strings, so
// each rule is unit-testable in isolation.
type removeRule struct {
	name  string
	match func(n *html.Node) bool
}

// removeRules is the fixed boilerplate rule set. Any element matching a
// rule is detached from the tree together with its subtree.
var removeRules = []removeRule{
	{"infobox", func(n *html.Node) bool {
		return classContains(n, "infobox")
	}},
	{"thumbnail", func(n *html.Node) bool {
		return n.Data == "figure" || classContains(n, "thumb")
	}},
	{"image", func(n *html.Node) bool {
		return n.Data == "img"
	}},
	{"table of contents", func(n *html.Node) bool {
		return hasClass(n, "toc") || attr(n, "id") == "toc"
	}},
	{"section edit link", func(n *html.Node) bool {
		return hasClass(n, "mw-editsection")
	}},
	{"navbox", func(n *html.Node) bool {
		return classContains(n, "navbox") || hasClass(n, "sistersitebox")
	}},
	{"message box", func(n *html.Node) bool {
		return classContains(n, "mbox")
	}},
	{"layout table", func(n *html.Node) bool {
		return n.Data == "table" && !hasClass(n, "wikitable")
	}},
	{"jump link", func(n *html.Node) bool {
		return hasClass(n, "mw-jump-link")
	}},
	{"style", func(n *html.Node) bool {
		return n.Data == "style"
	}},
	{"empty element", func(n *html.Node) bool {
		return n.FirstChild == nil
	}},
}

// removeBoilerplate destructively strips every boilerplate node beneath
// root. Removal runs to a fixpoint so that elements emptied by an earlier
// round are removed as well; a second call on the same tree is a no-op.
func removeBoilerplate(root *html.Node) {
	for {
		matched := collectMatches(root)
		if len(matched) == 0 {
			return
		}
		for _, n := range matched {
			if n.Parent != nil {
				n.Parent.RemoveChild(n)
			}
		}
	}
}

// collectMatches walks the subtree below root once and returns every
// element matching a rule. Descendants of a matched element are not
// collected; removing the ancestor drops them anyway.
func collectMatches(root *html.Node) []*html.Node {
	var matched []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && matchesAnyRule(c) {
				matched = append(matched, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return matched
}

func matchesAnyRule(n *html.Node) bool {
	for _, rule := range removeRules {
		if rule.match(n) {
			return true
		}
	}
	return false
}
