package source

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Small helpers over golang.org/x/net/html for picking result elements
// out of search pages without a full selector engine.

func parseHTML(body string) (*html.Node, error) {
	return html.Parse(strings.NewReader(body))
}

// findAll returns all element nodes under n matching the predicate,
// document order.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first matching element node, or nil.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	nodes := findAll(n, match)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether the node's class attribute contains the exact
// class token.
func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(attr(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// classContains reports whether any class token contains the substring.
func classContains(n *html.Node, substr string) bool {
	for _, token := range strings.Fields(attr(n, "class")) {
		if strings.Contains(token, substr) {
			return true
		}
	}
	return false
}

func isTag(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

var collapseSpaceRe = regexp.MustCompile(`\s+`)

// nodeText returns the node's text content with whitespace collapsed.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(collapseSpaceRe.ReplaceAllString(sb.String(), " "))
}
