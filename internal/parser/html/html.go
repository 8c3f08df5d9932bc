// Package html reads a label hierarchy from an HTML outline: the first
// <ul> or <ol> in the document becomes the level-1 nodes, nested lists
// their children. The <title> element supplies the document title.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/labelkit/labelkit/internal/hierarchy"
)

// Parser reads HTML outlines.
type Parser struct{}

// NewParser creates a new HTML outline parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses an HTML outline from a string.
func (p *Parser) ParseString(content string) (*hierarchy.Document, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses an HTML outline from r.
func (p *Parser) Parse(r io.Reader) (*hierarchy.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	doc := &hierarchy.Document{}
	if t := findElement(root, "title"); t != nil {
		doc.Title = strings.TrimSpace(nodeText(t))
	}
	if list := findElement(root, "ul", "ol"); list != nil {
		doc.Roots = parseList(list)
	}
	return doc, nil
}

// parseList converts the <li> children of a list element into nodes,
// recursing into nested lists.
func parseList(list *html.Node) []*hierarchy.Node {
	var nodes []*hierarchy.Node
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !strings.EqualFold(c.Data, "li") {
			continue
		}
		n := &hierarchy.Node{}
		n.Code, n.Name = hierarchy.SplitCodeName(itemText(c))
		if nested := findElement(c, "ul", "ol"); nested != nil {
			n.Children = parseList(nested)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// itemText collects the text of a list item, excluding nested lists.
func itemText(li *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (strings.EqualFold(c.Data, "ul") || strings.EqualFold(c.Data, "ol")) {
				continue
			}
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
				b.WriteString(" ")
			}
			walk(c)
		}
	}
	walk(li)
	return strings.TrimSpace(b.String())
}

// nodeText collects every text node under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// findElement returns the first element with one of the given tag names in
// document order, not descending into a match.
func findElement(n *html.Node, names ...string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			for _, name := range names {
				if strings.EqualFold(c.Data, name) {
					return c
				}
			}
		}
		if found := findElement(c, names...); found != nil {
			return found
		}
	}
	return nil
}
