// Package markdown reads a label hierarchy from a Markdown outline using
// goldmark: heading depth becomes hierarchy level, so an h1 is a level-1
// entry and an h3 sits two levels below it.
package markdown

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/labelkit/labelkit/internal/hierarchy"
)

// Parser reads Markdown outlines.
type Parser struct{}

// NewParser creates a new Markdown outline parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses a Markdown outline from a string.
func (p *Parser) ParseString(content string) (*hierarchy.Document, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses a Markdown outline from r. Non-heading content is ignored;
// the catalog structure lives entirely in the heading tree.
func (p *Parser) Parse(r io.Reader) (*hierarchy.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	doc := &hierarchy.Document{}

	// Stack of (node, heading level); the sentinel carries the roots.
	type frame struct {
		node  *hierarchy.Node
		level int
	}
	sentinel := &hierarchy.Node{}
	stack := []frame{{node: sentinel, level: 0}}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		line := strings.TrimSpace(string(h.Text(src)))

		node := &hierarchy.Node{}
		node.Code, node.Name = hierarchy.SplitCodeName(line)

		for len(stack) > 1 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, frame{node: node, level: h.Level})
	}

	doc.Roots = sentinel.Children
	return doc, nil
}
