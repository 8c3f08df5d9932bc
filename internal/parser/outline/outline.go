// Package outline parses the plain-text outline format:
//
//	title: Beetle Cabinet
//	cabinet: West Wing, Drawer 4
//
//	- 12 Insecta
//	-- 12.1 Coleoptera
//	--- 12.1.1 Carabidae
//	- 13 Arachnida
//
// Entry depth is the number of leading dashes. Header lines are optional
// and must precede the first entry.
package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/labelkit/labelkit/internal/hierarchy"
)

var (
	outlineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Dashes", Pattern: `-+`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Word", Pattern: `[^\s:-][^\s:]*`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(outlineLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// File is the root AST node for an outline file.
type File struct {
	Headers []*Header `parser:"Newline* ( @@ Newline+ )*"`
	Entries []*Entry  `parser:"Newline* ( @@ Newline* )*"`
}

// Header is a `key: value` line above the entries.
type Header struct {
	Key   string   `parser:"@('title' | 'cabinet' | 'section') Colon"`
	Value []string `parser:"@(Word | Dashes)*"`
}

// Entry is a single dashed outline line.
type Entry struct {
	Pos   lexer.Position `parser:""`
	Depth string         `parser:"@Dashes"`
	Words []string       `parser:"@(Word | Colon | Dashes)*"`
}

// Parser reads outline files.
type Parser struct{}

// NewParser creates a new outline parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses an outline from r.
func (p *Parser) Parse(r io.Reader) (*hierarchy.Document, error) {
	file, err := fileParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	return buildDocument(file)
}

// ParseString parses an outline from a string.
func (p *Parser) ParseString(content string) (*hierarchy.Document, error) {
	file, err := fileParser.ParseString("", content)
	if err != nil {
		return nil, err
	}
	return buildDocument(file)
}

func buildDocument(file *File) (*hierarchy.Document, error) {
	doc := &hierarchy.Document{}
	for _, h := range file.Headers {
		value := strings.Join(h.Value, " ")
		switch h.Key {
		case "title":
			doc.Title = value
		case "cabinet", "section":
			doc.CabinetSection = value
		}
	}

	type frame struct {
		node  *hierarchy.Node
		depth int
	}
	sentinel := &hierarchy.Node{}
	stack := []frame{{node: sentinel, depth: 0}}

	for _, e := range file.Entries {
		line := strings.Join(e.Words, " ")
		if strings.TrimSpace(line) == "" {
			return nil, fmt.Errorf("empty entry at line %d", e.Pos.Line)
		}
		node := &hierarchy.Node{}
		node.Code, node.Name = hierarchy.SplitCodeName(line)

		depth := len(e.Depth)
		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, frame{node: node, depth: depth})
	}

	doc.Roots = sentinel.Children
	return doc, nil
}
