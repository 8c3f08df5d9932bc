// Package label reads the native JSON label document: metadata plus the
// hierarchy as exported by the tree editor.
package label

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/labelkit/labelkit/internal/hierarchy"
)

// Parser reads JSON label documents.
type Parser struct{}

// NewParser creates a new JSON label parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a label document from r.
func (p *Parser) Parse(r io.Reader) (*hierarchy.Document, error) {
	var doc hierarchy.Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode label document: %w", err)
	}
	return &doc, nil
}

// ParseString decodes a label document from a string.
func (p *Parser) ParseString(content string) (*hierarchy.Document, error) {
	return p.Parse(strings.NewReader(content))
}
