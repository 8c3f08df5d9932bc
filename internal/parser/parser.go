// Package parser selects an input parser by file extension.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/labelkit/labelkit/internal/hierarchy"
	"github.com/labelkit/labelkit/internal/parser/html"
	"github.com/labelkit/labelkit/internal/parser/label"
	"github.com/labelkit/labelkit/internal/parser/markdown"
	"github.com/labelkit/labelkit/internal/parser/outline"
)

// Parser converts raw input into a label document.
type Parser interface {
	Parse(r io.Reader) (*hierarchy.Document, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".json":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
	".outline":  true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return label.NewParser(), nil
	case ".md", ".markdown":
		return markdown.NewParser(), nil
	case ".html", ".htm":
		return html.NewParser(), nil
	case ".txt", ".outline":
		return outline.NewParser(), nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
