// Package api is the public surface of labelkit: it takes a label document
// (title, cabinet section, hierarchy) and exports it as a paginated PDF
// under one of the visual templates.
package api

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/labelkit/labelkit/internal/hierarchy"
	"github.com/labelkit/labelkit/internal/layout"
	"github.com/labelkit/labelkit/internal/render/pdf"
	"github.com/labelkit/labelkit/internal/template"
)

// Application identity written into exported documents.
const (
	AppName = "labelkit"

	// DefaultTitle is used when a document carries no title.
	DefaultTitle = "Cabinet Inventory Label"
)

// Node is one hierarchy entry as supplied by a caller.
type Node struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Children []Node `json:"children,omitempty"`
}

// Document is a label document to export.
type Document struct {
	Title          string `json:"title"`
	CabinetSection string `json:"cabinet_section"`
	Hierarchy      []Node `json:"hierarchy"`
}

// Exporter is the main API for exporting label documents to PDF.
type Exporter struct {
	options Options
}

// New creates an exporter with default options.
func New() *Exporter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an exporter with the specified options.
func NewWithOptions(options Options) *Exporter {
	return &Exporter{options: options}
}

// WithOptions returns a new exporter with the specified options.
func (e *Exporter) WithOptions(options Options) *Exporter {
	return NewWithOptions(options)
}

// WithOption returns a new exporter with the specified option applied.
func (e *Exporter) WithOption(option Option) *Exporter {
	newOptions := e.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Options returns a copy of the exporter's options.
func (e *Exporter) Options() Options {
	return e.options
}

// ExportToFile lays out the document and writes the PDF to outputPath.
// Layout itself cannot fail; the returned error is the file write's.
func (e *Exporter) ExportToFile(doc Document, outputPath string) error {
	pages, opts := e.layoutPages(doc)
	renderer := pdf.NewRenderer()
	renderer.Debug = e.options.Debug
	if err := renderer.RenderFile(pages, outputPath, opts); err != nil {
		return fmt.Errorf("export %q: %w", outputPath, err)
	}
	return nil
}

// Export lays out the document and writes the PDF to w.
func (e *Exporter) Export(doc Document, w io.Writer) error {
	pages, opts := e.layoutPages(doc)
	renderer := pdf.NewRenderer()
	renderer.Debug = e.options.Debug
	return renderer.Render(pages, w, opts)
}

// ExportBytes lays out the document and returns the PDF bytes.
func (e *Exporter) ExportBytes(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Export(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// layoutPages runs the full layout pass: resolve the template, apply
// overrides, normalize the hierarchy, and paginate.
func (e *Exporter) layoutPages(doc Document) ([]*layout.Page, pdf.RenderOptions) {
	o := e.options

	spec := template.Resolve(o.Template)
	if o.MaxFont > 0 {
		spec.MaxFont = o.MaxFont
	}
	if o.MinFont > 0 {
		spec.MinFont = o.MinFont
	}
	if o.LeadingMult > 0 {
		spec.LeadingMult = o.LeadingMult
	}
	if o.RowPad > 0 {
		spec.RowPad = o.RowPad
	}

	roots := convertNodes(doc.Hierarchy)
	if o.ExpandChildCodes {
		hierarchy.ExpandChildCodes(roots, o.CodeDelimiter)
	}
	rows := hierarchy.Flatten(roots)

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = DefaultTitle
	}

	engine := layout.NewEngine(spec, layout.Options{
		PageWidth:      o.PageWidth,
		PageHeight:     o.PageHeight,
		Margin:         o.Margin,
		Title:          title,
		CabinetSection: strings.TrimSpace(doc.CabinetSection),
		SectionTitle:   strings.TrimSpace(o.SectionTitle),
		Strapline:      o.Strapline,
		AutoTwoColumns: o.AutoTwoColumns,
		HeaderGap:      o.HeaderGap,
		IndentStep:     o.IndentStep,
	}, pdf.NewMeasurer())

	author := o.Author
	if author == "" {
		author = AppName
	}
	meta := pdf.RenderOptions{
		Title:    title,
		Author:   author,
		Subject:  o.Subject,
		Keywords: o.Keywords,
		Creator:  AppName,
		Producer: AppName,
	}
	return engine.Layout(rows), meta
}

func convertNodes(nodes []Node) []*hierarchy.Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*hierarchy.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &hierarchy.Node{
			Code:     n.Code,
			Name:     n.Name,
			Children: convertNodes(n.Children),
		})
	}
	return out
}

// Templates lists the supported template identifiers.
func Templates() []string {
	return template.IDs()
}
