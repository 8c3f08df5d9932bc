// Package pdf renders laid-out pages to a PDF file with fpdf and exposes
// the fpdf string-width oracle the layout engine measures text with.
package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"

	"github.com/labelkit/labelkit/internal/layout"
	"github.com/labelkit/labelkit/internal/textfit"
)

// RenderOptions contains the document metadata written to the PDF.
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Renderer turns pages of draw ops into a PDF document.
type Renderer struct {
	// Debug enables verbose logging to stdout.
	Debug bool
}

// NewRenderer creates a new PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the pages as a PDF to w.
func (r *Renderer) Render(pages []*layout.Page, w io.Writer, options RenderOptions) error {
	doc := r.build(pages, options)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// RenderFile writes the pages as a PDF to outputPath, creating the parent
// directory when missing. This final write is the only failure surface of
// an export.
func (r *Renderer) RenderFile(pages []*layout.Page, outputPath string, options RenderOptions) error {
	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	doc := r.build(pages, options)
	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (r *Renderer) build(pages []*layout.Page, options RenderOptions) *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)
	doc.SetProducer(options.Producer, true)

	tr := doc.UnicodeTranslatorFromDescriptor("")

	if r.Debug {
		fmt.Printf("Rendering %d pages\n", len(pages))
	}

	for _, page := range pages {
		orient, size := "P", fpdf.SizeType{Wd: page.Width, Ht: page.Height}
		if page.Width > page.Height {
			orient, size = "L", fpdf.SizeType{Wd: page.Height, Ht: page.Width}
		}
		doc.AddPageFormat(orient, size)
		doc.SetDrawColor(0, 0, 0)
		doc.SetTextColor(0, 0, 0)

		for _, op := range page.Ops {
			r.renderOp(doc, tr, op)
		}
	}
	return doc
}

func (r *Renderer) renderOp(doc *fpdf.Fpdf, tr func(string) string, op layout.Op) {
	switch o := op.(type) {
	case layout.TextOp:
		doc.SetFont(o.Font.Family, o.Font.Style, o.Size)
		doc.Text(o.X, o.Y, tr(o.Text))
	case layout.LineOp:
		doc.SetLineWidth(o.Width)
		doc.Line(o.X1, o.Y1, o.X2, o.Y2)
	case layout.RectOp:
		doc.SetLineWidth(o.Width)
		if o.Radius > 0 {
			doc.RoundedRect(o.X, o.Y, o.W, o.H, o.Radius, "1234", "D")
		} else {
			doc.Rect(o.X, o.Y, o.W, o.H, "D")
		}
	default:
		if r.Debug {
			fmt.Printf("Unknown op type: %T\n", op)
		}
	}
}

// Measurer is the fpdf-backed font-metrics oracle. It owns a throwaway
// document used only for width queries; core-font metrics are identical
// across documents, so measuring and rendering may use different instances.
// Not safe for concurrent use; each export builds its own.
type Measurer struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// NewMeasurer creates a measurement oracle over the core PDF fonts.
func NewMeasurer() *Measurer {
	doc := fpdf.New("P", "pt", "A4", "")
	return &Measurer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (m *Measurer) TextWidth(s string, font textfit.Font, size float64) float64 {
	m.doc.SetFont(font.Family, font.Style, size)
	return m.doc.GetStringWidth(m.tr(s))
}
