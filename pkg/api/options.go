package api

import "github.com/labelkit/labelkit/internal/units"

// Options represents configuration options for a label export.
type Options struct {
	// Page dimensions in points. Non-positive values fall back to A4.
	PageWidth  float64
	PageHeight float64

	// Margin on all four sides, in points.
	Margin float64

	// Template is the visual style identifier: classic, modern,
	// institutional, boxed, compact, code_first, outline, two_column.
	// Unknown values fall back to classic.
	Template string

	// SectionTitle is the optional label shown above the rows; empty
	// means none.
	SectionTitle string

	// Strapline is the small top-left line drawn by the institutional
	// template.
	Strapline string

	// AutoTwoColumns flows content into two columns on the same page when
	// it would otherwise spill to further pages.
	AutoTwoColumns bool

	// ExpandChildCodes rewrites bare numeric child codes against their
	// parent code ("06" under "12" becomes "12.6") using CodeDelimiter.
	ExpandChildCodes bool
	CodeDelimiter    string

	// Typographic overrides; zero keeps the template's value.
	MaxFont     float64
	MinFont     float64
	LeadingMult float64
	RowPad      float64
	HeaderGap   float64
	IndentStep  float64

	// Document metadata written to the PDF.
	Author   string
	Subject  string
	Keywords string

	// Debug enables verbose renderer logging.
	Debug bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		PageWidth:  units.PageSizeA4.Width,
		PageHeight: units.PageSizeA4.Height,

		Margin: units.CmToPt(1.6),

		Template: "classic",

		AutoTwoColumns: true,

		CodeDelimiter: ".",
	}
}

// WithTemplate sets the template identifier.
func WithTemplate(id string) Option {
	return func(o *Options) {
		o.Template = id
	}
}

// WithPageSize sets the page size in points.
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageSizeName sets the page size from a preset name (A3, A4, A5,
// Letter, Legal). Unknown names keep the current size.
func WithPageSizeName(name string) Option {
	return func(o *Options) {
		if ps, ok := units.Lookup(name); ok {
			o.PageWidth = ps.Width
			o.PageHeight = ps.Height
		}
	}
}

// WithMargin sets the page margin in points.
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithMarginCm sets the page margin in centimeters.
func WithMarginCm(cm float64) Option {
	return WithMargin(units.CmToPt(cm))
}

// WithSectionTitle sets the section title shown above the rows.
func WithSectionTitle(title string) Option {
	return func(o *Options) {
		o.SectionTitle = title
	}
}

// WithStrapline sets the institutional strapline.
func WithStrapline(s string) Option {
	return func(o *Options) {
		o.Strapline = s
	}
}

// WithAutoTwoColumns toggles automatic two-column flow.
func WithAutoTwoColumns(enabled bool) Option {
	return func(o *Options) {
		o.AutoTwoColumns = enabled
	}
}

// WithChildCodeExpansion toggles numeric child-code expansion with the
// given delimiter.
func WithChildCodeExpansion(delimiter string) Option {
	return func(o *Options) {
		o.ExpandChildCodes = true
		o.CodeDelimiter = delimiter
	}
}

// WithFontRange overrides the template's maximum and minimum font sizes.
func WithFontRange(max, min float64) Option {
	return func(o *Options) {
		o.MaxFont = max
		o.MinFont = min
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject metadata.
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords metadata.
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithDebug sets the debug mode.
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}
