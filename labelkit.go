// Package labelkit exports hierarchical catalog-label documents as
// paginated PDFs. It re-exports the public API from pkg/api.
package labelkit

import (
	"github.com/labelkit/labelkit/pkg/api"
)

// Exporter is the main label export API.
type Exporter = api.Exporter

// Options configures a label export.
type Options = api.Options

// Option is a function that modifies Options.
type Option = api.Option

// Document is a label document to export.
type Document = api.Document

// Node is one hierarchy entry.
type Node = api.Node

// New creates an exporter with default options.
func New() *Exporter { return api.New() }

// NewWithOptions creates an exporter with the specified options.
func NewWithOptions(options Options) *Exporter { return api.NewWithOptions(options) }

// DefaultOptions returns the default export options.
func DefaultOptions() Options { return api.DefaultOptions() }

// Templates lists the supported template identifiers.
func Templates() []string { return api.Templates() }

// Re-exported option constructors.
var (
	WithTemplate           = api.WithTemplate
	WithPageSize           = api.WithPageSize
	WithPageSizeName       = api.WithPageSizeName
	WithMargin             = api.WithMargin
	WithMarginCm           = api.WithMarginCm
	WithSectionTitle       = api.WithSectionTitle
	WithStrapline          = api.WithStrapline
	WithAutoTwoColumns     = api.WithAutoTwoColumns
	WithChildCodeExpansion = api.WithChildCodeExpansion
	WithFontRange          = api.WithFontRange
	WithAuthor             = api.WithAuthor
	WithSubject            = api.WithSubject
	WithKeywords           = api.WithKeywords
	WithDebug              = api.WithDebug
)

// Application identity constants.
const (
	AppName      = api.AppName
	DefaultTitle = api.DefaultTitle
)
