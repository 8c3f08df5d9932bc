// Package template maps a template identifier to the bundle of typographic
// and layout parameters driving one visual style of the exported label.
package template

import (
	"strings"

	"github.com/labelkit/labelkit/internal/textfit"
)

// DefaultID is the template used for blank or unknown identifiers.
const DefaultID = "classic"

// Spec is an immutable parameter bundle for one template. Rendering
// differences between templates are driven entirely by these fields; the
// row renderer never compares identifiers. Callers needing per-export
// overrides copy the value.
type Spec struct {
	ID string

	FontRegular textfit.Font
	FontBold    textfit.Font

	MaxFont     float64
	MinFont     float64
	LeadingMult float64
	RowPad      float64

	// Fraction of the column width given to the code cell.
	CodeColFrac float64

	// Rendering-mode flags.
	UsesBulletsAndIndent bool // bullet glyph + per-level indent (outline family)
	EmphasizeCode        bool // bold code on every row, not just level 1
	DenseSpacing         bool // tighter inter-row gaps
	BoxedFrame           bool // rounded frame per row + cabinet block
	InstitutionalChrome  bool // strapline and page-number footer

	// ForceTwoColumns always lays out two columns when the page is wide
	// enough, regardless of the auto-flow toggle and height estimate.
	ForceTwoColumns bool

	// RuleInterval draws a separator rule under every Nth row; 0 disables.
	RuleInterval int
}

var (
	helvetica = textfit.Font{Family: "Helvetica"}
	times     = textfit.Font{Family: "Times"}
)

var registry = map[string]Spec{
	"classic": {
		ID:           "classic",
		FontRegular:  times,
		FontBold:     times.Bold(),
		MaxFont:      11,
		MinFont:      7,
		LeadingMult:  1.25,
		RowPad:       6,
		CodeColFrac:  0.30,
		RuleInterval: 1,
	},
	"modern": {
		ID:           "modern",
		FontRegular:  helvetica,
		FontBold:     helvetica.Bold(),
		MaxFont:      11,
		MinFont:      7,
		LeadingMult:  1.25,
		RowPad:       6,
		CodeColFrac:  0.30,
		RuleInterval: 1,
	},
	"institutional": {
		ID:                  "institutional",
		FontRegular:         helvetica,
		FontBold:            helvetica.Bold(),
		MaxFont:             11,
		MinFont:             7,
		LeadingMult:         1.25,
		RowPad:              6,
		CodeColFrac:         0.30,
		RuleInterval:        1,
		InstitutionalChrome: true,
	},
	"boxed": {
		ID:          "boxed",
		FontRegular: times,
		FontBold:    times.Bold(),
		MaxFont:     11,
		MinFont:     7,
		LeadingMult: 1.25,
		RowPad:      6,
		CodeColFrac: 0.30,
		BoxedFrame:  true,
	},
	"compact": {
		ID:           "compact",
		FontRegular:  helvetica,
		FontBold:     helvetica.Bold(),
		MaxFont:      10,
		MinFont:      7,
		LeadingMult:  1.25,
		RowPad:       3.5,
		CodeColFrac:  0.30,
		RuleInterval: 1,
		DenseSpacing: true,
	},
	"code_first": {
		ID:            "code_first",
		FontRegular:   helvetica,
		FontBold:      helvetica.Bold(),
		MaxFont:       12,
		MinFont:       7.5,
		LeadingMult:   1.25,
		RowPad:        5,
		CodeColFrac:   0.40,
		RuleInterval:  1,
		EmphasizeCode: true,
	},
	"outline": {
		ID:                   "outline",
		FontRegular:          helvetica,
		FontBold:             helvetica.Bold(),
		MaxFont:              11,
		MinFont:              7,
		LeadingMult:          1.25,
		RowPad:               4,
		CodeColFrac:          0.26,
		UsesBulletsAndIndent: true,
	},
	"two_column": {
		ID:                   "two_column",
		FontRegular:          helvetica,
		FontBold:             helvetica.Bold(),
		MaxFont:              11,
		MinFont:              7,
		LeadingMult:          1.25,
		RowPad:               4,
		CodeColFrac:          0.26,
		UsesBulletsAndIndent: true,
		ForceTwoColumns:      true,
	},
}

// Resolve returns the Spec for a template identifier. Blank or unknown
// identifiers fall back silently to the classic template: a bad template id
// must never reject an export.
func Resolve(id string) Spec {
	key := strings.ToLower(strings.TrimSpace(id))
	if spec, ok := registry[key]; ok {
		return spec
	}
	return registry[DefaultID]
}

// IDs lists the supported template identifiers in stable order.
func IDs() []string {
	return []string{"classic", "modern", "institutional", "boxed", "compact", "code_first", "outline", "two_column"}
}
