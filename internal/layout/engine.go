// Package layout is the pagination engine: it turns flattened hierarchy
// rows into pages of draw commands, flowing level-1 groups through one or
// two columns under a template's typographic parameters.
package layout

import (
	"fmt"

	"github.com/labelkit/labelkit/internal/hierarchy"
	"github.com/labelkit/labelkit/internal/template"
	"github.com/labelkit/labelkit/internal/textfit"
	"github.com/labelkit/labelkit/internal/units"
)

// Options configures one layout run. All lengths are points.
type Options struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	Title          string
	CabinetSection string
	SectionTitle   string
	// Strapline is the small top-left line drawn by templates with
	// institutional chrome.
	Strapline string

	// AutoTwoColumns switches to two columns when the one-column estimate
	// overflows the first page.
	AutoTwoColumns bool

	// HeaderGap is the space below the header rule; IndentStep the
	// per-level indent for outline-family templates. Zero means default.
	HeaderGap  float64
	IndentStep float64
}

// Layout constants shared by estimation and drawing.
const (
	columnGap    = 18.0 // between the two content columns
	cellGap      = 12.0 // between the code and name cells
	maxRowHeight = 72.0 // fit budget per cell
	rowBaseTight = 14.0
	rowBase      = 18.0
	bulletPad    = 10.0
	captionSize  = 10.5

	defaultHeaderGap  = 12.0
	defaultIndentStep = 10.0
)

// minTwoColumnWidth is the narrowest content width that still yields two
// readable columns (A5 portrait gets cramped quickly).
var minTwoColumnWidth = units.CmToPt(15)

// cursor is the mutable pagination state threaded through the layout pass:
// current page, column index, left edge, vertical offset, and the top of
// the column area on the current page.
type cursor struct {
	page *Page
	col  int
	x    float64
	y    float64
	// colTop is where the column area starts (set per page, shared by both
	// columns); contentTop is where rows start, below any table captions.
	colTop     float64
	contentTop float64
	rowsCut    int // rows drawn in the current column, for rule intervals
}

// geometry is the column arithmetic fixed once per layout run.
type geometry struct {
	twoCols bool
	colW    float64
	codeW   float64
	colX    [2]float64
}

// Engine lays out one export. It is single use: build, call Layout once,
// discard. Nothing is shared between exports.
type Engine struct {
	spec template.Spec
	opts Options
	m    textfit.Measurer

	contentW float64
	bottom   float64
	x0, x1   float64
	geo      geometry
	pages    []*Page
}

// NewEngine builds an engine for one export. Degenerate page sizes are
// remapped to A4 and over-large margins clamped so the engine never has to
// fail on geometry.
func NewEngine(spec template.Spec, opts Options, m textfit.Measurer) *Engine {
	if opts.PageWidth <= 0 || opts.PageHeight <= 0 {
		opts.PageWidth = units.PageSizeA4.Width
		opts.PageHeight = units.PageSizeA4.Height
	}
	if opts.Margin <= 0 {
		opts.Margin = units.CmToPt(1.6)
	}
	if 2*opts.Margin >= opts.PageWidth || 2*opts.Margin >= opts.PageHeight {
		smaller := opts.PageWidth
		if opts.PageHeight < smaller {
			smaller = opts.PageHeight
		}
		opts.Margin = smaller * 0.1
	}
	if opts.HeaderGap <= 0 {
		opts.HeaderGap = defaultHeaderGap
	}
	if opts.IndentStep <= 0 {
		opts.IndentStep = defaultIndentStep
	}

	e := &Engine{spec: spec, opts: opts, m: m}
	e.x0 = opts.Margin
	e.x1 = opts.PageWidth - opts.Margin
	e.contentW = e.x1 - e.x0
	e.bottom = opts.PageHeight - opts.Margin
	return e
}

// Layout runs the full pagination pass and returns the pages in order.
// It never fails: empty input yields a single header-only page.
func (e *Engine) Layout(rows []hierarchy.FlatRow) []*Page {
	cu := cursor{}
	cu.page = e.newPage()
	cu.y = e.drawHeader(cu.page, false)

	if e.spec.BoxedFrame {
		cu.y = e.drawCabinetBlock(cu.page, cu.y)
	}

	groups := hierarchy.GroupByLevel1(rows)
	if len(groups) == 0 {
		return e.pages
	}

	e.geo = e.decideColumns(groups, cu.y)
	cu.colTop = cu.y
	cu.col = 0
	cu.x = e.geo.colX[0]
	e.enterColumn(&cu)

	for _, g := range groups {
		e.placeGroup(&cu, g)
	}
	return e.pages
}

func (e *Engine) newPage() *Page {
	p := &Page{
		Width:  e.opts.PageWidth,
		Height: e.opts.PageHeight,
		Number: len(e.pages) + 1,
	}
	e.pages = append(e.pages, p)
	return p
}

// decideColumns fixes the column count for the whole document, before any
// row is drawn. Two columns require the auto-flow toggle (or a template
// that forces them) plus enough content width; the auto path additionally
// requires the one-column estimate to overflow the space left on page 1.
func (e *Engine) decideColumns(groups [][]hierarchy.FlatRow, yStart float64) geometry {
	geo := geometry{colW: e.contentW, colX: [2]float64{e.x0, e.x0}}

	wide := e.contentW >= minTwoColumnWidth
	two := false
	switch {
	case e.spec.ForceTwoColumns:
		two = wide
	case e.opts.AutoTwoColumns && wide:
		two = e.estimateHeight(geo, groups) > e.bottom-yStart
	}

	if two {
		geo.twoCols = true
		geo.colW = (e.contentW - columnGap) / 2
		geo.colX = [2]float64{e.x0, e.x0 + geo.colW + columnGap}
	}
	geo.codeW = geo.colW * e.spec.CodeColFrac
	return geo
}

// estimateHeight sums the fitted heights of every row at the given column
// width, including caption and spacing overhead, for the column decision.
func (e *Engine) estimateHeight(geo geometry, groups [][]hierarchy.FlatRow) float64 {
	geo.codeW = geo.colW * e.spec.CodeColFrac
	h := 0.0
	if e.drawsCaptions() {
		h += captionHeight
	}
	for _, g := range groups {
		h += e.groupHeight(geo, g)
	}
	return h
}

func (e *Engine) groupHeight(geo geometry, g []hierarchy.FlatRow) float64 {
	h := 0.0
	for _, r := range g {
		h += e.rowHeight(geo, r) + e.interRowGap()
	}
	return h + e.groupGap()
}

func (e *Engine) interRowGap() float64 {
	if e.spec.DenseSpacing {
		return 4
	}
	return 6
}

// continuationGap follows a repeated level-1 row after a forced split.
func (e *Engine) continuationGap() float64 {
	if e.spec.DenseSpacing {
		return 2
	}
	return 4
}

func (e *Engine) groupGap() float64 {
	if e.spec.DenseSpacing {
		return 6
	}
	return 10
}

// rowIndent returns the horizontal shift of a whole row. Only the
// outline family indents; the code/name split point moves with the row.
func (e *Engine) rowIndent(level int) float64 {
	if !e.spec.UsesBulletsAndIndent {
		return 0
	}
	shift := float64(level-1) * e.opts.IndentStep
	if shift < 0 {
		shift = 0
	}
	return shift + bulletPad
}

// cellWidths computes the code and name sub-widths for a row at its level.
// Indentation narrows the name cell; widths never drop below a floor so a
// pathological geometry still wraps instead of failing.
func (e *Engine) cellWidths(geo geometry, level int) (codeW, nameW float64) {
	codeW = geo.codeW - 6
	nameW = geo.colW - e.rowIndent(level) - geo.codeW - cellGap
	if codeW < 10 {
		codeW = 10
	}
	if nameW < 10 {
		nameW = 10
	}
	return codeW, nameW
}

func (e *Engine) codeFont(level int) textfit.Font {
	if level == 1 || e.spec.EmphasizeCode {
		return e.spec.FontBold
	}
	return e.spec.FontRegular
}

// rowHeight is the fitted height of one row: the taller of the code and
// name cells, floored at the template's base row height, plus padding.
// Estimation and drawing share this result so group moves are exact.
func (e *Engine) rowHeight(geo geometry, r hierarchy.FlatRow) float64 {
	codeW, nameW := e.cellWidths(geo, r.Level)

	_, codeLines, codeLead := e.fit(r.Code, e.codeFont(r.Level), codeW)
	_, nameLines, nameLead := e.fit(r.Name, e.spec.FontRegular, nameW)

	base := rowBase
	if e.spec.DenseSpacing {
		base = rowBaseTight
	}
	h := float64(len(codeLines)) * codeLead
	if nh := float64(len(nameLines)) * nameLead; nh > h {
		h = nh
	}
	if h < base {
		h = base
	}
	return h + e.spec.RowPad
}

func (e *Engine) fit(text string, font textfit.Font, w float64) (float64, []string, float64) {
	return textfit.FitParagraph(e.m, text, font, w, maxRowHeight, e.spec.MaxFont, e.spec.MinFont, e.spec.LeadingMult)
}

// placeGroup flows one level-1 group. A group that no longer fits the
// current column moves whole to a fresh column or page; only a group taller
// than a full column is split, and then the level-1 row is repeated at the
// top of the continuation.
func (e *Engine) placeGroup(cu *cursor, g []hierarchy.FlatRow) {
	gh := e.groupHeight(e.geo, g)
	if cu.y+gh > e.bottom && !e.atColumnTop(cu) {
		e.advance(cu)
	}

	var lvl1 *hierarchy.FlatRow
	if g[0].Level == 1 {
		lvl1 = &g[0]
	}

	for i, r := range g {
		h := e.rowHeight(e.geo, r)
		if cu.y+h+e.interRowGap() > e.bottom && !e.atColumnTop(cu) {
			e.advance(cu)
			if lvl1 != nil && i > 0 {
				cu.y = e.drawRow(cu, *lvl1)
				cu.y += e.continuationGap()
				cu.rowsCut++
			}
		}
		cu.y = e.drawRow(cu, r)
		cu.y += e.interRowGap()
		cu.rowsCut++
	}
	cu.y += e.groupGap()
}

// atColumnTop reports whether nothing has been drawn in the current column
// yet; a row taller than the column is drawn there anyway (overflow
// accepted) instead of advancing forever.
func (e *Engine) atColumnTop(cu *cursor) bool {
	return cu.y <= cu.contentTop+0.5
}

// advance moves to the second column on the same page, or to a fresh page
// with a continuation header.
func (e *Engine) advance(cu *cursor) {
	if e.geo.twoCols && cu.col == 0 {
		cu.col = 1
		cu.x = e.geo.colX[1]
		e.enterColumn(cu)
		return
	}

	cu.page = e.newPage()
	cu.col = 0
	cu.x = e.geo.colX[0]
	cu.colTop = e.drawHeader(cu.page, true)
	e.enterColumn(cu)
}

// enterColumn seeds the cursor at the top of the current column, drawing
// the per-column table captions where the template carries them.
func (e *Engine) enterColumn(cu *cursor) {
	cu.y = cu.colTop
	cu.rowsCut = 0
	if e.drawsCaptions() {
		cu.y = e.drawCaptions(cu.page, cu.x, cu.y)
	}
	cu.contentTop = cu.y
}

func (e *Engine) drawsCaptions() bool {
	return !e.spec.UsesBulletsAndIndent
}

const captionHeight = 22.0

func (e *Engine) drawCaptions(p *Page, x, y float64) float64 {
	p.text(x, y+captionSize, "Code", e.spec.FontBold, captionSize)
	p.text(x+e.geo.codeW+cellGap, y+captionSize, "Name", e.spec.FontBold, captionSize)
	p.line(x, y+captionSize+3.5, x+e.geo.colW, y+captionSize+3.5, 0.6)
	return y + captionHeight
}

// drawHeader paints the page header: optional institutional chrome, the
// centered title, the cabinet section line, the section title (with a
// continuation marker on later pages), and the horizontal rule. Returns the
// y where content starts.
func (e *Engine) drawHeader(p *Page, cont bool) float64 {
	y := e.opts.Margin

	if e.spec.InstitutionalChrome {
		e.drawChrome(p)
	}

	titleSize := 14.0
	if cont {
		titleSize = 12
	}
	if cont {
		p.text(e.x0, y+titleSize, e.opts.Title, e.spec.FontBold, titleSize)
	} else {
		e.textCentered(p, y+titleSize, e.opts.Title, e.spec.FontBold, titleSize)
	}
	y += titleSize + 10

	if e.opts.CabinetSection != "" {
		metaSize := 10.0
		if cont {
			metaSize = 9.5
			p.text(e.x0, y+metaSize, e.opts.CabinetSection, e.spec.FontRegular, metaSize)
		} else {
			e.textCentered(p, y+metaSize, e.opts.CabinetSection, e.spec.FontRegular, metaSize)
		}
		y += metaSize + 8
	}

	if st := e.opts.SectionTitle; st != "" {
		if cont {
			st += " (cont.)"
		}
		sectionSize := 11.0
		p.text(e.x0, y+sectionSize, st, e.spec.FontBold, sectionSize)
		y += sectionSize + 3
	}

	p.line(e.x0, y, e.x1, y, 0.8)
	return y + e.opts.HeaderGap
}

// drawChrome paints the institutional strapline and footer marks.
func (e *Engine) drawChrome(p *Page) {
	const chromeSize = 9.0
	if s := textfit.EllipsisFit(e.m, e.opts.Strapline, e.spec.FontRegular, chromeSize, e.contentW*0.6); s != "" {
		p.text(e.x0, e.opts.Margin-4, s, e.spec.FontRegular, chromeSize)
	}
	p.text(e.x0, e.opts.PageHeight-e.opts.Margin+12, generatedBy, e.spec.FontRegular, chromeSize)

	pn := fmt.Sprintf("Page %d", p.Number)
	w := e.m.TextWidth(pn, e.spec.FontRegular, chromeSize)
	p.text(e.x1-w, e.opts.PageHeight-e.opts.Margin+12, pn, e.spec.FontRegular, chromeSize)
}

// generatedBy is the footer mark for institutional chrome.
const generatedBy = "Generated by labelkit"

// drawCabinetBlock paints the rounded cabinet-section block used by the
// boxed template on the first page.
func (e *Engine) drawCabinetBlock(p *Page, y float64) float64 {
	const blockH = 46.0
	p.rect(e.x0, y, e.contentW, blockH, 0.9, 6)
	p.text(e.x0+10, y+16, "Cabinet Section", e.spec.FontBold, 11)

	cab := e.opts.CabinetSection
	if cab == "" {
		cab = "-"
	}
	p.text(e.x0+10, y+32, cab, e.spec.FontRegular, 10)
	return y + blockH + 14
}

func (e *Engine) textCentered(p *Page, y float64, s string, f textfit.Font, size float64) {
	w := e.m.TextWidth(s, f, size)
	p.text((e.opts.PageWidth-w)/2, y, s, f, size)
}
