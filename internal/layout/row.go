package layout

import (
	"github.com/labelkit/labelkit/internal/hierarchy"
	"github.com/labelkit/labelkit/internal/textfit"
)

// drawRow paints one row at the cursor position and returns the y just
// below it. The row's height is exactly what rowHeight reported for it, so
// placement decisions and drawing can never disagree.
func (e *Engine) drawRow(cu *cursor, r hierarchy.FlatRow) float64 {
	geo := e.geo
	h := e.rowHeight(geo, r)
	indent := e.rowIndent(r.Level)

	if e.spec.UsesBulletsAndIndent {
		// Bullet sits at the indent origin, text shifts past it.
		bx := cu.x + indent - bulletPad
		cu.page.text(bx, cu.y+10, "•", e.spec.FontRegular, 9.5)
	}

	codeX := cu.x + indent
	nameX := codeX + geo.codeW + cellGap
	codeW, nameW := e.cellWidths(geo, r.Level)

	e.drawWrapped(cu.page, codeX, cu.y, codeW, h, r.Code, e.codeFont(r.Level))
	e.drawWrapped(cu.page, nameX, cu.y, nameW, h, r.Name, e.spec.FontRegular)

	if e.drawsCaptions() && !e.spec.BoxedFrame {
		// Thin cell divider between code and name.
		cu.page.line(nameX-cellGap/2, cu.y+2, nameX-cellGap/2, cu.y+h-2, 0.3)
	}

	yNext := cu.y + h

	if n := e.spec.RuleInterval; n > 0 && (cu.rowsCut+1)%n == 0 {
		cu.page.line(cu.x, yNext+1.5, cu.x+geo.colW, yNext+1.5, e.ruleWidth())
	}

	if e.spec.BoxedFrame {
		cu.page.rect(cu.x, cu.y, geo.colW, h, 0.6, 2)
	}

	return yNext
}

func (e *Engine) ruleWidth() float64 {
	if e.spec.DenseSpacing {
		return 0.35
	}
	return 0.4
}

// drawWrapped fits text into the cell and emits one TextOp per wrapped
// line. Fitting degrades to the minimum font size with visible overflow
// rather than failing; clipping to the cell is the wrap's job.
func (e *Engine) drawWrapped(p *Page, x, yTop, w, h float64, text string, font textfit.Font) {
	size, lines, leading := textfit.FitParagraph(e.m, text, font, w, h, e.spec.MaxFont, e.spec.MinFont, e.spec.LeadingMult)
	y := yTop + size
	for _, ln := range lines {
		if ln == "" {
			y += leading
			continue
		}
		p.text(x, y, ln, font, size)
		y += leading
	}
}
