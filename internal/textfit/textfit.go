// Package textfit wraps, shrinks, and truncates text against a width and
// height budget. All functions are pure over an injected Measurer so the
// layout engine can be exercised without a PDF backend.
package textfit

import "strings"

// Font identifies a typeface for measurement and drawing. Family is a core
// PDF family name ("Helvetica", "Times", "Courier"); Style is the fpdf style
// string ("", "B", "I", "BI").
type Font struct {
	Family string
	Style  string
}

// Bold returns the bold variant of the font.
func (f Font) Bold() Font {
	if strings.Contains(f.Style, "B") {
		return f
	}
	return Font{Family: f.Family, Style: "B" + f.Style}
}

// Measurer is the font-metrics oracle: rendered width of s in the given
// font at the given size, in points.
type Measurer interface {
	TextWidth(s string, font Font, size float64) float64
}

// FitStep is the size decrement used by FitParagraph.
const FitStep = 0.5

// Wrap greedily word-wraps text so that no returned line measures wider
// than maxWidth. A single word wider than maxWidth is hard-split rune by
// rune rather than dropped, so a lone over-wide rune becomes its own line.
// Empty or all-space input yields exactly one empty line, never an empty
// slice, so callers can always derive a positive height.
func Wrap(m Measurer, text string, font Font, size, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	for _, w := range words {
		test := w
		if cur != "" {
			test = cur + " " + w
		}
		if m.TextWidth(test, font, size) <= maxWidth {
			cur = test
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		if m.TextWidth(w, font, size) > maxWidth {
			cur = splitLongWord(m, w, font, size, maxWidth, &lines)
		} else {
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// splitLongWord chops an over-wide word rune by rune, appending every full
// chunk to lines and returning the trailing partial chunk.
func splitLongWord(m Measurer, word string, font Font, size, maxWidth float64, lines *[]string) string {
	chunk := ""
	for _, r := range word {
		test := chunk + string(r)
		if m.TextWidth(test, font, size) <= maxWidth {
			chunk = test
			continue
		}
		if chunk != "" {
			*lines = append(*lines, chunk)
		}
		chunk = string(r)
	}
	return chunk
}

// FitParagraph wraps text at decreasing font sizes until the wrapped block
// fits maxHeight, stepping down from maxSize in FitStep decrements. It never
// fails: at minSize the result is returned even if it still overflows, and
// the caller accepts the overflow. Returns the chosen size, the wrapped
// lines, and the leading (size times leadingMult).
func FitParagraph(m Measurer, text string, font Font, maxWidth, maxHeight, maxSize, minSize, leadingMult float64) (float64, []string, float64) {
	t := strings.TrimSpace(text)
	if t == "" {
		return maxSize, []string{""}, maxSize * leadingMult
	}

	for size := maxSize; size >= minSize; size -= FitStep {
		lines := Wrap(m, t, font, size, maxWidth)
		leading := size * leadingMult
		if leading*float64(len(lines)) <= maxHeight {
			return size, lines, leading
		}
	}

	lines := Wrap(m, t, font, minSize, maxWidth)
	return minSize, lines, minSize * leadingMult
}

// Ellipsis is the truncation marker appended by EllipsisFit.
const Ellipsis = "…"

// EllipsisFit returns text unchanged when it already fits maxWidth.
// Otherwise it binary-searches for the longest rune prefix whose
// width together with the ellipsis stays within maxWidth. The result is
// empty only when even the ellipsis alone cannot fit.
func EllipsisFit(m Measurer, text string, font Font, size, maxWidth float64) string {
	if m.TextWidth(text, font, size) <= maxWidth {
		return text
	}
	if m.TextWidth(Ellipsis, font, size) > maxWidth {
		return ""
	}

	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.TextWidth(string(runes[:mid])+Ellipsis, font, size) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + Ellipsis
}
