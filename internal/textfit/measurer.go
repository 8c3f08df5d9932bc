package textfit

import "unicode/utf8"

// RuneMeasurer is a deterministic metrics oracle that charges a fixed
// fraction of the font size per rune. It stands in for real font metrics in
// tests and anywhere the engine runs without a PDF backend.
type RuneMeasurer struct {
	// Factor is the per-rune width as a fraction of the font size.
	// Zero means the conventional 0.5 used for core Latin fonts.
	Factor float64
}

func (rm RuneMeasurer) TextWidth(s string, _ Font, size float64) float64 {
	f := rm.Factor
	if f == 0 {
		f = 0.5
	}
	return float64(utf8.RuneCountInString(s)) * f * size
}
