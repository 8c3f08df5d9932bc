// Package units provides point-based page geometry helpers.
//
// All layout math in this module runs in PDF points (1/72 inch). Callers
// configure page sizes and margins in whatever unit their UI exposes and
// convert once at the boundary.
package units

import "strings"

// Conversion constants to points.
const (
	PointsPerInch = 72.0
	CmPerInch     = 2.54
)

// CmToPt converts centimeters to points.
func CmToPt(cm float64) float64 {
	return cm * PointsPerInch / CmPerInch
}

// MmToPt converts millimeters to points.
func MmToPt(mm float64) float64 {
	return mm * PointsPerInch / (CmPerInch * 10)
}

// InToPt converts inches to points.
func InToPt(in float64) float64 {
	return in * PointsPerInch
}

// PageSize is a page preset in points.
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch).
var (
	PageSizeA3     = PageSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeA5     = PageSize{Width: 419.53, Height: 595.28, Name: "A5"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
)

// Lookup resolves a page-size preset by name, case-insensitively matching
// the preset's Name field. The second return is false for unknown names.
func Lookup(name string) (PageSize, bool) {
	for _, ps := range []PageSize{PageSizeA3, PageSizeA4, PageSizeA5, PageSizeLetter, PageSizeLegal} {
		if strings.EqualFold(ps.Name, name) {
			return ps, true
		}
	}
	return PageSize{}, false
}
