package model

import (
	"fmt"
	"math"
)

// Length is a distance in English Metric Units (EMU).
// 914400 EMU = 1 inch, 36000 EMU = 1 mm, 12700 EMU = 1 point.
type Length int64

const (
	emuPerInch  = 914400
	emuPerMm    = 36000
	emuPerPoint = 12700
	emuPerTwip  = 635 // 1 twip = 1/20 point
)

// Mm returns a Length of the given number of millimetres.
func Mm(mm float64) Length {
	return Length(math.Round(mm * emuPerMm))
}

// Pt returns a Length of the given number of points.
func Pt(pt float64) Length {
	return Length(math.Round(pt * emuPerPoint))
}

// Inches returns a Length of the given number of inches.
func Inches(in float64) Length {
	return Length(math.Round(in * emuPerInch))
}

// Twips returns a Length of the given number of twips (twentieths of a point).
func Twips(tw int) Length {
	return Length(int64(tw) * emuPerTwip)
}

// Mm returns the length in millimetres.
func (l Length) Mm() float64 {
	return float64(l) / emuPerMm
}

// Pt returns the length in points.
func (l Length) Pt() float64 {
	return float64(l) / emuPerPoint
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / emuPerInch
}

// Twips returns the length rounded to the nearest twip.
// WordprocessingML stores page geometry and spacing in twips.
func (l Length) Twips() int {
	return int(math.Round(float64(l) / emuPerTwip))
}

// HalfPoints returns the length rounded to the nearest half-point.
// WordprocessingML stores font sizes in half-points (24 = 12pt).
func (l Length) HalfPoints() int {
	return int(math.Round(float64(l) * 2 / emuPerPoint))
}

// String formats the length in millimetres.
func (l Length) String() string {
	return fmt.Sprintf("%.2fmm", l.Mm())
}

// Margins holds the four page margins of a section.
type Margins struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// UniformMargins returns margins with the same value on all four sides.
func UniformMargins(l Length) Margins {
	return Margins{Top: l, Right: l, Bottom: l, Left: l}
}

// PageSize is the physical size of a page.
type PageSize struct {
	Width  Length
	Height Length
}

// Common page sizes.
var (
	PageA4     = PageSize{Width: Mm(210), Height: Mm(297)}
	PageLetter = PageSize{Width: Inches(8.5), Height: Inches(11)}
)

// Landscape reports whether the page is wider than it is tall.
func (p PageSize) Landscape() bool {
	return p.Width > p.Height
}
