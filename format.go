// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"fmt"
)

// Color is an RGB value (0xRRGGBB). The zero value means "not set".
type Color uint32

func (c Color) argb() string { return fmt.Sprintf("FF%06X", uint32(c)) }

// Border line styles, in the order the styles part indexes them.
const (
	BorderNone = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
)

// Fill patterns. Only None and Solid matter for normalization; the rest
// map straight through to the pattern table.
const (
	PatternNone = iota
	PatternSolid
	PatternMediumGray
	PatternDarkGray
	PatternLightGray
	PatternGray125 = 17
)

// Format is a cell format: a bundle of font, fill, border, number format
// and alignment attributes. Formats are created through
// Workbook.AddFormat and keep their creation order as the cell xf index.
// The per-category indices are assigned once, during finalize.
type Format struct {
	xfIndex int

	// Font.
	FontName   string
	FontSize   float64
	FontColor  Color
	Bold       bool
	Italic     bool
	Underline  bool
	StrikeOut  bool
	FontFamily int

	// Number format string, or a decimal string naming a built-in id.
	NumFormat string

	// Borders: line style per edge plus edge colors.
	BorderTop, BorderBottom, BorderLeft, BorderRight                     int
	BorderTopColor, BorderBottomColor, BorderLeftColor, BorderRightColor Color

	// Fill.
	Pattern int
	FgColor Color
	BgColor Color

	// Alignment.
	HAlign   string
	VAlign   string
	TextWrap bool

	fontIndex   int
	borderIndex int
	fillIndex   int
	numFmtIndex int

	hasFont   bool
	hasBorder bool
	hasFill   bool
	hasNumFmt bool
}

// XfIndex is the format's cell xf index: its creation order in the
// workbook. This is the id worksheet cells reference.
func (f *Format) XfIndex() int { return f.xfIndex }

// FontIndex reports the interned font index. Valid after finalize.
func (f *Format) FontIndex() int { return f.fontIndex }

// BorderIndex reports the interned border index. Valid after finalize.
func (f *Format) BorderIndex() int { return f.borderIndex }

// FillIndex reports the interned fill index. Valid after finalize.
func (f *Format) FillIndex() int { return f.fillIndex }

// NumFmtIndex reports the number format id. Valid after finalize.
func (f *Format) NumFmtIndex() int { return f.numFmtIndex }

// fontKey is the canonical identity of the font sub-record.
func (f *Format) fontKey() string {
	return fmt.Sprintf("%s\x00%v\x00%06X\x00%t\x00%t\x00%t\x00%t\x00%d",
		f.FontName, f.FontSize, uint32(f.FontColor),
		f.Bold, f.Italic, f.Underline, f.StrikeOut, f.FontFamily)
}

// borderKey is the canonical identity of the border sub-record.
func (f *Format) borderKey() string {
	return fmt.Sprintf("%d\x00%d\x00%d\x00%d\x00%06X\x00%06X\x00%06X\x00%06X",
		f.BorderTop, f.BorderBottom, f.BorderLeft, f.BorderRight,
		uint32(f.BorderTopColor), uint32(f.BorderBottomColor),
		uint32(f.BorderLeftColor), uint32(f.BorderRightColor))
}

// fillKey is the canonical identity of the fill sub-record. Call only
// after normalizeFill.
func (f *Format) fillKey() string {
	return fmt.Sprintf("%d\x00%06X\x00%06X",
		f.Pattern, uint32(f.FgColor), uint32(f.BgColor))
}

// normalizeFill rewrites solid/none fills to the foreground/background
// convention of the styles part: a lone background color becomes the
// foreground of a solid fill, a lone foreground color forces solid.
func (f *Format) normalizeFill() {
	if f.Pattern > PatternSolid {
		return
	}
	if f.BgColor != 0 && f.FgColor == 0 {
		f.FgColor = f.BgColor
		f.BgColor = 0
		f.Pattern = PatternSolid
		return
	}
	if f.BgColor == 0 && f.FgColor != 0 {
		f.Pattern = PatternSolid
	}
}

// isBuiltInNumFormat reports whether s names one of the reserved
// built-in number format ids: all digits, and not a format string that
// merely looks numeric ("00" and friends are real format strings).
func isBuiltInNumFormat(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	// "0" followed by more digits is a format string, not an id.
	return !(s[0] == '0' && len(s) > 1)
}

func defaultFormat() *Format {
	return &Format{
		FontName:   "Calibri",
		FontSize:   11,
		FontFamily: 2,
	}
}

// commentFormat is the font used for cell comment annotation text.
func commentFormat() *Format {
	return &Format{
		FontName:   "Tahoma",
		FontSize:   8,
		FontFamily: 2,
	}
}
