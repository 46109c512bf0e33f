// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import "testing"

func TestIsBuiltInNumFormat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"14", true},
		{"164", true},
		{"00", false},
		{"0.00", false},
		{"#,##0", false},
		{"yyyy-mm-dd", false},
	}
	for _, tc := range cases {
		if got := isBuiltInNumFormat(tc.in); got != tc.want {
			t.Errorf("isBuiltInNumFormat(%q) = %t, want %t", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeFill(t *testing.T) {
	f := &Format{BgColor: 0xFF0000}
	f.normalizeFill()
	if f.Pattern != PatternSolid || f.FgColor != 0xFF0000 || f.BgColor != 0 {
		t.Errorf("bg-only fill = %+v, want solid fg=FF0000 bg=0", f)
	}

	f = &Format{FgColor: 0x00FF00}
	f.normalizeFill()
	if f.Pattern != PatternSolid || f.FgColor != 0x00FF00 {
		t.Errorf("fg-only fill = %+v, want solid", f)
	}

	f = &Format{Pattern: PatternGray125, BgColor: 0x0000FF}
	f.normalizeFill()
	if f.Pattern != PatternGray125 || f.BgColor != 0x0000FF {
		t.Errorf("patterned fill must not be rewritten, got %+v", f)
	}
}

func TestInternFonts(t *testing.T) {
	wb := New()
	a := wb.AddFormat()
	a.Bold = true
	b := wb.AddFormat()
	b.Bold = true
	c := wb.AddFormat()
	c.FontSize = 14

	count := internFonts(wb.formats)
	if count != 3 { // default, bold, size-14
		t.Fatalf("font count = %d, want 3", count)
	}
	if a.fontIndex != b.fontIndex {
		t.Errorf("identical fonts got distinct indices %d and %d", a.fontIndex, b.fontIndex)
	}
	if !a.hasFont || b.hasFont {
		t.Errorf("defining occurrence flags wrong: a=%t b=%t", a.hasFont, b.hasFont)
	}
	if c.fontIndex == a.fontIndex {
		t.Errorf("distinct fonts share index %d", c.fontIndex)
	}
}

func TestInternNumFormats(t *testing.T) {
	wb := New()
	a := wb.AddFormat()
	a.NumFormat = "#,##0.00"
	b := wb.AddFormat()
	b.NumFormat = "#,##0.00"
	c := wb.AddFormat()
	c.NumFormat = "14"
	d := wb.AddFormat()
	d.NumFormat = "yyyy"

	internNumFormats(wb.formats)
	if a.numFmtIndex != firstCustomNumFmt {
		t.Errorf("first custom id = %d, want %d", a.numFmtIndex, firstCustomNumFmt)
	}
	if b.numFmtIndex != a.numFmtIndex || b.hasNumFmt {
		t.Errorf("duplicate custom format: index=%d has=%t", b.numFmtIndex, b.hasNumFmt)
	}
	if c.numFmtIndex != 14 || c.hasNumFmt {
		t.Errorf("built-in id: index=%d has=%t, want 14/false", c.numFmtIndex, c.hasNumFmt)
	}
	if d.numFmtIndex != firstCustomNumFmt+1 {
		t.Errorf("second custom id = %d, want %d", d.numFmtIndex, firstCustomNumFmt+1)
	}
}

func TestInternFills(t *testing.T) {
	wb := New()
	a := wb.AddFormat()
	a.BgColor = 0xFFFF00
	b := wb.AddFormat()
	b.FgColor = 0xFFFF00 // normalizes to the same solid fill

	count := internFills(wb.formats)
	if count != 3 { // none, gray125, yellow solid
		t.Fatalf("fill count = %d, want 3", count)
	}
	if a.fillIndex != 2 || b.fillIndex != 2 {
		t.Errorf("fill indices = %d, %d, want 2, 2", a.fillIndex, b.fillIndex)
	}
	if !a.hasFill || b.hasFill {
		t.Errorf("defining occurrence flags wrong: a=%t b=%t", a.hasFill, b.hasFill)
	}
}

func TestInternStylesAddsCommentFont(t *testing.T) {
	wb := New()
	ws, err := wb.AddWorksheet("")
	if err != nil {
		t.Fatal(err)
	}
	if err = ws.WriteComment(0, 0, "note"); err != nil {
		t.Fatal(err)
	}
	before := len(wb.formats)
	wb.internStyles()
	if len(wb.formats) != before+1 {
		t.Fatalf("formats = %d, want %d", len(wb.formats), before+1)
	}
	last := wb.formats[len(wb.formats)-1]
	if last.FontName != "Tahoma" || last.FontSize != 8 {
		t.Errorf("comment format = %s/%v, want Tahoma/8", last.FontName, last.FontSize)
	}
	if !last.hasFont {
		t.Error("comment font should define a new font record")
	}
}

func TestInternStylesNoComments(t *testing.T) {
	wb := New()
	if _, err := wb.AddWorksheet(""); err != nil {
		t.Fatal(err)
	}
	before := len(wb.formats)
	wb.internStyles()
	if len(wb.formats) != before {
		t.Errorf("formats = %d, want unchanged %d", len(wb.formats), before)
	}
}
