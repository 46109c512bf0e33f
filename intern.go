// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import "strconv"

// Custom number formats start past the range reserved for built-ins.
const firstCustomNumFmt = 164

// internFonts deduplicates font sub-records into a compact index
// space, first-seen order. The first format carrying a given font is
// its defining occurrence.
func internFonts(formats []*Format) int {
	indices := make(map[string]int)
	for _, f := range formats {
		key := f.fontKey()
		if idx, ok := indices[key]; ok {
			f.fontIndex = idx
			f.hasFont = false
			continue
		}
		idx := len(indices)
		indices[key] = idx
		f.fontIndex = idx
		f.hasFont = true
	}
	return len(indices)
}

// internNumFormats assigns number format ids. A purely numeric format
// string is a direct built-in id and bypasses interning; custom
// strings are deduplicated with ids from 164 up.
func internNumFormats(formats []*Format) {
	indices := make(map[string]int)
	next := firstCustomNumFmt
	for _, f := range formats {
		nf := f.NumFormat
		if nf == "" {
			f.numFmtIndex = 0
			f.hasNumFmt = false
			continue
		}
		if isBuiltInNumFormat(nf) {
			n, _ := strconv.Atoi(nf)
			f.numFmtIndex = n
			f.hasNumFmt = false
			continue
		}
		if idx, ok := indices[nf]; ok {
			f.numFmtIndex = idx
			f.hasNumFmt = false
			continue
		}
		indices[nf] = next
		f.numFmtIndex = next
		f.hasNumFmt = true
		next++
	}
}

// internBorders deduplicates border sub-records.
func internBorders(formats []*Format) int {
	indices := make(map[string]int)
	for _, f := range formats {
		key := f.borderKey()
		if idx, ok := indices[key]; ok {
			f.borderIndex = idx
			f.hasBorder = false
			continue
		}
		idx := len(indices)
		indices[key] = idx
		f.borderIndex = idx
		f.hasBorder = true
	}
	return len(indices)
}

// internFills normalizes each fill first, then deduplicates. The two
// built-in fills (none, gray125) hold indices 0 and 1 before any user
// fill is considered.
func internFills(formats []*Format) int {
	indices := map[string]int{
		(&Format{Pattern: PatternNone}).fillKey():    0,
		(&Format{Pattern: PatternGray125}).fillKey(): 1,
	}
	count := 2
	for _, f := range formats {
		f.normalizeFill()
		key := f.fillKey()
		if idx, ok := indices[key]; ok {
			f.fillIndex = idx
			f.hasFill = false
			continue
		}
		indices[key] = count
		f.fillIndex = count
		f.hasFill = true
		count++
	}
	return count
}

// internStyles runs the four dedup passes over the full format
// sequence. If any worksheet declared cell comments, the comment
// annotation format is appended first so its font takes part in the
// dedup.
func (wb *Workbook) internStyles() {
	for _, sheet := range wb.sheets {
		if len(sheet.comments) > 0 {
			wb.addFormatRecord(commentFormat())
			break
		}
	}
	fonts := internFonts(wb.formats)
	internNumFormats(wb.formats)
	borders := internBorders(wb.formats)
	fills := internFills(wb.formats)
	wb.log.Debug("interned styles",
		"formats", len(wb.formats), "fonts", fonts, "borders", borders, "fills", fills)
}
