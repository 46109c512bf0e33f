// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"fmt"
	"sort"
	"strings"
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellNumber
	cellString // shared string reference
	cellRich   // rich text shared string reference
	cellBool
	cellFormula
)

type cell struct {
	kind    cellKind
	num     float64
	sst     int
	formula string
	format  *Format
}

type valueKind uint8

const (
	valueEmpty valueKind = iota
	valueNumber
	valueText
	valueSSTRef
)

// seriesValue is one literal value handed to chart series resolution:
// a number, plain text, a shared-string reference marker, or empty.
type seriesValue struct {
	kind valueKind
	num  float64
	text string
	sst  int
}

// RichRun is one run of a rich text string.
type RichRun struct {
	Format *Format
	Text   string
}

type comment struct {
	row, col int
	text     string
	author   string
}

type chartPlacement struct {
	chart    *Chart
	row, col int
}

type imagePlacement struct {
	path     string
	row, col int
	ref      *imageRef // resolved during finalize
}

// Worksheet is one sheet of the workbook. Sheets are created through
// Workbook.AddWorksheet and reach shared workbook state through a
// non-owning handle, never through the workbook itself.
type Worksheet struct {
	name   string
	index  int
	shared *sheetShared

	hidden   bool
	selected bool

	rows             map[int]map[int]cell
	minRow, maxRow   int
	minCol, maxCol   int
	dimensionTracked bool

	autofilter string
	printArea  string
	repeatRows string
	repeatCols string

	comments []comment
	charts   []chartPlacement
	images   []imagePlacement

	// Drawing and VML ids assigned by the finalize passes.
	drawingID  int
	commentID  int
	vmlDataID  int
	vmlShapeID int
}

// Name returns the sheet's declared name.
func (ws *Worksheet) Name() string { return ws.name }

// Hide marks the sheet hidden.
func (ws *Worksheet) Hide() { ws.hidden = true }

// Select marks the sheet tab selected.
func (ws *Worksheet) Select() { ws.selected = true }

// Activate makes this the sheet shown when the document opens.
func (ws *Worksheet) Activate() {
	ws.selected = true
	ws.shared.activeSheet = ws.index
}

// SetFirstSheet sets this sheet as the leftmost visible tab.
func (ws *Worksheet) SetFirstSheet() { ws.shared.firstSheet = ws.index }

func (ws *Worksheet) checkDimensions(row, col int) error {
	if row < 0 || row >= MaxRows || col < 0 || col >= MaxCols {
		return fmt.Errorf("cell (%d,%d) out of range", row, col)
	}
	if !ws.dimensionTracked {
		ws.minRow, ws.maxRow, ws.minCol, ws.maxCol = row, row, col, col
		ws.dimensionTracked = true
	} else {
		if row < ws.minRow {
			ws.minRow = row
		}
		if row > ws.maxRow {
			ws.maxRow = row
		}
		if col < ws.minCol {
			ws.minCol = col
		}
		if col > ws.maxCol {
			ws.maxCol = col
		}
	}
	return nil
}

func (ws *Worksheet) setCell(row, col int, c cell) error {
	if err := ws.checkDimensions(row, col); err != nil {
		return err
	}
	r, ok := ws.rows[row]
	if !ok {
		r = make(map[int]cell)
		ws.rows[row] = r
	}
	r[col] = c
	return nil
}

// WriteNumber writes a numeric cell.
func (ws *Worksheet) WriteNumber(row, col int, value float64, format *Format) error {
	return ws.setCell(row, col, cell{kind: cellNumber, num: value, format: format})
}

// WriteString writes a text cell through the shared string table.
func (ws *Worksheet) WriteString(row, col int, value string, format *Format) error {
	id := ws.shared.sst.add(value)
	return ws.setCell(row, col, cell{kind: cellString, sst: id, format: format})
}

// WriteRichString writes a multi-run rich text cell. Rich strings live
// in the shared string table like plain ones but are never fed to chart
// data caches.
func (ws *Worksheet) WriteRichString(row, col int, runs []RichRun, format *Format) error {
	if len(runs) == 0 {
		return fmt.Errorf("rich string at %s has no runs", cellRef(row, col))
	}
	id := ws.shared.sst.addRich(richFragment(runs))
	return ws.setCell(row, col, cell{kind: cellRich, sst: id, format: format})
}

// WriteBool writes a boolean cell.
func (ws *Worksheet) WriteBool(row, col int, value bool, format *Format) error {
	var n float64
	if value {
		n = 1
	}
	return ws.setCell(row, col, cell{kind: cellBool, num: n, format: format})
}

// WriteFormula writes a formula cell with an optional cached result.
func (ws *Worksheet) WriteFormula(row, col int, formula string, result float64, format *Format) error {
	return ws.setCell(row, col, cell{kind: cellFormula, formula: formula, num: result, format: format})
}

// WriteBlank writes a blank but formatted cell.
func (ws *Worksheet) WriteBlank(row, col int, format *Format) error {
	return ws.setCell(row, col, cell{kind: cellBlank, format: format})
}

// WriteComment attaches a comment annotation to a cell.
func (ws *Worksheet) WriteComment(row, col int, text string) error {
	if err := ws.checkDimensions(row, col); err != nil {
		return err
	}
	ws.comments = append(ws.comments, comment{row: row, col: col, text: text})
	return nil
}

// AutoFilter marks a filter region; it also produces a hidden
// _FilterDatabase defined name at finalize.
func (ws *Worksheet) AutoFilter(firstRow, firstCol, lastRow, lastCol int) {
	ws.autofilter = absRangeRef(firstRow, firstCol, lastRow, lastCol)
}

// PrintArea restricts printing to the given region.
func (ws *Worksheet) PrintArea(firstRow, firstCol, lastRow, lastCol int) {
	ws.printArea = absRangeRef(firstRow, firstCol, lastRow, lastCol)
}

// RepeatRows repeats the given row span on every printed page.
func (ws *Worksheet) RepeatRows(firstRow, lastRow int) {
	ws.repeatRows = fmt.Sprintf("$%d:$%d", firstRow+1, lastRow+1)
}

// RepeatColumns repeats the given column span on every printed page.
func (ws *Worksheet) RepeatColumns(firstCol, lastCol int) {
	ws.repeatCols = fmt.Sprintf("$%s:$%s", colName(firstCol), colName(lastCol))
}

// printTitles renders the Print_Titles formula: repeat columns and
// rows combine into one comma-joined range when both are set.
func (ws *Worksheet) printTitles() string {
	ref := quoteSheetName(ws.name)
	switch {
	case ws.repeatRows != "" && ws.repeatCols != "":
		return ref + "!" + ws.repeatCols + "," + ref + "!" + ws.repeatRows
	case ws.repeatRows != "":
		return ref + "!" + ws.repeatRows
	case ws.repeatCols != "":
		return ref + "!" + ws.repeatCols
	}
	return ""
}

// InsertChart places a chart on the sheet at the given cell anchor.
func (ws *Worksheet) InsertChart(row, col int, chart *Chart) error {
	if chart == nil {
		return fmt.Errorf("nil chart at %s", cellRef(row, col))
	}
	ws.charts = append(ws.charts, chartPlacement{chart: chart, row: row, col: col})
	return nil
}

// InsertImage places an image file on the sheet at the given cell
// anchor. The file is read and validated during finalize.
func (ws *Worksheet) InsertImage(row, col int, path string) error {
	if path == "" {
		return fmt.Errorf("empty image path at %s", cellRef(row, col))
	}
	ws.images = append(ws.images, imagePlacement{path: path, row: row, col: col})
	return nil
}

// valueRange returns the literal values of a pure row or column vector,
// with shared-string cells as reference markers. Missing cells come
// back empty.
func (ws *Worksheet) valueRange(firstRow, firstCol, lastRow, lastCol int) []seriesValue {
	var values []seriesValue
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			c, ok := ws.rows[row][col]
			if !ok {
				values = append(values, seriesValue{kind: valueEmpty})
				continue
			}
			switch c.kind {
			case cellNumber, cellBool, cellFormula:
				values = append(values, seriesValue{kind: valueNumber, num: c.num})
			case cellString, cellRich:
				values = append(values, seriesValue{kind: valueSSTRef, sst: c.sst})
			default:
				values = append(values, seriesValue{kind: valueEmpty})
			}
		}
	}
	return values
}

// prepareComments records the sheet's VML data/shape id block and
// returns how many comments the sheet will emit. Shape id blocks
// advance in increments of 1024 per 1024 comments.
func (ws *Worksheet) prepareComments(vmlDataID, vmlShapeID, commentID int) int {
	ws.vmlDataID = vmlDataID
	ws.vmlShapeID = vmlShapeID
	ws.commentID = commentID
	sort.SliceStable(ws.comments, func(i, j int) bool {
		if ws.comments[i].row != ws.comments[j].row {
			return ws.comments[i].row < ws.comments[j].row
		}
		return ws.comments[i].col < ws.comments[j].col
	})
	return len(ws.comments)
}

// sortedRowNums returns the populated row numbers in ascending order.
func (ws *Worksheet) sortedRowNums() []int {
	nums := make([]int, 0, len(ws.rows))
	for r := range ws.rows {
		nums = append(nums, r)
	}
	sort.Ints(nums)
	return nums
}

// sortedColNums returns the populated columns of one row in order.
func sortedColNums(row map[int]cell) []int {
	nums := make([]int, 0, len(row))
	for c := range row {
		nums = append(nums, c)
	}
	sort.Ints(nums)
	return nums
}

// hasDrawing reports whether the sheet carries charts or images.
func (ws *Worksheet) hasDrawing() bool {
	return len(ws.charts) > 0 || len(ws.images) > 0
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
)

// richFragment renders rich text runs as the si-element body stored in
// the shared string table.
func richFragment(runs []RichRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString("<r>")
		if f := run.Format; f != nil {
			b.WriteString("<rPr>")
			if f.Bold {
				b.WriteString("<b/>")
			}
			if f.Italic {
				b.WriteString("<i/>")
			}
			if f.FontSize > 0 {
				fmt.Fprintf(&b, `<sz val="%v"/>`, f.FontSize)
			}
			if f.FontColor != 0 {
				fmt.Fprintf(&b, `<color rgb="%s"/>`, f.FontColor.argb())
			}
			if f.FontName != "" {
				fmt.Fprintf(&b, `<rFont val="%s"/>`, xmlEscaper.Replace(f.FontName))
			}
			b.WriteString("</rPr>")
		}
		fmt.Fprintf(&b, `<t xml:space="preserve">%s</t>`, xmlEscaper.Replace(run.Text))
		b.WriteString("</r>")
	}
	return b.String()
}
