// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"fmt"
	"strings"
)

// ChartKind selects a chart variant at creation time.
type ChartKind uint8

const (
	ChartBar ChartKind = iota + 1
	ChartColumn
	ChartLine
	ChartPie
	ChartArea
)

func (k ChartKind) String() string {
	switch k {
	case ChartBar:
		return "bar"
	case ChartColumn:
		return "column"
	case ChartLine:
		return "line"
	case ChartPie:
		return "pie"
	case ChartArea:
		return "area"
	}
	return "unknown"
}

// ChartSeries declares one data series by its range formulas. Values
// may carry user-supplied literal data, in which case the formula is
// never resolved against a worksheet.
type ChartSeries struct {
	Name       string // range formula or literal title
	Categories string
	Values     string
	ValuesData []float64
}

// Chart is one chart object. Variant behavior hangs off the kind tag;
// the only way to build one is the Workbook.AddChart dispatch.
type Chart struct {
	kind ChartKind
	id   int

	Title      string
	XAxisName  string
	YAxisName  string

	series  []ChartSeries
	palette []Color

	// Range formulas in registration order, the formula -> slot id
	// map, and the parallel cached-data slots filled during finalize.
	formulas    []string
	formulaIDs  map[string]int
	formulaData [][]seriesValue
}

func newChart(kind ChartKind) (*Chart, error) {
	switch kind {
	case ChartBar, ChartColumn, ChartLine, ChartPie, ChartArea:
	default:
		return nil, fmt.Errorf("unknown chart type %d", kind)
	}
	return &Chart{kind: kind, formulaIDs: make(map[string]int)}, nil
}

// Kind reports the variant tag the chart was created with.
func (c *Chart) Kind() ChartKind { return c.kind }

// AddSeries registers a series. Each distinct range formula gets one
// data slot, created empty and populated during finalize.
func (c *Chart) AddSeries(s ChartSeries) {
	for _, f := range []string{s.Name, s.Categories, s.Values} {
		c.registerFormula(f)
	}
	if len(s.ValuesData) > 0 && s.Values != "" {
		id := c.formulaIDs[s.Values]
		vals := make([]seriesValue, len(s.ValuesData))
		for i, n := range s.ValuesData {
			vals[i] = seriesValue{kind: valueNumber, num: n}
		}
		c.formulaData[id] = vals
	}
	c.series = append(c.series, s)
}

func (c *Chart) registerFormula(f string) {
	if f == "" || !strings.Contains(f, "!") {
		return
	}
	if _, ok := c.formulaIDs[f]; ok {
		return
	}
	c.formulaIDs[f] = len(c.formulas)
	c.formulas = append(c.formulas, f)
	c.formulaData = append(c.formulaData, nil)
}

// cachedData returns the resolved values for a range formula, or nil.
func (c *Chart) cachedData(formula string) []seriesValue {
	id, ok := c.formulaIDs[formula]
	if !ok {
		return nil
	}
	return c.formulaData[id]
}

// addChartData resolves every pending chart series range against the
// worksheets and caches the literal values. Identical formulas across
// charts share one resolution per finalize run. Unparsable formulas
// and unknown sheets skip the series; the behavior is deliberate, but
// it can mask configuration mistakes, so it is logged.
func (wb *Workbook) addChartData() {
	seen := make(map[string][]seriesValue)
	for _, chart := range wb.charts {
		for _, formula := range chart.formulas {
			id := chart.formulaIDs[formula]
			if chart.formulaData[id] != nil {
				continue
			}
			if data, ok := seen[formula]; ok {
				chart.formulaData[id] = data
				continue
			}
			data, ok := wb.resolveRange(formula)
			if !ok {
				continue
			}
			chart.formulaData[id] = data
			seen[formula] = data
		}
	}
}

// resolveRange resolves a "Sheet!$A$1:$A$5" range formula to literal
// values. Shared-string references are rewritten to their text; rich
// text is blanked, only plain text is cached.
func (wb *Workbook) resolveRange(formula string) ([]seriesValue, bool) {
	sheetPart, ok := splitRangeFormula(formula)
	if !ok {
		wb.log.Warn("chart series range has no sheet part", "formula", formula)
		return nil, false
	}
	cellPart := formula[len(sheetPart)+1:]
	sheetName := unquoteSheetName(sheetPart)

	first, last := cellPart, cellPart
	if i := strings.IndexByte(cellPart, ':'); i >= 0 {
		first, last = cellPart[:i], cellPart[i+1:]
	}
	row1, col1, err := cellToRowCol(first)
	if err != nil {
		wb.log.Warn("chart series range is unparsable", "formula", formula, "error", err)
		return nil, false
	}
	row2, col2, err := cellToRowCol(last)
	if err != nil {
		wb.log.Warn("chart series range is unparsable", "formula", formula, "error", err)
		return nil, false
	}
	if row1 != row2 && col1 != col2 {
		wb.log.Warn("chart series range spans both dimensions", "formula", formula)
		return nil, false
	}

	sheet := wb.sheetByName(sheetName)
	if sheet == nil {
		wb.log.Warn("chart series range names unknown sheet", "sheet", sheetName)
		return nil, false
	}

	values := sheet.valueRange(row1, col1, row2, col2)
	for i, v := range values {
		switch v.kind {
		case valueSSTRef:
			if s, ok := wb.sst.lookup(v.sst); ok && !wb.sst.rich[v.sst] {
				values[i] = seriesValue{kind: valueText, text: s}
			} else {
				values[i] = seriesValue{kind: valueEmpty}
			}
		}
	}
	return values, true
}
