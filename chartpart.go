// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"fmt"
	"strings"
)

// chartXML renders one chart part from the finalized chart state. All
// range formulas carry the data cached during finalize; series the
// cache skipped are emitted with their formula and an empty cache.
func chartXML(chart *Chart) cChartSpace {
	space := cChartSpace{
		XmlnsC: nsChart,
		XmlnsA: nsDrawing,
		XmlnsR: nsRelationships,
	}
	ch := &space.Chart
	if chart.Title != "" {
		ch.Title = chartTitle(chart.Title)
	}

	variant := &cTypeChart{}
	grouping := "clustered"
	switch chart.kind {
	case ChartBar:
		variant.BarDir = &cValAttrString{Val: "bar"}
		space.Chart.PlotArea.BarChart = variant
	case ChartColumn:
		variant.BarDir = &cValAttrString{Val: "col"}
		space.Chart.PlotArea.BarChart = variant
	case ChartLine:
		grouping = "standard"
		space.Chart.PlotArea.LineChart = variant
	case ChartPie:
		variant.VaryColors = &cValAttrInt{Val: 1}
		space.Chart.PlotArea.PieChart = variant
	case ChartArea:
		grouping = "standard"
		space.Chart.PlotArea.AreaChart = variant
	}
	if chart.kind != ChartPie {
		variant.Grouping = &cValAttrString{Val: grouping}
	}

	for i, s := range chart.series {
		ser := cSer{
			Idx:   cValAttrInt{Val: i},
			Order: cValAttrInt{Val: i},
			Tx:    seriesTitle(chart, s.Name),
			Cat:   chartDataRef(chart, s.Categories, false),
			Val:   chartDataRef(chart, s.Values, true),
		}
		if len(chart.palette) > 0 {
			clr := chart.palette[i%len(chart.palette)]
			ser.SpPr = &cSpPr{SolidFill: &aSolidFill{
				SrgbClr: aSrgbClr{Val: fmt.Sprintf("%06X", uint32(clr))},
			}}
		}
		variant.Ser = append(variant.Ser, ser)
	}

	if chart.kind != ChartPie {
		variant.AxID = []cValAttrInt{{Val: 1}, {Val: 2}}
		catPos, valPos := "b", "l"
		if chart.kind == ChartBar {
			catPos, valPos = "l", "b"
		}
		space.Chart.PlotArea.CatAx = &cCatAx{
			AxID:    cValAttrInt{Val: 1},
			Scaling: cScaling{Orientation: cValAttrString{Val: "minMax"}},
			AxPos:   cValAttrString{Val: catPos},
			Title:   axisTitle(chart.XAxisName),
			CrossAx: cValAttrInt{Val: 2},
		}
		space.Chart.PlotArea.ValAx = &cValAx{
			AxID:    cValAttrInt{Val: 2},
			Scaling: cScaling{Orientation: cValAttrString{Val: "minMax"}},
			AxPos:   cValAttrString{Val: valPos},
			Title:   axisTitle(chart.YAxisName),
			CrossAx: cValAttrInt{Val: 1},
		}
	}

	ch.Legend = &cLegend{Pos: cValAttrString{Val: "r"}}
	ch.PlotVisOnly = cValAttrInt{Val: 1}
	return space
}

func chartTitle(text string) *cTitle {
	return &cTitle{Tx: &cTitleTx{Rich: cRich{P: cRichP{R: cRichR{T: text}}}}}
}

func axisTitle(text string) *cTitle {
	if text == "" {
		return nil
	}
	return chartTitle(text)
}

// seriesTitle emits a series name: a range formula with its cached
// first value, or the literal text itself.
func seriesTitle(chart *Chart, name string) *cSerTx {
	if name == "" {
		return nil
	}
	if !strings.Contains(name, "!") {
		return &cSerTx{V: name}
	}
	ref := &cStrRef{F: name}
	if data := chart.cachedData(name); len(data) > 0 && data[0].kind == valueText {
		ref.Cache = &cStrCache{
			PtCount: cValAttrInt{Val: 1},
			Pt:      []cStrPt{{Idx: 0, V: data[0].text}},
		}
	}
	return &cSerTx{StrRef: ref}
}

// chartDataRef emits one cat or val reference. Cached text selects a
// string reference, otherwise the reference is numeric; values are
// always numeric.
func chartDataRef(chart *Chart, formula string, forceNum bool) *cDataRef {
	if formula == "" {
		return nil
	}
	data := chart.cachedData(formula)
	isText := false
	if !forceNum {
		for _, v := range data {
			if v.kind == valueText {
				isText = true
				break
			}
		}
	}
	if isText {
		cache := &cStrCache{PtCount: cValAttrInt{Val: len(data)}}
		for i, v := range data {
			if v.kind == valueText {
				cache.Pt = append(cache.Pt, cStrPt{Idx: i, V: v.text})
			}
		}
		return &cDataRef{StrRef: &cStrRef{F: formula, Cache: cache}}
	}
	cache := &cNumCache{
		FormatCode: "General",
		PtCount:    cValAttrInt{Val: len(data)},
	}
	for i, v := range data {
		if v.kind == valueNumber {
			cache.Pt = append(cache.Pt, cNumPt{Idx: i, V: formatNum(v.num)})
		}
	}
	return &cDataRef{NumRef: &cNumRef{F: formula, Cache: cache}}
}
