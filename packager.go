// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// partWriter is the default archive packager: it writes the finished
// document as the fixed constellation of OOXML parts under a working
// directory. It reads finalized indices only; no pass logic runs here.
type partWriter struct {
	wb *Workbook
}

const emuPerPixel = 9525

func (p *partWriter) CreatePackage(dir string) error {
	wb := p.wb
	if err := p.writeXML(dir, "[Content_Types].xml", p.contentTypes()); err != nil {
		return err
	}
	if err := p.writeXML(dir, partPath("_rels", ".rels"), rootRels()); err != nil {
		return err
	}
	if err := p.writeXML(dir, partPath("docProps", "core.xml"), p.coreProps()); err != nil {
		return err
	}
	if err := p.writeXML(dir, partPath("docProps", "app.xml"), p.appProps()); err != nil {
		return err
	}
	if err := p.writeXML(dir, partPath("xl", "workbook.xml"), p.workbookXML()); err != nil {
		return err
	}
	if err := p.writeXML(dir, partPath("xl", "_rels", "workbook.xml.rels"), p.workbookRels()); err != nil {
		return err
	}
	if err := p.writeRaw(dir, partPath("xl", "theme", "theme1.xml"), themeXML); err != nil {
		return err
	}
	if err := p.writeXML(dir, partPath("xl", "styles.xml"), p.styleSheet()); err != nil {
		return err
	}
	if err := p.writeXML(dir, partPath("xl", "sharedStrings.xml"), p.sstXML()); err != nil {
		return err
	}

	for _, ws := range wb.sheets {
		name := fmt.Sprintf("sheet%d.xml", ws.index+1)
		if err := p.writeXML(dir, partPath("xl", "worksheets", name), p.worksheetXML(ws)); err != nil {
			return err
		}
		if rels := p.sheetRels(ws); len(rels.Relationships) > 0 {
			if err := p.writeXML(dir, partPath("xl", "worksheets", "_rels", name+".rels"), rels); err != nil {
				return err
			}
		}
		if ws.hasDrawing() {
			dn := fmt.Sprintf("drawing%d.xml", ws.drawingID)
			if err := p.writeXML(dir, partPath("xl", "drawings", dn), p.drawingXML(ws)); err != nil {
				return err
			}
			if err := p.writeXML(dir, partPath("xl", "drawings", "_rels", dn+".rels"), p.drawingRels(ws)); err != nil {
				return err
			}
		}
		if len(ws.comments) > 0 {
			cn := fmt.Sprintf("comments%d.xml", ws.commentID)
			if err := p.writeXML(dir, partPath("xl", cn), p.commentsXML(ws)); err != nil {
				return err
			}
			vn := fmt.Sprintf("vmlDrawing%d.vml", ws.commentID)
			if err := p.writeRaw(dir, partPath("xl", "drawings", vn), p.vmlDrawing(ws)); err != nil {
				return err
			}
		}
	}

	for _, chart := range wb.charts {
		if chart.id == 0 {
			// Never inserted into a sheet.
			continue
		}
		cn := fmt.Sprintf("chart%d.xml", chart.id)
		if err := p.writeXML(dir, partPath("xl", "charts", cn), chartXML(chart)); err != nil {
			return err
		}
	}

	for _, ref := range wb.images {
		mn := fmt.Sprintf("image%d.%s", ref.refID, ref.kind)
		if err := p.writeBytes(dir, partPath("xl", "media", mn), ref.data); err != nil {
			return err
		}
	}
	return nil
}

func (p *partWriter) writeXML(dir, name string, v any) error {
	out, err := xml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	data := append([]byte(xml.Header), out...)
	return p.writeBytes(dir, name, data)
}

func (p *partWriter) writeRaw(dir, name, content string) error {
	return p.writeBytes(dir, name, []byte(content))
}

func (p *partWriter) writeBytes(dir, name string, data []byte) error {
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	return nil
}

func (p *partWriter) contentTypes() xlsxTypes {
	wb := p.wb
	ct := xlsxTypes{
		Xmlns: nsContentTypes,
		Defaults: []xlsxDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
	}
	seenExt := map[string]bool{}
	for _, ref := range wb.images {
		ext := ref.kind.String()
		if !seenExt[ext] {
			seenExt[ext] = true
			ct.Defaults = append(ct.Defaults, xlsxDefault{Extension: ext, ContentType: ref.kind.contentType()})
		}
	}
	hasVML := false
	for _, ws := range wb.sheets {
		if len(ws.comments) > 0 {
			hasVML = true
			break
		}
	}
	if hasVML {
		ct.Defaults = append(ct.Defaults, xlsxDefault{Extension: "vml", ContentType: "application/vnd.openxmlformats-officedocument.vmlDrawing"})
	}

	add := func(part, typ string) {
		ct.Overrides = append(ct.Overrides, xlsxOverride{PartName: part, ContentType: typ})
	}
	const base = "application/vnd.openxmlformats-officedocument.spreadsheetml"
	add("/xl/workbook.xml", base+".sheet.main+xml")
	add("/xl/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")
	add("/xl/styles.xml", base+".styles+xml")
	add("/xl/sharedStrings.xml", base+".sharedStrings+xml")
	for _, ws := range wb.sheets {
		add(fmt.Sprintf("/xl/worksheets/sheet%d.xml", ws.index+1), base+".worksheet+xml")
		if ws.hasDrawing() {
			add(fmt.Sprintf("/xl/drawings/drawing%d.xml", ws.drawingID),
				"application/vnd.openxmlformats-officedocument.drawing+xml")
		}
		if len(ws.comments) > 0 {
			add(fmt.Sprintf("/xl/comments%d.xml", ws.commentID), base+".comments+xml")
		}
	}
	for _, chart := range wb.charts {
		if chart.id > 0 {
			add(fmt.Sprintf("/xl/charts/chart%d.xml", chart.id),
				"application/vnd.openxmlformats-officedocument.drawingml.chart+xml")
		}
	}
	add("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	add("/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml")
	return ct
}

func rootRels() xlsxRelationships {
	return xlsxRelationships{
		Xmlns: nsPkgRels,
		Relationships: []xlsxRelationship{
			{ID: "rId1", Type: relOfficeDocument, Target: "xl/workbook.xml"},
			{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
		},
	}
}

func (p *partWriter) workbookXML() xlsxWorkbook {
	wb := p.wb
	out := xlsxWorkbook{
		Xmlns:       nsMain,
		XmlnsR:      nsRelationships,
		FileVersion: &xlsxFileVersion{AppName: "xl"},
		WorkbookPr:  &xlsxWorkbookPr{Date1904: wb.shared.date1904},
		BookViews: xlsxBookViews{WorkbookView: []xlsxWorkbookView{{
			ActiveTab:  wb.shared.activeSheet,
			FirstSheet: wb.shared.firstSheet,
		}}},
		CalcPr: &xlsxCalcPr{CalcID: "124519"},
	}
	for _, ws := range wb.sheets {
		sheet := xlsxSheet{
			Name:    ws.name,
			SheetID: ws.index + 1,
			RID:     fmt.Sprintf("rId%d", ws.index+1),
		}
		if ws.hidden {
			sheet.State = "hidden"
		}
		out.Sheets.Sheet = append(out.Sheets.Sheet, sheet)
	}
	if len(wb.definedNames) > 0 {
		dn := &xlsxDefinedNames{}
		for _, d := range wb.definedNames {
			entry := xlsxDefinedName{Name: d.name, Hidden: d.hidden, Data: d.formula}
			if d.sheetIndex >= 0 {
				idx := d.sheetIndex
				entry.LocalSheetID = &idx
			}
			dn.DefinedName = append(dn.DefinedName, entry)
		}
		out.DefinedNames = dn
	}
	return out
}

func (p *partWriter) workbookRels() xlsxRelationships {
	wb := p.wb
	rels := xlsxRelationships{Xmlns: nsPkgRels}
	rid := 0
	next := func() string { rid++; return fmt.Sprintf("rId%d", rid) }
	for _, ws := range wb.sheets {
		rels.Relationships = append(rels.Relationships, xlsxRelationship{
			ID: next(), Type: relWorksheet,
			Target: fmt.Sprintf("worksheets/sheet%d.xml", ws.index+1),
		})
	}
	rels.Relationships = append(rels.Relationships,
		xlsxRelationship{ID: next(), Type: relTheme, Target: "theme/theme1.xml"},
		xlsxRelationship{ID: next(), Type: relStyles, Target: "styles.xml"},
		xlsxRelationship{ID: next(), Type: relSharedStrings, Target: "sharedStrings.xml"},
	)
	return rels
}

func colorXML(c Color) *xlsxColor { return &xlsxColor{RGB: c.argb()} }

var patternNames = map[int]string{
	PatternNone:       "none",
	PatternSolid:      "solid",
	PatternMediumGray: "mediumGray",
	PatternDarkGray:   "darkGray",
	PatternLightGray:  "lightGray",
	PatternGray125:    "gray125",
}

var borderNames = map[int]string{
	BorderThin:   "thin",
	BorderMedium: "medium",
	BorderDashed: "dashed",
	BorderDotted: "dotted",
	BorderThick:  "thick",
	BorderDouble: "double",
	BorderHair:   "hair",
}

func (p *partWriter) styleSheet() xlsxStyleSheet {
	wb := p.wb
	ss := xlsxStyleSheet{Xmlns: nsMain}

	var numFmts []xlsxNumFmt
	var fonts []xlsxFont
	var fills []xlsxFill
	var borders []xlsxBorder

	// Built-in fills occupy slots 0 and 1.
	fills = append(fills,
		xlsxFill{PatternFill: xlsxPatternFill{PatternType: "none"}},
		xlsxFill{PatternFill: xlsxPatternFill{PatternType: "gray125"}},
	)

	for _, f := range wb.formats {
		if f.hasNumFmt {
			numFmts = append(numFmts, xlsxNumFmt{NumFmtID: f.numFmtIndex, FormatCode: f.NumFormat})
		}
		if f.hasFont {
			fonts = append(fonts, fontXML(f))
		}
		if f.hasFill {
			fill := xlsxPatternFill{PatternType: patternNames[f.Pattern]}
			if f.FgColor != 0 {
				fill.FgColor = colorXML(f.FgColor)
			}
			if f.BgColor != 0 {
				fill.BgColor = colorXML(f.BgColor)
			} else if f.Pattern == PatternSolid {
				fill.BgColor = &xlsxColor{RGB: "FF000000"}
			}
			fills = append(fills, xlsxFill{PatternFill: fill})
		}
		if f.hasBorder {
			borders = append(borders, borderXML(f))
		}
	}

	if len(numFmts) > 0 {
		ss.NumFmts = &xlsxNumFmts{Count: len(numFmts), NumFmt: numFmts}
	}
	ss.Fonts = xlsxFonts{Count: len(fonts), Font: fonts}
	ss.Fills = xlsxFills{Count: len(fills), Fill: fills}
	ss.Borders = xlsxBorders{Count: len(borders), Border: borders}

	zero := 0
	ss.CellStyleXfs = xlsxCellXfList{Count: 1, Xf: []xlsxXf{{}}}
	for _, f := range wb.formats {
		xf := xlsxXf{
			NumFmtID:          f.numFmtIndex,
			FontID:            f.fontIndex,
			FillID:            f.fillIndex,
			BorderID:          f.borderIndex,
			XfID:              &zero,
			ApplyNumberFormat: f.numFmtIndex > 0,
			ApplyFont:         f.fontIndex > 0,
			ApplyFill:         f.fillIndex > 0,
			ApplyBorder:       f.borderIndex > 0,
		}
		if f.HAlign != "" || f.VAlign != "" || f.TextWrap {
			xf.ApplyAlignment = true
			xf.Alignment = &xlsxAlignment{Horizontal: f.HAlign, Vertical: f.VAlign, WrapText: f.TextWrap}
		}
		ss.CellXfs.Xf = append(ss.CellXfs.Xf, xf)
	}
	ss.CellXfs.Count = len(ss.CellXfs.Xf)
	ss.CellStyles = xlsxCellStyles{Count: 1, CellStyle: []xlsxCellStyle{{Name: "Normal"}}}
	return ss
}

func fontXML(f *Format) xlsxFont {
	font := xlsxFont{
		Sz:   &xlsxValFloat{Val: f.FontSize},
		Name: &xlsxValString{Val: f.FontName},
	}
	if f.FontFamily > 0 {
		font.Family = &xlsxValInt{Val: f.FontFamily}
	}
	if f.Bold {
		font.B = &struct{}{}
	}
	if f.Italic {
		font.I = &struct{}{}
	}
	if f.Underline {
		font.U = &struct{}{}
	}
	if f.StrikeOut {
		font.Strike = &struct{}{}
	}
	if f.FontColor != 0 {
		font.Color = colorXML(f.FontColor)
	} else {
		theme := 1
		font.Color = &xlsxColor{Theme: &theme}
	}
	return font
}

func borderXML(f *Format) xlsxBorder {
	edge := func(style int, color Color) xlsxBorderEdge {
		e := xlsxBorderEdge{Style: borderNames[style]}
		if style != BorderNone {
			if color != 0 {
				e.Color = colorXML(color)
			} else {
				e.Color = &xlsxColor{RGB: "FF000000"}
			}
		}
		return e
	}
	return xlsxBorder{
		Left:   edge(f.BorderLeft, f.BorderLeftColor),
		Right:  edge(f.BorderRight, f.BorderRightColor),
		Top:    edge(f.BorderTop, f.BorderTopColor),
		Bottom: edge(f.BorderBottom, f.BorderBottomColor),
	}
}

func (p *partWriter) sstXML() xlsxSST {
	st := p.wb.sst
	out := xlsxSST{Xmlns: nsMain, Count: st.count, UniqueCount: st.unique}
	for id, s := range st.table {
		if st.rich[id] {
			out.SI = append(out.SI, xlsxSI{Raw: s})
			continue
		}
		t := &xlsxT{Text: s}
		if strings.TrimSpace(s) != s {
			t.Space = "preserve"
		}
		out.SI = append(out.SI, xlsxSI{T: t})
	}
	return out
}

func formatNum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (p *partWriter) worksheetXML(ws *Worksheet) xlsxWorksheet {
	out := xlsxWorksheet{
		Xmlns:         nsMain,
		XmlnsR:        nsRelationships,
		SheetViews:    xlsxSheetViews{SheetView: []xlsxSheetView{{TabSelected: ws.selected}}},
		SheetFormatPr: &xlsxSheetFormatPr{DefaultRowHeight: 15},
		PageMargins:   &xlsxPageMargins{Left: 0.7, Right: 0.7, Top: 0.75, Bottom: 0.75, Header: 0.3, Footer: 0.3},
	}
	if ws.dimensionTracked {
		ref := cellRef(ws.minRow, ws.minCol)
		if ws.minRow != ws.maxRow || ws.minCol != ws.maxCol {
			ref += ":" + cellRef(ws.maxRow, ws.maxCol)
		}
		out.Dimension = &xlsxDimension{Ref: ref}
	} else {
		out.Dimension = &xlsxDimension{Ref: "A1"}
	}

	for _, rowNum := range ws.sortedRowNums() {
		row := ws.rows[rowNum]
		cols := sortedColNums(row)
		xr := xlsxRow{
			R:     rowNum + 1,
			Spans: fmt.Sprintf("%d:%d", cols[0]+1, cols[len(cols)-1]+1),
		}
		for _, colNum := range cols {
			c := row[colNum]
			xc := xlsxC{R: cellRef(rowNum, colNum)}
			if c.format != nil {
				xc.S = c.format.xfIndex
			}
			switch c.kind {
			case cellNumber:
				xc.V = formatNum(c.num)
			case cellString, cellRich:
				xc.T = "s"
				xc.V = strconv.Itoa(c.sst)
			case cellBool:
				xc.T = "b"
				xc.V = formatNum(c.num)
			case cellFormula:
				xc.F = strings.TrimPrefix(c.formula, "=")
				xc.V = formatNum(c.num)
			}
			xr.C = append(xr.C, xc)
		}
		out.SheetData.Row = append(out.SheetData.Row, xr)
	}

	if ws.autofilter != "" {
		out.AutoFilter = &xlsxAutoFilter{Ref: strings.ReplaceAll(ws.autofilter, "$", "")}
	}
	rid := 1
	if ws.hasDrawing() {
		out.Drawing = &xlsxRIDElem{RID: fmt.Sprintf("rId%d", rid)}
		rid++
	}
	if len(ws.comments) > 0 {
		out.LegacyDrawing = &xlsxRIDElem{RID: fmt.Sprintf("rId%d", rid+1)}
	}
	return out
}

// sheetRels orders drawing, comments, then VML, matching the r:ids
// assigned in worksheetXML.
func (p *partWriter) sheetRels(ws *Worksheet) xlsxRelationships {
	rels := xlsxRelationships{Xmlns: nsPkgRels}
	rid := 0
	next := func() string { rid++; return fmt.Sprintf("rId%d", rid) }
	if ws.hasDrawing() {
		rels.Relationships = append(rels.Relationships, xlsxRelationship{
			ID: next(), Type: relDrawing,
			Target: fmt.Sprintf("../drawings/drawing%d.xml", ws.drawingID),
		})
	}
	if len(ws.comments) > 0 {
		rels.Relationships = append(rels.Relationships,
			xlsxRelationship{
				ID: next(), Type: relComments,
				Target: fmt.Sprintf("../comments%d.xml", ws.commentID),
			},
			xlsxRelationship{
				ID: next(), Type: relVMLDrawing,
				Target: fmt.Sprintf("../drawings/vmlDrawing%d.vml", ws.commentID),
			},
		)
	}
	return rels
}

func (p *partWriter) drawingXML(ws *Worksheet) xdrWsDr {
	out := xdrWsDr{XmlnsXdr: nsSpreadsheetDr, XmlnsA: nsDrawing}
	rid := 0
	shapeID := 0
	for _, cp := range ws.charts {
		rid++
		shapeID++
		anchor := xdrTwoCellAnchor{
			From: xdrPos{Col: cp.col, Row: cp.row},
			To:   xdrPos{Col: cp.col + 8, Row: cp.row + 15},
			GraphicFrame: &xdrGraphicFrame{
				NvPr: xdrNvGraphicFramePr{CNvPr: xdrCNvPr{
					ID:   shapeID + 1,
					Name: fmt.Sprintf("Chart %d", cp.chart.id),
				}},
				Xfrm: xdrXfrm{Ext: aSize{CX: 480 * emuPerPixel, CY: 288 * emuPerPixel}},
				Graphic: aGraphic{Data: aGraphicData{
					URI: nsChart,
					Chart: &cChartRef{
						XmlnsC: nsChart,
						XmlnsR: nsRelationships,
						RID:    fmt.Sprintf("rId%d", rid),
					},
				}},
			},
		}
		out.Anchors = append(out.Anchors, anchor)
	}
	for _, ip := range ws.images {
		rid++
		shapeID++
		ref := ip.ref
		anchor := xdrTwoCellAnchor{
			From: xdrPos{Col: ip.col, Row: ip.row},
			To: xdrPos{
				Col: ip.col + int(ref.width)/64 + 1,
				Row: ip.row + int(ref.height)/20 + 1,
			},
			Pic: &xdrPic{
				NvPicPr: xdrNvPicPr{CNvPr: xdrCNvPr{
					ID:    shapeID + 1,
					Name:  ref.name,
					Descr: filepath.Base(ref.path),
				}},
				BlipFill: xdrBlipFill{Blip: aBlip{
					XmlnsR: nsRelationships,
					Embed:  fmt.Sprintf("rId%d", rid),
				}},
				SpPr: xdrSpPr{
					Xfrm: xdrXfrm{Ext: aSize{
						CX: int64(ref.width) * emuPerPixel,
						CY: int64(ref.height) * emuPerPixel,
					}},
					PrstGeom: aPrstGeom{Prst: "rect"},
				},
			},
		}
		out.Anchors = append(out.Anchors, anchor)
	}
	return out
}

func (p *partWriter) drawingRels(ws *Worksheet) xlsxRelationships {
	rels := xlsxRelationships{Xmlns: nsPkgRels}
	rid := 0
	next := func() string { rid++; return fmt.Sprintf("rId%d", rid) }
	for _, cp := range ws.charts {
		rels.Relationships = append(rels.Relationships, xlsxRelationship{
			ID: next(), Type: relChart,
			Target: fmt.Sprintf("../charts/chart%d.xml", cp.chart.id),
		})
	}
	for _, ip := range ws.images {
		rels.Relationships = append(rels.Relationships, xlsxRelationship{
			ID: next(), Type: relImage,
			Target: fmt.Sprintf("../media/image%d.%s", ip.ref.refID, ip.ref.kind),
		})
	}
	return rels
}

func (p *partWriter) commentsXML(ws *Worksheet) xlsxComments {
	out := xlsxComments{
		Xmlns:   nsMain,
		Authors: xlsxAuthors{Author: []string{""}},
	}
	for _, cm := range ws.comments {
		out.CommentList.Comment = append(out.CommentList.Comment, xlsxComment{
			Ref: cellRef(cm.row, cm.col),
			Text: xlsxCommentText{R: []xlsxCommentRun{{
				T: xlsxT{Space: "preserve", Text: cm.text},
			}}},
		})
	}
	return out
}

// vmlDrawing renders the legacy drawing shapes backing cell comments.
// Shape ids come from the block assigned during comment preparation.
func (p *partWriter) vmlDrawing(ws *Worksheet) string {
	var b strings.Builder
	b.WriteString(`<xml xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="urn:schemas-microsoft-com:office:excel">` + "\n")
	fmt.Fprintf(&b, `<o:shapelayout v:ext="edit"><o:idmap v:ext="edit" data="%d"/></o:shapelayout>`+"\n", ws.vmlDataID)
	b.WriteString(`<v:shapetype id="_x0000_t202" coordsize="21600,21600" o:spt="202" path="m,l,21600r21600,l21600,xe"><v:stroke joinstyle="miter"/><v:path gradientshapeok="t" o:connecttype="rect"/></v:shapetype>` + "\n")
	for i, cm := range ws.comments {
		fmt.Fprintf(&b, `<v:shape id="_x0000_s%d" type="#_x0000_t202" style="position:absolute;visibility:hidden" fillcolor="#ffffe1" o:insetmode="auto">`+
			`<v:fill color2="#ffffe1"/><v:shadow on="t" color="black" obscured="t"/><v:path o:connecttype="none"/>`+
			`<x:ClientData ObjectType="Note"><x:MoveWithCells/><x:SizeWithCells/>`+
			`<x:Anchor>%d, 15, %d, 10, %d, 15, %d, 4</x:Anchor>`+
			`<x:AutoFill>False</x:AutoFill><x:Row>%d</x:Row><x:Column>%d</x:Column></x:ClientData></v:shape>`+"\n",
			ws.vmlShapeID+i+1,
			cm.col+1, cm.row, cm.col+3, cm.row+3,
			cm.row, cm.col)
	}
	b.WriteString("</xml>")
	return b.String()
}

func (p *partWriter) coreProps() xlsxCoreProps {
	props := p.wb.props
	out := xlsxCoreProps{
		XmlnsCP:      nsCoreProps,
		XmlnsDC:      nsDC,
		XmlnsDCTerms: nsDCTerms,
		XmlnsXSI:     nsXSI,
		Title:        props.Title,
		Subject:      props.Subject,
		Creator:      props.Author,
		Keywords:     props.Keywords,
		Description:  props.Comments,
		Category:     props.Category,
		Status:       props.Status,
	}
	if !props.Created.IsZero() {
		stamp := &xlsxDate{Type: "dcterms:W3CDTF", Text: props.Created.UTC().Format(time.RFC3339)}
		out.Created = stamp
		out.Modified = stamp
	}
	return out
}

func (p *partWriter) appProps() xlsxAppProps {
	wb := p.wb
	out := xlsxAppProps{
		Xmlns:       nsExtendedProps,
		XmlnsVT:     nsVTypes,
		Application: "Microsoft Excel",
		Manager:     wb.props.Manager,
		Company:     wb.props.Company,
	}
	sheetsLabel := "Worksheets"
	sheetCount := len(wb.sheets)
	pairs := []vtVariant{
		{Lpstr: &sheetsLabel},
		{I4: &sheetCount},
	}
	titles := make([]string, 0, sheetCount+len(wb.namedRanges))
	for _, ws := range wb.sheets {
		titles = append(titles, ws.name)
	}
	if len(wb.namedRanges) > 0 {
		rangesLabel := "Named Ranges"
		rangeCount := len(wb.namedRanges)
		pairs = append(pairs, vtVariant{Lpstr: &rangesLabel}, vtVariant{I4: &rangeCount})
		titles = append(titles, wb.namedRanges...)
	}
	out.HeadingPairs = vtHeadingPairs{Vector: vtVariantVector{
		Size: len(pairs), BaseType: "variant", Variants: pairs,
	}}
	out.TitlesOfParts = vtTitles{Vector: vtLpstrVector{
		Size: len(titles), BaseType: "lpstr", Lpstr: titles,
	}}
	return out
}
