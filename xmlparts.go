// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import "encoding/xml"

// XML shapes for the fixed constellation of package parts. These map
// one to one onto the OOXML spreadsheet markup; all decisions are made
// before emission, the structs only carry final indices.

const (
	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels       = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsSpreadsheetDr = "http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing"
	nsChart         = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsVTypes        = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeBase       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	relOfficeDocument = relTypeBase + "officeDocument"
	relWorksheet      = relTypeBase + "worksheet"
	relStyles         = relTypeBase + "styles"
	relSharedStrings  = relTypeBase + "sharedStrings"
	relTheme          = relTypeBase + "theme"
	relDrawing        = relTypeBase + "drawing"
	relChart          = relTypeBase + "chart"
	relImage          = relTypeBase + "image"
	relComments       = relTypeBase + "comments"
	relVMLDrawing     = relTypeBase + "vmlDrawing"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = relTypeBase + "extended-properties"
)

// Content types manifest.

type xlsxTypes struct {
	XMLName   xml.Name       `xml:"Types"`
	Xmlns     string         `xml:"xmlns,attr"`
	Defaults  []xlsxDefault  `xml:"Default"`
	Overrides []xlsxOverride `xml:"Override"`
}

type xlsxDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xlsxOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Relationship parts.

type xlsxRelationships struct {
	XMLName       xml.Name           `xml:"Relationships"`
	Xmlns         string             `xml:"xmlns,attr"`
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Workbook part.

type xlsxWorkbook struct {
	XMLName      xml.Name          `xml:"workbook"`
	Xmlns        string            `xml:"xmlns,attr"`
	XmlnsR       string            `xml:"xmlns:r,attr"`
	FileVersion  *xlsxFileVersion  `xml:"fileVersion"`
	WorkbookPr   *xlsxWorkbookPr   `xml:"workbookPr"`
	BookViews    xlsxBookViews     `xml:"bookViews"`
	Sheets       xlsxSheets        `xml:"sheets"`
	DefinedNames *xlsxDefinedNames `xml:"definedNames"`
	CalcPr       *xlsxCalcPr       `xml:"calcPr"`
}

type xlsxFileVersion struct {
	AppName string `xml:"appName,attr"`
}

type xlsxWorkbookPr struct {
	Date1904     bool   `xml:"date1904,attr,omitempty"`
	DefaultTheme string `xml:"defaultThemeVersion,attr,omitempty"`
}

type xlsxBookViews struct {
	WorkbookView []xlsxWorkbookView `xml:"workbookView"`
}

type xlsxWorkbookView struct {
	ActiveTab  int `xml:"activeTab,attr,omitempty"`
	FirstSheet int `xml:"firstSheet,attr,omitempty"`
}

type xlsxSheets struct {
	Sheet []xlsxSheet `xml:"sheet"`
}

type xlsxSheet struct {
	Name    string `xml:"name,attr"`
	SheetID int    `xml:"sheetId,attr"`
	State   string `xml:"state,attr,omitempty"`
	RID     string `xml:"r:id,attr"`
}

type xlsxDefinedNames struct {
	DefinedName []xlsxDefinedName `xml:"definedName"`
}

type xlsxDefinedName struct {
	Name         string `xml:"name,attr"`
	LocalSheetID *int   `xml:"localSheetId,attr"`
	Hidden       bool   `xml:"hidden,attr,omitempty"`
	Data         string `xml:",chardata"`
}

type xlsxCalcPr struct {
	CalcID string `xml:"calcId,attr"`
}

// Shared strings part.

type xlsxSST struct {
	XMLName     xml.Name `xml:"sst"`
	Xmlns       string   `xml:"xmlns,attr"`
	Count       int      `xml:"count,attr"`
	UniqueCount int      `xml:"uniqueCount,attr"`
	SI          []xlsxSI `xml:"si"`
}

type xlsxSI struct {
	T   *xlsxT `xml:"t"`
	Raw string `xml:",innerxml"`
}

type xlsxT struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Text  string `xml:",chardata"`
}

// Styles part.

type xlsxStyleSheet struct {
	XMLName     xml.Name        `xml:"styleSheet"`
	Xmlns       string          `xml:"xmlns,attr"`
	NumFmts     *xlsxNumFmts    `xml:"numFmts"`
	Fonts       xlsxFonts       `xml:"fonts"`
	Fills       xlsxFills       `xml:"fills"`
	Borders     xlsxBorders     `xml:"borders"`
	CellStyleXfs xlsxCellXfList `xml:"cellStyleXfs"`
	CellXfs     xlsxCellXfList  `xml:"cellXfs"`
	CellStyles  xlsxCellStyles  `xml:"cellStyles"`
}

type xlsxNumFmts struct {
	Count  int          `xml:"count,attr"`
	NumFmt []xlsxNumFmt `xml:"numFmt"`
}

type xlsxNumFmt struct {
	NumFmtID   int    `xml:"numFmtId,attr"`
	FormatCode string `xml:"formatCode,attr"`
}

type xlsxFonts struct {
	Count int        `xml:"count,attr"`
	Font  []xlsxFont `xml:"font"`
}

type xlsxFont struct {
	B      *struct{}      `xml:"b"`
	I      *struct{}      `xml:"i"`
	U      *struct{}      `xml:"u"`
	Strike *struct{}      `xml:"strike"`
	Sz     *xlsxValFloat  `xml:"sz"`
	Color  *xlsxColor     `xml:"color"`
	Name   *xlsxValString `xml:"name"`
	Family *xlsxValInt    `xml:"family"`
}

type xlsxValFloat struct {
	Val float64 `xml:"val,attr"`
}

type xlsxValInt struct {
	Val int `xml:"val,attr"`
}

type xlsxValString struct {
	Val string `xml:"val,attr"`
}

type xlsxColor struct {
	RGB   string `xml:"rgb,attr,omitempty"`
	Theme *int   `xml:"theme,attr"`
}

type xlsxFills struct {
	Count int        `xml:"count,attr"`
	Fill  []xlsxFill `xml:"fill"`
}

type xlsxFill struct {
	PatternFill xlsxPatternFill `xml:"patternFill"`
}

type xlsxPatternFill struct {
	PatternType string     `xml:"patternType,attr"`
	FgColor     *xlsxColor `xml:"fgColor"`
	BgColor     *xlsxColor `xml:"bgColor"`
}

type xlsxBorders struct {
	Count  int          `xml:"count,attr"`
	Border []xlsxBorder `xml:"border"`
}

type xlsxBorder struct {
	Left     xlsxBorderEdge `xml:"left"`
	Right    xlsxBorderEdge `xml:"right"`
	Top      xlsxBorderEdge `xml:"top"`
	Bottom   xlsxBorderEdge `xml:"bottom"`
	Diagonal xlsxBorderEdge `xml:"diagonal"`
}

type xlsxBorderEdge struct {
	Style string     `xml:"style,attr,omitempty"`
	Color *xlsxColor `xml:"color"`
}

type xlsxCellXfList struct {
	Count int           `xml:"count,attr"`
	Xf    []xlsxXf      `xml:"xf"`
}

type xlsxXf struct {
	NumFmtID          int            `xml:"numFmtId,attr"`
	FontID            int            `xml:"fontId,attr"`
	FillID            int            `xml:"fillId,attr"`
	BorderID          int            `xml:"borderId,attr"`
	XfID              *int           `xml:"xfId,attr"`
	ApplyNumberFormat bool           `xml:"applyNumberFormat,attr,omitempty"`
	ApplyFont         bool           `xml:"applyFont,attr,omitempty"`
	ApplyFill         bool           `xml:"applyFill,attr,omitempty"`
	ApplyBorder       bool           `xml:"applyBorder,attr,omitempty"`
	ApplyAlignment    bool           `xml:"applyAlignment,attr,omitempty"`
	Alignment         *xlsxAlignment `xml:"alignment"`
}

type xlsxAlignment struct {
	Horizontal string `xml:"horizontal,attr,omitempty"`
	Vertical   string `xml:"vertical,attr,omitempty"`
	WrapText   bool   `xml:"wrapText,attr,omitempty"`
}

type xlsxCellStyles struct {
	Count     int             `xml:"count,attr"`
	CellStyle []xlsxCellStyle `xml:"cellStyle"`
}

type xlsxCellStyle struct {
	Name      string `xml:"name,attr"`
	XfID      int    `xml:"xfId,attr"`
	BuiltinID int    `xml:"builtinId,attr"`
}

// Worksheet part.

type xlsxWorksheet struct {
	XMLName       xml.Name           `xml:"worksheet"`
	Xmlns         string             `xml:"xmlns,attr"`
	XmlnsR        string             `xml:"xmlns:r,attr"`
	Dimension     *xlsxDimension     `xml:"dimension"`
	SheetViews    xlsxSheetViews     `xml:"sheetViews"`
	SheetFormatPr *xlsxSheetFormatPr `xml:"sheetFormatPr"`
	SheetData     xlsxSheetData      `xml:"sheetData"`
	AutoFilter    *xlsxAutoFilter    `xml:"autoFilter"`
	PageMargins   *xlsxPageMargins   `xml:"pageMargins"`
	Drawing       *xlsxRIDElem       `xml:"drawing"`
	LegacyDrawing *xlsxRIDElem       `xml:"legacyDrawing"`
}

type xlsxDimension struct {
	Ref string `xml:"ref,attr"`
}

type xlsxSheetViews struct {
	SheetView []xlsxSheetView `xml:"sheetView"`
}

type xlsxSheetView struct {
	TabSelected    bool `xml:"tabSelected,attr,omitempty"`
	WorkbookViewID int  `xml:"workbookViewId,attr"`
}

type xlsxSheetFormatPr struct {
	DefaultRowHeight float64 `xml:"defaultRowHeight,attr"`
}

type xlsxSheetData struct {
	Row []xlsxRow `xml:"row"`
}

type xlsxRow struct {
	R     int     `xml:"r,attr"`
	Spans string  `xml:"spans,attr,omitempty"`
	C     []xlsxC `xml:"c"`
}

type xlsxC struct {
	R string `xml:"r,attr"`
	S int    `xml:"s,attr,omitempty"`
	T string `xml:"t,attr,omitempty"`
	F string `xml:"f,omitempty"`
	V string `xml:"v,omitempty"`
}

type xlsxAutoFilter struct {
	Ref string `xml:"ref,attr"`
}

type xlsxPageMargins struct {
	Left   float64 `xml:"left,attr"`
	Right  float64 `xml:"right,attr"`
	Top    float64 `xml:"top,attr"`
	Bottom float64 `xml:"bottom,attr"`
	Header float64 `xml:"header,attr"`
	Footer float64 `xml:"footer,attr"`
}

type xlsxRIDElem struct {
	RID string `xml:"r:id,attr"`
}

// Comments part.

type xlsxComments struct {
	XMLName     xml.Name        `xml:"comments"`
	Xmlns       string          `xml:"xmlns,attr"`
	Authors     xlsxAuthors     `xml:"authors"`
	CommentList xlsxCommentList `xml:"commentList"`
}

type xlsxAuthors struct {
	Author []string `xml:"author"`
}

type xlsxCommentList struct {
	Comment []xlsxComment `xml:"comment"`
}

type xlsxComment struct {
	Ref      string          `xml:"ref,attr"`
	AuthorID int             `xml:"authorId,attr"`
	Text     xlsxCommentText `xml:"text"`
}

type xlsxCommentText struct {
	R []xlsxCommentRun `xml:"r"`
}

type xlsxCommentRun struct {
	T xlsxT `xml:"t"`
}

// Drawing part. Prefixed names keep the xdr/a/c/r namespaces the
// consuming applications expect.

type xdrWsDr struct {
	XMLName  xml.Name           `xml:"xdr:wsDr"`
	XmlnsXdr string             `xml:"xmlns:xdr,attr"`
	XmlnsA   string             `xml:"xmlns:a,attr"`
	Anchors  []xdrTwoCellAnchor `xml:"xdr:twoCellAnchor"`
}

type xdrTwoCellAnchor struct {
	From         xdrPos           `xml:"xdr:from"`
	To           xdrPos           `xml:"xdr:to"`
	GraphicFrame *xdrGraphicFrame `xml:"xdr:graphicFrame"`
	Pic          *xdrPic          `xml:"xdr:pic"`
	ClientData   struct{}         `xml:"xdr:clientData"`
}

type xdrPos struct {
	Col    int `xml:"xdr:col"`
	ColOff int `xml:"xdr:colOff"`
	Row    int `xml:"xdr:row"`
	RowOff int `xml:"xdr:rowOff"`
}

type xdrGraphicFrame struct {
	NvPr    xdrNvGraphicFramePr `xml:"xdr:nvGraphicFramePr"`
	Xfrm    xdrXfrm             `xml:"xdr:xfrm"`
	Graphic aGraphic            `xml:"a:graphic"`
}

type xdrNvGraphicFramePr struct {
	CNvPr    xdrCNvPr `xml:"xdr:cNvPr"`
	CNvGrFrm struct{} `xml:"xdr:cNvGraphicFramePr"`
}

type xdrCNvPr struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type xdrXfrm struct {
	Off aPoint `xml:"a:off"`
	Ext aSize  `xml:"a:ext"`
}

type aPoint struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type aSize struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type aGraphic struct {
	Data aGraphicData `xml:"a:graphicData"`
}

type aGraphicData struct {
	URI   string    `xml:"uri,attr"`
	Chart *cChartRef `xml:"c:chart"`
}

type cChartRef struct {
	XmlnsC string `xml:"xmlns:c,attr"`
	XmlnsR string `xml:"xmlns:r,attr"`
	RID    string `xml:"r:id,attr"`
}

type xdrPic struct {
	NvPicPr  xdrNvPicPr  `xml:"xdr:nvPicPr"`
	BlipFill xdrBlipFill `xml:"xdr:blipFill"`
	SpPr     xdrSpPr     `xml:"xdr:spPr"`
}

type xdrNvPicPr struct {
	CNvPr    xdrCNvPr `xml:"xdr:cNvPr"`
	CNvPicPr struct{} `xml:"xdr:cNvPicPr"`
}

type xdrBlipFill struct {
	Blip    aBlip    `xml:"a:blip"`
	Stretch struct{} `xml:"a:stretch"`
}

type aBlip struct {
	XmlnsR string `xml:"xmlns:r,attr"`
	Embed  string `xml:"r:embed,attr"`
}

type xdrSpPr struct {
	Xfrm     xdrXfrm    `xml:"a:xfrm"`
	PrstGeom aPrstGeom  `xml:"a:prstGeom"`
}

type aPrstGeom struct {
	Prst string   `xml:"prst,attr"`
	Av   struct{} `xml:"a:avLst"`
}

// Chart part.

type cChartSpace struct {
	XMLName xml.Name `xml:"c:chartSpace"`
	XmlnsC  string   `xml:"xmlns:c,attr"`
	XmlnsA  string   `xml:"xmlns:a,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Chart   cChart   `xml:"c:chart"`
}

type cChart struct {
	Title    *cTitle   `xml:"c:title"`
	PlotArea cPlotArea `xml:"c:plotArea"`
	Legend   *cLegend  `xml:"c:legend"`
	PlotVisOnly cValAttrInt `xml:"c:plotVisOnly"`
}

type cTitle struct {
	Tx      *cTitleTx   `xml:"c:tx"`
	Overlay cValAttrInt `xml:"c:overlay"`
}

type cTitleTx struct {
	Rich cRich `xml:"c:rich"`
}

type cRich struct {
	BodyPr   struct{} `xml:"a:bodyPr"`
	LstStyle struct{} `xml:"a:lstStyle"`
	P        cRichP   `xml:"a:p"`
}

type cRichP struct {
	R cRichR `xml:"a:r"`
}

type cRichR struct {
	T string `xml:"a:t"`
}

type cLegend struct {
	Pos     cValAttrString `xml:"c:legendPos"`
	Overlay cValAttrInt    `xml:"c:overlay"`
}

type cValAttrInt struct {
	Val int `xml:"val,attr"`
}

type cValAttrString struct {
	Val string `xml:"val,attr"`
}

type cPlotArea struct {
	Layout    struct{}    `xml:"c:layout"`
	BarChart  *cTypeChart `xml:"c:barChart"`
	LineChart *cTypeChart `xml:"c:lineChart"`
	PieChart  *cTypeChart `xml:"c:pieChart"`
	AreaChart *cTypeChart `xml:"c:areaChart"`
	CatAx     *cCatAx     `xml:"c:catAx"`
	ValAx     *cValAx     `xml:"c:valAx"`
}

type cTypeChart struct {
	BarDir     *cValAttrString `xml:"c:barDir"`
	Grouping   *cValAttrString `xml:"c:grouping"`
	VaryColors *cValAttrInt    `xml:"c:varyColors"`
	Ser        []cSer          `xml:"c:ser"`
	AxID       []cValAttrInt   `xml:"c:axId"`
}

type cSer struct {
	Idx   cValAttrInt `xml:"c:idx"`
	Order cValAttrInt `xml:"c:order"`
	Tx    *cSerTx     `xml:"c:tx"`
	SpPr  *cSpPr      `xml:"c:spPr"`
	Cat   *cDataRef   `xml:"c:cat"`
	Val   *cDataRef   `xml:"c:val"`
}

type cSerTx struct {
	StrRef *cStrRef `xml:"c:strRef"`
	V      string   `xml:"c:v,omitempty"`
}

type cSpPr struct {
	SolidFill *aSolidFill `xml:"a:solidFill"`
}

type aSolidFill struct {
	SrgbClr aSrgbClr `xml:"a:srgbClr"`
}

type aSrgbClr struct {
	Val string `xml:"val,attr"`
}

type cDataRef struct {
	StrRef *cStrRef `xml:"c:strRef"`
	NumRef *cNumRef `xml:"c:numRef"`
}

type cStrRef struct {
	F     string     `xml:"c:f"`
	Cache *cStrCache `xml:"c:strCache"`
}

type cStrCache struct {
	PtCount cValAttrInt `xml:"c:ptCount"`
	Pt      []cStrPt    `xml:"c:pt"`
}

type cStrPt struct {
	Idx int    `xml:"idx,attr"`
	V   string `xml:"c:v"`
}

type cNumRef struct {
	F     string     `xml:"c:f"`
	Cache *cNumCache `xml:"c:numCache"`
}

type cNumCache struct {
	FormatCode string      `xml:"c:formatCode"`
	PtCount    cValAttrInt `xml:"c:ptCount"`
	Pt         []cNumPt    `xml:"c:pt"`
}

type cNumPt struct {
	Idx int    `xml:"idx,attr"`
	V   string `xml:"c:v"`
}

type cCatAx struct {
	AxID    cValAttrInt    `xml:"c:axId"`
	Scaling cScaling       `xml:"c:scaling"`
	Delete  cValAttrInt    `xml:"c:delete"`
	AxPos   cValAttrString `xml:"c:axPos"`
	Title   *cTitle        `xml:"c:title"`
	CrossAx cValAttrInt    `xml:"c:crossAx"`
}

type cValAx struct {
	AxID    cValAttrInt    `xml:"c:axId"`
	Scaling cScaling       `xml:"c:scaling"`
	Delete  cValAttrInt    `xml:"c:delete"`
	AxPos   cValAttrString `xml:"c:axPos"`
	Title   *cTitle        `xml:"c:title"`
	CrossAx cValAttrInt    `xml:"c:crossAx"`
}

type cScaling struct {
	Orientation cValAttrString `xml:"c:orientation"`
}

// Document property parts.

type xlsxCoreProps struct {
	XMLName      xml.Name  `xml:"cp:coreProperties"`
	XmlnsCP      string    `xml:"xmlns:cp,attr"`
	XmlnsDC      string    `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string    `xml:"xmlns:dcterms,attr"`
	XmlnsXSI     string    `xml:"xmlns:xsi,attr"`
	Title        string    `xml:"dc:title,omitempty"`
	Subject      string    `xml:"dc:subject,omitempty"`
	Creator      string    `xml:"dc:creator,omitempty"`
	Keywords     string    `xml:"cp:keywords,omitempty"`
	Description  string    `xml:"dc:description,omitempty"`
	Category     string    `xml:"cp:category,omitempty"`
	Status       string    `xml:"cp:contentStatus,omitempty"`
	Created      *xlsxDate `xml:"dcterms:created"`
	Modified     *xlsxDate `xml:"dcterms:modified"`
}

type xlsxDate struct {
	Type string `xml:"xsi:type,attr"`
	Text string `xml:",chardata"`
}

type xlsxAppProps struct {
	XMLName       xml.Name      `xml:"Properties"`
	Xmlns         string        `xml:"xmlns,attr"`
	XmlnsVT       string        `xml:"xmlns:vt,attr"`
	Application   string        `xml:"Application"`
	DocSecurity   int           `xml:"DocSecurity"`
	ScaleCrop     bool          `xml:"ScaleCrop"`
	HeadingPairs  vtHeadingPairs `xml:"HeadingPairs"`
	TitlesOfParts vtTitles      `xml:"TitlesOfParts"`
	Manager       string        `xml:"Manager,omitempty"`
	Company       string        `xml:"Company,omitempty"`
}

type vtHeadingPairs struct {
	Vector vtVariantVector `xml:"vt:vector"`
}

type vtVariantVector struct {
	Size     int         `xml:"size,attr"`
	BaseType string      `xml:"baseType,attr"`
	Variants []vtVariant `xml:"vt:variant"`
}

type vtVariant struct {
	Lpstr *string `xml:"vt:lpstr"`
	I4    *int    `xml:"vt:i4"`
}

type vtTitles struct {
	Vector vtLpstrVector `xml:"vt:vector"`
}

type vtLpstrVector struct {
	Size     int      `xml:"size,attr"`
	BaseType string   `xml:"baseType,attr"`
	Lpstr    []string `xml:"vt:lpstr"`
}
