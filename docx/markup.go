package docx

import "encoding/xml"

// The types in this file describe the write side of WordprocessingML.
// Element and attribute names carry their prefixes literally ("w:p",
// "w:val") so the output uses the short prefixed form Word itself writes.

// wVal is any element whose only content is a w:val attribute.
type wVal struct {
	Val string `xml:"w:val,attr"`
}

// wEmpty is an element with no attributes or content (<w:b/>).
type wEmpty struct{}

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

// wBody holds paragraphs and tables in document order followed by the
// section properties, which must come last.
type wBody struct {
	Content []any   `xml:",any"`
	SectPr  wSectPr `xml:"w:sectPr"`
}

type wSectPr struct {
	HeaderRefs []wHdrFtrRef `xml:"w:headerReference"`
	FooterRefs []wHdrFtrRef `xml:"w:footerReference"`
	PgSz       wPgSz        `xml:"w:pgSz"`
	PgMar      wPgMar       `xml:"w:pgMar"`
	Cols       wCols        `xml:"w:cols"`
	DocGrid    wDocGrid     `xml:"w:docGrid"`
}

type wHdrFtrRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type wPgSz struct {
	W      int    `xml:"w:w,attr"`
	H      int    `xml:"w:h,attr"`
	Orient string `xml:"w:orient,attr,omitempty"`
}

type wPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type wCols struct {
	Space int `xml:"w:space,attr"`
}

type wDocGrid struct {
	LinePitch int `xml:"w:linePitch,attr"`
}

type wParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *wPPr    `xml:"w:pPr,omitempty"`
	Runs    []wRun   `xml:"w:r"`
}

// wPPr fields follow the schema order of CT_PPr.
type wPPr struct {
	Style      *wVal     `xml:"w:pStyle,omitempty"`
	KeepNext   *wEmpty   `xml:"w:keepNext,omitempty"`
	Spacing    *wSpacing `xml:"w:spacing,omitempty"`
	Jc         *wVal     `xml:"w:jc,omitempty"`
	OutlineLvl *wVal     `xml:"w:outlineLvl,omitempty"`
}

type wSpacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type wRun struct {
	XMLName xml.Name `xml:"w:r"`
	RPr     *wRPr    `xml:"w:rPr,omitempty"`
	Content []any    `xml:",any"`
}

// wRPr fields follow the schema order of CT_RPr.
type wRPr struct {
	Fonts     *wFonts `xml:"w:rFonts,omitempty"`
	Bold      *wEmpty `xml:"w:b,omitempty"`
	Italic    *wEmpty `xml:"w:i,omitempty"`
	Color     *wVal   `xml:"w:color,omitempty"`
	Size      *wVal   `xml:"w:sz,omitempty"`
	SizeCs    *wVal   `xml:"w:szCs,omitempty"`
	Underline *wVal   `xml:"w:u,omitempty"`
}

type wFonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
	CS       string `xml:"w:cs,attr,omitempty"`
}

type wText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type wBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

type wTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type wFldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

type wInstrText struct {
	XMLName xml.Name `xml:"w:instrText"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type wTable struct {
	XMLName xml.Name `xml:"w:tbl"`
	TblPr   wTblPr   `xml:"w:tblPr"`
	Grid    wTblGrid `xml:"w:tblGrid"`
	Rows    []wRow   `xml:"w:tr"`
}

type wTblPr struct {
	Style *wVal    `xml:"w:tblStyle,omitempty"`
	Width wWidth   `xml:"w:tblW"`
	Look  wTblLook `xml:"w:tblLook"`
}

type wWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type wTblLook struct {
	Val string `xml:"w:val,attr"`
}

type wTblGrid struct {
	Cols []wGridCol `xml:"w:gridCol"`
}

type wGridCol struct {
	W int `xml:"w:w,attr"`
}

type wRow struct {
	TrPr  *wTrPr  `xml:"w:trPr,omitempty"`
	Cells []wCell `xml:"w:tc"`
}

type wTrPr struct {
	TblHeader *wEmpty `xml:"w:tblHeader,omitempty"`
}

type wCell struct {
	TcPr       wTcPr        `xml:"w:tcPr"`
	Paragraphs []wParagraph `xml:"w:p"`
}

type wTcPr struct {
	Width wWidth `xml:"w:tcW"`
}

type wHeader struct {
	XMLName    xml.Name     `xml:"w:hdr"`
	XmlnsW     string       `xml:"xmlns:w,attr"`
	XmlnsR     string       `xml:"xmlns:r,attr"`
	Paragraphs []wParagraph `xml:"w:p"`
}

type wFooter struct {
	XMLName    xml.Name     `xml:"w:ftr"`
	XmlnsW     string       `xml:"xmlns:w,attr"`
	XmlnsR     string       `xml:"xmlns:r,attr"`
	Paragraphs []wParagraph `xml:"w:p"`
}

type wStyles struct {
	XMLName     xml.Name     `xml:"w:styles"`
	XmlnsW      string       `xml:"xmlns:w,attr"`
	DocDefaults wDocDefaults `xml:"w:docDefaults"`
	Styles      []wStyle     `xml:"w:style"`
}

type wDocDefaults struct {
	RPr wRPr `xml:"w:rPrDefault>w:rPr"`
	PPr wPPr `xml:"w:pPrDefault>w:pPr"`
}

type wStyle struct {
	Type       string       `xml:"w:type,attr"`
	Default    string       `xml:"w:default,attr,omitempty"`
	StyleID    string       `xml:"w:styleId,attr"`
	Name       wVal         `xml:"w:name"`
	BasedOn    *wVal        `xml:"w:basedOn,omitempty"`
	Next       *wVal        `xml:"w:next,omitempty"`
	UIPriority *wVal        `xml:"w:uiPriority,omitempty"`
	QFormat    *wEmpty      `xml:"w:qFormat,omitempty"`
	PPr        *wPPr        `xml:"w:pPr,omitempty"`
	RPr        *wRPr        `xml:"w:rPr,omitempty"`
	TblPr      *wStyleTblPr `xml:"w:tblPr,omitempty"`
}

type wStyleTblPr struct {
	Borders *wTblBorders `xml:"w:tblBorders,omitempty"`
	CellMar *wCellMar    `xml:"w:tblCellMar,omitempty"`
}

type wTblBorders struct {
	Top     wBorder `xml:"w:top"`
	Left    wBorder `xml:"w:left"`
	Bottom  wBorder `xml:"w:bottom"`
	Right   wBorder `xml:"w:right"`
	InsideH wBorder `xml:"w:insideH"`
	InsideV wBorder `xml:"w:insideV"`
}

type wBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type wCellMar struct {
	Left  wWidth `xml:"w:left"`
	Right wWidth `xml:"w:right"`
}

type wSettings struct {
	XMLName        xml.Name `xml:"w:settings"`
	XmlnsW         string   `xml:"xmlns:w,attr"`
	Zoom           wZoom    `xml:"w:zoom"`
	DefaultTabStop wVal     `xml:"w:defaultTabStop"`
	CharSpacing    wVal     `xml:"w:characterSpacingControl"`
	Compat         wCompat  `xml:"w:compat"`
}

type wZoom struct {
	Percent int `xml:"w:percent,attr"`
}

type wCompat struct {
	Settings []wCompatSetting `xml:"w:compatSetting"`
}

type wCompatSetting struct {
	Name string `xml:"w:name,attr"`
	URI  string `xml:"w:uri,attr"`
	Val  string `xml:"w:val,attr"`
}

// Package-level parts outside the w: namespace.

type ctTypes struct {
	XMLName   xml.Name     `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type pkgRelationships struct {
	XMLName       xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []pkgRelationship `xml:"Relationship"`
}

type pkgRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type cpCoreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	Identifier     string   `xml:"dc:identifier,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int      `xml:"cp:revision"`
	Created        *dcDate  `xml:"dcterms:created,omitempty"`
	Modified       *dcDate  `xml:"dcterms:modified,omitempty"`
}

type dcDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type epProperties struct {
	XMLName     xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	Application string   `xml:"Application"`
	DocSecurity int      `xml:"DocSecurity"`
	Words       int      `xml:"Words"`
	Characters  int      `xml:"Characters"`
	Paragraphs  int      `xml:"Paragraphs"`
	AppVersion  string   `xml:"AppVersion"`
}
