package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkg = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsDC  = "http://purl.org/dc/elements/1.1/"
	nsDCT = "http://purl.org/dc/terms/"
	nsCP  = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsXSI = "http://www.w3.org/2001/XMLSchema-instance"
	nsEP  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

// The types in this file describe the read side of WordprocessingML.
// They match on local names so both prefixed and default-namespace
// documents unmarshal the same way.

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
// Paragraphs and Tables are collected separately; Elements keeps the
// document order and is filled by UnmarshalXML.
type bodyXML struct {
	Paragraphs []paragraphXML
	Tables     []tableXML
	Elements   []bodyElement
	SectPr     *sectPrXML
}

// bodyElement represents an element in the document body (paragraph or table).
type bodyElement struct {
	Type      string // "paragraph" or "table"
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML decodes the body children in order.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Paragraphs = append(b.Paragraphs, p)
				b.Elements = append(b.Elements, bodyElement{Type: "paragraph", Paragraph: &b.Paragraphs[len(b.Paragraphs)-1]})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Tables = append(b.Tables, tbl)
				b.Elements = append(b.Elements, bodyElement{Type: "table", Table: &b.Tables[len(b.Tables)-1]})
			case "sectPr":
				b.SectPr = &sectPrXML{}
				if err := d.DecodeElement(b.SectPr, &t); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			// Slices may have been reallocated while appending; rebind pointers.
			pi, ti := 0, 0
			for i := range b.Elements {
				switch b.Elements[i].Type {
				case "paragraph":
					b.Elements[i].Paragraph = &b.Paragraphs[pi]
					pi++
				case "table":
					b.Elements[i].Table = &b.Tables[ti]
					ti++
				}
			}
			return nil
		}
	}
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	HeaderRefs []hdrFtrRefXML `xml:"headerReference"`
	FooterRefs []hdrFtrRefXML `xml:"footerReference"`
	PgSz       pgSzXML        `xml:"pgSz"`
	PgMar      pgMarXML       `xml:"pgMar"`
}

// hdrFtrRefXML references a header or footer part by relationship ID.
type hdrFtrRefXML struct {
	Type string `xml:"type,attr"` // default, first, even
	ID   string `xml:"id,attr"`
}

// pgSzXML represents page size in twips.
type pgSzXML struct {
	W      string `xml:"w,attr"`
	H      string `xml:"h,attr"`
	Orient string `xml:"orient,attr"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Right  string `xml:"right,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Header string `xml:"header,attr"`
	Footer string `xml:"footer,attr"`
	Gutter string `xml:"gutter,attr"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
	Spacing       spacingXML       `xml:"spacing"`
	Indent        indentXML        `xml:"ind"`
	OutlineLvl    outlineLvlXML    `xml:"outlineLvl"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing.
type spacingXML struct {
	Before   string `xml:"before,attr"`   // Space before in twips
	After    string `xml:"after,attr"`    // Space after in twips
	Line     string `xml:"line,attr"`     // Line spacing
	LineRule string `xml:"lineRule,attr"` // auto (240ths of a line), exact, atLeast
}

// indentXML represents paragraph indentation.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>).
// Content keeps text, tabs, breaks and field markers in document order,
// which matters for runs such as "line<w:br/>line" and complex fields.
type runXML struct {
	XMLName    xml.Name
	Properties runPropsXML
	Content    []runContent
}

// runContentKind identifies a child of a run.
type runContentKind int

const (
	contentText runContentKind = iota
	contentTab
	contentBreak
	contentFldChar
	contentInstrText
)

// runContent is one child of a run. Value holds text for text and
// instruction content, and the type attribute for breaks and field chars.
type runContent struct {
	Kind  runContentKind
	Value string
}

// UnmarshalXML decodes run properties and the ordered run content.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r.XMLName = start.Name
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var err error
			switch t.Name.Local {
			case "rPr":
				err = d.DecodeElement(&r.Properties, &t)
			case "t":
				var tx textXML
				err = d.DecodeElement(&tx, &t)
				r.Content = append(r.Content, runContent{Kind: contentText, Value: tx.Value})
			case "instrText":
				var it instrTextXML
				err = d.DecodeElement(&it, &t)
				r.Content = append(r.Content, runContent{Kind: contentInstrText, Value: it.Value})
			case "tab":
				err = d.Skip()
				r.Content = append(r.Content, runContent{Kind: contentTab})
			case "br":
				var br breakXML
				err = d.DecodeElement(&br, &t)
				r.Content = append(r.Content, runContent{Kind: contentBreak, Value: br.Type})
			case "fldChar":
				var fc fldCharXML
				err = d.DecodeElement(&fc, &t)
				r.Content = append(r.Content, runContent{Kind: contentFldChar, Value: fc.Type})
			default:
				err = d.Skip()
			}
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      boolXML      `xml:"b"`
	Italic    boolXML      `xml:"i"`
	Underline underlineXML `xml:"u"`
	Strike    boolXML      `xml:"strike"`
	FontSize  sizeXML      `xml:"sz"`
	Font      fontXML      `xml:"rFonts"`
	Color     colorXML     `xml:"color"`
}

// boolXML represents a boolean attribute.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// on reports whether a toggle property is present and not switched off.
func (b boolXML) on() bool {
	return b.XMLName.Local != "" && b.Val != "false" && b.Val != "0"
}

// underlineXML represents underline style.
type underlineXML struct {
	Val string `xml:"val,attr"` // single, double, etc.
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// colorXML represents text color.
type colorXML struct {
	Val string `xml:"val,attr"` // Hex color or "auto"
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// breakXML represents a break (line or page).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"` // page, column, textWrapping
}

// fldCharXML marks the begin, separate or end of a complex field.
type fldCharXML struct {
	Type string `xml:"fldCharType,attr"`
}

// instrTextXML holds a complex field's instruction (" PAGE ").
type instrTextXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"tbl"`
	Properties tablePropsXML `xml:"tblPr"`
	Grid       tableGridXML  `xml:"tblGrid"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style   styleRefXML     `xml:"tblStyle"`
	Width   tableSizeXML    `xml:"tblW"`
	Borders tableBordersXML `xml:"tblBorders"`
}

// tableSizeXML represents table/cell size.
type tableSizeXML struct {
	W    string `xml:"w,attr"`    // Width value
	Type string `xml:"type,attr"` // dxa (twips), pct, auto
}

// tableBordersXML represents table borders.
type tableBordersXML struct {
	Top     borderXML `xml:"top"`
	Bottom  borderXML `xml:"bottom"`
	Left    borderXML `xml:"left"`
	Right   borderXML `xml:"right"`
	InsideH borderXML `xml:"insideH"`
	InsideV borderXML `xml:"insideV"`
}

// borderXML represents a single border.
type borderXML struct {
	Val   string `xml:"val,attr"`   // Border style: single, double, etc.
	Sz    string `xml:"sz,attr"`    // Size in eighths of a point
	Space string `xml:"space,attr"` // Space from text
	Color string `xml:"color,attr"` // Color
}

// tableGridXML represents table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

// gridColXML represents a grid column.
type gridColXML struct {
	W string `xml:"w,attr"` // Width in twips
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName    xml.Name       `xml:"tr"`
	Properties rowPropsXML    `xml:"trPr"`
	Cells      []tableCellXML `xml:"tc"`
}

// rowPropsXML represents row properties.
type rowPropsXML struct {
	Header boolXML `xml:"tblHeader"` // Is this a header row?
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	Width    tableSizeXML `xml:"tcW"`
	GridSpan gridSpanXML  `xml:"gridSpan"`
}

// gridSpanXML represents column span.
type gridSpanXML struct {
	Val string `xml:"val,attr"` // Number of columns spanned
}

// headerXML represents the structure of word/header*.xml files (<w:hdr>).
type headerXML struct {
	XMLName    xml.Name       `xml:"hdr"`
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}

// footerXML represents the structure of word/footer*.xml files (<w:ftr>).
type footerXML struct {
	XMLName    xml.Name       `xml:"ftr"`
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}
