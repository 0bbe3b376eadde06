package docx

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mnaoum/minireport/model"
)

// Part names and content types of the package.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partSettings     = "word/settings.xml"
	partHeader       = "word/header1.xml"
	partFooter       = "word/footer1.xml"
	partDocumentRels = "word/_rels/document.xml.rels"

	ctRels     = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML      = "application/xml"
	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctHeader   = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	ctFooter   = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	ctCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relHeader         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"

	// Relationship IDs inside word/_rels/document.xml.rels.
	ridStyles   = "rId1"
	ridSettings = "rId2"
	ridHeader   = "rId3"
	ridFooter   = "rId4"
)

// identifierNamespace scopes document identifiers derived from titles.
var identifierNamespace = uuid.MustParse("6f1d5d3e-8a43-4c6e-9a4b-7f3c2b1e0d59")

// DocumentIdentifier returns the identifier written to the core
// properties: the metadata identifier when set, otherwise a name-based
// UUID over the title so the same document always gets the same ID.
func DocumentIdentifier(meta model.Metadata) string {
	if meta.Identifier != "" {
		return meta.Identifier
	}
	return uuid.NewSHA1(identifierNamespace, []byte(meta.Title)).String()
}

func contentTypes(hasHeader, hasFooter bool) ctTypes {
	ct := ctTypes{
		Defaults: []ctDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []ctOverride{
			{PartName: "/" + partDocument, ContentType: ctDocument},
			{PartName: "/" + partStyles, ContentType: ctStyles},
			{PartName: "/" + partSettings, ContentType: ctSettings},
		},
	}
	if hasHeader {
		ct.Overrides = append(ct.Overrides, ctOverride{PartName: "/" + partHeader, ContentType: ctHeader})
	}
	if hasFooter {
		ct.Overrides = append(ct.Overrides, ctOverride{PartName: "/" + partFooter, ContentType: ctFooter})
	}
	ct.Overrides = append(ct.Overrides,
		ctOverride{PartName: "/" + partCore, ContentType: ctCore},
		ctOverride{PartName: "/" + partApp, ContentType: ctApp},
	)
	return ct
}

func rootRelationships() pkgRelationships {
	return pkgRelationships{Relationships: []pkgRelationship{
		{ID: "rId1", Type: relOfficeDocument, Target: partDocument},
		{ID: "rId2", Type: relCoreProps, Target: partCore},
		{ID: "rId3", Type: relExtendedProps, Target: partApp},
	}}
}

func documentRelationships(hasHeader, hasFooter bool) pkgRelationships {
	rels := pkgRelationships{Relationships: []pkgRelationship{
		{ID: ridStyles, Type: relStyles, Target: "styles.xml"},
		{ID: ridSettings, Type: relSettings, Target: "settings.xml"},
	}}
	if hasHeader {
		rels.Relationships = append(rels.Relationships, pkgRelationship{ID: ridHeader, Type: relHeader, Target: "header1.xml"})
	}
	if hasFooter {
		rels.Relationships = append(rels.Relationships, pkgRelationship{ID: ridFooter, Type: relFooter, Target: "footer1.xml"})
	}
	return rels
}

func coreProperties(meta model.Metadata) cpCoreProperties {
	cp := cpCoreProperties{
		XmlnsCP:        nsCP,
		XmlnsDC:        nsDC,
		XmlnsDCTerms:   nsDCT,
		XmlnsXSI:       nsXSI,
		Title:          cleanText(meta.Title),
		Subject:        cleanText(meta.Subject),
		Creator:        cleanText(meta.Author),
		Keywords:       cleanText(strings.Join(meta.Keywords, ", ")),
		Identifier:     DocumentIdentifier(meta),
		LastModifiedBy: cleanText(meta.Author),
		Revision:       1,
	}
	if !meta.CreationDate.IsZero() {
		cp.Created = w3cdtf(meta.CreationDate)
	}
	switch {
	case !meta.ModDate.IsZero():
		cp.Modified = w3cdtf(meta.ModDate)
	case cp.Created != nil:
		cp.Modified = w3cdtf(meta.CreationDate)
	}
	return cp
}

func w3cdtf(t time.Time) *dcDate {
	return &dcDate{Type: "dcterms:W3CDTF", Value: t.UTC().Format("2006-01-02T15:04:05Z")}
}

func appProperties(doc *model.Document, application string) epProperties {
	text := doc.ExtractText()
	paragraphs := 0
	for _, e := range doc.Body {
		if e.Type() != model.ElementTypeTable {
			paragraphs++
		}
	}
	return epProperties{
		Application: application,
		Words:       len(strings.Fields(text)),
		Characters:  len([]rune(strings.Join(strings.Fields(text), ""))),
		Paragraphs:  paragraphs,
		AppVersion:  "16.0000",
	}
}

func settings() wSettings {
	return wSettings{
		XmlnsW:         nsW,
		Zoom:           wZoom{Percent: 100},
		DefaultTabStop: wVal{Val: "720"},
		CharSpacing:    wVal{Val: "doNotCompress"},
		Compat: wCompat{Settings: []wCompatSetting{
			{Name: "compatibilityMode", URI: "http://schemas.microsoft.com/office/word", Val: "15"},
		}},
	}
}

// headingStyle describes one built-in heading style.
type headingStyle struct {
	id, name   string
	size       int // half-points
	before     string
	outlineLvl string
}

var headingStyles = []headingStyle{
	{"Title", "Title", 56, "", ""},
	{"Heading1", "heading 1", 32, "480", "0"},
	{"Heading2", "heading 2", 26, "200", "1"},
	{"Heading3", "heading 3", 24, "200", "2"},
	{"Heading4", "heading 4", 24, "200", "3"},
	{"Heading5", "heading 5", 22, "200", "4"},
	{"Heading6", "heading 6", 22, "200", "5"},
	{"Heading7", "heading 7", 22, "200", "6"},
	{"Heading8", "heading 8", 20, "200", "7"},
	{"Heading9", "heading 9", 20, "200", "8"},
}

// styleSheet builds word/styles.xml. The "Normal" style carries the
// document's base font on the ascii, hAnsi and eastAsia slots.
func styleSheet(base model.Font) wStyles {
	normal := &wRPr{}
	if base.Name != "" {
		name := cleanText(base.Name)
		normal.Fonts = &wFonts{ASCII: name, HAnsi: name, EastAsia: name}
	}
	if base.Size > 0 {
		hp := strconv.Itoa(base.Size.HalfPoints())
		normal.Size = &wVal{Val: hp}
		normal.SizeCs = &wVal{Val: hp}
	}

	ss := wStyles{
		XmlnsW: nsW,
		DocDefaults: wDocDefaults{
			RPr: wRPr{
				Fonts:  &wFonts{ASCII: "Calibri", HAnsi: "Calibri", EastAsia: "Calibri", CS: "Times New Roman"},
				Size:   &wVal{Val: "22"},
				SizeCs: &wVal{Val: "22"},
			},
			PPr: wPPr{Spacing: &wSpacing{After: "200", Line: "276", LineRule: "auto"}},
		},
	}

	ss.Styles = append(ss.Styles,
		wStyle{
			Type: "paragraph", Default: "1", StyleID: "Normal",
			Name: wVal{Val: "Normal"}, QFormat: &wEmpty{},
			RPr: normal,
		},
		wStyle{
			Type: "character", Default: "1", StyleID: "DefaultParagraphFont",
			Name: wVal{Val: "Default Paragraph Font"}, UIPriority: &wVal{Val: "1"},
		},
		wStyle{
			Type: "table", Default: "1", StyleID: "TableNormal",
			Name: wVal{Val: "Normal Table"}, UIPriority: &wVal{Val: "99"},
			TblPr: &wStyleTblPr{CellMar: &wCellMar{
				Left:  wWidth{W: 108, Type: "dxa"},
				Right: wWidth{W: 108, Type: "dxa"},
			}},
		},
	)

	for _, h := range headingStyles {
		st := wStyle{
			Type: "paragraph", StyleID: h.id,
			Name: wVal{Val: h.name}, BasedOn: &wVal{Val: "Normal"}, Next: &wVal{Val: "Normal"},
			UIPriority: &wVal{Val: "9"}, QFormat: &wEmpty{},
			PPr: &wPPr{},
			RPr: &wRPr{
				Bold:   &wEmpty{},
				Color:  &wVal{Val: "365F91"},
				Size:   &wVal{Val: strconv.Itoa(h.size)},
				SizeCs: &wVal{Val: strconv.Itoa(h.size)},
			},
		}
		if h.id == "Title" {
			st.UIPriority = &wVal{Val: "10"}
			st.RPr.Bold = nil
			st.RPr.Color = &wVal{Val: "17365D"}
			st.PPr.Spacing = &wSpacing{After: "300", Line: "240", LineRule: "auto"}
		} else {
			st.PPr.KeepNext = &wEmpty{}
			st.PPr.Spacing = &wSpacing{Before: h.before, After: "0"}
			st.PPr.OutlineLvl = &wVal{Val: h.outlineLvl}
		}
		ss.Styles = append(ss.Styles, st)
	}

	border := wBorder{Val: "single", Sz: 4, Space: 0, Color: "auto"}
	ss.Styles = append(ss.Styles,
		wStyle{
			Type: "table", StyleID: "TableGrid",
			Name: wVal{Val: "Table Grid"}, BasedOn: &wVal{Val: "TableNormal"},
			UIPriority: &wVal{Val: "59"},
			PPr:        &wPPr{Spacing: &wSpacing{After: "0", Line: "240", LineRule: "auto"}},
			TblPr: &wStyleTblPr{Borders: &wTblBorders{
				Top: border, Left: border, Bottom: border, Right: border,
				InsideH: border, InsideV: border,
			}},
		},
		wStyle{
			Type: "paragraph", StyleID: "Header",
			Name: wVal{Val: "header"}, BasedOn: &wVal{Val: "Normal"},
			UIPriority: &wVal{Val: "99"},
			PPr:        &wPPr{Spacing: &wSpacing{After: "0", Line: "240", LineRule: "auto"}},
		},
		wStyle{
			Type: "paragraph", StyleID: "Footer",
			Name: wVal{Val: "footer"}, BasedOn: &wVal{Val: "Normal"},
			UIPriority: &wVal{Val: "99"},
			PPr:        &wPPr{Spacing: &wSpacing{After: "0", Line: "240", LineRule: "auto"}},
		},
	)

	return ss
}
