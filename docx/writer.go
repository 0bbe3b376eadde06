package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mnaoum/minireport/model"
)

// zipEpoch is the earliest time a zip entry can record. Entries are
// stamped with it unless Options.ModTime is set, so identical documents
// produce identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options controls how a Writer builds the package.
type Options struct {
	// ModTime stamps every zip entry. Zero means zipEpoch.
	ModTime time.Time
	// Application is recorded in docProps/app.xml.
	Application string
}

// Writer renders a model.Document as a WordprocessingML package.
type Writer struct {
	doc  *model.Document
	opts Options
}

// NewWriter creates a Writer for doc.
func NewWriter(doc *model.Document, opts Options) *Writer {
	if opts.ModTime.IsZero() {
		opts.ModTime = zipEpoch
	}
	if opts.Application == "" {
		opts.Application = "minireport"
	}
	return &Writer{doc: doc, opts: opts}
}

// part is one named entry of the package.
type part struct {
	name string
	body any
}

// WriteTo writes the complete package to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if w.doc == nil {
		return 0, fmt.Errorf("no document to write")
	}
	if err := w.doc.Validate(); err != nil {
		return 0, fmt.Errorf("invalid document: %w", err)
	}

	section := w.doc.Section
	if section == nil {
		section = model.NewSection()
	}
	hasHeader := section.HeaderDisabled || len(section.Header) > 0
	hasFooter := len(section.Footer) > 0

	parts := []part{
		{partContentTypes, contentTypes(hasHeader, hasFooter)},
		{partRootRels, rootRelationships()},
		{partCore, coreProperties(w.doc.Metadata)},
		{partApp, appProperties(w.doc, w.opts.Application)},
		{partDocument, w.document(section, hasHeader, hasFooter)},
		{partStyles, styleSheet(w.doc.BaseFont)},
		{partSettings, settings()},
	}
	if hasHeader {
		parts = append(parts, part{partHeader, wHeader{
			XmlnsW:     nsW,
			XmlnsR:     nsR,
			Paragraphs: w.headerFooter(section.Header, "Header"),
		}})
	}
	if hasFooter {
		parts = append(parts, part{partFooter, wFooter{
			XmlnsW:     nsW,
			XmlnsR:     nsR,
			Paragraphs: w.headerFooter(section.Footer, "Footer"),
		}})
	}
	parts = append(parts, part{partDocumentRels, documentRelationships(hasHeader, hasFooter)})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		if err := w.writePart(zw, p); err != nil {
			return 0, err
		}
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("closing ZIP archive: %w", err)
	}

	return buf.WriteTo(out)
}

// Save writes the package to path, replacing any existing file. Nothing is
// written when the document fails to render.
func (w *Writer) Save(path string) error {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (w *Writer) writePart(zw *zip.Writer, p part) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     p.name,
		Method:   zip.Deflate,
		Modified: w.opts.ModTime,
	})
	if err != nil {
		return fmt.Errorf("creating %s: %w", p.name, err)
	}
	if _, err := io.WriteString(fw, xml.Header); err != nil {
		return fmt.Errorf("writing %s: %w", p.name, err)
	}
	if err := xml.NewEncoder(fw).Encode(p.body); err != nil {
		return fmt.Errorf("marshaling %s: %w", p.name, err)
	}
	return nil
}

// document builds word/document.xml.
func (w *Writer) document(s *model.Section, hasHeader, hasFooter bool) wDocument {
	d := wDocument{XmlnsW: nsW, XmlnsR: nsR}
	for _, elem := range w.doc.Body {
		if x := w.element(elem, s); x != nil {
			d.Body.Content = append(d.Body.Content, x)
		}
	}

	sp := wSectPr{
		PgSz: wPgSz{W: s.Page.Width.Twips(), H: s.Page.Height.Twips()},
		PgMar: wPgMar{
			Top:    s.Margins.Top.Twips(),
			Right:  s.Margins.Right.Twips(),
			Bottom: s.Margins.Bottom.Twips(),
			Left:   s.Margins.Left.Twips(),
			Header: s.HeaderDistance.Twips(),
			Footer: s.FooterDistance.Twips(),
		},
		Cols:    wCols{Space: 720},
		DocGrid: wDocGrid{LinePitch: 360},
	}
	if s.Page.Landscape() {
		sp.PgSz.Orient = "landscape"
	}
	if hasHeader {
		sp.HeaderRefs = []wHdrFtrRef{{Type: "default", ID: ridHeader}}
	}
	if hasFooter {
		sp.FooterRefs = []wHdrFtrRef{{Type: "default", ID: ridFooter}}
	}
	d.Body.SectPr = sp
	return d
}

// headerFooter renders header or footer content. Word requires at least
// one paragraph in each part, so empty content yields an empty paragraph.
func (w *Writer) headerFooter(elems []model.Element, styleID string) []wParagraph {
	var paras []wParagraph
	for _, elem := range elems {
		switch e := elem.(type) {
		case *model.Paragraph:
			p := *e
			if p.StyleID == "" {
				p.StyleID = styleID
			}
			paras = append(paras, paragraph(&p))
		case *model.Heading:
			paras = append(paras, heading(e))
		}
	}
	if len(paras) == 0 {
		paras = append(paras, wParagraph{PPr: &wPPr{Style: &wVal{Val: styleID}}})
	}
	return paras
}

func (w *Writer) element(elem model.Element, s *model.Section) any {
	switch e := elem.(type) {
	case *model.Heading:
		return heading(e)
	case *model.Paragraph:
		return paragraph(e)
	case *model.Table:
		return table(e, s.ContentWidth())
	default:
		return nil
	}
}

func heading(h *model.Heading) wParagraph {
	return wParagraph{
		PPr:  &wPPr{Style: &wVal{Val: h.StyleID()}},
		Runs: []wRun{{Content: textContent(h.Text)}},
	}
}

func paragraph(p *model.Paragraph) wParagraph {
	wp := wParagraph{PPr: paragraphProps(p.StyleID, p.Alignment, p.LineSpacing)}
	for _, r := range p.Runs {
		wp.Runs = append(wp.Runs, run(r))
	}
	return wp
}

// paragraphProps returns nil when nothing overrides the style.
func paragraphProps(styleID string, align model.TextAlignment, lineSpacing float64) *wPPr {
	ppr := &wPPr{}
	if styleID != "" {
		ppr.Style = &wVal{Val: styleID}
	}
	if lineSpacing > 0 {
		ppr.Spacing = &wSpacing{
			Line:     strconv.Itoa(int(lineSpacing*240 + 0.5)),
			LineRule: "auto",
		}
	}
	if jc := jcVal(align); jc != "" {
		ppr.Jc = &wVal{Val: jc}
	}
	if ppr.Style == nil && ppr.Spacing == nil && ppr.Jc == nil {
		return nil
	}
	return ppr
}

func jcVal(a model.TextAlignment) string {
	switch a {
	case model.AlignLeft:
		return "left"
	case model.AlignCenter:
		return "center"
	case model.AlignRight:
		return "right"
	case model.AlignJustify:
		return "both"
	default:
		return ""
	}
}

// run renders a text run, or a complex field as the begin / instruction /
// end triple inside a single run.
func run(r model.Run) wRun {
	wr := wRun{RPr: runProps(r.Style, r.Font)}
	if r.Field != nil {
		wr.Content = []any{
			wFldChar{Type: "begin"},
			wInstrText{Space: "preserve", Value: r.Field.Instruction},
			wFldChar{Type: "end"},
		}
		return wr
	}
	wr.Content = textContent(r.Text)
	return wr
}

func runProps(style model.TextStyle, font model.Font) *wRPr {
	rpr := &wRPr{}
	if font.Name != "" {
		name := cleanText(font.Name)
		rpr.Fonts = &wFonts{ASCII: name, HAnsi: name}
	}
	if style.Bold {
		rpr.Bold = &wEmpty{}
	}
	if style.Italic {
		rpr.Italic = &wEmpty{}
	}
	if font.Size > 0 {
		hp := strconv.Itoa(font.Size.HalfPoints())
		rpr.Size = &wVal{Val: hp}
		rpr.SizeCs = &wVal{Val: hp}
	}
	if style.Underline {
		rpr.Underline = &wVal{Val: "single"}
	}
	if *rpr == (wRPr{}) {
		return nil
	}
	return rpr
}

// table renders a table whose columns share width unless ColWidths is set.
func table(t *model.Table, available model.Length) wTable {
	cols := t.ColCount()
	widths := make([]int, cols)
	for i := range widths {
		if i < len(t.ColWidths) && t.ColWidths[i] > 0 {
			widths[i] = t.ColWidths[i].Twips()
		} else if cols > 0 {
			widths[i] = available.Twips() / cols
		}
	}

	wt := wTable{
		TblPr: wTblPr{
			Width: wWidth{W: 0, Type: "auto"},
			Look:  wTblLook{Val: "04A0"},
		},
	}
	if t.StyleName != "" {
		wt.TblPr.Style = &wVal{Val: styleIDFromName(t.StyleName)}
	}
	for _, w := range widths {
		wt.Grid.Cols = append(wt.Grid.Cols, wGridCol{W: w})
	}

	headerRows := t.HeaderRows()
	for i, row := range t.Rows {
		wr := wRow{}
		if i < headerRows {
			wr.TrPr = &wTrPr{TblHeader: &wEmpty{}}
		}
		for j, c := range row {
			wp := wParagraph{PPr: paragraphProps("", c.Alignment, c.LineSpacing)}
			if c.Text != "" {
				wp.Runs = []wRun{run(model.Run{Text: c.Text, Style: c.Style, Font: c.Font})}
			}
			wr.Cells = append(wr.Cells, wCell{
				TcPr:       wTcPr{Width: wWidth{W: widths[j], Type: "dxa"}},
				Paragraphs: []wParagraph{wp},
			})
		}
		wt.Rows = append(wt.Rows, wr)
	}
	return wt
}

// styleIDFromName derives a style ID from its display name the way Word
// does for built-in styles ("Table Grid" -> "TableGrid").
func styleIDFromName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
