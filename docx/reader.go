package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/mnaoum/minireport/model"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.Reader
	closer    io.Closer
	document  *documentXML
	styles    *stylesXML
	rels      *relationshipsXML
	coreProps *corePropertiesXML
	appProps  *appPropertiesXML
	resolver  *StyleResolver

	body    []BodyElement
	section Section
	header  []ParsedParagraph
	footer  []ParsedParagraph
}

// BodyElement is a paragraph or a table in document order.
type BodyElement struct {
	Paragraph *ParsedParagraph
	Table     *ParsedTable
}

// ParsedParagraph holds a parsed paragraph with resolved styles.
type ParsedParagraph struct {
	Text        string
	StyleID     string
	StyleName   string
	IsHeading   bool
	Level       int    // heading level (1-9), 0 for the title or non-headings
	Alignment   string // left, center, right, both
	LineSpacing float64
	Runs        []ParsedRun
	Fields      []ParsedField
}

// ParsedRun holds a parsed text run.
type ParsedRun struct {
	Text     string
	Bold     bool
	Italic   bool
	FontName string // direct formatting only; empty when inherited
	FontSize float64
	// Field is set on the run that closes a complete field; Text is empty.
	Field *ParsedField
}

// ParsedField is a complex field (fldChar begin / instrText / fldChar end).
type ParsedField struct {
	Instruction string
	// Complete reports that both the begin and end markers were found.
	Complete bool
}

// Section holds the page geometry of the document's final section.
type Section struct {
	Page      model.PageSize
	Margins   model.Margins
	HasHeader bool
	HasFooter bool
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// OpenReader reads a DOCX package from an io.ReaderAt of the given size.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		zipReader: zr,
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	// Relationships first (needed for header and footer parts)
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	// Styles are optional; without them the resolver falls back to Word defaults
	_ = r.parseStyles()
	r.resolver = NewStyleResolver(r.styles)

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	for _, name := range required {
		if r.getFile(name) == nil {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.getFile(name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// getFile returns a zip.File by name.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Parts returns the names of all parts in the package, in archive order.
func (r *Reader) Parts() []string {
	names := make([]string, len(r.zipReader.File))
	for i, f := range r.zipReader.File {
		names[i] = f.Name
	}
	return names
}

// Body returns the paragraphs and tables of the document in order.
func (r *Reader) Body() []BodyElement {
	return r.body
}

// Paragraphs returns all body paragraphs, including headings but not
// paragraphs inside tables.
func (r *Reader) Paragraphs() []ParsedParagraph {
	var paras []ParsedParagraph
	for _, e := range r.body {
		if e.Paragraph != nil {
			paras = append(paras, *e.Paragraph)
		}
	}
	return paras
}

// Headings returns the body paragraphs that use a heading style.
func (r *Reader) Headings() []ParsedParagraph {
	var headings []ParsedParagraph
	for _, p := range r.Paragraphs() {
		if p.IsHeading {
			headings = append(headings, p)
		}
	}
	return headings
}

// Tables returns all body tables in order.
func (r *Reader) Tables() []ParsedTable {
	var tables []ParsedTable
	for _, e := range r.body {
		if e.Table != nil {
			tables = append(tables, *e.Table)
		}
	}
	return tables
}

// Section returns the page geometry of the document.
func (r *Reader) Section() Section {
	return r.section
}

// Header returns the paragraphs of the default header part.
func (r *Reader) Header() []ParsedParagraph {
	return r.header
}

// Footer returns the paragraphs of the default footer part.
func (r *Reader) Footer() []ParsedParagraph {
	return r.footer
}

// Styles returns the style resolver built from word/styles.xml.
func (r *Reader) Styles() *StyleResolver {
	return r.resolver
}

// Text extracts and returns all body text. Tables are rendered with tab
// separated cells.
func (r *Reader) Text() (string, error) {
	if r.document == nil {
		return "", fmt.Errorf("document not parsed")
	}

	var result strings.Builder
	for i, e := range r.body {
		if i > 0 {
			result.WriteString("\n")
			if e.Paragraph != nil && e.Paragraph.IsHeading {
				result.WriteString("\n") // Extra blank line before headings
			}
		}
		if e.Paragraph != nil {
			result.WriteString(e.Paragraph.Text)
		} else {
			result.WriteString(e.Table.ToText())
		}
	}

	return result.String(), nil
}

// Document returns a model.Document representation of the DOCX content.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	doc.Section.Page = r.section.Page
	doc.Section.Margins = r.section.Margins

	normal := r.resolver.DefaultParagraphStyle()
	doc.BaseFont = model.Font{Name: normal.FontName, Size: model.Pt(normal.FontSize)}

	for _, e := range r.body {
		switch {
		case e.Table != nil:
			doc.Add(e.Table.ToModelTable())
		case e.Paragraph.IsHeading:
			doc.Add(model.NewHeading(e.Paragraph.Level, e.Paragraph.Text))
		default:
			doc.Add(e.Paragraph.toModel())
		}
	}
	for _, p := range r.footer {
		doc.Section.AddFooter(p.toModel())
	}
	if r.section.HasHeader && headerEmpty(r.header) {
		doc.Section.DisableHeader()
	}

	return doc, nil
}

// headerEmpty reports whether no header paragraph carries text.
func headerEmpty(paras []ParsedParagraph) bool {
	for _, p := range paras {
		if p.Text != "" {
			return false
		}
	}
	return true
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{Custom: make(map[string]string)}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		meta.Identifier = r.coreProps.Identifier
		if r.coreProps.Keywords != "" {
			meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
			for i, kw := range meta.Keywords {
				meta.Keywords[i] = strings.TrimSpace(kw)
			}
		}
	}
	if r.appProps != nil {
		meta.Creator = r.appProps.Application
	}
	return meta
}

// parseRelationships parses the document relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("word/_rels/document.xml.rels")
	if err != nil {
		// Relationships file is optional
		return nil
	}

	r.rels = &relationshipsXML{}
	return xml.Unmarshal(data, r.rels)
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() error {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return err
	}

	r.styles = &stylesXML{}
	return xml.Unmarshal(data, r.styles)
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	if r.document.Body == nil {
		return nil
	}

	tp := NewTableParser(r.resolver)
	for _, e := range r.document.Body.Elements {
		switch e.Type {
		case "paragraph":
			p := parseParagraph(*e.Paragraph, r.resolver)
			r.body = append(r.body, BodyElement{Paragraph: &p})
		case "table":
			t := tp.ParseTable(*e.Table)
			r.body = append(r.body, BodyElement{Table: &t})
		}
	}

	if sp := r.document.Body.SectPr; sp != nil {
		r.section = parseSection(sp)
		if ref := defaultRef(sp.HeaderRefs); ref != "" {
			r.header = r.parseHeaderFooter(ref, true)
		}
		if ref := defaultRef(sp.FooterRefs); ref != "" {
			r.footer = r.parseHeaderFooter(ref, false)
		}
	}

	return nil
}

// parseHeaderFooter reads the header or footer part a relationship points at.
func (r *Reader) parseHeaderFooter(relID string, header bool) []ParsedParagraph {
	target := r.rels.target(relID)
	if target == "" {
		return nil
	}
	data, err := r.getFileContent(path.Join("word", target))
	if err != nil {
		return nil
	}

	var paras []paragraphXML
	if header {
		var h headerXML
		if xml.Unmarshal(data, &h) != nil {
			return nil
		}
		paras = h.Paragraphs
		r.section.HasHeader = true
	} else {
		var f footerXML
		if xml.Unmarshal(data, &f) != nil {
			return nil
		}
		paras = f.Paragraphs
		r.section.HasFooter = true
	}

	parsed := make([]ParsedParagraph, 0, len(paras))
	for _, p := range paras {
		parsed = append(parsed, parseParagraph(p, r.resolver))
	}
	return parsed
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	r.coreProps = &corePropertiesXML{}
	if xml.Unmarshal(data, r.coreProps) != nil {
		r.coreProps = nil
	}
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	r.appProps = &appPropertiesXML{}
	if xml.Unmarshal(data, r.appProps) != nil {
		r.appProps = nil
	}
}

// defaultRef returns the relationship ID of the default header/footer reference.
func defaultRef(refs []hdrFtrRefXML) string {
	for _, ref := range refs {
		if ref.Type == "" || ref.Type == "default" {
			return ref.ID
		}
	}
	return ""
}

// parseSection converts section properties into page geometry.
func parseSection(sp *sectPrXML) Section {
	return Section{
		Page: model.PageSize{
			Width:  twipsLength(sp.PgSz.W),
			Height: twipsLength(sp.PgSz.H),
		},
		Margins: model.Margins{
			Top:    twipsLength(sp.PgMar.Top),
			Right:  twipsLength(sp.PgMar.Right),
			Bottom: twipsLength(sp.PgMar.Bottom),
			Left:   twipsLength(sp.PgMar.Left),
		},
	}
}

// twipsLength parses a twips attribute into a model.Length.
func twipsLength(s string) model.Length {
	tw, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return model.Twips(tw)
}

// parseParagraph processes a single paragraph: runs, fields, style and
// direct paragraph formatting.
func parseParagraph(p paragraphXML, sr *StyleResolver) ParsedParagraph {
	parsed := ParsedParagraph{
		StyleID: p.Properties.Style.Val,
	}

	if sr != nil {
		style := sr.Resolve(parsed.StyleID)
		if parsed.StyleID == "" {
			style = sr.DefaultParagraphStyle()
		}
		parsed.StyleName = style.Name
		parsed.IsHeading = style.IsHeading
		parsed.Level = style.HeadingLevel
		parsed.Alignment = style.Alignment
		parsed.LineSpacing = style.LineSpacing
	}

	// Direct formatting overrides the style
	if p.Properties.Justification.Val != "" {
		parsed.Alignment = p.Properties.Justification.Val
	}
	if p.Properties.Spacing.Line != "" {
		parsed.LineSpacing, _ = parseLineSpacing(p.Properties.Spacing.Line, p.Properties.Spacing.LineRule)
	}

	var text strings.Builder
	var field *ParsedField
	for _, run := range p.Runs {
		var runText strings.Builder
		flush := func() {
			if runText.Len() == 0 {
				return
			}
			text.WriteString(runText.String())
			parsed.Runs = append(parsed.Runs, ParsedRun{
				Text:     runText.String(),
				Bold:     run.Properties.Bold.on(),
				Italic:   run.Properties.Italic.on(),
				FontName: run.Properties.Font.ASCII,
				FontSize: parseHalfPoints(run.Properties.FontSize.Val),
			})
			runText.Reset()
		}

		for _, c := range run.Content {
			switch c.Kind {
			case contentText:
				runText.WriteString(c.Value)
			case contentTab:
				runText.WriteString("\t")
			case contentBreak:
				if c.Value == "page" {
					runText.WriteString("\n\n")
				} else {
					runText.WriteString("\n")
				}
			case contentFldChar:
				switch c.Value {
				case "begin":
					field = &ParsedField{}
				case "end":
					if field != nil {
						field.Complete = true
						parsed.Fields = append(parsed.Fields, *field)
						flush()
						parsed.Runs = append(parsed.Runs, ParsedRun{Field: field})
						field = nil
					}
				}
			case contentInstrText:
				if field != nil {
					field.Instruction += c.Value
				}
			}
		}
		flush()
	}
	parsed.Text = text.String()

	return parsed
}

// toModel converts a parsed paragraph back into the content model.
func (p ParsedParagraph) toModel() *model.Paragraph {
	mp := &model.Paragraph{
		Alignment:   alignmentFromVal(p.Alignment),
		LineSpacing: p.LineSpacing,
	}
	for _, r := range p.Runs {
		if r.Field != nil {
			mp.Runs = append(mp.Runs, model.Run{Field: &model.Field{
				Kind:        fieldKind(r.Field.Instruction),
				Instruction: r.Field.Instruction,
			}})
			continue
		}
		mp.Runs = append(mp.Runs, model.Run{
			Text:  r.Text,
			Style: model.TextStyle{Bold: r.Bold, Italic: r.Italic},
			Font:  model.Font{Name: r.FontName, Size: model.Pt(r.FontSize)},
		})
	}
	return mp
}

// alignmentFromVal maps a w:jc value to a model alignment.
func alignmentFromVal(val string) model.TextAlignment {
	switch val {
	case "left", "start":
		return model.AlignLeft
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both", "distribute":
		return model.AlignJustify
	default:
		return model.AlignDefault
	}
}

// fieldKind classifies a field instruction by its first word.
func fieldKind(instr string) model.FieldKind {
	switch strings.ToUpper(strings.Fields(instr + " x")[0]) {
	case "PAGE":
		return model.FieldPage
	case "NUMPAGES":
		return model.FieldNumPages
	default:
		return 0
	}
}
