package model

import (
	"strings"
	"time"
)

// Document represents a complete report ready to be rendered
type Document struct {
	Metadata Metadata
	Section  *Section
	// BaseFont is applied to the "Normal" paragraph style and therefore to
	// every paragraph that does not override it.
	BaseFont Font
	Body     []Element
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string
	// Identifier is a stable document ID written to the core properties.
	Identifier   string
	CreationDate time.Time
	ModDate      time.Time
	// Custom metadata
	Custom map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Section:  NewSection(),
		BaseFont: Font{Name: "Calibri", Size: Pt(11)},
		Body:     make([]Element, 0),
	}
}

// Add appends an element to the body
func (d *Document) Add(elem Element) {
	d.Body = append(d.Body, elem)
}

// AddHeading appends a heading and returns it
func (d *Document) AddHeading(level int, text string) *Heading {
	h := NewHeading(level, text)
	d.Add(h)
	return h
}

// AddParagraph appends a plain paragraph and returns it
func (d *Document) AddParagraph(text string) *Paragraph {
	p := NewParagraph(text)
	d.Add(p)
	return p
}

// AddTable appends a table and returns it
func (d *Document) AddTable(t *Table) *Table {
	d.Add(t)
	return t
}

// Paragraphs returns all body paragraphs (headings and tables excluded)
func (d *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, elem := range d.Body {
		if p, ok := elem.(*Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Headings returns all body headings in order
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, elem := range d.Body {
		if h, ok := elem.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Tables returns all body tables in order
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, elem := range d.Body {
		if t, ok := elem.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Validate checks heading levels and table shapes in the body, header
// and footer.
func (d *Document) Validate() error {
	elems := d.Body
	if d.Section != nil {
		elems = append(append(append([]Element(nil), elems...), d.Section.Header...), d.Section.Footer...)
	}
	for _, elem := range elems {
		var err error
		switch e := elem.(type) {
		case *Heading:
			err = e.Validate()
		case *Table:
			err = e.Validate()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ExtractText returns all body text, one element per line
func (d *Document) ExtractText() string {
	var parts []string
	for _, elem := range d.Body {
		parts = append(parts, strings.TrimRight(elem.GetText(), "\n"))
	}
	return strings.Join(parts, "\n")
}

// TableOfContents returns headings organized as a document outline
func (d *Document) TableOfContents() []TOCEntry {
	var toc []TOCEntry
	for _, h := range d.Headings() {
		toc = append(toc, TOCEntry{Level: h.Level, Text: h.Text})
	}
	return toc
}

// TOCEntry represents an entry in the table of contents
type TOCEntry struct {
	Level int    // Heading level (0 = title)
	Text  string // Heading text
}

// ToMarkdown renders the body as Markdown. Headings map to ATX headings
// (the title and level 1 both use "#", deeper levels are capped at 6) and
// line breaks inside paragraphs become hard breaks.
func (d *Document) ToMarkdown() string {
	var sb strings.Builder
	for i, elem := range d.Body {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch e := elem.(type) {
		case *Heading:
			level := e.Level
			if level < 1 {
				level = 1
			}
			if level > 6 {
				level = 6
			}
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteString(" ")
			sb.WriteString(e.Text)
			sb.WriteString("\n")
		case *Paragraph:
			sb.WriteString(strings.ReplaceAll(e.GetText(), "\n", "  \n"))
			sb.WriteString("\n")
		case *Table:
			sb.WriteString(e.ToMarkdown())
		}
	}
	return sb.String()
}
