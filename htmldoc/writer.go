// Package htmldoc renders a report as a standalone HTML page.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"github.com/mnaoum/minireport/model"
)

// Writer renders a model.Document as HTML.
type Writer struct {
	doc *model.Document
}

// NewWriter creates a Writer for doc.
func NewWriter(doc *model.Document) *Writer {
	return &Writer{doc: doc}
}

// WriteTo renders the page to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if w.doc == nil {
		return 0, fmt.Errorf("no document to write")
	}
	if err := w.doc.Validate(); err != nil {
		return 0, fmt.Errorf("invalid document: %w", err)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, w.Node()); err != nil {
		return 0, fmt.Errorf("rendering HTML: %w", err)
	}
	buf.WriteString("\n")
	return buf.WriteTo(out)
}

// Save writes the page to path, replacing any existing file. Nothing is
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

// Node builds the HTML document tree.
func (w *Writer) Node() *html.Node {
	section := w.doc.Section
	if section == nil {
		section = model.NewSection()
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlNode := element(atom.Html, attr("lang", "en"))
	root.AppendChild(htmlNode)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	if title := w.doc.Metadata.Title; title != "" {
		head.AppendChild(withText(element(atom.Title), title))
	}
	if author := w.doc.Metadata.Author; author != "" {
		head.AppendChild(element(atom.Meta, attr("name", "author"), attr("content", clean(author))))
	}
	if len(w.doc.Metadata.Keywords) > 0 {
		head.AppendChild(element(atom.Meta, attr("name", "keywords"),
			attr("content", clean(strings.Join(w.doc.Metadata.Keywords, ", ")))))
	}
	head.AppendChild(withText(element(atom.Style), stylesheet(section, w.doc.BaseFont)))
	htmlNode.AppendChild(head)

	body := element(atom.Body)
	htmlNode.AppendChild(body)

	main := element(atom.Main)
	for _, elem := range w.doc.Body {
		if n := block(elem); n != nil {
			main.AppendChild(n)
		}
	}
	body.AppendChild(main)

	if len(section.Footer) > 0 {
		footer := element(atom.Footer, attr("class", "page-footer"))
		for _, elem := range section.Footer {
			if n := block(elem); n != nil {
				footer.AppendChild(n)
			}
		}
		body.AppendChild(footer)
	}

	return root
}

// stylesheet returns print CSS reproducing the section geometry and the
// base font.
func stylesheet(s *model.Section, base model.Font) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@page { size: %s %s; margin: %s %s %s %s; }\n",
		mm(s.Page.Width), mm(s.Page.Height),
		mm(s.Margins.Top), mm(s.Margins.Right), mm(s.Margins.Bottom), mm(s.Margins.Left))
	sb.WriteString("body {")
	if base.Name != "" {
		fmt.Fprintf(&sb, " font-family: %q, serif;", base.Name)
	}
	if base.Size > 0 {
		fmt.Fprintf(&sb, " font-size: %s;", pt(base.Size))
	}
	sb.WriteString(" }\n")
	sb.WriteString("table { border-collapse: collapse; width: 100%; }\n")
	sb.WriteString("table.table-grid th, table.table-grid td { border: 1px solid #000; padding: 0 5.4pt; vertical-align: top; }\n")
	sb.WriteString(".page-footer { text-align: center; }\n")
	sb.WriteString(".page-number::after { content: counter(page); }\n")
	return sb.String()
}

func mm(l model.Length) string {
	return strconv.FormatFloat(l.Mm(), 'f', -1, 64) + "mm"
}

func pt(l model.Length) string {
	return strconv.FormatFloat(l.Pt(), 'f', -1, 64) + "pt"
}

// block renders a body element.
func block(elem model.Element) *html.Node {
	switch e := elem.(type) {
	case *model.Heading:
		return heading(e)
	case *model.Paragraph:
		return paragraph(e)
	case *model.Table:
		return table(e)
	default:
		return nil
	}
}

var headingAtoms = []atom.Atom{atom.H1, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func heading(h *model.Heading) *html.Node {
	level := min(model.ClampHeadingLevel(h.Level), len(headingAtoms)-1)
	n := element(headingAtoms[level])
	if level == 0 {
		n.Attr = append(n.Attr, attr("class", "title"))
	}
	appendText(n, h.Text)
	return n
}

func paragraph(p *model.Paragraph) *html.Node {
	n := element(atom.P)
	if css := blockStyle(p.Alignment, p.LineSpacing); css != "" {
		n.Attr = append(n.Attr, attr("style", css))
	}
	for _, r := range p.Runs {
		n.AppendChild(run(r.Text, r.Style, r.Font, r.Field))
	}
	return n
}

func blockStyle(align model.TextAlignment, lineSpacing float64) string {
	var parts []string
	if align != model.AlignDefault {
		parts = append(parts, "text-align: "+align.String())
	}
	if lineSpacing > 0 {
		parts = append(parts, "line-height: "+strconv.FormatFloat(lineSpacing, 'f', -1, 64))
	}
	return strings.Join(parts, "; ")
}

// run renders one run. Formatting wraps the text innermost-first in
// span, u, em and strong.
func run(text string, style model.TextStyle, font model.Font, field *model.Field) *html.Node {
	var n *html.Node
	if field != nil {
		n = element(atom.Span, attr("class", fieldClass(field)))
	} else {
		n = element(atom.Span)
		appendText(n, text)
	}

	var css []string
	if font.Name != "" {
		css = append(css, fmt.Sprintf("font-family: %q", font.Name))
	}
	if font.Size > 0 {
		css = append(css, "font-size: "+pt(font.Size))
	}
	if len(css) > 0 {
		n.Attr = append(n.Attr, attr("style", strings.Join(css, "; ")))
	}

	if style.Underline {
		n = wrap(element(atom.U), n)
	}
	if style.Italic {
		n = wrap(element(atom.Em), n)
	}
	if style.Bold {
		n = wrap(element(atom.Strong), n)
	}
	return n
}

func fieldClass(f *model.Field) string {
	switch f.Kind {
	case model.FieldPage:
		return "page-number"
	case model.FieldNumPages:
		return "page-count"
	default:
		return "field"
	}
}

func table(t *model.Table) *html.Node {
	n := element(atom.Table)
	if t.StyleName != "" {
		n.Attr = append(n.Attr, attr("class", strings.ToLower(strings.ReplaceAll(t.StyleName, " ", "-"))))
	}

	headerRows := t.HeaderRows()
	var thead, tbody *html.Node
	for i, row := range t.Rows {
		tr := element(atom.Tr)
		for _, c := range row {
			cellAtom := atom.Td
			if i < headerRows {
				cellAtom = atom.Th
			}
			cell := element(cellAtom)
			if css := blockStyle(c.Alignment, c.LineSpacing); css != "" {
				cell.Attr = append(cell.Attr, attr("style", css))
			}
			if c.Text != "" {
				cell.AppendChild(run(c.Text, c.Style, c.Font, nil))
			}
			tr.AppendChild(cell)
		}

		if i < headerRows {
			if thead == nil {
				thead = element(atom.Thead)
				n.AppendChild(thead)
			}
			thead.AppendChild(tr)
			continue
		}
		if tbody == nil {
			tbody = element(atom.Tbody)
			n.AppendChild(tbody)
		}
		tbody.AppendChild(tr)
	}
	return n
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func wrap(parent, child *html.Node) *html.Node {
	parent.AppendChild(child)
	return parent
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: clean(text)})
	return n
}

// appendText adds text to n, turning line breaks into <br> elements.
func appendText(n *html.Node, text string) {
	for i, line := range strings.Split(clean(text), "\n") {
		if i > 0 {
			n.AppendChild(element(atom.Br))
		}
		if line != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		}
	}
}

// clean normalises text to NFC and unifies line endings.
func clean(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}
