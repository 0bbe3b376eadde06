package model

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// ============================================================================
// Length Tests
// ============================================================================

func TestLengthConversions(t *testing.T) {
	tests := []struct {
		name       string
		length     Length
		wantMm     float64
		wantPt     float64
		wantTwips  int
		wantHalfPt int
	}{
		{"A4 width", Mm(210), 210, 595.2756, 11906, 1191},
		{"A4 height", Mm(297), 297, 841.8898, 16838, 1684},
		{"25mm margin", Mm(25), 25, 70.8661, 1417, 142},
		{"12pt", Pt(12), 4.2333, 12, 240, 24},
		{"one inch", Inches(1), 25.4, 72, 1440, 144},
		{"twips", Twips(1440), 25.4, 72, 1440, 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.length.Mm(); math.Abs(got-tt.wantMm) > 0.001 {
				t.Errorf("Mm() = %v, want %v", got, tt.wantMm)
			}
			if got := tt.length.Pt(); math.Abs(got-tt.wantPt) > 0.001 {
				t.Errorf("Pt() = %v, want %v", got, tt.wantPt)
			}
			if got := tt.length.Twips(); got != tt.wantTwips {
				t.Errorf("Twips() = %d, want %d", got, tt.wantTwips)
			}
			if got := tt.length.HalfPoints(); got != tt.wantHalfPt {
				t.Errorf("HalfPoints() = %d, want %d", got, tt.wantHalfPt)
			}
		})
	}
}

func TestLengthString(t *testing.T) {
	if got := Mm(25).String(); got != "25.00mm" {
		t.Errorf("String() = %q, want %q", got, "25.00mm")
	}
}

func TestPageSize(t *testing.T) {
	if PageA4.Landscape() {
		t.Error("A4 portrait reported as landscape")
	}
	rotated := PageSize{Width: PageA4.Height, Height: PageA4.Width}
	if !rotated.Landscape() {
		t.Error("rotated A4 not reported as landscape")
	}
}

// ============================================================================
// Section Tests
// ============================================================================

func TestSectionContentArea(t *testing.T) {
	s := NewSection()
	s.Page = PageA4
	s.Margins = UniformMargins(Mm(25))

	if got := s.ContentWidth().Mm(); math.Abs(got-160) > 0.001 {
		t.Errorf("ContentWidth() = %v mm, want 160", got)
	}
}

func TestSectionDisableHeader(t *testing.T) {
	s := NewSection()
	s.Header = []Element{NewParagraph("old header")}
	s.DisableHeader()

	if !s.HeaderDisabled {
		t.Error("HeaderDisabled = false after DisableHeader()")
	}
	if len(s.Header) != 0 {
		t.Errorf("Header has %d elements, want 0", len(s.Header))
	}
}

// ============================================================================
// Element Tests
// ============================================================================

func TestElementTypeString(t *testing.T) {
	tests := []struct {
		et   ElementType
		want string
	}{
		{ElementTypeParagraph, "Paragraph"},
		{ElementTypeHeading, "Heading"},
		{ElementTypeTable, "Table"},
		{ElementTypeUnknown, "Unknown"},
		{ElementType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ElementType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestNewHeading(t *testing.T) {
	tests := []struct {
		level     int
		wantLevel int
		wantStyle string
	}{
		{0, 0, "Title"},
		{1, 1, "Heading1"},
		{3, 3, "Heading3"},
		{-2, 0, "Title"},
		{12, 9, "Heading9"},
	}
	for _, tt := range tests {
		h := NewHeading(tt.level, "x")
		if h.Level != tt.wantLevel {
			t.Errorf("NewHeading(%d).Level = %d, want %d", tt.level, h.Level, tt.wantLevel)
		}
		if got := h.StyleID(); got != tt.wantStyle {
			t.Errorf("NewHeading(%d).StyleID() = %q, want %q", tt.level, got, tt.wantStyle)
		}
	}
}

func TestParagraphText(t *testing.T) {
	p := NewParagraph("Hello ")
	p.AddRun(Run{Text: "World", Style: TextStyle{Bold: true}}).AddRun(PageNumberField())

	if got := p.GetText(); got != "Hello World" {
		t.Errorf("GetText() = %q, want %q", got, "Hello World")
	}

	fields := p.Fields()
	if len(fields) != 1 {
		t.Fatalf("Fields() returned %d fields, want 1", len(fields))
	}
	if fields[0].Instruction != " PAGE " || fields[0].Kind != FieldPage {
		t.Errorf("field = %+v, want PAGE field", fields[0])
	}
}

func TestNewParagraphEmpty(t *testing.T) {
	if p := NewParagraph(""); len(p.Runs) != 0 {
		t.Errorf("NewParagraph(\"\") has %d runs, want 0", len(p.Runs))
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestNewTable(t *testing.T) {
	table := NewTable(1, 3)
	if table.RowCount() != 1 || table.ColCount() != 3 {
		t.Fatalf("NewTable(1, 3) = %dx%d", table.RowCount(), table.ColCount())
	}
	for _, cell := range table.Header() {
		if !cell.IsHeader {
			t.Error("header row cell not marked IsHeader")
		}
	}

	row := table.AddRow("a", "b", "c")
	if len(row) != 3 || row[0].IsHeader {
		t.Errorf("AddRow() = %+v", row)
	}
	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", table.RowCount())
	}
}

func TestTableCellAccess(t *testing.T) {
	table := NewTable(2, 2)
	table.Rows[1][1] = Cell{Text: "x"}
	if got := table.GetCell(1, 1); got == nil || got.Text != "x" {
		t.Errorf("GetCell(1, 1) = %+v", got)
	}
	if table.GetCell(5, 0) != nil || table.GetCell(0, -1) != nil {
		t.Error("GetCell() out of range should return nil")
	}
}

func TestTableValidate(t *testing.T) {
	table := NewTable(1, 3)
	table.AddRow("a", "b", "c")
	if err := table.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	table.AddRow("a", "b")
	err := table.Validate()
	if !errors.Is(err, ErrRaggedTable) {
		t.Errorf("Validate() error = %v, want ErrRaggedTable", err)
	}
}

func TestTableFormat(t *testing.T) {
	table := NewTable(1, 2)
	table.AddRow("a", "b")
	font := Font{Name: "Times New Roman", Size: Pt(12)}
	table.Format(AlignJustify, 1.5, font)

	for i, row := range table.Rows {
		for j, cell := range row {
			if cell.Alignment != AlignJustify || cell.LineSpacing != 1.5 || cell.Font != font {
				t.Errorf("cell[%d][%d] = %+v, formatting not applied", i, j, cell)
			}
		}
	}
}

func TestTableToMarkdown(t *testing.T) {
	table := NewTable(1, 2)
	table.Rows[0][0].Text = "Method"
	table.Rows[0][1].Text = "Notes"
	table.AddRow("IQR", "a|b")

	want := "| Method | Notes |\n| --- | --- |\n| IQR | a\\|b |\n"
	if got := table.ToMarkdown(); got != want {
		t.Errorf("ToMarkdown() = %q, want %q", got, want)
	}
}

func TestTableToCSV(t *testing.T) {
	table := NewTable(1, 2)
	table.Rows[0][0].Text = "Method"
	table.Rows[0][1].Text = "Notes"
	table.AddRow("One-Class SVM", "Non-linear, \"sensitive\"")

	want := "Method,Notes\nOne-Class SVM,\"Non-linear, \"\"sensitive\"\"\"\n"
	if got := table.ToCSV(); got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocumentAccessors(t *testing.T) {
	doc := NewDocument()
	doc.AddHeading(1, "Title")
	doc.AddParagraph("first")
	table := NewTable(1, 1)
	table.Rows[0][0].Text = "h"
	doc.AddTable(table)
	doc.AddHeading(2, "Section")
	doc.AddParagraph("second")

	if got := len(doc.Headings()); got != 2 {
		t.Errorf("Headings() = %d, want 2", got)
	}
	if got := len(doc.Paragraphs()); got != 2 {
		t.Errorf("Paragraphs() = %d, want 2", got)
	}
	if got := len(doc.Tables()); got != 1 {
		t.Errorf("Tables() = %d, want 1", got)
	}

	toc := doc.TableOfContents()
	if len(toc) != 2 || toc[1].Level != 2 || toc[1].Text != "Section" {
		t.Errorf("TableOfContents() = %+v", toc)
	}

	text := doc.ExtractText()
	if !strings.Contains(text, "first") || !strings.Contains(text, "h") {
		t.Errorf("ExtractText() = %q", text)
	}
}

func TestDocumentToMarkdown(t *testing.T) {
	doc := NewDocument()
	doc.AddHeading(1, "Report")
	doc.AddParagraph("Author: A\nDate: B")
	doc.AddHeading(3, "Detail")

	want := "# Report\n\nAuthor: A  \nDate: B\n\n### Detail\n"
	if got := doc.ToMarkdown(); got != want {
		t.Errorf("ToMarkdown() = %q, want %q", got, want)
	}
}

func TestDocumentValidate(t *testing.T) {
	doc := NewDocument()
	table := NewTable(1, 2)
	table.AddRow("only one")
	doc.AddTable(table)

	if err := doc.Validate(); !errors.Is(err, ErrRaggedTable) {
		t.Errorf("Validate() error = %v, want ErrRaggedTable", err)
	}
}

func TestDocumentValidateHeadingLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
	}{
		{"negative", -1},
		{"too deep", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			doc.Add(&Heading{Text: "x", Level: tt.level})
			if err := doc.Validate(); !errors.Is(err, ErrHeadingLevel) {
				t.Errorf("Validate() error = %v, want ErrHeadingLevel", err)
			}
		})
	}

	doc := NewDocument()
	doc.Section.AddFooter(&Heading{Text: "footer", Level: 11})
	if err := doc.Validate(); !errors.Is(err, ErrHeadingLevel) {
		t.Errorf("Validate() footer error = %v, want ErrHeadingLevel", err)
	}

	doc = NewDocument()
	doc.AddHeading(0, "title")
	doc.AddHeading(9, "deep")
	if err := doc.Validate(); err != nil {
		t.Errorf("Validate() error = %v for levels 0 and 9", err)
	}
}

func TestHeadingStyleIDClamps(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{-1, "Title"},
		{10, "Heading9"},
		{42, "Heading9"},
	}
	for _, tt := range tests {
		h := &Heading{Level: tt.level}
		if got := h.StyleID(); got != tt.want {
			t.Errorf("Heading{Level: %d}.StyleID() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestTableHeaderRows(t *testing.T) {
	tests := []struct {
		name    string
		headers []bool // IsHeader per row
		want    int
	}{
		{"none", []bool{false, false}, 0},
		{"first", []bool{true, false, false}, 1},
		{"two", []bool{true, true, false}, 2},
		{"not leading", []bool{false, true}, 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{}
			for _, h := range tt.headers {
				row := table.AddRow("a", "b")
				for i := range row {
					row[i].IsHeader = h
				}
			}
			if got := table.HeaderRows(); got != tt.want {
				t.Errorf("HeaderRows() = %d, want %d", got, tt.want)
			}
		})
	}

	partial := &Table{}
	row := partial.AddRow("a", "b")
	row[0].IsHeader = true
	if got := partial.HeaderRows(); got != 0 {
		t.Errorf("HeaderRows() = %d for a partly marked row, want 0", got)
	}
}
