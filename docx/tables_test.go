package docx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mnaoum/minireport/model"
)

// createTestDOCXWithTable creates a DOCX file whose body is tableXML.
func createTestDOCXWithTable(t *testing.T, tableXML string) string {
	t.Helper()
	return createTestDOCX(t, tableXML)
}

func TestTableParsing_Simple(t *testing.T) {
	// Simple 2x2 table
	tableXML := `
<w:tbl>
  <w:tblPr>
    <w:tblBorders>
      <w:top w:val="single"/>
      <w:bottom w:val="single"/>
    </w:tblBorders>
  </w:tblPr>
  <w:tblGrid>
    <w:gridCol w:w="2880"/>
    <w:gridCol w:w="2880"/>
  </w:tblGrid>
  <w:tr>
    <w:tc>
      <w:p><w:r><w:t>Header 1</w:t></w:r></w:p>
    </w:tc>
    <w:tc>
      <w:p><w:r><w:t>Header 2</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
  <w:tr>
    <w:tc>
      <w:p><w:r><w:t>Cell A</w:t></w:r></w:p>
    </w:tc>
    <w:tc>
      <w:p><w:r><w:t>Cell B</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
</w:tbl>`

	docxPath := createTestDOCXWithTable(t, tableXML)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if len(table.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(table.Rows))
	}
	if !table.HasBorders {
		t.Error("HasBorders should be true")
	}
	if diff := cmp.Diff([]float64{144, 144}, table.ColWidths); diff != "" {
		t.Errorf("ColWidths mismatch (-want +got):\n%s", diff)
	}

	want := [][]string{
		{"Header 1", "Header 2"},
		{"Cell A", "Cell B"},
	}
	for i := range want {
		if diff := cmp.Diff(want[i], table.RowTexts(i)); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if table.RowTexts(5) != nil {
		t.Error("RowTexts(5) should be nil")
	}
}

func TestTableParsing_ColSpan(t *testing.T) {
	// Table with column span
	tableXML := `
<w:tbl>
  <w:tblGrid>
    <w:gridCol w:w="2000"/>
    <w:gridCol w:w="2000"/>
    <w:gridCol w:w="2000"/>
  </w:tblGrid>
  <w:tr>
    <w:tc>
      <w:tcPr>
        <w:gridSpan w:val="2"/>
      </w:tcPr>
      <w:p><w:r><w:t>Merged Header</w:t></w:r></w:p>
    </w:tc>
    <w:tc>
      <w:p><w:r><w:t>Single</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>A</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>B</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>C</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	docxPath := createTestDOCXWithTable(t, tableXML)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	table := r.Tables()[0]

	// First row should have 2 cells (one spanning 2 columns)
	if len(table.Rows[0].Cells) != 2 {
		t.Errorf("expected 2 cells in row 0, got %d", len(table.Rows[0].Cells))
	}
	if table.Rows[0].Cells[0].ColSpan != 2 {
		t.Errorf("cell[0][0].ColSpan = %d, want 2", table.Rows[0].Cells[0].ColSpan)
	}
	if table.ColCount() != 3 {
		t.Errorf("ColCount() = %d, want 3", table.ColCount())
	}
}

func TestTableParsing_ToModelTable(t *testing.T) {
	tableXML := `
<w:tbl>
  <w:tblPr><w:tblStyle w:val="TableGrid"/></w:tblPr>
  <w:tblGrid>
    <w:gridCol w:w="2880"/>
    <w:gridCol w:w="2880"/>
  </w:tblGrid>
  <w:tr>
    <w:trPr><w:tblHeader/></w:trPr>
    <w:tc>
      <w:p><w:pPr><w:spacing w:line="360" w:lineRule="auto"/><w:jc w:val="both"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>Name</w:t></w:r></w:p>
    </w:tc>
    <w:tc>
      <w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Value</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
  <w:tr>
    <w:tc>
      <w:p><w:r><w:t>Foo</w:t></w:r></w:p>
    </w:tc>
    <w:tc>
      <w:p><w:r><w:t>Bar</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
</w:tbl>`

	docxPath := createTestDOCXWithTable(t, tableXML)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if !tables[0].Rows[0].IsHeader {
		t.Error("row 0 should carry the tblHeader flag")
	}

	table := tables[0].ToModelTable()

	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", table.RowCount())
	}
	if table.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", table.ColCount())
	}
	if table.StyleName != "TableGrid" {
		t.Errorf("StyleName = %q, want TableGrid", table.StyleName)
	}

	want := model.Cell{
		Text:        "Name",
		IsHeader:    true,
		Style:       model.TextStyle{Bold: true},
		Alignment:   model.AlignJustify,
		LineSpacing: 1.5,
	}
	if diff := cmp.Diff(want, *table.GetCell(0, 0)); diff != "" {
		t.Errorf("cell[0][0] mismatch (-want +got):\n%s", diff)
	}

	cell := table.GetCell(1, 1)
	if cell.Text != "Bar" || cell.IsHeader || cell.Style.Bold {
		t.Errorf("cell[1][1] = %+v, want plain Bar", cell)
	}
}

func TestTableParsing_StyleBorders(t *testing.T) {
	styles := `<w:style w:type="table" w:styleId="TableGrid">
  <w:name w:val="Table Grid"/>
  <w:tblPr>
    <w:tblBorders>
      <w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>
      <w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>
    </w:tblBorders>
  </w:tblPr>
</w:style>`
	content := `<w:tbl>
  <w:tblPr><w:tblStyle w:val="TableGrid"/></w:tblPr>
  <w:tr><w:tc><w:p><w:r><w:t>x</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>`

	r, err := Open(createTestDOCXWithStyles(t, content, styles))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if !r.Tables()[0].HasBorders {
		t.Error("borders from the table style should be detected")
	}
}

func TestTableParsing_EmptyTable(t *testing.T) {
	tableXML := `
<w:tbl>
  <w:tblGrid>
    <w:gridCol w:w="2880"/>
  </w:tblGrid>
</w:tbl>`

	docxPath := createTestDOCXWithTable(t, tableXML)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	if len(tables[0].Rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(tables[0].Rows))
	}
	if tables[0].ColCount() != 0 {
		t.Errorf("ColCount() = %d, want 0", tables[0].ColCount())
	}
}

func TestTableMarkdown(t *testing.T) {
	tableXML := `
<w:tbl>
  <w:tr>
    <w:tc><w:p><w:r><w:t>Method</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>Notes</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>IQR (K=2)</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>a | b</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	r, err := Open(createTestDOCXWithTable(t, tableXML))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	got := r.Tables()[0].ToMarkdown()
	want := "| Method | Notes |\n| --- | --- |\n| IQR (K=2) | a \\| b |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableText(t *testing.T) {
	tableXML := `
<w:tbl>
  <w:tblGrid>
    <w:gridCol w:w="2880"/>
    <w:gridCol w:w="2880"/>
  </w:tblGrid>
  <w:tr>
    <w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>Value</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>Foo</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>Bar</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	docxPath := createTestDOCXWithTable(t, tableXML)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	text, err := r.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	if text != "Name\tValue\nFoo\tBar" {
		t.Errorf("Text() = %q", text)
	}
}

func TestTableInDocument(t *testing.T) {
	tableXML := `
<w:p><w:r><w:t>Before table</w:t></w:r></w:p>
<w:tbl>
  <w:tblGrid>
    <w:gridCol w:w="2880"/>
    <w:gridCol w:w="2880"/>
  </w:tblGrid>
  <w:tr>
    <w:tc><w:p><w:r><w:t>A</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>B</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>
<w:p><w:r><w:t>After table</w:t></w:r></w:p>`

	docxPath := createTestDOCXWithTable(t, tableXML)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	var types []model.ElementType
	for _, e := range doc.Body {
		types = append(types, e.Type())
	}
	want := []model.ElementType{model.ElementTypeParagraph, model.ElementTypeTable, model.ElementTypeParagraph}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("body order mismatch (-want +got):\n%s", diff)
	}
}

func TestTableOrderInText(t *testing.T) {
	// Test that table appears between paragraphs in text output
	tableXML := `
<w:p><w:r><w:t>Before table</w:t></w:r></w:p>
<w:tbl>
  <w:tr>
    <w:tc><w:p><w:r><w:t>TableCell</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>Data</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>
<w:p><w:r><w:t>After table</w:t></w:r></w:p>`

	docxPath := createTestDOCXWithTable(t, tableXML)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	text, err := r.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	beforeIdx := strings.Index(text, "Before table")
	tableIdx := strings.Index(text, "TableCell")
	afterIdx := strings.Index(text, "After table")

	if beforeIdx == -1 || tableIdx == -1 || afterIdx == -1 {
		t.Fatalf("Text() = %q, missing content", text)
	}

	// Verify order: Before < Table < After
	if beforeIdx >= tableIdx || tableIdx >= afterIdx {
		t.Errorf("unexpected order in %q", text)
	}
}
