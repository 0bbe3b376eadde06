package docx

import (
	"strconv"
	"strings"

	"github.com/mnaoum/minireport/model"
)

// ParsedTable represents a parsed table with resolved structure.
type ParsedTable struct {
	Rows       []ParsedTableRow
	ColWidths  []float64 // Column widths in points
	HasBorders bool
	StyleID    string
}

// ToText returns a plain text representation of the table.
func (pt *ParsedTable) ToText() string {
	var sb strings.Builder
	for i, row := range pt.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
		}
	}
	return sb.String()
}

// ToMarkdown returns a markdown table representation.
func (pt *ParsedTable) ToMarkdown() string {
	return pt.ToModelTable().ToMarkdown()
}

// ColCount returns the number of columns in the table.
func (pt *ParsedTable) ColCount() int {
	if len(pt.Rows) == 0 {
		return 0
	}
	count := 0
	for _, cell := range pt.Rows[0].Cells {
		count += cell.ColSpan
	}
	return count
}

// RowTexts returns the cell texts of row i, or nil if out of range.
func (pt *ParsedTable) RowTexts(i int) []string {
	if i < 0 || i >= len(pt.Rows) {
		return nil
	}
	texts := make([]string, len(pt.Rows[i].Cells))
	for j, cell := range pt.Rows[i].Cells {
		texts[j] = cell.Text
	}
	return texts
}

// ParsedTableRow represents a parsed table row.
type ParsedTableRow struct {
	Cells    []ParsedTableCell
	IsHeader bool
}

// ParsedTableCell represents a parsed table cell.
type ParsedTableCell struct {
	Paragraphs []ParsedParagraph
	Text       string // Combined text from all paragraphs
	ColSpan    int    // Number of columns spanned (gridSpan)
	Width      float64
}

// Runs returns the runs of every paragraph in the cell.
func (c ParsedTableCell) Runs() []ParsedRun {
	var runs []ParsedRun
	for _, p := range c.Paragraphs {
		runs = append(runs, p.Runs...)
	}
	return runs
}

// TableParser handles parsing of DOCX tables.
type TableParser struct {
	styleResolver *StyleResolver
}

// NewTableParser creates a new table parser.
func NewTableParser(resolver *StyleResolver) *TableParser {
	return &TableParser{
		styleResolver: resolver,
	}
}

// ParseTable parses a table XML element into a ParsedTable.
func (tp *TableParser) ParseTable(tbl tableXML) ParsedTable {
	parsed := ParsedTable{
		StyleID:    tbl.Properties.Style.Val,
		HasBorders: tp.hasBorders(tbl.Properties.Borders),
	}

	parsed.ColWidths = make([]float64, len(tbl.Grid.Cols))
	for i, col := range tbl.Grid.Cols {
		parsed.ColWidths[i] = parseTwips(col.W)
	}

	// A table style such as "TableGrid" draws borders even when the table
	// itself carries none.
	if !parsed.HasBorders && tp.styleResolver != nil && parsed.StyleID != "" {
		if def, ok := tp.styleResolver.styles[parsed.StyleID]; ok {
			parsed.HasBorders = tp.hasBorders(def.TblPr.Borders)
		}
	}

	for _, row := range tbl.Rows {
		parsed.Rows = append(parsed.Rows, tp.parseRow(row))
	}

	return parsed
}

// hasBorders checks if the table has visible borders.
func (tp *TableParser) hasBorders(borders tableBordersXML) bool {
	visible := func(b borderXML) bool { return b.Val != "" && b.Val != "nil" && b.Val != "none" }
	return visible(borders.Top) || visible(borders.Bottom) ||
		visible(borders.Left) || visible(borders.Right) ||
		visible(borders.InsideH) || visible(borders.InsideV)
}

// parseRow parses a table row.
func (tp *TableParser) parseRow(row tableRowXML) ParsedTableRow {
	parsed := ParsedTableRow{
		IsHeader: row.Properties.Header.on(),
	}
	for _, cell := range row.Cells {
		parsed.Cells = append(parsed.Cells, tp.parseCell(cell))
	}
	return parsed
}

// parseCell parses a table cell.
func (tp *TableParser) parseCell(cell tableCellXML) ParsedTableCell {
	parsed := ParsedTableCell{
		ColSpan: 1,
	}

	props := cell.Properties
	if props.GridSpan.Val != "" {
		if span, err := strconv.Atoi(props.GridSpan.Val); err == nil && span > 0 {
			parsed.ColSpan = span
		}
	}
	if props.Width.W != "" && props.Width.Type != "pct" && props.Width.Type != "auto" {
		parsed.Width = parseTwips(props.Width.W)
	}

	var textParts []string
	for _, para := range cell.Paragraphs {
		p := parseParagraph(para, tp.styleResolver)
		parsed.Paragraphs = append(parsed.Paragraphs, p)
		if p.Text != "" {
			textParts = append(textParts, p.Text)
		}
	}
	parsed.Text = strings.Join(textParts, "\n")

	return parsed
}

// ToModelTable converts a ParsedTable to a model.Table.
func (pt *ParsedTable) ToModelTable() *model.Table {
	table := &model.Table{StyleName: pt.StyleID}
	for _, row := range pt.Rows {
		cells := make([]model.Cell, 0, len(row.Cells))
		for _, c := range row.Cells {
			mc := model.Cell{Text: c.Text, IsHeader: row.IsHeader}
			if runs := c.Runs(); len(runs) > 0 {
				mc.Style.Bold = runs[0].Bold
				mc.Style.Italic = runs[0].Italic
			}
			if len(c.Paragraphs) > 0 {
				mc.Alignment = alignmentFromVal(c.Paragraphs[0].Alignment)
				mc.LineSpacing = c.Paragraphs[0].LineSpacing
			}
			cells = append(cells, mc)
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}
