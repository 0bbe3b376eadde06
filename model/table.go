package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRaggedTable is returned when table rows have differing column counts.
var ErrRaggedTable = errors.New("table rows have differing column counts")

// Table represents a grid of cells. Leading rows whose cells are marked
// IsHeader form the header.
type Table struct {
	Rows [][]Cell
	// StyleName is the display name of the table style ("Table Grid").
	StyleName string
	// ColWidths optionally fixes column widths; empty means share the
	// available width equally.
	ColWidths []Length
}

func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewTable creates a new table with given dimensions
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows: make([][]Cell, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
		for j := 0; j < cols; j++ {
			table.Rows[i][j] = Cell{IsHeader: i == 0}
		}
	}
	return table
}

// AddRow appends a data row built from the given cell texts.
func (t *Table) AddRow(texts ...string) []Cell {
	row := make([]Cell, len(texts))
	for i, text := range texts {
		row[i] = Cell{Text: text}
	}
	t.Rows = append(t.Rows, row)
	return row
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Header returns the header row, or nil for an empty table.
func (t *Table) Header() []Cell {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// GetCell returns the cell at the given row and column (0-indexed)
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// Format applies the same paragraph and font formatting to every cell.
// Table cells do not inherit the document's base font in Word, so the
// font is set on each cell explicitly.
func (t *Table) Format(align TextAlignment, lineSpacing float64, font Font) {
	for i := range t.Rows {
		for j := range t.Rows[i] {
			c := &t.Rows[i][j]
			c.Alignment = align
			c.LineSpacing = lineSpacing
			c.Font = font
		}
	}
}

// HeaderRows returns the number of leading rows whose cells are all
// marked as header cells.
func (t *Table) HeaderRows() int {
	n := 0
	for _, row := range t.Rows {
		if len(row) == 0 {
			break
		}
		for _, c := range row {
			if !c.IsHeader {
				return n
			}
		}
		n++
	}
	return n
}

// Validate checks that every row has the same number of columns.
func (t *Table) Validate() error {
	cols := t.ColCount()
	for i, row := range t.Rows {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrRaggedTable)
		}
	}
	return nil
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []Cell) {
		sb.WriteString("|")
		for _, cell := range row {
			text := strings.ReplaceAll(cell.Text, "\n", " ")
			text = strings.ReplaceAll(text, "|", "\\|")
			sb.WriteString(" ")
			sb.WriteString(text)
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(t.Rows[0])
	sb.WriteString("|")
	for range t.Rows[0] {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			// Escape quotes and wrap in quotes if necessary
			text := cell.Text
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Cell represents a table cell. Each cell holds a single paragraph.
type Cell struct {
	Text     string
	IsHeader bool

	// Cell paragraph formatting
	Style       TextStyle
	Font        Font
	Alignment   TextAlignment
	LineSpacing float64
}
