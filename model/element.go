package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHeadingLevel is returned when a heading level is outside 0-9.
var ErrHeadingLevel = errors.New("heading level out of range")

// Heading levels: 0 is the document title, 1-9 the outline levels.
const (
	MinHeadingLevel = 0
	MaxHeadingLevel = 9
)

// ElementType represents the type of body element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeHeading
	ElementTypeTable
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Element is the interface for all body elements
type Element interface {
	Type() ElementType
	GetText() string
}

// TextAlignment represents paragraph alignment
type TextAlignment int

const (
	AlignDefault TextAlignment = iota // inherit from style
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "default"
	}
}

// Font names a typeface and its size. A zero value means "inherit".
type Font struct {
	Name string
	Size Length
}

// IsZero reports whether the font carries no override.
func (f Font) IsZero() bool {
	return f.Name == "" && f.Size == 0
}

// TextStyle represents character formatting applied to a run
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// FieldKind identifies a dynamic field.
type FieldKind int

const (
	FieldPage FieldKind = iota + 1
	FieldNumPages
)

// Field is a dynamic placeholder resolved by the viewing application,
// such as the current page number.
type Field struct {
	Kind FieldKind
	// Instruction is the raw field code, including the surrounding spaces
	// Word writes (" PAGE ").
	Instruction string
}

// Run is the smallest unit of formatted text within a paragraph.
// A run carries either Text or a Field, never both.
type Run struct {
	Text  string
	Style TextStyle
	Font  Font
	Field *Field
}

// Paragraph represents a paragraph made of runs
type Paragraph struct {
	Runs      []Run
	Alignment TextAlignment
	// LineSpacing is a multiple of single spacing (1.5 = one-and-a-half).
	// Zero inherits the style's spacing.
	LineSpacing float64
	StyleID     string
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }

// GetText returns the concatenated text of all runs. Fields contribute nothing.
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// NewParagraph creates a paragraph holding a single plain run.
// An empty string yields a paragraph with no runs.
func NewParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.Runs = append(p.Runs, Run{Text: text})
	}
	return p
}

// AddRun appends a run and returns the paragraph for chaining.
func (p *Paragraph) AddRun(r Run) *Paragraph {
	p.Runs = append(p.Runs, r)
	return p
}

// Fields returns the fields carried by the paragraph's runs, in order.
func (p *Paragraph) Fields() []Field {
	var fields []Field
	for _, r := range p.Runs {
		if r.Field != nil {
			fields = append(fields, *r.Field)
		}
	}
	return fields
}

// PageNumberField returns a run holding a PAGE field.
func PageNumberField() Run {
	return Run{Field: &Field{Kind: FieldPage, Instruction: " PAGE "}}
}

// Heading represents a heading
type Heading struct {
	Text  string
	Level int // 0 = title, 1-9 = outline level
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return h.Text }

// NewHeading creates a heading, clamping the level into 0-9.
func NewHeading(level int, text string) *Heading {
	return &Heading{Text: text, Level: ClampHeadingLevel(level)}
}

// ClampHeadingLevel limits level to the 0-9 range.
func ClampHeadingLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

// Validate reports a level outside 0-9.
func (h *Heading) Validate() error {
	if h.Level < MinHeadingLevel || h.Level > MaxHeadingLevel {
		return fmt.Errorf("heading %q has level %d: %w", h.Text, h.Level, ErrHeadingLevel)
	}
	return nil
}

// StyleID returns the built-in Word style ID for the heading level.
// Out-of-range levels map to the nearest valid style.
func (h *Heading) StyleID() string {
	level := ClampHeadingLevel(h.Level)
	if level == 0 {
		return "Title"
	}
	return "Heading" + string(rune('0'+level))
}
