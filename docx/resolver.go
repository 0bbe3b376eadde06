package docx

import (
	"strconv"
	"strings"
)

// ResolvedStyle contains the fully resolved properties for a style.
type ResolvedStyle struct {
	// Identity
	ID   string
	Name string
	Type string // paragraph, character, table

	// Heading info
	IsHeading    bool
	HeadingLevel int // 0 for the Title style or non-headings; check IsHeading

	// Paragraph properties
	Alignment   string  // left, center, right, both (justify)
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
	// LineSpacing is a multiple of single spacing when the rule is "auto"
	// (1.5 = 360/240), otherwise an exact or minimum height in points.
	LineSpacing float64
	LineRule    string

	// Run/character properties
	FontName     string
	EastAsiaFont string
	FontSize     float64 // points
	Bold         bool
	Italic       bool
	Underline    bool
	Strike       bool
	Color        string // hex color like "FF0000"
}

// StyleResolver resolves styles with inheritance support.
type StyleResolver struct {
	styles      map[string]*styleDefXML
	defaults    *docDefaultsXML
	resolved    map[string]*ResolvedStyle
	defaultPara string
	defaultFont string
	defaultSize float64
}

// NewStyleResolver creates a new style resolver from parsed styles.
func NewStyleResolver(styles *stylesXML) *StyleResolver {
	sr := &StyleResolver{
		styles:      make(map[string]*styleDefXML),
		resolved:    make(map[string]*ResolvedStyle),
		defaultFont: "Calibri", // Word default
		defaultSize: 11,        // Word default (11pt)
	}

	if styles == nil {
		return sr
	}

	// Build style map
	for i := range styles.Styles {
		style := &styles.Styles[i]
		sr.styles[style.StyleID] = style
		if style.Type == "paragraph" && style.Default == "1" {
			sr.defaultPara = style.StyleID
		}
	}

	sr.defaults = &styles.DocDefaults
	if sr.defaults.RPrDefault.RPr.Font.ASCII != "" {
		sr.defaultFont = sr.defaults.RPrDefault.RPr.Font.ASCII
	}
	if sr.defaults.RPrDefault.RPr.FontSize.Val != "" {
		if size := parseHalfPoints(sr.defaults.RPrDefault.RPr.FontSize.Val); size > 0 {
			sr.defaultSize = size
		}
	}

	return sr
}

// DefaultParagraphStyle resolves the style marked as the default paragraph
// style (normally "Normal"). Documents without one get the docDefaults.
func (sr *StyleResolver) DefaultParagraphStyle() *ResolvedStyle {
	return sr.Resolve(sr.defaultPara)
}

// Resolve returns the fully resolved style for the given style ID.
// If the style doesn't exist, returns a default style.
func (sr *StyleResolver) Resolve(styleID string) *ResolvedStyle {
	if styleID == "" {
		return sr.defaultStyle()
	}

	if resolved, ok := sr.resolved[styleID]; ok {
		return resolved
	}

	resolved := sr.defaultStyle()
	resolved.ID = styleID

	styleDef, ok := sr.styles[styleID]
	if !ok {
		// Style not found - check for built-in heading styles
		resolved.IsHeading, resolved.HeadingLevel = detectBuiltInHeading(styleID)
		sr.resolved[styleID] = resolved
		return resolved
	}

	resolved.Name = styleDef.Name.Val
	resolved.Type = styleDef.Type

	// Apply properties from base to derived
	for _, sid := range sr.buildInheritanceChain(styleID) {
		if def, ok := sr.styles[sid]; ok {
			sr.applyStyleDef(resolved, def)
		}
	}

	resolved.IsHeading, resolved.HeadingLevel = sr.detectHeading(styleDef)

	sr.resolved[styleID] = resolved
	return resolved
}

// defaultStyle returns a style with default values.
func (sr *StyleResolver) defaultStyle() *ResolvedStyle {
	return &ResolvedStyle{
		FontName:    sr.defaultFont,
		FontSize:    sr.defaultSize,
		Alignment:   "left",
		SpaceAfter:  8, // Default paragraph spacing in Word
		LineSpacing: 0, // Auto
	}
}

// buildInheritanceChain returns style IDs from base to derived.
func (sr *StyleResolver) buildInheritanceChain(styleID string) []string {
	var chain []string
	visited := make(map[string]bool)

	current := styleID
	for current != "" && !visited[current] {
		visited[current] = true
		chain = append([]string{current}, chain...)

		def, ok := sr.styles[current]
		if !ok {
			break
		}
		current = def.BasedOn.Val
	}

	return chain
}

// applyStyleDef applies a style definition's properties to a resolved style.
func (sr *StyleResolver) applyStyleDef(resolved *ResolvedStyle, def *styleDefXML) {
	ppr := def.PPr
	if ppr.Justification.Val != "" {
		resolved.Alignment = ppr.Justification.Val
	}
	if ppr.Spacing.Before != "" {
		resolved.SpaceBefore = parseTwips(ppr.Spacing.Before)
	}
	if ppr.Spacing.After != "" {
		resolved.SpaceAfter = parseTwips(ppr.Spacing.After)
	}
	if ppr.Spacing.Line != "" {
		resolved.LineSpacing, resolved.LineRule = parseLineSpacing(ppr.Spacing.Line, ppr.Spacing.LineRule)
	}

	applyRunProps(&resolved.FontName, &resolved.EastAsiaFont, &resolved.FontSize,
		&resolved.Bold, &resolved.Italic, &resolved.Underline, &resolved.Strike, &resolved.Color, def.RPr)
}

// applyRunProps overlays direct run properties onto already resolved values.
func applyRunProps(name, eastAsia *string, size *float64, bold, italic, underline, strike *bool, color *string, rpr runPropsXML) {
	if rpr.Font.ASCII != "" {
		*name = rpr.Font.ASCII
	}
	if rpr.Font.EastAsia != "" {
		*eastAsia = rpr.Font.EastAsia
	}
	if rpr.FontSize.Val != "" {
		if s := parseHalfPoints(rpr.FontSize.Val); s > 0 {
			*size = s
		}
	}
	// Toggle properties: present means true unless val="false" or val="0"
	if rpr.Bold.XMLName.Local != "" {
		*bold = rpr.Bold.on()
	}
	if rpr.Italic.XMLName.Local != "" {
		*italic = rpr.Italic.on()
	}
	if rpr.Strike.XMLName.Local != "" {
		*strike = rpr.Strike.on()
	}
	if rpr.Underline.Val != "" {
		*underline = rpr.Underline.Val != "none"
	}
	if rpr.Color.Val != "" && rpr.Color.Val != "auto" {
		*color = rpr.Color.Val
	}
}

// detectHeading determines if a style represents a heading.
func (sr *StyleResolver) detectHeading(def *styleDefXML) (bool, int) {
	if isHeading, level := detectBuiltInHeading(def.StyleID); isHeading {
		return true, level
	}

	// Style name such as "heading 2"
	name := strings.ToLower(def.Name.Val)
	if strings.HasPrefix(name, "heading") {
		for i := 1; i <= 9; i++ {
			if strings.HasSuffix(name, strconv.Itoa(i)) {
				return true, i
			}
		}
		return true, 1
	}

	if def.PPr.OutlineLvl.Val != "" {
		if level := parseOutlineLevel(def.PPr.OutlineLvl.Val); level >= 0 {
			return true, level + 1 // OutlineLvl is 0-based
		}
	}

	return false, 0
}

// detectBuiltInHeading checks for Word's built-in heading style IDs.
// The Title style is a heading of level 0.
func detectBuiltInHeading(styleID string) (bool, int) {
	id := strings.ToLower(styleID)
	if id == "title" {
		return true, 0
	}
	if strings.HasPrefix(id, "heading") && len(id) == len("heading")+1 {
		c := id[len(id)-1]
		if c >= '1' && c <= '9' {
			return true, int(c - '0')
		}
	}
	return false, 0
}

// parseOutlineLevel parses an outline level string (0-8).
func parseOutlineLevel(s string) int {
	level, err := strconv.Atoi(s)
	if err != nil || level < 0 || level > 8 {
		return -1
	}
	return level
}

// parseLineSpacing interprets a w:spacing/@w:line value. With the "auto"
// rule (the default) the value is in 240ths of a line.
func parseLineSpacing(line, rule string) (float64, string) {
	if rule == "" {
		rule = "auto"
	}
	val, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, rule
	}
	if rule == "auto" {
		return val / 240, rule
	}
	return val / 20, rule
}

// parseHalfPoints parses a size in half-points to points.
// Word uses half-points for font sizes (e.g., "24" = 12pt).
func parseHalfPoints(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val / 2
}

// parseTwips parses a size in twips to points.
// 1 point = 20 twips.
func parseTwips(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val / 20
}

// ResolvedRun contains resolved properties for a text run.
type ResolvedRun struct {
	Text         string
	FontName     string
	EastAsiaFont string
	FontSize     float64
	Bold         bool
	Italic       bool
	Underline    bool
	Strike       bool
	Color        string
}

// ResolveRun resolves run properties, combining paragraph style with direct formatting.
func (sr *StyleResolver) ResolveRun(paragraphStyle string, runProps runPropsXML) *ResolvedRun {
	if paragraphStyle == "" {
		paragraphStyle = sr.defaultPara
	}
	base := sr.Resolve(paragraphStyle)

	resolved := &ResolvedRun{
		FontName:     base.FontName,
		EastAsiaFont: base.EastAsiaFont,
		FontSize:     base.FontSize,
		Bold:         base.Bold,
		Italic:       base.Italic,
		Underline:    base.Underline,
		Strike:       base.Strike,
		Color:        base.Color,
	}

	applyRunProps(&resolved.FontName, &resolved.EastAsiaFont, &resolved.FontSize,
		&resolved.Bold, &resolved.Italic, &resolved.Underline, &resolved.Strike, &resolved.Color, runProps)

	return resolved
}
