package model

// Section represents the page-layout scope of a document: page size,
// margins, and the header and footer content shared by every page.
type Section struct {
	Page    PageSize
	Margins Margins

	// Distance from the page edge to the header and footer text.
	HeaderDistance Length
	FooterDistance Length

	// HeaderDisabled marks the header as unlinked from any previous section
	// and empty. Renderers still emit a header part so the page carries no
	// inherited header text.
	HeaderDisabled bool
	Header         []Element
	Footer         []Element
}

// NewSection creates a section with Word's default Letter geometry.
func NewSection() *Section {
	return &Section{
		Page:           PageLetter,
		Margins:        UniformMargins(Inches(1)),
		HeaderDistance: Mm(12.7),
		FooterDistance: Mm(12.7),
	}
}

// ContentWidth returns the page width available between the left and right margins.
func (s *Section) ContentWidth() Length {
	return s.Page.Width - s.Margins.Left - s.Margins.Right
}

// DisableHeader clears the header and marks it as not linked to a previous section.
func (s *Section) DisableHeader() {
	s.HeaderDisabled = true
	s.Header = nil
}

// AddFooter appends an element to the footer.
func (s *Section) AddFooter(elem Element) {
	s.Footer = append(s.Footer, elem)
}
