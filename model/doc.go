// Package model provides the intermediate representation (IR) for report
// content before it is rendered to a concrete file format.
//
// Renderers in the docx and htmldoc packages, and the Markdown export in
// this package, all consume the same [Document], so a report is assembled
// once and written in whichever format the caller needs.
//
// # Document Structure
//
// The [Document] type holds metadata, a single page-layout [Section], the
// base font of the "Normal" paragraph style and an ordered body:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "My Report"
//	doc.Add(model.NewHeading(1, "Introduction"))
//	doc.Add(model.NewParagraph("Body text."))
//
// # Elements
//
// All body content implements the [Element] interface. The concrete types are:
//
//   - [Paragraph] - a sequence of formatted [Run] values
//   - [Heading] - headings (level 0 is the document title, 1-9 are outline levels)
//   - [Table] - a grid of [Cell] values; leading rows of IsHeader cells form the header
//
// A [Run] either carries text or a [Field], a placeholder such as the
// current page number that is resolved by the viewing application.
//
// # Units
//
// Lengths are stored as [Length], an integer count of English Metric Units
// (EMU). Constructors [Mm], [Pt], [Inches] and [Twips] convert from the
// units used in page setup and typography.
package model
