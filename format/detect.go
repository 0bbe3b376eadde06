// Package format maps report files to the renderers that produce them.
package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned when a path or name maps to no renderer.
var ErrUnsupported = errors.New("unsupported output format")

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// HTML indicates a standalone HTML page.
	HTML
	// Markdown indicates a Markdown text file.
	Markdown
	// CSV holds only the document's tables, one after another.
	CSV
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	case CSV:
		return "CSV"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	case CSV:
		return ".csv"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return DOCX
	case ".html", ".htm":
		return HTML
	case ".md", ".markdown":
		return Markdown
	case ".csv":
		return CSV
	default:
		return Unknown
	}
}

// ForPath is Detect with an error for extensions no renderer handles.
func ForPath(filename string) (Format, error) {
	if f := Detect(filename); f != Unknown {
		return f, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnsupported, filename)
}

// Parse resolves a format name such as "docx" or "md".
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "docx", "word":
		return DOCX, nil
	case "html", "htm":
		return HTML, nil
	case "md", "markdown":
		return Markdown, nil
	case "csv":
		return CSV, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown for ZIP archives; use DetectFromReader to look inside.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	if isZIP(data) {
		return Unknown
	}
	if detectHTMLMagic(data) {
		return HTML
	}
	if detectMarkdownMagic(data) {
		return Markdown
	}
	return Unknown
}

func isZIP(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XHTML behind an XML declaration
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}
	return false
}

// detectMarkdownMagic accepts text whose first non-blank line is an ATX
// heading, which is how every rendered report starts.
func detectMarkdownMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	line, _, _ := bytes.Cut(data, []byte("\n"))
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	return level >= 1 && level <= 6 && level < len(line) && line[level] == ' '
}

// DetectFromReader inspects the content to determine format.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if isZIP(magic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat reports DOCX for an OOXML package with a word/ part.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	hasContentTypes := false
	hasWord := false
	for _, f := range zr.File {
		switch {
		case f.Name == "[Content_Types].xml":
			hasContentTypes = true
		case strings.HasPrefix(f.Name, "word/"):
			hasWord = true
		}
	}
	if hasContentTypes && hasWord {
		return DOCX, nil
	}
	return Unknown, nil
}
