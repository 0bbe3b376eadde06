package docx

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cleanText normalises s to NFC and drops runes XML 1.0 cannot carry.
func cleanText(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

// isXMLChar reports whether r matches the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

// textContent splits run text into w:t, w:br and w:tab children.
// "\n" and "\r" become line breaks and "\t" becomes a tab, the way Word
// stores them; consecutive breaks are kept.
func textContent(s string) []any {
	s = cleanText(s)
	var out []any
	var sb strings.Builder
	flush := func() {
		if sb.Len() == 0 {
			return
		}
		out = append(out, newText(sb.String()))
		sb.Reset()
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			flush()
			out = append(out, wBreak{})
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\n':
			flush()
			out = append(out, wBreak{})
		case '\t':
			flush()
			out = append(out, wTab{})
		default:
			sb.WriteByte(s[i])
		}
	}
	flush()
	return out
}

// newText builds a w:t, preserving leading and trailing spaces.
func newText(s string) wText {
	t := wText{Value: s}
	if strings.TrimSpace(s) != s {
		t.Space = "preserve"
	}
	return t
}
