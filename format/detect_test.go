package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, "DOCX"},
		{HTML, "HTML"},
		{Markdown, "Markdown"},
		{CSV, "CSV"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, ".docx"},
		{HTML, ".html"},
		{Markdown, ".md"},
		{CSV, ".csv"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.docx", DOCX},
		{"report.DOCX", DOCX},
		{"report.Docx", DOCX},
		{"report.html", HTML},
		{"report.HTML", HTML},
		{"report.htm", HTML},
		{"report.md", Markdown},
		{"report.markdown", Markdown},
		{"report.MD", Markdown},
		{"tables.csv", CSV},
		{"report.pdf", Unknown},
		{"report.txt", Unknown},
		{"report", Unknown},
		{"", Unknown},
		{"/path/to/file.docx", DOCX},
		{"/path/to/file.html", HTML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestForPath(t *testing.T) {
	if f, err := ForPath("out.docx"); err != nil || f != DOCX {
		t.Errorf("ForPath(out.docx) = %v, %v", f, err)
	}
	if _, err := ForPath("out.pdf"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ForPath(out.pdf) error = %v, want ErrUnsupported", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"docx", DOCX, false},
		{".DOCX", DOCX, false},
		{"html", HTML, false},
		{"md", Markdown, false},
		{" markdown ", Markdown, false},
		{"CSV", CSV, false},
		{"pdf", Unknown, true},
		{"", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupported) {
				t.Errorf("Parse(%q) error should wrap ErrUnsupported", tt.name)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "ZIP magic bytes",
			data: []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00},
			want: Unknown, // ZIP needs further inspection
		},
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with html tag",
			data: []byte("<html><head>"),
			want: HTML,
		},
		{
			name: "HTML with whitespace before DOCTYPE",
			data: []byte("  \n  <!DOCTYPE HTML PUBLIC"),
			want: HTML,
		},
		{
			name: "markdown heading",
			data: []byte("# Report\n\nBody text"),
			want: Markdown,
		},
		{
			name: "markdown subheading after blank lines",
			data: []byte("\n\n## Section\n"),
			want: Markdown,
		},
		{
			name: "hash without space",
			data: []byte("#hashtag line"),
			want: Unknown,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "short data",
			data: []byte{0x50, 0x4B},
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func createZIP(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
		if _, err := w.Write([]byte("<x/>")); err != nil {
			t.Fatalf("Write(%s) error = %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"docx", createZIP(t, "[Content_Types].xml", "word/document.xml"), DOCX},
		{"xlsx", createZIP(t, "[Content_Types].xml", "xl/workbook.xml"), Unknown},
		{"plain zip", createZIP(t, "word/document.xml"), Unknown},
		{"html", []byte("<!DOCTYPE html>\n<html><head><title>Test</title></head><body></body></html>"), HTML},
		{"markdown", []byte("# Title\n\nText\n"), Markdown},
		{"text", []byte("Hello, World! This is plain text."), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(bytes.NewReader(tt.data), int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_CorruptZIP(t *testing.T) {
	data := []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x01, 0x02}
	if _, err := DetectFromReader(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Error("DetectFromReader() should fail on a truncated ZIP")
	}
}
