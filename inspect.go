package minireport

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mnaoum/minireport/docx"
	"github.com/mnaoum/minireport/format"
	"github.com/mnaoum/minireport/model"
)

// Inspect reads a generated .docx back into the content model.
//
// Example:
//
//	doc, err := minireport.Inspect(ctx, "report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, h := range doc.Headings() {
//	    fmt.Println(h.Level, h.Text)
//	}
func Inspect(ctx context.Context, path string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Document()
}

// Outline returns a Markdown rendering of a report file. DOCX files are
// parsed; Markdown files are returned as they are.
func Outline(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	kind, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to detect format of %s: %w", path, err)
	}

	switch kind {
	case format.DOCX:
		r, err := docx.OpenReader(f, info.Size())
		if err != nil {
			return "", err
		}
		defer r.Close()

		doc, err := r.Document()
		if err != nil {
			return "", err
		}
		return doc.ToMarkdown(), nil

	case format.Markdown:
		data, err := io.ReadAll(f)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("%w: cannot outline %s file %s", format.ErrUnsupported, kind, path)
	}
}

// Contents lists the headings of a generated .docx in document order.
func Contents(ctx context.Context, path string) ([]model.TOCEntry, error) {
	doc, err := Inspect(ctx, path)
	if err != nil {
		return nil, err
	}
	return doc.TableOfContents(), nil
}
