package minireport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mnaoum/minireport/docx"
	"github.com/mnaoum/minireport/format"
	"github.com/mnaoum/minireport/htmldoc"
	"github.com/mnaoum/minireport/model"
)

// Generator provides a fluent interface for rendering the report.
// Each configuration method returns a new Generator instance, making it
// safe for concurrent use and allowing method chaining.
type Generator struct {
	options GenerateOptions

	// doc overrides the stock report when set
	doc *model.Document

	logger *zap.Logger
}

// clone creates a shallow copy of the Generator with a copy of options.
func (g *Generator) clone() *Generator {
	return &Generator{
		options: g.options.clone(),
		doc:     g.doc,
		logger:  g.logger,
	}
}

// Output sets the destination path. The extension selects the format
// unless Format is called.
func (g *Generator) Output(path string) *Generator {
	ng := g.clone()
	ng.options.output = path
	return ng
}

// Format forces the output format. format.Unknown restores detection
// from the output extension.
func (g *Generator) Format(f format.Format) *Generator {
	ng := g.clone()
	ng.options.format = f
	return ng
}

// ModTime stamps every entry of a DOCX package with t instead of the
// fixed epoch.
func (g *Generator) ModTime(t time.Time) *Generator {
	ng := g.clone()
	ng.options.modTime = t
	return ng
}

// Logger sets the logger for stage events. nil disables logging.
func (g *Generator) Logger(l *zap.Logger) *Generator {
	ng := g.clone()
	if l == nil {
		l = zap.NewNop()
	}
	ng.logger = l
	return ng
}

// Document replaces the stock report with doc.
func (g *Generator) Document(doc *model.Document) *Generator {
	ng := g.clone()
	ng.doc = doc
	return ng
}

// OutputPath returns the configured destination.
func (g *Generator) OutputPath() string {
	return g.options.output
}

// resolveFormat returns the configured format or the one implied by the
// output extension.
func (g *Generator) resolveFormat() (format.Format, error) {
	if g.options.format != format.Unknown {
		return g.options.format, nil
	}
	return format.ForPath(g.options.output)
}

func (g *Generator) document() *model.Document {
	if g.doc != nil {
		return g.doc
	}
	return ReportDocument()
}

// renderer is implemented by every output writer.
type renderer interface {
	WriteTo(w io.Writer) (int64, error)
	Save(path string) error
}

func (g *Generator) renderer(f format.Format, doc *model.Document) (renderer, error) {
	switch f {
	case format.DOCX:
		return docx.NewWriter(doc, docx.Options{
			ModTime:     g.options.modTime,
			Application: g.options.application,
		}), nil
	case format.HTML:
		return htmldoc.NewWriter(doc), nil
	case format.Markdown:
		return newMarkdownWriter(doc), nil
	case format.CSV:
		return newCSVWriter(doc), nil
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupported, f)
	}
}

// prepare builds the document and picks its renderer.
func (g *Generator) prepare(ctx context.Context) (renderer, format.Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, format.Unknown, err
	}

	f, err := g.resolveFormat()
	if err != nil {
		return nil, format.Unknown, err
	}

	doc := g.document()
	g.logger.Debug("document built",
		zap.String("title", doc.Metadata.Title),
		zap.Int("elements", len(doc.Body)),
		zap.Int("tables", len(doc.Tables())))

	if err := doc.Validate(); err != nil {
		return nil, f, fmt.Errorf("invalid document: %w", err)
	}

	r, err := g.renderer(f, doc)
	if err != nil {
		return nil, f, err
	}
	return r, f, nil
}

// Render writes the report to w in the configured format.
func (g *Generator) Render(ctx context.Context, w io.Writer) error {
	r, f, err := g.prepare(ctx)
	if err != nil {
		return err
	}
	g.logger.Debug("rendering", zap.Stringer("format", f))

	n, err := r.WriteTo(w)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", f, err)
	}
	g.logger.Debug("rendered", zap.Stringer("format", f), zap.Int64("bytes", n))
	return nil
}

// Generate writes the report to the output path, replacing any existing
// file, and returns that path.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	r, f, err := g.prepare(ctx)
	if err != nil {
		return "", err
	}

	path := g.options.output
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g.logger.Debug("writing report", zap.String("path", path), zap.Stringer("format", f))

	if err := r.Save(path); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}

	g.logger.Info("report written", zap.String("path", path), zap.Stringer("format", f))
	return path, nil
}

// Bytes renders the report into memory.
func (g *Generator) Bytes(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// textWriter renders the document as plain text, Markdown or CSV.
type textWriter struct {
	render func() string
}

func newMarkdownWriter(doc *model.Document) *textWriter {
	return &textWriter{render: doc.ToMarkdown}
}

// newCSVWriter writes every table of doc, separated by blank lines.
func newCSVWriter(doc *model.Document) *textWriter {
	return &textWriter{render: func() string {
		tables := doc.Tables()
		out := make([]string, 0, len(tables))
		for _, t := range tables {
			out = append(out, t.ToCSV())
		}
		return strings.Join(out, "\n")
	}}
}

func (t *textWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.render())
	return int64(n), err
}

func (t *textWriter) Save(path string) error {
	if err := os.WriteFile(path, []byte(t.render()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
