package dcv

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-dcv/internal/fileutil"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// pdfRenderer abstracts HTML to PDF rendering to allow testing without a
// browser.
type pdfRenderer interface {
	Render(ctx context.Context, htmlContent string, margins pageMargins) ([]byte, error)
	Close() error
}

// MarkdownConverter converts Markdown files to PDF: Goldmark renders the
// body, the effective template and CSS wrap it into a document, and
// headless Chrome rasterizes the result honoring CSS @page sizing.
type MarkdownConverter struct {
	cfg      converterConfig
	html     htmlConverter
	renderer pdfRenderer
}

// Compile-time interface check.
var _ Strategy = (*MarkdownConverter)(nil)

// converterConfig holds internal configuration for MarkdownConverter.
type converterConfig struct {
	timeout time.Duration
}

// defaultTimeout bounds a single page render.
const defaultTimeout = 30 * time.Second

// Option configures a MarkdownConverter.
type Option func(*MarkdownConverter)

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("dcv: WithTimeout duration must be positive")
	}
	return func(c *MarkdownConverter) {
		c.cfg.timeout = d
	}
}

// NewMarkdownConverter creates a MarkdownConverter with default
// configuration. Use options to customize behavior (e.g., WithTimeout).
func NewMarkdownConverter(opts ...Option) *MarkdownConverter {
	c := &MarkdownConverter{
		cfg:  converterConfig{timeout: defaultTimeout},
		html: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.timeout)
	}

	return c
}

// InputExtensions returns the Markdown extensions.
func (c *MarkdownConverter) InputExtensions() []string {
	return []string{".md", ".markdown"}
}

// OutputExtension returns the PDF extension.
func (c *MarkdownConverter) OutputExtension() string { return ".pdf" }

// Convert renders the Markdown input to PDF. The browser is connected
// lazily on the first call and reused for subsequent files in the batch.
func (c *MarkdownConverter) Convert(ctx context.Context, req ConversionRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := os.ReadFile(req.InputPath) // #nosec G304 -- resolved input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyMarkdown, req.InputPath)
	}

	body, err := c.html.ToHTML(ctx, string(content))
	if err != nil {
		return fmt.Errorf("converting to HTML: %w", err)
	}

	// The page is rendered from a temp file, so image paths relative to
	// the source document must be inlined before the browser sees them.
	body = embedImages(body, filepath.Dir(req.InputPath))

	title := strings.TrimSuffix(filepath.Base(req.InputPath), filepath.Ext(req.InputPath))
	doc, err := buildDocument(req.Options, title, body)
	if err != nil {
		return err
	}

	pdfBytes, err := c.renderer.Render(ctx, doc, pageMargins{
		Top:    req.Options.MarginTop,
		Right:  req.Options.MarginRight,
		Bottom: req.Options.MarginBottom,
		Left:   req.Options.MarginLeft,
	})
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(req.OutputPath, pdfBytes); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// Close releases renderer resources (the headless Chrome browser).
func (c *MarkdownConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}

// documentData feeds the HTML document template.
type documentData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// buildDocument executes the effective template with the rendered body
// and stylesheet. CSS and body are trusted pipeline output, injected
// without re-escaping.
func buildDocument(opts *EffectiveOptions, title, body string) (string, error) {
	tmpl, err := template.New("document").Parse(opts.Template)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateExecute, err)
	}

	var buf bytes.Buffer
	data := documentData{
		Title: title,
		CSS:   template.CSS(opts.CSS),   // #nosec G203 -- effective stylesheet, resolved once per run
		Body:  template.HTML(body),      // #nosec G203 -- goldmark output, unsafe HTML disabled
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateExecute, err)
	}
	return buf.String(), nil
}

// goldmarkConverter converts Markdown to an HTML fragment using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions
// and syntax highlighting.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // style via the stylesheet, not inline attrs
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// WithUnsafe() intentionally not used: raw HTML blocks are
			// omitted from the output. Math notation is plain text to
			// goldmark and survives for MathJax to pick up in the browser.
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment. Supports context
// cancellation via goroutine + select since Goldmark doesn't take a context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
