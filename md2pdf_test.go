package dcv

// Notes:
// - MarkdownConverter.Convert with a fake renderer: pipeline flow, empty
//   input, margin plumbing, error wrapping
// - goldmarkConverter: GFM output shape, raw HTML omission (math survives
//   as text for MathJax)
// - buildDocument: template execution and CSS/body injection

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRenderer records the rendered document and margins.
type fakeRenderer struct {
	html    string
	margins pageMargins
	output  []byte
	err     error
	closed  bool
}

func (f *fakeRenderer) Render(_ context.Context, htmlContent string, margins pageMargins) ([]byte, error) {
	f.html = htmlContent
	f.margins = margins
	if f.err != nil {
		return nil, f.err
	}
	if f.output != nil {
		return f.output, nil
	}
	return []byte("%PDF-1.4 fake"), nil
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

func testOptions() *EffectiveOptions {
	return &EffectiveOptions{
		CSS:       "body { margin: 0; }",
		CSSFrom:   CSSBundled,
		Template:  `<html><head><title>{{.Title}}</title><style>{{.CSS}}</style></head><body>{{.Body}}</body></html>`,
		MarginTop: "25mm",
	}
}

func writeMarkdown(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write markdown: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestMarkdownConvert - Pipeline
// ---------------------------------------------------------------------------

func TestMarkdownConvert(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "# Title\n\nBody text.")
	output := filepath.Join(t.TempDir(), "input.pdf")

	renderer := &fakeRenderer{}
	c := &MarkdownConverter{
		cfg:      converterConfig{timeout: defaultTimeout},
		html:     newGoldmarkConverter(),
		renderer: renderer,
	}

	err := c.Convert(context.Background(), ConversionRequest{
		InputPath:  input,
		OutputPath: output,
		Options:    testOptions(),
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if !strings.Contains(renderer.html, "<h1") || !strings.Contains(renderer.html, "Title") {
		t.Error("rendered document lacks converted heading")
	}
	if !strings.Contains(renderer.html, "<title>input</title>") {
		t.Error("document title not derived from input file name")
	}
	if renderer.margins.Top != "25mm" {
		t.Errorf("margin top = %q, want 25mm", renderer.margins.Top)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != "%PDF-1.4 fake" {
		t.Errorf("output = %q", got)
	}
}

func TestMarkdownConvertErrors(t *testing.T) {
	t.Parallel()

	renderFail := errors.New("render failed")

	tests := []struct {
		name     string
		content  string
		renderer *fakeRenderer
		wantErr  error
	}{
		{
			name:     "empty input",
			content:  "   \n\t\n",
			renderer: &fakeRenderer{},
			wantErr:  ErrEmptyMarkdown,
		},
		{
			name:     "renderer failure",
			content:  "# ok",
			renderer: &fakeRenderer{err: renderFail},
			wantErr:  renderFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := writeMarkdown(t, tt.content)
			c := &MarkdownConverter{
				cfg:      converterConfig{timeout: defaultTimeout},
				html:     newGoldmarkConverter(),
				renderer: tt.renderer,
			}

			err := c.Convert(context.Background(), ConversionRequest{
				InputPath:  input,
				OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
				Options:    testOptions(),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarkdownConvertMissingInput(t *testing.T) {
	t.Parallel()

	c := &MarkdownConverter{
		cfg:      converterConfig{timeout: defaultTimeout},
		html:     newGoldmarkConverter(),
		renderer: &fakeRenderer{},
	}

	err := c.Convert(context.Background(), ConversionRequest{
		InputPath:  filepath.Join(t.TempDir(), "missing.md"),
		OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
		Options:    testOptions(),
	})
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("error = %v, want ErrReadInput", err)
	}
}

func TestMarkdownConverterClose(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{}
	c := &MarkdownConverter{renderer: renderer}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !renderer.closed {
		t.Error("renderer not closed")
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter
// ---------------------------------------------------------------------------

func TestToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "heading with auto id",
			markdown: "# My Section",
			contains: []string{`<h1 id="my-section">`},
		},
		{
			name:     "gfm table",
			markdown: "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "fenced code highlighted via classes",
			markdown: "```go\nfunc main() {}\n```",
			contains: []string{`class="chroma"`},
		},
		{
			name:     "raw html omitted",
			markdown: `before <script>alert(1)</script> after`,
			contains: []string{"<!-- raw HTML omitted -->"},
		},
		{
			name:     "math notation preserved as text",
			markdown: `Euler: $e^{i\pi} + 1 = 0$`,
			contains: []string{`$e^{i\pi} + 1 = 0$`},
		},
	}

	conv := newGoldmarkConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestToHTMLCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newGoldmarkConverter().ToHTML(ctx, "# hi")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuildDocument
// ---------------------------------------------------------------------------

func TestBuildDocument(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	doc, err := buildDocument(opts, "report", "<p>hello</p>")
	if err != nil {
		t.Fatalf("buildDocument() error = %v", err)
	}

	for _, want := range []string{"<title>report</title>", "body { margin: 0; }", "<p>hello</p>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuildDocumentBadTemplate(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Template = "{{.Body"

	_, err := buildDocument(opts, "x", "<p>y</p>")
	if !errors.Is(err, ErrTemplateExecute) {
		t.Errorf("error = %v, want ErrTemplateExecute", err)
	}
}
