package dcv

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/alnah/go-dcv/internal/fileutil"
)

// textExtractor abstracts PDF text extraction to enable testing without
// real PDF fixtures.
type textExtractor interface {
	ExtractPages(path string) ([]string, error)
}

// PDFConverter converts PDF files to Markdown by extracting the embedded
// text layer. Scanned (image-only) PDFs have no text layer and produce
// empty output; OCR is out of scope.
type PDFConverter struct {
	extractor textExtractor
}

// Compile-time interface check.
var _ Strategy = (*PDFConverter)(nil)

// NewPDFConverter creates a PDFConverter with the ledongthuc/pdf backend.
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{extractor: &pdfTextExtractor{}}
}

// InputExtensions returns the PDF extension.
func (c *PDFConverter) InputExtensions() []string { return []string{".pdf"} }

// OutputExtension returns the Markdown extension.
func (c *PDFConverter) OutputExtension() string { return ".md" }

// pageSeparator joins extracted pages in the Markdown output.
const pageSeparator = "\n\n---\n\n"

// Convert extracts the text layer of the input PDF and writes it as
// Markdown. The output file is written only after extraction completes,
// so a failed conversion never leaves a partial file behind.
func (c *PDFConverter) Convert(ctx context.Context, req ConversionRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pages, err := c.extractor.ExtractPages(req.InputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrExtraction, req.InputPath, err)
	}

	content := strings.Join(pages, pageSeparator)
	if content != "" {
		content += "\n"
	}

	if err := fileutil.WriteFileAtomic(req.OutputPath, []byte(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// pdfTextExtractor extracts plain text per page using ledongthuc/pdf.
type pdfTextExtractor struct{}

// ExtractPages returns the trimmed text of each non-empty page.
func (pdfTextExtractor) ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var pages []string

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", i, err)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	return pages, nil
}
