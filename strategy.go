package dcv

import "context"

// Strategy is the delegate-specific logic for one direction of document
// transformation. Exactly two implementations exist: PDFConverter
// (PDF to Markdown) and MarkdownConverter (Markdown to PDF), selected by
// explicit direction rather than content sniffing.
type Strategy interface {
	// Convert transforms req.InputPath into req.OutputPath. The output
	// file appears only if the whole conversion succeeded; parent
	// directories are created as needed.
	Convert(ctx context.Context, req ConversionRequest) error

	// InputExtensions lists the file extensions this strategy accepts,
	// lowercase with leading dot.
	InputExtensions() []string

	// OutputExtension is the extension of produced files, with leading dot.
	OutputExtension() string
}
