package dcv

import "errors"

// Sentinel errors for library operations.
var (
	// Path resolution errors.
	ErrInputNotFound        = errors.New("input path does not exist")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrOutputCollision      = errors.New("two inputs resolve to the same output path")
	ErrEmptyOutputDir       = errors.New("output directory cannot be empty")

	// Configuration resolution errors.
	ErrInvalidCSS      = errors.New("invalid or unreadable CSS file")
	ErrInvalidTemplate = errors.New("invalid or unreadable template file")
	ErrInvalidMargin   = errors.New("invalid margin format")

	// PDF to Markdown errors.
	ErrExtraction = errors.New("PDF extraction failed")

	// Markdown to PDF errors.
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrTemplateExecute = errors.New("template execution failed")
	ErrRender          = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")

	// Shared strategy errors.
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)
