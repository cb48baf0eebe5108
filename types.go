package dcv

import (
	"fmt"
	"regexp"
	"time"
)

// Direction selects which conversion strategy handles a batch.
type Direction int

// Conversion directions.
const (
	DirectionPDFToMarkdown Direction = iota
	DirectionMarkdownToPDF
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionPDFToMarkdown:
		return "pdf2md"
	case DirectionMarkdownToPDF:
		return "md2pdf"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// CSSSource identifies which layer produced the effective stylesheet.
type CSSSource int

// Stylesheet origins, from lowest to highest precedence.
const (
	CSSNone CSSSource = iota
	CSSBundled
	CSSCustom
)

// String returns a human-readable source name.
func (s CSSSource) String() string {
	switch s {
	case CSSNone:
		return "none"
	case CSSBundled:
		return "bundled"
	case CSSCustom:
		return "custom"
	default:
		return fmt.Sprintf("cssSource(%d)", int(s))
	}
}

// CLIOverrides holds explicit per-field margin flags. An empty field means
// the flag was not given and the CSS-derived value stands.
type CLIOverrides struct {
	MarginTop    string
	MarginRight  string
	MarginBottom string
	MarginLeft   string
}

// EffectiveOptions is the fully merged, immutable set of rendering options
// for one batch run. Built once by ResolveOptions and shared read-only
// across every file in the batch.
type EffectiveOptions struct {
	CSS          string    // effective stylesheet content
	CSSFrom      CSSSource // where CSS came from
	Template     string    // HTML document template content
	MarginTop    string    // opaque length strings, e.g. "35mm"
	MarginRight  string
	MarginBottom string
	MarginLeft   string
}

// marginPattern accepts <number><unit> lengths such as "30mm", "1.5in", "20pt".
var marginPattern = regexp.MustCompile(`^\d+(\.\d+)?(mm|cm|in|px|pt)$`)

// ValidateMargin checks a margin length string. Empty is valid (not set).
func ValidateMargin(value string) error {
	if value == "" {
		return nil
	}
	if !marginPattern.MatchString(value) {
		return fmt.Errorf("%w: %q (expected <number><unit>, e.g. \"30mm\", \"1.5in\")", ErrInvalidMargin, value)
	}
	return nil
}

// FileToConvert is one resolved input/output pair.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionRequest describes a single file conversion. Built per input
// file by the orchestrator; immutable once built.
type ConversionRequest struct {
	InputPath  string
	OutputPath string
	Direction  Direction
	Options    *EffectiveOptions
}

// ConversionOutcome records the result of one conversion attempt.
type ConversionOutcome struct {
	Request  ConversionRequest
	Err      error
	Duration time.Duration
}

// BatchResult aggregates outcomes for a multi-file conversion run.
// Sealed by the orchestrator when the batch completes; callers only read it.
type BatchResult struct {
	Outcomes  []ConversionOutcome
	Succeeded int
	Failed    int
}

// Total returns the number of files processed.
func (r *BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// Failure reports whether the run as a whole failed. A batch fails only
// when it contained at least one file and none succeeded; an empty batch
// or any single success counts as overall success.
func (r *BatchResult) Failure() bool {
	return r.Total() > 0 && r.Succeeded == 0
}
