// Package dcv converts documents between PDF and Markdown.
//
// The package owns orchestration only: resolving input files, merging
// configuration layers, dispatching each file to a conversion strategy,
// and aggregating per-file outcomes. The heavy lifting is delegated to
// external libraries: PDF text extraction via ledongthuc/pdf and PDF
// rendering via headless Chrome (go-rod).
//
// # Quick Start
//
// Resolve files, build options, and run a batch:
//
//	conv := dcv.NewMarkdownConverter()
//	defer conv.Close()
//
//	files, err := dcv.Resolve("docs/", conv.InputExtensions(), "out/", conv.OutputExtension())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts, err := dcv.ResolveOptions(dcv.CLIOverrides{}, "", "", assets.NewEmbeddedLoader())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := dcv.NewOrchestrator(conv).Run(ctx, files, opts)
//	fmt.Printf("%d succeeded, %d failed\n", result.Succeeded, result.Failed)
//
// # Conversion Pipeline
//
// Markdown to PDF:
//
//  1. Markdown to HTML via Goldmark (GFM, footnotes, syntax highlighting)
//  2. HTML document assembly (template + effective CSS, MathJax passthrough)
//  3. PDF rendering via headless Chrome, honoring CSS @page sizing
//
// PDF to Markdown:
//
//  1. Text-layer extraction page by page
//  2. Markdown assembly with page separators
//
// # Configuration Precedence
//
// Rendering options are merged once per run, most specific wins per field:
// explicit CLI margin flags override values extracted from a custom CSS
// @page rule, which override the bundled defaults.
//
// # Batch Semantics
//
// Files convert sequentially in resolver order. A failing file is recorded
// and the batch continues; the run counts as failed only when every file
// in a non-empty batch fails.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first run. For containers and CI, set ROD_NO_SANDBOX=1
// and optionally ROD_BROWSER_BIN to point at a pre-installed binary.
package dcv
