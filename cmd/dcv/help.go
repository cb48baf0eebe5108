package main

import "fmt"

const usageText = `Convert documents between PDF and Markdown.

Usage:
  dcv <command> [flags]

Commands:
  pdf2md    Extract PDF text into Markdown files
  md2pdf    Render Markdown files to PDF via headless Chrome
  scaffold  Export editable copies of the bundled CSS and template
  version   Print the version
  help      Show this help

Run "dcv <command> --help" for command flags.

Environment:
  DCV_APP_NAME    Display name used in output (default "dcv")
  DCV_OUTPUT_DIR  Default output directory (default "dcv_output")
`

const pdf2mdUsage = `Extract the text layer of PDF files into Markdown.

Usage:
  dcv pdf2md (-f FILE | -d DIR) [flags]

Flags:
`

const md2pdfUsage = `Render Markdown files to PDF via headless Chrome.

Math notation is left untouched for MathJax; custom CSS @page rules
control the paper size and margins unless overridden by flags.

Usage:
  dcv md2pdf (-f FILE | -d DIR) [flags]

Flags:
`

const scaffoldUsage = `Export editable copies of the bundled assets.

Usage:
  dcv scaffold (--css | --template | --all) [-o DIR]

Flags:
`

// printUsage writes the top-level help.
func printUsage(env *Environment) {
	fmt.Fprint(env.Stdout, usageText)
}
