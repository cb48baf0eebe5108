package main

import (
	"context"
	"fmt"
	"time"

	dcv "github.com/alnah/go-dcv"
)

// md2pdfFlags extends the shared flags with styling and layout options.
type md2pdfFlags struct {
	convertFlags
	css          string
	template     string
	marginTop    string
	marginRight  string
	marginBottom string
	marginLeft   string
	timeout      time.Duration
}

// runMD2PDF implements the md2pdf subcommand: render each Markdown file
// to PDF through headless Chrome with the effective stylesheet.
func runMD2PDF(ctx context.Context, args []string, env *Environment) error {
	var flags md2pdfFlags
	fs := newFlagSet("md2pdf", env)
	flags.register(fs)
	fs.StringVarP(&flags.css, "css", "c", "", "custom stylesheet replacing the bundled one")
	fs.StringVar(&flags.template, "template", "", "custom HTML document template")
	fs.StringVar(&flags.marginTop, "margin-top", "", "page margin, e.g. 25mm or 1in")
	fs.StringVar(&flags.marginRight, "margin-right", "", "page margin, e.g. 20mm")
	fs.StringVar(&flags.marginBottom, "margin-bottom", "", "page margin, e.g. 25mm")
	fs.StringVar(&flags.marginLeft, "margin-left", "", "page margin, e.g. 20mm")
	fs.DurationVarP(&flags.timeout, "timeout", "t", 30*time.Second, "per-page render timeout")
	fs.Usage = func() {
		fmt.Fprint(env.Stderr, md2pdfUsage)
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	defaults, err := loadFlagDefaults(flags.configName)
	if err != nil {
		return err
	}
	cssPath := flags.css
	if cssPath == "" {
		cssPath = defaults.CSS.Path
	}

	opts, err := dcv.ResolveOptions(dcv.CLIOverrides{
		MarginTop:    flags.marginTop,
		MarginRight:  flags.marginRight,
		MarginBottom: flags.marginBottom,
		MarginLeft:   flags.marginLeft,
	}, cssPath, flags.template, env.Loader)
	if err != nil {
		return err
	}

	converter := env.NewMarkdownToPDF(flags.timeout)
	defer func() { _ = converter.Close() }()

	return runBatch(ctx, env, &flags.convertFlags, defaults, converter, opts)
}
