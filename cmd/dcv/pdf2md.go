package main

import (
	"context"
	"fmt"
)

// runPDF2MD implements the pdf2md subcommand: extract the text layer of
// each PDF and write it as Markdown.
func runPDF2MD(ctx context.Context, args []string, env *Environment) error {
	var flags convertFlags
	fs := newFlagSet("pdf2md", env)
	flags.register(fs)
	fs.Usage = func() {
		fmt.Fprint(env.Stderr, pdf2mdUsage)
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	defaults, err := loadFlagDefaults(flags.configName)
	if err != nil {
		return err
	}

	converter := env.NewPDFToMarkdown()
	defer func() { _ = converter.Close() }()

	return runBatch(ctx, env, &flags, defaults, converter, nil)
}
