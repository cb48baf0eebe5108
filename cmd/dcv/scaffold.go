package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-dcv/internal/assets"
	"github.com/alnah/go-dcv/internal/fileutil"
)

// errNothingToScaffold is returned when no asset was selected.
var errNothingToScaffold = errors.New("nothing to scaffold (use --css, --template, or --all)")

// Scaffolded file names. The copies are starting points for -c and
// --template, named so they do not shadow the bundled assets.
const (
	scaffoldCSSName      = "dcv_custom.css"
	scaffoldTemplateName = "dcv_custom_template.html"
)

// runScaffold implements the scaffold subcommand: export editable copies
// of the bundled stylesheet and document template.
func runScaffold(args []string, env *Environment) error {
	var (
		css       bool
		tmpl      bool
		all       bool
		outputDir string
	)
	fs := newFlagSet("scaffold", env)
	fs.BoolVar(&css, "css", false, "export the bundled stylesheet")
	fs.BoolVar(&tmpl, "template", false, "export the bundled HTML template")
	fs.BoolVarP(&all, "all", "a", false, "export both assets")
	fs.StringVarP(&outputDir, "output-dir", "o", ".", "directory to write the copies into")
	fs.Usage = func() {
		fmt.Fprint(env.Stderr, scaffoldUsage)
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if all {
		css, tmpl = true, true
	}
	if !css && !tmpl {
		return errNothingToScaffold
	}

	if css {
		content, err := env.Loader.LoadStyle(assets.DefaultStyle)
		if err != nil {
			return err
		}
		if err := writeScaffold(env, filepath.Join(outputDir, scaffoldCSSName), content); err != nil {
			return err
		}
	}
	if tmpl {
		content, err := env.Loader.LoadTemplate(assets.DefaultTemplate)
		if err != nil {
			return err
		}
		if err := writeScaffold(env, filepath.Join(outputDir, scaffoldTemplateName), content); err != nil {
			return err
		}
	}
	return nil
}

// writeScaffold writes one asset copy, refusing to clobber edits the
// user may already have made.
func writeScaffold(env *Environment, path, content string) error {
	if fileutil.FileExists(path) {
		return fmt.Errorf("%s already exists, remove it first", path)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(content)); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}
