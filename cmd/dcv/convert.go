package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	dcv "github.com/alnah/go-dcv"
	"github.com/alnah/go-dcv/internal/config"
	"github.com/alnah/go-dcv/internal/fileutil"
	"github.com/alnah/go-dcv/internal/hints"
)

// Usage errors for input selection and flag parsing.
var (
	errNoInput    = errors.New("no input specified (use -f FILE or -d DIR)")
	errBothInputs = errors.New("flags -f and -d are mutually exclusive")
	errBadFlags   = errors.New("invalid flags")
)

// errHelpShown signals that the command printed its usage and nothing
// else should run. It maps to a zero exit code.
var errHelpShown = errors.New("help shown")

// parseFlags runs the flag set and normalizes pflag's errors: help
// requests become errHelpShown, everything else a usage error.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return errHelpShown
		}
		return fmt.Errorf("%w: %v", errBadFlags, err)
	}
	return nil
}

// convertFlags holds the flags shared by pdf2md and md2pdf.
type convertFlags struct {
	file       string
	dir        string
	outputDir  string
	configName string
	quiet      bool
	verbose    bool
}

// register attaches the shared flags to a flag set.
func (f *convertFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "file", "f", "", "convert a single file")
	fs.StringVarP(&f.dir, "dir", "d", "", "convert every matching file under a directory")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory (default from DCV_OUTPUT_DIR)")
	fs.StringVar(&f.configName, "config", "", "config name or path with flag defaults")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress per-file progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report per-file durations")
}

// newFlagSet builds a flag set that reports usage on parse errors
// instead of exiting the process.
func newFlagSet(name string, env *Environment) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.SortFlags = false
	return fs
}

// loadFlagDefaults loads the optional YAML flag defaults. An empty name
// means no config was requested and yields empty defaults. A name that
// resolves nowhere gets the searched locations appended as a hint.
func loadFlagDefaults(configName string) (*config.Defaults, error) {
	if configName == "" {
		return &config.Defaults{}, nil
	}
	d, err := config.LoadDefaults(configName)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(configName) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchLocations(configName)))
		}
		return nil, err
	}
	return d, nil
}

// resolveInput picks the conversion source. Explicit flags win; the
// config default directory fills in when neither flag is given.
func resolveInput(f *convertFlags, defaults *config.Defaults) (string, error) {
	switch {
	case f.file != "" && f.dir != "":
		return "", errBothInputs
	case f.file != "":
		return f.file, nil
	case f.dir != "":
		return f.dir, nil
	case defaults.Input.DefaultDir != "":
		return defaults.Input.DefaultDir, nil
	}
	return "", errNoInput
}

// resolveOutputDir picks the output directory: flag, then config
// default, then the environment-derived setting.
func resolveOutputDir(f *convertFlags, defaults *config.Defaults, settings *config.Settings) string {
	if f.outputDir != "" {
		return f.outputDir
	}
	if defaults.Output.DefaultDir != "" {
		return defaults.Output.DefaultDir
	}
	return settings.OutputDir
}

// runBatch resolves the file list, runs the batch, prints results, and
// converts an all-failed batch into an error carrying the first cause.
func runBatch(ctx context.Context, env *Environment, f *convertFlags, defaults *config.Defaults, strategy dcv.Strategy, opts *dcv.EffectiveOptions) error {
	input, err := resolveInput(f, defaults)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(f, defaults, env.Settings)

	files, err := dcv.Resolve(input, strategy.InputExtensions(), outputDir, strategy.OutputExtension())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !f.quiet {
			fmt.Fprintf(env.Stdout, "No matching files found in %s\n", input)
		}
		return nil
	}

	result := dcv.NewOrchestrator(strategy).Run(ctx, files, opts)
	printResults(env, f, result)

	if result.Failure() {
		first := firstFailure(result)
		return fmt.Errorf("all %d conversion(s) failed: %w", result.Failed, first)
	}
	return nil
}

// printResults reports per-file outcomes and a batch summary.
func printResults(env *Environment, f *convertFlags, result *dcv.BatchResult) {
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n",
				outcome.Request.InputPath, outcome.Err, hintFor(outcome.Err))
			continue
		}
		if f.quiet {
			continue
		}
		if f.verbose {
			fmt.Fprintf(env.Stdout, "Created %s (%s)\n",
				outcome.Request.OutputPath, outcome.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outcome.Request.OutputPath)
		}
	}

	if result.Total() > 1 && !f.quiet {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", result.Succeeded, result.Failed)
	}
}

// firstFailure returns the first recorded error of the batch.
func firstFailure(result *dcv.BatchResult) error {
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			return outcome.Err
		}
	}
	return nil
}

// hintFor appends an actionable hint for errors users commonly hit.
func hintFor(err error) string {
	switch {
	case errors.Is(err, dcv.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, dcv.ErrExtraction):
		return hints.ForScannedPDF()
	case errors.Is(err, dcv.ErrOutputCollision):
		return hints.ForOutputDirectory()
	}
	return ""
}
