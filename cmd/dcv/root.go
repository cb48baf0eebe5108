package main

import (
	"context"
	"errors"
	"fmt"
)

// run dispatches the subcommand and converts errors to exit codes. It
// never calls os.Exit so tests can drive it directly.
func run(args []string, env *Environment) int {
	ctx := context.Background()

	if len(args) < 2 {
		printUsage(env)
		return ExitSuccess
	}

	var err error
	switch args[1] {
	case "pdf2md":
		err = runPDF2MD(ctx, args[2:], env)
	case "md2pdf":
		err = runMD2PDF(ctx, args[2:], env)
	case "scaffold":
		err = runScaffold(args[2:], env)
	case "version", "--version", "-v":
		fmt.Fprintf(env.Stdout, "%s %s\n", env.Settings.AppName, Version)
	case "help", "--help", "-h":
		printUsage(env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[1])
		fmt.Fprint(env.Stderr, usageText)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, errHelpShown) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "%s: %v%s\n", env.Settings.AppName, err, hintFor(err))
		return exitCode(err)
	}
	return ExitSuccess
}
