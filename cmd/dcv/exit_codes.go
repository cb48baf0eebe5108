package main

import (
	"errors"
	"io/fs"

	dcv "github.com/alnah/go-dcv"
	"github.com/alnah/go-dcv/internal/config"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess = 0 // all conversions succeeded (or nothing to do)
	ExitGeneral = 1 // conversion failure
	ExitUsage   = 2 // invalid flags, arguments, or configuration
	ExitIO      = 3 // input not found or not accessible
	ExitBrowser = 4 // headless browser unavailable or crashed
)

// exitCode maps an error to the process exit code. Wrapped sentinels are
// matched with errors.Is, so the mapping holds through %w chains.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, dcv.ErrBrowserConnect),
		errors.Is(err, dcv.ErrPageCreate),
		errors.Is(err, dcv.ErrPageLoad),
		errors.Is(err, dcv.ErrRender):
		return ExitBrowser

	case errors.Is(err, dcv.ErrInputNotFound),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return ExitIO

	case errors.Is(err, errHelpShown):
		return ExitSuccess

	case errors.Is(err, errNoInput),
		errors.Is(err, errBadFlags),
		errors.Is(err, errBothInputs),
		errors.Is(err, errNothingToScaffold),
		errors.Is(err, dcv.ErrUnsupportedExtension),
		errors.Is(err, dcv.ErrOutputCollision),
		errors.Is(err, dcv.ErrEmptyOutputDir),
		errors.Is(err, dcv.ErrInvalidCSS),
		errors.Is(err, dcv.ErrInvalidTemplate),
		errors.Is(err, dcv.ErrInvalidMargin),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrConfigParse):
		return ExitUsage
	}

	return ExitGeneral
}
