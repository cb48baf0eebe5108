package dcv

import (
	"fmt"
	"os"

	"github.com/alnah/go-dcv/internal/assets"
)

// ResolveOptions merges the three option layers into one EffectiveOptions
// for a batch run. Lowest precedence first: the bundled default stylesheet
// and template, then a custom CSS file (whole-file replacement, with its
// @page margins extracted per field), then explicit CLI margin flags.
//
// Returns ErrInvalidCSS if cssPath is set but unreadable or carries a
// malformed @page margin, ErrInvalidTemplate if templatePath is set but
// unreadable, and ErrInvalidMargin for malformed CLI flag values. All of
// these are fatal before any conversion: options apply uniformly to the
// whole batch.
func ResolveOptions(cli CLIOverrides, cssPath, templatePath string, loader assets.Loader) (*EffectiveOptions, error) {
	css, err := loader.LoadStyle(assets.DefaultStyle)
	if err != nil {
		return nil, fmt.Errorf("loading bundled style: %w", err)
	}
	tmpl, err := loader.LoadTemplate(assets.DefaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading bundled template: %w", err)
	}

	opts := &EffectiveOptions{
		CSS:      css,
		CSSFrom:  CSSBundled,
		Template: tmpl,
	}

	margins, err := parsePageMargins(css)
	if err != nil {
		// Bundled CSS is validated by tests; reaching this means a broken build.
		return nil, fmt.Errorf("bundled style: %w", err)
	}

	if cssPath != "" {
		custom, err := os.ReadFile(cssPath) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCSS, cssPath, err)
		}
		customMargins, err := parsePageMargins(string(custom))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCSS, cssPath, err)
		}
		opts.CSS = string(custom)
		opts.CSSFrom = CSSCustom
		margins = margins.overlay(customMargins)
	}

	if templatePath != "" {
		custom, err := os.ReadFile(templatePath) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, templatePath, err)
		}
		opts.Template = string(custom)
	}

	cliMargins, err := validateOverrides(cli)
	if err != nil {
		return nil, err
	}
	margins = margins.overlay(cliMargins)

	opts.MarginTop = margins.Top
	opts.MarginRight = margins.Right
	opts.MarginBottom = margins.Bottom
	opts.MarginLeft = margins.Left
	return opts, nil
}

// validateOverrides checks each CLI margin flag and returns them as a
// pageMargins overlay.
func validateOverrides(cli CLIOverrides) (pageMargins, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"--margin-top", cli.MarginTop},
		{"--margin-right", cli.MarginRight},
		{"--margin-bottom", cli.MarginBottom},
		{"--margin-left", cli.MarginLeft},
	}
	for _, f := range fields {
		if err := ValidateMargin(f.value); err != nil {
			return pageMargins{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return pageMargins{
		Top:    cli.MarginTop,
		Right:  cli.MarginRight,
		Bottom: cli.MarginBottom,
		Left:   cli.MarginLeft,
	}, nil
}
