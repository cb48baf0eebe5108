package main

import (
	"io"
	"os"
	"time"

	dcv "github.com/alnah/go-dcv"
	"github.com/alnah/go-dcv/internal/assets"
	"github.com/alnah/go-dcv/internal/config"
)

// converterCloser is a conversion strategy holding external resources
// that must be released after the batch completes.
type converterCloser interface {
	dcv.Strategy
	Close() error
}

// noopCloser adapts a strategy without resources to converterCloser.
type noopCloser struct {
	dcv.Strategy
}

func (noopCloser) Close() error { return nil }

// Environment abstracts process-level dependencies so commands can be
// tested without touching the real filesystem, environment, or a browser.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Settings *config.Settings
	Loader   assets.Loader

	// NewPDFToMarkdown and NewMarkdownToPDF build the conversion
	// strategies. Tests inject fakes here.
	NewPDFToMarkdown func() converterCloser
	NewMarkdownToPDF func(timeout time.Duration) converterCloser
}

// DefaultEnv returns the production environment wired to the real
// process state and converters.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Settings: config.LoadSettings(),
		Loader:   assets.NewEmbeddedLoader(),
		NewPDFToMarkdown: func() converterCloser {
			return noopCloser{dcv.NewPDFConverter()}
		},
		NewMarkdownToPDF: func(timeout time.Duration) converterCloser {
			return dcv.NewMarkdownConverter(dcv.WithTimeout(timeout))
		},
	}
}
