package main

// Notes:
// - Shared test doubles: an Environment writing to buffers and scripted
//   converter fakes injected through the factory fields

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	dcv "github.com/alnah/go-dcv"
	"github.com/alnah/go-dcv/internal/assets"
	"github.com/alnah/go-dcv/internal/config"
)

// testEnv is an Environment capturing output, with converter fakes.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	pdf2md *scriptedConverter
	md2pdf *scriptedConverter
}

// scriptedConverter converts by writing a fixed payload, failing on
// scripted input base names.
type scriptedConverter struct {
	inExts  []string
	outExt  string
	payload string
	failOn  map[string]error
	calls   int
	closed  bool
}

func (c *scriptedConverter) Convert(_ context.Context, req dcv.ConversionRequest) error {
	c.calls++
	if err, ok := c.failOn[filepath.Base(req.InputPath)]; ok {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0o750); err != nil {
		return err
	}
	return os.WriteFile(req.OutputPath, []byte(c.payload), 0o600)
}

func (c *scriptedConverter) InputExtensions() []string { return c.inExts }
func (c *scriptedConverter) OutputExtension() string   { return c.outExt }
func (c *scriptedConverter) Close() error {
	c.closed = true
	return nil
}

// newTestEnv builds a testEnv; output files land under outDir defaults
// only when the command flags say so.
func newTestEnv() *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		pdf2md: &scriptedConverter{inExts: []string{".pdf"}, outExt: ".md", payload: "# extracted\n"},
		md2pdf: &scriptedConverter{inExts: []string{".md", ".markdown"}, outExt: ".pdf", payload: "%PDF-1.4 fake"},
	}
	te.Environment = &Environment{
		Stdout:   te.stdout,
		Stderr:   te.stderr,
		Settings: &config.Settings{AppName: "dcv", OutputDir: "dcv_output"},
		Loader:   assets.NewEmbeddedLoader(),
		NewPDFToMarkdown: func() converterCloser {
			return te.pdf2md
		},
		NewMarkdownToPDF: func(time.Duration) converterCloser {
			return te.md2pdf
		},
	}
	return te
}

// writeInput creates a fixture file under dir.
func writeInput(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}
