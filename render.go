package dcv

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-dcv/internal/fileutil"
)

// Compile-time interface check.
var _ pdfRenderer = (*rodRenderer)(nil)

// mathJaxTypesetScript triggers typesetting when MathJax is present and
// resolves immediately otherwise. Rod awaits the returned promise.
const mathJaxTypesetScript = `() => {
	if (window.MathJax && window.MathJax.typesetPromise) {
		return MathJax.typesetPromise();
	}
	return null;
}`

// rodRenderer renders HTML to PDF using headless Chrome via go-rod.
// The browser is connected lazily and reused until Close.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given per-page timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Render loads htmlContent in headless Chrome and prints it to PDF.
// CSS @page sizing is honored (PreferCSSPageSize); explicit margins
// override whatever the stylesheet declares.
func (r *rodRenderer) Render(ctx context.Context, htmlContent string, margins pageMargins) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Best effort: documents without math, or offline runs where the
	// MathJax CDN is unreachable, render fine without typesetting.
	_, _ = page.Timeout(timeout).Eval(mathJaxTypesetScript)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfOpts, err := buildPrintOptions(margins)
	if err != nil {
		return nil, err
	}

	reader, err := page.PDF(pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrRender, err)
	}

	return pdfBuf, nil
}

// buildPrintOptions constructs proto.PagePrintToPDF from margin strings.
// Unset sides are left nil so the stylesheet's values apply.
func buildPrintOptions(margins pageMargins) (*proto.PagePrintToPDF, error) {
	opts := &proto.PagePrintToPDF{
		PreferCSSPageSize: true,
		PrintBackground:   true,
	}

	sides := []struct {
		value string
		dest  **float64
	}{
		{margins.Top, &opts.MarginTop},
		{margins.Right, &opts.MarginRight},
		{margins.Bottom, &opts.MarginBottom},
		{margins.Left, &opts.MarginLeft},
	}
	for _, s := range sides {
		if s.value == "" {
			continue
		}
		inches, err := lengthToInches(s.value)
		if err != nil {
			return nil, err
		}
		*s.dest = &inches
	}

	return opts, nil
}

// inchesPerUnit maps CSS length units to inches.
var inchesPerUnit = map[string]float64{
	"in": 1,
	"mm": 1.0 / 25.4,
	"cm": 1.0 / 2.54,
	"px": 1.0 / 96,
	"pt": 1.0 / 72,
}

// lengthToInches converts a validated length string like "35mm" to inches,
// which is the unit Chrome's printToPDF expects.
func lengthToInches(value string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: empty length", ErrInvalidMargin)
	}
	if err := ValidateMargin(value); err != nil {
		return 0, err
	}

	unit := value[len(value)-2:]
	number := strings.TrimSuffix(value, unit)

	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMargin, value)
	}
	return n * inchesPerUnit[unit], nil
}
