package offerletter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 dimensions and the fixed 40px (at 96dpi) page margin, in inches, as
// expected by the DevTools printToPDF command.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	marginInches   = 40.0 / 96.0

	defaultRenderTimeout = 60 * time.Second
)

// PDFPath returns the deterministic output path for one employee's letter.
func PDFPath(dir string, employeeID int64) string {
	return filepath.Join(dir, fmt.Sprintf("offer_letter_%d.pdf", employeeID))
}

// ChromeRenderer rasterizes HTML to PDF through a headless Chrome instance.
// The browser is launched and torn down per call; nothing is pooled, so no
// state leaks between requests.
type ChromeRenderer struct {
	timeout time.Duration
}

func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &ChromeRenderer{timeout: timeout}
}

// RenderPDF writes html to a scratch file, loads it in headless Chrome, and
// exports an A4 PDF to outPath. The context deadline bounds the whole render
// so a wedged browser cannot stall the request forever.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string, outPath string) error {
	src, err := os.CreateTemp("", "offer-letter-*.html")
	if err != nil {
		return fmt.Errorf("render pdf: scratch file: %w", err)
	}
	defer os.Remove(src.Name())

	if _, err := src.WriteString(html); err != nil {
		src.Close()
		return fmt.Errorf("render pdf: write html: %w", err)
	}
	if err := src.Close(); err != nil {
		return fmt.Errorf("render pdf: close html: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(runCtx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+src.Name()),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("render pdf: write output: %w", err)
	}
	return nil
}
