// Package capture rasterizes rendered SVG charts through headless Chromium.
package capture

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const defaultTimeout = 30 * time.Second

// PNG loads the given SVG document in a headless Chromium instance and
// returns a PNG screenshot at the requested viewport size. The SVG is
// staged in a temp file so Chromium can load it over file://.
func PNG(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	tmp, err := os.CreateTemp("", "daycircle-*.svg")
	if err != nil {
		return nil, fmt.Errorf("os.CreateTemp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(svg); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("tmp.Write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("tmp.Close: %w", err)
	}

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var tcancel context.CancelFunc
		cctx, tcancel = context.WithTimeout(cctx, defaultTimeout)
		defer tcancel()
	}

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate("file://" + tmp.Name()),
		// give the renderer a moment to finish painting embedded fonts
		chromedp.Sleep(200 * time.Millisecond),
		chromedp.FullScreenshot(&png, 100),
	}

	if err := chromedp.Run(cctx, tasks); err != nil {
		return nil, fmt.Errorf("chromedp.Run: %w", err)
	}

	return png, nil
}
