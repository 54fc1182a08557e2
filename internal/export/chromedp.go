package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// Defaults for ChromedpRasterizer.
const (
	DefaultDeviceScale = 2.0
	DefaultTimeout     = 60 * time.Second
	// A4 at 96 CSS pixels per inch.
	DefaultViewportWidth  = 794
	DefaultViewportHeight = 1123
)

// ChromedpRasterizer captures rendered HTML with headless Chrome.
type ChromedpRasterizer struct {
	// ExecPath overrides the Chrome binary; empty uses chromedp's lookup.
	ExecPath    string
	Timeout     time.Duration
	DeviceScale float64
	Verbose     bool
}

var _ Rasterizer = (*ChromedpRasterizer)(nil)

// NewChromedpRasterizer returns a rasterizer with default scale and timeout.
func NewChromedpRasterizer(execPath string, verbose bool) *ChromedpRasterizer {
	return &ChromedpRasterizer{
		ExecPath:    execPath,
		Timeout:     DefaultTimeout,
		DeviceScale: DefaultDeviceScale,
		Verbose:     verbose,
	}
}

func (c *ChromedpRasterizer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}
	return opts
}

// Rasterize loads html from a temporary file and screenshots the element matched by selector.
func (c *ChromedpRasterizer) Rasterize(ctx context.Context, html, selector string) (*Raster, error) {
	if c.Verbose {
		log.Printf("[EXPORT] Starting headless browser (%d bytes of HTML)", len(html))
	}

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write HTML: %w", err)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, c.allocatorOptions()...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	scale := c.DeviceScale
	if scale <= 0 {
		scale = DefaultDeviceScale
	}

	var nodes []*cdp.Node
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(DefaultViewportWidth, DefaultViewportHeight, chromedp.EmulateScale(scale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// AtLeast(0) returns immediately when nothing matches instead of polling until timeout
		chromedp.Nodes(selector, &nodes, chromedp.ByQuery, chromedp.AtLeast(0)),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, selector)
	}

	var png []byte
	if err := chromedp.Run(browserCtx, chromedp.Screenshot(selector, &png, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	if c.Verbose {
		log.Printf("[EXPORT] Captured %s: %d bytes", selector, len(png))
	}
	return &Raster{PNG: png}, nil
}
