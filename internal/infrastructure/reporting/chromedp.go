package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultEmitTimeout = 30 * time.Second

	// A4 dimensions in inches, the Chrome print unit
	a4WidthInches  = 8.27
	a4HeightInches = 11.69

	defaultMarginInches = 0.4
)

// EmitOptions carries per-document print settings.
type EmitOptions struct {
	Title     string
	Landscape bool
	// Timeout overrides the configured default for this document
	Timeout time.Duration
}

// Emitter converts one HTML document into one PDF byte buffer.
type Emitter interface {
	Emit(ctx context.Context, html string, opts EmitOptions) ([]byte, error)
}

// ChromedpConfig contains configuration for the chromedp emitter
type ChromedpConfig struct {
	// Timeout bounds one full emit (browser launch through print)
	Timeout time.Duration
	// RemoteURL points at a remote Chrome instance; empty launches a
	// local headless browser per request
	RemoteURL string
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	Logger    *zap.Logger
}

// ChromedpEmitter renders HTML to PDF through the Chrome DevTools
// Protocol. Each Emit call acquires its own browser context and tears it
// down on every path, success or failure; nothing is shared across
// concurrent requests.
type ChromedpEmitter struct {
	cfg    ChromedpConfig
	logger *zap.Logger

	// Test seams. newAllocator acquires the browser allocator; print
	// drives the browser. Production uses the chromedp defaults.
	newAllocator func(ctx context.Context) (context.Context, context.CancelFunc)
	print        func(ctx context.Context, html string, opts EmitOptions) ([]byte, error)
}

// NewChromedpEmitter creates a new chromedp-based PDF emitter
func NewChromedpEmitter(cfg ChromedpConfig) *ChromedpEmitter {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultEmitTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &ChromedpEmitter{cfg: cfg, logger: logger}
	e.newAllocator = e.allocate
	e.print = e.printPDF
	return e
}

// allocate builds the per-request browser allocator context
func (e *ChromedpEmitter) allocate(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.RemoteURL != "" {
		return chromedp.NewRemoteAllocator(ctx, e.cfg.RemoteURL)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // required in Docker
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if e.cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	return chromedp.NewExecAllocator(ctx, opts...)
}

// Emit converts HTML to PDF bytes. The browser context lives only for
// the duration of this call.
func (e *ChromedpEmitter) Emit(ctx context.Context, html string, opts EmitOptions) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = e.cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	allocCtx, allocCancel := e.newAllocator(ctx)
	defer allocCancel()

	start := time.Now()
	pdf, err := e.print(allocCtx, html, opts)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF emission timed out after %v", timeout), err)
		}
		e.logger.Error("chromedp emission failed", zap.Error(err))
		return nil, NewRenderError(ErrCodeEmitFailed, "chromedp execution failed", err)
	}
	if len(pdf) == 0 {
		return nil, NewRenderError(ErrCodeEmitFailed, "generated PDF is empty", nil)
	}

	e.logger.Info("PDF emitted",
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)))

	return pdf, nil
}

// printPDF drives the browser: set document content, then print. The
// browser tab context is cancelled before return on every path.
func (e *ChromedpEmitter) printPDF(allocCtx context.Context, html string, opts EmitOptions) ([]byte, error) {
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			e.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(defaultMarginInches).
				WithMarginRight(defaultMarginInches).
				WithMarginBottom(defaultMarginInches).
				WithMarginLeft(defaultMarginInches).
				WithLandscape(opts.Landscape).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

var _ Emitter = (*ChromedpEmitter)(nil)
