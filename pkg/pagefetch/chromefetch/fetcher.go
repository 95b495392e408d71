// Package chromefetch implements pagefetch.Fetcher with headless Chrome, for
// sites whose markup is only complete after their scripts ran.
package chromefetch

import (
	"context"
	"net/http"
	"seoaudit/pkg/pagefetch"
	"seoaudit/pkg/pagefetch/collyfetch"
	"seoaudit/pkg/serrors"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const (
	defaultTimeout = 30 * time.Second
	settleDelay    = 500 * time.Millisecond
)

// Options configures the Fetcher.
type Options struct {
	// UserAgent overrides the browser's user agent when set.
	UserAgent string
	// Timeout bounds a single navigation.
	Timeout time.Duration
	// MaxTabs bounds the pages rendered at once. Zero means unbounded.
	MaxTabs int
}

// Fetcher renders pages in tabs of one shared browser.
type Fetcher struct {
	opts        Options
	tabs        chan struct{}
	allocator   context.Context
	allocCancel context.CancelFunc
}

var _ pagefetch.Fetcher = (*Fetcher)(nil)

// New starts a browser allocator. The browser itself is launched on the first
// fetch.
func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	var tabs chan struct{}
	if opts.MaxTabs > 0 {
		tabs = make(chan struct{}, opts.MaxTabs)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)

	return &Fetcher{
		opts:        opts,
		tabs:        tabs,
		allocator:   allocCtx,
		allocCancel: allocCancel,
	}
}

// Close shuts the browser down.
func (f *Fetcher) Close() {
	f.allocCancel()
}

// Fetch renders url and extracts the resulting DOM. The status code is the one
// of the main document response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagefetch.Page, error) {
	if f.tabs != nil {
		select {
		case f.tabs <- struct{}{}:
			defer func() { <-f.tabs }()
		case <-ctx.Done():
			return nil, serrors.Wrap(serrors.ErrFetchFailed, ctx.Err(), "fetch of %s cancelled", url)
		}
	}

	tabCtx, closeTab := chromedp.NewContext(f.allocator)
	defer closeTab()
	tabCtx, cancel := context.WithTimeout(tabCtx, f.opts.Timeout)
	defer cancel()
	// the tab must also close when the caller gives up
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	doc := &documentResponse{}
	chromedp.ListenTarget(tabCtx, doc.capture)

	var html string
	start := time.Now()
	err := chromedp.Run(tabCtx,
		f.setup(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFetchFailed, err, "could not render %s", url)
	}
	loadTime := time.Since(start)

	status, finalURL := doc.result()
	if finalURL == "" {
		finalURL = url
	}

	page, err := collyfetch.Extract(finalURL, []byte(html))
	if err != nil {
		return nil, err
	}
	page.URL = url
	page.StatusCode = status
	page.LoadTime = loadTime

	return page, nil
}

func (f *Fetcher) setup() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if err := network.Enable().Do(ctx); err != nil {
			return err //nolint: wrapcheck
		}
		if f.opts.UserAgent == "" {
			return nil
		}

		return emulation.SetUserAgentOverride(f.opts.UserAgent).Do(ctx) //nolint: wrapcheck
	})
}

// documentResponse records the first document response of a tab. Redirect hops
// emit no response event, so it is the final hop of the main navigation.
type documentResponse struct {
	mu     sync.Mutex
	status int
	url    string
}

func (d *documentResponse) capture(ev any) {
	resp, ok := ev.(*network.EventResponseReceived)
	if !ok || resp.Type != network.ResourceTypeDocument || resp.Response == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.url != "" {
		// later documents are frames
		return
	}
	d.status = int(resp.Response.Status)
	d.url = resp.Response.URL
}

func (d *documentResponse) result() (int, string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status == 0 {
		return http.StatusOK, d.url
	}

	return d.status, d.url
}
