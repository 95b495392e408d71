// Package collyfetch implements pagefetch.Fetcher on top of a colly collector,
// parsing documents with goquery and converting their body to markdown.
package collyfetch

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"seoaudit/pkg/pagefetch"
	"seoaudit/pkg/serrors"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const defaultTimeout = 15 * time.Second

// Options configures the Fetcher.
type Options struct {
	// UserAgent is sent with every request. Colly's default is used when empty.
	UserAgent string
	// Timeout bounds a single request including redirects.
	Timeout time.Duration
	// Transport overrides the HTTP transport, mostly for tests.
	Transport http.RoundTripper
}

// Fetcher fetches pages with colly. It is safe for concurrent use; every call
// works on its own clone of the base collector.
type Fetcher struct {
	opts Options
	base *colly.Collector
}

var _ pagefetch.Fetcher = (*Fetcher)(nil)

// New builds a Fetcher.
func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Transport == nil {
		opts.Transport = newHTTPTransport()
	}

	c := colly.NewCollector(colly.Async(false))
	// the crawler decides what to revisit, colly must not skip URLs it has seen
	c.AllowURLRevisit = true
	c.ParseHTTPErrorResponse = true
	c.WithTransport(opts.Transport)

	return &Fetcher{opts: opts, base: c}
}

// Fetch downloads url and extracts its metadata. Responses with an error status
// are returned as pages; transport errors and cancellation are FETCH_FAILED.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagefetch.Page, error) {
	var (
		resp     *colly.Response
		loadTime time.Duration
		fetchErr error
	)

	collector := f.base.Clone()
	collector.Context = ctx
	collector.SetRequestTimeout(f.opts.Timeout)
	if f.opts.UserAgent != "" {
		collector.UserAgent = f.opts.UserAgent
	}

	start := time.Now()
	collector.OnResponse(func(r *colly.Response) {
		loadTime = time.Since(start)
		resp = r
	})
	collector.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return nil, serrors.Wrap(serrors.ErrFetchFailed, ctx.Err(), "fetch of %s cancelled", url)
	case err := <-done:
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrFetchFailed, err, "could not fetch %s", url)
		}
		if fetchErr != nil {
			return nil, serrors.Wrap(serrors.ErrFetchFailed, fetchErr, "could not fetch %s", url)
		}
		if resp == nil {
			return nil, serrors.With(serrors.ErrFetchFailed, "no response for %s", url)
		}
	}

	page, err := Extract(resp.Request.URL.String(), resp.Body)
	if err != nil {
		return nil, err
	}
	page.URL = url
	page.StatusCode = resp.StatusCode
	page.LoadTime = loadTime

	return page, nil
}

// Extract parses an HTML document. baseURL is used by the markdown converter
// to absolutize links and images.
func Extract(baseURL string, body []byte) (*pagefetch.Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFetchFailed, err, "could not parse document")
	}

	page := &pagefetch.Page{
		HTML:  string(body),
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		H1:    strings.TrimSpace(doc.Find("h1").First().Text()),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		page.Description = strings.TrimSpace(desc)
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		page.Links = append(page.Links, pagefetch.Link{
			Href: href,
			Text: strings.Join(strings.Fields(s.Text()), " "),
		})
	})

	content := doc.Find("body")
	if content.Length() == 0 {
		content = doc.Selection
	}
	content.Find("script, style, noscript").Remove()
	page.Markdown = strings.TrimSpace(md.NewConverter(baseURL, true, nil).Convert(content))

	return page, nil
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
