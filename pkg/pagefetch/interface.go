// Package pagefetch defines the page fetching and extraction service used by
// the crawler and by single page analysis.
package pagefetch

import (
	"context"
	"time"
)

// Link is an anchor found on a page. Href is the raw attribute value; callers
// resolve it against the page URL.
type Link struct {
	Href string
	Text string
}

// Page is a fetched and extracted document. Responses with a non-2xx status
// are pages too; only transport failures are errors.
type Page struct {
	// URL is the requested URL.
	URL        string
	StatusCode int
	Title      string
	// Description is the content of <meta name="description">.
	Description string
	// H1 is the text of the first <h1>.
	H1 string
	// Markdown is the body converted to markdown, used as the page's text content.
	Markdown string
	HTML     string
	Links    []Link
	LoadTime time.Duration
}

// Fetcher fetches a single URL. Transport failures are reported as
// serrors.ErrFetchFailed.
//
//go:generate mockgen -package mockpagefetch -source=interface.go -destination=mock/mockpagefetch.go *
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}
