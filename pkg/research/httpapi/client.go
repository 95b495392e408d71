// Package httpapi provides the research clients backed by a JSON HTTP API
// authenticated with an API key.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"seoaudit/pkg/research"
	"seoaudit/pkg/serrors"
	"strconv"
	"strings"
	"time"
)

// Client talks to the research vendor and implements research.KeywordClient,
// research.BacklinkClient and research.SERPClient. It is safe for concurrent
// use; all calls share one cooperative rate limiter.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the vendor
	baseURL    string       // baseURL is the API root, without a trailing slash
	apiKey     string       // apiKey is sent in the Api-Key header
	limiter    *research.Limiter
}

var (
	_ research.KeywordClient  = (*Client)(nil)
	_ research.BacklinkClient = (*Client)(nil)
	_ research.SERPClient     = (*Client)(nil)
)

// New constructs a Client that uses the provided http.Client, API root and key.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    research.NewLimiter(),
	}
}

// ParseRateLimit extracts the rate-limit window from the response headers. A
// response without rate-limit headers yields a zero status.
func ParseRateLimit(h http.Header, now time.Time) (research.RateLimitStatus, error) {
	resetAfter := h.Get("X-Rate-Limit-Reset-After")
	if resetAfter == "" {
		return research.RateLimitStatus{}, nil
	}

	atoi := func(s string) int {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}

	seconds, err := strconv.ParseFloat(resetAfter, 64)
	if err != nil || seconds < 0 {
		return research.RateLimitStatus{}, fmt.Errorf("could not parse reset after %q", resetAfter)
	}

	return research.RateLimitStatus{
		Limit:     atoi(h.Get("X-Rate-Limit-Limit")),
		Remaining: atoi(h.Get("X-Rate-Limit-Remaining")),
		ResetAt:   now.Add(time.Duration(seconds * float64(time.Second))),
	}, nil
}

// KeywordMetrics implements research.KeywordClient.
func (c *Client) KeywordMetrics(ctx context.Context,
	keyword, location, language string) (*research.KeywordMetrics, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	if location != "" {
		q.Set("location", location)
	}
	if language != "" {
		q.Set("language", language)
	}

	var out research.KeywordMetrics
	if err := c.get(ctx, "/v1/keywords", q, &out); err != nil {
		return nil, err
	}
	if out.Keyword == "" {
		out.Keyword = keyword
	}

	return &out, nil
}

// BacklinkProfile implements research.BacklinkClient.
func (c *Client) BacklinkProfile(ctx context.Context, domain string) (*research.BacklinkProfile, error) {
	q := url.Values{}
	q.Set("domain", domain)

	var out research.BacklinkProfile
	if err := c.get(ctx, "/v1/backlinks", q, &out); err != nil {
		return nil, err
	}
	if out.Domain == "" {
		out.Domain = domain
	}

	return &out, nil
}

// SERP implements research.SERPClient.
func (c *Client) SERP(ctx context.Context, keyword, location string) ([]research.SERPResult, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	if location != "" {
		q.Set("location", location)
	}

	var out struct {
		Results []research.SERPResult `json:"results"`
	}
	if err := c.get(ctx, "/v1/serp", q, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// get performs a rate-limited GET and decodes a 2xx JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Reserve(ctx); err != nil {
		return serrors.Wrap(serrors.ErrTimeout, err, "could not reserve rate limit")
	}

	rl, err := c.do(ctx, path, query, out)
	c.limiter.Release(ctx, rl)

	return err
}

func (c *Client) do(ctx context.Context, path string, query url.Values, out any) (research.RateLimitStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return research.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return research.RateLimitStatus{}, serrors.Wrap(serrors.ErrTimeout, err, "research request timed out")
		}

		return research.RateLimitStatus{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header, time.Now())
	if err != nil {
		return rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return rl, fmt.Errorf("could not read response body: %w", err)
	}

	msg := strings.TrimSpace(string(b))
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", msg)
	case resp.StatusCode == http.StatusNotFound:
		return rl, serrors.With(serrors.ErrNotFound, "not found: %s", msg)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return rl, serrors.With(serrors.ErrUnauthorized, "vendor rejected credentials: %s", msg)
	case resp.StatusCode >= 500:
		return rl, serrors.With(serrors.ErrUnavailable, "vendor unavailable (%d): %s", resp.StatusCode, msg)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return rl, fmt.Errorf("research request failed (%d): %s", resp.StatusCode, msg)
	}

	if err := json.Unmarshal(b, out); err != nil {
		return rl, fmt.Errorf("could not decode response: %w", err)
	}

	return rl, nil
}
