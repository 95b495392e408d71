package httpapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"seoaudit/pkg/research/httpapi"
	"seoaudit/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *httpapi.Client {
	return httpapi.New(&http.Client{Transport: fn}, "https://vendor.test/", "test-key")
}

func jsonResponse(status int, body string, h http.Header) *http.Response {
	if h == nil {
		h = http.Header{}
	}
	h.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseRateLimit(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	h := http.Header{}
	h.Set("X-Rate-Limit-Limit", "120")
	h.Set("X-Rate-Limit-Remaining", "80")
	h.Set("X-Rate-Limit-Reset-After", "1.5")

	rl, err := httpapi.ParseRateLimit(h, now)
	require.NoError(t, err)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 80, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(now.Add(1500*time.Millisecond)))

	rl, err = httpapi.ParseRateLimit(http.Header{}, now)
	require.NoError(t, err)
	require.True(t, rl.ResetAt.IsZero())

	h.Set("X-Rate-Limit-Reset-After", "soon")
	_, err = httpapi.ParseRateLimit(h, now)
	require.Error(t, err)
}

func TestClient_KeywordMetrics(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "vendor.test", r.URL.Host)
		require.Equal(t, "/v1/keywords", r.URL.Path)
		require.Equal(t, "seo audit", r.URL.Query().Get("keyword"))
		require.Equal(t, "us", r.URL.Query().Get("location"))
		require.Equal(t, "en", r.URL.Query().Get("language"))
		require.Equal(t, "test-key", r.Header.Get("Api-Key"))

		return jsonResponse(http.StatusOK,
			`{"keyword":"seo audit","searchVolume":1900,"difficulty":41,"cpc":3.5,"competition":0.7}`, nil), nil
	})

	m, err := c.KeywordMetrics(context.Background(), "seo audit", "us", "en")
	require.NoError(t, err)
	require.Equal(t, 1900, m.SearchVolume)
	require.Equal(t, 41, m.Difficulty)
	require.InDelta(t, 3.5, m.CPC, 0.0001)
}

func TestClient_BacklinkProfile(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/backlinks", r.URL.Path)
		require.Equal(t, "example.com", r.URL.Query().Get("domain"))

		return jsonResponse(http.StatusOK, `{"domainRating":55,"totalBacklinks":10,"referringDomains":["a.com","b.com"]}`, nil), nil
	})

	p, err := c.BacklinkProfile(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", p.Domain)
	require.Equal(t, []string{"a.com", "b.com"}, p.ReferringDomains)
}

func TestClient_SERP(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/serp", r.URL.Path)

		return jsonResponse(http.StatusOK, `{"results":[
			{"position":1,"url":"https://a.com/","domain":"a.com"},
			{"position":2,"url":"https://example.com/x","domain":"example.com"}]}`, nil), nil
	})

	res, err := c.SERP(context.Background(), "seo audit", "")
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "example.com", res[1].Domain)
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   error
	}{
		{http.StatusTooManyRequests, serrors.ErrRateLimited},
		{http.StatusNotFound, serrors.ErrNotFound},
		{http.StatusUnauthorized, serrors.ErrUnauthorized},
		{http.StatusForbidden, serrors.ErrUnauthorized},
		{http.StatusBadGateway, serrors.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			c := newTestClient(func(r *http.Request) (*http.Response, error) {
				return jsonResponse(tc.status, `{"error":"nope"}`, nil), nil
			})

			_, err := c.BacklinkProfile(context.Background(), "example.com")
			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestClient_BadRequestIsPlainError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, "bad", nil), nil
	})

	_, err := c.SERP(context.Background(), "x", "")
	require.Error(t, err)
	var se *serrors.Error
	require.NotErrorAs(t, err, &se)
}

func TestClient_SerializesCallsWithoutBudget(t *testing.T) {
	inFlight := make(chan struct{}, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case inFlight <- struct{}{}:
		default:
			assert.Fail(t, "more than one request in flight")
		}
		time.Sleep(20 * time.Millisecond)
		<-inFlight

		w.Header().Set("X-Rate-Limit-Limit", "1")
		w.Header().Set("X-Rate-Limit-Remaining", "1")
		w.Header().Set("X-Rate-Limit-Reset-After", "60")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	// inFlight has room for two, so the assertion only fires if the limiter lets
	// a second request start while the first is still being served
	inFlight <- struct{}{}

	c := httpapi.New(srv.Client(), srv.URL, "k")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 3)
	for range 3 {
		go func() {
			_, err := c.SERP(ctx, "k", "")
			done <- err
		}()
	}
	for range 3 {
		require.NoError(t, <-done)
	}
}
