package chromefetch

import (
	"context"
	"net/http"
	"seoaudit/pkg/serrors"
	"testing"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/require"
)

func TestDocumentResponse_KeepsMainDocument(t *testing.T) {
	d := &documentResponse{}

	d.capture(&network.EventResponseReceived{
		Type:     network.ResourceTypeScript,
		Response: &network.Response{Status: 500, URL: "https://example.com/app.js"},
	})
	d.capture(&network.EventResponseReceived{
		Type:     network.ResourceTypeDocument,
		Response: &network.Response{Status: 404, URL: "https://example.com/missing"},
	})
	d.capture(&network.EventResponseReceived{
		Type:     network.ResourceTypeDocument,
		Response: &network.Response{Status: 200, URL: "https://ads.example.org/frame"},
	})
	d.capture("not a network event")

	status, url := d.result()
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "https://example.com/missing", url)
}

func TestDocumentResponse_DefaultsToOK(t *testing.T) {
	status, url := (&documentResponse{}).result()
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, url)
}

func TestFetch_WaitsForFreeTab(t *testing.T) {
	f := New(Options{MaxTabs: 1, Timeout: time.Second})
	t.Cleanup(f.Close)
	require.Equal(t, time.Second, f.opts.Timeout)

	// occupy the only tab
	f.tabs <- struct{}{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := f.Fetch(ctx, "https://example.com/")
	require.ErrorIs(t, err, serrors.ErrFetchFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
