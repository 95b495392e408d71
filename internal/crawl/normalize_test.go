package crawl_test

import (
	"net/url"
	"seoaudit/internal/crawl"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "bare domain defaults to https and root path",
			in:   "Example.COM",
			out:  "https://example.com/",
			ok:   true,
		},
		{
			name: "lowercase scheme and host",
			in:   "HTTP://Example.COM/About",
			out:  "http://example.com/About",
			ok:   true,
		},
		{
			name: "remove default http port",
			in:   "http://example.com:80/path",
			out:  "http://example.com/path",
			ok:   true,
		},
		{
			name: "remove default https port",
			in:   "https://example.com:443",
			out:  "https://example.com/",
			ok:   true,
		},
		{
			name: "keep non-default port",
			in:   "http://example.com:8080",
			out:  "http://example.com:8080/",
			ok:   true,
		},
		{
			name: "keep trailing slash and query",
			in:   "https://example.com/blog/?b=2&a=1",
			out:  "https://example.com/blog/?b=2&a=1",
			ok:   true,
		},
		{
			name: "remove fragment",
			in:   "https://example.com/#top",
			out:  "https://example.com/",
			ok:   true,
		},
		{
			name: "ipv6 literal with default port",
			in:   "https://[::1]:443/",
			out:  "https://[::1]/",
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			in:   "  example.com  ",
			out:  "https://example.com/",
			ok:   true,
		},
		{name: "empty", in: "", ok: false},
		{name: "unsupported scheme", in: "ftp://example.com", ok: false},
		{name: "missing host", in: "https:///path", ok: false},
		{name: "unparsable", in: "http://exa mple.com/%zz", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := crawl.NormalizeDomain(tc.in)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestResolveLink(t *testing.T) {
	origin, err := url.Parse("https://example.com/")
	require.NoError(t, err)

	cases := []struct {
		href     string
		target   string
		internal bool
		ok       bool
	}{
		{href: "/about", target: "https://example.com/about", internal: true, ok: true},
		{href: "about", target: "https://example.com/about", internal: true, ok: true},
		{href: "https://EXAMPLE.com/x", target: "https://EXAMPLE.com/x", internal: true, ok: true},
		{href: "http://example.com/plain", target: "http://example.com/plain", internal: true, ok: true},
		{href: "https://other.org/", target: "https://other.org/", internal: false, ok: true},
		{href: "//cdn.example.net/lib.js", target: "https://cdn.example.net/lib.js", internal: false, ok: true},
		{href: "/a/", target: "https://example.com/a/", internal: true, ok: true},
		{href: "#section", ok: false},
		{href: "mailto:hi@example.com", ok: false},
		{href: "javascript:void(0)", ok: false},
		{href: "   ", ok: false},
	}

	for _, tc := range cases {
		target, internal, ok := crawl.ResolveLink(origin, tc.href)
		require.Equal(t, tc.ok, ok, tc.href)
		if !tc.ok {
			continue
		}
		require.Equal(t, tc.target, target, tc.href)
		require.Equal(t, tc.internal, internal, tc.href)
	}
}
