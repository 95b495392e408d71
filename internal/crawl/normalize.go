package crawl

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeDomain turns the domain a caller asked to crawl into the absolute
// seed URL of the crawl:
//   - Default the scheme to https when none is given
//   - Lower-case the scheme and host
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - Ensure a path is present; empty path becomes "/"
//   - Remove the fragment
//
// Only the seed goes through here. Discovered links are compared verbatim.
func NormalizeDomain(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("domain is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse domain: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Host = strings.ToLower(u.Host)
	if u.Hostname() == "" {
		return "", fmt.Errorf("domain has no host")
	}
	if port := u.Port(); (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
		u.Host = strings.TrimSuffix(u.Host, ":"+port)
	}

	if u.Path == "" {
		u.Path = "/"
	}
	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}

// ResolveLink resolves href against the crawl origin and reports whether the
// result stays on the origin's host. Links that cannot be followed (fragments,
// mailto:, javascript:, unparsable hrefs) are reported with ok=false.
func ResolveLink(origin *url.URL, href string) (target string, internal bool, ok bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false, false
	}
	u := origin.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false, false
	}

	return u.String(), strings.EqualFold(u.Host, origin.Host), true
}
