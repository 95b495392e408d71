// Package research defines the contracts of the third-party SEO data vendors
// used by the research job types: keyword metrics, backlink profiles and
// search result pages.
package research

import (
	"context"
	"time"
)

// RateLimitStatus describes the vendor rate-limit window reported with the
// last response.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// KeywordMetrics holds search metrics of a single keyword.
type KeywordMetrics struct {
	Keyword      string   `json:"keyword"`
	SearchVolume int      `json:"searchVolume"`
	Difficulty   int      `json:"difficulty"`
	CPC          float64  `json:"cpc"`
	Competition  float64  `json:"competition"`
	Intent       string   `json:"intent,omitempty"`
	Related      []string `json:"related,omitempty"`
}

// BacklinkProfile summarizes the links pointing at a domain.
type BacklinkProfile struct {
	Domain           string   `json:"domain"`
	DomainRating     int      `json:"domainRating"`
	TotalBacklinks   int      `json:"totalBacklinks"`
	ReferringDomains []string `json:"referringDomains"`
}

// SERPResult is one organic result of a search result page.
type SERPResult struct {
	Position int    `json:"position"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Domain   string `json:"domain"`
}

//go:generate mockgen -package mockresearch -source=interface.go -destination=mock/mockresearch.go *

// KeywordClient looks up keyword metrics.
type KeywordClient interface {
	// KeywordMetrics returns the metrics of keyword for a location and language.
	// An unknown keyword is serrors.ErrNotFound.
	KeywordMetrics(ctx context.Context, keyword, location, language string) (*KeywordMetrics, error)
}

// BacklinkClient looks up backlink profiles.
type BacklinkClient interface {
	BacklinkProfile(ctx context.Context, domain string) (*BacklinkProfile, error)
}

// SERPClient fetches search result pages.
type SERPClient interface {
	// SERP returns the organic results for keyword ordered by position.
	SERP(ctx context.Context, keyword, location string) ([]SERPResult, error)
}
