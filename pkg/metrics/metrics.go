// Package metrics holds the Prometheus collectors shared by the crawler, the
// job orchestrator and the HTTP server.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// CrawlBuckets covers whole crawls, from a single page to the hard page cap.
var CrawlBuckets = []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// PagesFetched counts fetched pages by status class ("2xx", "4xx", ...).
	PagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seoaudit",
		Subsystem: "crawler",
		Name:      "pages_fetched_total",
		Help:      "Pages fetched by the crawler, by HTTP status class.",
	}, []string{"status_class"})

	// FetchFailures counts pages that could not be fetched at all.
	FetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "seoaudit",
		Subsystem: "crawler",
		Name:      "fetch_failures_total",
		Help:      "Page fetches that failed before a response was received.",
	})

	// CrawlDuration observes the wall time of finished crawls.
	CrawlDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "seoaudit",
		Subsystem: "crawler",
		Name:      "crawl_duration_seconds",
		Help:      "Duration of crawls including analysis.",
		Buckets:   CrawlBuckets,
	})

	// CrawlsFinished counts crawls by terminal status.
	CrawlsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seoaudit",
		Subsystem: "crawler",
		Name:      "crawls_finished_total",
		Help:      "Crawls that reached a terminal status.",
	}, []string{"status"})

	// JobsFinished counts jobs by type and terminal status.
	JobsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seoaudit",
		Subsystem: "jobs",
		Name:      "finished_total",
		Help:      "Jobs that reached a terminal status.",
	}, []string{"job_type", "status"})

	// HTTPRequestDuration observes API latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "seoaudit",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "status"})
)

// StatusClass maps an HTTP status code to its class label, e.g. 404 to "4xx".
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}

	return strconv.Itoa(code/100) + "xx"
}
