package metrics_test

import (
	"seoaudit/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	require.Equal(t, "2xx", metrics.StatusClass(200))
	require.Equal(t, "3xx", metrics.StatusClass(301))
	require.Equal(t, "4xx", metrics.StatusClass(404))
	require.Equal(t, "5xx", metrics.StatusClass(503))
	require.Equal(t, "other", metrics.StatusClass(0))
}

func TestCollectorsAreRegistered(t *testing.T) {
	metrics.PagesFetched.WithLabelValues("2xx").Inc()
	metrics.JobsFinished.WithLabelValues("crawl", "completed").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["seoaudit_crawler_pages_fetched_total"])
	require.True(t, names["seoaudit_jobs_finished_total"])
}
