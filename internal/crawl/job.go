package crawl

import (
	"seoaudit/pkg/domain"

	"github.com/riverqueue/river"
)

// QueueName is the River queue crawl traversals run on, separate from the
// generic jobs so that long crawls cannot starve them.
const QueueName = "crawls"

// JobArgs contains the arguments of a crawl traversal submitted to River.
type JobArgs struct {
	CrawlJobID domain.CrawlJobID `json:"crawl_job_id"`
}

// Kind returns the River job kind used to register and dispatch the crawl worker.
func (args JobArgs) Kind() string { return "crawl_site" }

// InsertOpts disables retries: a failed crawl is terminal and rerunnable from
// scratch by its owner.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		Queue:       QueueName,
	}
}

// SweepArgs schedules the periodic failing of interrupted crawls.
type SweepArgs struct{}

// Kind returns the River job kind of the stale crawl sweep.
func (SweepArgs) Kind() string { return "fail_stale_crawls" }

// InsertOpts runs the sweep on the default queue so that it never waits behind
// long traversals.
func (SweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		Queue:       river.QueueDefault,
	}
}
