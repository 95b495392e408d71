package orchestrator

import (
	"seoaudit/pkg/domain"

	"github.com/riverqueue/river"
)

// JobArgs contains the arguments of a job execution submitted to River.
type JobArgs struct {
	JobID domain.JobID `json:"job_id"`
}

// Kind returns the River job kind used to register and dispatch the job worker.
func (args JobArgs) Kind() string { return "run_job" }

// InsertOpts disables retries: jobs never re-enter processing once terminal.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
	}
}
