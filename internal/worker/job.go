package worker

import (
	"context"
	"fmt"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// JobWorker runs generic jobs through the orchestrator.
type JobWorker struct {
	river.WorkerDefaults[orchestrator.JobArgs]

	jobs JobRunner
}

// NewJobWorker constructs a JobWorker.
func NewJobWorker(jobs JobRunner) *JobWorker {
	return &JobWorker{jobs: jobs}
}

// Timeout disables River's job timeout; the orchestrator applies the job deadline.
func (w *JobWorker) Timeout(*river.Job[orchestrator.JobArgs]) time.Duration { return -1 }

// Work runs the job referenced by the River job.
func (w *JobWorker) Work(ctx context.Context, job *river.Job[orchestrator.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("job_id", job.Args.JobID.String()))

	if err := w.jobs.Run(ctx, job.Args.JobID); err != nil {
		if permanent(err) {
			logger.Warn(ctx, "job cannot run", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "job failed", zap.Error(err))

		return fmt.Errorf("could not run job: %w", err)
	}

	logger.Info(ctx, "job finished")

	return nil
}
