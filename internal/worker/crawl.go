package worker

import (
	"context"
	"fmt"
	"seoaudit/internal/crawl"
	"seoaudit/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CrawlWorker runs crawl traversals. The crawl engine records every outcome on
// the crawl row itself; the River job only mirrors whether the run succeeded.
type CrawlWorker struct {
	river.WorkerDefaults[crawl.JobArgs]

	crawls CrawlRunner
}

// NewCrawlWorker constructs a CrawlWorker.
func NewCrawlWorker(crawls CrawlRunner) *CrawlWorker {
	return &CrawlWorker{crawls: crawls}
}

// Timeout disables River's job timeout; crawls enforce their own deadline.
func (w *CrawlWorker) Timeout(*river.Job[crawl.JobArgs]) time.Duration { return -1 }

// Work runs the crawl referenced by the job.
func (w *CrawlWorker) Work(ctx context.Context, job *river.Job[crawl.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("crawl_job_id", job.Args.CrawlJobID.String()))

	if err := w.crawls.Run(ctx, job.Args.CrawlJobID); err != nil {
		if permanent(err) {
			logger.Warn(ctx, "crawl cannot run", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "crawl failed", zap.Error(err))

		return fmt.Errorf("could not run crawl: %w", err)
	}

	logger.Info(ctx, "crawl finished")

	return nil
}

// StaleCrawlWorker fails crawls left running by a process that exited.
type StaleCrawlWorker struct {
	river.WorkerDefaults[crawl.SweepArgs]

	crawls CrawlRunner
}

// NewStaleCrawlWorker constructs a StaleCrawlWorker.
func NewStaleCrawlWorker(crawls CrawlRunner) *StaleCrawlWorker {
	return &StaleCrawlWorker{crawls: crawls}
}

// Work runs one sweep.
func (w *StaleCrawlWorker) Work(ctx context.Context, job *river.Job[crawl.SweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	n, err := w.crawls.FailStale(ctx)
	if err != nil {
		return fmt.Errorf("could not fail stale crawls: %w", err)
	}
	if n > 0 {
		logger.Warn(ctx, "failed interrupted crawls", zap.Int("count", n))
	}

	return nil
}
