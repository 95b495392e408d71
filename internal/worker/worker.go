// Package worker executes crawls and jobs taken from the River queue.
package worker

import (
	"context"
	"errors"
	"fmt"
	"seoaudit/internal/config"
	"seoaudit/internal/crawl"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/serrors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const (
	defaultCrawlWorkers = 10
	defaultJobWorkers   = 20
)

// Options configure the queue concurrency.
type Options struct {
	// CrawlWorkers is the number of crawls run at once.
	CrawlWorkers int
	// JobWorkers is the number of generic jobs run at once.
	JobWorkers int
	// StaleSweepInterval schedules the failing of interrupted crawls. Zero
	// disables it.
	StaleSweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CrawlWorkers:       cfg.Crawler.Workers,
		JobWorkers:         cfg.Jobs.Workers,
		StaleSweepInterval: cfg.Crawler.StaleSweepInterval,
	}
}

// Start registers the crawl and job workers and starts a River client working
// both queues.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	crawls CrawlRunner,
	jobs JobRunner,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.CrawlWorkers <= 0 {
		options.CrawlWorkers = defaultCrawlWorkers
	}
	if options.JobWorkers <= 0 {
		options.JobWorkers = defaultJobWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewCrawlWorker(crawls))
	river.AddWorker(workers, NewJobWorker(jobs))
	river.AddWorker(workers, NewStaleCrawlWorker(crawls))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.JobWorkers},
			crawl.QueueName:    {MaxWorkers: options.CrawlWorkers},
		},
		PeriodicJobs: periodicJobs(options),
		Workers:      workers,
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

func periodicJobs(options Options) []*river.PeriodicJob {
	if options.StaleSweepInterval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.StaleSweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return crawl.SweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// permanent reports whether retrying err can never succeed.
func permanent(err error) bool {
	return errors.Is(err, serrors.ErrNotFound) ||
		errors.Is(err, serrors.ErrConflict) ||
		errors.Is(err, serrors.ErrValidation) ||
		errors.Is(err, serrors.ErrUnsupportedJobType)
}
