package worker

import (
	"context"
	"seoaudit/pkg/domain"
)

//go:generate mockgen -package mockworker -source=interface.go -destination=mock/mockworker.go *

// CrawlRunner executes a stored crawl and fails the ones a previous process
// left running.
type CrawlRunner interface {
	Run(ctx context.Context, id domain.CrawlJobID) error
	FailStale(ctx context.Context) (int, error)
}

// JobRunner executes a stored job.
type JobRunner interface {
	Run(ctx context.Context, id domain.JobID) error
}
