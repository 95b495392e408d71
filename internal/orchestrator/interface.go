package orchestrator

import (
	"context"
	"encoding/json"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/storage"
)

// Jobs creates, runs and reads generic background jobs.
//
//go:generate mockgen -package mockorchestrator -source=interface.go -destination=mock/mockorchestrator.go *
type Jobs interface {
	// Create stores a pending job and enqueues its execution.
	Create(ctx context.Context, accountID domain.AccountID, jobType domain.JobType, input json.RawMessage) (*domain.Job, error)
	// Run executes a stored job with the handler registered for its type.
	Run(ctx context.Context, id domain.JobID) error
	Job(ctx context.Context, accountID domain.AccountID, id domain.JobID) (*domain.Job, error)
	AccountJobs(ctx context.Context,
		accountID domain.AccountID,
		filter storage.JobFilter,
		cursor string,
		limit uint) ([]domain.Job, string, error)
	// Cancel stops a pending or processing job.
	Cancel(ctx context.Context, accountID domain.AccountID, id domain.JobID) (*domain.Job, error)
}
