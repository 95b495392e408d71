package storage

import (
	"context"
	"encoding/json"
	"seoaudit/pkg/domain"
	"time"
)

// JobUpdates describes a set of optional fields that can be applied to an
// existing job. Only non-nil fields will be updated.
type JobUpdates struct {
	Status *domain.JobStatus
	// Progress is only applied when it is greater than the stored value.
	Progress   *int
	TotalItems *int
	// ResultData replaces the result payload when non-nil.
	ResultData   json.RawMessage
	ErrorMessage *string
	QueueJobID   *int64
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// JobFilter narrows job listings.
type JobFilter struct {
	Status domain.JobStatus
	Type   domain.JobType
}

// AccountJobs groups a page of jobs together with an optional NextCursor used
// for pagination.
type AccountJobs struct {
	Jobs []domain.Job
	// NextCursor is the created_at of the last returned job. It is nil when
	// there is no next page.
	NextCursor *time.Time
}

// JobStorage defines operations on generic background jobs.
type JobStorage interface {
	// StoreJobs inserts one or more jobs and returns the stored rows.
	StoreJobs(ctx context.Context, jobs ...domain.Job) ([]domain.Job, error)
	// JobByID returns the job, or nil if it does not exist.
	JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error)
	// UpdateJobByID applies updates to a job that is not in a terminal status and
	// returns the updated row. It returns nil when no such job exists.
	UpdateJobByID(ctx context.Context, id domain.JobID, updates JobUpdates) (*domain.Job, error)
	// ListJobs returns a page of an account's jobs created before the optional
	// cursor, newest first.
	ListJobs(ctx context.Context,
		accountID domain.AccountID,
		filter JobFilter,
		cursor time.Time,
		limit uint) (AccountJobs, error)
}
