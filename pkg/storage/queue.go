package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// QueueStorage defines the minimal interface for enqueueing and cancelling
// background tasks.
// Implementations are responsible for persisting the task into the underlying
// queue backend. The args parameter contains the task payload and opts can be
// used to customize insertion behavior (e.g., queue name, max attempts).
//
// Example:
//
//	id, err := storage.Enqueue(ctx, crawl.RunArgs{CrawlJobID: id}, nil)
//	if err != nil { /* handle error */ }
type QueueStorage interface {
	// Enqueue inserts a new task and returns its queue id. It is atomic with
	// respect to any surrounding transaction when supported by the backend.
	Enqueue(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (int64, error)
	// CancelQueued cancels a task. A task that has not started never runs; a
	// running one has its context cancelled. Finished tasks are left untouched.
	CancelQueued(ctx context.Context, id int64) error
}
