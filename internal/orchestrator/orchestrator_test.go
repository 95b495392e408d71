package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"seoaudit/pkg/storage/memory"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

var accountID = domain.AccountID(uuid.New()) //nolint: gochecknoglobals

func newOrchestrator(options orchestrator.Options) (*orchestrator.Orchestrator, *memory.Store) {
	store := memory.New()

	return orchestrator.New(store, nil, options), store
}

func create(t *testing.T, o *orchestrator.Orchestrator, jobType domain.JobType, input string) *domain.Job {
	t.Helper()

	job, err := o.Create(context.Background(), accountID, jobType, json.RawMessage(input))
	require.NoError(t, err)

	return job
}

func TestOrchestrator_Create(t *testing.T) {
	o, store := newOrchestrator(orchestrator.Options{})

	job := create(t, o, domain.JobTypeKeywordResearch, `{"seed":"shoes"}`)
	require.Equal(t, domain.JobStatusPending, job.Status)
	require.Equal(t, 0, job.Progress)
	require.Equal(t, 1, job.TotalItems)
	require.JSONEq(t, `{"seed":"shoes"}`, string(job.InputData))

	queued := store.Queued()
	require.Len(t, queued, 1)
	require.Equal(t, orchestrator.JobArgs{JobID: job.ID}, queued[0].Args)
	require.Equal(t, queued[0].ID, job.QueueJobID)

	empty := create(t, o, domain.JobTypeBulkAnalysis, "")
	require.JSONEq(t, `{}`, string(empty.InputData))
}

func TestOrchestrator_Create_Invalid(t *testing.T) {
	o, store := newOrchestrator(orchestrator.Options{})

	_, err := o.Create(context.Background(), accountID, "translate", nil)
	require.ErrorIs(t, err, serrors.ErrValidation)

	_, err = o.Create(context.Background(), accountID, domain.JobTypeCrawl, json.RawMessage(`{"domain":`))
	require.ErrorIs(t, err, serrors.ErrValidation)

	require.Empty(t, store.Queued())
}

func TestOrchestrator_Run_Completed(t *testing.T) {
	o, store := newOrchestrator(orchestrator.Options{})
	var observed []int
	o.Register(domain.JobTypeKeywordResearch, func(ctx context.Context, job domain.Job, progress orchestrator.ProgressFunc) (any, error) {
		for i := 1; i <= 3; i++ {
			require.NoError(t, progress(ctx, i, 3))
			current, err := store.JobByID(ctx, job.ID)
			require.NoError(t, err)
			require.Equal(t, domain.JobStatusProcessing, current.Status)
			observed = append(observed, current.Progress)
		}

		return map[string]int{"keywords": 7}, nil
	})

	job := create(t, o, domain.JobTypeKeywordResearch, `{}`)
	require.NoError(t, o.Run(context.Background(), job.ID))

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCompleted, finished.Status)
	require.Equal(t, 3, finished.Progress)
	require.Equal(t, 3, finished.TotalItems)
	require.JSONEq(t, `{"keywords":7}`, string(finished.ResultData))
	require.Empty(t, finished.ErrorMessage)
	require.False(t, finished.StartedAt.IsZero())
	require.False(t, finished.CompletedAt.IsZero())
	require.Equal(t, []int{1, 2, 3}, observed)

	// a terminal job cannot be run again
	require.ErrorIs(t, o.Run(context.Background(), job.ID), serrors.ErrConflict)
}

func TestOrchestrator_Run_ProgressIsClamped(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})
	o.Register(domain.JobTypeSERPTracking, func(ctx context.Context, _ domain.Job, progress orchestrator.ProgressFunc) (any, error) {
		require.NoError(t, progress(ctx, 5, 2))
		require.NoError(t, progress(ctx, 1, 2))

		return nil, nil
	})

	job := create(t, o, domain.JobTypeSERPTracking, `{}`)
	require.NoError(t, o.Run(context.Background(), job.ID))

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, 2, finished.Progress)
	require.Equal(t, 2, finished.TotalItems)
}

func TestOrchestrator_Run_HandlerError(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})
	o.Register(domain.JobTypeCompetitorAnalysis, func(context.Context, domain.Job, orchestrator.ProgressFunc) (any, error) {
		return nil, serrors.With(serrors.ErrValidation, "competitors are required")
	})

	job := create(t, o, domain.JobTypeCompetitorAnalysis, `{}`)
	err := o.Run(context.Background(), job.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusFailed, finished.Status)
	require.Equal(t, "competitors are required", finished.ErrorMessage)
	require.Empty(t, finished.ResultData)
}

func TestOrchestrator_Run_Panic(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})
	o.Register(domain.JobTypeKeywordClustering, func(context.Context, domain.Job, orchestrator.ProgressFunc) (any, error) {
		panic("boom")
	})

	job := create(t, o, domain.JobTypeKeywordClustering, `{}`)
	require.ErrorIs(t, o.Run(context.Background(), job.ID), serrors.ErrInternal)

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusFailed, finished.Status)
	require.Contains(t, finished.ErrorMessage, "boom")
}

func TestOrchestrator_Run_UnsupportedType(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})

	job := create(t, o, domain.JobTypeBulkAnalysis, `{}`)
	require.ErrorIs(t, o.Run(context.Background(), job.ID), serrors.ErrUnsupportedJobType)

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusFailed, finished.Status)
	require.Equal(t, 0, finished.Progress)
	require.Contains(t, finished.ErrorMessage, "bulk_analysis")
}

func TestOrchestrator_Run_NotFound(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})

	err := o.Run(context.Background(), domain.JobID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOrchestrator_Run_Deadline(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{Deadline: 20 * time.Millisecond})
	o.Register(domain.JobTypeKeywordResearch, func(ctx context.Context, _ domain.Job, _ orchestrator.ProgressFunc) (any, error) {
		<-ctx.Done()

		return nil, ctx.Err()
	})

	job := create(t, o, domain.JobTypeKeywordResearch, `{}`)
	require.ErrorIs(t, o.Run(context.Background(), job.ID), context.DeadlineExceeded)

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusFailed, finished.Status)
	require.Equal(t, "job deadline exceeded", finished.ErrorMessage)
}

func TestOrchestrator_Run_ContextCancelled(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	o.Register(domain.JobTypeKeywordResearch, func(ctx context.Context, _ domain.Job, _ orchestrator.ProgressFunc) (any, error) {
		cancel()
		<-ctx.Done()

		return nil, ctx.Err()
	})

	job := create(t, o, domain.JobTypeKeywordResearch, `{}`)
	require.ErrorIs(t, o.Run(ctx, job.ID), context.Canceled)

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCancelled, finished.Status)
}

func TestOrchestrator_Cancel(t *testing.T) {
	o, store := newOrchestrator(orchestrator.Options{})
	job := create(t, o, domain.JobTypeKeywordResearch, `{}`)

	_, err := o.Cancel(context.Background(), domain.AccountID(uuid.New()), job.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	cancelled, err := o.Cancel(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCancelled, cancelled.Status)
	require.Equal(t, []int64{job.QueueJobID}, store.Cancelled())

	_, err = o.Cancel(context.Background(), accountID, job.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)

	// the queue may still deliver the task; it is skipped
	require.NoError(t, o.Run(context.Background(), job.ID))
}

func TestOrchestrator_Cancel_WhileRunning(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})
	started := make(chan struct{})
	resume := make(chan struct{})
	o.Register(domain.JobTypeSERPTracking, func(ctx context.Context, _ domain.Job, progress orchestrator.ProgressFunc) (any, error) {
		close(started)
		<-resume

		return nil, progress(ctx, 1, 2)
	})

	job := create(t, o, domain.JobTypeSERPTracking, `{}`)
	done := make(chan error, 1)
	go func() { done <- o.Run(context.Background(), job.ID) }()

	<-started
	_, err := o.Cancel(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	close(resume)
	require.NoError(t, <-done)

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCancelled, finished.Status)
	require.Equal(t, 0, finished.Progress)
}

func TestOrchestrator_Job_Ownership(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})
	job := create(t, o, domain.JobTypeKeywordResearch, `{}`)

	_, err := o.Job(context.Background(), domain.AccountID(uuid.New()), job.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOrchestrator_AccountJobs(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{})
	for range 3 {
		create(t, o, domain.JobTypeKeywordResearch, `{}`)
		time.Sleep(time.Millisecond)
	}
	create(t, o, domain.JobTypeSERPTracking, `{}`)

	jobs, next, err := o.AccountJobs(context.Background(), accountID, storage.JobFilter{}, "", 2)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.NotEmpty(t, next)

	rest, _, err := o.AccountJobs(context.Background(), accountID, storage.JobFilter{}, next, 10)
	require.NoError(t, err)
	require.Len(t, rest, 2)

	tracking, _, err := o.AccountJobs(context.Background(), accountID, storage.JobFilter{Type: domain.JobTypeSERPTracking}, "", 10)
	require.NoError(t, err)
	require.Len(t, tracking, 1)

	_, _, err = o.AccountJobs(context.Background(), accountID, storage.JobFilter{}, "yesterday", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRunBatch(t *testing.T) {
	o, _ := newOrchestrator(orchestrator.Options{ItemDeadline: time.Second})
	o.Register(domain.JobTypeBulkAnalysis, func(ctx context.Context, _ domain.Job, progress orchestrator.ProgressFunc) (any, error) {
		return orchestrator.RunBatch(ctx, []int{1, 2, 3, 4, 5}, o.Options().ItemDeadline, progress,
			func(_ context.Context, item int) (any, error) {
				if item == 3 {
					return nil, errors.New("item 3 is broken")
				}

				return item * 10, nil
			})
	})

	job := create(t, o, domain.JobTypeBulkAnalysis, `{}`)
	require.NoError(t, o.Run(context.Background(), job.ID))

	finished, err := o.Job(context.Background(), accountID, job.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCompleted, finished.Status)
	require.Equal(t, 5, finished.Progress)
	require.Equal(t, 5, finished.TotalItems)

	var result domain.BatchResult
	require.NoError(t, json.Unmarshal(finished.ResultData, &result))
	require.Equal(t, 5, result.Total)
	require.Equal(t, 4, result.Successful)
	require.Equal(t, 1, result.Failed)
	require.False(t, result.Items[2].Success)
	require.Equal(t, "item 3 is broken", result.Items[2].Error)
	require.JSONEq(t, `3`, string(result.Items[2].Item))
	require.JSONEq(t, `40`, string(result.Items[3].Result))
}

func TestRunBatch_ItemDeadlineAndPanic(t *testing.T) {
	progress := func(context.Context, int, int) error { return nil }

	result, err := orchestrator.RunBatch(context.Background(), []string{"slow", "panic", "ok"}, 10*time.Millisecond, progress,
		func(ctx context.Context, item string) (any, error) {
			switch item {
			case "slow":
				<-ctx.Done()

				return nil, ctx.Err()
			case "panic":
				panic("bad item")
			}

			return item, nil
		})
	require.NoError(t, err)
	require.Equal(t, 1, result.Successful)
	require.Equal(t, 2, result.Failed)
	require.Contains(t, result.Items[1].Error, "bad item")
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	progress := func(context.Context, int, int) error { return nil }

	_, err := orchestrator.RunBatch(ctx, []int{1, 2, 3}, 0, progress, func(_ context.Context, item int) (any, error) {
		if item == 2 {
			cancel()
		}

		return item, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}
