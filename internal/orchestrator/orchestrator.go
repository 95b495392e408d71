// Package orchestrator runs generic background jobs: it claims a stored job,
// dispatches it to the handler registered for its type, tracks its progress
// and records exactly one terminal outcome.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"seoaudit/internal/config"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/metrics"
	"seoaudit/pkg/notify"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "seoaudit/internal/orchestrator"

// ProgressFunc reports that completed of total items are done. It returns an
// error when the job can no longer make progress, e.g. because it was
// cancelled; handlers should stop and return that error.
type ProgressFunc func(ctx context.Context, completed, total int) error

// Handler executes one job type. The returned value is stored as the job's
// result_data and must be JSON serializable.
type Handler func(ctx context.Context, job domain.Job, progress ProgressFunc) (any, error)

// errStopped is returned when the job row refused a write because it already
// reached a terminal status.
var errStopped = serrors.With(serrors.ErrConflict, "job is no longer running") //nolint: gochecknoglobals

// Options configure job deadlines.
type Options struct {
	// Deadline bounds a single job. Zero disables it.
	Deadline time.Duration
	// ItemDeadline bounds one item of a batch job. Zero disables it.
	ItemDeadline time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Deadline:     cfg.Jobs.Deadline,
		ItemDeadline: cfg.Jobs.ItemDeadline,
	}
}

// Orchestrator implements Jobs.
type Orchestrator struct {
	options   Options
	storage   storage.Storage
	publisher *notify.Publisher
	tracer    trace.Tracer

	mu       sync.RWMutex
	handlers map[domain.JobType]Handler
}

var _ Jobs = (*Orchestrator)(nil)

// New creates an Orchestrator without handlers. publisher may be nil.
func New(strg storage.Storage, publisher *notify.Publisher, options Options) *Orchestrator {
	return &Orchestrator{
		options:   options,
		storage:   strg,
		publisher: publisher,
		tracer:    otel.Tracer(instrumentationName),
		handlers:  make(map[domain.JobType]Handler),
	}
}

// Options returns the options the orchestrator was created with.
func (o *Orchestrator) Options() Options { return o.options }

// Register sets the handler of a job type, replacing any previous one.
func (o *Orchestrator) Register(jobType domain.JobType, handler Handler) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.handlers[jobType] = handler
}

func (o *Orchestrator) handler(jobType domain.JobType) Handler {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.handlers[jobType]
}

// Create stores a pending job and enqueues its execution in one transaction.
func (o *Orchestrator) Create(ctx context.Context,
	accountID domain.AccountID,
	jobType domain.JobType,
	input json.RawMessage) (*domain.Job, error) {
	if !slices.Contains(domain.JobTypes, jobType) {
		return nil, serrors.With(serrors.ErrValidation, "unknown job type %q", jobType)
	}
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}
	if !json.Valid(input) {
		return nil, serrors.With(serrors.ErrValidation, "input is not valid JSON")
	}

	job := domain.Job{
		ID:         domain.JobID(uuid.New()),
		AccountID:  accountID,
		Type:       jobType,
		Status:     domain.JobStatusPending,
		TotalItems: 1,
		InputData:  input,
	}

	var stored *domain.Job
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		queueID, err := tx.Enqueue(ctx, JobArgs{JobID: job.ID}, nil)
		if err != nil {
			return serrors.Wrap(serrors.ErrPersistence, err, "could not enqueue job")
		}
		job.QueueJobID = queueID

		res, err := tx.StoreJobs(ctx, job)
		if err != nil {
			return serrors.Wrap(serrors.ErrPersistence, err, "could not store job")
		}
		stored = &res[0]

		return nil
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "job created",
		zap.String("job_id", stored.ID.String()),
		zap.String("job_type", string(stored.Type)))
	o.publisher.PublishLogged(ctx, notify.JobEvent(*stored))

	return stored, nil
}

// Run claims a pending job, runs its handler and writes its terminal status.
// A job that was cancelled before it was claimed is skipped without error.
func (o *Orchestrator) Run(ctx context.Context, id domain.JobID) (err error) {
	job, err := o.storage.JobByID(ctx, id)
	if err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not load job")
	}
	if job == nil {
		return serrors.With(serrors.ErrNotFound, "job %s not found", id)
	}
	if job.Status == domain.JobStatusCancelled {
		logger.Info(ctx, "job was cancelled before it started", zap.String("job_id", id.String()))

		return nil
	}
	if job.Status != domain.JobStatusPending {
		return serrors.With(serrors.ErrConflict, "job %s is %s and cannot be run again", id, job.Status)
	}

	ctx = logger.WithFields(ctx,
		zap.String("job_id", id.String()),
		zap.String("job_type", string(job.Type)))
	ctx, span := o.tracer.Start(ctx, "orchestrator.run", trace.WithAttributes(
		attribute.String("job_id", id.String()),
		attribute.String("job_type", string(job.Type))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	processing := domain.JobStatusProcessing
	now := time.Now().UTC()
	claimed, err := o.update(ctx, id, storage.JobUpdates{Status: &processing, StartedAt: &now})
	if errors.Is(err, errStopped) {
		return nil
	}
	if err != nil {
		return err
	}

	handler := o.handler(job.Type)
	if handler == nil {
		err := serrors.With(serrors.ErrUnsupportedJobType, "unsupported job type %q", job.Type)
		o.finish(ctx, claimed, domain.JobStatusFailed, nil, err.Error())

		return err
	}

	tracker := &progressTracker{orchestrator: o, latest: *claimed}
	hctx := ctx
	if o.options.Deadline > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, o.options.Deadline)
		defer cancel()
	}

	logger.Info(ctx, "job started")
	result, err := invoke(hctx, handler, *claimed, tracker.report)
	if err == nil {
		var data []byte
		data, err = json.Marshal(result)
		if err != nil {
			err = serrors.Wrap(serrors.ErrInternal, err, "could not encode job result")
		} else {
			o.finish(ctx, tracker.current(), domain.JobStatusCompleted, data, "")

			return nil
		}
	}

	switch {
	case errors.Is(err, errStopped):
		// cancelled through Cancel; the row is already terminal
		return nil
	case errors.Is(ctx.Err(), context.Canceled):
		o.finish(ctx, tracker.current(), domain.JobStatusCancelled, nil, "job cancelled")

		return err
	case errors.Is(hctx.Err(), context.DeadlineExceeded):
		o.finish(ctx, tracker.current(), domain.JobStatusFailed, nil, "job deadline exceeded")
	default:
		o.finish(ctx, tracker.current(), domain.JobStatusFailed, nil, err.Error())
	}

	return err
}

// invoke runs handler and turns a panic into an error.
func invoke(ctx context.Context, handler Handler, job domain.Job, progress ProgressFunc) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = serrors.With(serrors.ErrInternal, "job handler panicked: %v", r)
		}
	}()

	return handler(ctx, job, progress)
}

// finish writes the terminal status of a job. On success progress is moved to
// total_items. Terminal writes ignore cancellation of ctx.
func (o *Orchestrator) finish(ctx context.Context,
	job domain.Job,
	status domain.JobStatus,
	result []byte,
	errMessage string) {
	ctx = context.WithoutCancel(ctx)
	now := time.Now().UTC()
	updates := storage.JobUpdates{Status: &status, CompletedAt: &now}
	if status == domain.JobStatusCompleted {
		updates.ResultData = result
		updates.Progress = &job.TotalItems
	} else {
		updates.ErrorMessage = &errMessage
	}

	if _, err := o.update(ctx, job.ID, updates); err != nil {
		if !errors.Is(err, errStopped) {
			logger.Error(ctx, "could not write job outcome", zap.String("status", string(status)), zap.Error(err))
		}

		return
	}

	metrics.JobsFinished.WithLabelValues(string(job.Type), string(status)).Inc()
	if status == domain.JobStatusCompleted {
		logger.Info(ctx, "job completed")
	} else {
		logger.Warn(ctx, "job did not complete", zap.String("status", string(status)), zap.String("reason", errMessage))
	}
}

func (o *Orchestrator) update(ctx context.Context, id domain.JobID, updates storage.JobUpdates) (*domain.Job, error) {
	updated, err := o.storage.UpdateJobByID(ctx, id, updates)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not update job")
	}
	if updated == nil {
		return nil, errStopped
	}
	o.publisher.PublishLogged(ctx, notify.JobEvent(*updated))

	return updated, nil
}

// progressTracker serializes progress writes of one job and remembers the
// latest row, whose total_items is needed for the completion write.
type progressTracker struct {
	orchestrator *Orchestrator

	mu     sync.Mutex
	latest domain.Job
}

func (t *progressTracker) report(ctx context.Context, completed, total int) error {
	if completed < 0 || total < 0 {
		return serrors.With(serrors.ErrInternal, "invalid progress %d/%d", completed, total)
	}
	completed = min(completed, total)

	t.mu.Lock()
	defer t.mu.Unlock()

	updated, err := t.orchestrator.update(ctx, t.latest.ID, storage.JobUpdates{
		Progress:   &completed,
		TotalItems: &total,
	})
	if err != nil {
		return err
	}
	t.latest = *updated

	return nil
}

func (t *progressTracker) current() domain.Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.latest
}

// Job returns a job owned by accountID. A missing job is NOT_FOUND.
func (o *Orchestrator) Job(ctx context.Context, accountID domain.AccountID, id domain.JobID) (*domain.Job, error) {
	job, err := o.storage.JobByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not get job")
	}
	if job == nil || job.AccountID != accountID {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

// AccountJobs returns a page of an account's jobs, newest first, using an
// RFC3339 timestamp cursor.
func (o *Orchestrator) AccountJobs(ctx context.Context,
	accountID domain.AccountID,
	filter storage.JobFilter,
	cursor string,
	limit uint) ([]domain.Job, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := o.storage.ListJobs(ctx, accountID, filter, cursorTime, limit)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrPersistence, err, "could not list jobs")
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Jobs, next, nil
}

// Cancel moves a pending or processing job to cancelled and cancels its queue
// task. A running handler stops at its next progress report, or right away
// when the queue cancels its context.
func (o *Orchestrator) Cancel(ctx context.Context, accountID domain.AccountID, id domain.JobID) (*domain.Job, error) {
	job, err := o.Job(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	if job.Status.IsTerminal() {
		return nil, serrors.With(serrors.ErrConflict, "job is already %s", job.Status)
	}

	cancelled := domain.JobStatusCancelled
	msg := "job cancelled"
	now := time.Now().UTC()
	updated, err := o.update(ctx, id, storage.JobUpdates{
		Status:       &cancelled,
		ErrorMessage: &msg,
		CompletedAt:  &now,
	})
	if errors.Is(err, errStopped) {
		return nil, serrors.With(serrors.ErrConflict, "job finished before it could be cancelled")
	}
	if err != nil {
		return nil, err
	}
	metrics.JobsFinished.WithLabelValues(string(job.Type), string(cancelled)).Inc()

	if job.QueueJobID != 0 {
		if err := o.storage.CancelQueued(ctx, job.QueueJobID); err != nil && !errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "could not cancel queued job",
				zap.String("job_id", id.String()),
				zap.Int64("queue_job_id", job.QueueJobID),
				zap.Error(err))
		}
	}
	logger.Info(ctx, "job cancelled", zap.String("job_id", id.String()))

	return updated, nil
}
