package postgres

import (
	"context"
	"fmt"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	jobsTable = "jobs"

	defaultListLimit = 20
)

var terminalJobStatuses = []string{ //nolint: gochecknoglobals
	string(domain.JobStatusCompleted),
	string(domain.JobStatusFailed),
	string(domain.JobStatusCancelled),
}

func (p *PgSQL) StoreJobs(ctx context.Context, jobs ...domain.Job) ([]domain.Job, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	rows := make([]PgJob, len(jobs))
	for i := range jobs {
		rows[i].FromDomain(jobs[i])
	}

	var result []PgJob
	if err := p.Builder.Insert(jobsTable).
		Rows(rows).
		Returning(&PgJob{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store jobs into pg: %w", err)
	}

	return pgJobsToDomain(result), nil
}

// JobByID returns a job by its id, or nil when it does not exist.
func (p *PgSQL) JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.From(jobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateJobByID updates a non-terminal job. Progress is merged with GREATEST so
// that a late writer can never move it backwards.
func (p *PgSQL) UpdateJobByID(ctx context.Context, id domain.JobID, updates storage.JobUpdates) (*domain.Job, error) {
	rec := goqu.Record{}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.TotalItems != nil {
		rec["total_items"] = *updates.TotalItems
	}
	if updates.Progress != nil {
		rec["progress"] = goqu.L("GREATEST(progress, ?)", *updates.Progress)
	}
	if updates.ResultData != nil {
		rec["result_data"] = []byte(updates.ResultData)
	}
	if updates.ErrorMessage != nil {
		rec["error_message"] = *updates.ErrorMessage
	}
	if updates.QueueJobID != nil {
		rec["queue_job_id"] = *updates.QueueJobID
	}
	if updates.StartedAt != nil {
		rec["started_at"] = *updates.StartedAt
	}
	if updates.CompletedAt != nil {
		rec["completed_at"] = *updates.CompletedAt
	}
	if len(rec) == 0 {
		return p.JobByID(ctx, id)
	}

	var row PgJob
	found, err := p.Builder.Update(jobsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").NotIn(terminalJobStatuses),
		).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ListJobs returns a list of jobs for an account filtered by optional cursor and
// limited by limit. Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) ListJobs(ctx context.Context,
	accountID domain.AccountID,
	filter storage.JobFilter,
	cursor time.Time,
	limit uint) (storage.AccountJobs, error) {
	if limit == 0 {
		limit = defaultListLimit
	}

	w := []goqu.Expression{
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("job_type").Eq(string(filter.Type)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(jobsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgJob
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.AccountJobs{}, fmt.Errorf("could not fetch account jobs from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.AccountJobs{
		Jobs:       pgJobsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func pgJobsToDomain(rows []PgJob) []domain.Job {
	out := make([]domain.Job, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
